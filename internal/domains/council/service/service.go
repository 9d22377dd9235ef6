package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"portal/config"
	"portal/infras/otel"
	"portal/infras/s3"
	"portal/internal/domains/council/model"
	"portal/internal/domains/council/model/dto"
	"portal/internal/domains/council/repository"
	"portal/shared"
	"portal/shared/cache"
	"portal/shared/constant"
	gDto "portal/shared/dto"
	"portal/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllCouncil = "council:gets"
	cacheCountCouncil  = "council:count"

	thumbnailDirectory = "council"
)

type Council interface {
	Create(ctx context.Context, req dto.CreateCouncilMemberRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCouncilMembersResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateCouncilMemberRequest) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Council
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Council, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Council {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCouncilMemberRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	thumbnailURL, objectName, err := s.uploadThumbnail(ctx, req.ThumbnailFile, req.Thumbnail)
	if err != nil {
		return err
	}

	if err = s.repo.Insert(ctx, req.ToModel(thumbnailURL, user)); err != nil {
		if objectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, s.cfg.External.S3.BucketName, thumbnailDirectory, objectName)
		}

		log.Error().Err(err).Msg("failed to create council member")

		return fmt.Errorf("failed to create council member: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllCouncil)
		shared.InvalidateCaches(c, s.cache, cacheCountCouncil)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCouncilMembersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.SortBy == constant.Empty {
		req.SortBy = model.FieldOrder
		req.SortDir = "ASC"
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllCouncil, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for council members")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count council members")

		return res, fmt.Errorf("failed to count council members: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get council members")

		return res, fmt.Errorf("failed to get council members: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save council members to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateCouncilMemberRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	member, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get council member")

		return fmt.Errorf("failed to get council member: %w", err)
	}

	if member.ID == constant.Empty {
		return failure.NotFound("council member")
	}

	fields := shared.TransformFields(req, user)

	var objectName string
	if req.Thumbnail != nil {
		url, name, err := s.uploadThumbnail(ctx, req.ThumbnailFile, req.Thumbnail)
		if err != nil {
			return err
		}

		fields[model.FieldThumbnail] = url
		objectName = name
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		if objectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, s.cfg.External.S3.BucketName, thumbnailDirectory, objectName)
		}

		log.Error().Err(err).Msg("failed to update council member")

		return fmt.Errorf("failed to update council member: %w", err)
	}

	if objectName != constant.Empty && member.ThumbnailURL != constant.Empty {
		_ = s.s3.DeleteFile(ctx, s.cfg.External.S3.BucketName, thumbnailDirectory, s.s3.GetObjectNameFromURL(member.ThumbnailURL))
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllCouncil)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	member, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get council member")

		return fmt.Errorf("failed to get council member: %w", err)
	}

	if member.ID == constant.Empty {
		return failure.NotFound("council member")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete council member")

		return fmt.Errorf("failed to delete council member: %w", err)
	}

	if member.ThumbnailURL != constant.Empty {
		_ = s.s3.DeleteFile(ctx, s.cfg.External.S3.BucketName, thumbnailDirectory, s.s3.GetObjectNameFromURL(member.ThumbnailURL))
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllCouncil)
		shared.InvalidateCaches(c, s.cache, cacheCountCouncil)
	}()

	return nil
}

func (s *serviceImpl) uploadThumbnail(ctx context.Context, file multipart.File, header *multipart.FileHeader) (url, objectName string, err error) {
	filename := uuid.NewString()

	parts := strings.Split(header.Filename, ".")
	if len(parts) > 1 {
		filename = fmt.Sprintf("%s.%s", filename, parts[len(parts)-1])
	}

	url, err = s.s3.UploadFile(ctx, s.cfg.External.S3.BucketName, thumbnailDirectory, file, header, filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload thumbnail")

		return constant.Empty, constant.Empty, fmt.Errorf("failed to upload thumbnail: %w", err)
	}

	return url, filename, nil
}
