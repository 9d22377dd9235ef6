package service

import (
	"context"
	"fmt"
	"strings"

	"portal/config"
	"portal/infras/otel"
	"portal/infras/s3"
	catalogModel "portal/internal/domains/catalog/model"
	catalogRepo "portal/internal/domains/catalog/repository"
	"portal/internal/domains/registration/model/dto"
	"portal/internal/domains/registration/repository"
	"portal/shared"
	"portal/shared/cache"
	"portal/shared/constant"
	gDto "portal/shared/dto"
	"portal/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllRegistration = "registration:gets"
	cacheCountRegistration  = "registration:count"

	paymentProofDirectory = "registrations/payments"
)

type Registration interface {
	Create(ctx context.Context, req dto.CreateRegistrationRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRegistrationsResponse, error)
}

type serviceImpl struct {
	repo        repository.Registration
	programRepo catalogRepo.Program
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	s3          s3.S3
}

func New(repo repository.Registration, programRepo catalogRepo.Program, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Registration {
	return &serviceImpl{
		repo:        repo,
		programRepo: programRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		s3:          s3,
	}
}

// Create accepts an anonymous public submission. The row is immutable once
// written; there is no update path.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRegistrationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	program, err := s.programRepo.Get(ctx, shared.FilterByID(req.ProgramID, catalogModel.FieldID, catalogModel.ProgramTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get program")

		return fmt.Errorf("failed to get program: %w", err)
	}

	if program.ID == constant.Empty || !program.IsActive {
		return failure.BadRequestFromString("program is not open for registration")
	}

	proofURL := constant.Empty
	var uploadedObjectName string
	if req.PaymentProof != nil {
		bucketName := s.cfg.External.S3.BucketName
		filename := uuid.NewString()

		parts := strings.Split(req.PaymentProof.Filename, ".")
		if len(parts) > 1 {
			filename = fmt.Sprintf("%s.%s", filename, parts[len(parts)-1])
		}

		url, err := s.s3.UploadFile(ctx, bucketName, paymentProofDirectory, req.PaymentProofFile, req.PaymentProof, filename)
		if err != nil {
			log.Error().Err(err).Msg("failed to upload payment proof")

			return fmt.Errorf("failed to upload payment proof: %w", err)
		}
		proofURL = url
		uploadedObjectName = filename
	}

	if err = s.repo.Insert(ctx, req.ToModel(proofURL)); err != nil {
		if uploadedObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, s.cfg.External.S3.BucketName, paymentProofDirectory, uploadedObjectName)
		}

		log.Error().Err(err).Msg("failed to create registration")

		return fmt.Errorf("failed to create registration: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRegistration)
		shared.InvalidateCaches(c, s.cache, cacheCountRegistration)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRegistrationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRegistration, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for registrations")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count registrations")

		return res, fmt.Errorf("failed to count registrations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get registrations")

		return res, fmt.Errorf("failed to get registrations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save registrations to cache")
		}
	}()

	return res, nil
}
