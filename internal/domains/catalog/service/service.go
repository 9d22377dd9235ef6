package service

import (
	"context"
	"fmt"

	"portal/config"
	"portal/infras/otel"
	"portal/internal/domains/catalog/model"
	"portal/internal/domains/catalog/model/dto"
	"portal/internal/domains/catalog/repository"
	"portal/shared"
	"portal/shared/cache"
	"portal/shared/constant"
	gDto "portal/shared/dto"
	"portal/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetProgram     = "program:get"
	cacheGetAllProgram  = "program:gets"
	cacheCountProgram   = "program:count"
	cacheGetAllCategory = "category:gets"
	cacheCountCategory  = "category:count"
)

type Catalog interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) error
	GetCategories(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCategoriesResponse, error)
	DeleteCategory(ctx context.Context, id string) error
	CreateProgram(ctx context.Context, req dto.CreateProgramRequest) error
	GetPrograms(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetProgramsResponse, error)
	GetProgramBySlug(ctx context.Context, slug string) (dto.ProgramResponse, error)
	UpdateProgram(ctx context.Context, req dto.UpdateProgramRequest, id string) error
}

type serviceImpl struct {
	categoryRepo repository.Category
	programRepo  repository.Program
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(categoryRepo repository.Category, programRepo repository.Program, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Catalog {
	return &serviceImpl{
		categoryRepo: categoryRepo,
		programRepo:  programRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateCategory")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exists, err := s.categoryRepo.Exist(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorEq,
				Value:    req.Name,
				Table:    model.CategoryTableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check category name")

		return fmt.Errorf("failed to check category name: %w", err)
	}

	if exists {
		return failure.Conflict("category name already exists")
	}

	if err = s.categoryRepo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create category")

		return fmt.Errorf("failed to create category: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllCategory)
		shared.InvalidateCaches(c, s.cache, cacheCountCategory)
	}()

	return nil
}

func (s *serviceImpl) GetCategories(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCategoriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCategories")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllCategory, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for categories")

		return res, nil
	}

	total, err := s.categoryRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count categories")

		return res, fmt.Errorf("failed to count categories: %w", err)
	}

	models, err := s.categoryRepo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get categories")

		return res, fmt.Errorf("failed to get categories: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save categories to cache")
		}
	}()

	return res, nil
}

// DeleteCategory refuses to delete a category that still has programs; the
// database enforces the same rule with ON DELETE RESTRICT.
func (s *serviceImpl) DeleteCategory(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteCategory")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.categoryRepo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.CategoryTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if category exists")

		return fmt.Errorf("failed to check if category exists: %w", err)
	}

	if !exists {
		return failure.NotFound("category")
	}

	referenced, err := s.programRepo.Exist(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldCategoryID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    model.ProgramTableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check category references")

		return fmt.Errorf("failed to check category references: %w", err)
	}

	if referenced {
		return failure.Conflict("category still has programs")
	}

	if err = s.categoryRepo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.CategoryTableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete category")

		return fmt.Errorf("failed to delete category: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllCategory)
		shared.InvalidateCaches(c, s.cache, cacheCountCategory)
	}()

	return nil
}

func (s *serviceImpl) CreateProgram(ctx context.Context, req dto.CreateProgramRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateProgram")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	categoryExists, err := s.categoryRepo.Exist(ctx, shared.FilterByID(req.CategoryID, model.FieldID, model.CategoryTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check category")

		return fmt.Errorf("failed to check category: %w", err)
	}

	if !categoryExists {
		return failure.BadRequestFromString("category does not exist")
	}

	program := req.ToModel(user)

	slugTaken, err := s.programRepo.Exist(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldSlug,
				Operator: gDto.FilterOperatorEq,
				Value:    program.Slug,
				Table:    model.ProgramTableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check program slug")

		return fmt.Errorf("failed to check program slug: %w", err)
	}

	if slugTaken {
		return failure.Conflict("program slug already exists")
	}

	if err = s.programRepo.Insert(ctx, program); err != nil {
		log.Error().Err(err).Msg("failed to create program")

		return fmt.Errorf("failed to create program: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllProgram)
		shared.InvalidateCaches(c, s.cache, cacheCountProgram)
	}()

	return nil
}

func (s *serviceImpl) GetPrograms(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetProgramsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPrograms")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllProgram, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for programs")

		return res, nil
	}

	total, err := s.programRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count programs")

		return res, fmt.Errorf("failed to count programs: %w", err)
	}

	models, err := s.programRepo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get programs")

		return res, fmt.Errorf("failed to get programs: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save programs to cache")
		}
	}()

	return res, nil
}

// GetProgramBySlug serves the public detail page; inactive programs are
// indistinguishable from absent ones.
func (s *serviceImpl) GetProgramBySlug(ctx context.Context, slug string) (res dto.ProgramResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetProgramBySlug")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetProgram, slug)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for program")

		return res, nil
	}

	program, err := s.programRepo.Get(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldSlug,
				Operator: gDto.FilterOperatorEq,
				Value:    slug,
				Table:    model.ProgramTableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get program")

		return res, fmt.Errorf("failed to get program: %w", err)
	}

	if program.ID == constant.Empty || !program.IsActive {
		return res, failure.NotFound("program")
	}

	res.FromModel(program)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save program to cache")
		}
	}()

	return res, nil
}

// UpdateProgram never touches the slug, no matter what happens to the title.
func (s *serviceImpl) UpdateProgram(ctx context.Context, req dto.UpdateProgramRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateProgram")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.ProgramTableName)

	current, err := s.programRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get program")

		return fmt.Errorf("failed to get program: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("program")
	}

	if req.CategoryID != constant.Empty && req.CategoryID != current.CategoryID {
		categoryExists, err := s.categoryRepo.Exist(ctx, shared.FilterByID(req.CategoryID, model.FieldID, model.CategoryTableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check category")

			return fmt.Errorf("failed to check category: %w", err)
		}

		if !categoryExists {
			return failure.BadRequestFromString("category does not exist")
		}
	}

	updatedFields := shared.TransformFields(req, user)

	if err = s.programRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update program")

		return fmt.Errorf("failed to update program: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetProgram, current.Slug)); err != nil {
			log.Error().Err(err).Msg("failed to delete program cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllProgram)
		shared.InvalidateCaches(c, s.cache, cacheCountProgram)
	}()

	return nil
}
