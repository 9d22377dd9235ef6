package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"portal/config"
	"portal/infras/otel/mocks"
	catalogMocks "portal/internal/domains/catalog/mocks"
	"portal/internal/domains/catalog/model"
	"portal/internal/domains/catalog/model/dto"
	"portal/internal/domains/catalog/service"
	"portal/shared/cache"
	cacheMocks "portal/shared/cache/mocks"
	"portal/shared/constant"
	gDto "portal/shared/dto"
	"portal/shared/failure"
	gModel "portal/shared/model"
	"portal/shared/timezone"
)

type catalogFixture struct {
	categoryRepo *catalogMocks.MockCategory
	programRepo  *catalogMocks.MockProgram
	cache        *cacheMocks.MockRedisCache
	svc          service.Catalog
}

func newCatalogFixture(t *testing.T) catalogFixture {
	ctrl := gomock.NewController(t)

	mockCategoryRepo := catalogMocks.NewMockCategory(ctrl)
	mockProgramRepo := catalogMocks.NewMockProgram(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	mockCache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	return catalogFixture{
		categoryRepo: mockCategoryRepo,
		programRepo:  mockProgramRepo,
		cache:        mockCache,
		svc:          service.New(mockCategoryRepo, mockProgramRepo, cfg, mockCache, mockOtel),
	}
}

func staffCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-user-id")
}

func TestCatalogService_CreateCategory(t *testing.T) {
	t.Run("successful creation derives slug from name", func(t *testing.T) {
		f := newCatalogFixture(t)

		f.categoryRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		f.categoryRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, category model.Category) error {
				assert.Equal(t, "business-studies", category.Slug)

				return nil
			})

		err := f.svc.CreateCategory(staffCtx(), dto.CreateCategoryRequest{Name: "Business Studies"})

		assert.NoError(t, err)
	})

	t.Run("duplicate name is a conflict", func(t *testing.T) {
		f := newCatalogFixture(t)

		f.categoryRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		err := f.svc.CreateCategory(staffCtx(), dto.CreateCategoryRequest{Name: "Business Studies"})

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})
}

func TestCatalogService_DeleteCategory(t *testing.T) {
	t.Run("referenced category is protected", func(t *testing.T) {
		f := newCatalogFixture(t)

		f.categoryRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		f.programRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		err := f.svc.DeleteCategory(staffCtx(), "category-1")

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("unreferenced category is deleted", func(t *testing.T) {
		f := newCatalogFixture(t)

		f.categoryRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		f.programRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		f.categoryRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		err := f.svc.DeleteCategory(staffCtx(), "category-1")

		assert.NoError(t, err)
	})

	t.Run("missing category is not found", func(t *testing.T) {
		f := newCatalogFixture(t)

		f.categoryRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := f.svc.DeleteCategory(staffCtx(), "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestCatalogService_CreateProgram(t *testing.T) {
	req := dto.CreateProgramRequest{
		CategoryID:  "f47ac10b-58cc-4372-a567-0e02b2c3d479",
		Title:       "Master of Business Administration",
		Level:       model.LevelPostgraduate,
		Summary:     "An overview.",
		Description: "Full details.",
	}

	t.Run("slug derived from title on first save", func(t *testing.T) {
		f := newCatalogFixture(t)

		f.categoryRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		f.programRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		f.programRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, program model.Program) error {
				assert.Equal(t, "master-of-business-administration", program.Slug)
				assert.Equal(t, "12 Months", program.Duration)
				assert.True(t, program.IsActive)

				return nil
			})

		err := f.svc.CreateProgram(staffCtx(), req)

		assert.NoError(t, err)
	})

	t.Run("explicit slug wins over derivation", func(t *testing.T) {
		f := newCatalogFixture(t)

		withSlug := req
		withSlug.Slug = "mba-accra"

		f.categoryRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		f.programRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		f.programRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, program model.Program) error {
				assert.Equal(t, "mba-accra", program.Slug)

				return nil
			})

		err := f.svc.CreateProgram(staffCtx(), withSlug)

		assert.NoError(t, err)
	})

	t.Run("unknown category is rejected", func(t *testing.T) {
		f := newCatalogFixture(t)

		f.categoryRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := f.svc.CreateProgram(staffCtx(), req)

		assert.Error(t, err)
	})

	t.Run("duplicate slug is a conflict", func(t *testing.T) {
		f := newCatalogFixture(t)

		f.categoryRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		f.programRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		err := f.svc.CreateProgram(staffCtx(), req)

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})
}

func TestCatalogService_UpdateProgram(t *testing.T) {
	current := model.Program{
		ID:         "program-1",
		CategoryID: "category-1",
		Title:      "Master of Business Administration",
		Slug:       "master-of-business-administration",
		Level:      model.LevelPostgraduate,
		IsActive:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "staff-user-id",
			ModifiedBy: "staff-user-id",
		},
	}

	t.Run("title edit never regenerates the slug", func(t *testing.T) {
		f := newCatalogFixture(t)

		f.programRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(current, nil)

		f.programRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.NotContains(t, fields, model.FieldSlug)
				assert.Equal(t, "Executive MBA", fields[model.FieldTitle])

				return nil
			})

		err := f.svc.UpdateProgram(staffCtx(), dto.UpdateProgramRequest{Title: "Executive MBA"}, "program-1")

		assert.NoError(t, err)
	})

	t.Run("missing program is not found", func(t *testing.T) {
		f := newCatalogFixture(t)

		f.programRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Program{}, nil)

		err := f.svc.UpdateProgram(staffCtx(), dto.UpdateProgramRequest{Title: "Executive MBA"}, "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestCatalogService_GetProgramBySlug(t *testing.T) {
	t.Run("inactive program behaves as absent", func(t *testing.T) {
		f := newCatalogFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)

		f.programRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Program{ID: "program-1", Slug: "mba", IsActive: false}, nil)

		_, err := f.svc.GetProgramBySlug(context.Background(), "mba")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("active program is returned", func(t *testing.T) {
		f := newCatalogFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)

		f.programRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Program{ID: "program-1", Slug: "mba", Title: "MBA", IsActive: true}, nil)

		res, err := f.svc.GetProgramBySlug(context.Background(), "mba")

		assert.NoError(t, err)
		assert.Equal(t, "mba", res.Slug)
	})
}

func TestCatalogService_GetPrograms(t *testing.T) {
	t.Run("cache miss falls through to the repository", func(t *testing.T) {
		f := newCatalogFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)

		f.programRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)

		f.programRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Program{{ID: "program-1", Slug: "mba", IsActive: true}}, nil)

		res, err := f.svc.GetPrograms(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
		assert.Len(t, res.Programs, 1)
	})

	t.Run("count error surfaces", func(t *testing.T) {
		f := newCatalogFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)

		f.programRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, errors.New("count error"))

		_, err := f.svc.GetPrograms(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

		assert.Error(t, err)
	})
}
