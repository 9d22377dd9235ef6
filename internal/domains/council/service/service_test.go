package service

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"testing"

	"portal/config"
	otelMocks "portal/infras/otel/mocks"
	s3Mocks "portal/infras/s3/mocks"
	"portal/internal/domains/council/mocks"
	"portal/internal/domains/council/model"
	"portal/internal/domains/council/model/dto"
	"portal/shared/cache"
	cacheMocks "portal/shared/cache/mocks"
	"portal/shared/constant"
	gDto "portal/shared/dto"
	"portal/shared/failure"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type councilFixture struct {
	repo    *mocks.MockCouncil
	cache   *cacheMocks.MockRedisCache
	s3      *s3Mocks.MockS3
	service Council
}

func newCouncilFixture(t *testing.T) councilFixture {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockCouncil(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 60
	cfg.External.S3.BucketName = "portal-assets"

	return councilFixture{
		repo:    repo,
		cache:   mockCache,
		s3:      mockS3,
		service: New(repo, cfg, mockCache, otelMocks.NewOtel(), mockS3),
	}
}

func staffCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-1")
}

func thumbnail(filename string) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: filename}
}

func TestCouncilCreate(t *testing.T) {
	t.Run("success, thumbnail uploaded before insert", func(t *testing.T) {
		f := newCouncilFixture(t)

		req := dto.CreateCouncilMemberRequest{
			Name:      "Prof. Adaeze Okonkwo",
			Role:      "Chairperson",
			Bio:       "Founding member.",
			Thumbnail: thumbnail("chair.png"),
		}

		gomock.InOrder(
			f.s3.EXPECT().UploadFile(gomock.Any(), "portal-assets", "council", gomock.Any(), req.Thumbnail, gomock.Any()).
				Return("https://cdn.example.com/council/chair.png", nil),
			f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, member model.CouncilMember) error {
					assert.Equal(t, "Prof. Adaeze Okonkwo", member.Name)
					assert.Equal(t, "Chairperson", member.Role)
					assert.Equal(t, "https://cdn.example.com/council/chair.png", member.ThumbnailURL)
					assert.Equal(t, 0, member.DisplayOrder)
					assert.Equal(t, "staff-1", member.CreatedBy)

					return nil
				}),
		)

		err := f.service.Create(staffCtx(), req)
		assert.NoError(t, err)
	})

	t.Run("upload failure aborts before insert", func(t *testing.T) {
		f := newCouncilFixture(t)

		f.s3.EXPECT().UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("bucket unreachable"))

		err := f.service.Create(staffCtx(), dto.CreateCouncilMemberRequest{
			Name:      "Prof. Adaeze Okonkwo",
			Role:      "Chairperson",
			Thumbnail: thumbnail("chair.png"),
		})
		assert.Error(t, err)
	})

	t.Run("insert failure removes the uploaded object", func(t *testing.T) {
		f := newCouncilFixture(t)

		f.s3.EXPECT().UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("https://cdn.example.com/council/chair.png", nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
		f.s3.EXPECT().DeleteFile(gomock.Any(), "portal-assets", "council", gomock.Any()).Return(nil)

		err := f.service.Create(staffCtx(), dto.CreateCouncilMemberRequest{
			Name:      "Prof. Adaeze Okonkwo",
			Role:      "Chairperson",
			Thumbnail: thumbnail("chair.png"),
		})
		assert.Error(t, err)
	})
}

func TestCouncilGetAll(t *testing.T) {
	t.Run("defaults to display order ascending", func(t *testing.T) {
		f := newCouncilFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.CouncilMember, error) {
				assert.Equal(t, model.FieldOrder, params.SortBy)
				assert.Equal(t, "ASC", params.SortDir)

				return []model.CouncilMember{
					{ID: "member-1", Name: "Prof. Adaeze Okonkwo", DisplayOrder: 0},
					{ID: "member-2", Name: "Dr. Tunde Bakare", DisplayOrder: 1},
				}, nil
			})

		res, err := f.service.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})
		assert.NoError(t, err)
		assert.Len(t, res.Members, 2)
		assert.Equal(t, 2, res.TotalData)
	})

	t.Run("caller sort wins", func(t *testing.T) {
		f := newCouncilFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)
		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.CouncilMember, error) {
				assert.Equal(t, model.FieldName, params.SortBy)

				return []model.CouncilMember{}, nil
			})

		_, err := f.service.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10, SortBy: model.FieldName, SortDir: "DESC"}, gDto.FilterGroup{})
		assert.NoError(t, err)
	})
}

func TestCouncilUpdate(t *testing.T) {
	member := model.CouncilMember{
		ID:           "member-1",
		Name:         "Prof. Adaeze Okonkwo",
		Role:         "Chairperson",
		ThumbnailURL: "https://cdn.example.com/council/old.png",
	}

	t.Run("fields only, no thumbnail touch", func(t *testing.T) {
		f := newCouncilFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(member, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, "Vice Chairperson", fields[model.FieldRole])
				assert.NotContains(t, fields, model.FieldThumbnail)

				return nil
			})

		err := f.service.Update(staffCtx(), "member-1", dto.UpdateCouncilMemberRequest{Role: "Vice Chairperson"})
		assert.NoError(t, err)
	})

	t.Run("new thumbnail replaces the old object", func(t *testing.T) {
		f := newCouncilFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(member, nil)
		f.s3.EXPECT().UploadFile(gomock.Any(), "portal-assets", "council", gomock.Any(), gomock.Any(), gomock.Any()).
			Return("https://cdn.example.com/council/new.png", nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, "https://cdn.example.com/council/new.png", fields[model.FieldThumbnail])

				return nil
			})
		f.s3.EXPECT().GetObjectNameFromURL(member.ThumbnailURL).Return("old.png")
		f.s3.EXPECT().DeleteFile(gomock.Any(), "portal-assets", "council", "old.png").Return(nil)

		err := f.service.Update(staffCtx(), "member-1", dto.UpdateCouncilMemberRequest{
			Thumbnail: thumbnail("new.png"),
		})
		assert.NoError(t, err)
	})

	t.Run("unknown member", func(t *testing.T) {
		f := newCouncilFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.CouncilMember{}, nil)

		err := f.service.Update(staffCtx(), "missing", dto.UpdateCouncilMemberRequest{Role: "Chair"})
		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestCouncilDelete(t *testing.T) {
	t.Run("row and thumbnail removed", func(t *testing.T) {
		f := newCouncilFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.CouncilMember{
			ID:           "member-1",
			ThumbnailURL: "https://cdn.example.com/council/chair.png",
		}, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		f.s3.EXPECT().GetObjectNameFromURL("https://cdn.example.com/council/chair.png").Return("chair.png")
		f.s3.EXPECT().DeleteFile(gomock.Any(), "portal-assets", "council", "chair.png").Return(nil)

		err := f.service.Delete(staffCtx(), "member-1")
		assert.NoError(t, err)
	})

	t.Run("unknown member", func(t *testing.T) {
		f := newCouncilFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.CouncilMember{}, nil)

		err := f.service.Delete(staffCtx(), "missing")
		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
