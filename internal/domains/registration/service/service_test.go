package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"portal/config"
	"portal/infras/otel/mocks"
	s3Mocks "portal/infras/s3/mocks"
	catalogMocks "portal/internal/domains/catalog/mocks"
	catalogModel "portal/internal/domains/catalog/model"
	registrationMocks "portal/internal/domains/registration/mocks"
	"portal/internal/domains/registration/model"
	"portal/internal/domains/registration/model/dto"
	"portal/internal/domains/registration/service"
	"portal/shared/cache"
	cacheMocks "portal/shared/cache/mocks"
	gDto "portal/shared/dto"
)

type registrationFixture struct {
	repo        *registrationMocks.MockRegistration
	programRepo *catalogMocks.MockProgram
	cache       *cacheMocks.MockRedisCache
	s3          *s3Mocks.MockS3
	svc         service.Registration
}

func newRegistrationFixture(t *testing.T) registrationFixture {
	ctrl := gomock.NewController(t)

	mockRepo := registrationMocks.NewMockRegistration(ctrl)
	mockProgramRepo := catalogMocks.NewMockProgram(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "portal-uploads"

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	return registrationFixture{
		repo:        mockRepo,
		programRepo: mockProgramRepo,
		cache:       mockCache,
		s3:          mockS3,
		svc:         service.New(mockRepo, mockProgramRepo, cfg, mockCache, mockOtel, mockS3),
	}
}

func TestRegistrationService_Create(t *testing.T) {
	activeProgram := catalogModel.Program{ID: "program-1", Slug: "mba", IsActive: true}

	req := dto.CreateRegistrationRequest{
		FullName:    "Jane Doe",
		Email:       "jane@example.com",
		PhoneNumber: "0200000000",
		ProgramID:   "f47ac10b-58cc-4372-a567-0e02b2c3d479",
		StudyMonth:  "January",
	}

	t.Run("successful submission defaults to regular", func(t *testing.T) {
		f := newRegistrationFixture(t)

		f.programRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeProgram, nil)

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, registration model.CourseRegistration) error {
				assert.Equal(t, model.TypeRegular, registration.RegistrationType)
				assert.Equal(t, "Jane Doe", registration.FullName)

				return nil
			})

		err := f.svc.Create(context.Background(), req)

		assert.NoError(t, err)
	})

	t.Run("payment proof is uploaded before insert", func(t *testing.T) {
		f := newRegistrationFixture(t)

		withProof := req
		withProof.PaymentProof = &multipart.FileHeader{Filename: "receipt.pdf"}

		f.programRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeProgram, nil)

		f.s3.EXPECT().
			UploadFile(gomock.Any(), "portal-uploads", "registrations/payments", gomock.Any(), withProof.PaymentProof, gomock.Any()).
			Return("https://cdn.example.com/receipt.pdf", nil)

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, registration model.CourseRegistration) error {
				assert.Equal(t, "https://cdn.example.com/receipt.pdf", registration.PaymentProof)

				return nil
			})

		err := f.svc.Create(context.Background(), withProof)

		assert.NoError(t, err)
	})

	t.Run("uploaded proof is cleaned up when insert fails", func(t *testing.T) {
		f := newRegistrationFixture(t)

		withProof := req
		withProof.PaymentProof = &multipart.FileHeader{Filename: "receipt.pdf"}

		f.programRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeProgram, nil)

		f.s3.EXPECT().
			UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("https://cdn.example.com/receipt.pdf", nil)

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("insert failed"))

		f.s3.EXPECT().
			DeleteFile(gomock.Any(), "portal-uploads", "registrations/payments", gomock.Any()).
			Return(nil)

		err := f.svc.Create(context.Background(), withProof)

		assert.Error(t, err)
	})

	t.Run("inactive program is rejected", func(t *testing.T) {
		f := newRegistrationFixture(t)

		f.programRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(catalogModel.Program{ID: "program-1", IsActive: false}, nil)

		err := f.svc.Create(context.Background(), req)

		assert.Error(t, err)
	})

	t.Run("unknown program is rejected", func(t *testing.T) {
		f := newRegistrationFixture(t)

		f.programRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(catalogModel.Program{}, nil)

		err := f.svc.Create(context.Background(), req)

		assert.Error(t, err)
	})
}

func TestRegistrationService_GetAll(t *testing.T) {
	t.Run("cache miss falls through to the repository", func(t *testing.T) {
		f := newRegistrationFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)

		f.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(2, nil)

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.CourseRegistration{{ID: "reg-1"}, {ID: "reg-2"}}, nil)

		res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Equal(t, 2, res.TotalData)
		assert.Len(t, res.Registrations, 2)
	})

	t.Run("repository error surfaces", func(t *testing.T) {
		f := newRegistrationFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)

		f.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, errors.New("count error"))

		_, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

		assert.Error(t, err)
	})
}
