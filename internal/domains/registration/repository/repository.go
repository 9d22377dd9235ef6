package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"portal/infras/otel"
	"portal/infras/postgres"
	"portal/internal/domains/registration/model"
	gDto "portal/shared/dto"
	gRepo "portal/shared/repository"
)

type Registration interface {
	Insert(ctx context.Context, model model.CourseRegistration) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.CourseRegistration, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.CourseRegistration, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.CourseRegistration]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Registration {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.CourseRegistration](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
