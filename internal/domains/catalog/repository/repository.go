package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"portal/infras/otel"
	"portal/infras/postgres"
	"portal/internal/domains/catalog/model"
	gDto "portal/shared/dto"
	gRepo "portal/shared/repository"
)

type Category interface {
	Insert(ctx context.Context, model model.Category) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Category, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Category, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type Program interface {
	Insert(ctx context.Context, model model.Program) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Program, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Program, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type categoryImpl struct {
	gRepo.Repository[model.Category]
	db   *postgres.Connection
	otel otel.Otel
}

func NewCategory(db *postgres.Connection, otel otel.Otel) Category {
	return &categoryImpl{
		Repository: gRepo.NewRepository[model.Category](model.CategoryEntityName, model.CategoryTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type programImpl struct {
	gRepo.Repository[model.Program]
	db   *postgres.Connection
	otel otel.Otel
}

func NewProgram(db *postgres.Connection, otel otel.Otel) Program {
	return &programImpl{
		Repository: gRepo.NewRepository[model.Program](model.ProgramEntityName, model.ProgramTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
