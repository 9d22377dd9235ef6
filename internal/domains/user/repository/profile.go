package repository

//go:generate go run go.uber.org/mock/mockgen -source=./profile.go -destination=../mocks/profile_mock.go -package=mocks

import (
	"context"

	"portal/infras/otel"
	"portal/infras/postgres"
	"portal/internal/domains/user/model"
	gDto "portal/shared/dto"
	gRepo "portal/shared/repository"
)

type StaffProfile interface {
	Insert(ctx context.Context, model model.StaffProfile) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.StaffProfile, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type StudentProfile interface {
	Insert(ctx context.Context, model model.StudentProfile) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.StudentProfile, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type staffProfileImpl struct {
	gRepo.Repository[model.StaffProfile]
	db   *postgres.Connection
	otel otel.Otel
}

func NewStaffProfile(db *postgres.Connection, otel otel.Otel) StaffProfile {
	return &staffProfileImpl{
		Repository: gRepo.NewRepository[model.StaffProfile](model.StaffProfileEntityName, model.StaffProfileTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type studentProfileImpl struct {
	gRepo.Repository[model.StudentProfile]
	db   *postgres.Connection
	otel otel.Otel
}

func NewStudentProfile(db *postgres.Connection, otel otel.Otel) StudentProfile {
	return &studentProfileImpl{
		Repository: gRepo.NewRepository[model.StudentProfile](model.StudentProfileEntityName, model.StudentProfileTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
