package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"portal/infras/otel"
	"portal/infras/postgres"
	"portal/internal/domains/reservation/model"
	roomModel "portal/internal/domains/room/model"
	"portal/shared/constant"
	gDto "portal/shared/dto"
	"portal/shared/logger"
	gRepo "portal/shared/repository"
)

var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrRoomUnavailable = errors.New("room unavailable")
)

type Reservation interface {
	Insert(ctx context.Context, model model.RoomReservation) error
	InsertWithRoomFlip(ctx context.Context, reservation model.RoomReservation, roomName string) (model.RoomReservation, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RoomReservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomReservation, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteAll(ctx context.Context) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.RoomReservation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.RoomReservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// InsertWithRoomFlip serializes the availability check, the ledger insert
// and the flag flip in one transaction. The row lock on the room makes
// concurrent bookings of the same room lose with ErrRoomUnavailable instead
// of double-writing the ledger.
func (repo *repositoryImpl) InsertWithRoomFlip(ctx context.Context, reservation model.RoomReservation, roomName string) (res model.RoomReservation, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".InsertWithRoomFlip")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var room struct {
		ID          string `db:"id"`
		IsAvailable bool   `db:"is_available"`
	}

	lockQuery := fmt.Sprintf("SELECT %s, %s FROM %s WHERE %s = $1 FOR UPDATE",
		roomModel.FieldID, roomModel.FieldIsAvailable, roomModel.TableName, roomModel.FieldName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, lockQuery)

	if err = tx.GetContext(ctx, &room, lockQuery, roomName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrRoomNotFound

			return res, err
		}

		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to lock room: %w", err)
	}

	if !room.IsAvailable {
		err = ErrRoomUnavailable

		return res, err
	}

	reservation.RoomID = room.ID

	if err = repo.InsertTx(ctx, tx, reservation); err != nil {
		return res, err
	}

	flipQuery := fmt.Sprintf("UPDATE %s SET %s = false, %s = $1, %s = $2 WHERE %s = $3",
		roomModel.TableName, roomModel.FieldIsAvailable,
		constant.FieldModifiedAt, constant.FieldModifiedBy, roomModel.FieldID)

	if _, err = tx.ExecContext(ctx, flipQuery, reservation.ModifiedAt, reservation.ModifiedBy, room.ID); err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to flip room flag: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to commit booking: %w", err)
	}

	return reservation, nil
}
