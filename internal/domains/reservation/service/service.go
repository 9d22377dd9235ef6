package service

import (
	"context"
	"errors"
	"fmt"

	"portal/config"
	"portal/infras/otel"
	"portal/internal/domains/reservation/model"
	"portal/internal/domains/reservation/model/dto"
	"portal/internal/domains/reservation/repository"
	userModel "portal/internal/domains/user/model"
	userRepo "portal/internal/domains/user/repository"
	"portal/shared"
	"portal/shared/cache"
	"portal/shared/constant"
	gDto "portal/shared/dto"
	"portal/shared/failure"
	gModel "portal/shared/model"
	"portal/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllReservation = "reservation:gets"
	cacheCountReservation  = "reservation:count"
	cacheGetAllRoom        = "room:gets"
)

type Reservation interface {
	Book(ctx context.Context, req dto.BookRoomRequest) (dto.ReservationResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	Delete(ctx context.Context, id string) (dto.DeleteReservationResponse, error)
	Purge(ctx context.Context) (dto.PurgeResponse, error)
}

type serviceImpl struct {
	repo        repository.Reservation
	userRepo    userRepo.User
	studentRepo userRepo.StudentProfile
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(repo repository.Reservation, userRepo userRepo.User, studentRepo userRepo.StudentProfile, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Reservation {
	return &serviceImpl{
		repo:        repo,
		userRepo:    userRepo,
		studentRepo: studentRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// Book runs the whole booking workflow: it snapshots the actor's identity,
// composes the time slot, and hands the check-and-flip to the repository's
// single transaction. An unavailable room books nothing and comes back as a
// conflict.
func (s *serviceImpl) Book(ctx context.Context, req dto.BookRoomRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Book")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	user, err := s.userRepo.Get(ctx, shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return res, failure.Unauthorized("authentication required")
	}

	profile, err := s.studentRepo.Get(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    user.ID,
				Table:    userModel.StudentProfileTableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get student profile")

		return res, fmt.Errorf("failed to get student profile: %w", err)
	}

	reservation := s.snapshot(user, profile, req)

	created, err := s.repo.InsertWithRoomFlip(ctx, reservation, req.RoomName)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRoomNotFound):
			return res, failure.NotFound("room")
		case errors.Is(err, repository.ErrRoomUnavailable):
			return res, failure.Conflict("room is currently unavailable")
		default:
			log.Error().Err(err).Str("room", req.RoomName).Msg("failed to book room")

			return res, fmt.Errorf("failed to book room: %w", err)
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
	}()

	res.FromModel(created)

	return res, nil
}

// snapshot freezes the actor's identity onto the ledger row, with the
// documented placeholders for anything missing.
func (s *serviceImpl) snapshot(user userModel.User, profile userModel.StudentProfile, req dto.BookRoomRequest) model.RoomReservation {
	studentID := model.PlaceholderDash
	if profile.StudentID != nil && *profile.StudentID != constant.Empty {
		studentID = *profile.StudentID
	}

	email := user.Email
	if email == constant.Empty {
		email = model.PlaceholderDash
	}

	phone := model.PlaceholderPhone
	if profile.PhoneNumber != nil && *profile.PhoneNumber != constant.Empty {
		phone = *profile.PhoneNumber
	}

	return model.RoomReservation{
		ID:          uuid.NewString(),
		UserID:      &user.ID,
		StudentName: user.FullName(),
		StudentID:   studentID,
		Email:       email,
		PhoneNumber: phone,
		Date:        ReservationDate(req.ArrivalDatetime),
		TimeSlot:    TimeSlot(req.ArrivalDatetime, req.DepartureDatetime),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user.Username,
			ModifiedBy: user.Username,
		},
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

// Delete removes a single ledger row and reports whose log it was. It never
// touches any room flag.
func (s *serviceImpl) Delete(ctx context.Context, id string) (res dto.DeleteReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	reservation, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return res, failure.NotFound("reservation")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete reservation")

		return res, fmt.Errorf("failed to delete reservation: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
	}()

	return dto.DeleteReservationResponse{StudentName: reservation.StudentName}, nil
}

// Purge clears the whole ledger and reports the count. Room flags are left
// as they are; the flag is advisory and reconciled only by bookings and
// staff release actions.
func (s *serviceImpl) Purge(ctx context.Context) (res dto.PurgeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Purge")
	defer scope.End()
	defer scope.TraceIfError(err)

	deleted, err := s.repo.DeleteAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to purge reservations")

		return res, fmt.Errorf("failed to purge reservations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
	}()

	return dto.PurgeResponse{Deleted: deleted}, nil
}
