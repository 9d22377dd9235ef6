package service

import (
	"context"
	"fmt"

	"portal/config"
	"portal/infras/otel"
	reservationModel "portal/internal/domains/reservation/model"
	reservationRepo "portal/internal/domains/reservation/repository"
	"portal/internal/domains/room/model"
	"portal/internal/domains/room/model/dto"
	"portal/internal/domains/room/repository"
	"portal/shared"
	"portal/shared/cache"
	"portal/shared/constant"
	gDto "portal/shared/dto"
	"portal/shared/failure"
	"portal/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllRoom = "room:gets"
	cacheCountRoom  = "room:count"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error)
	Toggle(ctx context.Context, id string) (dto.ToggleResponse, error)
	Release(ctx context.Context, id string) (dto.ToggleResponse, error)
	Dashboard(ctx context.Context) (dto.DashboardResponse, error)
}

type serviceImpl struct {
	repo            repository.Room
	reservationRepo reservationRepo.Reservation
	cfg             *config.Config
	cache           cache.RedisCache
	otel            otel.Otel
}

func New(repo repository.Room, reservationRepo reservationRepo.Reservation, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Room {
	return &serviceImpl{
		repo:            repo,
		reservationRepo: reservationRepo,
		cfg:             cfg,
		cache:           cache,
		otel:            otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exists, err := s.repo.Exist(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorEq,
				Value:    req.Name,
				Table:    model.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check room name")

		return fmt.Errorf("failed to check room name: %w", err)
	}

	if exists {
		return failure.Conflict("room name already exists")
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create room")

		return fmt.Errorf("failed to create room: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoom, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}

// Toggle flips the availability flag unconditionally. It never touches the
// ledger.
func (s *serviceImpl) Toggle(ctx context.Context, id string) (res dto.ToggleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Toggle")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.setFlag(ctx, id, func(current bool) bool { return !current })
}

// Release forces the flag to true. Releasing an already-available room is a
// no-op state-wise.
func (s *serviceImpl) Release(ctx context.Context, id string) (res dto.ToggleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Release")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.setFlag(ctx, id, func(bool) bool { return true })
}

func (s *serviceImpl) setFlag(ctx context.Context, id string, next func(bool) bool) (res dto.ToggleResponse, err error) {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	room, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room")
	}

	updated := next(room.IsAvailable)

	if updated != room.IsAvailable {
		if err = s.repo.Update(ctx, map[string]any{
			model.FieldIsAvailable:   updated,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}, filter); err != nil {
			log.Error().Err(err).Msg("failed to update room flag")

			return res, fmt.Errorf("failed to update room flag: %w", err)
		}

		go func() {
			c := context.WithoutCancel(ctx)

			shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		}()
	}

	return dto.ToggleResponse{ID: room.ID, Name: room.Name, IsAvailable: updated}, nil
}

// Dashboard summarizes the room grid for staff: flag counts plus how many
// ledger rows landed on today's date.
func (s *serviceImpl) Dashboard(ctx context.Context) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard")
	defer scope.End()
	defer scope.TraceIfError(err)

	rooms, err := s.repo.GetAll(ctx, gDto.QueryParams{
		Page:    constant.DefaultValuePage,
		Limit:   1000,
		SortBy:  model.FieldName,
		SortDir: "ASC",
	}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.Rooms = make([]dto.RoomResponse, len(rooms))
	for i, room := range rooms {
		res.Rooms[i].FromModel(room)

		if room.IsAvailable {
			res.AvailableCount++
		} else {
			res.OccupiedCount++
		}
	}

	today, err := s.reservationRepo.Count(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    reservationModel.FieldDate,
				Operator: gDto.FilterOperatorEq,
				Value:    timezone.Format(timezone.Now(), constant.DateOnlyFormat),
				Table:    reservationModel.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to count today's reservations")

		return res, fmt.Errorf("failed to count today's reservations: %w", err)
	}

	res.TodayBookings = today

	return res, nil
}
