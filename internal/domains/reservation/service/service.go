package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"salas/config"
	"salas/infras/otel"
	"salas/internal/domains/reservation/events"
	"salas/internal/domains/reservation/model"
	"salas/internal/domains/reservation/model/dto"
	"salas/internal/domains/reservation/repository"
	"salas/internal/domains/reservation/schedule"
	roomModel "salas/internal/domains/room/model"
	roomRepo "salas/internal/domains/room/repository"
	"salas/shared"
	"salas/shared/cache"
	"salas/shared/constant"
	gDto "salas/shared/dto"
	"salas/shared/failure"
	"salas/shared/timezone"
)

const (
	cacheGetReservation    = "reservation:get"
	cacheGetAllReservation = "reservation:gets"
	cacheCountReservation  = "reservation:count"
)

const (
	msgReservationNotFound = "reservation not found"
	msgRoomUnavailable     = "room not found or inactive"
	msgScheduleConflict    = "schedule conflict: the room is already reserved in this interval"
)

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	Cancel(ctx context.Context, id string) (dto.ReservationResponse, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	GetAllByRoom(ctx context.Context, roomID string, req gDto.QueryParams) (dto.GetReservationsResponse, error)
	GetAllByResponsibleEmail(ctx context.Context, email string, req gDto.QueryParams) (dto.GetReservationsResponse, error)
}

type serviceImpl struct {
	repo      repository.Reservation
	rooms     roomRepo.Room
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	publisher events.Publisher
}

func New(
	repo repository.Reservation,
	rooms roomRepo.Room,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	publisher events.Publisher,
) Reservation {
	return &serviceImpl{
		repo:      repo,
		rooms:     rooms,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		publisher: publisher,
	}
}

// Create books a slot in a room. Checks run in a fixed order: the room must
// exist and be active, the slot must satisfy every scheduling rule, the
// headcount must fit the room, and only then is the conflict-checked insert
// attempted.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateReservation")
	defer scope.End()
	defer scope.TraceIfError(err)

	date, start, end, err := req.Slot()
	if err != nil {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	room, err := s.rooms.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty || !room.Active {
		return res, failure.BusinessRule(failure.KindRoomUnavailable, msgRoomUnavailable) //nolint:wrapcheck
	}

	if err = schedule.ValidateSlot(date, start, end, timezone.Now()); err != nil {
		return res, err
	}

	if req.Headcount != nil && *req.Headcount > room.Capacity {
		return res, failure.BusinessRule(failure.KindCapacityExceeded, //nolint:wrapcheck
			fmt.Sprintf("headcount %d exceeds room capacity %d", *req.Headcount, room.Capacity))
	}

	reservation := req.ToModel(date, start, end)

	conflict, err := s.repo.InsertConflictFree(ctx, reservation)
	if err != nil {
		log.Error().Err(err).Msg("failed to create reservation")

		return res, fmt.Errorf("failed to create reservation: %w", err)
	}

	if conflict {
		return res, failure.BusinessRule(failure.KindScheduleConflict, msgScheduleConflict) //nolint:wrapcheck
	}

	res.FromModel(reservation)

	s.publisher.ReservationCreated(ctx, res)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
	}()

	return res, nil
}

// Cancel removes a future reservation and returns its last state. Started or
// finished reservations stay on record.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancelReservation")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	reservation, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return res, failure.NotFound(msgReservationNotFound) //nolint:wrapcheck
	}

	if err = schedule.ValidateCancellable(reservation.ReservationDate, reservation.StartTime, timezone.Now()); err != nil {
		return res, err
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to cancel reservation")

		return res, fmt.Errorf("failed to cancel reservation: %w", err)
	}

	res.FromModel(reservation)

	s.publisher.ReservationCancelled(ctx, res)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetReservation, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete reservation from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetReservation")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetReservation, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation")

		return res, nil
	}

	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return res, failure.NotFound(msgReservationNotFound) //nolint:wrapcheck
	}

	res.FromModel(reservation)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllReservations")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
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

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CountReservations")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAllByRoom(ctx context.Context, roomID string, req gDto.QueryParams) (dto.GetReservationsResponse, error) {
	return s.GetAll(ctx, req, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomID,
				Value:    roomID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	})
}

func (s *serviceImpl) GetAllByResponsibleEmail(ctx context.Context, email string, req gDto.QueryParams) (dto.GetReservationsResponse, error) {
	return s.GetAll(ctx, req, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldResponsibleEmail,
				Value:    email,
				Operator: gDto.FilterOperatorEqFold,
				Table:    model.TableName,
			},
		},
	})
}
