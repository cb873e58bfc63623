package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"healthtick/config"
	"healthtick/infras/kafka"
	"healthtick/infras/otel"
	"healthtick/internal/domains/booking/model"
	"healthtick/internal/domains/booking/model/dto"
	"healthtick/internal/domains/booking/repository"
	"healthtick/internal/domains/booking/schedule"
	clientModel "healthtick/internal/domains/client/model"
	clientRepo "healthtick/internal/domains/client/repository"
	"healthtick/shared"
	"healthtick/shared/cache"
	"healthtick/shared/constant"
	"healthtick/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllBooking = "booking:gets"
	cacheDayView       = "booking:day"

	eventBookingCreated = "booking.created"
	eventBookingDeleted = "booking.deleted"
)

type bookingEvent struct {
	Event      string    `json:"event"`
	BookingID  string    `json:"booking_id"`
	ClientID   string    `json:"client_id,omitempty"`
	Date       string    `json:"date,omitempty"`
	Time       string    `json:"time,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context) (dto.GetBookingsResponse, error)
	DayView(ctx context.Context, date string) (dto.DayViewResponse, error)
	Slots(ctx context.Context) dto.SlotsResponse
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo       repository.Booking
	clientRepo clientRepo.Client
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
	kafka      kafka.Client
}

func New(repo repository.Booking, clientRepo clientRepo.Client, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, kafka kafka.Client) Booking {
	return &serviceImpl{
		repo:       repo,
		clientRepo: clientRepo,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
		kafka:      kafka,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	callType := model.CallType(req.CallType)

	if req.IsRecurring && callType != model.CallTypeFollowUp {
		return res, failure.BadRequestFromString("only follow-up calls can be recurring") // nolint:wrapcheck
	}

	if !schedule.IsSlot(req.Time) {
		return res, failure.BadRequestFromString("time is not a bookable slot") // nolint:wrapcheck
	}

	crosses, err := schedule.CrossesMidnight(req.Time, callType.DurationMinutes())
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid time: %v", err)) // nolint:wrapcheck
	}

	if crosses {
		return res, failure.BadRequestFromString("booking may not cross midnight") // nolint:wrapcheck
	}

	client, err := s.clientRepo.Get(ctx, shared.FilterByID(req.ClientID, clientModel.FieldID, clientModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get client")

		return res, fmt.Errorf("failed to get client: %w", err)
	}

	if client.ID == constant.Empty {
		return res, failure.BadRequestFromString("client does not exist") // nolint:wrapcheck
	}

	bookings, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	dayBookings, err := schedule.ResolveDay(bookings, req.Date)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date: %v", err)) // nolint:wrapcheck
	}

	conflict, err := schedule.HasConflict(req.Time, callType.DurationMinutes(), dayBookings)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid time: %v", err)) // nolint:wrapcheck
	}

	if conflict {
		return res, failure.Conflict("time slot conflicts with an existing booking") // nolint:wrapcheck
	}

	booking := req.ToModel(client.Name)

	id, err := s.repo.Insert(ctx, booking)
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	booking.ID = id

	go func() {
		c := context.WithoutCancel(ctx)

		s.publishEvent(c, bookingEvent{
			Event:      eventBookingCreated,
			BookingID:  id,
			ClientID:   booking.ClientID,
			Date:       booking.Date,
			Time:       booking.Time,
			OccurredAt: time.Now(),
		})

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheDayView)
	}()

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAllBooking, "all")

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) DayView(ctx context.Context, date string) (res dto.DayViewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DayView")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = time.Parse(constant.CalendarDateFormat, date); err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date %q: expected YYYY-MM-DD", date)) // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheDayView, date)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for day view")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	dayBookings, err := schedule.ResolveDay(models, date)
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve day view")

		return res, fmt.Errorf("failed to resolve day view: %w", err)
	}

	sort.SliceStable(dayBookings, func(i, j int) bool {
		return dayBookings[i].Time < dayBookings[j].Time
	})

	res.FromModels(date, dayBookings)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save day view to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Slots(ctx context.Context) dto.SlotsResponse {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Slots")
	defer scope.End()

	return dto.SlotsResponse{Slots: schedule.Slots()}
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	// Deleting a virtual occurrence removes the stored booking behind
	// it, which retires every future occurrence at once.
	origin := schedule.ParseOccurrenceID(id).Origin()

	err = s.repo.Delete(ctx, origin)
	if errors.Is(err, repository.ErrNotFound) {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.publishEvent(c, bookingEvent{
			Event:      eventBookingDeleted,
			BookingID:  origin,
			OccurredAt: time.Now(),
		})

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheDayView)
	}()

	return nil
}

func (s *serviceImpl) publishEvent(ctx context.Context, event bookingEvent) {
	topic := s.cfg.Kafka.Topic.BookingEvents

	err := s.kafka.SendMessages(ctx, topic, kafka.Message{
		Key:   event.BookingID,
		Value: event,
	})
	if err != nil {
		log.Error().Err(err).Str("event", event.Event).Msg("failed to publish booking event")
	}
}
