package booking

import (
	"healthtick/infras/otel"
	"healthtick/internal/domains/booking/service"
	"healthtick/shared/constant"
	"healthtick/shared/validator"
	"healthtick/transport/http/response"
	"net/http"

	"healthtick/internal/domains/booking/model/dto"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/slots", handler.GetSlots)
		routerGroup.Get("/day/{date}", handler.GetDayView)
		routerGroup.Delete("/{id}", handler.DeleteBooking)
	})
}

// CreateBooking handles the creation of a new booking.
// @Summary Create a new booking
// @Description Book a coaching call after slot and conflict validation.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Booking created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created successfully")

	response.WithJSON(writer, http.StatusCreated, booking)
}

// GetBookings retrieves every stored booking.
// @Summary Get all bookings
// @Description Retrieve all stored bookings ordered by date and time.
// @Tags Booking
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	bookings, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(writer, http.StatusOK, bookings)
}

// GetDayView retrieves the bookings effective on one calendar day.
// @Summary Get the day view
// @Description Resolve direct bookings and recurring occurrences for a date, sorted by time.
// @Tags Booking
// @Accept json
// @Produce json
// @Param date path string true "Calendar date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.DayViewResponse] "Bookings for the day"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/day/{date} [get]
func (handler *Handler) GetDayView(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDayView")
	defer scope.End()

	date := chi.URLParam(request, constant.RequestParamDate)

	dayView, err := handler.service.DayView(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("date", date).Msg("failed to get day view")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Day view retrieved successfully")

	response.WithJSON(writer, http.StatusOK, dayView)
}

// GetSlots retrieves the daily slot grid.
// @Summary Get bookable slots
// @Description Retrieve the fixed daily sequence of bookable start times.
// @Tags Booking
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.SlotsResponse] "Bookable time slots"
// @Router /v1/bookings/slots [get]
func (handler *Handler) GetSlots(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSlots")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, handler.service.Slots(ctx))
}

// DeleteBooking removes a stored booking.
// @Summary Delete a booking
// @Description Delete a booking by id. Virtual occurrence ids resolve to the stored booking behind them.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking or occurrence ID"
// @Success 200 {object} response.Message "Booking deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [delete]
func (handler *Handler) DeleteBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to delete booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking deleted successfully")

	response.WithMessage(writer, http.StatusOK, "Booking deleted successfully")
}
