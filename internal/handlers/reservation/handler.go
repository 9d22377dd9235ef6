package reservation

import (
	"net/http"

	"portal/infras/otel"
	"portal/internal/domains/reservation/model"
	"portal/internal/domains/reservation/model/dto"
	"portal/internal/domains/reservation/service"
	"portal/shared/constant"
	gDto "portal/shared/dto"
	"portal/shared/validator"
	"portal/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/reservations", func(r chi.Router) {
		r.Post("/", handler.BookRoom)
		r.Get("/", handler.GetReservations)
		r.Post("/purge", handler.PurgeReservations)
		r.Delete("/{id}", handler.DeleteReservation)
	})
}

// BookRoom books a study room for the authenticated student.
// @Summary Book a study room
// @Description Book a room by name. The booking snapshots the student's
// identity into the ledger and marks the room unavailable.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.BookRoomRequest true "Book Room Request"
// @Success 201 {object} response.Data[dto.ReservationResponse] "Reservation created"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations [post]
// @Security BearerAuth
func (handler *Handler) BookRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookRoom")
	defer scope.End()

	req := dto.BookRoomRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Book(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to book room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room booked successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetReservations retrieves the reservation ledger for staff.
// @Summary Get all reservations
// @Description Retrieve reservation ledger rows with optional filtering.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param student_name query string false "Filter by student name"
// @Param date query string false "Filter by reservation date"
// @Success 200 {object} response.Data[dto.GetReservationsResponse] "List of reservations"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations [get]
// @Security BearerAuth
func (handler *Handler) GetReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := listFilters(r)

	reservations, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservations retrieved successfully")

	response.WithJSON(w, http.StatusOK, reservations)
}

// DeleteReservation removes a single ledger row.
// @Summary Delete a reservation
// @Description Delete one reservation row. The room flag is not touched;
// use room release for that.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.DeleteReservationResponse] "Deleted reservation"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteReservation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Delete(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete reservation")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Reservation deleted successfully by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}

// PurgeReservations clears the whole ledger.
// @Summary Purge all reservations
// @Description Delete every reservation row and report how many were
// removed. Room flags are left as they are.
// @Tags Reservation
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.PurgeResponse] "Purge summary"
// @Failure 500 {object} response.Error
// @Router /v1/reservations/purge [post]
// @Security BearerAuth
func (handler *Handler) PurgeReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PurgeReservations")
	defer scope.End()

	res, err := handler.service.Purge(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to purge reservations")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Reservations purged successfully by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}

// listFilters builds the reservation listing filter group from query
// parameters. Equality filters on empty strings would match nothing, so only
// non-empty values are added.
func listFilters(r *http.Request) gDto.FilterGroup {
	studentName := r.URL.Query().Get(model.FieldStudentName)
	date := r.URL.Query().Get(model.FieldDate)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	// Only add filters if the values are non-empty
	if studentName != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStudentName,
			Operator: gDto.FilterOperatorLike,
			Value:    studentName,
			Table:    model.TableName,
		})
	}

	if date != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldDate,
			Operator: gDto.FilterOperatorEq,
			Value:    date,
			Table:    model.TableName,
		})
	}

	return filterGroup
}
