package registration

import (
	"net/http"

	"portal/infras/otel"
	"portal/internal/domains/registration/model"
	"portal/internal/domains/registration/model/dto"
	"portal/internal/domains/registration/service"
	"portal/shared/constant"
	gDto "portal/shared/dto"
	"portal/shared/failure"
	"portal/shared/validator"
	"portal/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Registration
	otel    otel.Otel
}

func New(service service.Registration, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/registrations", func(r chi.Router) {
		r.Post("/", handler.CreateRegistration)
		r.Get("/", handler.GetRegistrations)
	})
}

// CreateRegistration handles a public course registration submission.
// @Summary Submit a course registration
// @Description Submit a registration for an active program, optionally with
// a payment proof document.
// @Tags Registration
// @Accept multipart/form-data
// @Produce json
// @Param full_name formData string true "Applicant full name"
// @Param email formData string true "Applicant email"
// @Param phone_number formData string true "Applicant phone number"
// @Param program_id formData string true "Program ID"
// @Param registration_type formData string false "regular or resit"
// @Param study_month formData string true "Intended start month"
// @Param payment_proof formData file false "Payment proof (pdf/png/jpg)"
// @Success 201 {object} response.Message "Registration submitted successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/registrations [post]
func (handler *Handler) CreateRegistration(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRegistration")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, failure.BadRequestFromString("invalid multipart form"))

		return
	}

	req := dto.CreateRegistrationRequest{
		FullName:         r.FormValue("full_name"),
		Email:            r.FormValue("email"),
		PhoneNumber:      r.FormValue("phone_number"),
		ProgramID:        r.FormValue("program_id"),
		RegistrationType: r.FormValue("registration_type"),
		StudyMonth:       r.FormValue("study_month"),
	}

	file, fileHeader, err := r.FormFile("payment_proof")
	if err == nil {
		req.PaymentProof = fileHeader
		req.PaymentProofFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create registration")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Registration submitted successfully")

	response.WithMessage(w, http.StatusCreated, "Registration submitted successfully")
}

// GetRegistrations retrieves registrations for staff review.
// @Summary Get all registrations
// @Description Retrieve course registrations with optional filtering.
// @Tags Registration
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param full_name query string false "Filter by applicant name"
// @Param program_id query string false "Filter by program"
// @Param registration_type query string false "Filter by type"
// @Success 200 {object} response.Data[dto.GetRegistrationsResponse] "List of registrations"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/registrations [get]
// @Security BearerAuth
func (handler *Handler) GetRegistrations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRegistrations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := listFilters(r)

	registrations, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get registrations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Registrations retrieved successfully")

	response.WithJSON(w, http.StatusOK, registrations)
}

// listFilters builds the registration listing filter group from query
// parameters. Equality filters on empty strings would match nothing (and the
// UUID column rejects the cast outright), so only non-empty values are added.
func listFilters(r *http.Request) gDto.FilterGroup {
	fullName := r.URL.Query().Get(model.FieldFullName)
	programID := r.URL.Query().Get(model.FieldProgramID)
	registrationType := r.URL.Query().Get(model.FieldRegistrationType)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	// Only add filters if the values are non-empty
	if fullName != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldFullName,
			Operator: gDto.FilterOperatorLike,
			Value:    fullName,
			Table:    model.TableName,
		})
	}

	if programID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldProgramID,
			Operator: gDto.FilterOperatorEq,
			Value:    programID,
			Table:    model.TableName,
		})
	}

	if registrationType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRegistrationType,
			Operator: gDto.FilterOperatorEq,
			Value:    registrationType,
			Table:    model.TableName,
		})
	}

	return filterGroup
}
