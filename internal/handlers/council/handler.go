package council

import (
	"net/http"

	"portal/infras/otel"
	"portal/internal/domains/council/model/dto"
	"portal/internal/domains/council/service"
	"portal/shared"
	"portal/shared/constant"
	gDto "portal/shared/dto"
	"portal/shared/failure"
	"portal/shared/validator"
	"portal/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Council
	otel    otel.Otel
}

func New(service service.Council, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/council", func(r chi.Router) {
		r.Post("/", handler.CreateMember)
		r.Get("/", handler.GetMembers)
		r.Patch("/{id}", handler.UpdateMember)
		r.Delete("/{id}", handler.DeleteMember)
	})
}

// CreateMember adds a governing council member.
// @Summary Create a council member
// @Description Create a governing council member with a thumbnail image.
// @Tags Council
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Member name"
// @Param role formData string true "Member role"
// @Param bio formData string false "Member biography"
// @Param order formData integer false "Display order"
// @Param thumbnail formData file true "Thumbnail image"
// @Success 201 {object} response.Message "Council member created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/council [post]
// @Security BearerAuth
func (handler *Handler) CreateMember(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMember")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, failure.BadRequestFromString("invalid multipart form"))

		return
	}

	req := dto.CreateCouncilMemberRequest{
		Name: r.FormValue("name"),
		Role: r.FormValue("role"),
		Bio:  r.FormValue("bio"),
	}

	if orderStr := r.FormValue("order"); orderStr != "" {
		if o, err := shared.ConvertStringToInt(orderStr); err == nil {
			req.DisplayOrder = &o
		}
	}

	file, fileHeader, err := r.FormFile("thumbnail")
	if err == nil {
		req.Thumbnail = fileHeader
		req.ThumbnailFile = file

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
		log.Error().Err(err).Msg("failed to create council member")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Council member created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Council member created successfully")
}

// GetMembers retrieves council members ordered for display.
// @Summary Get council members
// @Description Retrieve governing council members sorted by display order.
// @Tags Council
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetCouncilMembersResponse] "List of council members"
// @Failure 500 {object} response.Error
// @Router /v1/council [get]
func (handler *Handler) GetMembers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMembers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	members, err := handler.service.GetAll(ctx, queryParams, gDto.FilterGroup{})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get council members")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Council members retrieved successfully")

	response.WithJSON(w, http.StatusOK, members)
}

// UpdateMember updates a council member by ID.
// @Summary Update a council member
// @Description Update council member fields, optionally replacing the
// thumbnail.
// @Tags Council
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Council member ID"
// @Param name formData string false "Member name"
// @Param role formData string false "Member role"
// @Param bio formData string false "Member biography"
// @Param order formData integer false "Display order"
// @Param thumbnail formData file false "Thumbnail image"
// @Success 200 {object} response.Message "Council member updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/council/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMember")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, failure.BadRequestFromString("invalid multipart form"))

		return
	}

	req := dto.UpdateCouncilMemberRequest{
		Name: r.FormValue("name"),
		Role: r.FormValue("role"),
		Bio:  r.FormValue("bio"),
	}

	if orderStr := r.FormValue("order"); orderStr != "" {
		if o, err := shared.ConvertStringToInt(orderStr); err == nil {
			req.DisplayOrder = &o
		}
	}

	file, fileHeader, err := r.FormFile("thumbnail")
	if err == nil {
		req.Thumbnail = fileHeader
		req.ThumbnailFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update council member")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Council member updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Council member updated successfully")
}

// DeleteMember deletes a council member by ID.
// @Summary Delete a council member
// @Description Delete a council member and their thumbnail.
// @Tags Council
// @Accept json
// @Produce json
// @Param id path string true "Council member ID"
// @Success 200 {object} response.Message "Council member deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/council/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMember")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete council member")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Council member deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Council member deleted successfully")
}
