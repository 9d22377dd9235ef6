package catalog

import (
	"net/http"

	"portal/infras/otel"
	"portal/internal/domains/catalog/model"
	"portal/internal/domains/catalog/model/dto"
	"portal/internal/domains/catalog/service"
	"portal/shared/constant"
	gDto "portal/shared/dto"
	"portal/shared/validator"
	"portal/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Catalog
	otel    otel.Otel
}

func New(service service.Catalog, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/categories", func(r chi.Router) {
		r.Post("/", handler.CreateCategory)
		r.Get("/", handler.GetCategories)
		r.Delete("/{id}", handler.DeleteCategory)
	})

	r.Route("/programs", func(r chi.Router) {
		r.Post("/", handler.CreateProgram)
		r.Get("/", handler.GetPrograms)
		r.Get("/{slug}", handler.GetProgramBySlug)
		r.Patch("/{id}", handler.UpdateProgram)
	})
}

// CreateCategory creates a program category
// @Summary Create a category
// @Description Create a new program category. The slug is derived from the
// name when not supplied.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Create Category Request"
// @Success 201 {object} response.Message "Category created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/categories [post]
// @Security BearerAuth
func (handler *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCategory")
	defer scope.End()

	req := dto.CreateCategoryRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.CreateCategory(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create category")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Category created successfully")

	response.WithMessage(w, http.StatusCreated, "Category created successfully")
}

// GetCategories retrieves all categories
// @Summary Get all categories
// @Description Retrieve all program categories with optional filtering.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Success 200 {object} response.Data[dto.GetCategoriesResponse] "List of categories"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/categories [get]
func (handler *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCategories")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldName),
				Table:    model.CategoryTableName,
			},
		},
	}

	categories, err := handler.service.GetCategories(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get categories")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Categories retrieved successfully")

	response.WithJSON(w, http.StatusOK, categories)
}

// DeleteCategory deletes a category by ID
// @Summary Delete a category
// @Description Delete a category. Fails when programs still reference it.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} response.Message "Category deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/categories/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCategory")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteCategory(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete category")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Category deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Category deleted successfully")
}

// CreateProgram creates an academic program
// @Summary Create a program
// @Description Create a new academic program under an existing category.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body dto.CreateProgramRequest true "Create Program Request"
// @Success 201 {object} response.Message "Program created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/programs [post]
// @Security BearerAuth
func (handler *Handler) CreateProgram(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateProgram")
	defer scope.End()

	req := dto.CreateProgramRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.CreateProgram(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create program")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Program created successfully")

	response.WithMessage(w, http.StatusCreated, "Program created successfully")
}

// GetPrograms retrieves all programs based on query parameters.
// @Summary Get all programs
// @Description Retrieve programs with optional filtering and pagination.
// Anonymous and student callers only see active programs.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param title query string false "Filter by title"
// @Param level query string false "Filter by level"
// @Param category_id query string false "Filter by category"
// @Success 200 {object} response.Data[dto.GetProgramsResponse] "List of programs"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/programs [get]
func (handler *Handler) GetPrograms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPrograms")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	filterGroup := programFilters(r, role)

	programs, err := handler.service.GetPrograms(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get programs")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Programs retrieved successfully")

	response.WithJSON(w, http.StatusOK, programs)
}

// GetProgramBySlug retrieves an active program by its slug.
// @Summary Get a program by slug
// @Description Retrieve an active program by its slug. Inactive programs
// respond as not found.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param slug path string true "Program slug"
// @Success 200 {object} response.Data[dto.ProgramResponse] "Program details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/programs/{slug} [get]
func (handler *Handler) GetProgramBySlug(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProgramBySlug")
	defer scope.End()

	slug := chi.URLParam(r, constant.RequestParamSlug)

	program, err := handler.service.GetProgramBySlug(ctx, slug)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get program by slug")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Program retrieved successfully")

	response.WithJSON(w, http.StatusOK, program)
}

// UpdateProgram updates an existing program by its ID.
// @Summary Update a program
// @Description Update program fields. The slug is never regenerated.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Program ID"
// @Param request body dto.UpdateProgramRequest true "Update Program Request"
// @Success 200 {object} response.Message "Program updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/programs/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateProgram(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProgram")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateProgramRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateProgram(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update program")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Program updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Program updated successfully")
}

// programFilters builds the program listing filter group from query
// parameters. Equality filters on empty strings would match nothing (and the
// UUID column rejects the cast outright), so only non-empty values are added.
func programFilters(r *http.Request, role string) gDto.FilterGroup {
	title := r.URL.Query().Get(model.FieldTitle)
	level := r.URL.Query().Get(model.FieldLevel)
	categoryID := r.URL.Query().Get(model.FieldCategoryID)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	// Only add filters if the values are non-empty
	if title != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldTitle,
			Operator: gDto.FilterOperatorLike,
			Value:    title,
			Table:    model.ProgramTableName,
		})
	}

	if level != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldLevel,
			Operator: gDto.FilterOperatorEq,
			Value:    level,
			Table:    model.ProgramTableName,
		})
	}

	if categoryID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCategoryID,
			Operator: gDto.FilterOperatorEq,
			Value:    categoryID,
			Table:    model.ProgramTableName,
		})
	}

	// Only staff see retired programs.
	if role != constant.RoleStaff && role != constant.RoleSuperuser {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldIsActive,
			Operator: gDto.FilterOperatorEq,
			Value:    true,
			Table:    model.ProgramTableName,
		})
	}

	return filterGroup
}
