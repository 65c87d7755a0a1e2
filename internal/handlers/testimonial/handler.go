package testimonial

import (
	"net/http"
	"sharmoria/infras/otel"
	"sharmoria/internal/domains/testimonial/model"
	"sharmoria/internal/domains/testimonial/model/dto"
	"sharmoria/internal/domains/testimonial/service"
	"sharmoria/shared"
	"sharmoria/shared/constant"
	gDto "sharmoria/shared/dto"
	"sharmoria/shared/validator"
	"sharmoria/transport/http/middleware"
	"sharmoria/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service        service.Testimonial
	authMiddleware middleware.Auth
	otel           otel.Otel
}

func New(service service.Testimonial, authMiddleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:        service,
		authMiddleware: authMiddleware,
		otel:           otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/testimonials", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetApprovedTestimonials)
		routerGroup.Post("/", handler.CreateTestimonial)

		routerGroup.Group(func(protected chi.Router) {
			protected.Use(handler.authMiddleware.Authenticate)
			protected.Use(handler.authMiddleware.RequireRoles(constant.RoleAdmin))

			protected.Get("/all", handler.GetTestimonials)
			protected.Patch("/{id}/approval", handler.SetApproval)
			protected.Delete("/{id}", handler.DeleteTestimonial)
		})
	})
}

// GetApprovedTestimonials lists testimonials visible on the public site.
// @Summary Get approved testimonials
// @Description Retrieve approved testimonials with pagination.
// @Tags Testimonial
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetTestimonialsResponse] "List of approved testimonials"
// @Failure 500 {object} response.Error
// @Router /v1/testimonials [get]
func (handler *Handler) GetApprovedTestimonials(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetApprovedTestimonials")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	testimonials, err := handler.service.GetApproved(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get approved testimonials")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, testimonials)
}

// CreateTestimonial stores a testimonial submission for moderation.
// @Summary Submit a testimonial
// @Description Store a testimonial. It stays hidden until an admin approves it.
// @Tags Testimonial
// @Accept json
// @Produce json
// @Param request body dto.CreateTestimonialRequest true "Create Testimonial Request"
// @Success 201 {object} response.Message "Testimonial submitted"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/testimonials [post]
func (handler *Handler) CreateTestimonial(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTestimonial")
	defer scope.End()

	req := dto.CreateTestimonialRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create testimonial")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Testimonial submitted")
}

// GetTestimonials lists all testimonials for moderation.
// @Summary Get all testimonials
// @Description Retrieve all testimonials, including unapproved ones.
// @Tags Testimonial
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param is_approved query string false "Filter by approval flag (true/false)"
// @Success 200 {object} response.Data[dto.GetTestimonialsResponse] "List of testimonials"
// @Failure 500 {object} response.Error
// @Router /v1/testimonials/all [get]
// @Security BearerAuth
func (handler *Handler) GetTestimonials(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTestimonials")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	isApproved := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldIsApproved))

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if isApproved != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldIsApproved,
			Operator: gDto.FilterOperatorEq,
			Value:    *isApproved,
			Table:    model.TableName,
		})
	}

	testimonials, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get testimonials")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, testimonials)
}

// SetApproval approves or rejects a testimonial.
// @Summary Set testimonial approval
// @Description Approve or hide a testimonial.
// @Tags Testimonial
// @Accept json
// @Produce json
// @Param id path string true "Testimonial ID"
// @Param request body dto.ApproveTestimonialRequest true "Approval Request"
// @Success 200 {object} response.Message "Testimonial approval updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/testimonials/{id}/approval [patch]
// @Security BearerAuth
func (handler *Handler) SetApproval(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetApproval")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.ApproveTestimonialRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SetApproval(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set testimonial approval")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Testimonial approval updated successfully")
}

// DeleteTestimonial removes a testimonial.
// @Summary Delete a testimonial by ID
// @Description Delete a testimonial permanently.
// @Tags Testimonial
// @Accept json
// @Produce json
// @Param id path string true "Testimonial ID"
// @Success 200 {object} response.Message "Testimonial deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/testimonials/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTestimonial")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete testimonial")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Testimonial deleted successfully")
}
