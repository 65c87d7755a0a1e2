package contact

import (
	"net/http"
	"sharmoria/infras/otel"
	"sharmoria/internal/domains/contact/model"
	"sharmoria/internal/domains/contact/model/dto"
	"sharmoria/internal/domains/contact/service"
	"sharmoria/shared/constant"
	gDto "sharmoria/shared/dto"
	"sharmoria/shared/validator"
	"sharmoria/transport/http/middleware"
	"sharmoria/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service        service.Contact
	authMiddleware middleware.Auth
	otel           otel.Otel
}

func New(service service.Contact, authMiddleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:        service,
		authMiddleware: authMiddleware,
		otel:           otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/contacts", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateContact)

		routerGroup.Group(func(protected chi.Router) {
			protected.Use(handler.authMiddleware.Authenticate)
			protected.Use(handler.authMiddleware.RequireRoles(constant.RoleAdmin, constant.RoleStaff))

			protected.Get("/", handler.GetContacts)
			protected.Get("/{id}", handler.GetContactByID)
			protected.Patch("/{id}/status", handler.UpdateContactStatus)
		})
	})
}

// CreateContact stores a contact form submission.
// @Summary Submit a contact message
// @Description Store a contact form submission and notify the studio inbox.
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body dto.CreateContactRequest true "Create Contact Request"
// @Success 201 {object} response.Message "Message received"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contacts [post]
func (handler *Handler) CreateContact(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateContact")
	defer scope.End()

	req := dto.CreateContactRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create contact")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Message received")
}

// GetContacts lists contact messages.
// @Summary Get all contact messages
// @Description Retrieve contact messages with optional status filtering and pagination.
// @Tags Contact
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status (new, read, responded)"
// @Success 200 {object} response.Data[dto.GetContactsResponse] "List of contact messages"
// @Failure 500 {object} response.Error
// @Router /v1/contacts [get]
// @Security BearerAuth
func (handler *Handler) GetContacts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContacts")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	status := r.URL.Query().Get(model.FieldStatus)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	contacts, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get contacts")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, contacts)
}

// GetContactByID retrieves one contact message.
// @Summary Get a contact message by ID
// @Description Retrieve a contact message by its unique identifier.
// @Tags Contact
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} response.Data[dto.ContactResponse] "Contact details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contacts/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetContactByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContactByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	contact, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get contact by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, contact)
}

// UpdateContactStatus advances a contact through its workflow.
// @Summary Update contact status
// @Description Move a contact message forward in its workflow. Backward moves are rejected with 409.
// @Tags Contact
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Param request body dto.UpdateContactStatusRequest true "Status Update Request"
// @Success 200 {object} response.Message "Contact status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contacts/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateContactStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateContactStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateContactStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update contact status")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Contact status updated successfully")
}
