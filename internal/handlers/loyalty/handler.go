package loyalty

import (
	"net/http"
	"sharmoria/infras/otel"
	"sharmoria/internal/domains/loyalty/service"
	"sharmoria/shared/constant"
	gDto "sharmoria/shared/dto"
	"sharmoria/transport/http/middleware"
	"sharmoria/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service        service.Loyalty
	authMiddleware middleware.Auth
	otel           otel.Otel
}

func New(service service.Loyalty, authMiddleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:        service,
		authMiddleware: authMiddleware,
		otel:           otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/loyalty", func(routerGroup chi.Router) {
		routerGroup.Use(handler.authMiddleware.Authenticate)
		routerGroup.Use(handler.authMiddleware.RequireRoles(constant.RoleAdmin, constant.RoleStaff))

		routerGroup.Get("/", handler.GetCustomers)
		routerGroup.Get("/{email}", handler.GetCustomerByEmail)
	})
}

// GetCustomers lists loyalty customers.
// @Summary Get loyalty customers
// @Description Retrieve loyalty customers with pagination.
// @Tags Loyalty
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetCustomersResponse] "List of loyalty customers"
// @Failure 500 {object} response.Error
// @Router /v1/loyalty [get]
// @Security BearerAuth
func (handler *Handler) GetCustomers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCustomers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	customers, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get loyalty customers")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, customers)
}

// GetCustomerByEmail retrieves one loyalty customer.
// @Summary Get a loyalty customer by email
// @Description Retrieve a loyalty customer's points balance by email.
// @Tags Loyalty
// @Accept json
// @Produce json
// @Param email path string true "Customer email"
// @Success 200 {object} response.Data[dto.CustomerResponse] "Loyalty customer details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/loyalty/{email} [get]
// @Security BearerAuth
func (handler *Handler) GetCustomerByEmail(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCustomerByEmail")
	defer scope.End()

	email := chi.URLParam(r, "email")

	customer, err := handler.service.GetByEmail(ctx, email)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get loyalty customer by email")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, customer)
}
