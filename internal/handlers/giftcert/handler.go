package giftcert

import (
	"net/http"
	"sharmoria/infras/otel"
	"sharmoria/internal/domains/giftcert/model"
	"sharmoria/internal/domains/giftcert/model/dto"
	"sharmoria/internal/domains/giftcert/service"
	"sharmoria/shared/constant"
	gDto "sharmoria/shared/dto"
	"sharmoria/shared/validator"
	"sharmoria/transport/http/middleware"
	"sharmoria/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service        service.GiftCertificate
	authMiddleware middleware.Auth
	otel           otel.Otel
}

func New(service service.GiftCertificate, authMiddleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:        service,
		authMiddleware: authMiddleware,
		otel:           otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/gift-certificates", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.PurchaseGiftCertificate)
		routerGroup.Get("/{code}", handler.GetGiftCertificateByCode)

		routerGroup.Group(func(protected chi.Router) {
			protected.Use(handler.authMiddleware.Authenticate)
			protected.Use(handler.authMiddleware.RequireRoles(constant.RoleAdmin, constant.RoleStaff))

			protected.Get("/", handler.GetGiftCertificates)
			protected.Post("/redeem", handler.RedeemGiftCertificate)
		})
	})
}

// PurchaseGiftCertificate creates a gift certificate.
// @Summary Purchase a gift certificate
// @Description Create a gift certificate valid for twelve months and notify the recipient.
// @Tags GiftCertificate
// @Accept json
// @Produce json
// @Param request body dto.PurchaseRequest true "Purchase Request"
// @Success 201 {object} response.Data[dto.GiftCertificateResponse] "Created gift certificate"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/gift-certificates [post]
func (handler *Handler) PurchaseGiftCertificate(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PurchaseGiftCertificate")
	defer scope.End()

	req := dto.PurchaseRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Purchase(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to purchase gift certificate")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Gift certificate created with code " + res.Code)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetGiftCertificateByCode checks a certificate for the redemption form.
// @Summary Get a gift certificate by code
// @Description Look up a gift certificate by its code. Expired certificates are reported as expired.
// @Tags GiftCertificate
// @Accept json
// @Produce json
// @Param code path string true "Gift certificate code (GC...)"
// @Success 200 {object} response.Data[dto.GiftCertificateResponse] "Gift certificate details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/gift-certificates/{code} [get]
func (handler *Handler) GetGiftCertificateByCode(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGiftCertificateByCode")
	defer scope.End()

	code := chi.URLParam(r, "code")

	res, err := handler.service.GetByCode(ctx, code)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get gift certificate by code")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// RedeemGiftCertificate marks a certificate as redeemed.
// @Summary Redeem a gift certificate
// @Description Redeem an active certificate. Already-redeemed or expired codes are rejected with 409.
// @Tags GiftCertificate
// @Accept json
// @Produce json
// @Param request body dto.RedeemRequest true "Redeem Request"
// @Success 200 {object} response.Data[dto.GiftCertificateResponse] "Redeemed gift certificate"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/gift-certificates/redeem [post]
// @Security BearerAuth
func (handler *Handler) RedeemGiftCertificate(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RedeemGiftCertificate")
	defer scope.End()

	req := dto.RedeemRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Redeem(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to redeem gift certificate")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetGiftCertificates lists certificates for the dashboard.
// @Summary Get all gift certificates
// @Description Retrieve gift certificates with optional status filtering and pagination.
// @Tags GiftCertificate
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status (active, redeemed, expired)"
// @Success 200 {object} response.Data[dto.GetGiftCertificatesResponse] "List of gift certificates"
// @Failure 500 {object} response.Error
// @Router /v1/gift-certificates [get]
// @Security BearerAuth
func (handler *Handler) GetGiftCertificates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGiftCertificates")
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

	certs, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get gift certificates")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, certs)
}
