package mailer

import (
	"encoding/json"
	"net/http"
	"sharmoria/infras/otel"
	"sharmoria/shared/constant"
	"sharmoria/shared/failure"
	"sharmoria/shared/validator"
	"sharmoria/transport/http/response"
	"strings"
	"text/template"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

// Handler renders and emits outbox notifications. It is the target of the
// dispatcher's HTTP delivery and stays CORS-open so the funnel can also call
// it directly for instant confirmations.
type Handler struct {
	otel otel.Otel
}

func New(otel otel.Otel) Handler {
	return Handler{
		otel: otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/mailer", func(routerGroup chi.Router) {
		routerGroup.Options("/send", handler.Preflight)
		routerGroup.Post("/send", handler.Send)
	})
}

type sendRequest struct {
	Recipient string          `json:"recipient" validate:"required,email"`
	Kind      string          `json:"kind"      validate:"required"`
	Payload   json.RawMessage `json:"payload"   validate:"required"`
}

var messageTemplates = map[string]*template.Template{
	"booking_created": template.Must(template.New("booking_created").Parse(
		"Hi {{.customer_name}},\n\n" +
			"Thank you for your booking!\n\n" +
			"Booking number: {{.booking_number}}\n" +
			"Date: {{.booking_date}} at {{.booking_time}}\n" +
			"Address: {{.service_address}}\n\n" +
			"Services:\n" +
			"{{range .services}}- {{.name}}: {{.price}}\n{{end}}" +
			"Subtotal: {{.total_amount}}\n" +
			"Travel fee: {{.travel_fee}}\n" +
			"Total: {{.grand_total}}\n" +
			"Payment: {{.payment_method}}\n\n" +
			"We will confirm your appointment shortly.\n")),
	"booking_status_changed": template.Must(template.New("booking_status_changed").Parse(
		"Hi {{.customer_name}},\n\n" +
			"Your booking {{.booking_number}} is now {{.status}}.\n\n" +
			"Date: {{.booking_date}} at {{.booking_time}}\n")),
	"contact_received": template.Must(template.New("contact_received").Parse(
		"Hi {{.name}},\n\n" +
			"We received your message and will get back to you soon.\n")),
	"gift_certificate": template.Must(template.New("gift_certificate").Parse(
		"Hi {{.recipient_name}},\n\n" +
			"{{.purchaser_name}} sent you a gift certificate!\n\n" +
			"Code: {{.code}}\n" +
			"Amount: {{.amount}}\n" +
			"Valid until: {{.expires_at}}\n" +
			"{{if .message}}\nMessage: {{.message}}\n{{end}}")),
}

func (handler *Handler) Preflight(writer http.ResponseWriter, _ *http.Request) {
	setCORSHeaders(writer)
	writer.WriteHeader(http.StatusNoContent)
}

// Send renders the message for a notification kind and hands it to the mail
// sink.
// @Summary Send a notification email
// @Description Render and send a notification message for the given kind and payload.
// @Tags Mailer
// @Accept json
// @Produce json
// @Param request body sendRequest true "Send Request"
// @Success 200 {object} response.Message "Notification sent"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/mailer/send [post]
func (handler *Handler) Send(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendMail")
	defer scope.End()

	setCORSHeaders(writer)

	req := sendRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	tmpl, ok := messageTemplates[req.Kind]
	if !ok {
		err := failure.BadRequestFromString("unknown notification kind: " + req.Kind)
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	var data map[string]any
	if err := json.Unmarshal(req.Payload, &data); err != nil {
		err := failure.BadRequestFromString("payload must be a JSON object")
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	var body strings.Builder
	if err := tmpl.Execute(&body, data); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("kind", req.Kind).Msg("failed to render notification message")

		response.WithError(writer, failure.InternalError(err))

		return
	}

	// The rendered message goes to the structured log, which the delivery
	// agent tails in every environment without SMTP credentials.
	log.Info().
		Str("recipient", req.Recipient).
		Str("kind", req.Kind).
		Str("body", body.String()).
		Msg("Notification rendered for delivery.")

	response.WithMessage(writer, http.StatusOK, "Notification sent")
}

func setCORSHeaders(writer http.ResponseWriter) {
	writer.Header().Set("Access-Control-Allow-Origin", constant.Asterix)
	writer.Header().Set("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
	writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
}
