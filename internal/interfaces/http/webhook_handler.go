package http

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empleos-api/internal/application/billing"
	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/infrastructure/payments"
	"github.com/jhoicas/Empleos-api/pkg/logger"
)

// Headers de firma del proveedor de pagos.
const (
	HeaderPaymentSignature = "X-Payment-Signature"
	HeaderPaymentTimestamp = "X-Payment-Timestamp"
)

// WebhookHandler recibe los eventos del proveedor de pagos.
type WebhookHandler struct {
	uc            *billing.PaymentWebhookUseCase
	webhookSecret string
	log           *logger.Logger
}

// NewWebhookHandler construye el handler del webhook.
func NewWebhookHandler(uc *billing.PaymentWebhookUseCase, webhookSecret string, log *logger.Logger) *WebhookHandler {
	return &WebhookHandler{uc: uc, webhookSecret: webhookSecret, log: log}
}

// HandleEvent godoc
// @Summary      Webhook del proveedor de pagos
// @Description  Verifica la firma HMAC y activa el aviso pagado. Los eventos
// @Description  cuyo cliente o aviso no se puede resolver responden 200 para
// @Description  que el proveedor no los reintente indefinidamente.
// @Tags         webhook
// @Accept       json
// @Produce      json
// @Param        X-Payment-Signature  header  string  true  "firma HMAC-SHA256 hex"
// @Param        X-Payment-Timestamp  header  string  true  "timestamp firmado"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/webhook/payment [post]
func (h *WebhookHandler) HandleEvent(c *fiber.Ctx) error {
	// La firma se verifica sobre el cuerpo crudo, antes de parsear nada.
	body := c.Body()
	signature := c.Get(HeaderPaymentSignature)
	timestamp := c.Get(HeaderPaymentTimestamp)
	if !payments.VerifySignature(h.webhookSecret, timestamp, body, signature) {
		h.log.Warn().Str("ip", c.IP()).Msg("webhook con firma inválida rechazado")
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_SIGNATURE", Message: domain.ErrInvalidSignature.Error()})
	}

	var event dto.PaymentEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "evento inválido"})
	}

	if err := h.uc.HandleEvent(event); err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_JOB_ID", Message: "el evento no trae jobId en metadata"})
		case domain.ErrNotFound:
			// Cliente, empresa o aviso irresolubles: se descarta con 200 para
			// cortar los reintentos del proveedor, dejando rastro en el log.
			h.log.Warn().
				Str("event_id", event.ID).
				Str("event_type", event.Type).
				Str("customer", event.Data.Object.Customer).
				Msg("evento de pago descartado: no se pudo resolver el destinatario")
			return c.SendStatus(fiber.StatusOK)
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.SendStatus(fiber.StatusOK)
}
