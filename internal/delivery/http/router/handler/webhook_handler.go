package handler

import (
	"encoding/json"
	"io"

	"tracker/internal/delivery/http/response"
	"tracker/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HeaderATSSignature carries the sender's HMAC over the raw request body.
const HeaderATSSignature = "x-ats-signature"

// WebhookHandler ingests status-change events pushed by the ATS.
type WebhookHandler struct {
	uc usecase.WebhookUsecase
}

// NewWebhookHandler is the constructor for WebhookHandler, injected by Fx.
func NewWebhookHandler(uc usecase.WebhookUsecase) *WebhookHandler {
	return &WebhookHandler{uc: uc}
}

type webhookEnvelope struct {
	EventID string `json:"event_id"`
}

// Ingest handles POST /api/webhooks/ats. The signature covers the exact raw
// body bytes, so the body is read before any binding can reshape it.
func (h *WebhookHandler) Ingest(c echo.Context) error {
	rawBody, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return errors.Wrap(err, "read webhook body")
	}

	// Event id absent is treated the same whether the field is missing or
	// the body isn't JSON at all.
	var envelope webhookEnvelope
	_ = json.Unmarshal(rawBody, &envelope)

	signature := c.Request().Header.Get(HeaderATSSignature)

	result, err := h.uc.Ingest(c.Request().Context(), rawBody, signature, envelope.EventID)
	if err != nil {
		return errors.WithStack(err)
	}

	if result.Deduplicated {
		return response.OKDeduplicated(c)
	}

	return response.OK(c)
}
