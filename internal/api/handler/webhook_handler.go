package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/csvshipper/csv-shipper/internal/core/ports"
	"github.com/csvshipper/csv-shipper/internal/infrastructure/queue"
)

// WebhookEnqueuer is the interface the handler uses to hand off notifications.
type WebhookEnqueuer interface {
	TryEnqueue(event ports.WebhookEventInput) error
}

// WebhookHandler accepts carrier notifications and processes them asynchronously.
type WebhookHandler struct {
	queue WebhookEnqueuer
	now   func() time.Time
}

func NewWebhookHandler(q WebhookEnqueuer) *WebhookHandler {
	return &WebhookHandler{queue: q, now: time.Now}
}

// Receive handles POST /webhooks/shipengine and answers 202 once queued.
//
// @Summary      Receive a ShipEngine webhook
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        body  body      webhookRequest  true  "Webhook notification"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /webhooks/shipengine [post]
func (h *WebhookHandler) Receive(c echo.Context) error {
	var req webhookRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err := h.queue.TryEnqueue(ports.WebhookEventInput{
		ResourceURL:  req.ResourceURL,
		ResourceType: req.ResourceType,
		ReceivedAt:   h.now().UTC(),
		Payload:      req.Data,
	})
	if errors.Is(err, queue.ErrQueueFull) || errors.Is(err, queue.ErrClosed) {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "webhook intake unavailable, retry later")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, acceptedResponse{Message: "webhook accepted"})
}
