package ports

import (
	"context"
	"time"

	"github.com/csvshipper/csv-shipper/internal/core/domain"
)

// WebhookEventInput is the DTO passed from the transport layer to WebhookService.
type WebhookEventInput struct {
	ResourceURL  string
	ResourceType string
	ReceivedAt   time.Time
	Payload      map[string]any
}

// WebhookService processes carrier webhook notifications.
type WebhookService interface {
	Process(ctx context.Context, event WebhookEventInput) error
}

// WebhookEventRepository persists received webhook notifications for audit.
type WebhookEventRepository interface {
	Insert(ctx context.Context, event *domain.WebhookEvent) error
}
