package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/csvshipper/csv-shipper/internal/core/domain"
	"github.com/csvshipper/csv-shipper/internal/core/ports"
	"github.com/csvshipper/csv-shipper/internal/pkg/metrics"
)

// DedupChecker abstracts the idempotency store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, resourceType, resourceURL string, data map[string]any) (bool, error)
	Mark(ctx context.Context, resourceType, resourceURL string, data map[string]any) error
}

type webhookService struct {
	repo  ports.WebhookEventRepository
	dedup DedupChecker
	log   zerolog.Logger
}

// NewWebhookService returns a WebhookService implementation.
func NewWebhookService(repo ports.WebhookEventRepository, dedup DedupChecker, log zerolog.Logger) ports.WebhookService {
	return &webhookService{repo: repo, dedup: dedup, log: log}
}

// Process deduplicates and persists a single carrier notification.
// The carrier retries deliveries, so the same update may arrive more than once.
// Successive tracking updates share a resource URL and are told apart by payload.
func (s *webhookService) Process(ctx context.Context, in ports.WebhookEventInput) error {
	isDup, err := s.dedup.IsDuplicate(ctx, in.ResourceType, in.ResourceURL, in.Payload)
	if err != nil {
		s.log.Warn().Err(err).Str("resource_url", in.ResourceURL).Msg("dedup check failed, processing anyway")
	} else if isDup {
		metrics.WebhooksDedupTotal.WithLabelValues("hit").Inc()
		s.log.Debug().Str("resource_url", in.ResourceURL).Str("resource_type", in.ResourceType).Msg("duplicate webhook skipped")
		return nil
	}
	metrics.WebhooksDedupTotal.WithLabelValues("miss").Inc()

	event := &domain.WebhookEvent{
		ResourceURL:  in.ResourceURL,
		ResourceType: in.ResourceType,
		ReceivedAt:   in.ReceivedAt,
		Payload:      in.Payload,
	}
	if err := s.repo.Insert(ctx, event); err != nil {
		metrics.WebhooksErrorsTotal.WithLabelValues("persist_failed").Inc()
		return fmt.Errorf("process webhook: %w", err)
	}

	// Marked only after a successful write so a failed insert is retried.
	if err := s.dedup.Mark(ctx, in.ResourceType, in.ResourceURL, in.Payload); err != nil {
		s.log.Warn().Err(err).Str("resource_url", in.ResourceURL).Msg("failed to set dedup key")
	}

	metrics.WebhooksProcessedTotal.WithLabelValues(in.ResourceType).Inc()
	s.log.Info().
		Str("resource_type", in.ResourceType).
		Str("resource_url", in.ResourceURL).
		Msg("webhook processed")

	return nil
}
