// Package metrics defines and registers the custom Prometheus metrics for the
// csv-shipper API. It is the single source of truth for metric names, labels,
// and help strings.
//
// All metrics are registered with the default Prometheus registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "csvshipper"

// Carrier outcomes used as the "outcome" label value.
const (
	OutcomeOK             = "ok"
	OutcomeAPIError       = "api_error"
	OutcomeTransportError = "transport_error"
)

// ── Carrier metrics ───────────────────────────────────────────────────────────

// CarrierRequestsTotal counts calls to the carrier API.
// Labels:
//   - operation: "create_shipment", "create_label", "get_rates" or "label_from_rate"
//   - outcome: one of the Outcome* constants
var CarrierRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "carrier_requests_total",
		Help:      "Total number of carrier API requests, by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)

// CarrierRequestDuration measures the round trip of a single carrier API call.
var CarrierRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "carrier_request_duration_seconds",
		Help:      "Duration of carrier API requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)

// ShipmentsCreatedTotal counts shipments and labels the carrier accepted.
// Labels:
//   - kind: "shipment" or "label"
//   - service_code: carrier service used, e.g. "ups_next_day_air"
var ShipmentsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shipments_created_total",
		Help:      "Total number of shipments and labels created, by kind and service code.",
	},
	[]string{"kind", "service_code"},
)

// ValidationErrorsTotal counts requests rejected because an enumerated field
// held a value outside its allowed set.
var ValidationErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_errors_total",
		Help:      "Total number of rejected enumerated values, by field.",
	},
	[]string{"field"},
)

// ── Webhook metrics ───────────────────────────────────────────────────────────

// WebhooksProcessedTotal counts webhook notifications that were persisted.
var WebhooksProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "webhooks_processed_total",
		Help:      "Total number of carrier webhooks successfully processed.",
	},
	[]string{"resource_type"},
)

// WebhooksErrorsTotal counts webhook notifications that failed processing.
// Label:
//   - reason: e.g. "persist_failed"
var WebhooksErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "webhooks_errors_total",
		Help:      "Total number of carrier webhooks that failed processing.",
	},
	[]string{"reason"},
)

// WebhooksDedupTotal counts deduplication decisions.
// Label:
//   - result: "hit" (duplicate, skipped) or "miss" (new notification)
var WebhooksDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "webhooks_dedup_total",
		Help:      "Total number of webhook deduplication checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// WebhooksQueueDepth tracks the number of notifications waiting in each worker channel.
var WebhooksQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "webhooks_queue_depth",
		Help:      "Current number of webhooks pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// WebhookProcessingDuration measures dequeue-to-persistence time.
// Label:
//   - resource_type: the notification type, or "error" on failure
var WebhookProcessingDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "webhook_processing_duration_seconds",
		Help:      "Duration of webhook processing from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"resource_type"},
)
