package domain

import "time"

// WebhookEvent is a notification pushed by the carrier, e.g. a tracking
// update. ResourceURL points back at the carrier resource that changed.
type WebhookEvent struct {
	ResourceURL  string
	ResourceType string
	ReceivedAt   time.Time
	Payload      map[string]any
}
