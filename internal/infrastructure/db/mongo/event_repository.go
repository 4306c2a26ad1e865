package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/csvshipper/csv-shipper/internal/core/domain"
	"github.com/csvshipper/csv-shipper/internal/core/ports"
)

const collectionWebhookEvents = "webhook_events"

// WebhookEventRepository implements ports.WebhookEventRepository using MongoDB.
type WebhookEventRepository struct {
	col *mongo.Collection
}

// NewWebhookEventRepository creates a new WebhookEventRepository.
func NewWebhookEventRepository(db *mongo.Database) ports.WebhookEventRepository {
	return &WebhookEventRepository{col: db.Collection(collectionWebhookEvents)}
}

// Insert persists a webhook notification to the audit collection.
func (r *WebhookEventRepository) Insert(ctx context.Context, event *domain.WebhookEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"resource_url":  event.ResourceURL,
		"resource_type": event.ResourceType,
		"received_at":   event.ReceivedAt.UTC(),
		"processed_at":  time.Now().UTC(),
	}
	if event.Payload != nil {
		doc["payload"] = event.Payload
	}

	_, err := r.col.InsertOne(ctx, doc)
	return err
}

// EnsureWebhookIndexes creates indexes on the webhook_events collection.
func EnsureWebhookIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := db.Collection(collectionWebhookEvents).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "resource_url", Value: 1}}},
		{Keys: bson.D{{Key: "received_at", Value: -1}}},
	})
	return err
}
