package domain

import "time"

// Topics flowing between the Kafka consumer, the engine snapshot and the
// websocket hub.
const (
	// TopicCatalogUpdated is the broker topic carrying refreshed club
	// catalog documents from the price updater.
	TopicCatalogUpdated = "pricing.catalog.updated"
	// TopicPricingUpdated is broadcast to websocket clients after a new
	// snapshot has been swapped in.
	TopicPricingUpdated = "pricing.updated"
	// TopicPricingRejected is broadcast when a pushed catalog failed to
	// build or validate and the previous snapshot kept serving.
	TopicPricingRejected = "pricing.rejected"
)

// Message is the envelope moved between the broker and websocket clients.
type Message struct {
	Topic     string            `json:"topic"`
	Action    string            `json:"action,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	Data      any               `json:"data,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}
