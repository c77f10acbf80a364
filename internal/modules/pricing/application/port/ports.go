package port

import (
	"context"

	"kortyPricing/internal/modules/pricing/domain"
)

// CatalogSource loads and decodes club catalog documents. Load reads the
// configured boot-time source; Decode turns a pushed payload into the same
// document shape.
type CatalogSource interface {
	Load(ctx context.Context) (domain.Catalog, error)
	Decode(raw []byte) (domain.Catalog, error)
}

// Broadcaster pushes a message to every connected websocket client.
type Broadcaster interface {
	Broadcast(ctx context.Context, msg *domain.Message)
}

// TopicHandler is implemented by handlers registered per broker topic.
type TopicHandler interface {
	Topic() string
	Handle(ctx context.Context, msg *domain.Message) error
}
