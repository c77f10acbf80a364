package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"kortyPricing/internal/modules/pricing/application/port"
	"kortyPricing/internal/modules/pricing/application/usecase"
	"kortyPricing/internal/modules/pricing/domain"
)

// CatalogStreamHandler consumes pushed club catalogs from the broker. A good
// catalog is swapped in and announced to websocket clients; a bad one is
// rejected and the previous snapshot keeps serving.
type CatalogStreamHandler struct {
	topic     string
	source    port.CatalogSource
	snapshot  *usecase.SnapshotUseCase
	query     *usecase.QueryUseCase
	broadcast *usecase.BroadcastUseCase
	now       func() time.Time
}

func NewCatalogStreamHandler(
	topic string,
	source port.CatalogSource,
	snapshot *usecase.SnapshotUseCase,
	query *usecase.QueryUseCase,
	broadcast *usecase.BroadcastUseCase,
) *CatalogStreamHandler {
	return &CatalogStreamHandler{
		topic:     topic,
		source:    source,
		snapshot:  snapshot,
		query:     query,
		broadcast: broadcast,
		now:       time.Now,
	}
}

func (h *CatalogStreamHandler) Topic() string { return h.topic }

func (h *CatalogStreamHandler) Handle(ctx context.Context, msg *domain.Message) error {
	raw, err := payloadBytes(msg.Data)
	if err != nil {
		h.reject(ctx, err.Error())
		return err
	}

	catalog, err := h.source.Decode(raw)
	if err != nil {
		h.reject(ctx, err.Error())
		return fmt.Errorf("decode pushed catalog: %w", err)
	}

	report, err := h.snapshot.Apply(catalog)
	if err != nil {
		slog.Warn("pushed catalog rejected",
			slog.Int("clubs", len(catalog)),
			slog.Int("validationErrors", len(report.Errors)),
			slog.Any("error", err),
		)
		h.reject(ctx, err.Error(), report.Errors...)
		return err
	}

	h.announce(ctx)
	return nil
}

// announce broadcasts the refreshed per-club price bands so connected
// clients can update without polling.
func (h *CatalogStreamHandler) announce(ctx context.Context) {
	sys, err := h.snapshot.Current()
	if err != nil {
		return
	}
	today := h.now().In(sys.Calendar().Location())
	clubs, err := h.query.ListClubs(today)
	if err != nil {
		slog.Warn("pricing broadcast skipped", slog.Any("error", err))
		return
	}
	h.broadcast.Execute(ctx, &domain.Message{
		Topic:     domain.TopicPricingUpdated,
		Action:    "updated",
		Data:      clubs,
		Timestamp: time.Now().UTC(),
	})
}

func (h *CatalogStreamHandler) reject(ctx context.Context, reason string, details ...string) {
	h.broadcast.Execute(ctx, &domain.Message{
		Topic:     domain.TopicPricingRejected,
		Action:    "rejected",
		Metadata:  map[string]string{"reason": reason},
		Data:      details,
		Timestamp: time.Now().UTC(),
	})
}

// payloadBytes recovers the raw catalog document from the message payload.
// Raw YAML arrives as a string; envelope JSON arrives already decoded and is
// re-encoded for the source decoder, which accepts JSON as a YAML subset.
func payloadBytes(data any) ([]byte, error) {
	switch v := data.(type) {
	case nil:
		return nil, fmt.Errorf("empty catalog payload")
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("re-encode catalog payload: %w", err)
		}
		return raw, nil
	}
}

var _ port.TopicHandler = (*CatalogStreamHandler)(nil)
