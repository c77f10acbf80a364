package broker

import (
	"context"

	"kortyPricing/internal/modules/pricing/domain"
	"kortyPricing/internal/modules/pricing/infrastructure"
)

// StartKafkaConsumers launches one consumer goroutine per topic, dispatching
// into the handler registry. With no brokers configured the service runs on
// its boot-time catalog only.
func StartKafkaConsumers(
	ctx context.Context,
	registry *infrastructure.HandlerRegistry,
	brokers []string,
	groupID string,
	topics []string,
) {
	if len(brokers) == 0 {
		return
	}
	for _, topic := range topics {
		go func(tp string) {
			consumer := NewKafkaConsumer(brokers, groupID, tp)
			defer consumer.Close()
			_ = consumer.Consume(ctx, func(msg *domain.Message) error {
				return registry.Dispatch(ctx, msg)
			})
		}(topic)
	}
}
