package events

import (
	"go.uber.org/zap"

	"github.com/vsinha/stockcheck/pkg/domain/entities"
)

const (
	ProductResolvedEvent      = "product.resolved"
	AvailabilityResolvedEvent = "availability.resolved"
)

type ProductResolved struct {
	Product *entities.ProductInfo `json:"product"`
}

type AvailabilityResolved struct {
	ItemCode     entities.ItemCode            `json:"item_code"`
	Availability []entities.StoreAvailability `json:"availability"`
}

// Publisher records lookup progress as events on the item's stream
type Publisher struct {
	store  EventStore
	logger *zap.Logger
}

func NewPublisher(store EventStore, logger *zap.Logger) *Publisher {
	return &Publisher{store: store, logger: logger}
}

func (p *Publisher) ProductResolved(product *entities.ProductInfo) {
	p.publish(string(product.ItemCode), NewEvent(ProductResolvedEvent, string(product.ItemCode), ProductResolved{
		Product: product,
	}))
}

func (p *Publisher) AvailabilityResolved(itemCode entities.ItemCode, availability []entities.StoreAvailability) {
	p.publish(string(itemCode), NewEvent(AvailabilityResolvedEvent, string(itemCode), AvailabilityResolved{
		ItemCode:     itemCode,
		Availability: availability,
	}))
}

// publish logs append failures and drops the event
func (p *Publisher) publish(streamID string, event Event) {
	if err := p.store.AppendEvent(streamID, event); err != nil {
		p.logger.Warn("failed to publish event",
			zap.String("type", event.Type()),
			zap.String("stream", streamID),
			zap.Error(err))
	}
}
