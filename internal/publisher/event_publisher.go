package publisher

import (
	"context"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/flexprice/shipdiscount/internal/config"
	"github.com/flexprice/shipdiscount/internal/domain/shipping"
	ierr "github.com/flexprice/shipdiscount/internal/errors"
	"github.com/flexprice/shipdiscount/internal/logger"
	"github.com/flexprice/shipdiscount/internal/pubsub"
	"github.com/flexprice/shipdiscount/internal/types"
	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
)

const EventTransactionProcessed = "shipping.transaction.processed"

// TransactionProcessedEvent is emitted once a transaction joined the history
type TransactionProcessedEvent struct {
	ID        string                        `json:"id"`
	EventName string                        `json:"event_name"`
	Timestamp time.Time                     `json:"timestamp"`
	Record    *shipping.DiscountTransaction `json:"record"`
	// ReducedPrice is the base price minus the discount
	ReducedPrice decimal.Decimal `json:"reduced_price"`
}

// EventPublisher publishes history events
type EventPublisher interface {
	Publish(ctx context.Context, record *shipping.DiscountTransaction) error
}

type eventPublisher struct {
	pubsub pubsub.Publisher
	logger *logger.Logger
	config *config.EventsConfig
}

// NewEventPublisher returns a publisher on the configured topic, or a no-op
// publisher when events are disabled
func NewEventPublisher(cfg *config.Configuration, ps pubsub.Publisher, logger *logger.Logger) EventPublisher {
	if !cfg.Events.Enabled || ps == nil {
		return noopPublisher{}
	}

	return &eventPublisher{
		pubsub: ps,
		logger: logger,
		config: &cfg.Events,
	}
}

func (p *eventPublisher) Publish(ctx context.Context, record *shipping.DiscountTransaction) error {
	event := &TransactionProcessedEvent{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_EVENT),
		EventName:    EventTransactionProcessed,
		Timestamp:    time.Now().UTC(),
		Record:       record,
		ReducedPrice: record.Price.Sub(record.Discount),
	}

	payload, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(event)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to encode transaction event").
			Mark(ierr.ErrSystem)
	}

	msg := message.NewMessage(event.ID, payload)
	msg.Metadata.Set("event_name", event.EventName)
	if requestID := types.GetRequestID(ctx); requestID != "" {
		msg.Metadata.Set("request_id", requestID)
	}

	p.logger.Debugw("publishing event",
		"event_id", event.ID,
		"event_name", event.EventName,
		"record_id", record.ID,
		"topic", p.config.Topic,
	)

	if err := p.pubsub.Publish(ctx, p.config.Topic, msg); err != nil {
		return ierr.WithError(err).
			WithHintf("Failed to publish to %s", p.config.Topic).
			Mark(ierr.ErrSystem)
	}
	return nil
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, *shipping.DiscountTransaction) error {
	return nil
}
