package memory

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/flexprice/shipdiscount/internal/config"
	"github.com/flexprice/shipdiscount/internal/logger"
	"github.com/flexprice/shipdiscount/internal/pubsub"
)

// PubSub implements both Publisher and Subscriber interfaces using watermill's gochannel
type PubSub struct {
	pubsub *gochannel.GoChannel
	config *config.EventsConfig
	logger *logger.Logger
}

// NewPubSub creates a new memory-based pubsub
func NewPubSub(
	cfg *config.Configuration,
	logger *logger.Logger,
) pubsub.PubSub {
	goChannel := gochannel.NewGoChannel(
		gochannel.Config{
			// messages without a subscriber are dropped, nothing is retained
			Persistent:                     false,
			BlockPublishUntilSubscriberAck: false,
			OutputChannelBuffer:            100,
		},
		newLoggerAdapter(logger),
	)

	return &PubSub{
		pubsub: goChannel,
		config: &cfg.Events,
		logger: logger,
	}
}

// Publish publishes a message on topic
func (p *PubSub) Publish(ctx context.Context, topic string, msg *message.Message) error {
	p.logger.Debugw("publishing message", "topic", topic, "message_id", msg.UUID)
	return p.pubsub.Publish(topic, msg)
}

// Subscribe starts consuming messages of topic
func (p *PubSub) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return p.pubsub.Subscribe(ctx, topic)
}

// Close closes both publisher and subscriber
func (p *PubSub) Close() error {
	return p.pubsub.Close()
}
