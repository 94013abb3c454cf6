package repository

import (
	"context"
	"fmt"
	"time"

	sdk "github.com/segmentio/kafka-go"

	domainrepos "github.com/whiteelite/catalog/internal/domain/repositories"
	mapper "github.com/whiteelite/catalog/internal/infrastructure/messaging/kafka/repositories/mapper"
	shared "github.com/whiteelite/catalog/pkg/shared/domain/entities"
)

// MessageWriter is the part of *kafka.Writer the notifier needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...sdk.Message) error
	Close() error
}

// KafkaNotifier publishes one message per committed mutation. Each Send
// blocks until the brokers acknowledge the write or the send timeout
// expires.
type KafkaNotifier struct {
	writer  MessageWriter
	timeout time.Duration
}

// InitializeKafkaNotifier creates a KafkaNotifier backed by a kafka.Writer.
func InitializeKafkaNotifier(params KafkaNotifierParams) (domainrepos.NotifierCloser, error) {
	if err := ValidateKafkaParams(params); err != nil {
		return nil, err
	}

	writer := &sdk.Writer{
		Addr:                   sdk.TCP(params.Brokers...),
		RequiredAcks:           sdk.RequireAll,
		Balancer:               &sdk.Hash{},
		BatchSize:              1,
		AllowAutoTopicCreation: true,
	}
	if params.ClientID != "" {
		writer.Transport = &sdk.Transport{ClientID: params.ClientID}
	}

	return NewKafkaNotifier(writer, params.SendTimeout), nil
}

// NewKafkaNotifier wraps an existing writer. A zero timeout means one second.
func NewKafkaNotifier(writer MessageWriter, timeout time.Duration) *KafkaNotifier {
	if timeout <= 0 {
		timeout = defaultSendTimeout
	}
	return &KafkaNotifier{writer: writer, timeout: timeout}
}

func (n *KafkaNotifier) Send(ctx context.Context, topic string, action domainrepos.Action, subject shared.Identifiable) error {
	message, err := mapper.ToMessage(mapper.ToNotification(topic, action, subject))
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	if err := n.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("publish %s/%s: %w", topic, action, err)
	}
	return nil
}

// Close flushes pending writes and releases broker connections.
func (n *KafkaNotifier) Close() error {
	if n.writer == nil {
		return nil
	}
	return n.writer.Close()
}

// Compile-time assertions to ensure interface conformance
var _ domainrepos.Notifier = (*KafkaNotifier)(nil)
var _ domainrepos.NotifierCloser = (*KafkaNotifier)(nil)
var _ MessageWriter = (*sdk.Writer)(nil)
