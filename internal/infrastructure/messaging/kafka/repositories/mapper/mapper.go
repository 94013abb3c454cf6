package mapper

import (
	"errors"

	json "github.com/goccy/go-json"

	sdk "github.com/segmentio/kafka-go"

	domainrepos "github.com/whiteelite/catalog/internal/domain/repositories"
	"github.com/whiteelite/catalog/internal/infrastructure/messaging/kafka/repositories/models"
	shared "github.com/whiteelite/catalog/pkg/shared/domain/entities"
)

func ToNotification(topic string, action domainrepos.Action, subject shared.Identifiable) *models.Notification {
	return &models.Notification{
		Topic:    topic,
		Action:   string(action),
		EntityID: subject.Identity(),
	}
}

// ToMessage serializes the notification. The action is the message key so
// the writer's balancer partitions by it.
func ToMessage(notification *models.Notification) (sdk.Message, error) {
	if notification == nil {
		return sdk.Message{}, errors.New("nil notification")
	}

	serialized, err := json.Marshal(notification)
	if err != nil {
		return sdk.Message{}, err
	}

	return sdk.Message{
		Topic: notification.Topic,
		Key:   []byte(notification.Action),
		Value: serialized,
	}, nil
}
