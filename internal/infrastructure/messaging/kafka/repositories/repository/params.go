package repository

import (
	"errors"
	"time"
)

const defaultSendTimeout = time.Second

// KafkaNotifierParams provides configuration for initializing KafkaNotifier.
type KafkaNotifierParams struct {
	// Required
	Brokers []string

	// Optional
	ClientID    string
	SendTimeout time.Duration
}

// Get returns the params as log fields.
func (p KafkaNotifierParams) Get() map[string]any {
	return map[string]any{
		"brokers":     p.Brokers,
		"clientId":    p.ClientID,
		"sendTimeout": p.SendTimeout.String(),
	}
}

// ValidateKafkaParams ensures required params are set.
func ValidateKafkaParams(p KafkaNotifierParams) error {
	if len(p.Brokers) == 0 {
		return errors.New("kafka brokers are required")
	}
	for _, broker := range p.Brokers {
		if broker == "" {
			return errors.New("kafka broker address must not be empty")
		}
	}
	if p.SendTimeout < 0 {
		return errors.New("kafka send timeout must not be negative")
	}
	return nil
}
