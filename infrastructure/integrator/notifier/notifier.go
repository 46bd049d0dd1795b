package notifier

import (
	"context"

	"github.com/George0Simion/BizzGenie/internal/config"
	"github.com/George0Simion/BizzGenie/pkg/log"
)

type Priority string

const (
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

// Notification é a mensagem entregue ao dono do restaurante
type Notification struct {
	Subject   string   `json:"subject"`
	Body      string   `json:"body"`
	Priority  Priority `json:"priority"`
	Recipient string   `json:"recipient,omitempty"`
	Payload   any      `json:"payload,omitempty"`
}

type Notifier interface {
	Notify(ctx context.Context, notification Notification) error
}

// New escolhe o webhook quando há URL configurada, senão apenas registra no log
func New(cfg config.Notifier) Notifier {
	if cfg.WebhookURL == "" {
		return &LogNotifier{}
	}
	return NewWebhookNotifier(cfg)
}

type LogNotifier struct{}

func (n *LogNotifier) Notify(ctx context.Context, notification Notification) error {
	log.ForContext(ctx).WithFields(log.Fields{
		"subject":  notification.Subject,
		"priority": notification.Priority,
	}).Info(notification.Body)
	return nil
}
