package notifier

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/George0Simion/BizzGenie/internal/config"
	"github.com/George0Simion/BizzGenie/pkg/log"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type WebhookNotifier struct {
	url       string
	token     string
	recipient string
	client    *http.Client
}

func NewWebhookNotifier(cfg config.Notifier) *WebhookNotifier {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &WebhookNotifier{
		url:       cfg.WebhookURL,
		token:     cfg.Token,
		recipient: cfg.Recipient,
		client:    &http.Client{Timeout: timeout},
	}
}

func (n *WebhookNotifier) Notify(ctx context.Context, notification Notification) error {
	logger := log.ForContext(ctx)

	if notification.Recipient == "" {
		notification.Recipient = n.recipient
	}
	if notification.Priority == "" {
		notification.Priority = PriorityNormal
	}

	body, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("erro ao serializar notificação: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		logger.WithError(err).Error("Erro ao criar a requisição")
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if n.token != "" {
		req.Header.Set("Authorization", "Bearer "+n.token)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		logger.WithError(err).Error("Erro ao enviar notificação")
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("webhook de notificação respondeu %d: %s", resp.StatusCode, string(respBody))
	}

	logger.WithFields(log.Fields{
		"subject":  notification.Subject,
		"priority": notification.Priority,
	}).Info("Notificação enviada")

	return nil
}
