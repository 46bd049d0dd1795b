package notifier

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/George0Simion/BizzGenie/internal/config"
	"github.com/George0Simion/BizzGenie/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookNotifier_Notify(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name        string
		status      int
		token       string
		expectedErr bool
	}{
		{name: "Entrega com token", status: http.StatusOK, token: "segredo"},
		{name: "Entrega sem token", status: http.StatusNoContent},
		{name: "Webhook com erro", status: http.StatusBadGateway, expectedErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var received map[string]any
			var auth string

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				auth = r.Header.Get("Authorization")

				body, _ := io.ReadAll(r.Body)
				_ = json.Unmarshal(body, &received)

				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			n := NewWebhookNotifier(config.Notifier{
				WebhookURL: server.URL,
				Token:      tt.token,
				Recipient:  "owner@bizzgenie.local",
				Timeout:    time.Second,
			})

			err := n.Notify(context.Background(), Notification{
				Subject: "Inventory alerts",
				Body:    "milk: 2l (Expired 2025-11-27)",
				Payload: map[string]int{"count": 1},
			})

			if tt.expectedErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Inventory alerts", received["subject"])
			assert.Equal(t, "normal", received["priority"])
			assert.Equal(t, "owner@bizzgenie.local", received["recipient"])
			assert.Equal(t, map[string]any{"count": float64(1)}, received["payload"])

			if tt.token != "" {
				assert.Equal(t, "Bearer "+tt.token, auth)
			} else {
				assert.Empty(t, auth)
			}
		})
	}
}

func TestNew(t *testing.T) {
	assert.IsType(t, &LogNotifier{}, New(config.Notifier{}))
	assert.IsType(t, &WebhookNotifier{}, New(config.Notifier{WebhookURL: "http://localhost:9999"}))
	assert.NoError(t, (&LogNotifier{}).Notify(context.Background(), Notification{Subject: "x"}))
}
