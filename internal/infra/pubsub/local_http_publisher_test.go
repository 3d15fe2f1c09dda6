package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/calvin-79/food-delivery-tracking/config"
	"github.com/calvin-79/food-delivery-tracking/internal/domain/constants"
	"github.com/calvin-79/food-delivery-tracking/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestLocalHTTPPublisher_PublishOrderEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))

	event := &service.OrderEvent{
		RequestID:  "req-1",
		EventType:  constants.EventOrderPlaced,
		OrderID:    42,
		ClientID:   7,
		Status:     constants.OrderStatusPlaced,
		Total:      35,
		OccurredAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	require.NoError(t, publisher.PublishOrderEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "42", received.Message.Attributes["order_id"])
	assert.Equal(t, constants.EventOrderPlaced, received.Message.Attributes["event_type"])
	assert.Equal(t, "42", received.Message.OrderingKey)
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.OrderEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := publisher.PublishOrderEvent(context.Background(), &service.OrderEvent{OrderID: 1})
	assert.ErrorContains(t, err, "503")
}

func TestNewEventPublisher_ProviderSelection(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
		check   func(t *testing.T, p service.EventPublisher)
	}{
		{
			name: "not configured",
			cfg:  nil,
			check: func(t *testing.T, p service.EventPublisher) {
				assert.IsType(t, &noopPublisher{}, p)
			},
		},
		{
			name: "local",
			cfg:  &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:9999/push"},
			check: func(t *testing.T, p service.EventPublisher) {
				assert.IsType(t, &localHTTPPublisher{}, p)
			},
		},
		{
			name:    "local without endpoint",
			cfg:     &config.PubSubConfig{Provider: constants.PubSubProviderLocal},
			wantErr: "local endpoint is required",
		},
		{
			name:    "google without project",
			cfg:     &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "orders"},
			wantErr: "project ID is required",
		},
		{
			name:    "unknown",
			cfg:     &config.PubSubConfig{Provider: "kafka"},
			wantErr: "unknown pubsub provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: logger,
			})
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			tt.check(t, publisher)
		})
	}
}
