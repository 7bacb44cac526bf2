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

	"whatsorder/config"
	"whatsorder/internal/domain/constants"
	"whatsorder/internal/domain/service"

	"github.com/pkg/errors"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() *service.OrderLoggedEvent {
	return &service.OrderLoggedEvent{
		RequestID:    "req-42",
		EventID:      "evt-1",
		OrderID:      7,
		BusinessID:   3,
		TotalPrice:   "4000.00",
		ItemsSummary: "2x Jollof Rice, 2x Zobo",
		CreatedAt:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PushFormat(t *testing.T) {
	var got PushMessage
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, newDiscardLogger())
	require.NoError(t, publisher.PublishOrderLogged(context.Background(), sampleEvent()))

	assert.Equal(t, "req-42", requestID)
	assert.Equal(t, localSubscription, got.Subscription)
	assert.Equal(t, "evt-1", got.Message.MessageID)
	assert.Equal(t, map[string]string{
		"event_id":    "evt-1",
		"order_id":    "7",
		"business_id": "3",
		"request_id":  "req-42",
	}, got.Message.Attributes)

	raw, err := base64.StdEncoding.DecodeString(got.Message.Data)
	require.NoError(t, err)
	var decoded service.OrderLoggedEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "4000.00", decoded.TotalPrice)
	assert.Equal(t, int64(7), decoded.OrderID)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, newDiscardLogger())
	err := publisher.PublishOrderLogged(context.Background(), sampleEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestOrderAttributes_OmitsEmptyRequestID(t *testing.T) {
	event := sampleEvent()
	event.RequestID = ""

	attrs := orderAttributes(event)
	assert.NotContains(t, attrs, "request_id")
	assert.Len(t, attrs, 3)
}

type fakeWriter struct {
	messages []kafkaGo.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkaGo.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)

	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true

	return nil
}

func TestKafkaPublisher_KeysByBusiness(t *testing.T) {
	writer := &fakeWriter{}
	publisher := &kafkaPublisher{writer: writer, logger: newDiscardLogger()}

	require.NoError(t, publisher.PublishOrderLogged(context.Background(), sampleEvent()))
	require.Len(t, writer.messages, 1)

	msg := writer.messages[0]
	assert.Equal(t, "3", string(msg.Key))
	assert.Len(t, msg.Headers, 4)

	var decoded service.OrderLoggedEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, "evt-1", decoded.EventID)

	require.NoError(t, publisher.Close())
	assert.True(t, writer.closed)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	writer := &fakeWriter{err: errors.New("broker down")}
	publisher := &kafkaPublisher{writer: writer, logger: newDiscardLogger()}

	err := publisher.PublishOrderLogged(context.Background(), sampleEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker down")
}

func TestNewEventPublisher(t *testing.T) {
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
			cfg:  &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8090/push"},
			check: func(t *testing.T, p service.EventPublisher) {
				assert.IsType(t, &localHTTPPublisher{}, p)
			},
		},
		{
			name: "kafka",
			cfg:  &config.PubSubConfig{Provider: constants.PubSubProviderKafka, Brokers: []string{"localhost:9092"}, TopicID: "orders"},
			check: func(t *testing.T, p service.EventPublisher) {
				assert.IsType(t, &kafkaPublisher{}, p)
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
			name:    "kafka without brokers",
			cfg:     &config.PubSubConfig{Provider: constants.PubSubProviderKafka, TopicID: "orders"},
			wantErr: "at least one broker",
		},
		{
			name:    "unknown provider",
			cfg:     &config.PubSubConfig{Provider: "sqs"},
			wantErr: "unknown pubsub provider: sqs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: newDiscardLogger(),
			})
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}
			require.NoError(t, err)
			tt.check(t, publisher)
		})
	}
}
