// Package listener keeps the screens current by invalidating their source
// collections when the backend publishes a change.
package listener

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fekuna/omnipos-retail-view/internal/logger"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	EventStockAdjusted       = "StockAdjusted"
	EventProductUpdated      = "ProductUpdated"
	EventOrderCreated        = "OrderCreated"
	EventNotificationCreated = "NotificationCreated"
)

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// Invalidator drops a merchant's collection so the next read fetches again.
type Invalidator interface {
	Invalidate(ctx context.Context, merchantID string)
}

type Event struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	MerchantID string    `json:"merchant_id"`
	Payload    Payload   `json:"payload"`
	Timestamp  time.Time `json:"timestamp"`
}

// Payload is the order-service envelope, which nests the merchant.
type Payload struct {
	MerchantID string `json:"merchant_id"`
}

func (e Event) merchant() string {
	if e.MerchantID != "" {
		return e.MerchantID
	}
	return e.Payload.MerchantID
}

type Listener struct {
	reader  MessageReader
	routes  map[string][]Invalidator
	backoff time.Duration
	logger  logger.ZapLogger
}

// New routes stock and product changes to products and inventory, and new
// notifications to notifications.
func New(reader MessageReader, products, inventory, notifications Invalidator, log logger.ZapLogger) *Listener {
	stock := []Invalidator{products, inventory}
	return &Listener{
		reader: reader,
		routes: map[string][]Invalidator{
			EventStockAdjusted:       stock,
			EventProductUpdated:      stock,
			EventOrderCreated:        stock,
			EventNotificationCreated: {notifications},
		},
		backoff: time.Second,
		logger:  log,
	}
}

// Start reads until ctx is done.
func (l *Listener) Start(ctx context.Context) {
	l.logger.Info("Starting change event listener")
	for {
		msg, err := l.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				l.logger.Info("Stopping change event listener")
				return
			}
			l.logger.Error("Failed to read kafka message", zap.Error(err))
			select {
			case <-ctx.Done():
				l.logger.Info("Stopping change event listener")
				return
			case <-time.After(l.backoff):
			}
			continue
		}
		l.processMessage(ctx, msg.Value)
	}
}

func (l *Listener) processMessage(ctx context.Context, value []byte) {
	var event Event
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Error("Failed to unmarshal event", zap.Error(err))
		return
	}

	targets, ok := l.routes[event.EventType]
	if !ok {
		l.logger.Debug("Ignoring event", zap.String("event_type", event.EventType))
		return
	}
	merchantID := event.merchant()
	if merchantID == "" {
		l.logger.Warn("Event without merchant", zap.String("event_type", event.EventType), zap.String("event_id", event.EventID))
		return
	}

	l.logger.Info("Invalidating collections",
		zap.String("event_type", event.EventType),
		zap.String("merchant_id", merchantID),
	)
	for _, target := range targets {
		target.Invalidate(ctx, merchantID)
	}
}
