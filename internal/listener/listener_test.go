package listener

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fekuna/omnipos-retail-view/internal/logger"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type scriptedReader struct {
	mu    sync.Mutex
	steps []step
}

type step struct {
	value string
	err   error
}

func (r *scriptedReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	if len(r.steps) > 0 {
		s := r.steps[0]
		r.steps = r.steps[1:]
		r.mu.Unlock()
		if s.err != nil {
			return kafka.Message{}, s.err
		}
		return kafka.Message{Value: []byte(s.value)}, nil
	}
	r.mu.Unlock()

	<-ctx.Done()
	return kafka.Message{}, ctx.Err()
}

type recorder struct {
	name string
	mu   *sync.Mutex
	log  *[]string
}

func (r recorder) Invalidate(_ context.Context, merchantID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	*r.log = append(*r.log, r.name+":"+merchantID)
}

func run(t *testing.T, steps ...step) ([]string, *observer.ObservedLogs) {
	t.Helper()
	var (
		mu  sync.Mutex
		got []string
	)
	core, logs := observer.New(zap.DebugLevel)
	reader := &scriptedReader{steps: steps}
	l := New(reader,
		recorder{"products", &mu, &got},
		recorder{"inventory", &mu, &got},
		recorder{"notifications", &mu, &got},
		logger.FromZap(zap.New(core)),
	)
	l.backoff = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		l.Start(ctx)
	}()

	assert.Eventually(t, func() bool {
		reader.mu.Lock()
		defer reader.mu.Unlock()
		return len(reader.steps) == 0
	}, time.Second, time.Millisecond)
	cancel()
	<-done

	mu.Lock()
	defer mu.Unlock()
	return append([]string(nil), got...), logs
}

func TestListener_RoutesEvents(t *testing.T) {
	got, _ := run(t,
		step{value: `{"event_type":"StockAdjusted","merchant_id":"m1"}`},
		step{value: `{"event_type":"NotificationCreated","merchant_id":"m2"}`},
		step{value: `{"event_type":"OrderCreated","payload":{"id":"o1","merchant_id":"m3"}}`},
	)

	assert.Equal(t, []string{
		"products:m1", "inventory:m1",
		"notifications:m2",
		"products:m3", "inventory:m3",
	}, got)
}

func TestListener_SkipsBadEvents(t *testing.T) {
	got, logs := run(t,
		step{value: `not json`},
		step{value: `{"event_type":"CustomerCreated","merchant_id":"m1"}`},
		step{value: `{"event_type":"ProductUpdated"}`},
		step{err: errors.New("broker unavailable")},
		step{value: `{"event_type":"ProductUpdated","merchant_id":"m1"}`},
	)

	assert.Equal(t, []string{"products:m1", "inventory:m1"}, got)
	assert.Equal(t, 1, logs.FilterMessage("Failed to unmarshal event").Len())
	assert.Equal(t, 1, logs.FilterMessage("Event without merchant").Len())
	assert.Equal(t, 1, logs.FilterMessage("Failed to read kafka message").Len())
}
