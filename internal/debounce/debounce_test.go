package debounce

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *recorder) record(v string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, v)
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

func TestDebouncer_CoalescesBurst(t *testing.T) {
	rec := &recorder{}
	d := New(30*time.Millisecond, rec.record)
	defer d.Stop()

	for _, q := range []string{"i", "in", "ind"} {
		d.Push(q)
		time.Sleep(5 * time.Millisecond)
	}

	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, []string{"ind"}, rec.snapshot())
}

func TestDebouncer_SeparateBurstsFireSeparately(t *testing.T) {
	rec := &recorder{}
	d := New(20*time.Millisecond, rec.record)
	defer d.Stop()

	d.Push("coke")
	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, time.Second, 5*time.Millisecond)
	d.Push("milk")
	require.Eventually(t, func() bool { return len(rec.snapshot()) == 2 }, time.Second, 5*time.Millisecond)

	assert.Equal(t, []string{"coke", "milk"}, rec.snapshot())
}

func TestDebouncer_Flush(t *testing.T) {
	rec := &recorder{}
	d := New(time.Hour, rec.record)
	defer d.Stop()

	d.Push("now")
	d.Flush()
	d.Flush()

	assert.Equal(t, []string{"now"}, rec.snapshot())
}

func TestDebouncer_StopDropsPending(t *testing.T) {
	rec := &recorder{}
	d := New(10*time.Millisecond, rec.record)

	d.Push("never")
	d.Stop()
	d.Push("ignored")
	time.Sleep(40 * time.Millisecond)

	assert.Empty(t, rec.snapshot())
}

func TestNew_DefaultInterval(t *testing.T) {
	d := New(0, func(int) {})
	assert.Equal(t, DefaultInterval, d.interval)
}
