package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-book-keeper/internal/logger"
)

// mockPinger counts pings and returns a configurable error.
type mockPinger struct {
	mu    sync.Mutex
	pings int
	err   error
}

func (m *mockPinger) PingContext(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pings++
	return m.err
}

func (m *mockPinger) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pings
}

func TestPingWorker_Run_PingsUntilCancelled(t *testing.T) {
	p := &mockPinger{}
	w := NewPingWorker(p, 5*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	waitFor(t, func() bool { return p.count() >= 2 })
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop after context cancellation")
	}
}

func TestPingWorker_Run_KeepsGoingOnError(t *testing.T) {
	p := &mockPinger{err: errors.New("connection refused")}
	w := NewPingWorker(p, 5*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	// Errors must not terminate the loop.
	waitFor(t, func() bool { return p.count() >= 3 })
}
