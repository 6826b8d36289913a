package monitoring

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeProber struct {
	up    atomic.Bool
	calls atomic.Int32
}

func (f *fakeProber) HealthCheck(_ context.Context) bool {
	f.calls.Add(1)
	return f.up.Load()
}

func TestMonitorDetectorHealth(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	prober := &fakeProber{}
	healthy := &atomic.Bool{}
	healthy.Store(true)

	done := make(chan struct{})
	go func() {
		MonitorDetectorHealth(ctx, 5*time.Millisecond, "fake", prober, healthy)
		close(done)
	}()

	require.Eventually(t, func() bool { return !healthy.Load() }, time.Second, 5*time.Millisecond)

	prober.up.Store(true)
	require.Eventually(t, healthy.Load, time.Second, 5*time.Millisecond)

	cancel()
	require.Eventually(t, func() bool {
		select {
		case <-done:
			return true
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)
	require.Positive(t, prober.calls.Load())
}

func TestMonitorDetectorHealth_ProbesBeforeFirstTick(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	prober := &fakeProber{}
	healthy := &atomic.Bool{}
	healthy.Store(true)

	go MonitorDetectorHealth(ctx, time.Hour, "fake", prober, healthy)

	require.Eventually(t, func() bool { return !healthy.Load() }, time.Second, 5*time.Millisecond)
	require.Equal(t, int32(1), prober.calls.Load())
}
