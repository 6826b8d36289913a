package monitoring

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

const HEALTHCHECK_TIMEOUT = 5 * time.Second

// Prober reports whether an upstream collaborator is reachable.
type Prober interface {
	HealthCheck(ctx context.Context) bool
}

// MonitorDetectorHealth probes the detector once right away, then every
// interval, and stores the outcome in healthy until ctx is done.
func MonitorDetectorHealth(ctx context.Context, interval time.Duration, name string, prober Prober, healthy *atomic.Bool) {
	probe(ctx, name, prober, healthy)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			probe(ctx, name, prober, healthy)
		}
	}
}

func probe(ctx context.Context, name string, prober Prober, healthy *atomic.Bool) {
	probeCtx, cancel := context.WithTimeout(ctx, HEALTHCHECK_TIMEOUT)
	isHealthy := prober.HealthCheck(probeCtx)
	cancel()

	if healthy.Swap(isHealthy) != isHealthy {
		if isHealthy {
			slog.Info("[HealthCheck] Detector recovered", slog.String("detector", name))
		} else {
			slog.Warn("[HealthCheck] Detector is unhealthy", slog.String("detector", name))
		}
	}
}
