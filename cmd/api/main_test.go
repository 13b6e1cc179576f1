package main

import (
	"context"
	"sync"
	"testing"

	"livpulse/internal/features/dashboard"
	"livpulse/internal/features/kpi"
	"livpulse/internal/features/metrics"

	"go.uber.org/zap"
)

// The provided rand instance is handed to several services at once, so
// drawing from it must be safe across request handlers. Run with the race
// detector.
func TestNewRandSharedAcrossServices(t *testing.T) {
	rng := NewRand()
	log := zap.NewNop()

	metricsService := metrics.NewMetricsService(log, rng)
	resolver := dashboard.NewDataResolver(rng)

	source := kpi.DataSource{ID: "uptime", Type: kpi.DataSourceMock}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				metricsService.PlatformTrends("Android", 7)
				if _, err := resolver.Resolve(context.Background(), source); err != nil {
					t.Errorf("Resolve() error = %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
