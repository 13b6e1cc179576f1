package overview

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"livpulse/internal/common/models"
	"livpulse/internal/config"
	"livpulse/internal/features/insights"
	"livpulse/internal/features/metrics"

	"go.uber.org/zap"
)

func newTestOverview() OverviewService {
	log := zap.NewNop()
	metricsService := metrics.NewMetricsService(log, rand.New(rand.NewSource(1)))
	insightsService := insights.NewInsightsService(&config.Config{}, log, rand.New(rand.NewSource(1)))
	return &OverviewServiceImpl{
		metrics:  metricsService,
		insights: insightsService,
		log:      log,
		now:      time.Now,
	}
}

func TestAlertsBundle(t *testing.T) {
	svc := newTestOverview()

	bundle, err := svc.Alerts(context.Background())
	if err != nil {
		t.Fatalf("Alerts() error = %v", err)
	}

	bySource := 0
	for _, source := range []string{"platform", "backend", "operations", "store", "cms"} {
		count, ok := bundle.Summary.BySource[source]
		if !ok {
			t.Errorf("BySource missing %q", source)
		}
		bySource += count
	}
	if bundle.Summary.Total != bySource {
		t.Errorf("Total = %d, sum of sources = %d", bundle.Summary.Total, bySource)
	}

	severitySum := bundle.Summary.Critical + bundle.Summary.High +
		bundle.Summary.Medium + bundle.Summary.Low
	if severitySum != bundle.Summary.Total {
		t.Errorf("severity counts sum to %d, Total = %d", severitySum, bundle.Summary.Total)
	}

	if len(bundle.Alerts) > maxMergedAlerts {
		t.Errorf("merged list has %d alerts, cap is %d", len(bundle.Alerts), maxMergedAlerts)
	}
	for i := 1; i < len(bundle.Alerts); i++ {
		prev, cur := bundle.Alerts[i-1], bundle.Alerts[i]
		if prev.Severity.Rank() < cur.Severity.Rank() {
			t.Fatalf("alert %d (%s) outranks its predecessor (%s)", i, cur.Severity, prev.Severity)
		}
		if prev.Severity == cur.Severity && cur.Timestamp.After(prev.Timestamp) {
			t.Fatalf("alert %d newer than predecessor within severity %s", i, cur.Severity)
		}
	}
}

func TestHealthBundle(t *testing.T) {
	svc := newTestOverview()

	bundle, err := svc.Health(context.Background())
	if err != nil {
		t.Fatalf("Health() error = %v", err)
	}

	b := bundle.Breakdown
	wantTotal := b.Platforms.Total + b.Backend.Total + b.Operations.Total +
		b.Store.Total + b.CMS.Total
	if bundle.Overall.TotalSystems != wantTotal {
		t.Errorf("TotalSystems = %d, breakdown sums to %d", bundle.Overall.TotalSystems, wantTotal)
	}

	wantHealthy := b.Platforms.Healthy + b.Backend.Operational +
		b.Operations.Healthy + b.Store.Healthy + b.CMS.Healthy
	if bundle.Overall.HealthySystems != wantHealthy {
		t.Errorf("HealthySystems = %d, breakdown sums to %d", bundle.Overall.HealthySystems, wantHealthy)
	}

	score := bundle.Overall.Score
	if score < 0 || score > 100 {
		t.Fatalf("Score = %d", score)
	}
	wantStatus := models.HealthHealthy
	switch {
	case score < 70:
		wantStatus = models.HealthCritical
	case score < 90:
		wantStatus = models.HealthWarning
	}
	if bundle.Overall.Status != wantStatus {
		t.Errorf("Status = %s with score %d, want %s", bundle.Overall.Status, score, wantStatus)
	}
}

func TestTrendsDefaultPeriod(t *testing.T) {
	svc := newTestOverview()

	bundle, err := svc.Trends(context.Background(), 0)
	if err != nil {
		t.Fatalf("Trends() error = %v", err)
	}
	if bundle.Period != "7 days" {
		t.Errorf("Period = %q", bundle.Period)
	}
	if len(bundle.Platforms.Android) != 8 || len(bundle.Platforms.Web) != 8 {
		t.Errorf("platform series lengths = %d/%d, want 8",
			len(bundle.Platforms.Android), len(bundle.Platforms.Web))
	}
	if len(bundle.Services.UMSPS) != 8 || len(bundle.Services.Playback) != 8 {
		t.Errorf("service series lengths = %d/%d, want 8",
			len(bundle.Services.UMSPS), len(bundle.Services.Playback))
	}
}

func TestKPIBundle(t *testing.T) {
	svc := newTestOverview()

	bundle, err := svc.KPIs(context.Background())
	if err != nil {
		t.Fatalf("KPIs() error = %v", err)
	}
	if bundle.Platform.Summary.TotalUsers == 0 {
		t.Error("platform KPIs empty")
	}
	if bundle.Backend.Summary.AvgUptime == 0 {
		t.Error("backend KPIs empty")
	}
	if bundle.LastUpdated.IsZero() {
		t.Error("LastUpdated not stamped")
	}
}
