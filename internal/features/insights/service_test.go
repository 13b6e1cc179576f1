package insights

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"livpulse/internal/common/models"
	"livpulse/internal/features/metrics"

	"go.uber.org/zap"
)

var testNow = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

// newTestInsights has no OpenAI client, so every call exercises the
// rule-based path.
func newTestInsights() *InsightsServiceImpl {
	return &InsightsServiceImpl{
		log: zap.NewNop(),
		now: func() time.Time { return testNow },
		rng: rand.New(rand.NewSource(1)),
	}
}

func platformsWithHealth(healthy, total int) []metrics.PlatformMetrics {
	out := make([]metrics.PlatformMetrics, total)
	for i := range out {
		out[i].Health = models.HealthCritical
		if i < healthy {
			out[i].Health = models.HealthHealthy
		}
	}
	return out
}

func backendWithStatus(operational, total int) []metrics.BackendMetrics {
	out := make([]metrics.BackendMetrics, total)
	for i := range out {
		out[i].Status = models.StatusDegraded
		if i < operational {
			out[i].Status = models.StatusOperational
		}
	}
	return out
}

func TestProgramSummaryHealthBuckets(t *testing.T) {
	svc := newTestInsights()

	tests := []struct {
		name      string
		snap      MetricsSnapshot
		wantScore int
		wantLevel ProgramHealth
	}{
		{
			name:      "everything healthy",
			snap:      MetricsSnapshot{Platforms: platformsWithHealth(2, 2), Backend: backendWithStatus(2, 2)},
			wantScore: 100,
			wantLevel: HealthExcellent,
		},
		{
			name:      "one service degraded",
			snap:      MetricsSnapshot{Platforms: platformsWithHealth(2, 2), Backend: backendWithStatus(1, 2)},
			wantScore: 75,
			wantLevel: HealthGood,
		},
		{
			name:      "half of everything down",
			snap:      MetricsSnapshot{Platforms: platformsWithHealth(1, 2), Backend: backendWithStatus(1, 2)},
			wantScore: 50,
			wantLevel: HealthWarning,
		},
		{
			name:      "mostly down",
			snap:      MetricsSnapshot{Platforms: platformsWithHealth(1, 2), Backend: backendWithStatus(0, 2)},
			wantScore: 25,
			wantLevel: HealthCritical,
		},
		{
			// An empty snapshot scores against the full fleet size, not
			// against zero.
			name:      "empty snapshot",
			snap:      MetricsSnapshot{},
			wantScore: 0,
			wantLevel: HealthCritical,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := svc.ProgramSummary(context.Background(), tt.snap)
			if summary.HealthScore != tt.wantScore {
				t.Errorf("HealthScore = %d, want %d", summary.HealthScore, tt.wantScore)
			}
			if summary.OverallHealth != tt.wantLevel {
				t.Errorf("OverallHealth = %s, want %s", summary.OverallHealth, tt.wantLevel)
			}
			if len(summary.TopConcerns) == 0 || len(summary.NextSteps) == 0 {
				t.Error("summary narrative sections empty")
			}
		})
	}
}

func TestPredictRisks(t *testing.T) {
	svc := newTestInsights()

	slowPlatform := metrics.PlatformMetrics{}
	slowPlatform.Performance.ResponseTime = 2500
	flakyBackend := metrics.BackendMetrics{}
	flakyBackend.Performance.Uptime = 99.0

	snap := MetricsSnapshot{
		// Two slow platforms still yield a single performance risk.
		Platforms: []metrics.PlatformMetrics{slowPlatform, slowPlatform},
		Backend:   []metrics.BackendMetrics{flakyBackend},
	}

	risks := svc.PredictRisks(context.Background(), snap)
	if len(risks) != 2 {
		t.Fatalf("len = %d, want 2 (%+v)", len(risks), risks)
	}
	if risks[0].ID != "perf-001" || risks[0].Severity != models.SeverityHigh {
		t.Errorf("risks[0] = %+v", risks[0])
	}
	if risks[1].ID != "avail-001" || risks[1].Severity != models.SeverityMedium {
		t.Errorf("risks[1] = %+v", risks[1])
	}

	if got := svc.PredictRisks(context.Background(), MetricsSnapshot{}); len(got) != 0 {
		t.Errorf("clean snapshot produced %d risks", len(got))
	}
}

func TestRecommendations(t *testing.T) {
	svc := newTestInsights()

	risks := []RiskPrediction{
		{Category: "security", Severity: models.SeverityCritical, Recommendation: "Rotate credentials"},
		{Category: "performance", Severity: models.SeverityHigh, Recommendation: "Add caching"},
		{Category: "delivery", Severity: models.SeverityLow, Recommendation: "Review backlog"},
	}

	recs := svc.Recommendations(context.Background(), risks, MetricsSnapshot{})
	if len(recs) != 3 {
		t.Fatalf("len = %d, want 3", len(recs))
	}

	wantPriorities := []Priority{PriorityUrgent, PriorityHigh, PriorityMedium}
	wantDue := testNow.Add(14 * 24 * time.Hour)
	for i, rec := range recs {
		if rec.Priority != wantPriorities[i] {
			t.Errorf("rec %d priority = %s, want %s", i, rec.Priority, wantPriorities[i])
		}
		if rec.Description != risks[i].Recommendation {
			t.Errorf("rec %d description = %q", i, rec.Description)
		}
		if !rec.DueDate.Equal(wantDue) {
			t.Errorf("rec %d due = %s, want %s", i, rec.DueDate, wantDue)
		}
	}

	// With no risks given, recommendations derive from the rule-based
	// risk pass over the snapshot.
	slow := metrics.PlatformMetrics{}
	slow.Performance.ResponseTime = 2500
	derived := svc.Recommendations(context.Background(), nil, MetricsSnapshot{
		Platforms: []metrics.PlatformMetrics{slow},
	})
	if len(derived) != 1 || derived[0].Category != "performance" {
		t.Errorf("derived = %+v", derived)
	}
}
