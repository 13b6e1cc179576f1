package metrics

import (
	"math/rand"
	"testing"
	"time"

	"livpulse/internal/common/models"

	"go.uber.org/zap"
)

func newTestMetrics() *MetricsServiceImpl {
	return &MetricsServiceImpl{
		log: zap.NewNop(),
		now: func() time.Time { return time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC) },
		rng: rand.New(rand.NewSource(1)),
	}
}

func TestSortAlerts(t *testing.T) {
	alerts := []models.Alert{
		{ID: "a", Severity: models.SeverityLow},
		{ID: "b", Severity: models.SeverityCritical},
		{ID: "c", Severity: models.SeverityMedium},
		{ID: "d", Severity: models.SeverityHigh},
		{ID: "e", Severity: models.SeverityMedium},
	}

	sorted := sortAlerts(alerts)

	wantOrder := []string{"b", "d", "c", "e", "a"}
	for i, want := range wantOrder {
		if sorted[i].ID != want {
			t.Fatalf("position %d = %s, want %s (order %v)", i, sorted[i].ID, want, sorted)
		}
	}
}

func TestDomainAlertsSortedAndTagged(t *testing.T) {
	svc := newTestMetrics()

	tests := []struct {
		name   string
		alerts []models.Alert
		source string
	}{
		{"platform", svc.PlatformAlerts(), "platform"},
		{"backend", svc.BackendAlerts(), "backend"},
		{"ops", svc.OpsAlerts(), "operations"},
		{"store", svc.StoreAlerts(), "store"},
		{"cms", svc.CMSAlerts(), "cms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i, a := range tt.alerts {
				if a.Source != tt.source {
					t.Errorf("alert %s Source = %q, want %q", a.ID, a.Source, tt.source)
				}
				if i > 0 && tt.alerts[i-1].Severity.Rank() < a.Severity.Rank() {
					t.Errorf("alert %d (%s) outranks its predecessor", i, a.Severity)
				}
			}
		})
	}
}

func TestTrendDates(t *testing.T) {
	svc := newTestMetrics()

	dates := svc.trendDates(7)
	if len(dates) != 8 {
		t.Fatalf("len = %d, want 8", len(dates))
	}
	if dates[0] != "2025-03-03" || dates[7] != "2025-03-10" {
		t.Errorf("range = %s..%s", dates[0], dates[len(dates)-1])
	}

	// Non-positive day counts fall back to a 30 day window.
	if got := svc.trendDates(0); len(got) != 31 {
		t.Errorf("default window = %d points, want 31", len(got))
	}
}

func TestPlatformTrends(t *testing.T) {
	svc := newTestMetrics()

	trends := svc.PlatformTrends("Android", 7)
	if len(trends) != 8 {
		t.Fatalf("len = %d, want 8", len(trends))
	}

	base, ok := svc.PlatformMetric("Android")
	if !ok {
		t.Fatal("Android missing from fleet")
	}
	lo := float64(base.Users.Active) * 0.9
	hi := float64(base.Users.Active) * 1.1
	for _, p := range trends {
		if float64(p.Users) < lo-1 || float64(p.Users) > hi+1 {
			t.Errorf("users %d outside variance band [%f, %f]", p.Users, lo, hi)
		}
	}

	if got := svc.PlatformTrends("Symbian", 7); len(got) != 0 {
		t.Errorf("unknown platform returned %d points", len(got))
	}
}

func TestMetricLookup(t *testing.T) {
	svc := newTestMetrics()

	// Platform and service lookups are case insensitive exact matches.
	if _, ok := svc.PlatformMetric("android"); !ok {
		t.Error("case-insensitive platform lookup failed")
	}
	if _, ok := svc.BackendMetric("umsps"); !ok {
		t.Error("case-insensitive service lookup failed")
	}
	if _, ok := svc.PlatformMetric("Droid"); ok {
		t.Error("substring matched a platform")
	}

	// Store and cms lookups match on substring.
	if _, ok := svc.StoreMetric("mobile"); !ok {
		t.Error("substring store lookup failed")
	}
}

func TestVarianceBounds(t *testing.T) {
	svc := newTestMetrics()

	for i := 0; i < 1000; i++ {
		v := svc.variance(0.15)
		if v < 0.85 || v > 1.15 {
			t.Fatalf("variance(0.15) = %f", v)
		}
	}
}
