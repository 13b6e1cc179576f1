package report

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"livpulse/internal/config"
	"livpulse/internal/features/insights"
	"livpulse/internal/features/metrics"

	"go.uber.org/zap"
)

var testNow = time.Date(2025, time.March, 10, 15, 4, 5, 0, time.UTC)

func newTestReportService() ReportService {
	log := zap.NewNop()
	metricsService := metrics.NewMetricsService(log, rand.New(rand.NewSource(1)))
	insightsService := insights.NewInsightsService(&config.Config{}, log, rand.New(rand.NewSource(1)))
	return &ReportServiceImpl{
		metrics:  metricsService,
		insights: insightsService,
		log:      log,
		now:      func() time.Time { return testNow },
	}
}

func TestExecutiveReport(t *testing.T) {
	svc := newTestReportService()

	report, err := svc.Executive(context.Background())
	if err != nil {
		t.Fatalf("Executive() error = %v", err)
	}
	if report.Title != "OTT Program Management - Executive Report" {
		t.Errorf("Title = %q", report.Title)
	}
	if report.GeneratedAt != "3/10/2025, 3:04:05 PM" {
		t.Errorf("GeneratedAt = %q", report.GeneratedAt)
	}
	if len(report.Platforms) == 0 || len(report.Backend) == 0 {
		t.Error("metrics sections empty")
	}
	if report.Summary.HealthScore == 0 {
		t.Error("summary not populated")
	}
}

func TestTechnicalReportSummary(t *testing.T) {
	svc := newTestReportService()

	report, err := svc.Technical(context.Background())
	if err != nil {
		t.Fatalf("Technical() error = %v", err)
	}
	if report.Summary.TotalPlatforms != len(report.Platforms) {
		t.Errorf("TotalPlatforms = %d, platforms = %d", report.Summary.TotalPlatforms, len(report.Platforms))
	}
	if report.Summary.TotalServices != len(report.Backend) {
		t.Errorf("TotalServices = %d, services = %d", report.Summary.TotalServices, len(report.Backend))
	}

	wantAlerts := len(report.Alerts.Platform) + len(report.Alerts.Backend) +
		len(report.Alerts.Ops) + len(report.Alerts.Store) + len(report.Alerts.CMS)
	if report.Summary.TotalAlerts != wantAlerts {
		t.Errorf("TotalAlerts = %d, sections sum to %d", report.Summary.TotalAlerts, wantAlerts)
	}
}

func TestWeeklyReportConcernsCapped(t *testing.T) {
	svc := newTestReportService()

	report, err := svc.Weekly(context.Background())
	if err != nil {
		t.Fatalf("Weekly() error = %v", err)
	}
	if report.Period != "Last 7 Days" {
		t.Errorf("Period = %q", report.Period)
	}
	if len(report.Concerns) > 5 {
		t.Errorf("Concerns = %d entries, cap is 5", len(report.Concerns))
	}
	if len(report.Highlights) != 4 {
		t.Errorf("Highlights = %d entries", len(report.Highlights))
	}
}

func TestCustomReportDefaults(t *testing.T) {
	svc := newTestReportService()

	report, err := svc.Custom(context.Background(), CustomReportRequest{})
	if err != nil {
		t.Fatalf("Custom() error = %v", err)
	}
	if report.Title != "Custom Report" {
		t.Errorf("Title = %q", report.Title)
	}
	// Default sections are platforms, backend and operations.
	if len(report.Platforms) == 0 || len(report.Backend) == 0 || len(report.Operations) == 0 {
		t.Error("default sections not populated")
	}
	if report.Store != nil || report.CMS != nil {
		t.Error("unrequested sections populated")
	}
	if report.Summary.Platforms == nil || report.Summary.Store != nil {
		t.Error("summary does not match requested sections")
	}

	scoped, err := svc.Custom(context.Background(), CustomReportRequest{
		Title:    "Store Health",
		Sections: []string{"store"},
	})
	if err != nil {
		t.Fatalf("Custom() error = %v", err)
	}
	if scoped.Title != "Store Health" || len(scoped.Store) == 0 || scoped.Platforms != nil {
		t.Errorf("scoped report = %+v", scoped)
	}
}
