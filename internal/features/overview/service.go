package overview

import (
	"context"
	"fmt"
	"sort"
	"time"

	"livpulse/internal/common/models"
	"livpulse/internal/features/insights"
	"livpulse/internal/features/metrics"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const maxMergedAlerts = 50

// OverviewService fans out across the domain metrics services and
// merges the results into cross-domain bundles.
type OverviewService interface {
	Overview(ctx context.Context) (Bundle, error)
	KPIs(ctx context.Context) (KPIBundle, error)
	Alerts(ctx context.Context) (AlertBundle, error)
	Health(ctx context.Context) (HealthBundle, error)
	Trends(ctx context.Context, days int) (TrendBundle, error)
}

type OverviewServiceImpl struct {
	metrics  metrics.MetricsService
	insights insights.InsightsService
	log      *zap.Logger
	now      func() time.Time
}

func NewOverviewService(metricsService metrics.MetricsService, insightsService insights.InsightsService, log *zap.Logger) OverviewService {
	return &OverviewServiceImpl{
		metrics:  metricsService,
		insights: insightsService,
		log:      log,
		now:      time.Now,
	}
}

func (s *OverviewServiceImpl) snapshot(ctx context.Context) (insights.MetricsSnapshot, error) {
	var snap insights.MetricsSnapshot
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error { snap.Platforms = s.metrics.AllPlatformMetrics(); return nil })
	g.Go(func() error { snap.Backend = s.metrics.AllBackendMetrics(); return nil })
	g.Go(func() error { snap.Ops = s.metrics.AllOpsMetrics(); return nil })
	g.Go(func() error { snap.Store = s.metrics.AllStoreMetrics(); return nil })
	g.Go(func() error { snap.CMS = s.metrics.AllCMSMetrics(); return nil })
	if err := g.Wait(); err != nil {
		return insights.MetricsSnapshot{}, err
	}
	return snap, nil
}

func (s *OverviewServiceImpl) Overview(ctx context.Context) (Bundle, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return Bundle{}, err
	}

	var bundle Bundle
	bundle.Metrics = snap

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		bundle.Summary = s.insights.ProgramSummary(gctx, snap)
		return nil
	})
	g.Go(func() error {
		bundle.Risks = s.insights.PredictRisks(gctx, snap)
		return nil
	})
	g.Go(func() error {
		bundle.Recommendations = s.insights.Recommendations(gctx, nil, snap)
		return nil
	})
	if err := g.Wait(); err != nil {
		return Bundle{}, err
	}

	bundle.LastUpdated = s.now()
	return bundle, nil
}

func (s *OverviewServiceImpl) KPIs(ctx context.Context) (KPIBundle, error) {
	var bundle KPIBundle
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error { bundle.Platform = s.metrics.PlatformKPIs(); return nil })
	g.Go(func() error { bundle.Backend = s.metrics.BackendKPIs(); return nil })
	g.Go(func() error { bundle.Operations = s.metrics.OpsKPIs(); return nil })
	g.Go(func() error { bundle.Store = s.metrics.StoreKPIs(); return nil })
	g.Go(func() error { bundle.CMS = s.metrics.CMSKPIs(); return nil })
	if err := g.Wait(); err != nil {
		return KPIBundle{}, err
	}
	bundle.LastUpdated = s.now()
	return bundle, nil
}

func (s *OverviewServiceImpl) Alerts(ctx context.Context) (AlertBundle, error) {
	var platform, backend, operations, store, cms []models.Alert
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error { platform = s.metrics.PlatformAlerts(); return nil })
	g.Go(func() error { backend = s.metrics.BackendAlerts(); return nil })
	g.Go(func() error { operations = s.metrics.OpsAlerts(); return nil })
	g.Go(func() error { store = s.metrics.StoreAlerts(); return nil })
	g.Go(func() error { cms = s.metrics.CMSAlerts(); return nil })
	if err := g.Wait(); err != nil {
		return AlertBundle{}, err
	}

	merged := make([]models.Alert, 0, len(platform)+len(backend)+len(operations)+len(store)+len(cms))
	merged = append(merged, platform...)
	merged = append(merged, backend...)
	merged = append(merged, operations...)
	merged = append(merged, store...)
	merged = append(merged, cms...)

	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].Severity.Rank() != merged[j].Severity.Rank() {
			return merged[i].Severity.Rank() > merged[j].Severity.Rank()
		}
		return merged[i].Timestamp.After(merged[j].Timestamp)
	})

	summary := AlertSummary{
		Total: len(merged),
		BySource: map[string]int{
			"platform":   len(platform),
			"backend":    len(backend),
			"operations": len(operations),
			"store":      len(store),
			"cms":        len(cms),
		},
	}
	for _, a := range merged {
		switch a.Severity {
		case models.SeverityCritical:
			summary.Critical++
		case models.SeverityHigh:
			summary.High++
		case models.SeverityMedium:
			summary.Medium++
		case models.SeverityLow:
			summary.Low++
		}
	}

	if len(merged) > maxMergedAlerts {
		merged = merged[:maxMergedAlerts]
	}
	return AlertBundle{Summary: summary, Alerts: merged, LastUpdated: s.now()}, nil
}

func (s *OverviewServiceImpl) Health(ctx context.Context) (HealthBundle, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return HealthBundle{}, err
	}

	var breakdown HealthBreakdown
	for _, p := range snap.Platforms {
		tallyHealth(&breakdown.Platforms, p.Health)
	}
	for _, b := range snap.Backend {
		breakdown.Backend.Total++
		switch b.Status {
		case models.StatusOperational:
			breakdown.Backend.Operational++
		case models.StatusDegraded:
			breakdown.Backend.Degraded++
		case models.StatusOutage:
			breakdown.Backend.Outage++
		}
	}
	for _, o := range snap.Ops {
		tallyHealth(&breakdown.Operations, o.Health)
	}
	for _, st := range snap.Store {
		tallyHealth(&breakdown.Store, st.Health)
	}
	for _, c := range snap.CMS {
		tallyHealth(&breakdown.CMS, c.Health)
	}

	totalSystems := breakdown.Platforms.Total + breakdown.Backend.Total +
		breakdown.Operations.Total + breakdown.Store.Total + breakdown.CMS.Total
	healthySystems := breakdown.Platforms.Healthy + breakdown.Backend.Operational +
		breakdown.Operations.Healthy + breakdown.Store.Healthy + breakdown.CMS.Healthy

	score := 0
	if totalSystems > 0 {
		score = int(float64(healthySystems)/float64(totalSystems)*100 + 0.5)
	}
	status := models.HealthHealthy
	switch {
	case score < 70:
		status = models.HealthCritical
	case score < 90:
		status = models.HealthWarning
	}

	return HealthBundle{
		Overall: OverallHealth{
			Status:         status,
			Score:          score,
			TotalSystems:   totalSystems,
			HealthySystems: healthySystems,
		},
		Breakdown:   breakdown,
		LastUpdated: s.now(),
	}, nil
}

func tallyHealth(counts *HealthCounts, h models.HealthStatus) {
	counts.Total++
	switch h {
	case models.HealthHealthy:
		counts.Healthy++
	case models.HealthWarning:
		counts.Warning++
	case models.HealthCritical:
		counts.Critical++
	}
}

func (s *OverviewServiceImpl) Trends(ctx context.Context, days int) (TrendBundle, error) {
	if days <= 0 {
		days = 7
	}

	var bundle TrendBundle
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error { bundle.Platforms.Android = s.metrics.PlatformTrends("Android", days); return nil })
	g.Go(func() error { bundle.Platforms.Web = s.metrics.PlatformTrends("Web", days); return nil })
	g.Go(func() error { bundle.Services.UMSPS = s.metrics.BackendTrends("UMSPS", days); return nil })
	g.Go(func() error { bundle.Services.Playback = s.metrics.BackendTrends("Playback", days); return nil })
	if err := g.Wait(); err != nil {
		return TrendBundle{}, err
	}

	bundle.Period = fmt.Sprintf("%d days", days)
	bundle.LastUpdated = s.now()
	return bundle, nil
}
