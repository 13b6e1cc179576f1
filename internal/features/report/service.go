package report

import (
	"context"
	"fmt"
	"time"

	"livpulse/internal/features/insights"
	"livpulse/internal/features/metrics"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const generatedAtLayout = "1/2/2006, 3:04:05 PM"

// ReportService assembles the JSON report payloads. PDF rendering is
// delegated to an external renderer consuming these payloads.
type ReportService interface {
	Executive(ctx context.Context) (ExecutiveReport, error)
	Technical(ctx context.Context) (TechnicalReport, error)
	Weekly(ctx context.Context) (WeeklyReport, error)
	Custom(ctx context.Context, req CustomReportRequest) (CustomReport, error)
}

type ReportServiceImpl struct {
	metrics  metrics.MetricsService
	insights insights.InsightsService
	log      *zap.Logger
	now      func() time.Time
}

func NewReportService(metricsService metrics.MetricsService, insightsService insights.InsightsService, log *zap.Logger) ReportService {
	return &ReportServiceImpl{
		metrics:  metricsService,
		insights: insightsService,
		log:      log,
		now:      time.Now,
	}
}

func (s *ReportServiceImpl) snapshot(ctx context.Context) (insights.MetricsSnapshot, error) {
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

func (s *ReportServiceImpl) kpiSet(ctx context.Context) (KPISet, error) {
	var set KPISet
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error { set.Platform = s.metrics.PlatformKPIs(); return nil })
	g.Go(func() error { set.Backend = s.metrics.BackendKPIs(); return nil })
	g.Go(func() error { set.Ops = s.metrics.OpsKPIs(); return nil })
	g.Go(func() error { set.Store = s.metrics.StoreKPIs(); return nil })
	g.Go(func() error { set.CMS = s.metrics.CMSKPIs(); return nil })
	if err := g.Wait(); err != nil {
		return KPISet{}, err
	}
	return set, nil
}

func (s *ReportServiceImpl) Executive(ctx context.Context) (ExecutiveReport, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return ExecutiveReport{}, err
	}

	report := ExecutiveReport{
		Title:       "OTT Program Management - Executive Report",
		GeneratedAt: s.now().Format(generatedAtLayout),
		Platforms:   snap.Platforms,
		Backend:     snap.Backend,
		Operations:  snap.Ops,
		Store:       snap.Store,
		CMS:         snap.CMS,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		report.Summary = s.insights.ProgramSummary(gctx, snap)
		return nil
	})
	g.Go(func() error {
		report.Risks = s.insights.PredictRisks(gctx, snap)
		return nil
	})
	g.Go(func() error {
		report.Recommendations = s.insights.Recommendations(gctx, nil, snap)
		return nil
	})
	g.Go(func() error {
		set, err := s.kpiSet(gctx)
		if err != nil {
			return err
		}
		report.KPIs = set
		return nil
	})
	if err := g.Wait(); err != nil {
		return ExecutiveReport{}, err
	}
	return report, nil
}

func (s *ReportServiceImpl) Technical(ctx context.Context) (TechnicalReport, error) {
	var (
		snap   insights.MetricsSnapshot
		alerts AlertSet
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snap, err = s.snapshot(gctx)
		return err
	})
	g.Go(func() error { alerts.Platform = s.metrics.PlatformAlerts(); return nil })
	g.Go(func() error { alerts.Backend = s.metrics.BackendAlerts(); return nil })
	g.Go(func() error { alerts.Ops = s.metrics.OpsAlerts(); return nil })
	g.Go(func() error { alerts.Store = s.metrics.StoreAlerts(); return nil })
	g.Go(func() error { alerts.CMS = s.metrics.CMSAlerts(); return nil })
	if err := g.Wait(); err != nil {
		return TechnicalReport{}, err
	}

	totalAlerts := len(alerts.Platform) + len(alerts.Backend) + len(alerts.Ops) +
		len(alerts.Store) + len(alerts.CMS)

	return TechnicalReport{
		Title:       "OTT Program Management - Technical Report",
		GeneratedAt: s.now().Format(generatedAtLayout),
		Summary: TechnicalSummary{
			TotalPlatforms: len(snap.Platforms),
			TotalServices:  len(snap.Backend),
			TotalAlerts:    totalAlerts,
		},
		Platforms:  snap.Platforms,
		Backend:    snap.Backend,
		Operations: snap.Ops,
		Store:      snap.Store,
		CMS:        snap.CMS,
		Alerts:     alerts,
	}, nil
}

func (s *ReportServiceImpl) Weekly(ctx context.Context) (WeeklyReport, error) {
	set, err := s.kpiSet(ctx)
	if err != nil {
		return WeeklyReport{}, err
	}

	concerns := make([]string, 0, 5)
	for _, p := range set.Platform.NeedsAttention {
		concerns = append(concerns, fmt.Sprintf("%s: %s", p.Name, p.Issues))
	}
	for _, b := range set.Backend.NeedsAttention {
		concerns = append(concerns, fmt.Sprintf("%s: %s", b.Name, b.Issues))
	}
	for _, o := range set.Ops.TopConcerns {
		concerns = append(concerns, fmt.Sprintf("%s: %s", o.Category, o.Issue))
	}
	if len(concerns) > 5 {
		concerns = concerns[:5]
	}

	return WeeklyReport{
		Title:       "Weekly Program Summary",
		GeneratedAt: s.now().Format(generatedAtLayout),
		Period:      "Last 7 Days",
		Summary: WeeklySummary{
			Platforms: WeeklyPlatforms{
				Total:   set.Platform.Summary.TotalUsers,
				Growth:  set.Platform.Summary.AvgGrowth,
				Healthy: set.Platform.Summary.HealthyPlatforms,
			},
			Backend: WeeklyBackend{
				Uptime:      set.Backend.Summary.AvgUptime,
				Throughput:  set.Backend.Summary.TotalThroughput,
				Operational: set.Backend.Summary.OperationalServices,
			},
			Operations: WeeklyOperations{
				Availability: set.Ops.Summary.AvgAvailability,
				Incidents:    set.Ops.Summary.TotalIncidents,
				MTTR:         set.Ops.Summary.AvgMTTR,
			},
			Store: WeeklyStore{
				Revenue:    set.Store.Summary.TotalRevenue,
				Conversion: set.Store.Summary.AvgConversionRate,
				Users:      set.Store.Summary.TotalUsers,
			},
			CMS: WeeklyCMS{
				Assets:    set.CMS.Summary.TotalAssets,
				Published: set.CMS.Summary.PublishedAssets,
				Quality:   set.CMS.Summary.AvgQualityScore,
			},
		},
		Highlights: []string{
			fmt.Sprintf("Platform user growth: %v%%", set.Platform.Summary.AvgGrowth),
			fmt.Sprintf("Backend uptime: %v%%", set.Backend.Summary.AvgUptime),
			fmt.Sprintf("Store revenue: $%v", set.Store.Summary.TotalRevenue),
			fmt.Sprintf("CMS quality score: %v%%", set.CMS.Summary.AvgQualityScore),
		},
		Concerns: concerns,
	}, nil
}

func (s *ReportServiceImpl) Custom(ctx context.Context, req CustomReportRequest) (CustomReport, error) {
	title := req.Title
	if title == "" {
		title = "Custom Report"
	}
	sections := req.Sections
	if len(sections) == 0 {
		sections = []string{"platforms", "backend", "operations"}
	}
	filters := req.Filters
	if filters == nil {
		filters = map[string]interface{}{}
	}

	report := CustomReport{
		Title:       title,
		GeneratedAt: s.now().Format(generatedAtLayout),
		Filters:     filters,
	}

	for _, section := range sections {
		switch section {
		case "platforms":
			report.Platforms = s.metrics.AllPlatformMetrics()
			kpis := s.metrics.PlatformKPIs()
			report.Summary.Platforms = &kpis
		case "backend":
			report.Backend = s.metrics.AllBackendMetrics()
			kpis := s.metrics.BackendKPIs()
			report.Summary.Backend = &kpis
		case "operations":
			report.Operations = s.metrics.AllOpsMetrics()
			kpis := s.metrics.OpsKPIs()
			report.Summary.Operations = &kpis
		case "store":
			report.Store = s.metrics.AllStoreMetrics()
			kpis := s.metrics.StoreKPIs()
			report.Summary.Store = &kpis
		case "cms":
			report.CMS = s.metrics.AllCMSMetrics()
			kpis := s.metrics.CMSKPIs()
			report.Summary.CMS = &kpis
		}
	}
	return report, nil
}
