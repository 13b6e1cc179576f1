package metrics

import (
	"math"
	"math/rand"
	"sort"
	"sync"
	"time"

	"livpulse/internal/common/models"

	"go.uber.org/zap"
)

// MetricsService serves the monitoring snapshots, derived alerts, KPI
// rollups and generated trend history for every monitored domain.
type MetricsService interface {
	AllPlatformMetrics() []PlatformMetrics
	PlatformMetric(platform string) (PlatformMetrics, bool)
	PlatformTrends(platform string, days int) []PlatformTrend
	PlatformComparison() PlatformComparison
	PlatformAlerts() []models.Alert
	PlatformKPIs() PlatformKPIs

	AllBackendMetrics() []BackendMetrics
	BackendMetric(service string) (BackendMetrics, bool)
	BackendTrends(service string, days int) []BackendTrend
	BackendAlerts() []models.Alert
	BackendKPIs() BackendKPIs
	BackendDependencyHealth() DependencyHealth

	AllStoreMetrics() []StoreMetrics
	StoreMetric(platform string) (StoreMetrics, bool)
	StoreTrends(platform string, days int) []StoreTrend
	StoreComparison() StoreComparison
	StoreAlerts() []models.Alert
	StoreKPIs() StoreKPIs

	AllCMSMetrics() []CMSMetrics
	CMSMetric(module string) (CMSMetrics, bool)
	CMSTrends(module string, days int) []CMSTrend
	CMSAlerts() []models.Alert
	CMSKPIs() CMSKPIs
	ContentProcessingStats() ContentProcessingStats

	AllOpsMetrics() []OpsMetrics
	CDNMetrics() CDNMetrics
	DevOpsMetrics() DevOpsMetrics
	OpsAlerts() []models.Alert
	OpsKPIs() OpsKPIs
}

type MetricsServiceImpl struct {
	log *zap.Logger
	now func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

// NewMetricsService builds the service. rng drives trend variance; tests
// pass a seeded source for reproducible series.
func NewMetricsService(log *zap.Logger, rng *rand.Rand) MetricsService {
	return &MetricsServiceImpl{
		log: log,
		now: time.Now,
		rng: rng,
	}
}

func (s *MetricsServiceImpl) float() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// variance returns a multiplier centered on 1 with the given spread:
// spread 0.1 yields 0.9..1.1, spread 0.2 yields 0.8..1.2.
func (s *MetricsServiceImpl) variance(spread float64) float64 {
	return (1 - spread) + s.float()*2*spread
}

// sortAlerts orders alerts by severity, most urgent first. The sort is
// stable so alerts of equal severity keep their generation order.
func sortAlerts(alerts []models.Alert) []models.Alert {
	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Severity.Rank() > alerts[j].Severity.Rank()
	})
	return alerts
}

// trendDates returns day-granularity dates from days ago up to today.
func (s *MetricsServiceImpl) trendDates(days int) []string {
	if days <= 0 {
		days = 30
	}
	now := s.now()
	dates := make([]string, 0, days+1)
	for i := days; i >= 0; i-- {
		dates = append(dates, now.AddDate(0, 0, -i).Format("2006-01-02"))
	}
	return dates
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }

// AttentionItem flags an unhealthy entity in a KPI rollup.
type AttentionItem struct {
	Name   string              `json:"name"`
	Health models.HealthStatus `json:"health"`
	Issues string              `json:"issues"`
}
