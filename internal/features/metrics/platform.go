package metrics

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"livpulse/internal/common/models"
)

// PlatformComparison lines the platforms up along each KPI axis.
type PlatformComparison struct {
	UserGrowth  []PlatformGrowthEntry  `json:"userGrowth"`
	Performance []PlatformScoreEntry   `json:"performance"`
	Revenue     []PlatformRevenueEntry `json:"revenue"`
	Health      []PlatformHealthEntry  `json:"health"`
}

type PlatformGrowthEntry struct {
	Platform string  `json:"platform"`
	Growth   float64 `json:"growth"`
	Active   int     `json:"active"`
}

type PlatformScoreEntry struct {
	Platform string `json:"platform"`
	Score    int    `json:"score"`
}

type PlatformRevenueEntry struct {
	Platform   string  `json:"platform"`
	Revenue    float64 `json:"revenue"`
	Conversion float64 `json:"conversion"`
}

type PlatformHealthEntry struct {
	Platform string              `json:"platform"`
	Health   models.HealthStatus `json:"health"`
	Score    int                 `json:"score"`
}

// PlatformKPIs is the fleet-wide platform rollup.
type PlatformKPIs struct {
	Summary        PlatformKPISummary    `json:"summary"`
	TopPerformers  []PlatformGrowthEntry `json:"topPerformers"`
	NeedsAttention []AttentionItem       `json:"needsAttention"`
}

type PlatformKPISummary struct {
	TotalUsers        int     `json:"totalUsers"`
	AvgGrowth         float64 `json:"avgGrowth"`
	TotalRevenue      float64 `json:"totalRevenue"`
	AvgSatisfaction   float64 `json:"avgSatisfaction"`
	HealthyPlatforms  int     `json:"healthyPlatforms"`
	WarningPlatforms  int     `json:"warningPlatforms"`
	CriticalPlatforms int     `json:"criticalPlatforms"`
}

func (s *MetricsServiceImpl) AllPlatformMetrics() []PlatformMetrics {
	return platformFleet(s.now())
}

func (s *MetricsServiceImpl) PlatformMetric(platform string) (PlatformMetrics, bool) {
	for _, p := range s.AllPlatformMetrics() {
		if strings.EqualFold(p.Platform, platform) {
			return p, true
		}
	}
	return PlatformMetrics{}, false
}

func (s *MetricsServiceImpl) PlatformTrends(platform string, days int) []PlatformTrend {
	base, ok := s.PlatformMetric(platform)
	if !ok {
		return []PlatformTrend{}
	}

	dates := s.trendDates(days)
	trends := make([]PlatformTrend, 0, len(dates))
	for _, date := range dates {
		trends = append(trends, PlatformTrend{
			Date:         date,
			Users:        int(math.Round(float64(base.Users.Active) * s.variance(0.1))),
			Performance:  int(math.Round((100 - base.Performance.ErrorRate) * s.variance(0.1))),
			Revenue:      int(math.Round(base.Business.Revenue * s.variance(0.1))),
			Satisfaction: math.Round(base.Features.Satisfaction*20*s.variance(0.1)) / 20,
		})
	}
	return trends
}

func (s *MetricsServiceImpl) PlatformComparison() PlatformComparison {
	fleet := s.AllPlatformMetrics()
	cmp := PlatformComparison{}

	for _, p := range fleet {
		cmp.UserGrowth = append(cmp.UserGrowth, PlatformGrowthEntry{
			Platform: p.Platform, Growth: p.Users.Growth, Active: p.Users.Active,
		})
		cmp.Performance = append(cmp.Performance, PlatformScoreEntry{
			Platform: p.Platform,
			Score:    int(math.Round(100 - (p.Performance.ErrorRate + p.Performance.CrashRate))),
		})
		cmp.Revenue = append(cmp.Revenue, PlatformRevenueEntry{
			Platform: p.Platform, Revenue: p.Business.Revenue, Conversion: p.Business.Conversion,
		})
		cmp.Health = append(cmp.Health, PlatformHealthEntry{
			Platform: p.Platform, Health: p.Health, Score: healthScoreOf(p.Health),
		})
	}
	return cmp
}

func healthScoreOf(h models.HealthStatus) int {
	switch h {
	case models.HealthHealthy:
		return 100
	case models.HealthWarning:
		return 70
	}
	return 30
}

func (s *MetricsServiceImpl) PlatformAlerts() []models.Alert {
	now := s.now()
	var alerts []models.Alert

	for _, p := range s.AllPlatformMetrics() {
		if p.Performance.CrashRate > 2.0 {
			alerts = append(alerts, models.Alert{
				ID:          fmt.Sprintf("crash-%s", p.Platform),
				Source:      "platform",
				Entity:      p.Platform,
				Type:        "performance",
				Severity:    models.SeverityHigh,
				Title:       "High Crash Rate",
				Description: fmt.Sprintf("%s crash rate is %v%%", p.Platform, p.Performance.CrashRate),
				Threshold:   "2.0%",
				Current:     fmt.Sprintf("%v%%", p.Performance.CrashRate),
				Timestamp:   now,
			})
		}
		if p.Performance.ResponseTime > 1500 {
			alerts = append(alerts, models.Alert{
				ID:          fmt.Sprintf("response-%s", p.Platform),
				Source:      "platform",
				Entity:      p.Platform,
				Type:        "performance",
				Severity:    models.SeverityMedium,
				Title:       "Slow Response Time",
				Description: fmt.Sprintf("%s response time is %vms", p.Platform, p.Performance.ResponseTime),
				Threshold:   "1500ms",
				Current:     fmt.Sprintf("%vms", p.Performance.ResponseTime),
				Timestamp:   now,
			})
		}
		if p.Users.Growth < 5 {
			alerts = append(alerts, models.Alert{
				ID:          fmt.Sprintf("growth-%s", p.Platform),
				Source:      "platform",
				Entity:      p.Platform,
				Type:        "business",
				Severity:    models.SeverityMedium,
				Title:       "Low User Growth",
				Description: fmt.Sprintf("%s user growth is only %v%%", p.Platform, p.Users.Growth),
				Threshold:   "5%",
				Current:     fmt.Sprintf("%v%%", p.Users.Growth),
				Timestamp:   now,
			})
		}
		if p.Technical.TestPass < 85 {
			alerts = append(alerts, models.Alert{
				ID:          fmt.Sprintf("test-%s", p.Platform),
				Source:      "platform",
				Entity:      p.Platform,
				Type:        "technical",
				Severity:    models.SeverityHigh,
				Title:       "Low Test Pass Rate",
				Description: fmt.Sprintf("%s test pass rate is %v%%", p.Platform, p.Technical.TestPass),
				Threshold:   "85%",
				Current:     fmt.Sprintf("%v%%", p.Technical.TestPass),
				Timestamp:   now,
			})
		}
	}
	return sortAlerts(alerts)
}

func (s *MetricsServiceImpl) PlatformKPIs() PlatformKPIs {
	fleet := s.AllPlatformMetrics()

	var summary PlatformKPISummary
	var growthSum, satisfactionSum float64
	for _, p := range fleet {
		summary.TotalUsers += p.Users.Active
		growthSum += p.Users.Growth
		summary.TotalRevenue += p.Business.Revenue
		satisfactionSum += p.Features.Satisfaction
		switch p.Health {
		case models.HealthHealthy:
			summary.HealthyPlatforms++
		case models.HealthWarning:
			summary.WarningPlatforms++
		case models.HealthCritical:
			summary.CriticalPlatforms++
		}
	}
	summary.AvgGrowth = round1(growthSum / float64(len(fleet)))
	summary.AvgSatisfaction = round1(satisfactionSum / float64(len(fleet)))

	byGrowth := append([]PlatformMetrics(nil), fleet...)
	sort.SliceStable(byGrowth, func(i, j int) bool {
		return byGrowth[i].Users.Growth > byGrowth[j].Users.Growth
	})
	var top []PlatformGrowthEntry
	for _, p := range byGrowth[:3] {
		top = append(top, PlatformGrowthEntry{Platform: p.Platform, Growth: p.Users.Growth, Active: p.Users.Active})
	}

	var attention []AttentionItem
	for _, p := range fleet {
		if p.Health == models.HealthHealthy {
			continue
		}
		issues := "Performance issues"
		if p.Performance.CrashRate > 2 {
			issues = "High crash rate"
		}
		attention = append(attention, AttentionItem{Name: p.Platform, Health: p.Health, Issues: issues})
	}

	return PlatformKPIs{Summary: summary, TopPerformers: top, NeedsAttention: attention}
}
