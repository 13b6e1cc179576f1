package metrics

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"livpulse/internal/common/models"
)

// BackendKPIs is the fleet-wide backend service rollup.
type BackendKPIs struct {
	Summary             BackendKPISummary      `json:"summary"`
	TopPerformers       []ServiceUptimeEntry   `json:"topPerformers"`
	NeedsAttention      []AttentionItem        `json:"needsAttention"`
	ResourceUtilization []ServiceResourceEntry `json:"resourceUtilization"`
}

type BackendKPISummary struct {
	AvgUptime           float64 `json:"avgUptime"`
	AvgResponseTime     int     `json:"avgResponseTime"`
	TotalThroughput     float64 `json:"totalThroughput"`
	AvgErrorRate        float64 `json:"avgErrorRate"`
	OperationalServices int     `json:"operationalServices"`
	DegradedServices    int     `json:"degradedServices"`
	OutageServices      int     `json:"outageServices"`
	SLABreaches         int     `json:"slaBreaches"`
}

type ServiceUptimeEntry struct {
	Service string  `json:"service"`
	Uptime  float64 `json:"uptime"`
}

type ServiceResourceEntry struct {
	Service   string  `json:"service"`
	CPU       float64 `json:"cpu"`
	Memory    float64 `json:"memory"`
	Instances int     `json:"instances"`
}

// DependencyHealth counts dependency states across the fleet.
type DependencyHealth struct {
	Summary  map[string]map[models.HealthStatus]int `json:"summary"`
	Services []ServiceDependencyEntry               `json:"services"`
}

type ServiceDependencyEntry struct {
	Service      string              `json:"service"`
	Dependencies BackendDependencies `json:"dependencies"`
}

func (s *MetricsServiceImpl) AllBackendMetrics() []BackendMetrics {
	return backendFleet(s.now())
}

func (s *MetricsServiceImpl) BackendMetric(service string) (BackendMetrics, bool) {
	for _, b := range s.AllBackendMetrics() {
		if strings.EqualFold(b.Service, service) {
			return b, true
		}
	}
	return BackendMetrics{}, false
}

func (s *MetricsServiceImpl) BackendTrends(service string, days int) []BackendTrend {
	base, ok := s.BackendMetric(service)
	if !ok {
		return []BackendTrend{}
	}

	dates := s.trendDates(days)
	trends := make([]BackendTrend, 0, len(dates))
	for _, date := range dates {
		trends = append(trends, BackendTrend{
			Date:         date,
			Uptime:       math.Min(100, base.Performance.Uptime*s.variance(0.1)),
			ResponseTime: int(math.Round(base.Performance.ResponseTime * s.variance(0.1))),
			Throughput:   int(math.Round(base.Performance.Throughput * s.variance(0.1))),
			ErrorRate:    math.Max(0, base.Performance.ErrorRate*s.variance(0.1)),
		})
	}
	return trends
}

func (s *MetricsServiceImpl) BackendAlerts() []models.Alert {
	now := s.now()
	var alerts []models.Alert

	for _, b := range s.AllBackendMetrics() {
		if b.SLA.Current < b.SLA.Target {
			severity := models.SeverityHigh
			if b.SLA.Current < b.SLA.Target-1 {
				severity = models.SeverityCritical
			}
			alerts = append(alerts, models.Alert{
				ID:          fmt.Sprintf("sla-%s", b.Service),
				Source:      "backend",
				Entity:      b.Service,
				Type:        "sla",
				Severity:    severity,
				Title:       "SLA Breach",
				Description: fmt.Sprintf("%s SLA is %v%% (target: %v%%)", b.Service, b.SLA.Current, b.SLA.Target),
				Threshold:   fmt.Sprintf("%v%%", b.SLA.Target),
				Current:     fmt.Sprintf("%v%%", b.SLA.Current),
				Timestamp:   now,
			})
		}
		if b.Performance.ErrorRate > 5 {
			alerts = append(alerts, models.Alert{
				ID:          fmt.Sprintf("error-%s", b.Service),
				Source:      "backend",
				Entity:      b.Service,
				Type:        "performance",
				Severity:    models.SeverityCritical,
				Title:       "High Error Rate",
				Description: fmt.Sprintf("%s error rate is %v%%", b.Service, b.Performance.ErrorRate),
				Threshold:   "5%",
				Current:     fmt.Sprintf("%v%%", b.Performance.ErrorRate),
				Timestamp:   now,
			})
		}
		if b.Performance.ResponseTime > 1000 {
			alerts = append(alerts, models.Alert{
				ID:          fmt.Sprintf("latency-%s", b.Service),
				Source:      "backend",
				Entity:      b.Service,
				Type:        "performance",
				Severity:    models.SeverityHigh,
				Title:       "High Latency",
				Description: fmt.Sprintf("%s response time is %vms", b.Service, b.Performance.ResponseTime),
				Threshold:   "1000ms",
				Current:     fmt.Sprintf("%vms", b.Performance.ResponseTime),
				Timestamp:   now,
			})
		}
		if b.Resources.CPUUsage > 80 {
			alerts = append(alerts, models.Alert{
				ID:          fmt.Sprintf("cpu-%s", b.Service),
				Source:      "backend",
				Entity:      b.Service,
				Type:        "resource",
				Severity:    models.SeverityMedium,
				Title:       "High CPU Usage",
				Description: fmt.Sprintf("%s CPU usage is %v%%", b.Service, b.Resources.CPUUsage),
				Threshold:   "80%",
				Current:     fmt.Sprintf("%v%%", b.Resources.CPUUsage),
				Timestamp:   now,
			})
		}
		if b.Resources.MemoryUsage > 85 {
			alerts = append(alerts, models.Alert{
				ID:          fmt.Sprintf("memory-%s", b.Service),
				Source:      "backend",
				Entity:      b.Service,
				Type:        "resource",
				Severity:    models.SeverityHigh,
				Title:       "High Memory Usage",
				Description: fmt.Sprintf("%s memory usage is %v%%", b.Service, b.Resources.MemoryUsage),
				Threshold:   "85%",
				Current:     fmt.Sprintf("%v%%", b.Resources.MemoryUsage),
				Timestamp:   now,
			})
		}
		for _, dep := range []struct {
			name   string
			status models.HealthStatus
		}{
			{"database", b.Dependencies.Database},
			{"cache", b.Dependencies.Cache},
			{"external", b.Dependencies.External},
		} {
			if dep.status == models.HealthHealthy {
				continue
			}
			severity := models.SeverityMedium
			if dep.status == models.HealthCritical {
				severity = models.SeverityCritical
			}
			alerts = append(alerts, models.Alert{
				ID:          fmt.Sprintf("dep-%s-%s", b.Service, dep.name),
				Source:      "backend",
				Entity:      b.Service,
				Type:        "dependency",
				Severity:    severity,
				Title:       fmt.Sprintf("%s Dependency Issue", dep.name),
				Description: fmt.Sprintf("%s %s dependency is %s", b.Service, dep.name, dep.status),
				Threshold:   "healthy",
				Current:     string(dep.status),
				Timestamp:   now,
			})
		}
	}
	return sortAlerts(alerts)
}

func (s *MetricsServiceImpl) BackendKPIs() BackendKPIs {
	fleet := s.AllBackendMetrics()

	var summary BackendKPISummary
	var uptimeSum, responseSum, errorSum float64
	for _, b := range fleet {
		uptimeSum += b.Performance.Uptime
		responseSum += b.Performance.ResponseTime
		summary.TotalThroughput += b.Performance.Throughput
		errorSum += b.Performance.ErrorRate
		summary.SLABreaches += b.SLA.Breaches
		switch b.Status {
		case models.StatusOperational:
			summary.OperationalServices++
		case models.StatusDegraded:
			summary.DegradedServices++
		case models.StatusOutage:
			summary.OutageServices++
		}
	}
	n := float64(len(fleet))
	summary.AvgUptime = round2(uptimeSum / n)
	summary.AvgResponseTime = int(math.Round(responseSum / n))
	summary.AvgErrorRate = round2(errorSum / n)

	byUptime := append([]BackendMetrics(nil), fleet...)
	sort.SliceStable(byUptime, func(i, j int) bool {
		return byUptime[i].Performance.Uptime > byUptime[j].Performance.Uptime
	})
	var top []ServiceUptimeEntry
	for _, b := range byUptime[:3] {
		top = append(top, ServiceUptimeEntry{Service: b.Service, Uptime: b.Performance.Uptime})
	}

	var attention []AttentionItem
	var resources []ServiceResourceEntry
	for _, b := range fleet {
		resources = append(resources, ServiceResourceEntry{
			Service: b.Service, CPU: b.Resources.CPUUsage, Memory: b.Resources.MemoryUsage, Instances: b.Scaling.Instances,
		})
		if b.Health == models.HealthHealthy {
			continue
		}
		issues := "Performance issues"
		switch {
		case b.Performance.ErrorRate > 5:
			issues = "High error rate"
		case b.Performance.ResponseTime > 1000:
			issues = "High latency"
		}
		attention = append(attention, AttentionItem{Name: b.Service, Health: b.Health, Issues: issues})
	}

	return BackendKPIs{
		Summary:             summary,
		TopPerformers:       top,
		NeedsAttention:      attention,
		ResourceUtilization: resources,
	}
}

func (s *MetricsServiceImpl) BackendDependencyHealth() DependencyHealth {
	fleet := s.AllBackendMetrics()

	summary := map[string]map[models.HealthStatus]int{
		"database": {},
		"cache":    {},
		"external": {},
	}
	services := make([]ServiceDependencyEntry, 0, len(fleet))
	for _, b := range fleet {
		summary["database"][b.Dependencies.Database]++
		summary["cache"][b.Dependencies.Cache]++
		summary["external"][b.Dependencies.External]++
		services = append(services, ServiceDependencyEntry{Service: b.Service, Dependencies: b.Dependencies})
	}
	return DependencyHealth{Summary: summary, Services: services}
}
