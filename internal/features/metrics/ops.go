package metrics

import (
	"fmt"
	"math"

	"livpulse/internal/common/models"
)

// OpsKPIs is the operations rollup spanning the monitored categories
// plus the CDN and delivery-pipeline snapshots.
type OpsKPIs struct {
	Summary     OpsKPISummary `json:"summary"`
	CDN         CDNRollup     `json:"cdn"`
	DevOps      DevOpsRollup  `json:"devops"`
	TopConcerns []OpsConcern  `json:"topConcerns"`
}

type OpsKPISummary struct {
	AvgAvailability    float64 `json:"avgAvailability"`
	TotalIncidents     int     `json:"totalIncidents"`
	AvgMTTR            int     `json:"avgMTTR"`
	TotalCosts         float64 `json:"totalCosts"`
	BudgetUtilization  int     `json:"budgetUtilization"`
	HealthyCategories  int     `json:"healthyCategories"`
	WarningCategories  int     `json:"warningCategories"`
	CriticalCategories int     `json:"criticalCategories"`
}

type CDNRollup struct {
	GlobalLatency  float64 `json:"globalLatency"`
	CacheHitRatio  float64 `json:"cacheHitRatio"`
	TotalRequests  int     `json:"totalRequests"`
	TotalBandwidth float64 `json:"totalBandwidth"`
}

type DevOpsRollup struct {
	DeploymentFrequency float64 `json:"deploymentFrequency"`
	SuccessRate         float64 `json:"successRate"`
	AutomationCoverage  float64 `json:"automationCoverage"`
	TotalInfrastructure int     `json:"totalInfrastructure"`
}

type OpsConcern struct {
	Category string              `json:"category"`
	Health   models.HealthStatus `json:"health"`
	Issue    string              `json:"issue"`
}

func (s *MetricsServiceImpl) AllOpsMetrics() []OpsMetrics {
	return opsFleet(s.now())
}

func (s *MetricsServiceImpl) CDNMetrics() CDNMetrics {
	return cdnSnapshot()
}

func (s *MetricsServiceImpl) DevOpsMetrics() DevOpsMetrics {
	return devopsSnapshot()
}

func (s *MetricsServiceImpl) OpsAlerts() []models.Alert {
	now := s.now()
	var alerts []models.Alert

	for _, o := range s.AllOpsMetrics() {
		if o.Performance.Availability < 99.5 {
			severity := models.SeverityHigh
			if o.Performance.Availability < 99 {
				severity = models.SeverityCritical
			}
			alerts = append(alerts, models.Alert{
				ID:          fmt.Sprintf("avail-%s", o.Category),
				Source:      "operations",
				Entity:      o.Category,
				Type:        "availability",
				Severity:    severity,
				Title:       "Low Availability",
				Description: fmt.Sprintf("%s availability is %v%%", o.Category, o.Performance.Availability),
				Threshold:   "99.5%",
				Current:     fmt.Sprintf("%v%%", o.Performance.Availability),
				Timestamp:   now,
			})
		}
		if o.Capacity.Utilization > 80 {
			severity := models.SeverityMedium
			if o.Capacity.Utilization > 90 {
				severity = models.SeverityCritical
			}
			alerts = append(alerts, models.Alert{
				ID:          fmt.Sprintf("capacity-%s", o.Category),
				Source:      "operations",
				Entity:      o.Category,
				Type:        "capacity",
				Severity:    severity,
				Title:       "High Capacity Utilization",
				Description: fmt.Sprintf("%s capacity utilization is %v%%", o.Category, o.Capacity.Utilization),
				Threshold:   "80%",
				Current:     fmt.Sprintf("%v%%", o.Capacity.Utilization),
				Timestamp:   now,
			})
		}
		if o.Costs.Current > o.Costs.Budget {
			alerts = append(alerts, models.Alert{
				ID:          fmt.Sprintf("cost-%s", o.Category),
				Source:      "operations",
				Entity:      o.Category,
				Type:        "cost",
				Severity:    models.SeverityMedium,
				Title:       "Budget Exceeded",
				Description: fmt.Sprintf("%s costs exceed budget by $%v", o.Category, o.Costs.Current-o.Costs.Budget),
				Threshold:   fmt.Sprintf("$%v", o.Costs.Budget),
				Current:     fmt.Sprintf("$%v", o.Costs.Current),
				Timestamp:   now,
			})
		}
		if open := o.Incidents.Total - o.Incidents.Resolved; open > 0 {
			alerts = append(alerts, models.Alert{
				ID:          fmt.Sprintf("incident-%s", o.Category),
				Source:      "operations",
				Entity:      o.Category,
				Type:        "incident",
				Severity:    models.SeverityHigh,
				Title:       "Open Incidents",
				Description: fmt.Sprintf("%s has %d open incidents", o.Category, open),
				Threshold:   "0",
				Current:     fmt.Sprintf("%d", open),
				Timestamp:   now,
			})
		}
	}
	return sortAlerts(alerts)
}

func (s *MetricsServiceImpl) OpsKPIs() OpsKPIs {
	fleet := s.AllOpsMetrics()
	cdn := s.CDNMetrics()
	devops := s.DevOpsMetrics()

	var summary OpsKPISummary
	var availabilitySum, mttrSum, budgetSum float64
	for _, o := range fleet {
		availabilitySum += o.Performance.Availability
		summary.TotalIncidents += o.Incidents.Total
		mttrSum += o.Incidents.MTTR
		summary.TotalCosts += o.Costs.Current
		budgetSum += o.Costs.Budget
		switch o.Health {
		case models.HealthHealthy:
			summary.HealthyCategories++
		case models.HealthWarning:
			summary.WarningCategories++
		case models.HealthCritical:
			summary.CriticalCategories++
		}
	}
	n := float64(len(fleet))
	summary.AvgAvailability = round2(availabilitySum / n)
	summary.AvgMTTR = int(math.Round(mttrSum / n))
	summary.BudgetUtilization = int(math.Round(summary.TotalCosts / budgetSum * 100))

	var concerns []OpsConcern
	for _, o := range fleet {
		if o.Health == models.HealthHealthy {
			continue
		}
		issue := "Performance issues"
		switch {
		case o.Capacity.Utilization > 80:
			issue = "High capacity utilization"
		case o.Performance.Availability < 99.5:
			issue = "Low availability"
		}
		concerns = append(concerns, OpsConcern{Category: o.Category, Health: o.Health, Issue: issue})
	}

	return OpsKPIs{
		Summary: summary,
		CDN: CDNRollup{
			GlobalLatency:  cdn.Performance.GlobalLatency,
			CacheHitRatio:  cdn.Performance.CacheHitRatio,
			TotalRequests:  cdn.Performance.Requests,
			TotalBandwidth: cdn.Performance.Bandwidth,
		},
		DevOps: DevOpsRollup{
			DeploymentFrequency: devops.Deployments.Frequency,
			SuccessRate:         devops.Pipeline.SuccessRate,
			AutomationCoverage:  devops.Automation.Coverage,
			TotalInfrastructure: devops.Infrastructure.Servers + devops.Infrastructure.Containers,
		},
		TopConcerns: concerns,
	}
}
