package metrics

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"livpulse/internal/common/models"
)

// CMSKPIs is the content-pipeline rollup.
type CMSKPIs struct {
	Summary        CMSKPISummary     `json:"summary"`
	Storage        StorageRollup     `json:"storage"`
	Workflow       WorkflowRollup    `json:"workflow"`
	Quality        QualityRollup     `json:"quality"`
	TopPerformers  []CMSQualityEntry `json:"topPerformers"`
	NeedsAttention []AttentionItem   `json:"needsAttention"`
}

type CMSKPISummary struct {
	TotalAssets      int     `json:"totalAssets"`
	PublishedAssets  int     `json:"publishedAssets"`
	PendingApproval  int     `json:"pendingApproval"`
	FailedProcessing int     `json:"failedProcessing"`
	PublishRate      float64 `json:"publishRate"`
	AvgUptime        float64 `json:"avgUptime"`
	AvgQualityScore  float64 `json:"avgQualityScore"`
	HealthyModules   int     `json:"healthyModules"`
	WarningModules   int     `json:"warningModules"`
	CriticalModules  int     `json:"criticalModules"`
}

type StorageRollup struct {
	TotalUsed      float64 `json:"totalUsed"`
	TotalLimit     float64 `json:"totalLimit"`
	Utilization    float64 `json:"utilization"`
	AvailableSpace float64 `json:"availableSpace"`
}

type WorkflowRollup struct {
	ActiveWorkflows   int     `json:"activeWorkflows"`
	CompletedToday    int     `json:"completedToday"`
	AvgAutomationRate float64 `json:"avgAutomationRate"`
	Productivity      float64 `json:"productivity"`
}

type QualityRollup struct {
	AvgMetadataCompleteness float64 `json:"avgMetadataCompleteness"`
	AvgComplianceRate       float64 `json:"avgComplianceRate"`
	AvgDuplicateDetection   float64 `json:"avgDuplicateDetection"`
}

type CMSQualityEntry struct {
	Module         string  `json:"module"`
	QualityScore   float64 `json:"qualityScore"`
	AutomationRate float64 `json:"automationRate"`
}

// ContentProcessingStats breaks the pipeline down per module.
type ContentProcessingStats struct {
	DailyProcessing   []ModuleProcessingEntry `json:"dailyProcessing"`
	AssetDistribution []ModuleAssetEntry      `json:"assetDistribution"`
	UserActivity      []ModuleActivityEntry   `json:"userActivity"`
}

type ModuleProcessingEntry struct {
	Module    string  `json:"module"`
	Completed int     `json:"completed"`
	Active    int     `json:"active"`
	AvgTime   float64 `json:"avgTime"`
}

type ModuleAssetEntry struct {
	Module    string `json:"module"`
	Total     int    `json:"total"`
	Published int    `json:"published"`
	Pending   int    `json:"pending"`
	Failed    int    `json:"failed"`
}

type ModuleActivityEntry struct {
	Module        string `json:"module"`
	ActiveEditors int    `json:"activeEditors"`
	Sessions      int    `json:"sessions"`
	Concurrent    int    `json:"concurrent"`
}

func (s *MetricsServiceImpl) AllCMSMetrics() []CMSMetrics {
	return cmsFleet(s.now())
}

func (s *MetricsServiceImpl) CMSMetric(module string) (CMSMetrics, bool) {
	for _, m := range s.AllCMSMetrics() {
		if strings.Contains(strings.ToLower(m.Module), strings.ToLower(module)) {
			return m, true
		}
	}
	return CMSMetrics{}, false
}

func (s *MetricsServiceImpl) CMSTrends(module string, days int) []CMSTrend {
	var base CMSMetrics
	if module == "" {
		base = s.AllCMSMetrics()[0]
	} else {
		m, ok := s.CMSMetric(module)
		if !ok {
			return []CMSTrend{}
		}
		base = m
	}

	dates := s.trendDates(days)
	trends := make([]CMSTrend, 0, len(dates))
	for _, date := range dates {
		trends = append(trends, CMSTrend{
			Date:             date,
			AssetsProcessed:  int(math.Round(float64(base.Workflow.CompletedToday) * s.variance(0.2))),
			PublishedContent: int(math.Round(float64(base.Content.PublishedAssets) * 0.01 * s.variance(0.2))),
			QualityScore:     int(math.Round(base.Quality.AssetQualityScore * s.variance(0.2))),
			ProcessingTime:   int(math.Round(base.Performance.ProcessingTime * s.variance(0.2))),
		})
	}
	return trends
}

func (s *MetricsServiceImpl) CMSAlerts() []models.Alert {
	now := s.now()
	var alerts []models.Alert

	for _, c := range s.AllCMSMetrics() {
		if c.Performance.Uptime < 99.0 {
			severity := models.SeverityHigh
			if c.Performance.Uptime < 98 {
				severity = models.SeverityCritical
			}
			alerts = append(alerts, models.Alert{
				ID:          fmt.Sprintf("uptime-%s", c.Module),
				Source:      "cms",
				Entity:      c.Module,
				Type:        "performance",
				Severity:    severity,
				Title:       "Low Uptime",
				Description: fmt.Sprintf("%s uptime is %v%%", c.Module, c.Performance.Uptime),
				Threshold:   "99.0%",
				Current:     fmt.Sprintf("%v%%", c.Performance.Uptime),
				Timestamp:   now,
			})
		}
		if c.Performance.ErrorRate > 5.0 {
			alerts = append(alerts, models.Alert{
				ID:          fmt.Sprintf("error-%s", c.Module),
				Source:      "cms",
				Entity:      c.Module,
				Type:        "performance",
				Severity:    models.SeverityCritical,
				Title:       "High Error Rate",
				Description: fmt.Sprintf("%s error rate is %v%%", c.Module, c.Performance.ErrorRate),
				Threshold:   "5.0%",
				Current:     fmt.Sprintf("%v%%", c.Performance.ErrorRate),
				Timestamp:   now,
			})
		}
		storageUsage := c.Content.StorageUsed / c.Content.StorageLimit * 100
		if storageUsage > 80 {
			severity := models.SeverityMedium
			if storageUsage > 90 {
				severity = models.SeverityCritical
			}
			alerts = append(alerts, models.Alert{
				ID:          fmt.Sprintf("storage-%s", c.Module),
				Source:      "cms",
				Entity:      c.Module,
				Type:        "storage",
				Severity:    severity,
				Title:       "High Storage Usage",
				Description: fmt.Sprintf("%s storage usage is %.1f%%", c.Module, storageUsage),
				Threshold:   "80%",
				Current:     fmt.Sprintf("%.1f%%", storageUsage),
				Timestamp:   now,
			})
		}
		if c.Workflow.Bottlenecks > 5 {
			alerts = append(alerts, models.Alert{
				ID:          fmt.Sprintf("bottleneck-%s", c.Module),
				Source:      "cms",
				Entity:      c.Module,
				Type:        "workflow",
				Severity:    models.SeverityMedium,
				Title:       "Workflow Bottlenecks",
				Description: fmt.Sprintf("%s has %d workflow bottlenecks", c.Module, c.Workflow.Bottlenecks),
				Threshold:   "5",
				Current:     fmt.Sprintf("%d", c.Workflow.Bottlenecks),
				Timestamp:   now,
			})
		}
		if c.Quality.MetadataCompleteness < 85 {
			alerts = append(alerts, models.Alert{
				ID:          fmt.Sprintf("metadata-%s", c.Module),
				Source:      "cms",
				Entity:      c.Module,
				Type:        "quality",
				Severity:    models.SeverityMedium,
				Title:       "Low Metadata Completeness",
				Description: fmt.Sprintf("%s metadata completeness is %v%%", c.Module, c.Quality.MetadataCompleteness),
				Threshold:   "85%",
				Current:     fmt.Sprintf("%v%%", c.Quality.MetadataCompleteness),
				Timestamp:   now,
			})
		}
		if c.Quality.ComplianceRate < 90 {
			alerts = append(alerts, models.Alert{
				ID:          fmt.Sprintf("compliance-%s", c.Module),
				Source:      "cms",
				Entity:      c.Module,
				Type:        "quality",
				Severity:    models.SeverityHigh,
				Title:       "Low Compliance Rate",
				Description: fmt.Sprintf("%s compliance rate is %v%%", c.Module, c.Quality.ComplianceRate),
				Threshold:   "90%",
				Current:     fmt.Sprintf("%v%%", c.Quality.ComplianceRate),
				Timestamp:   now,
			})
		}
		failureRate := float64(c.Content.FailedProcessing) / float64(c.Content.TotalAssets) * 100
		if failureRate > 3.0 {
			alerts = append(alerts, models.Alert{
				ID:          fmt.Sprintf("processing-%s", c.Module),
				Source:      "cms",
				Entity:      c.Module,
				Type:        "processing",
				Severity:    models.SeverityMedium,
				Title:       "High Processing Failure Rate",
				Description: fmt.Sprintf("%s has %.1f%% processing failures", c.Module, failureRate),
				Threshold:   "3.0%",
				Current:     fmt.Sprintf("%.1f%%", failureRate),
				Timestamp:   now,
			})
		}
	}
	return sortAlerts(alerts)
}

func (s *MetricsServiceImpl) CMSKPIs() CMSKPIs {
	fleet := s.AllCMSMetrics()

	var summary CMSKPISummary
	var storage StorageRollup
	var workflow WorkflowRollup
	var quality QualityRollup
	var uptimeSum, qualitySum, automationSum float64
	for _, c := range fleet {
		summary.TotalAssets += c.Content.TotalAssets
		summary.PublishedAssets += c.Content.PublishedAssets
		summary.PendingApproval += c.Content.PendingApproval
		summary.FailedProcessing += c.Content.FailedProcessing
		uptimeSum += c.Performance.Uptime
		qualitySum += c.Quality.AssetQualityScore
		switch c.Health {
		case models.HealthHealthy:
			summary.HealthyModules++
		case models.HealthWarning:
			summary.WarningModules++
		case models.HealthCritical:
			summary.CriticalModules++
		}

		storage.TotalUsed += c.Content.StorageUsed
		storage.TotalLimit += c.Content.StorageLimit

		workflow.ActiveWorkflows += c.Workflow.ActiveWorkflows
		workflow.CompletedToday += c.Workflow.CompletedToday
		automationSum += c.Workflow.AutomationRate

		quality.AvgMetadataCompleteness += c.Quality.MetadataCompleteness
		quality.AvgComplianceRate += c.Quality.ComplianceRate
		quality.AvgDuplicateDetection += c.Quality.DuplicateDetection
	}
	n := float64(len(fleet))
	summary.PublishRate = round2(float64(summary.PublishedAssets) / float64(summary.TotalAssets) * 100)
	summary.AvgUptime = round2(uptimeSum / n)
	summary.AvgQualityScore = round2(qualitySum / n)

	storage.TotalUsed = round2(storage.TotalUsed)
	storage.Utilization = round2(storage.TotalUsed / storage.TotalLimit * 100)
	storage.AvailableSpace = round2(storage.TotalLimit - storage.TotalUsed)

	workflow.AvgAutomationRate = round2(automationSum / n)
	workflow.Productivity = round2(float64(workflow.CompletedToday) / float64(workflow.ActiveWorkflows) * 100)

	quality.AvgMetadataCompleteness /= n
	quality.AvgComplianceRate /= n
	quality.AvgDuplicateDetection /= n

	byQuality := append([]CMSMetrics(nil), fleet...)
	sort.SliceStable(byQuality, func(i, j int) bool {
		return byQuality[i].Quality.AssetQualityScore > byQuality[j].Quality.AssetQualityScore
	})
	var top []CMSQualityEntry
	for _, c := range byQuality[:3] {
		top = append(top, CMSQualityEntry{
			Module:         c.Module,
			QualityScore:   c.Quality.AssetQualityScore,
			AutomationRate: c.Workflow.AutomationRate,
		})
	}

	var attention []AttentionItem
	for _, c := range fleet {
		if c.Health == models.HealthHealthy {
			continue
		}
		issues := "Performance issues"
		switch {
		case c.Performance.ErrorRate > 5:
			issues = "High error rate"
		case c.Workflow.Bottlenecks > 5:
			issues = "Workflow bottlenecks"
		case c.Quality.ComplianceRate < 90:
			issues = "Low compliance"
		}
		attention = append(attention, AttentionItem{Name: c.Module, Health: c.Health, Issues: issues})
	}

	return CMSKPIs{
		Summary:        summary,
		Storage:        storage,
		Workflow:       workflow,
		Quality:        quality,
		TopPerformers:  top,
		NeedsAttention: attention,
	}
}

func (s *MetricsServiceImpl) ContentProcessingStats() ContentProcessingStats {
	fleet := s.AllCMSMetrics()
	stats := ContentProcessingStats{}

	for _, c := range fleet {
		stats.DailyProcessing = append(stats.DailyProcessing, ModuleProcessingEntry{
			Module: c.Module, Completed: c.Workflow.CompletedToday, Active: c.Workflow.ActiveWorkflows, AvgTime: c.Workflow.AverageProcessingTime,
		})
		stats.AssetDistribution = append(stats.AssetDistribution, ModuleAssetEntry{
			Module: c.Module, Total: c.Content.TotalAssets, Published: c.Content.PublishedAssets,
			Pending: c.Content.PendingApproval, Failed: c.Content.FailedProcessing,
		})
		stats.UserActivity = append(stats.UserActivity, ModuleActivityEntry{
			Module: c.Module, ActiveEditors: c.Users.ActiveEditors, Sessions: c.Users.TotalSessions, Concurrent: c.Users.ConcurrentUsers,
		})
	}
	return stats
}
