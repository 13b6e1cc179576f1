package overview

import (
	"time"

	"livpulse/internal/common/models"
	"livpulse/internal/features/insights"
	"livpulse/internal/features/metrics"
)

// Bundle is the full cross-domain overview payload.
type Bundle struct {
	Summary         insights.ProgramSummary         `json:"summary"`
	Metrics         insights.MetricsSnapshot        `json:"metrics"`
	Risks           []insights.RiskPrediction       `json:"risks"`
	Recommendations []insights.ActionRecommendation `json:"recommendations"`
	LastUpdated     time.Time                       `json:"lastUpdated"`
}

// KPIBundle merges the per-domain KPI rollups.
type KPIBundle struct {
	Platform    metrics.PlatformKPIs `json:"platform"`
	Backend     metrics.BackendKPIs  `json:"backend"`
	Operations  metrics.OpsKPIs      `json:"operations"`
	Store       metrics.StoreKPIs    `json:"store"`
	CMS         metrics.CMSKPIs      `json:"cms"`
	LastUpdated time.Time            `json:"lastUpdated"`
}

// AlertBundle is the merged, severity-ordered alert feed with its summary.
type AlertBundle struct {
	Summary     AlertSummary   `json:"summary"`
	Alerts      []models.Alert `json:"alerts"`
	LastUpdated time.Time      `json:"lastUpdated"`
}

type AlertSummary struct {
	Total    int            `json:"total"`
	Critical int            `json:"critical"`
	High     int            `json:"high"`
	Medium   int            `json:"medium"`
	Low      int            `json:"low"`
	BySource map[string]int `json:"bySource"`
}

// HealthBundle is the system-wide health rollup.
type HealthBundle struct {
	Overall     OverallHealth   `json:"overall"`
	Breakdown   HealthBreakdown `json:"breakdown"`
	LastUpdated time.Time       `json:"lastUpdated"`
}

type OverallHealth struct {
	Status         models.HealthStatus `json:"status"`
	Score          int                 `json:"score"`
	TotalSystems   int                 `json:"totalSystems"`
	HealthySystems int                 `json:"healthySystems"`
}

type HealthBreakdown struct {
	Platforms  HealthCounts  `json:"platforms"`
	Backend    ServiceCounts `json:"backend"`
	Operations HealthCounts  `json:"operations"`
	Store      HealthCounts  `json:"store"`
	CMS        HealthCounts  `json:"cms"`
}

type HealthCounts struct {
	Healthy  int `json:"healthy"`
	Warning  int `json:"warning"`
	Critical int `json:"critical"`
	Total    int `json:"total"`
}

type ServiceCounts struct {
	Operational int `json:"operational"`
	Degraded    int `json:"degraded"`
	Outage      int `json:"outage"`
	Total       int `json:"total"`
}

// TrendBundle carries the headline chart series.
type TrendBundle struct {
	Platforms   PlatformTrendPair `json:"platforms"`
	Services    ServiceTrendPair  `json:"services"`
	Period      string            `json:"period"`
	LastUpdated time.Time         `json:"lastUpdated"`
}

type PlatformTrendPair struct {
	Android []metrics.PlatformTrend `json:"android"`
	Web     []metrics.PlatformTrend `json:"web"`
}

type ServiceTrendPair struct {
	UMSPS    []metrics.BackendTrend `json:"umsps"`
	Playback []metrics.BackendTrend `json:"playback"`
}
