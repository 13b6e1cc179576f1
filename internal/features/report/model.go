package report

import (
	"livpulse/internal/common/models"
	"livpulse/internal/features/insights"
	"livpulse/internal/features/metrics"
)

// ExecutiveReport bundles every domain snapshot with generated insights
// and KPI rollups.
type ExecutiveReport struct {
	Title           string                          `json:"title"`
	GeneratedAt     string                          `json:"generatedAt"`
	Summary         insights.ProgramSummary         `json:"summary"`
	Platforms       []metrics.PlatformMetrics       `json:"platforms"`
	Backend         []metrics.BackendMetrics        `json:"backend"`
	Operations      []metrics.OpsMetrics            `json:"operations"`
	Store           []metrics.StoreMetrics          `json:"store"`
	CMS             []metrics.CMSMetrics            `json:"cms"`
	Risks           []insights.RiskPrediction       `json:"risks"`
	Recommendations []insights.ActionRecommendation `json:"recommendations"`
	KPIs            KPISet                          `json:"kpis"`
}

type KPISet struct {
	Platform metrics.PlatformKPIs `json:"platform"`
	Backend  metrics.BackendKPIs  `json:"backend"`
	Ops      metrics.OpsKPIs      `json:"ops"`
	Store    metrics.StoreKPIs    `json:"store"`
	CMS      metrics.CMSKPIs      `json:"cms"`
}

// TechnicalReport is the alert-centred counterpart.
type TechnicalReport struct {
	Title       string                    `json:"title"`
	GeneratedAt string                    `json:"generatedAt"`
	Summary     TechnicalSummary          `json:"summary"`
	Platforms   []metrics.PlatformMetrics `json:"platforms"`
	Backend     []metrics.BackendMetrics  `json:"backend"`
	Operations  []metrics.OpsMetrics      `json:"operations"`
	Store       []metrics.StoreMetrics    `json:"store"`
	CMS         []metrics.CMSMetrics      `json:"cms"`
	Alerts      AlertSet                  `json:"alerts"`
}

type TechnicalSummary struct {
	TotalPlatforms int `json:"totalPlatforms"`
	TotalServices  int `json:"totalServices"`
	TotalAlerts    int `json:"totalAlerts"`
}

type AlertSet struct {
	Platform []models.Alert `json:"platform"`
	Backend  []models.Alert `json:"backend"`
	Ops      []models.Alert `json:"ops"`
	Store    []models.Alert `json:"store"`
	CMS      []models.Alert `json:"cms"`
}

// WeeklyReport condenses the KPI rollups into a one-page digest.
type WeeklyReport struct {
	Title       string        `json:"title"`
	GeneratedAt string        `json:"generatedAt"`
	Period      string        `json:"period"`
	Summary     WeeklySummary `json:"summary"`
	Highlights  []string      `json:"highlights"`
	Concerns    []string      `json:"concerns"`
}

type WeeklySummary struct {
	Platforms  WeeklyPlatforms  `json:"platforms"`
	Backend    WeeklyBackend    `json:"backend"`
	Operations WeeklyOperations `json:"operations"`
	Store      WeeklyStore      `json:"store"`
	CMS        WeeklyCMS        `json:"cms"`
}

type WeeklyPlatforms struct {
	Total   int     `json:"total"`
	Growth  float64 `json:"growth"`
	Healthy int     `json:"healthy"`
}

type WeeklyBackend struct {
	Uptime      float64 `json:"uptime"`
	Throughput  float64 `json:"throughput"`
	Operational int     `json:"operational"`
}

type WeeklyOperations struct {
	Availability float64 `json:"availability"`
	Incidents    int     `json:"incidents"`
	MTTR         int     `json:"mttr"`
}

type WeeklyStore struct {
	Revenue    float64 `json:"revenue"`
	Conversion float64 `json:"conversion"`
	Users      int     `json:"users"`
}

type WeeklyCMS struct {
	Assets    int     `json:"assets"`
	Published int     `json:"published"`
	Quality   float64 `json:"quality"`
}

// CustomReportRequest selects which sections a custom report includes.
type CustomReportRequest struct {
	Title    string                 `json:"title"`
	Sections []string               `json:"sections"`
	Format   string                 `json:"format"`
	Filters  map[string]interface{} `json:"filters"`
}

// CustomReport holds only the requested sections; absent ones are omitted.
type CustomReport struct {
	Title       string                    `json:"title"`
	GeneratedAt string                    `json:"generatedAt"`
	Filters     map[string]interface{}    `json:"filters"`
	Platforms   []metrics.PlatformMetrics `json:"platforms,omitempty"`
	Backend     []metrics.BackendMetrics  `json:"backend,omitempty"`
	Operations  []metrics.OpsMetrics      `json:"operations,omitempty"`
	Store       []metrics.StoreMetrics    `json:"store,omitempty"`
	CMS         []metrics.CMSMetrics      `json:"cms,omitempty"`
	Summary     CustomSummary             `json:"summary"`
}

type CustomSummary struct {
	Platforms  *metrics.PlatformKPIs `json:"platforms,omitempty"`
	Backend    *metrics.BackendKPIs  `json:"backend,omitempty"`
	Operations *metrics.OpsKPIs      `json:"operations,omitempty"`
	Store      *metrics.StoreKPIs    `json:"store,omitempty"`
	CMS        *metrics.CMSKPIs      `json:"cms,omitempty"`
}
