package insights

import (
	"time"

	"livpulse/internal/common/models"
)

// ProgramHealth buckets the computed health score.
type ProgramHealth string

const (
	HealthExcellent ProgramHealth = "excellent"
	HealthGood      ProgramHealth = "good"
	HealthWarning   ProgramHealth = "warning"
	HealthCritical  ProgramHealth = "critical"
)

// Priority grades a recommendation.
type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ProgramSummary is the program-level health digest.
type ProgramSummary struct {
	OverallHealth ProgramHealth `json:"overallHealth"`
	HealthScore   int           `json:"healthScore"`
	KeyMetrics    KeyMetrics    `json:"keyMetrics"`
	TopConcerns   []string      `json:"topConcerns"`
	Achievements  []string      `json:"achievements"`
	NextSteps     []string      `json:"nextSteps"`
}

type KeyMetrics struct {
	PlatformsHealthy    int `json:"platformsHealthy"`
	ServicesOperational int `json:"servicesOperational"`
	CriticalIssues      int `json:"criticalIssues"`
	UpcomingRisks       int `json:"upcomingRisks"`
}

// RiskPrediction flags a likely future problem derived from current metrics.
type RiskPrediction struct {
	ID               string          `json:"id"`
	Category         string          `json:"category"`
	Severity         models.Severity `json:"severity"`
	Probability      float64         `json:"probability"`
	Impact           string          `json:"impact"`
	Description      string          `json:"description"`
	Recommendation   string          `json:"recommendation"`
	Timeline         string          `json:"timeline"`
	AffectedServices []string        `json:"affectedServices"`
}

// ActionRecommendation is a concrete follow-up derived from a risk.
type ActionRecommendation struct {
	ID              string    `json:"id"`
	Priority        Priority  `json:"priority"`
	Category        string    `json:"category"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	EstimatedEffort string    `json:"estimatedEffort"`
	ExpectedImpact  string    `json:"expectedImpact"`
	Owner           string    `json:"owner"`
	DueDate         time.Time `json:"dueDate"`
	Dependencies    []string  `json:"dependencies"`
}
