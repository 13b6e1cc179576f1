package dashboard

import (
	"time"

	"livpulse/internal/common/models"
	"livpulse/internal/features/kpi"
)

// TemplateView is a role's default dashboard with its widget references
// expanded into full widget definitions.
type TemplateView struct {
	ID          string              `json:"id"`
	Role        models.Role         `json:"role"`
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	Widgets     []kpi.Widget        `json:"widgets"`
	Layout      kpi.DashboardLayout `json:"layout"`
	UpdatedAt   *time.Time          `json:"updatedAt,omitempty"`
}

// TemplateUpdate is the admin customization payload for a role template.
// Widgets, when present, replace the template's widget set.
type TemplateUpdate struct {
	Name        *string      `json:"name"`
	Description *string      `json:"description"`
	Widgets     []kpi.Widget `json:"widgets"`
}

// Trend annotates a mock metric value with its movement.
type Trend struct {
	Direction string  `json:"direction"` // up, down
	Value     float64 `json:"value"`
	Label     string  `json:"label"`
}

// DataRequest asks for the payloads of a set of data sources.
type DataRequest struct {
	DataSources []string `json:"dataSources"`
}
