package models

import "time"

// Role is the single role carried by every authenticated user.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleExecutive Role = "executive"
	RolePM        Role = "pm"
	RoleTPM       Role = "tpm"
	RoleEM        Role = "em"
	RoleSRE       Role = "sre"
)

// AllRoles lists every role the system recognises, in display order.
var AllRoles = []Role{RoleAdmin, RoleExecutive, RolePM, RoleTPM, RoleEM, RoleSRE}

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	for _, known := range AllRoles {
		if r == known {
			return true
		}
	}
	return false
}

// HasRole reports whether r appears in roles.
func HasRole(roles []Role, r Role) bool {
	for _, candidate := range roles {
		if candidate == r {
			return true
		}
	}
	return false
}

// Severity grades alerts and risks.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Rank maps a severity onto its sort weight: critical(4) > high(3) > medium(2) > low(1).
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	}
	return 0
}

// HealthStatus classifies a monitored entity.
type HealthStatus string

const (
	HealthHealthy  HealthStatus = "healthy"
	HealthWarning  HealthStatus = "warning"
	HealthCritical HealthStatus = "critical"
)

// ServiceStatus classifies a backend service's availability.
type ServiceStatus string

const (
	StatusOperational ServiceStatus = "operational"
	StatusDegraded    ServiceStatus = "degraded"
	StatusOutage      ServiceStatus = "outage"
	StatusMaintenance ServiceStatus = "maintenance"
)

// Alert is a threshold breach detected by one of the metrics services.
type Alert struct {
	ID          string    `json:"id"`
	Source      string    `json:"source,omitempty"`
	Entity      string    `json:"entity"`
	Type        string    `json:"type"`
	Severity    Severity  `json:"severity"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Threshold   string    `json:"threshold"`
	Current     string    `json:"current"`
	Timestamp   time.Time `json:"timestamp"`
}

// FieldType enumerates the value types a data-input schema field may declare.
type FieldType string

const (
	FieldTypeString   FieldType = "string"
	FieldTypeText     FieldType = "text"
	FieldTypeNumber   FieldType = "number"
	FieldTypeDate     FieldType = "date"
	FieldTypeDatetime FieldType = "datetime"
	FieldTypeSelect   FieldType = "select"
)

// SchemaField describes one field of a data-input category schema.
type SchemaField struct {
	Type     FieldType `json:"type"`
	Required bool      `json:"required"`
	Label    string    `json:"label"`
	Options  []string  `json:"options,omitempty"`
}

// SubmissionStatus is the review state of a data-input submission.
type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionApproved SubmissionStatus = "approved"
	SubmissionRejected SubmissionStatus = "rejected"
)

// SubmissionSource records how a submission entered the system.
type SubmissionSource string

const (
	SourceForm SubmissionSource = "form"
	SourceCSV  SubmissionSource = "csv"
	SourceXLSX SubmissionSource = "xlsx"
)
