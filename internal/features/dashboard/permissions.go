package dashboard

import "livpulse/internal/common/models"

// rolePermissions maps each role to the data source ids it may read.
// Admin is resolved dynamically to every registered source. A role or
// source missing from this table is denied.
var rolePermissions = map[models.Role][]string{
	models.RoleExecutive: {"business-kpis", "user-growth", "revenue-data", "risks"},
	models.RolePM:        {"platform-kpis", "engagement-metrics", "feature-usage", "backlog-items"},
	models.RoleTPM:       {"tech-health", "deployments", "performance-data", "incidents"},
	models.RoleEM:        {"code-quality", "velocity", "bug-data", "sprint-data"},
	models.RoleSRE:       {"infra-health", "uptime", "latency-data", "active-alerts", "capacity-data"},
}

// CanAccessSource reports whether role may read the given data source.
// Unknown roles and unlisted sources are denied; admin may read anything.
func CanAccessSource(role models.Role, source string) bool {
	if role == models.RoleAdmin {
		return true
	}
	for _, allowed := range rolePermissions[role] {
		if allowed == source {
			return true
		}
	}
	return false
}
