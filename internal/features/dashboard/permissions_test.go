package dashboard

import (
	"testing"

	"livpulse/internal/common/models"
)

func TestCanAccessSource(t *testing.T) {
	tests := []struct {
		name   string
		role   models.Role
		source string
		want   bool
	}{
		{"admin reads anything", models.RoleAdmin, "uptime", true},
		{"admin reads unregistered source", models.RoleAdmin, "made-up", true},
		{"sre reads own source", models.RoleSRE, "infra-health", true},
		{"executive reads own source", models.RoleExecutive, "revenue-data", true},
		{"pm denied executive source", models.RolePM, "revenue-data", false},
		{"sre denied pm source", models.RoleSRE, "backlog-items", false},
		{"unknown role denied", models.Role("intern"), "uptime", false},
		{"empty role denied", models.Role(""), "business-kpis", false},
		{"unlisted source denied", models.RoleEM, "made-up", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAccessSource(tt.role, tt.source); got != tt.want {
				t.Errorf("CanAccessSource(%s, %s) = %v, want %v", tt.role, tt.source, got, tt.want)
			}
		})
	}
}
