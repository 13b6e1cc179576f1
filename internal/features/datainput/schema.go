package datainput

import "livpulse/internal/common/models"

// categoryOrder fixes the listing order of categories.
var categoryOrder = []string{
	"platform-kpis",
	"business-kpis",
	"bug-data",
	"sprint-data",
	"performance-data",
	"content-performance",
	"risk-data",
	"infrastructure-data",
}

func field(name string, fieldType models.FieldType, required bool, label string, options ...string) TemplateField {
	return TemplateField{
		Name: name,
		SchemaField: models.SchemaField{
			Type:     fieldType,
			Required: required,
			Label:    label,
			Options:  options,
		},
	}
}

var categories = map[string]Template{
	"platform-kpis": {
		Name:        "Platform KPIs",
		Description: "Key performance indicators for platform metrics",
		Fields: []TemplateField{
			field("date", models.FieldTypeDate, true, "Date"),
			field("platform", models.FieldTypeSelect, true, "Platform", "Android", "iOS", "Web", "TV"),
			field("dau", models.FieldTypeNumber, true, "Daily Active Users"),
			field("retention", models.FieldTypeNumber, true, "Retention Rate (%)"),
			field("crashRate", models.FieldTypeNumber, false, "Crash Rate (%)"),
			field("loadTime", models.FieldTypeNumber, false, "Average Load Time (ms)"),
		},
		Permissions: []models.Role{models.RoleAdmin, models.RolePM, models.RoleTPM},
	},
	"business-kpis": {
		Name:        "Business KPIs",
		Description: "Business performance metrics",
		Fields: []TemplateField{
			field("date", models.FieldTypeDate, true, "Date"),
			field("revenue", models.FieldTypeNumber, true, "Revenue ($)"),
			field("transactions", models.FieldTypeNumber, true, "Transactions"),
			field("churnRate", models.FieldTypeNumber, false, "Churn Rate (%)"),
			field("ltv", models.FieldTypeNumber, false, "Customer LTV ($)"),
		},
		Permissions: []models.Role{models.RoleAdmin, models.RoleExecutive},
	},
	"bug-data": {
		Name:        "Bug Reports",
		Description: "Bug tracking and resolution data",
		Fields: []TemplateField{
			field("id", models.FieldTypeString, true, "Bug ID"),
			field("title", models.FieldTypeString, true, "Title"),
			field("severity", models.FieldTypeSelect, true, "Severity", "Critical", "High", "Medium", "Low"),
			field("status", models.FieldTypeSelect, true, "Status", "Open", "In Progress", "Resolved", "Closed"),
			field("reportedDate", models.FieldTypeDate, true, "Reported Date"),
			field("resolvedDate", models.FieldTypeDate, false, "Resolved Date"),
			field("assignee", models.FieldTypeString, false, "Assignee"),
		},
		Permissions: []models.Role{models.RoleAdmin, models.RoleEM, models.RoleTPM},
	},
	"sprint-data": {
		Name:        "Sprint Data",
		Description: "Sprint planning and execution metrics",
		Fields: []TemplateField{
			field("sprintName", models.FieldTypeString, true, "Sprint Name"),
			field("startDate", models.FieldTypeDate, true, "Start Date"),
			field("endDate", models.FieldTypeDate, true, "End Date"),
			field("committedPoints", models.FieldTypeNumber, true, "Committed Story Points"),
			field("completedPoints", models.FieldTypeNumber, true, "Completed Story Points"),
			field("teamSize", models.FieldTypeNumber, true, "Team Size"),
		},
		Permissions: []models.Role{models.RoleAdmin, models.RoleEM, models.RoleTPM},
	},
	"performance-data": {
		Name:        "Performance Metrics",
		Description: "System performance and reliability data",
		Fields: []TemplateField{
			field("timestamp", models.FieldTypeDatetime, true, "Timestamp"),
			field("service", models.FieldTypeString, true, "Service Name"),
			field("responseTime", models.FieldTypeNumber, true, "Response Time (ms)"),
			field("throughput", models.FieldTypeNumber, true, "Throughput (req/sec)"),
			field("errorRate", models.FieldTypeNumber, false, "Error Rate (%)"),
			field("cpuUsage", models.FieldTypeNumber, false, "CPU Usage (%)"),
			field("memoryUsage", models.FieldTypeNumber, false, "Memory Usage (%)"),
		},
		Permissions: []models.Role{models.RoleAdmin, models.RoleSRE, models.RoleTPM},
	},
	"content-performance": {
		Name:        "Content Performance",
		Description: "Content consumption and engagement metrics",
		Fields: []TemplateField{
			field("date", models.FieldTypeDate, true, "Date"),
			field("contentId", models.FieldTypeString, true, "Content ID"),
			field("contentType", models.FieldTypeSelect, true, "Content Type", "Movie", "Series", "Live", "Short"),
			field("views", models.FieldTypeNumber, true, "Views"),
			field("watchTime", models.FieldTypeNumber, true, "Watch Time (minutes)"),
			field("completionRate", models.FieldTypeNumber, false, "Completion Rate (%)"),
			field("avgRating", models.FieldTypeNumber, false, "Average Rating"),
		},
		Permissions: []models.Role{models.RoleAdmin, models.RolePM},
	},
	"risk-data": {
		Name:        "Risk Assessment",
		Description: "Project and operational risks",
		Fields: []TemplateField{
			field("id", models.FieldTypeString, true, "Risk ID"),
			field("description", models.FieldTypeText, true, "Description"),
			field("category", models.FieldTypeSelect, true, "Category", "Technical", "Business", "Operational", "Security"),
			field("probability", models.FieldTypeSelect, true, "Probability", "Low", "Medium", "High", "Critical"),
			field("impact", models.FieldTypeSelect, true, "Impact", "Low", "Medium", "High", "Critical"),
			field("mitigation", models.FieldTypeText, false, "Mitigation Plan"),
			field("owner", models.FieldTypeString, true, "Risk Owner"),
		},
		Permissions: []models.Role{models.RoleAdmin, models.RoleExecutive, models.RoleTPM},
	},
	"infrastructure-data": {
		Name:        "Infrastructure Metrics",
		Description: "Infrastructure utilization and capacity data",
		Fields: []TemplateField{
			field("timestamp", models.FieldTypeDatetime, true, "Timestamp"),
			field("resource", models.FieldTypeString, true, "Resource Type"),
			field("utilization", models.FieldTypeNumber, true, "Utilization (%)"),
			field("capacity", models.FieldTypeNumber, true, "Total Capacity"),
			field("cost", models.FieldTypeNumber, false, "Cost ($)"),
			field("region", models.FieldTypeString, true, "Region"),
		},
		Permissions: []models.Role{models.RoleAdmin, models.RoleSRE},
	},
}
