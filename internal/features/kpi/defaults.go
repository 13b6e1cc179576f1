package kpi

import (
	"time"

	"livpulse/internal/common/models"
)

// seedTime stamps every built-in record so seeded data is distinguishable
// from user-created rows in tests and exports.
var seedTime = time.Date(2025, 1, 26, 10, 0, 0, 0, time.UTC)

func defaultWidgets() []Widget {
	return []Widget{
		{
			ID:          "widget-1",
			Type:        WidgetMetric,
			Title:       "Total Users",
			Description: "Active users in the system",
			DataSource:  "users-api",
			Config: WidgetConfig{Metric: &MetricConfig{
				Format:    "number",
				Threshold: &Threshold{Warning: 1000, Critical: 500},
			}},
			Position:    WidgetPosition{X: 0, Y: 0, W: 6, H: 3},
			IsVisible:   true,
			Permissions: []models.Role{models.RoleAdmin, models.RoleExecutive},
			CreatedAt:   seedTime,
		},
		{
			ID:          "widget-2",
			Type:        WidgetChart,
			Title:       "Performance Trends",
			Description: "API response times over time",
			DataSource:  "performance-api",
			Config: WidgetConfig{Chart: &ChartConfig{
				ChartType:       "line",
				DataKeys:        []string{"responseTime", "throughput"},
				Colors:          []string{"#1976d2", "#2e7d32"},
				ShowLegend:      true,
				ShowAxes:        true,
				RefreshInterval: 30,
			}},
			Position:    WidgetPosition{X: 6, Y: 0, W: 6, H: 6},
			IsVisible:   true,
			Permissions: []models.Role{models.RoleAdmin, models.RoleSRE},
			CreatedAt:   seedTime,
		},
	}
}

func defaultDashboards() []Dashboard {
	return []Dashboard{
		{
			ID:          "dashboard-1",
			Name:        "Executive Overview",
			Description: "High-level metrics for executives",
			Category:    "executive",
			Widgets:     []string{"widget-1"},
			Layout:      DefaultLayout(),
			Permissions: DashboardPermissions{
				View: []models.Role{models.RoleAdmin, models.RoleExecutive},
				Edit: []models.Role{models.RoleAdmin},
			},
			CreatedBy: "admin",
			CreatedAt: seedTime,
		},
		{
			ID:          "dashboard-2",
			Name:        "Technical Dashboard",
			Description: "Technical metrics and performance data",
			Category:    "technical",
			Widgets:     []string{"widget-2"},
			Layout:      DefaultLayout(),
			Permissions: DashboardPermissions{
				View: []models.Role{models.RoleAdmin, models.RoleSRE, models.RoleEM},
				Edit: []models.Role{models.RoleAdmin, models.RoleSRE},
			},
			CreatedBy: "admin",
			CreatedAt: seedTime,
		},
	}
}

func defaultDataSources() []DataSource {
	sources := []DataSource{
		{
			ID:   "users-api",
			Name: "Users API",
			Type: DataSourceAPI,
			Config: DataSourceConfig{
				URL:             "/api/admin/analytics/users",
				Method:          "GET",
				RefreshInterval: 300,
				CacheTimeout:    60,
			},
			Fields: []DataField{
				{Name: "totalUsers", Type: "number", Label: "Total Users"},
				{Name: "activeUsers", Type: "number", Label: "Active Users"},
				{Name: "recentlyActiveUsers", Type: "number", Label: "Recently Active"},
			},
			IsActive:  true,
			CreatedAt: seedTime,
		},
		{
			ID:   "performance-api",
			Name: "Performance API",
			Type: DataSourceAPI,
			Config: DataSourceConfig{
				URL:             "/api/admin/analytics/system",
				Method:          "GET",
				RefreshInterval: 30,
				CacheTimeout:    10,
			},
			Fields: []DataField{
				{Name: "responseTime", Type: "number", Label: "Response Time (ms)"},
				{Name: "throughput", Type: "number", Label: "Throughput (req/min)"},
				{Name: "uptime", Type: "string", Label: "Uptime"},
			},
			IsActive:  true,
			CreatedAt: seedTime,
		},
	}

	// Every identifier the role templates bind to exists in the registry as a
	// mock source, so data-source discovery can run off the store instead of
	// scraping the admin template.
	for _, name := range mockSourceNames {
		sources = append(sources, DataSource{
			ID:        name,
			Name:      name,
			Type:      DataSourceMock,
			IsActive:  true,
			CreatedAt: seedTime,
		})
	}

	return sources
}

var mockSourceNames = []string{
	"system-health", "user-metrics", "platform-metrics", "alerts", "service-status",
	"business-kpis", "user-growth", "revenue-data", "risks",
	"platform-kpis", "engagement-metrics", "feature-usage", "backlog-items",
	"tech-health", "deployments", "performance-data", "incidents",
	"code-quality", "velocity", "bug-data", "sprint-data",
	"infra-health", "uptime", "latency-data", "active-alerts", "capacity-data",
}

// templateSeed pairs a role-default dashboard with its widgets.
type templateSeed struct {
	dashboard Dashboard
	widgets   []Widget
}

func roleTemplateSeeds() []templateSeed {
	templateWidget := func(id, title string, t WidgetType, source string, pos WidgetPosition, cfg WidgetConfig, role models.Role) Widget {
		perms := []models.Role{models.RoleAdmin}
		if role != models.RoleAdmin {
			perms = append(perms, role)
		}
		return Widget{
			ID:          id,
			Type:        t,
			Title:       title,
			DataSource:  source,
			Config:      cfg,
			Position:    pos,
			IsVisible:   true,
			Permissions: perms,
			CreatedAt:   seedTime,
		}
	}

	templateDashboard := func(role models.Role, name, description string, widgets []Widget) templateSeed {
		ids := make([]string, len(widgets))
		for i, w := range widgets {
			ids[i] = w.ID
		}
		return templateSeed{
			dashboard: Dashboard{
				ID:               string(role) + "-template",
				Name:             name,
				Description:      description,
				Category:         "role-template",
				IsDefaultForRole: role,
				Widgets:          ids,
				Layout:           DefaultLayout(),
				Permissions: DashboardPermissions{
					View: []models.Role{models.RoleAdmin, role},
					Edit: []models.Role{models.RoleAdmin},
				},
				CreatedBy: "system",
				CreatedAt: seedTime,
			},
			widgets: widgets,
		}
	}

	gauge := func(max float64, unit string) WidgetConfig {
		return WidgetConfig{Gauge: &GaugeConfig{MaxValue: max, Unit: unit}}
	}
	metric := func(unit string) WidgetConfig {
		return WidgetConfig{Metric: &MetricConfig{Unit: unit}}
	}
	chart := func(chartType string) WidgetConfig {
		return WidgetConfig{Chart: &ChartConfig{ChartType: chartType}}
	}
	table := func(columns ...TableColumn) WidgetConfig {
		return WidgetConfig{Table: &TableConfig{Columns: columns}}
	}
	col := func(key, label string) TableColumn { return TableColumn{Key: key, Label: label} }

	return []templateSeed{
		templateDashboard(models.RoleAdmin, "Admin Dashboard",
			"Full system overview with all metrics and controls",
			[]Widget{
				templateWidget("system-health", "System Health Score", WidgetGauge, "system-health",
					WidgetPosition{X: 0, Y: 0, W: 3, H: 2}, gauge(100, "%"), models.RoleAdmin),
				templateWidget("active-users", "Active Users", WidgetMetric, "user-metrics",
					WidgetPosition{X: 3, Y: 0, W: 3, H: 1}, metric(""), models.RoleAdmin),
				templateWidget("platform-performance", "Platform Performance", WidgetChart, "platform-metrics",
					WidgetPosition{X: 6, Y: 0, W: 6, H: 2}, chart("line"), models.RoleAdmin),
				templateWidget("critical-alerts", "Critical Alerts", WidgetTable, "alerts",
					WidgetPosition{X: 0, Y: 2, W: 6, H: 2},
					table(col("title", "Alert"), col("severity", "Severity"), col("source", "Source")), models.RoleAdmin),
				templateWidget("service-status", "Service Status", WidgetTable, "service-status",
					WidgetPosition{X: 6, Y: 2, W: 6, H: 2},
					table(col("name", "Service"), col("status", "Status"), col("uptime", "Uptime")), models.RoleAdmin),
			}),
		templateDashboard(models.RoleExecutive, "Executive Dashboard",
			"High-level business metrics and KPIs",
			[]Widget{
				templateWidget("business-kpis", "Business KPIs", WidgetMetric, "business-kpis",
					WidgetPosition{X: 0, Y: 0, W: 4, H: 1}, metric("%"), models.RoleExecutive),
				templateWidget("user-growth", "User Growth", WidgetChart, "user-growth",
					WidgetPosition{X: 4, Y: 0, W: 8, H: 2}, chart("line"), models.RoleExecutive),
				templateWidget("revenue-trends", "Revenue Trends", WidgetChart, "revenue-data",
					WidgetPosition{X: 0, Y: 1, W: 6, H: 2}, chart("bar"), models.RoleExecutive),
				templateWidget("top-risks", "Top Risks", WidgetTable, "risks",
					WidgetPosition{X: 6, Y: 1, W: 6, H: 2},
					table(col("description", "Risk"), col("impact", "Impact"), col("probability", "Probability")), models.RoleExecutive),
			}),
		templateDashboard(models.RolePM, "Product Manager Dashboard",
			"Platform KPIs and product metrics",
			[]Widget{
				templateWidget("platform-kpis", "Platform KPIs", WidgetMetric, "platform-kpis",
					WidgetPosition{X: 0, Y: 0, W: 3, H: 1}, metric("%"), models.RolePM),
				templateWidget("user-engagement", "User Engagement", WidgetChart, "engagement-metrics",
					WidgetPosition{X: 3, Y: 0, W: 6, H: 2}, chart("line"), models.RolePM),
				templateWidget("feature-adoption", "Feature Adoption", WidgetChart, "feature-usage",
					WidgetPosition{X: 9, Y: 0, W: 3, H: 2}, chart("pie"), models.RolePM),
				templateWidget("product-backlog", "Product Backlog", WidgetTable, "backlog-items",
					WidgetPosition{X: 0, Y: 2, W: 12, H: 2},
					table(col("title", "Feature"), col("priority", "Priority"), col("status", "Status")), models.RolePM),
			}),
		templateDashboard(models.RoleTPM, "Technical Program Manager Dashboard",
			"Technical metrics and program status",
			[]Widget{
				templateWidget("tech-health", "Technical Health", WidgetGauge, "tech-health",
					WidgetPosition{X: 0, Y: 0, W: 3, H: 2}, gauge(100, "%"), models.RoleTPM),
				templateWidget("deployment-status", "Deployment Status", WidgetTable, "deployments",
					WidgetPosition{X: 3, Y: 0, W: 6, H: 2},
					table(col("service", "Service"), col("version", "Version"), col("status", "Status")), models.RoleTPM),
				templateWidget("performance-metrics", "Performance Metrics", WidgetChart, "performance-data",
					WidgetPosition{X: 9, Y: 0, W: 3, H: 2}, chart("line"), models.RoleTPM),
				templateWidget("incident-trends", "Incident Trends", WidgetChart, "incidents",
					WidgetPosition{X: 0, Y: 2, W: 8, H: 2}, chart("bar"), models.RoleTPM),
			}),
		templateDashboard(models.RoleEM, "Engineering Manager Dashboard",
			"Engineering metrics and team performance",
			[]Widget{
				templateWidget("code-quality", "Code Quality Score", WidgetGauge, "code-quality",
					WidgetPosition{X: 0, Y: 0, W: 3, H: 2}, gauge(100, "%"), models.RoleEM),
				templateWidget("team-velocity", "Team Velocity", WidgetMetric, "velocity",
					WidgetPosition{X: 3, Y: 0, W: 3, H: 1}, metric("points"), models.RoleEM),
				templateWidget("bug-trends", "Bug Trends", WidgetChart, "bug-data",
					WidgetPosition{X: 6, Y: 0, W: 6, H: 2}, chart("line"), models.RoleEM),
				templateWidget("sprint-progress", "Sprint Progress", WidgetTable, "sprint-data",
					WidgetPosition{X: 0, Y: 2, W: 12, H: 2},
					table(col("task", "Task"), col("assignee", "Assignee"), col("status", "Status"), col("storyPoints", "Points")), models.RoleEM),
			}),
		templateDashboard(models.RoleSRE, "SRE Dashboard",
			"Infrastructure and reliability metrics",
			[]Widget{
				templateWidget("infrastructure-health", "Infrastructure Health", WidgetGauge, "infra-health",
					WidgetPosition{X: 0, Y: 0, W: 3, H: 2}, gauge(100, "%"), models.RoleSRE),
				templateWidget("uptime-metrics", "Service Uptime", WidgetMetric, "uptime",
					WidgetPosition{X: 3, Y: 0, W: 3, H: 1}, metric("%"), models.RoleSRE),
				templateWidget("latency-trends", "Latency Trends", WidgetChart, "latency-data",
					WidgetPosition{X: 6, Y: 0, W: 6, H: 2}, chart("line"), models.RoleSRE),
				templateWidget("alerts-queue", "Active Alerts", WidgetTable, "active-alerts",
					WidgetPosition{X: 0, Y: 2, W: 8, H: 2},
					table(col("alert", "Alert"), col("severity", "Severity"), col("duration", "Duration")), models.RoleSRE),
				templateWidget("capacity-usage", "Capacity Usage", WidgetChart, "capacity-data",
					WidgetPosition{X: 8, Y: 2, W: 4, H: 2}, chart("pie"), models.RoleSRE),
			}),
	}
}

// WidgetLibrary returns the catalog of widget templates the dashboard
// editor offers.
func WidgetLibrary() []Widget {
	return []Widget{
		{
			ID:       "metric-template",
			Type:     WidgetMetric,
			Title:    "Metric Widget",
			Config:   WidgetConfig{Metric: &MetricConfig{}},
			Position: WidgetPosition{W: 3, H: 1},
		},
		{
			ID:       "chart-template",
			Type:     WidgetChart,
			Title:    "Chart Widget",
			Config:   WidgetConfig{Chart: &ChartConfig{ChartType: "line"}},
			Position: WidgetPosition{W: 6, H: 2},
		},
		{
			ID:       "table-template",
			Type:     WidgetTable,
			Title:    "Table Widget",
			Config:   WidgetConfig{Table: &TableConfig{Columns: []TableColumn{}}},
			Position: WidgetPosition{W: 6, H: 2},
		},
		{
			ID:       "gauge-template",
			Type:     WidgetGauge,
			Title:    "Gauge Widget",
			Config:   WidgetConfig{Gauge: &GaugeConfig{MaxValue: 100, Unit: "%"}},
			Position: WidgetPosition{W: 3, H: 2},
		},
		{
			ID:       "trend-template",
			Type:     WidgetTrend,
			Title:    "Trend Widget",
			Config:   WidgetConfig{Trend: &TrendConfig{Days: 7}},
			Position: WidgetPosition{W: 3, H: 1},
		},
	}
}
