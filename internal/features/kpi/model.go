package kpi

import (
	"encoding/json"
	"fmt"
	"time"

	"livpulse/internal/common/models"
)

// WidgetType enumerates the renderable widget kinds.
type WidgetType string

const (
	WidgetMetric WidgetType = "metric"
	WidgetChart  WidgetType = "chart"
	WidgetTable  WidgetType = "table"
	WidgetGauge  WidgetType = "gauge"
	WidgetTrend  WidgetType = "trend"
)

// ValidWidgetType reports whether t is a known widget type.
func ValidWidgetType(t WidgetType) bool {
	switch t {
	case WidgetMetric, WidgetChart, WidgetTable, WidgetGauge, WidgetTrend:
		return true
	}
	return false
}

type WidgetPosition struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type Threshold struct {
	Warning  float64 `json:"warning"`
	Critical float64 `json:"critical"`
}

// MetricConfig configures a single-value widget.
type MetricConfig struct {
	Format    string     `json:"format,omitempty"` // number, percentage, currency, duration
	Unit      string     `json:"unit,omitempty"`
	Threshold *Threshold `json:"threshold,omitempty"`
}

// ChartConfig configures a time-series or categorical chart widget.
type ChartConfig struct {
	ChartType       string   `json:"chartType,omitempty"` // line, bar, pie, area, scatter
	DataKeys        []string `json:"dataKeys,omitempty"`
	Colors          []string `json:"colors,omitempty"`
	ShowLegend      bool     `json:"showLegend,omitempty"`
	ShowAxes        bool     `json:"showAxes,omitempty"`
	RefreshInterval int      `json:"refreshInterval,omitempty"` // seconds
}

type TableColumn struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// TableConfig configures a tabular widget.
type TableConfig struct {
	Columns []TableColumn `json:"columns"`
}

// GaugeConfig configures a bounded dial widget.
type GaugeConfig struct {
	MaxValue float64 `json:"maxValue,omitempty"`
	Unit     string  `json:"unit,omitempty"`
}

// TrendConfig configures a sparkline-style trend widget.
type TrendConfig struct {
	Days int `json:"days,omitempty"`
}

// WidgetConfig is a sum type: exactly one variant is set, chosen by the
// owning widget's type. It marshals flat, as the variant's own object.
type WidgetConfig struct {
	Metric *MetricConfig `json:"-"`
	Chart  *ChartConfig  `json:"-"`
	Table  *TableConfig  `json:"-"`
	Gauge  *GaugeConfig  `json:"-"`
	Trend  *TrendConfig  `json:"-"`
}

func (c WidgetConfig) MarshalJSON() ([]byte, error) {
	switch {
	case c.Metric != nil:
		return json.Marshal(c.Metric)
	case c.Chart != nil:
		return json.Marshal(c.Chart)
	case c.Table != nil:
		return json.Marshal(c.Table)
	case c.Gauge != nil:
		return json.Marshal(c.Gauge)
	case c.Trend != nil:
		return json.Marshal(c.Trend)
	}
	return []byte("{}"), nil
}

// DecodeConfig decodes raw into the variant selected by widgetType.
func DecodeConfig(widgetType WidgetType, raw json.RawMessage) (WidgetConfig, error) {
	var cfg WidgetConfig
	if len(raw) == 0 {
		raw = json.RawMessage("{}")
	}

	var err error
	switch widgetType {
	case WidgetMetric:
		cfg.Metric = &MetricConfig{}
		err = json.Unmarshal(raw, cfg.Metric)
	case WidgetChart:
		cfg.Chart = &ChartConfig{}
		err = json.Unmarshal(raw, cfg.Chart)
	case WidgetTable:
		cfg.Table = &TableConfig{}
		err = json.Unmarshal(raw, cfg.Table)
	case WidgetGauge:
		cfg.Gauge = &GaugeConfig{}
		err = json.Unmarshal(raw, cfg.Gauge)
	case WidgetTrend:
		cfg.Trend = &TrendConfig{}
		err = json.Unmarshal(raw, cfg.Trend)
	default:
		return cfg, fmt.Errorf("unknown widget type %q", widgetType)
	}
	if err != nil {
		return WidgetConfig{}, fmt.Errorf("invalid %s config: %w", widgetType, err)
	}
	return cfg, nil
}

// Widget is an independently managed visualization bound to a data source.
type Widget struct {
	ID          string         `json:"id"`
	Type        WidgetType     `json:"type"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	DataSource  string         `json:"dataSource"`
	Config      WidgetConfig   `json:"config"`
	Position    WidgetPosition `json:"position"`
	IsVisible   bool           `json:"isVisible"`
	Permissions []models.Role  `json:"permissions"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   *time.Time     `json:"updatedAt,omitempty"`
}

func (w *Widget) UnmarshalJSON(data []byte) error {
	type alias Widget
	aux := struct {
		*alias
		Config json.RawMessage `json:"config"`
	}{alias: (*alias)(w)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if !ValidWidgetType(w.Type) {
		// Leave config empty; the service rejects the widget before storage.
		return nil
	}

	cfg, err := DecodeConfig(w.Type, aux.Config)
	if err != nil {
		return err
	}
	w.Config = cfg
	return nil
}

type DashboardLayout struct {
	Columns          int    `json:"columns"`
	RowHeight        int    `json:"rowHeight"`
	Margin           [2]int `json:"margin"`
	ContainerPadding [2]int `json:"containerPadding"`
}

// DefaultLayout is applied when a dashboard is created without one.
func DefaultLayout() DashboardLayout {
	return DashboardLayout{
		Columns:          12,
		RowHeight:        60,
		Margin:           [2]int{10, 10},
		ContainerPadding: [2]int{10, 10},
	}
}

type DashboardPermissions struct {
	View []models.Role `json:"view"`
	Edit []models.Role `json:"edit"`
}

// Dashboard is a named, permissioned collection of widget references.
// A per-role default template is a dashboard carrying IsDefaultForRole.
type Dashboard struct {
	ID               string               `json:"id"`
	Name             string               `json:"name"`
	Description      string               `json:"description,omitempty"`
	Category         string               `json:"category"`
	IsPublic         bool                 `json:"isPublic"`
	IsDefaultForRole models.Role          `json:"isDefaultForRole,omitempty"`
	Widgets          []string             `json:"widgets"`
	Layout           DashboardLayout      `json:"layout"`
	Permissions      DashboardPermissions `json:"permissions"`
	CreatedBy        string               `json:"createdBy"`
	CreatedAt        time.Time            `json:"createdAt"`
	UpdatedAt        *time.Time           `json:"updatedAt,omitempty"`
}

// DataSourceType enumerates how a data source is backed.
type DataSourceType string

const (
	DataSourceAPI      DataSourceType = "api"
	DataSourceDatabase DataSourceType = "database"
	DataSourceFile     DataSourceType = "file"
	DataSourceMock     DataSourceType = "mock"
)

type DataSourceConfig struct {
	URL             string                 `json:"url,omitempty"`
	Method          string                 `json:"method,omitempty"`
	Headers         map[string]string      `json:"headers,omitempty"`
	Query           string                 `json:"query,omitempty"`
	RefreshInterval int                    `json:"refreshInterval,omitempty"`
	CacheTimeout    int                    `json:"cacheTimeout,omitempty"`
	Connection      map[string]interface{} `json:"connection,omitempty"`
}

type DataField struct {
	Name        string `json:"name"`
	Type        string `json:"type"` // string, number, date, boolean
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	Format      string `json:"format,omitempty"`
}

// DataSource names a payload provider that widgets bind to.
type DataSource struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Type      DataSourceType   `json:"type"`
	Config    DataSourceConfig `json:"config"`
	Fields    []DataField      `json:"fields"`
	IsActive  bool             `json:"isActive"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt *time.Time       `json:"updatedAt,omitempty"`
}
