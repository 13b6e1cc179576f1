package kpi

import (
	"encoding/json"
	"strings"
	"time"

	"livpulse/internal/common/apperror"
	"livpulse/internal/common/models"

	"go.uber.org/zap"
)

// WidgetPatch carries a partial widget update. Nil fields are left alone.
type WidgetPatch struct {
	Type        *WidgetType     `json:"type"`
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	DataSource  *string         `json:"dataSource"`
	Config      json.RawMessage `json:"config"`
	Position    *WidgetPosition `json:"position"`
	IsVisible   *bool           `json:"isVisible"`
	Permissions []models.Role   `json:"permissions"`
}

// DashboardPatch carries a partial dashboard update.
type DashboardPatch struct {
	Name        *string               `json:"name"`
	Description *string               `json:"description"`
	Category    *string               `json:"category"`
	IsPublic    *bool                 `json:"isPublic"`
	Widgets     []string              `json:"widgets"`
	Layout      *DashboardLayout      `json:"layout"`
	Permissions *DashboardPermissions `json:"permissions"`
}

// DataSourcePatch carries a partial data source update.
type DataSourcePatch struct {
	Name     *string           `json:"name"`
	Type     *DataSourceType   `json:"type"`
	Config   *DataSourceConfig `json:"config"`
	Fields   []DataField       `json:"fields"`
	IsActive *bool             `json:"isActive"`
}

// Analytics summarizes the configuration inventory.
type Analytics struct {
	TotalWidgets      int                `json:"totalWidgets"`
	TotalDashboards   int                `json:"totalDashboards"`
	TotalDataSources  int                `json:"totalDataSources"`
	WidgetsByType     map[WidgetType]int `json:"widgetsByType"`
	ActiveDataSources int                `json:"activeDataSources"`
	GeneratedAt       time.Time          `json:"generatedAt"`
}

// KpiService manages the widget, dashboard and data source configuration.
type KpiService interface {
	ListWidgets(filter WidgetFilter) []Widget
	GetWidget(id string) (Widget, error)
	CreateWidget(w Widget) (Widget, error)
	UpdateWidget(id string, patch WidgetPatch) (Widget, error)
	DeleteWidget(id string) error

	ListDashboards(category string) []Dashboard
	GetDashboard(id string) (Dashboard, error)
	CreateDashboard(d Dashboard, createdBy string) (Dashboard, error)
	UpdateDashboard(id string, patch DashboardPatch) (Dashboard, error)
	DeleteDashboard(id string) error

	ListDataSources(filter DataSourceFilter) []DataSource
	GetDataSource(id string) (DataSource, error)
	CreateDataSource(ds DataSource) (DataSource, error)
	UpdateDataSource(id string, patch DataSourcePatch) (DataSource, error)
	DeleteDataSource(id string) error

	Analytics() Analytics
	Store() *Store
}

type KpiServiceImpl struct {
	store *Store
	log   *zap.Logger
}

func NewKpiService(store *Store, log *zap.Logger) KpiService {
	return &KpiServiceImpl{store: store, log: log}
}

// Store exposes the underlying store to sibling features (dashboard
// templates read widgets and data sources directly).
func (s *KpiServiceImpl) Store() *Store {
	return s.store
}

func missingFieldsError(missing []string) error {
	return apperror.BadRequest("Missing required fields: %s", strings.Join(missing, ", "))
}

func (s *KpiServiceImpl) ListWidgets(filter WidgetFilter) []Widget {
	return s.store.ListWidgets(filter)
}

func (s *KpiServiceImpl) GetWidget(id string) (Widget, error) {
	w, ok := s.store.GetWidget(id)
	if !ok {
		return Widget{}, apperror.NotFound("Widget not found")
	}
	return w, nil
}

func (s *KpiServiceImpl) CreateWidget(w Widget) (Widget, error) {
	var missing []string
	if w.Type == "" {
		missing = append(missing, "type")
	}
	if w.Title == "" {
		missing = append(missing, "title")
	}
	if w.DataSource == "" {
		missing = append(missing, "dataSource")
	}
	if len(missing) > 0 {
		return Widget{}, missingFieldsError(missing)
	}
	if !ValidWidgetType(w.Type) {
		return Widget{}, apperror.BadRequest("Invalid widget type: %s", w.Type)
	}
	if w.Config == (WidgetConfig{}) {
		cfg, err := DecodeConfig(w.Type, nil)
		if err != nil {
			return Widget{}, apperror.BadRequest("%s", err.Error())
		}
		w.Config = cfg
	}
	if w.Permissions == nil {
		w.Permissions = []models.Role{models.RoleAdmin}
	}
	if w.Position == (WidgetPosition{}) {
		w.Position = WidgetPosition{X: 0, Y: 0, W: 6, H: 4}
	}
	// New widgets always start visible; hiding is an update-time action.
	w.IsVisible = true

	w.ID = ""
	w.UpdatedAt = nil
	s.store.InsertWidget(&w)
	s.log.Info("widget created", zap.String("id", w.ID), zap.String("type", string(w.Type)))
	return w, nil
}

func (s *KpiServiceImpl) UpdateWidget(id string, patch WidgetPatch) (Widget, error) {
	if patch.Type != nil && !ValidWidgetType(*patch.Type) {
		return Widget{}, apperror.BadRequest("Invalid widget type: %s", *patch.Type)
	}

	current, ok := s.store.GetWidget(id)
	if !ok {
		return Widget{}, apperror.NotFound("Widget not found")
	}

	// Re-decode the config when either the type or the config changes, so
	// the stored variant always matches the widget type.
	effectiveType := current.Type
	if patch.Type != nil {
		effectiveType = *patch.Type
	}
	var newConfig *WidgetConfig
	if patch.Config != nil || (patch.Type != nil && *patch.Type != current.Type) {
		raw := patch.Config
		if raw == nil {
			raw = json.RawMessage("{}")
		}
		cfg, err := DecodeConfig(effectiveType, raw)
		if err != nil {
			return Widget{}, apperror.BadRequest("%s", err.Error())
		}
		newConfig = &cfg
	}

	updated, ok := s.store.MutateWidget(id, func(w *Widget) {
		if patch.Type != nil {
			w.Type = *patch.Type
		}
		if patch.Title != nil {
			w.Title = *patch.Title
		}
		if patch.Description != nil {
			w.Description = *patch.Description
		}
		if patch.DataSource != nil {
			w.DataSource = *patch.DataSource
		}
		if newConfig != nil {
			w.Config = *newConfig
		}
		if patch.Position != nil {
			w.Position = *patch.Position
		}
		if patch.IsVisible != nil {
			w.IsVisible = *patch.IsVisible
		}
		if patch.Permissions != nil {
			w.Permissions = patch.Permissions
		}
	})
	if !ok {
		return Widget{}, apperror.NotFound("Widget not found")
	}
	return updated, nil
}

func (s *KpiServiceImpl) DeleteWidget(id string) error {
	if !s.store.DeleteWidget(id) {
		return apperror.NotFound("Widget not found")
	}
	s.log.Info("widget deleted", zap.String("id", id))
	return nil
}

func (s *KpiServiceImpl) ListDashboards(category string) []Dashboard {
	return s.store.ListDashboards(category)
}

func (s *KpiServiceImpl) GetDashboard(id string) (Dashboard, error) {
	d, ok := s.store.GetDashboard(id)
	if !ok {
		return Dashboard{}, apperror.NotFound("Dashboard not found")
	}
	return d, nil
}

func (s *KpiServiceImpl) CreateDashboard(d Dashboard, createdBy string) (Dashboard, error) {
	var missing []string
	if d.Name == "" {
		missing = append(missing, "name")
	}
	if d.Category == "" {
		missing = append(missing, "category")
	}
	if len(missing) > 0 {
		return Dashboard{}, missingFieldsError(missing)
	}

	if d.Widgets == nil {
		d.Widgets = []string{}
	}
	if d.Layout.Columns == 0 {
		d.Layout = DefaultLayout()
	}
	if len(d.Permissions.View) == 0 {
		d.Permissions.View = []models.Role{models.RoleAdmin}
	}
	if len(d.Permissions.Edit) == 0 {
		d.Permissions.Edit = []models.Role{models.RoleAdmin}
	}

	d.ID = ""
	d.IsDefaultForRole = ""
	d.CreatedBy = createdBy
	d.UpdatedAt = nil
	s.store.InsertDashboard(&d)
	s.log.Info("dashboard created", zap.String("id", d.ID), zap.String("name", d.Name))
	return d, nil
}

func (s *KpiServiceImpl) UpdateDashboard(id string, patch DashboardPatch) (Dashboard, error) {
	updated, ok := s.store.MutateDashboard(id, func(d *Dashboard) {
		if patch.Name != nil {
			d.Name = *patch.Name
		}
		if patch.Description != nil {
			d.Description = *patch.Description
		}
		if patch.Category != nil {
			d.Category = *patch.Category
		}
		if patch.IsPublic != nil {
			d.IsPublic = *patch.IsPublic
		}
		if patch.Widgets != nil {
			d.Widgets = patch.Widgets
		}
		if patch.Layout != nil {
			d.Layout = *patch.Layout
		}
		if patch.Permissions != nil {
			d.Permissions = *patch.Permissions
		}
	})
	if !ok {
		return Dashboard{}, apperror.NotFound("Dashboard not found")
	}
	return updated, nil
}

func (s *KpiServiceImpl) DeleteDashboard(id string) error {
	d, ok := s.store.GetDashboard(id)
	if !ok {
		return apperror.NotFound("Dashboard not found")
	}
	if d.IsDefaultForRole != "" {
		return apperror.Conflict("Cannot delete the default dashboard for role %s", d.IsDefaultForRole)
	}
	if !s.store.DeleteDashboard(id) {
		return apperror.NotFound("Dashboard not found")
	}
	s.log.Info("dashboard deleted", zap.String("id", id))
	return nil
}

func (s *KpiServiceImpl) ListDataSources(filter DataSourceFilter) []DataSource {
	return s.store.ListDataSources(filter)
}

func (s *KpiServiceImpl) GetDataSource(id string) (DataSource, error) {
	ds, ok := s.store.GetDataSource(id)
	if !ok {
		return DataSource{}, apperror.NotFound("Data source not found")
	}
	return ds, nil
}

func (s *KpiServiceImpl) CreateDataSource(ds DataSource) (DataSource, error) {
	var missing []string
	if ds.Name == "" {
		missing = append(missing, "name")
	}
	if ds.Type == "" {
		missing = append(missing, "type")
	}
	if len(missing) > 0 {
		return DataSource{}, missingFieldsError(missing)
	}
	switch ds.Type {
	case DataSourceAPI, DataSourceDatabase, DataSourceFile, DataSourceMock:
	default:
		return DataSource{}, apperror.BadRequest("Invalid data source type: %s", ds.Type)
	}

	if ds.Fields == nil {
		ds.Fields = []DataField{}
	}
	// New data sources always start active; deactivation is an update.
	ds.IsActive = true

	ds.ID = ""
	ds.UpdatedAt = nil
	s.store.InsertDataSource(&ds)
	s.log.Info("data source created", zap.String("id", ds.ID), zap.String("type", string(ds.Type)))
	return ds, nil
}

func (s *KpiServiceImpl) UpdateDataSource(id string, patch DataSourcePatch) (DataSource, error) {
	if patch.Type != nil {
		switch *patch.Type {
		case DataSourceAPI, DataSourceDatabase, DataSourceFile, DataSourceMock:
		default:
			return DataSource{}, apperror.BadRequest("Invalid data source type: %s", *patch.Type)
		}
	}

	updated, ok := s.store.MutateDataSource(id, func(ds *DataSource) {
		if patch.Name != nil {
			ds.Name = *patch.Name
		}
		if patch.Type != nil {
			ds.Type = *patch.Type
		}
		if patch.Config != nil {
			ds.Config = *patch.Config
		}
		if patch.Fields != nil {
			ds.Fields = patch.Fields
		}
		if patch.IsActive != nil {
			ds.IsActive = *patch.IsActive
		}
	})
	if !ok {
		return DataSource{}, apperror.NotFound("Data source not found")
	}
	return updated, nil
}

func (s *KpiServiceImpl) DeleteDataSource(id string) error {
	dependents, found, deleted := s.store.DeleteDataSource(id)
	if !found {
		return apperror.NotFound("Data source not found")
	}
	if !deleted {
		return apperror.Conflict("Data source is being used by %d widget(s)", dependents)
	}
	s.log.Info("data source deleted", zap.String("id", id))
	return nil
}

func (s *KpiServiceImpl) Analytics() Analytics {
	stats := s.store.Stats()
	byType := make(map[WidgetType]int)
	active := 0
	for _, w := range s.store.ListWidgets(WidgetFilter{}) {
		byType[w.Type]++
	}
	for _, ds := range s.store.ListDataSources(DataSourceFilter{}) {
		if ds.IsActive {
			active++
		}
	}

	return Analytics{
		TotalWidgets:      stats.Widgets,
		TotalDashboards:   stats.Dashboards,
		TotalDataSources:  stats.DataSources,
		WidgetsByType:     byType,
		ActiveDataSources: active,
		GeneratedAt:       time.Now(),
	}
}
