package kpi

import (
	"fmt"
	"sync"
	"time"

	"livpulse/internal/common/models"
)

// Store owns widgets, dashboards and data sources behind a single lock so
// cross-collection operations (delete guards, cascades) observe one
// consistent state.
type Store struct {
	mu sync.RWMutex

	widgets     []Widget
	dashboards  []Dashboard
	dataSources []DataSource

	nextWidgetID     int
	nextDashboardID  int
	nextDataSourceID int
}

// NewStore builds a store pre-loaded with the built-in widgets, dashboards,
// role templates and data source registry.
func NewStore() *Store {
	s := &Store{
		widgets:          defaultWidgets(),
		dashboards:       defaultDashboards(),
		dataSources:      defaultDataSources(),
		nextWidgetID:     3,
		nextDashboardID:  3,
		nextDataSourceID: 3,
	}

	for _, seed := range roleTemplateSeeds() {
		s.widgets = append(s.widgets, seed.widgets...)
		s.dashboards = append(s.dashboards, seed.dashboard)
	}

	return s
}

// WidgetFilter narrows ListWidgets results. Zero fields match everything.
type WidgetFilter struct {
	Type       WidgetType
	DataSource string
}

func (s *Store) ListWidgets(filter WidgetFilter) []Widget {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Widget, 0, len(s.widgets))
	for _, w := range s.widgets {
		if filter.Type != "" && w.Type != filter.Type {
			continue
		}
		if filter.DataSource != "" && w.DataSource != filter.DataSource {
			continue
		}
		out = append(out, w)
	}
	return out
}

func (s *Store) GetWidget(id string) (Widget, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, w := range s.widgets {
		if w.ID == id {
			return w, true
		}
	}
	return Widget{}, false
}

// InsertWidget stores w, assigning a sequential id when none is given.
func (s *Store) InsertWidget(w *Widget) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if w.ID == "" {
		w.ID = fmt.Sprintf("widget-%d", s.nextWidgetID)
		s.nextWidgetID++
	}
	w.CreatedAt = time.Now()
	s.widgets = append(s.widgets, *w)
}

// MutateWidget applies fn to the stored widget under the write lock and
// returns the updated copy.
func (s *Store) MutateWidget(id string, fn func(*Widget)) (Widget, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.widgets {
		if s.widgets[i].ID == id {
			fn(&s.widgets[i])
			now := time.Now()
			s.widgets[i].UpdatedAt = &now
			return s.widgets[i], true
		}
	}
	return Widget{}, false
}

// DeleteWidget removes the widget and strips its reference from every
// dashboard in the same critical section.
func (s *Store) DeleteWidget(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.widgets {
		if s.widgets[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	s.widgets = append(s.widgets[:idx], s.widgets[idx+1:]...)

	for i := range s.dashboards {
		refs := s.dashboards[i].Widgets
		kept := refs[:0]
		for _, ref := range refs {
			if ref != id {
				kept = append(kept, ref)
			}
		}
		if len(kept) != len(refs) {
			s.dashboards[i].Widgets = kept
			now := time.Now()
			s.dashboards[i].UpdatedAt = &now
		}
	}
	return true
}

// UpsertWidget replaces the widget with the same id or inserts it. Used
// when a template update carries full widget definitions.
func (s *Store) UpsertWidget(w Widget) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.widgets {
		if s.widgets[i].ID == w.ID {
			w.CreatedAt = s.widgets[i].CreatedAt
			now := time.Now()
			w.UpdatedAt = &now
			s.widgets[i] = w
			return
		}
	}
	if w.CreatedAt.IsZero() {
		w.CreatedAt = time.Now()
	}
	s.widgets = append(s.widgets, w)
}

func (s *Store) ListDashboards(category string) []Dashboard {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Dashboard, 0, len(s.dashboards))
	for _, d := range s.dashboards {
		if category != "" && d.Category != category {
			continue
		}
		out = append(out, d)
	}
	return out
}

func (s *Store) GetDashboard(id string) (Dashboard, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, d := range s.dashboards {
		if d.ID == id {
			return d, true
		}
	}
	return Dashboard{}, false
}

// GetDefaultDashboard returns the dashboard tagged as the default template
// for the given role.
func (s *Store) GetDefaultDashboard(role models.Role) (Dashboard, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, d := range s.dashboards {
		if d.IsDefaultForRole == role {
			return d, true
		}
	}
	return Dashboard{}, false
}

func (s *Store) InsertDashboard(d *Dashboard) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d.ID == "" {
		d.ID = fmt.Sprintf("dashboard-%d", s.nextDashboardID)
		s.nextDashboardID++
	}
	d.CreatedAt = time.Now()
	s.dashboards = append(s.dashboards, *d)
}

func (s *Store) MutateDashboard(id string, fn func(*Dashboard)) (Dashboard, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.dashboards {
		if s.dashboards[i].ID == id {
			fn(&s.dashboards[i])
			now := time.Now()
			s.dashboards[i].UpdatedAt = &now
			return s.dashboards[i], true
		}
	}
	return Dashboard{}, false
}

func (s *Store) DeleteDashboard(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.dashboards {
		if s.dashboards[i].ID == id {
			s.dashboards = append(s.dashboards[:i], s.dashboards[i+1:]...)
			return true
		}
	}
	return false
}

// DataSourceFilter narrows ListDataSources results.
type DataSourceFilter struct {
	Type     DataSourceType
	IsActive *bool
}

func (s *Store) ListDataSources(filter DataSourceFilter) []DataSource {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]DataSource, 0, len(s.dataSources))
	for _, ds := range s.dataSources {
		if filter.Type != "" && ds.Type != filter.Type {
			continue
		}
		if filter.IsActive != nil && ds.IsActive != *filter.IsActive {
			continue
		}
		out = append(out, ds)
	}
	return out
}

func (s *Store) GetDataSource(id string) (DataSource, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, ds := range s.dataSources {
		if ds.ID == id {
			return ds, true
		}
	}
	return DataSource{}, false
}

func (s *Store) InsertDataSource(ds *DataSource) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ds.ID == "" {
		ds.ID = fmt.Sprintf("datasource-%d", s.nextDataSourceID)
		s.nextDataSourceID++
	}
	ds.CreatedAt = time.Now()
	s.dataSources = append(s.dataSources, *ds)
}

func (s *Store) MutateDataSource(id string, fn func(*DataSource)) (DataSource, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.dataSources {
		if s.dataSources[i].ID == id {
			fn(&s.dataSources[i])
			now := time.Now()
			s.dataSources[i].UpdatedAt = &now
			return s.dataSources[i], true
		}
	}
	return DataSource{}, false
}

// DeleteDataSource removes the data source unless a widget still references
// it. The reference check and the delete run under one lock, so a widget
// created concurrently cannot slip past the guard. Returns the number of
// dependent widgets, whether the data source exists, and whether it was
// deleted.
func (s *Store) DeleteDataSource(id string) (dependents int, found, deleted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.dataSources {
		if s.dataSources[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, false, false
	}

	for _, w := range s.widgets {
		if w.DataSource == id {
			dependents++
		}
	}
	if dependents > 0 {
		return dependents, true, false
	}

	s.dataSources = append(s.dataSources[:idx], s.dataSources[idx+1:]...)
	return 0, true, true
}

// Stats reports collection sizes for the analytics endpoint.
type Stats struct {
	Widgets     int
	Dashboards  int
	DataSources int
}

func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Stats{
		Widgets:     len(s.widgets),
		Dashboards:  len(s.dashboards),
		DataSources: len(s.dataSources),
	}
}
