package dashboard

import (
	"context"

	"livpulse/internal/common/apperror"
	"livpulse/internal/common/models"
	"livpulse/internal/features/kpi"

	"go.uber.org/zap"
)

// DashboardService serves role templates and widget data.
type DashboardService interface {
	GetTemplate(role models.Role) (TemplateView, error)
	UpdateTemplate(role models.Role, update TemplateUpdate) (TemplateView, error)
	GetDashboardData(ctx context.Context, role models.Role, sources []string) (map[string]interface{}, error)
	AvailableDataSources(role models.Role) []kpi.DataSource
	WidgetLibrary() []kpi.Widget
}

type DashboardServiceImpl struct {
	store    *kpi.Store
	resolver DataResolver
	log      *zap.Logger
}

func NewDashboardService(kpiService kpi.KpiService, resolver DataResolver, log *zap.Logger) DashboardService {
	return &DashboardServiceImpl{
		store:    kpiService.Store(),
		resolver: resolver,
		log:      log,
	}
}

func (s *DashboardServiceImpl) GetTemplate(role models.Role) (TemplateView, error) {
	d, ok := s.store.GetDefaultDashboard(role)
	if !ok {
		return TemplateView{}, apperror.NotFound("No dashboard template found for role: %s", role)
	}
	return s.expand(d), nil
}

// expand turns the dashboard's widget id list into full widget objects.
// References to widgets that no longer exist are skipped.
func (s *DashboardServiceImpl) expand(d kpi.Dashboard) TemplateView {
	widgets := make([]kpi.Widget, 0, len(d.Widgets))
	for _, id := range d.Widgets {
		if w, ok := s.store.GetWidget(id); ok {
			widgets = append(widgets, w)
		}
	}
	return TemplateView{
		ID:          d.ID,
		Role:        d.IsDefaultForRole,
		Name:        d.Name,
		Description: d.Description,
		Widgets:     widgets,
		Layout:      d.Layout,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (s *DashboardServiceImpl) UpdateTemplate(role models.Role, update TemplateUpdate) (TemplateView, error) {
	d, ok := s.store.GetDefaultDashboard(role)
	if !ok {
		return TemplateView{}, apperror.NotFound("No dashboard template found for role: %s", role)
	}

	for i := range update.Widgets {
		w := update.Widgets[i]
		if w.ID == "" {
			return TemplateView{}, apperror.BadRequest("Template widgets must carry an id")
		}
		if !kpi.ValidWidgetType(w.Type) {
			return TemplateView{}, apperror.BadRequest("Invalid widget type: %s", w.Type)
		}
	}

	var widgetIDs []string
	if update.Widgets != nil {
		widgetIDs = make([]string, len(update.Widgets))
		for i, w := range update.Widgets {
			s.store.UpsertWidget(w)
			widgetIDs[i] = w.ID
		}
	}

	updated, _ := s.store.MutateDashboard(d.ID, func(d *kpi.Dashboard) {
		if update.Name != nil {
			d.Name = *update.Name
		}
		if update.Description != nil {
			d.Description = *update.Description
		}
		if widgetIDs != nil {
			d.Widgets = widgetIDs
		}
	})

	s.log.Info("dashboard template updated",
		zap.String("role", string(role)),
		zap.Int("widgets", len(updated.Widgets)),
	)
	return s.expand(updated), nil
}

// GetDashboardData resolves the requested sources the caller may read.
// Sources outside the caller's permissions are silently dropped from the
// result rather than failing the whole request.
func (s *DashboardServiceImpl) GetDashboardData(ctx context.Context, role models.Role, sources []string) (map[string]interface{}, error) {
	results := make(map[string]interface{})
	for _, id := range sources {
		if !CanAccessSource(role, id) {
			continue
		}

		source, ok := s.store.GetDataSource(id)
		if !ok {
			source = kpi.DataSource{ID: id, Type: kpi.DataSourceMock}
		}

		payload, err := s.resolver.Resolve(ctx, source)
		if err != nil {
			return nil, err
		}
		results[id] = payload
	}
	return results, nil
}

func (s *DashboardServiceImpl) AvailableDataSources(role models.Role) []kpi.DataSource {
	all := s.store.ListDataSources(kpi.DataSourceFilter{})
	out := make([]kpi.DataSource, 0, len(all))
	for _, ds := range all {
		if CanAccessSource(role, ds.ID) {
			out = append(out, ds)
		}
	}
	return out
}

func (s *DashboardServiceImpl) WidgetLibrary() []kpi.Widget {
	return kpi.WidgetLibrary()
}
