package dashboard

import (
	"context"
	"math/rand"
	"testing"

	"livpulse/internal/common/apperror"
	"livpulse/internal/common/models"
	"livpulse/internal/features/kpi"

	"go.uber.org/zap"
)

func newTestDashboardService() DashboardService {
	log := zap.NewNop()
	kpiService := kpi.NewKpiService(kpi.NewStore(), log)
	resolver := NewDataResolver(rand.New(rand.NewSource(1)))
	return NewDashboardService(kpiService, resolver, log)
}

func TestGetTemplate(t *testing.T) {
	svc := newTestDashboardService()

	view, err := svc.GetTemplate(models.RoleSRE)
	if err != nil {
		t.Fatalf("GetTemplate() error = %v", err)
	}
	if view.Role != models.RoleSRE {
		t.Errorf("Role = %s", view.Role)
	}
	if len(view.Widgets) == 0 {
		t.Error("template has no widgets")
	}

	if _, err := svc.GetTemplate(models.Role("intern")); !apperror.IsKind(err, apperror.KindNotFound) {
		t.Errorf("unknown role: err = %v, want not found", err)
	}
}

func TestGetDashboardDataDropsDeniedSources(t *testing.T) {
	svc := newTestDashboardService()

	// sre may read infra-health and uptime; revenue-data belongs to the
	// executive view and must be dropped without failing the request.
	data, err := svc.GetDashboardData(context.Background(), models.RoleSRE,
		[]string{"infra-health", "uptime", "revenue-data"})
	if err != nil {
		t.Fatalf("GetDashboardData() error = %v", err)
	}
	if _, ok := data["infra-health"]; !ok {
		t.Error("infra-health missing from result")
	}
	if _, ok := data["uptime"]; !ok {
		t.Error("uptime missing from result")
	}
	if _, ok := data["revenue-data"]; ok {
		t.Error("revenue-data resolved for sre")
	}

	// An unknown role gets nothing back, not an error.
	data, err = svc.GetDashboardData(context.Background(), models.Role("intern"), []string{"uptime"})
	if err != nil {
		t.Fatalf("GetDashboardData() error = %v", err)
	}
	if len(data) != 0 {
		t.Errorf("unknown role resolved %d sources", len(data))
	}
}

func TestAvailableDataSourcesFiltered(t *testing.T) {
	svc := newTestDashboardService()

	sources := svc.AvailableDataSources(models.RolePM)
	if len(sources) == 0 {
		t.Fatal("pm has no available sources")
	}
	for _, ds := range sources {
		if !CanAccessSource(models.RolePM, ds.ID) {
			t.Errorf("source %s leaked to pm", ds.ID)
		}
	}

	if got := svc.AvailableDataSources(models.Role("intern")); len(got) != 0 {
		t.Errorf("unknown role sees %d sources", len(got))
	}

	// Admin sees the whole registry.
	all := svc.AvailableDataSources(models.RoleAdmin)
	if len(all) <= len(sources) {
		t.Errorf("admin sees %d sources, pm sees %d", len(all), len(sources))
	}
}
