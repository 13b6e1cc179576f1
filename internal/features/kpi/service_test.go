package kpi

import (
	"strings"
	"testing"

	"livpulse/internal/common/apperror"
	"livpulse/internal/common/models"

	"go.uber.org/zap"
)

func newTestService() KpiService {
	return NewKpiService(NewStore(), zap.NewNop())
}

func TestCreateWidgetValidation(t *testing.T) {
	svc := newTestService()

	_, err := svc.CreateWidget(Widget{})
	if !apperror.IsKind(err, apperror.KindBadRequest) {
		t.Fatalf("err = %v, want bad request", err)
	}
	if err.Error() != "Missing required fields: type, title, dataSource" {
		t.Errorf("message = %q", err.Error())
	}

	_, err = svc.CreateWidget(Widget{Type: "sparkline", Title: "t", DataSource: "users-api"})
	if !apperror.IsKind(err, apperror.KindBadRequest) {
		t.Errorf("invalid type: err = %v, want bad request", err)
	}

	created, err := svc.CreateWidget(Widget{Type: WidgetMetric, Title: "DAU", DataSource: "users-api"})
	if err != nil {
		t.Fatalf("CreateWidget() error = %v", err)
	}
	if created.ID != "widget-3" {
		t.Errorf("ID = %q, want widget-3", created.ID)
	}
	if len(created.Permissions) != 1 || created.Permissions[0] != models.RoleAdmin {
		t.Errorf("Permissions = %v, want admin default", created.Permissions)
	}
}

func TestCreateWidgetDefaults(t *testing.T) {
	svc := newTestService()

	created, err := svc.CreateWidget(Widget{Type: WidgetChart, Title: "Growth", DataSource: "users-api"})
	if err != nil {
		t.Fatalf("CreateWidget() error = %v", err)
	}
	if !created.IsVisible {
		t.Error("new widget not visible")
	}
	if want := (WidgetPosition{X: 0, Y: 0, W: 6, H: 4}); created.Position != want {
		t.Errorf("Position = %+v, want %+v", created.Position, want)
	}

	// An explicit position survives; visibility is still forced on.
	positioned, err := svc.CreateWidget(Widget{
		Type: WidgetGauge, Title: "Uptime", DataSource: "performance-api",
		Position: WidgetPosition{X: 6, Y: 2, W: 3, H: 3},
		IsVisible: false,
	})
	if err != nil {
		t.Fatalf("CreateWidget() error = %v", err)
	}
	if want := (WidgetPosition{X: 6, Y: 2, W: 3, H: 3}); positioned.Position != want {
		t.Errorf("Position = %+v, want %+v", positioned.Position, want)
	}
	if !positioned.IsVisible {
		t.Error("visibility flag on create overrode the default")
	}
}

func TestDeleteWidgetCascades(t *testing.T) {
	svc := newTestService()

	before, _ := svc.GetDashboard("dashboard-1")
	if len(before.Widgets) != 1 || before.Widgets[0] != "widget-1" {
		t.Fatalf("seed dashboard widgets = %v", before.Widgets)
	}

	if err := svc.DeleteWidget("widget-1"); err != nil {
		t.Fatalf("DeleteWidget() error = %v", err)
	}
	if err := svc.DeleteWidget("widget-1"); !apperror.IsKind(err, apperror.KindNotFound) {
		t.Errorf("second delete: err = %v, want not found", err)
	}

	after, _ := svc.GetDashboard("dashboard-1")
	if len(after.Widgets) != 0 {
		t.Errorf("dashboard still references %v", after.Widgets)
	}
	if after.UpdatedAt == nil {
		t.Error("dashboard UpdatedAt not stamped by cascade")
	}
}

func TestDeleteDataSourceGuard(t *testing.T) {
	svc := newTestService()

	// widget-1 reads users-api, so the source cannot go away underneath it.
	err := svc.DeleteDataSource("users-api")
	if !apperror.IsKind(err, apperror.KindConflict) {
		t.Fatalf("err = %v, want conflict", err)
	}
	if !strings.Contains(err.Error(), "1 widget(s)") {
		t.Errorf("message = %q", err.Error())
	}
	if _, getErr := svc.GetDataSource("users-api"); getErr != nil {
		t.Errorf("guarded source was removed: %v", getErr)
	}

	if err := svc.DeleteWidget("widget-1"); err != nil {
		t.Fatalf("DeleteWidget() error = %v", err)
	}
	if err := svc.DeleteDataSource("users-api"); err != nil {
		t.Errorf("delete after unreferencing: err = %v", err)
	}
	if err := svc.DeleteDataSource("users-api"); !apperror.IsKind(err, apperror.KindNotFound) {
		t.Errorf("second delete: err = %v, want not found", err)
	}
}

func TestDeleteDashboardDefaultGuard(t *testing.T) {
	svc := newTestService()

	err := svc.DeleteDashboard("pm-template")
	if !apperror.IsKind(err, apperror.KindConflict) {
		t.Fatalf("err = %v, want conflict", err)
	}

	if err := svc.DeleteDashboard("dashboard-1"); err != nil {
		t.Errorf("non-default delete: err = %v", err)
	}
	if err := svc.DeleteDashboard("dashboard-1"); !apperror.IsKind(err, apperror.KindNotFound) {
		t.Errorf("second delete: err = %v, want not found", err)
	}
}

func TestCreateDataSourceValidation(t *testing.T) {
	svc := newTestService()

	if _, err := svc.CreateDataSource(DataSource{Name: "x", Type: "stream"}); !apperror.IsKind(err, apperror.KindBadRequest) {
		t.Errorf("invalid type: err = %v, want bad request", err)
	}

	created, err := svc.CreateDataSource(DataSource{Name: "Billing", Type: DataSourceMock})
	if err != nil {
		t.Fatalf("CreateDataSource() error = %v", err)
	}
	if created.ID != "datasource-3" {
		t.Errorf("ID = %q, want datasource-3", created.ID)
	}
	if created.Fields == nil {
		t.Error("Fields not defaulted to empty slice")
	}
	if !created.IsActive {
		t.Error("new data source not active")
	}

	analytics := svc.Analytics()
	if analytics.ActiveDataSources != analytics.TotalDataSources {
		t.Errorf("ActiveDataSources = %d of %d, want all seeded and created sources active",
			analytics.ActiveDataSources, analytics.TotalDataSources)
	}
}
