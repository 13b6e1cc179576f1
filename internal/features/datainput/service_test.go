package datainput

import (
	"context"
	"strings"
	"testing"

	"livpulse/internal/common/apperror"
	"livpulse/internal/common/models"

	"go.uber.org/zap"
)

func newTestService() (*DataInputServiceImpl, *MemorySubmissionRepository) {
	repo := NewMemorySubmissionRepository()
	return &DataInputServiceImpl{repo: repo, log: zap.NewNop()}, repo
}

func TestSubmitFormAccessControl(t *testing.T) {
	svc, _ := newTestService()
	data := map[string]interface{}{
		"date":      "2025-01-15",
		"platform":  "Android",
		"dau":       1200000,
		"retention": 45.5,
	}

	if _, err := svc.SubmitForm(context.Background(), "no-such-category", data, "u1", models.RoleAdmin); !apperror.IsKind(err, apperror.KindForbidden) {
		t.Errorf("unknown category: err = %v, want forbidden", err)
	}

	// platform-kpis is writable by admin, pm and tpm only.
	if _, err := svc.SubmitForm(context.Background(), "platform-kpis", data, "u1", models.RoleExecutive); !apperror.IsKind(err, apperror.KindForbidden) {
		t.Errorf("executive on platform-kpis: err = %v, want forbidden", err)
	}

	result, err := svc.SubmitForm(context.Background(), "platform-kpis", data, "u1", models.RolePM)
	if err != nil {
		t.Fatalf("SubmitForm() error = %v", err)
	}
	if !result.Valid || result.SubmissionID == "" {
		t.Errorf("result = %+v, want valid with submission id", result)
	}
}

func TestSubmitFormInvalidDataNotStored(t *testing.T) {
	svc, repo := newTestService()

	result, err := svc.SubmitForm(context.Background(), "platform-kpis",
		map[string]interface{}{"platform": "Android"}, "u1", models.RolePM)
	if err != nil {
		t.Fatalf("SubmitForm() error = %v", err)
	}
	if result.Valid {
		t.Fatal("invalid submission reported as valid")
	}

	_, total, _ := repo.ListByCategory(context.Background(), "platform-kpis", 1, 50)
	if total != 0 {
		t.Errorf("stored %d submissions, want 0", total)
	}
}

func TestUploadCSVAtomic(t *testing.T) {
	svc, repo := newTestService()

	// The second data row has a platform outside the select list; the whole
	// batch must be rejected.
	bad := "date,platform,dau,retention\n" +
		"2025-01-15,Android,1200000,45.5\n" +
		"2025-01-16,Windows,900000,40.1\n" +
		"2025-01-17,Web,800000,41.0"

	result, err := svc.UploadCSV(context.Background(), "platform-kpis", bad, "u1", models.RolePM)
	if err != nil {
		t.Fatalf("UploadCSV() error = %v", err)
	}
	if result.Valid {
		t.Fatal("batch with invalid row reported as valid")
	}
	if !strings.HasPrefix(result.Message, "1 rows failed validation.") {
		t.Errorf("Message = %q", result.Message)
	}
	if _, total, _ := repo.ListByCategory(context.Background(), "platform-kpis", 1, 50); total != 0 {
		t.Errorf("stored %d rows after failed batch, want 0", total)
	}

	good := "date,platform,dau,retention\n" +
		"2025-01-15,Android,1200000,45.5\n" +
		"2025-01-16,iOS,900000,40.1"

	result, err = svc.UploadCSV(context.Background(), "platform-kpis", good, "u1", models.RolePM)
	if err != nil {
		t.Fatalf("UploadCSV() error = %v", err)
	}
	if !result.Valid || len(result.SubmissionIDs) != 2 {
		t.Fatalf("result = %+v, want 2 submission ids", result)
	}
	if result.Message != "Successfully uploaded 2 rows" {
		t.Errorf("Message = %q", result.Message)
	}

	stored, total, _ := repo.ListByCategory(context.Background(), "platform-kpis", 1, 50)
	if total != 2 {
		t.Fatalf("stored %d rows, want 2", total)
	}
	for _, s := range stored {
		if s.Status != models.SubmissionPending || s.Source != models.SourceCSV {
			t.Errorf("submission %s: status=%s source=%s", s.ID, s.Status, s.Source)
		}
	}
}

func TestUploadCSVMalformed(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.UploadCSV(context.Background(), "platform-kpis", "date,platform", "u1", models.RolePM); !apperror.IsKind(err, apperror.KindBadRequest) {
		t.Errorf("header-only csv: err = %v, want bad request", err)
	}
}

func TestReviewSubmission(t *testing.T) {
	svc, _ := newTestService()

	result, err := svc.SubmitForm(context.Background(), "platform-kpis", map[string]interface{}{
		"date":      "2025-01-15",
		"platform":  "Android",
		"dau":       1200000,
		"retention": 45.5,
	}, "u1", models.RolePM)
	if err != nil {
		t.Fatalf("SubmitForm() error = %v", err)
	}
	id := result.SubmissionID

	if _, err := svc.ReviewSubmission(context.Background(), id, "escalate", "admin", ""); !apperror.IsKind(err, apperror.KindBadRequest) {
		t.Errorf("invalid action: err = %v, want bad request", err)
	}
	if _, err := svc.ReviewSubmission(context.Background(), "missing", "approve", "admin", ""); !apperror.IsKind(err, apperror.KindNotFound) {
		t.Errorf("unknown id: err = %v, want not found", err)
	}

	reviewed, err := svc.ReviewSubmission(context.Background(), id, "approve", "admin", "looks right")
	if err != nil {
		t.Fatalf("ReviewSubmission() error = %v", err)
	}
	if reviewed.Status != models.SubmissionApproved || reviewed.ReviewedBy != "admin" || reviewed.ReviewedAt == nil {
		t.Errorf("reviewed = %+v", reviewed)
	}

	// A decided submission cannot be re-reviewed.
	if _, err := svc.ReviewSubmission(context.Background(), id, "reject", "admin", ""); !apperror.IsKind(err, apperror.KindConflict) {
		t.Errorf("second review: err = %v, want conflict", err)
	}
}
