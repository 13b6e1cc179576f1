package datainput

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"
	"time"

	"livpulse/internal/common/apperror"
	"livpulse/internal/common/models"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// DataInputService runs the submission pipeline: schema discovery,
// validation, single and batch ingestion, and the review workflow.
type DataInputService interface {
	Categories(role models.Role) []Category
	Template(category string, role models.Role) (Template, error)
	Validate(category string, data map[string]interface{}, role models.Role) (ValidationResult, error)
	SubmitForm(ctx context.Context, category string, data map[string]interface{}, userID string, role models.Role) (ValidationResult, error)
	UploadCSV(ctx context.Context, category, csvText, userID string, role models.Role) (ValidationResult, error)
	UploadXLSX(ctx context.Context, category string, file []byte, userID string, role models.Role) (ValidationResult, error)
	RecentSubmissions(ctx context.Context, userID string, limit int) ([]Submission, error)
	AllSubmissions(ctx context.Context, category string, page, limit int) (SubmissionPage, error)
	ReviewSubmission(ctx context.Context, id, action, reviewerID, comments string) (Submission, error)
}

type DataInputServiceImpl struct {
	repo SubmissionRepository
	log  *zap.Logger
}

func NewDataInputService(repo SubmissionRepository, log *zap.Logger) DataInputService {
	return &DataInputServiceImpl{repo: repo, log: log}
}

func (s *DataInputServiceImpl) Categories(role models.Role) []Category {
	out := make([]Category, 0, len(categoryOrder))
	for _, id := range categoryOrder {
		template := categories[id]
		if !models.HasRole(template.Permissions, role) {
			continue
		}
		out = append(out, Category{
			ID:          id,
			Name:        template.Name,
			Description: template.Description,
			Permissions: template.Permissions,
		})
	}
	return out
}

func (s *DataInputServiceImpl) Template(category string, role models.Role) (Template, error) {
	template, ok := categories[category]
	if !ok {
		return Template{}, apperror.NotFound("Category not found")
	}
	if !models.HasRole(template.Permissions, role) {
		return Template{}, apperror.Forbidden("Access denied to this category")
	}
	return template, nil
}

func (s *DataInputServiceImpl) Validate(category string, data map[string]interface{}, _ models.Role) (ValidationResult, error) {
	template, ok := categories[category]
	if !ok {
		return ValidationResult{
			Valid:   false,
			Message: "Invalid category",
			Errors:  []string{"Category does not exist"},
		}, nil
	}
	return validate(template, data), nil
}

func (s *DataInputServiceImpl) SubmitForm(ctx context.Context, category string, data map[string]interface{}, userID string, role models.Role) (ValidationResult, error) {
	template, ok := categories[category]
	if !ok || !models.HasRole(template.Permissions, role) {
		return ValidationResult{}, apperror.Forbidden("Access denied to this data category")
	}

	result := validate(template, data)
	if !result.Valid {
		return result, nil
	}

	submission := Submission{
		ID:          uuid.NewString(),
		Category:    category,
		Data:        data,
		SubmittedBy: userID,
		SubmittedAt: time.Now(),
		Status:      models.SubmissionPending,
		Source:      models.SourceForm,
	}
	if err := s.repo.Insert(ctx, []Submission{submission}); err != nil {
		return ValidationResult{}, err
	}

	s.log.Info("form data submitted",
		zap.String("category", category),
		zap.String("submissionId", submission.ID),
	)
	return ValidationResult{
		Valid:        true,
		Message:      "Data submitted successfully",
		SubmissionID: submission.ID,
	}, nil
}

func (s *DataInputServiceImpl) UploadCSV(ctx context.Context, category, csvText, userID string, role models.Role) (ValidationResult, error) {
	rows, err := parseCSV(csvText)
	if err != nil {
		return ValidationResult{}, err
	}
	return s.submitBatch(ctx, category, rows, userID, role, models.SourceCSV)
}

func (s *DataInputServiceImpl) UploadXLSX(ctx context.Context, category string, file []byte, userID string, role models.Role) (ValidationResult, error) {
	rows, err := parseXLSX(file)
	if err != nil {
		return ValidationResult{}, err
	}
	return s.submitBatch(ctx, category, rows, userID, role, models.SourceXLSX)
}

// submitBatch validates every row and persists all of them or none.
func (s *DataInputServiceImpl) submitBatch(ctx context.Context, category string, rows []map[string]interface{}, userID string, role models.Role, source models.SubmissionSource) (ValidationResult, error) {
	template, ok := categories[category]
	if !ok || !models.HasRole(template.Permissions, role) {
		return ValidationResult{}, apperror.Forbidden("Access denied to this data category")
	}

	var invalid []ValidationResult
	for _, row := range rows {
		if result := validate(template, row); !result.Valid {
			invalid = append(invalid, result)
		}
	}
	if len(invalid) > 0 {
		var allErrors []string
		for _, v := range invalid {
			allErrors = append(allErrors, v.Errors...)
		}
		return ValidationResult{
			Valid:   false,
			Message: fmt.Sprintf("%d rows failed validation. First error: %s", len(invalid), invalid[0].Errors[0]),
			Errors:  allErrors,
		}, nil
	}

	now := time.Now()
	submissions := make([]Submission, len(rows))
	ids := make([]string, len(rows))
	for i, row := range rows {
		id := uuid.NewString()
		submissions[i] = Submission{
			ID:          id,
			Category:    category,
			Data:        row,
			SubmittedBy: userID,
			SubmittedAt: now,
			Status:      models.SubmissionPending,
			Source:      source,
		}
		ids[i] = id
	}
	if err := s.repo.Insert(ctx, submissions); err != nil {
		return ValidationResult{}, err
	}

	s.log.Info("batch data uploaded",
		zap.String("category", category),
		zap.String("source", string(source)),
		zap.Int("rows", len(rows)),
	)
	return ValidationResult{
		Valid:         true,
		Message:       fmt.Sprintf("Successfully uploaded %d rows", len(rows)),
		SubmissionIDs: ids,
	}, nil
}

func (s *DataInputServiceImpl) RecentSubmissions(ctx context.Context, userID string, limit int) ([]Submission, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.repo.ListByUser(ctx, userID, limit)
}

func (s *DataInputServiceImpl) AllSubmissions(ctx context.Context, category string, page, limit int) (SubmissionPage, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 50
	}

	submissions, total, err := s.repo.ListByCategory(ctx, category, page, limit)
	if err != nil {
		return SubmissionPage{}, err
	}
	return SubmissionPage{Submissions: submissions, Total: total}, nil
}

func (s *DataInputServiceImpl) ReviewSubmission(ctx context.Context, id, action, reviewerID, comments string) (Submission, error) {
	var status models.SubmissionStatus
	switch action {
	case "approve":
		status = models.SubmissionApproved
	case "reject":
		status = models.SubmissionRejected
	default:
		return Submission{}, apperror.BadRequest("Invalid action: %s", action)
	}

	submission, err := s.repo.Review(ctx, id, status, reviewerID, comments, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, ErrSubmissionNotFound):
			return Submission{}, apperror.NotFound("Submission not found")
		case errors.Is(err, ErrAlreadyReviewed):
			return Submission{}, apperror.Conflict("Submission has already been reviewed")
		}
		return Submission{}, err
	}

	s.log.Info("submission reviewed",
		zap.String("submissionId", id),
		zap.String("status", string(status)),
	)
	return submission, nil
}

// parseCSV reads comma-delimited text with a header row. Rows whose column
// count differs from the header are dropped rather than failing the upload.
func parseCSV(text string) ([]map[string]interface{}, error) {
	reader := csv.NewReader(strings.NewReader(strings.TrimSpace(text)))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, apperror.BadRequest("Malformed CSV: %s", err.Error())
	}
	if len(records) < 2 {
		return nil, apperror.BadRequest("CSV must have at least a header row and one data row")
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	var rows []map[string]interface{}
	for _, record := range records[1:] {
		if len(record) != len(headers) {
			continue
		}
		row := make(map[string]interface{}, len(headers))
		for i, header := range headers {
			row[header] = strings.TrimSpace(record[i])
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// parseXLSX reads the first sheet of a workbook with a header row.
func parseXLSX(file []byte) ([]map[string]interface{}, error) {
	workbook, err := excelize.OpenReader(bytes.NewReader(file))
	if err != nil {
		return nil, apperror.BadRequest("Malformed workbook: %s", err.Error())
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperror.BadRequest("Workbook has no sheets")
	}

	records, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, apperror.BadRequest("Failed to read sheet: %s", err.Error())
	}
	if len(records) < 2 {
		return nil, apperror.BadRequest("Sheet must have at least a header row and one data row")
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	var rows []map[string]interface{}
	for _, record := range records[1:] {
		if len(record) != len(headers) {
			continue
		}
		row := make(map[string]interface{}, len(headers))
		for i, header := range headers {
			row[header] = strings.TrimSpace(record[i])
		}
		rows = append(rows, row)
	}
	return rows, nil
}
