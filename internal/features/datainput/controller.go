package datainput

import (
	"strconv"

	"livpulse/internal/common/api"
	"livpulse/internal/common/apperror"
	"livpulse/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type DataInputController struct {
	DataInputService DataInputService
}

func NewDataInputController(dataInputService DataInputService) *DataInputController {
	return &DataInputController{
		DataInputService: dataInputService,
	}
}

type formRequest struct {
	Category string                 `json:"category"`
	Data     map[string]interface{} `json:"data"`
}

type reviewRequest struct {
	Action   string `json:"action"`
	Comments string `json:"comments"`
}

// validationResponse writes a validation outcome: 200 when the data was
// accepted, 400 with the error list when it was rejected.
func validationResponse(ctx *fiber.Ctx, result ValidationResult) error {
	if result.Valid {
		return api.Success(ctx, result)
	}
	return ctx.Status(fiber.StatusBadRequest).JSON(api.Response{
		Success: false,
		Data:    result,
		Error:   result.Message,
	})
}

// SubmitForm godoc
// @Summary Submit a single record
// @Description Validate and store one record as a pending submission
// @Tags data-input
// @Accept json
// @Produce json
// @Param request body formRequest true "Category and record"
// @Success 200 {object} api.Response
// @Failure 400 {object} api.Response
// @Failure 403 {object} api.Response
// @Router /api/data-input/form [post]
func (ctrl *DataInputController) SubmitForm(ctx *fiber.Ctx) error {
	claims := middleware.Claims(ctx)
	if claims == nil {
		return api.Fail(ctx, apperror.Unauthorized("Authentication required"))
	}

	var req formRequest
	if err := ctx.BodyParser(&req); err != nil {
		return api.Fail(ctx, apperror.BadRequest("Invalid request body: %s", err.Error()))
	}
	if req.Category == "" {
		return api.Fail(ctx, apperror.BadRequest("category is required"))
	}

	result, err := ctrl.DataInputService.SubmitForm(ctx.UserContext(), req.Category, req.Data, claims.UserID, claims.Role)
	if err != nil {
		return api.Fail(ctx, err)
	}
	return validationResponse(ctx, result)
}

// UploadCSV godoc
// @Summary Upload a CSV batch
// @Description Validate every row and store all of them, or reject the whole batch
// @Tags data-input
// @Accept plain
// @Produce json
// @Param category path string true "Data category"
// @Success 200 {object} api.Response
// @Failure 400 {object} api.Response
// @Failure 403 {object} api.Response
// @Router /api/data-input/csv/{category} [post]
func (ctrl *DataInputController) UploadCSV(ctx *fiber.Ctx) error {
	claims := middleware.Claims(ctx)
	if claims == nil {
		return api.Fail(ctx, apperror.Unauthorized("Authentication required"))
	}

	body := ctx.Body()
	if len(body) == 0 {
		return api.Fail(ctx, apperror.BadRequest("No file data provided"))
	}

	result, err := ctrl.DataInputService.UploadCSV(ctx.UserContext(), ctx.Params("category"), string(body), claims.UserID, claims.Role)
	if err != nil {
		return api.Fail(ctx, err)
	}
	return validationResponse(ctx, result)
}

// UploadXLSX godoc
// @Summary Upload an Excel batch
// @Description Validate every row of the first sheet and store all of them, or reject the whole batch
// @Tags data-input
// @Accept mpfd
// @Produce json
// @Param category path string true "Data category"
// @Param file formData file true "Workbook"
// @Success 200 {object} api.Response
// @Failure 400 {object} api.Response
// @Failure 403 {object} api.Response
// @Router /api/data-input/xlsx/{category} [post]
func (ctrl *DataInputController) UploadXLSX(ctx *fiber.Ctx) error {
	claims := middleware.Claims(ctx)
	if claims == nil {
		return api.Fail(ctx, apperror.Unauthorized("Authentication required"))
	}

	header, err := ctx.FormFile("file")
	if err != nil {
		return api.Fail(ctx, apperror.BadRequest("No file data provided"))
	}

	file, err := header.Open()
	if err != nil {
		return api.Fail(ctx, apperror.BadRequest("Failed to open uploaded file"))
	}
	defer file.Close()

	data := make([]byte, header.Size)
	if _, err := file.Read(data); err != nil {
		return api.Fail(ctx, apperror.BadRequest("Failed to read uploaded file"))
	}

	result, err := ctrl.DataInputService.UploadXLSX(ctx.UserContext(), ctx.Params("category"), data, claims.UserID, claims.Role)
	if err != nil {
		return api.Fail(ctx, err)
	}
	return validationResponse(ctx, result)
}

// ValidateData godoc
// @Summary Dry-run validation
// @Description Validate a record without storing it
// @Tags data-input
// @Accept json
// @Produce json
// @Param request body formRequest true "Category and record"
// @Success 200 {object} api.Response
// @Router /api/data-input/validate [post]
func (ctrl *DataInputController) ValidateData(ctx *fiber.Ctx) error {
	claims := middleware.Claims(ctx)
	if claims == nil {
		return api.Fail(ctx, apperror.Unauthorized("Authentication required"))
	}

	var req formRequest
	if err := ctx.BodyParser(&req); err != nil {
		return api.Fail(ctx, apperror.BadRequest("Invalid request body: %s", err.Error()))
	}

	result, err := ctrl.DataInputService.Validate(req.Category, req.Data, claims.Role)
	if err != nil {
		return api.Fail(ctx, err)
	}
	return api.Success(ctx, result)
}

// GetCategories godoc
// @Summary List categories the caller may submit to
// @Tags data-input
// @Produce json
// @Success 200 {object} api.Response
// @Router /api/data-input/categories [get]
func (ctrl *DataInputController) GetCategories(ctx *fiber.Ctx) error {
	claims := middleware.Claims(ctx)
	if claims == nil {
		return api.Fail(ctx, apperror.Unauthorized("Authentication required"))
	}
	return api.Success(ctx, ctrl.DataInputService.Categories(claims.Role))
}

// GetTemplate godoc
// @Summary Get a category schema
// @Tags data-input
// @Produce json
// @Param category path string true "Data category"
// @Success 200 {object} api.Response
// @Failure 403 {object} api.Response
// @Failure 404 {object} api.Response
// @Router /api/data-input/templates/{category} [get]
func (ctrl *DataInputController) GetTemplate(ctx *fiber.Ctx) error {
	claims := middleware.Claims(ctx)
	if claims == nil {
		return api.Fail(ctx, apperror.Unauthorized("Authentication required"))
	}

	template, err := ctrl.DataInputService.Template(ctx.Params("category"), claims.Role)
	if err != nil {
		return api.Fail(ctx, err)
	}
	return api.Success(ctx, template)
}

// GetSubmissions godoc
// @Summary List the caller's recent submissions
// @Tags data-input
// @Produce json
// @Param limit query int false "Max rows" default(10)
// @Success 200 {object} api.Response
// @Router /api/data-input/submissions [get]
func (ctrl *DataInputController) GetSubmissions(ctx *fiber.Ctx) error {
	claims := middleware.Claims(ctx)
	if claims == nil {
		return api.Fail(ctx, apperror.Unauthorized("Authentication required"))
	}

	limit, _ := strconv.Atoi(ctx.Query("limit", "10"))
	submissions, err := ctrl.DataInputService.RecentSubmissions(ctx.UserContext(), claims.UserID, limit)
	if err != nil {
		return api.Fail(ctx, err)
	}
	return api.Success(ctx, submissions)
}

// GetAllSubmissions godoc
// @Summary List every submission in a category
// @Tags data-input
// @Produce json
// @Param category path string true "Data category"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(50)
// @Success 200 {object} api.Response
// @Router /api/data-input/admin/submissions/{category} [get]
func (ctrl *DataInputController) GetAllSubmissions(ctx *fiber.Ctx) error {
	page, _ := strconv.Atoi(ctx.Query("page", "1"))
	limit, _ := strconv.Atoi(ctx.Query("limit", "50"))

	pageResult, err := ctrl.DataInputService.AllSubmissions(ctx.UserContext(), ctx.Params("category"), page, limit)
	if err != nil {
		return api.Fail(ctx, err)
	}
	return api.Success(ctx, pageResult)
}

// ReviewSubmission godoc
// @Summary Approve or reject a submission
// @Description Apply a terminal review decision to a pending submission
// @Tags data-input
// @Accept json
// @Produce json
// @Param id path string true "Submission id"
// @Param request body reviewRequest true "Decision"
// @Success 200 {object} api.Response
// @Failure 400 {object} api.Response
// @Failure 404 {object} api.Response
// @Failure 409 {object} api.Response
// @Router /api/data-input/admin/submissions/{id} [put]
func (ctrl *DataInputController) ReviewSubmission(ctx *fiber.Ctx) error {
	claims := middleware.Claims(ctx)
	if claims == nil {
		return api.Fail(ctx, apperror.Unauthorized("Authentication required"))
	}

	var req reviewRequest
	if err := ctx.BodyParser(&req); err != nil {
		return api.Fail(ctx, apperror.BadRequest("Invalid request body: %s", err.Error()))
	}

	submission, err := ctrl.DataInputService.ReviewSubmission(ctx.UserContext(), ctx.Params("id"), req.Action, claims.UserID, req.Comments)
	if err != nil {
		return api.Fail(ctx, err)
	}
	return api.Success(ctx, submission)
}
