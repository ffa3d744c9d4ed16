package handler

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fadilmartias/transcript-analyzer/internal/dto"
	"github.com/fadilmartias/transcript-analyzer/internal/middleware"
	"github.com/fadilmartias/transcript-analyzer/internal/model"
	"github.com/fadilmartias/transcript-analyzer/internal/response"
	"github.com/fadilmartias/transcript-analyzer/internal/usecase"
	"github.com/fadilmartias/transcript-analyzer/internal/util"
	"github.com/gofiber/fiber/v2"
)

type AnalyzeHandler struct {
	uc *usecase.AnalysisUsecase
}

func NewAnalyzeHandler(uc *usecase.AnalysisUsecase) *AnalyzeHandler {
	return &AnalyzeHandler{uc: uc}
}

func (h *AnalyzeHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/analyze", middleware.RateLimiter(1, 4*time.Second), h.Analyze)
	app.Get("/result/:id", h.Result)
	app.Get("/courses", h.ListCourses)
	app.Get("/courses/similar", h.SimilarCourses)
	app.Post("/seed-catalog", h.SeedCatalog)
}

// Analyze accepts a transcript PDF upload and starts an async analysis.
func (h *AnalyzeHandler) Analyze(c *fiber.Ctx) error {
	rawText, err := h.processFile(c, "transcript", "./uploads/transcript/")
	if err != nil {
		return err
	}

	task := model.TranscriptTask{
		RawText:    rawText,
		University: c.FormValue("university"),
	}

	id, err := h.uc.Submit(task)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to submit transcript analysis",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusAccepted,
		Message: "Success submit transcript analysis",
		Data:    fiber.Map{"id": id, "status": "processing"},
	})
}

func (h *AnalyzeHandler) Result(c *fiber.Ctx) error {
	id := c.Params("id")
	task, err := h.uc.GetResult(id)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "task not found",
		}, nil)
	}
	data := dto.TranscriptTaskDTO{
		ID:            task.ID,
		Status:        task.Status,
		University:    task.University,
		OverallScore:  task.OverallScore,
		CumulativeGPA: task.CumulativeGPA,
		AdjustedGPA:   task.AdjustedGPA,
		Percentile:    task.Percentile,
		Breakdown:     json.RawMessage(task.Breakdown),
		Calibration:   json.RawMessage(task.Calibration),
		CreatedAt:     task.CreatedAt,
		UpdatedAt:     task.UpdatedAt,
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get analysis result",
		Data:    data,
	})
}

func (h *AnalyzeHandler) ListCourses(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 20)
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	rows, total, err := h.uc.ListCourses(page, pageSize)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list courses",
		}, err)
	}

	totalPages := total / int64(pageSize)
	if total%int64(pageSize) != 0 {
		totalPages++
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success list courses",
		Data:    rows,
		Pagination: &response.Pagination{
			Page:       page,
			PageSize:   pageSize,
			TotalPages: totalPages,
			TotalItems: total,
			HasMore:    int64(page) < totalPages,
			From:       (page-1)*pageSize + 1,
			To:         (page-1)*pageSize + len(rows),
		},
	})
}

func (h *AnalyzeHandler) SimilarCourses(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "q query parameter is required",
		}, nil)
	}

	rows, err := h.uc.SearchSimilarCourses(c.Context(), query, c.QueryInt("top_k", 5))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to search similar courses",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success search similar courses",
		Data:    rows,
	})
}

func (h *AnalyzeHandler) SeedCatalog(c *fiber.Ctx) error {
	if err := h.uc.SeedCatalog(c.Context()); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to seed course catalog",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success seed course catalog",
	})
}

func (h *AnalyzeHandler) processFile(c *fiber.Ctx, fieldName, uploadDir string) (string, error) {
	file, err := c.FormFile(fieldName)
	if err != nil {
		return "", util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: fmt.Sprintf("%s file is required", fieldName),
		}, err)
	}

	if file.Size > 5*1024*1024 {
		return "", util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: fmt.Sprintf("%s file size is too large (max 5MB)", fieldName),
		}, nil)
	}

	savePath := filepath.Join(uploadDir, file.Filename)
	if err := c.SaveFile(file, savePath); err != nil {
		return "", util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: fmt.Sprintf("cannot save %s file", fieldName),
		}, err)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".pdf" {
		return "", util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: fmt.Sprintf("unsupported %s file type", fieldName),
		}, nil)
	}

	content, err := util.ExtractPDFText(savePath)
	if err != nil {
		return "", util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: fmt.Sprintf("failed to extract %s text", fieldName),
		}, err)
	}
	return content, nil
}
