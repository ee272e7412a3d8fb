// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifesync/backend/internal/application/usecase/report"
	domainerror "github.com/lifesync/backend/internal/domain/error"
	"github.com/lifesync/backend/internal/integration/entrypoint/dto"
	"github.com/lifesync/backend/internal/integration/entrypoint/middleware"
)

// ReportController handles weekly report endpoints.
type ReportController struct {
	generateUseCase *report.GenerateReportUseCase
	listUseCase     *report.ListReportsUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	generateUseCase *report.GenerateReportUseCase,
	listUseCase *report.ListReportsUseCase,
) *ReportController {
	return &ReportController{
		generateUseCase: generateUseCase,
		listUseCase:     listUseCase,
	}
}

// List handles GET /api/reports requests.
func (c *ReportController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), report.ListReportsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	reports := make([]dto.ReportResponse, 0, len(output.Reports))
	for _, r := range output.Reports {
		reports = append(reports, dto.ToReportResponse(r))
	}

	ctx.JSON(http.StatusOK, dto.ReportListResponse{Reports: reports})
}

// Generate handles POST /api/reports/generate requests. Generates the report
// for the previous calendar week on demand.
func (c *ReportController) Generate(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.generateUseCase.Execute(ctx.Request.Context(), report.GenerateReportInput{
		UserID: userID,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToReportResponse(output.Report))
}

// handleReportError handles report errors and returns appropriate HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		statusCode := http.StatusInternalServerError
		switch reportErr.Code {
		case domainerror.ErrCodeReportNotFound:
			statusCode = http.StatusNotFound
		case domainerror.ErrCodeReportAlreadyExists:
			statusCode = http.StatusConflict
		case domainerror.ErrCodeNoNotesInPeriod:
			statusCode = http.StatusUnprocessableEntity
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) && authErr.Code == domainerror.ErrCodeUserNotFound {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
