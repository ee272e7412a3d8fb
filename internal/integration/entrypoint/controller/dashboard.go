// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lifesync/backend/internal/application/usecase/dashboard"
	domainerror "github.com/lifesync/backend/internal/domain/error"
	"github.com/lifesync/backend/internal/integration/entrypoint/dto"
	"github.com/lifesync/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	getDashboardUseCase *dashboard.GetDashboardUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(getDashboardUseCase *dashboard.GetDashboardUseCase) *DashboardController {
	return &DashboardController{
		getDashboardUseCase: getDashboardUseCase,
	}
}

// Get handles GET /api/dashboard requests. Accepts optional start_date and
// end_date query parameters (YYYY-MM-DD); defaults to the last 7 days.
func (c *DashboardController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := dashboard.GetDashboardInput{UserID: userID}

	if startStr := ctx.Query("start_date"); startStr != "" {
		start, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			respondInvalidDate(ctx, "start_date")
			return
		}
		input.StartDate = start
	}
	if endStr := ctx.Query("end_date"); endStr != "" {
		end, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			respondInvalidDate(ctx, "end_date")
			return
		}
		input.EndDate = end
	}

	output, err := c.getDashboardUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}

// handleDashboardError handles dashboard errors and returns appropriate HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var dashboardErr *domainerror.DashboardError
	if errors.As(err, &dashboardErr) {
		statusCode := http.StatusInternalServerError
		switch dashboardErr.Code {
		case domainerror.ErrCodeInvalidDateRange, domainerror.ErrCodeInvalidDateFormat:
			statusCode = http.StatusBadRequest
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: dashboardErr.Message,
			Code:  string(dashboardErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
