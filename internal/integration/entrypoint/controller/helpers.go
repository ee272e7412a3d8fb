// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/lifesync/backend/internal/domain/error"
	"github.com/lifesync/backend/internal/integration/entrypoint/dto"
)

// respondUnauthenticated writes the standard 401 for a missing auth context.
func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "Authentication required",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}

// respondInvalidDate writes the standard 400 for an unparseable date parameter.
func respondInvalidDate(ctx *gin.Context, param string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: fmt.Sprintf("%s must be in YYYY-MM-DD format", param),
		Code:  string(domainerror.ErrCodeInvalidDateFormat),
	})
}
