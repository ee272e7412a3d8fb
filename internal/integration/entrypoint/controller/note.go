// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lifesync/backend/internal/application/adapter"
	"github.com/lifesync/backend/internal/application/usecase/note"
	domainerror "github.com/lifesync/backend/internal/domain/error"
	"github.com/lifesync/backend/internal/integration/entrypoint/dto"
	"github.com/lifesync/backend/internal/integration/entrypoint/middleware"
)

// NoteController handles note endpoints.
type NoteController struct {
	createUseCase *note.CreateNoteUseCase
	listUseCase   *note.ListNotesUseCase
	updateUseCase *note.UpdateNoteUseCase
	deleteUseCase *note.DeleteNoteUseCase
}

// NewNoteController creates a new note controller instance.
func NewNoteController(
	createUseCase *note.CreateNoteUseCase,
	listUseCase *note.ListNotesUseCase,
	updateUseCase *note.UpdateNoteUseCase,
	deleteUseCase *note.DeleteNoteUseCase,
) *NoteController {
	return &NoteController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /api/notes requests.
func (c *NoteController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateNoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingNoteFields),
		})
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID",
			Code:  string(domainerror.ErrCodeMissingNoteFields),
		})
		return
	}

	// Missing noted_on defaults to today inside the use case
	var notedOn time.Time
	if req.NotedOn != "" {
		notedOn, err = time.Parse("2006-01-02", req.NotedOn)
		if err != nil {
			respondInvalidDate(ctx, "noted_on")
			return
		}
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), note.CreateNoteInput{
		UserID:     userID,
		CategoryID: categoryID,
		Content:    req.Content,
		MoodRating: req.MoodRating,
		NotedOn:    notedOn,
	})
	if err != nil {
		c.handleNoteError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToNoteResponse(output.Note))
}

// List handles GET /api/notes requests with optional category_id, start_date,
// end_date, limit and offset query parameters.
func (c *NoteController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	filter := adapter.NoteFilter{}

	if categoryStr := ctx.Query("category_id"); categoryStr != "" {
		categoryID, err := uuid.Parse(categoryStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID",
				Code:  string(domainerror.ErrCodeMissingNoteFields),
			})
			return
		}
		filter.CategoryID = &categoryID
	}
	if startStr := ctx.Query("start_date"); startStr != "" {
		start, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			respondInvalidDate(ctx, "start_date")
			return
		}
		filter.StartDate = &start
	}
	if endStr := ctx.Query("end_date"); endStr != "" {
		end, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			respondInvalidDate(ctx, "end_date")
			return
		}
		filter.EndDate = &end
	}
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			filter.Limit = limit
		}
	}
	if offsetStr := ctx.Query("offset"); offsetStr != "" {
		if offset, err := strconv.Atoi(offsetStr); err == nil {
			filter.Offset = offset
		}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), note.ListNotesInput{
		UserID: userID,
		Filter: filter,
	})
	if err != nil {
		c.handleNoteError(ctx, err)
		return
	}

	notes := make([]dto.NoteResponse, 0, len(output.Notes))
	for _, n := range output.Notes {
		notes = append(notes, dto.ToNoteResponse(n))
	}

	ctx.JSON(http.StatusOK, dto.NoteListResponse{
		Notes:  notes,
		Total:  len(notes),
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

// Update handles PATCH /api/notes/:id requests.
func (c *NoteController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	noteID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid note ID",
			Code:  string(domainerror.ErrCodeMissingNoteFields),
		})
		return
	}

	var req dto.UpdateNoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingNoteFields),
		})
		return
	}

	input := note.UpdateNoteInput{
		NoteID: noteID,
		UserID: userID,
	}
	if req.CategoryID != "" {
		categoryID, err := uuid.Parse(req.CategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID",
				Code:  string(domainerror.ErrCodeMissingNoteFields),
			})
			return
		}
		input.CategoryID = &categoryID
	}
	if req.Content != "" {
		input.Content = &req.Content
	}
	if req.MoodRating != 0 {
		input.MoodRating = &req.MoodRating
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleNoteError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNoteResponse(output.Note))
}

// Delete handles DELETE /api/notes/:id requests.
func (c *NoteController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	noteID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid note ID",
			Code:  string(domainerror.ErrCodeMissingNoteFields),
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), note.DeleteNoteInput{
		NoteID: noteID,
		UserID: userID,
	}); err != nil {
		c.handleNoteError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Note deleted"})
}

// handleNoteError handles note errors and returns appropriate HTTP responses.
func (c *NoteController) handleNoteError(ctx *gin.Context, err error) {
	var noteErr *domainerror.NoteError
	if errors.As(err, &noteErr) {
		statusCode := c.getStatusCodeForNoteError(noteErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: noteErr.Message,
			Code:  string(noteErr.Code),
		})
		return
	}

	var categoryErr *domainerror.CategoryError
	if errors.As(err, &categoryErr) {
		// Category ownership failures surface through note endpoints too
		status := http.StatusBadRequest
		if categoryErr.Code == domainerror.ErrCodeCategoryNotFound {
			status = http.StatusNotFound
		} else if categoryErr.Code == domainerror.ErrCodeNotAuthorizedCategory {
			status = http.StatusForbidden
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: categoryErr.Message,
			Code:  string(categoryErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForNoteError maps note error codes to HTTP status codes.
func (c *NoteController) getStatusCodeForNoteError(code domainerror.NoteErrorCode) int {
	switch code {
	case domainerror.ErrCodeNoteNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedNote:
		return http.StatusForbidden
	case domainerror.ErrCodeNoteContentEmpty,
		domainerror.ErrCodeNoteContentTooLong,
		domainerror.ErrCodeInvalidMoodRating,
		domainerror.ErrCodeNotedOnInFuture,
		domainerror.ErrCodeMissingNoteFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
