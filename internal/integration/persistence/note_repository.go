// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lifesync/backend/internal/application/adapter"
	"github.com/lifesync/backend/internal/domain/entity"
	domainerror "github.com/lifesync/backend/internal/domain/error"
	"github.com/lifesync/backend/internal/integration/persistence/model"
)

// noteRepository implements the adapter.NoteRepository interface.
type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a new note repository instance.
func NewNoteRepository(db *gorm.DB) adapter.NoteRepository {
	return &noteRepository{
		db: db,
	}
}

// Create creates a new note in the database.
func (r *noteRepository) Create(ctx context.Context, note *entity.Note) error {
	noteModel := model.NoteFromEntity(note)
	result := r.db.WithContext(ctx).Create(noteModel)
	return result.Error
}

// FindByID retrieves a note by its ID.
func (r *noteRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Note, error) {
	var noteModel model.NoteModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&noteModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrNoteNotFound
		}
		return nil, result.Error
	}
	return noteModel.ToEntity(), nil
}

// FindByUser retrieves notes for a user matching the filter, newest first.
func (r *noteRepository) FindByUser(ctx context.Context, userID uuid.UUID, filter adapter.NoteFilter) ([]*entity.Note, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.StartDate != nil {
		query = query.Where("noted_on >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("noted_on <= ?", *filter.EndDate)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var noteModels []model.NoteModel
	result := query.Order("noted_on DESC, created_at DESC").Find(&noteModels)
	if result.Error != nil {
		return nil, result.Error
	}

	notes := make([]*entity.Note, 0, len(noteModels))
	for i := range noteModels {
		notes = append(notes, noteModels[i].ToEntity())
	}
	return notes, nil
}

// Update updates an existing note in the database.
func (r *noteRepository) Update(ctx context.Context, note *entity.Note) error {
	noteModel := model.NoteFromEntity(note)
	result := r.db.WithContext(ctx).Save(noteModel)
	return result.Error
}

// Delete soft-deletes a note.
func (r *noteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.NoteModel{}, "id = ?", id)
	return result.Error
}

// CountByCategory returns the number of notes filed under a category.
func (r *noteRepository) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.NoteModel{}).
		Where("category_id = ?", categoryID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// DistinctNoteDates returns the distinct NotedOn dates for a user, newest first.
func (r *noteRepository) DistinctNoteDates(ctx context.Context, userID uuid.UUID) ([]time.Time, error) {
	var dates []time.Time
	result := r.db.WithContext(ctx).
		Model(&model.NoteModel{}).
		Where("user_id = ? AND deleted_at IS NULL", userID).
		Distinct("noted_on").
		Order("noted_on DESC").
		Pluck("noted_on", &dates)
	if result.Error != nil {
		return nil, result.Error
	}
	return dates, nil
}
