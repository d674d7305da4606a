package sqlite

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/adanyl0v/study-board/internal/models"
	"github.com/adanyl0v/study-board/internal/repository"
)

type NoteRepository struct {
	db *gorm.DB
}

var _ repository.NoteRepository = (*NoteRepository)(nil)

func (r *NoteRepository) Create(ctx context.Context, note *models.Note) error {
	row := newNoteRow(note)
	err := r.db.WithContext(ctx).Create(&row).Error
	if err != nil {
		return fmt.Errorf("create note: %w", translateError(err))
	}
	return nil
}

func (r *NoteRepository) GetByID(ctx context.Context, id string) (*models.Note, error) {
	var row noteRow
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		return nil, translateError(err)
	}
	return row.toModel(), nil
}

func (r *NoteRepository) List(ctx context.Context) ([]*models.Note, error) {
	var rows []noteRow
	err := r.db.WithContext(ctx).Order("updated_at DESC, id DESC").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	notes := make([]*models.Note, 0, len(rows))
	for _, row := range rows {
		notes = append(notes, row.toModel())
	}
	return notes, nil
}

func (r *NoteRepository) Update(ctx context.Context, id string, update repository.NoteUpdate) (*models.Note, error) {
	values := map[string]any{
		"updated_at": update.UpdatedAt,
	}
	if update.Title != nil {
		values["title"] = *update.Title
	}
	if update.Content != nil {
		values["content"] = *update.Content
	}
	if update.Category != nil {
		values["category"] = *update.Category
	}

	var row noteRow
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&noteRow{}).Where("id = ?", id).Updates(values)
		if result.Error != nil {
			return fmt.Errorf("update note: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return repository.ErrNotFound
		}
		return tx.Where("id = ?", id).First(&row).Error
	})
	if err != nil {
		return nil, translateError(err)
	}
	return row.toModel(), nil
}

func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&noteRow{})
	if result.Error != nil {
		return fmt.Errorf("delete note: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
