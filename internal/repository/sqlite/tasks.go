package sqlite

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/adanyl0v/study-board/internal/models"
	"github.com/adanyl0v/study-board/internal/repository"
)

type TaskRepository struct {
	db *gorm.DB
}

var _ repository.TaskRepository = (*TaskRepository)(nil)

func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	row := newTaskRow(task)
	err := r.db.WithContext(ctx).Create(&row).Error
	if err != nil {
		return fmt.Errorf("create task: %w", translateError(err))
	}
	return nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (*models.Task, error) {
	var row taskRow
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		return nil, translateError(err)
	}
	return row.toModel(), nil
}

func (r *TaskRepository) ListByAssignee(ctx context.Context, userID string) ([]*models.Task, error) {
	return r.list(ctx, "assigned_to = ?", userID)
}

func (r *TaskRepository) ListByAssigner(ctx context.Context, userID string) ([]*models.Task, error) {
	return r.list(ctx, "assigned_by = ?", userID)
}

func (r *TaskRepository) Update(ctx context.Context, id string, update repository.TaskUpdate) (*models.Task, error) {
	values := map[string]any{
		"updated_at": update.UpdatedAt,
	}
	if update.Status != nil {
		values["status"] = string(*update.Status)
	}
	if update.Notes != nil {
		values["notes"] = *update.Notes
	}

	var row taskRow
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&taskRow{}).Where("id = ?", id).Updates(values)
		if result.Error != nil {
			return fmt.Errorf("update task: %w", result.Error)
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

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&taskRow{})
	if result.Error != nil {
		return fmt.Errorf("delete task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *TaskRepository) list(ctx context.Context, query string, args ...any) ([]*models.Task, error) {
	var rows []taskRow
	err := r.db.WithContext(ctx).
		Where(query, args...).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	tasks := make([]*models.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, row.toModel())
	}
	return tasks, nil
}
