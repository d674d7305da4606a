package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adanyl0v/study-board/internal/models"
	"github.com/adanyl0v/study-board/internal/repository"
)

var taskColumns = []string{
	"id",
	"title",
	"link",
	"category",
	"status",
	"assigned_by",
	"assigned_to",
	"notes",
	"created_at",
	"updated_at",
}

type TaskRepository struct {
	pool    *pgxpool.Pool
	builder squirrel.StatementBuilderType
}

var _ repository.TaskRepository = (*TaskRepository)(nil)

func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	query, args, err := r.builder.
		Insert("tasks").
		Columns(taskColumns...).
		Values(
			task.ID,
			task.Title,
			task.Link,
			string(task.Category),
			string(task.Status),
			task.AssignedBy,
			task.AssignedTo,
			task.Notes,
			task.CreatedAt,
			task.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to insert task: %w", translateError(err))
	}
	return nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (*models.Task, error) {
	query, args, err := r.builder.
		Select(taskColumns...).
		From("tasks").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	task, err := scanTask(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translateError(err)
	}
	return task, nil
}

func (r *TaskRepository) ListByAssignee(ctx context.Context, userID string) ([]*models.Task, error) {
	return r.list(ctx, squirrel.Eq{"assigned_to": userID})
}

func (r *TaskRepository) ListByAssigner(ctx context.Context, userID string) ([]*models.Task, error) {
	return r.list(ctx, squirrel.Eq{"assigned_by": userID})
}

func (r *TaskRepository) Update(ctx context.Context, id string, update repository.TaskUpdate) (*models.Task, error) {
	builder := r.builder.
		Update("tasks").
		Set("updated_at", update.UpdatedAt).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(taskColumns, ", "))
	// Only provided columns are written.
	if update.Status != nil {
		builder = builder.Set("status", string(*update.Status))
	}
	if update.Notes != nil {
		builder = builder.Set("notes", *update.Notes)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	task, err := scanTask(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translateError(err)
	}
	return task, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	query, args, err := r.builder.
		Delete("tasks").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *TaskRepository) list(ctx context.Context, where squirrel.Eq) ([]*models.Task, error) {
	query, args, err := r.builder.
		Select(taskColumns...).
		From("tasks").
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]*models.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("failed to iterate over rows: %w", err)
	}
	return tasks, nil
}

func scanTask(row pgx.Row) (*models.Task, error) {
	var (
		task     models.Task
		category string
		status   string
	)
	err := row.Scan(
		&task.ID,
		&task.Title,
		&task.Link,
		&category,
		&status,
		&task.AssignedBy,
		&task.AssignedTo,
		&task.Notes,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	task.Category = models.TaskCategory(category)
	task.Status = models.TaskStatus(status)
	return &task, nil
}
