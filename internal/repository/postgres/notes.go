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

var noteColumns = []string{
	"id",
	"title",
	"content",
	"category",
	"created_by",
	"created_at",
	"updated_at",
}

type NoteRepository struct {
	pool    *pgxpool.Pool
	builder squirrel.StatementBuilderType
}

var _ repository.NoteRepository = (*NoteRepository)(nil)

func (r *NoteRepository) Create(ctx context.Context, note *models.Note) error {
	query, args, err := r.builder.
		Insert("notes").
		Columns(noteColumns...).
		Values(
			note.ID,
			note.Title,
			note.Content,
			note.Category,
			note.CreatedBy,
			note.CreatedAt,
			note.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to insert note: %w", translateError(err))
	}
	return nil
}

func (r *NoteRepository) GetByID(ctx context.Context, id string) (*models.Note, error) {
	query, args, err := r.builder.
		Select(noteColumns...).
		From("notes").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	note, err := scanNote(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translateError(err)
	}
	return note, nil
}

func (r *NoteRepository) List(ctx context.Context) ([]*models.Note, error) {
	query, args, err := r.builder.
		Select(noteColumns...).
		From("notes").
		OrderBy("updated_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select notes: %w", err)
	}
	defer rows.Close()

	notes := make([]*models.Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("failed to iterate over rows: %w", err)
	}
	return notes, nil
}

func (r *NoteRepository) Update(ctx context.Context, id string, update repository.NoteUpdate) (*models.Note, error) {
	builder := r.builder.
		Update("notes").
		Set("updated_at", update.UpdatedAt).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(noteColumns, ", "))
	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Content != nil {
		builder = builder.Set("content", *update.Content)
	}
	if update.Category != nil {
		builder = builder.Set("category", *update.Category)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	note, err := scanNote(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translateError(err)
	}
	return note, nil
}

func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	query, args, err := r.builder.
		Delete("notes").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanNote(row pgx.Row) (*models.Note, error) {
	note := new(models.Note)
	err := row.Scan(
		&note.ID,
		&note.Title,
		&note.Content,
		&note.Category,
		&note.CreatedBy,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return note, nil
}
