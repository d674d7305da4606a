package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adanyl0v/study-board/internal/models"
	"github.com/adanyl0v/study-board/internal/repository"
)

var userColumns = []string{
	"id",
	"username",
	"name",
	"email",
	"password_hash",
	"created_at",
}

type UserRepository struct {
	pool    *pgxpool.Pool
	builder squirrel.StatementBuilderType
}

var _ repository.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	query, args, err := r.builder.
		Select("COUNT(*)").
		From("users").
		ToSql()
	if err != nil {
		return 0, err
	}

	var count int64
	err = r.pool.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

func (r *UserRepository) CreateMany(ctx context.Context, users []*models.User) error {
	if len(users) == 0 {
		return nil
	}

	insert := r.builder.
		Insert("users").
		Columns(userColumns...)
	for _, user := range users {
		insert = insert.Values(
			user.ID,
			user.Username,
			user.Name,
			user.Email,
			user.PasswordHash,
			user.CreatedAt,
		)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return err
	}

	// Multi-row INSERT: all or nothing.
	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to insert users: %w", translateError(err))
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"username": username})
}

func (r *UserRepository) List(ctx context.Context) ([]*models.User, error) {
	query, args, err := r.builder.
		Select(userColumns...).
		From("users").
		OrderBy("username").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select users: %w", err)
	}
	defer rows.Close()

	users := make([]*models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("failed to iterate over rows: %w", err)
	}
	return users, nil
}

func (r *UserRepository) getOne(ctx context.Context, where squirrel.Eq) (*models.User, error) {
	query, args, err := r.builder.
		Select(userColumns...).
		From("users").
		Where(where).
		ToSql()
	if err != nil {
		return nil, err
	}

	user, err := scanUser(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translateError(err)
	}
	return user, nil
}

func scanUser(row pgx.Row) (*models.User, error) {
	user := new(models.User)
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}
