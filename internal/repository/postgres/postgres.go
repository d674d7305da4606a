// Package postgres implements the repository contracts on top of pgx.
package postgres

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adanyl0v/study-board/internal/config"
	"github.com/adanyl0v/study-board/internal/repository"
)

//go:embed schema.sql
var schema string

func ConnectionURL(cfg config.PostgresConfig) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.Username, cfg.Password, cfg.Host,
		cfg.Port, cfg.Database, cfg.SSLMode)
}

// Connect opens a pool and pings it within cfg.PingTimeout.
func Connect(ctx context.Context, cfg config.PostgresConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(ConnectionURL(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres config: %w", err)
	}
	poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.PingTimeout)
	defer cancel()

	err = pool.Ping(pingCtx)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}
	return pool, nil
}

// Migrate creates the tables if they do not exist yet.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

type Store struct {
	pool  *pgxpool.Pool
	Users *UserRepository
	Tasks *TaskRepository
	Notes *NoteRepository
}

func NewStore(pool *pgxpool.Pool) *Store {
	builder := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	return &Store{
		pool:  pool,
		Users: &UserRepository{pool: pool, builder: builder},
		Tasks: &TaskRepository{pool: pool, builder: builder},
		Notes: &NoteRepository{pool: pool, builder: builder},
	}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Store) Close() {
	s.pool.Close()
}

func translateError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return fmt.Errorf("%w: %s", repository.ErrAlreadyExists, pgErr.ConstraintName)
	}
	return err
}
