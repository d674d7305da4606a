// Package sqlite implements the repository contracts with gorm on an
// embedded SQLite database. It backs local runs and tests.
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/adanyl0v/study-board/internal/repository"
)

// Open opens the database at dsn and migrates the schema.
func Open(dsn string, log zerolog.Logger) (*gorm.DB, error) {
	err := ensureDirForSQLite(dsn)
	if err != nil {
		return nil, err
	}

	gormLog := log.With().Str("component", "gorm").Logger()
	dbLogger := logger.New(
		&gormLog,
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         dbLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	err = db.AutoMigrate(&userRow{}, &taskRow{}, &noteRow{})
	if err != nil {
		return nil, fmt.Errorf("migrate db: %w", err)
	}
	return db, nil
}

// ensureDirForSQLite creates the parent directory of a file database.
func ensureDirForSQLite(dsn string) error {
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		return nil
	}
	clean := strings.TrimPrefix(dsn, "file:")
	clean = strings.Split(clean, "?")[0]
	dir := filepath.Dir(clean)
	if dir == "." || dir == "" {
		return nil
	}
	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return fmt.Errorf("create db dir %q: %w", dir, err)
	}
	return nil
}

type Store struct {
	db    *gorm.DB
	Users *UserRepository
	Tasks *TaskRepository
	Notes *NoteRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:    db,
		Users: &UserRepository{db: db},
		Tasks: &TaskRepository{db: db},
		Notes: &NoteRepository{db: db},
	}
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func translateError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repository.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", repository.ErrAlreadyExists, err)
	default:
		return err
	}
}
