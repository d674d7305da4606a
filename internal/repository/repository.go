// Package repository declares the persistence contracts the services depend on.
// Implementations live in the postgres and sqlite subpackages.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/adanyl0v/study-board/internal/models"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
)

type UserRepository interface {
	Count(ctx context.Context) (int64, error)

	// CreateMany inserts all users atomically. It returns ErrAlreadyExists
	// if any username is taken.
	CreateMany(ctx context.Context, users []*models.User) error

	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// List returns users ordered by username.
	List(ctx context.Context) ([]*models.User, error)
}

// TaskUpdate holds the mutable task fields. Nil fields are left unchanged.
type TaskUpdate struct {
	Status    *models.TaskStatus
	Notes     *string
	UpdatedAt time.Time
}

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id string) (*models.Task, error)

	// ListByAssignee and ListByAssigner return tasks newest first.
	ListByAssignee(ctx context.Context, userID string) ([]*models.Task, error)
	ListByAssigner(ctx context.Context, userID string) ([]*models.Task, error)

	Update(ctx context.Context, id string, update TaskUpdate) (*models.Task, error)
	Delete(ctx context.Context, id string) error
}

// NoteUpdate holds the mutable note fields. Nil fields are left unchanged.
type NoteUpdate struct {
	Title     *string
	Content   *string
	Category  *string
	UpdatedAt time.Time
}

type NoteRepository interface {
	Create(ctx context.Context, note *models.Note) error
	GetByID(ctx context.Context, id string) (*models.Note, error)

	// List returns every note, most recently updated first.
	List(ctx context.Context) ([]*models.Note, error)

	Update(ctx context.Context, id string, update NoteUpdate) (*models.Note, error)
	Delete(ctx context.Context, id string) error
}

// Pinger reports whether the underlying store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
