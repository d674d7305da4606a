package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/adanyl0v/study-board/internal/config"
	"github.com/adanyl0v/study-board/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrInvalidAssertion = fmt.Errorf("%w: invalid token", ErrUnauthenticated)
	ErrAssertionExpired = fmt.Errorf("%w: token expired", ErrUnauthenticated)

	ErrForbidden = errors.New("not authorized")

	ErrUserNotFound = errors.New("user not found")
	ErrTaskNotFound = errors.New("task not found")
	ErrNoteNotFound = errors.New("note not found")

	ErrValidation       = errors.New("validation failed")
	ErrInvalidCategory  = fmt.Errorf("%w: invalid category", ErrValidation)
	ErrInvalidStatus    = fmt.Errorf("%w: invalid status", ErrValidation)
	ErrAssigneeNotFound = fmt.Errorf("%w: assignee not found", ErrValidation)
	ErrEmptyField       = fmt.Errorf("%w: required field is empty", ErrValidation)
)

// Identity is the caller decoded from a verified assertion.
type Identity struct {
	UserID   string
	Username string
}

type AuthService interface {
	// Authenticate checks the username and password and issues a signed
	// assertion binding the user's ID and username.
	//
	// It returns ErrInvalidCredentials if the user doesn't exist or the
	// password doesn't match.
	Authenticate(ctx context.Context, username, password string) (*LoginResult, error)

	// Resolve verifies the given assertion and returns the identity it binds.
	//
	// It returns ErrAssertionExpired if the assertion is expired and
	// ErrInvalidAssertion for any other verification failure. Both wrap
	// ErrUnauthenticated.
	Resolve(ctx context.Context, assertion string) (Identity, error)
}

type UserService interface {
	// Seed inserts the given users if the user store is empty and does
	// nothing otherwise. It reports whether any user was inserted.
	Seed(ctx context.Context, seeds []config.SeedUser) (bool, error)

	// GetUser returns ErrUserNotFound if there is no such user.
	GetUser(ctx context.Context, id string) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)

	// ListOtherUsers returns every user except the one with the given ID.
	ListOtherUsers(ctx context.Context, userID string) ([]*models.User, error)
}

type TaskService interface {
	// CreateTask assigns a new task from the caller to params.AssignedTo.
	// Self-assignment is allowed.
	//
	// It returns an error wrapping ErrValidation if a field is empty, the
	// category is unknown or the assignee doesn't exist.
	CreateTask(ctx context.Context, caller Identity, params CreateTaskParams) (*models.Task, error)

	// ListAssignedTo and ListAssignedBy return tasks newest first.
	ListAssignedTo(ctx context.Context, userID string) ([]*models.Task, error)
	ListAssignedBy(ctx context.Context, userID string) ([]*models.Task, error)

	// UpdateTask changes the status and/or notes of a task. Only the
	// assignee may do so; anyone else gets ErrForbidden.
	UpdateTask(ctx context.Context, caller Identity, params UpdateTaskParams) (*models.Task, error)

	// DeleteTask removes a task on behalf of its assignee or creator.
	DeleteTask(ctx context.Context, caller Identity, taskID string) error
}

type NoteService interface {
	// CreateNote returns ErrEmptyField if the title or content is blank.
	CreateNote(ctx context.Context, caller Identity, params CreateNoteParams) (*models.Note, error)
	ListNotes(ctx context.Context) ([]*models.Note, error)

	// UpdateNote and DeleteNote are reserved to the note's creator.
	UpdateNote(ctx context.Context, caller Identity, params UpdateNoteParams) (*models.Note, error)
	DeleteNote(ctx context.Context, caller Identity, noteID string) error
}

type LoginResult struct {
	Assertion string
	ExpiresAt time.Time
	User      *models.User
}

type CreateTaskParams struct {
	Title      string
	Link       string
	Category   models.TaskCategory
	AssignedTo string
	Notes      *string
}

// UpdateTaskParams carries a partial task update. Nil fields are left as they are.
type UpdateTaskParams struct {
	ID     string
	Status *models.TaskStatus
	Notes  *string
}

type CreateNoteParams struct {
	Title    string
	Content  string
	Category string
}

// UpdateNoteParams carries a partial note update. Nil fields are left as they are.
type UpdateNoteParams struct {
	ID       string
	Title    *string
	Content  *string
	Category *string
}
