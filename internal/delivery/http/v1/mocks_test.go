package v1

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/adanyl0v/study-board/internal/config"
	"github.com/adanyl0v/study-board/internal/models"
	"github.com/adanyl0v/study-board/internal/services"
)

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) Authenticate(ctx context.Context, username, password string) (*services.LoginResult, error) {
	args := m.Called(ctx, username, password)

	var result *services.LoginResult
	if value := args.Get(0); value != nil {
		result = value.(*services.LoginResult)
	}
	return result, args.Error(1)
}

func (m *authServiceMock) Resolve(ctx context.Context, assertion string) (services.Identity, error) {
	args := m.Called(ctx, assertion)
	return args.Get(0).(services.Identity), args.Error(1)
}

type userServiceMock struct {
	mock.Mock
}

func (m *userServiceMock) Seed(ctx context.Context, seeds []config.SeedUser) (bool, error) {
	args := m.Called(ctx, seeds)
	return args.Bool(0), args.Error(1)
}

func (m *userServiceMock) GetUser(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)

	var user *models.User
	if value := args.Get(0); value != nil {
		user = value.(*models.User)
	}
	return user, args.Error(1)
}

func (m *userServiceMock) ListUsers(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)

	var users []*models.User
	if value := args.Get(0); value != nil {
		users = value.([]*models.User)
	}
	return users, args.Error(1)
}

func (m *userServiceMock) ListOtherUsers(ctx context.Context, userID string) ([]*models.User, error) {
	args := m.Called(ctx, userID)

	var users []*models.User
	if value := args.Get(0); value != nil {
		users = value.([]*models.User)
	}
	return users, args.Error(1)
}

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) CreateTask(ctx context.Context, caller services.Identity, params services.CreateTaskParams) (*models.Task, error) {
	args := m.Called(ctx, caller, params)

	var task *models.Task
	if value := args.Get(0); value != nil {
		task = value.(*models.Task)
	}
	return task, args.Error(1)
}

func (m *taskServiceMock) ListAssignedTo(ctx context.Context, userID string) ([]*models.Task, error) {
	args := m.Called(ctx, userID)

	var tasks []*models.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]*models.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) ListAssignedBy(ctx context.Context, userID string) ([]*models.Task, error) {
	args := m.Called(ctx, userID)

	var tasks []*models.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]*models.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, caller services.Identity, params services.UpdateTaskParams) (*models.Task, error) {
	args := m.Called(ctx, caller, params)

	var task *models.Task
	if value := args.Get(0); value != nil {
		task = value.(*models.Task)
	}
	return task, args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, caller services.Identity, taskID string) error {
	args := m.Called(ctx, caller, taskID)
	return args.Error(0)
}

type noteServiceMock struct {
	mock.Mock
}

func (m *noteServiceMock) CreateNote(ctx context.Context, caller services.Identity, params services.CreateNoteParams) (*models.Note, error) {
	args := m.Called(ctx, caller, params)

	var note *models.Note
	if value := args.Get(0); value != nil {
		note = value.(*models.Note)
	}
	return note, args.Error(1)
}

func (m *noteServiceMock) ListNotes(ctx context.Context) ([]*models.Note, error) {
	args := m.Called(ctx)

	var notes []*models.Note
	if value := args.Get(0); value != nil {
		notes = value.([]*models.Note)
	}
	return notes, args.Error(1)
}

func (m *noteServiceMock) UpdateNote(ctx context.Context, caller services.Identity, params services.UpdateNoteParams) (*models.Note, error) {
	args := m.Called(ctx, caller, params)

	var note *models.Note
	if value := args.Get(0); value != nil {
		note = value.(*models.Note)
	}
	return note, args.Error(1)
}

func (m *noteServiceMock) DeleteNote(ctx context.Context, caller services.Identity, noteID string) error {
	args := m.Called(ctx, caller, noteID)
	return args.Error(0)
}

type pingerMock struct {
	mock.Mock
}

func (m *pingerMock) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
