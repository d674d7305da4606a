package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/adanyl0v/study-board/internal/models"
	"github.com/adanyl0v/study-board/internal/repository"
)

type userRepositoryMock struct {
	mock.Mock
}

func (m *userRepositoryMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *userRepositoryMock) CreateMany(ctx context.Context, users []*models.User) error {
	args := m.Called(ctx, users)
	return args.Error(0)
}

func (m *userRepositoryMock) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)

	var user *models.User
	if value := args.Get(0); value != nil {
		user = value.(*models.User)
	}
	return user, args.Error(1)
}

func (m *userRepositoryMock) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)

	var user *models.User
	if value := args.Get(0); value != nil {
		user = value.(*models.User)
	}
	return user, args.Error(1)
}

func (m *userRepositoryMock) List(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)

	var users []*models.User
	if value := args.Get(0); value != nil {
		users = value.([]*models.User)
	}
	return users, args.Error(1)
}

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) Create(ctx context.Context, task *models.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *taskRepositoryMock) GetByID(ctx context.Context, id string) (*models.Task, error) {
	args := m.Called(ctx, id)

	var task *models.Task
	if value := args.Get(0); value != nil {
		task = value.(*models.Task)
	}
	return task, args.Error(1)
}

func (m *taskRepositoryMock) ListByAssignee(ctx context.Context, userID string) ([]*models.Task, error) {
	args := m.Called(ctx, userID)

	var tasks []*models.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]*models.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) ListByAssigner(ctx context.Context, userID string) ([]*models.Task, error) {
	args := m.Called(ctx, userID)

	var tasks []*models.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]*models.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) Update(ctx context.Context, id string, update repository.TaskUpdate) (*models.Task, error) {
	args := m.Called(ctx, id, update)

	var task *models.Task
	if value := args.Get(0); value != nil {
		task = value.(*models.Task)
	}
	return task, args.Error(1)
}

func (m *taskRepositoryMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
