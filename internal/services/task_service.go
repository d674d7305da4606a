package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/study-board/internal/models"
	"github.com/adanyl0v/study-board/internal/repository"
)

type taskServiceImpl struct {
	logger zerolog.Logger
	tasks  repository.TaskRepository
	users  repository.UserRepository
}

func NewTaskService(
	logger zerolog.Logger,
	tasks repository.TaskRepository,
	users repository.UserRepository,
) TaskService {
	return &taskServiceImpl{
		logger: logger,
		tasks:  tasks,
		users:  users,
	}
}

func (s *taskServiceImpl) CreateTask(ctx context.Context, caller Identity, params CreateTaskParams) (*models.Task, error) {
	title := strings.TrimSpace(params.Title)
	link := strings.TrimSpace(params.Link)
	if title == "" || link == "" || params.AssignedTo == "" {
		s.logger.Error().
			Str("user_id", caller.UserID).
			Msg("task has empty required fields")
		return nil, ErrEmptyField
	}
	if !params.Category.Valid() {
		s.logger.Error().
			Str("category", string(params.Category)).
			Msg("invalid task category")
		return nil, ErrInvalidCategory
	}

	_, err := s.users.GetByID(ctx, params.AssignedTo)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Error().
				Str("assigned_to", params.AssignedTo).
				Msg("assignee not found")
			return nil, ErrAssigneeNotFound
		}

		s.logger.Error().
			Err(err).
			Str("assigned_to", params.AssignedTo).
			Msg("failed to select assignee")
		return nil, err
	}

	taskUUID, err := uuid.NewV7()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to generate task uuid")
		return nil, err
	}

	now := time.Now().UTC()
	task := &models.Task{
		ID:         taskUUID.String(),
		Title:      title,
		Link:       link,
		Category:   params.Category,
		Status:     models.StatusNotCompleted,
		AssignedBy: caller.UserID,
		AssignedTo: params.AssignedTo,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if params.Notes != nil {
		task.Notes = *params.Notes
	}

	err = s.tasks.Create(ctx, task)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to insert task")
		return nil, err
	}

	s.logger.Info().
		Str("task_id", task.ID).
		Str("assigned_by", task.AssignedBy).
		Str("assigned_to", task.AssignedTo).
		Msg("created task")
	return task, nil
}

func (s *taskServiceImpl) ListAssignedTo(ctx context.Context, userID string) ([]*models.Task, error) {
	tasks, err := s.tasks.ListByAssignee(ctx, userID)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("user_id", userID).
			Msg("failed to select tasks by assignee")
		return nil, err
	}
	s.logger.Debug().
		Int("count", len(tasks)).
		Str("user_id", userID).
		Msg("selected tasks by assignee")
	return tasks, nil
}

func (s *taskServiceImpl) ListAssignedBy(ctx context.Context, userID string) ([]*models.Task, error) {
	tasks, err := s.tasks.ListByAssigner(ctx, userID)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("user_id", userID).
			Msg("failed to select tasks by assigner")
		return nil, err
	}
	s.logger.Debug().
		Int("count", len(tasks)).
		Str("user_id", userID).
		Msg("selected tasks by assigner")
	return tasks, nil
}

func (s *taskServiceImpl) UpdateTask(ctx context.Context, caller Identity, params UpdateTaskParams) (*models.Task, error) {
	if params.Status != nil && !params.Status.Valid() {
		s.logger.Error().
			Str("status", string(*params.Status)).
			Msg("invalid task status")
		return nil, ErrInvalidStatus
	}

	task, err := s.getTask(ctx, params.ID)
	if err != nil {
		return nil, err
	}

	if !CanUpdateTask(caller, task) {
		s.logger.Warn().
			Str("task_id", task.ID).
			Str("user_id", caller.UserID).
			Msg("only the assignee may update a task")
		return nil, ErrForbidden
	}

	task, err = s.tasks.Update(ctx, task.ID, repository.TaskUpdate{
		Status:    params.Status,
		Notes:     params.Notes,
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Error().
				Str("task_id", params.ID).
				Msg("task deleted before update")
			return nil, ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Str("task_id", params.ID).
			Msg("failed to update task")
		return nil, err
	}

	s.logger.Info().
		Str("task_id", task.ID).
		Str("status", string(task.Status)).
		Msg("updated task")
	return task, nil
}

func (s *taskServiceImpl) DeleteTask(ctx context.Context, caller Identity, taskID string) error {
	task, err := s.getTask(ctx, taskID)
	if err != nil {
		return err
	}

	if !CanDeleteTask(caller, task) {
		s.logger.Warn().
			Str("task_id", task.ID).
			Str("user_id", caller.UserID).
			Msg("only the assignee or creator may delete a task")
		return ErrForbidden
	}

	err = s.tasks.Delete(ctx, task.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Error().
				Str("task_id", taskID).
				Msg("task already deleted")
			return ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Str("task_id", taskID).
			Msg("failed to delete task")
		return err
	}

	s.logger.Info().
		Str("task_id", taskID).
		Str("user_id", caller.UserID).
		Msg("deleted task")
	return nil
}

func (s *taskServiceImpl) getTask(ctx context.Context, taskID string) (*models.Task, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Error().
				Str("task_id", taskID).
				Msg("task not found")
			return nil, ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Str("task_id", taskID).
			Msg("failed to select task")
		return nil, err
	}
	s.logger.Debug().
		Str("task_id", task.ID).
		Msg("selected task")
	return task, nil
}
