package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/study-board/internal/config"
	"github.com/adanyl0v/study-board/internal/models"
	"github.com/adanyl0v/study-board/internal/repository"
)

type userServiceImpl struct {
	logger zerolog.Logger
	users  repository.UserRepository
}

func NewUserService(
	logger zerolog.Logger,
	users repository.UserRepository,
) UserService {
	return &userServiceImpl{
		logger: logger,
		users:  users,
	}
}

func (s *userServiceImpl) Seed(ctx context.Context, seeds []config.SeedUser) (bool, error) {
	count, err := s.users.Count(ctx)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to count users")
		return false, err
	}
	if count > 0 {
		s.logger.Info().
			Int64("count", count).
			Msg("users already present, skipping seed")
		return false, nil
	}
	if len(seeds) == 0 {
		s.logger.Warn().Msg("no seed users configured")
		return false, nil
	}

	now := time.Now().UTC()
	users := make([]*models.User, 0, len(seeds))
	for _, seed := range seeds {
		user, err := newSeedUser(seed, now)
		if err != nil {
			s.logger.Error().
				Err(err).
				Str("username", seed.Username).
				Msg("failed to prepare seed user")
			return false, err
		}
		users = append(users, user)
	}

	err = s.users.CreateMany(ctx, users)
	if err != nil {
		// Another instance may have seeded the store in the meantime.
		if errors.Is(err, repository.ErrAlreadyExists) {
			s.logger.Warn().
				Err(err).
				Msg("users were seeded concurrently")
			return false, nil
		}

		s.logger.Error().
			Err(err).
			Msg("failed to insert seed users")
		return false, err
	}

	for _, user := range users {
		s.logger.Debug().
			Str("user_id", user.ID).
			Str("username", user.Username).
			Msg("inserted seed user")
	}
	s.logger.Info().
		Int("count", len(users)).
		Msg("seeded users")
	return true, nil
}

func newSeedUser(seed config.SeedUser, now time.Time) (*models.User, error) {
	userUUID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user uuid: %w", err)
	}

	hash := seed.Hash
	if hash == "" {
		hash, err = hashPassword(seed.Password)
		if err != nil {
			return nil, err
		}
	} else {
		err = validateHash(hash)
		if err != nil {
			return nil, fmt.Errorf("invalid password hash: %w", err)
		}
	}

	return &models.User{
		ID:           userUUID.String(),
		Username:     seed.Username,
		Name:         seed.Name,
		Email:        seed.Email,
		PasswordHash: hash,
		CreatedAt:    now,
	}, nil
}

func (s *userServiceImpl) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Error().
				Str("user_id", id).
				Msg("user not found")
			return nil, ErrUserNotFound
		}

		s.logger.Error().
			Err(err).
			Str("user_id", id).
			Msg("failed to select user by id")
		return nil, err
	}
	return user, nil
}

func (s *userServiceImpl) ListUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to select users")
		return nil, err
	}
	s.logger.Debug().
		Int("count", len(users)).
		Msg("selected users")
	return users, nil
}

func (s *userServiceImpl) ListOtherUsers(ctx context.Context, userID string) ([]*models.User, error) {
	users, err := s.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	others := make([]*models.User, 0, len(users))
	for _, user := range users {
		if user.ID != userID {
			others = append(others, user)
		}
	}
	return others, nil
}
