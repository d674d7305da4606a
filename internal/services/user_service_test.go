package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/adanyl0v/study-board/internal/config"
	"github.com/adanyl0v/study-board/internal/models"
	"github.com/adanyl0v/study-board/internal/repository"
)

func TestUserService_Seed_Idempotent(t *testing.T) {
	store := newTestStore(t)
	users := NewUserService(zerolog.Nop(), store.Users)
	seeds := []config.SeedUser{
		{Username: "ansh", Name: "Ansh", Email: "user1@example.com", Password: "password123"},
		{Username: "harshita", Name: "Harshita", Email: "user2@example.com", Password: "password123"},
	}

	seeded, err := users.Seed(context.Background(), seeds)
	require.NoError(t, err)
	assert.True(t, seeded)

	seeded, err = users.Seed(context.Background(), seeds)
	require.NoError(t, err)
	assert.False(t, seeded)

	all, err := users.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "ansh", all[0].Username)
	assert.Equal(t, "user1@example.com", all[0].Email)
	assert.NotEqual(t, "password123", all[0].PasswordHash)
}

func TestUserService_Seed_KeepsProvidedHash(t *testing.T) {
	raw, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	store := newTestStore(t)
	users := NewUserService(zerolog.Nop(), store.Users)
	_, err = users.Seed(context.Background(), []config.SeedUser{
		{Username: "ansh", Name: "Ansh", Hash: string(raw)},
	})
	require.NoError(t, err)

	auth := newTestAuthService(store.Users, time.Hour)
	result, err := auth.Authenticate(context.Background(), "ansh", "password123")
	require.NoError(t, err)
	assert.Equal(t, string(raw), result.User.PasswordHash)
}

func TestUserService_Seed_RejectsMalformedHash(t *testing.T) {
	store := newTestStore(t)
	users := NewUserService(zerolog.Nop(), store.Users)

	_, err := users.Seed(context.Background(), []config.SeedUser{
		{Username: "ansh", Name: "Ansh", Hash: "$2a$broken"},
	})
	require.Error(t, err)

	count, err := store.Users.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestUserService_Seed_ConcurrentSeedIsNotAnError(t *testing.T) {
	repo := new(userRepositoryMock)
	repo.On("Count", mock.Anything).Return(int64(0), nil).Once()
	repo.On("CreateMany", mock.Anything, mock.Anything).Return(repository.ErrAlreadyExists).Once()

	seeded, err := NewUserService(zerolog.Nop(), repo).Seed(context.Background(), []config.SeedUser{
		{Username: "ansh", Name: "Ansh", Password: "pw"},
	})
	require.NoError(t, err)
	assert.False(t, seeded)
	repo.AssertExpectations(t)
}

func TestUserService_ListOtherUsers(t *testing.T) {
	repo := new(userRepositoryMock)
	repo.On("List", mock.Anything).Return([]*models.User{
		{ID: "u1", Username: "ansh"},
		{ID: "u2", Username: "harshita"},
	}, nil).Once()

	others, err := NewUserService(zerolog.Nop(), repo).ListOtherUsers(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, others, 1)
	assert.Equal(t, "u2", others[0].ID)
	repo.AssertExpectations(t)
}

func TestUserService_GetUser(t *testing.T) {
	storeErr := errors.New("db is down")
	repo := new(userRepositoryMock)
	repo.On("GetByID", mock.Anything, "missing").Return(nil, repository.ErrNotFound).Once()
	repo.On("GetByID", mock.Anything, "broken").Return(nil, storeErr).Once()

	users := NewUserService(zerolog.Nop(), repo)

	_, err := users.GetUser(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = users.GetUser(context.Background(), "broken")
	assert.ErrorIs(t, err, storeErr)
	repo.AssertExpectations(t)
}
