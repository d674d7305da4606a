package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/study-board/internal/repository"
)

type assertionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type authServiceImpl struct {
	logger        zerolog.Logger
	users         repository.UserRepository
	jwtIssuer     string
	jwtSigningKey []byte
	jwtTTL        time.Duration
}

func NewAuthService(
	logger zerolog.Logger,
	users repository.UserRepository,
	jwtIssuer string,
	jwtSigningKey []byte,
	jwtTTL time.Duration,
) AuthService {
	return &authServiceImpl{
		logger:        logger,
		users:         users,
		jwtIssuer:     jwtIssuer,
		jwtSigningKey: jwtSigningKey,
		jwtTTL:        jwtTTL,
	}
}

func (s *authServiceImpl) Authenticate(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Error().
				Str("username", username).
				Msg("user not found")
			return nil, ErrInvalidCredentials
		}

		s.logger.Error().
			Err(err).
			Str("username", username).
			Msg("failed to select user by username")
		return nil, err
	}
	s.logger.Debug().
		Str("user_id", user.ID).
		Str("username", user.Username).
		Msg("selected user")

	match, err := comparePassword(password, user.PasswordHash)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("user_id", user.ID).
			Msg("failed to compare password")
		return nil, err
	} else if !match {
		s.logger.Error().
			Str("user_id", user.ID).
			Msg("passwords do not match")
		return nil, ErrInvalidCredentials
	}

	assertion, expiresAt, err := s.generateAssertion(user.ID, user.Username)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to generate assertion")
		return nil, err
	}

	s.logger.Info().
		Str("user_id", user.ID).
		Time("expires_at", expiresAt).
		Msg("logged in")
	return &LoginResult{
		Assertion: assertion,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

func (s *authServiceImpl) Resolve(_ context.Context, assertion string) (Identity, error) {
	t, err := jwt.ParseWithClaims(
		assertion,
		&assertionClaims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.jwtSigningKey, nil
		},
		jwt.WithIssuer(s.jwtIssuer),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			s.logger.Debug().
				Err(err).
				Msg("assertion expired")
			return Identity{}, fmt.Errorf("%w: %w", ErrAssertionExpired, err)
		}

		s.logger.Debug().
			Err(err).
			Msg("failed to parse assertion")
		return Identity{}, fmt.Errorf("%w: %w", ErrInvalidAssertion, err)
	}

	claims, ok := t.Claims.(*assertionClaims)
	if !ok || claims.Subject == "" || claims.Username == "" {
		s.logger.Debug().Msg("assertion has no identity")
		return Identity{}, ErrInvalidAssertion
	}

	return Identity{
		UserID:   claims.Subject,
		Username: claims.Username,
	}, nil
}

func (s *authServiceImpl) generateAssertion(userID, username string) (string, time.Time, error) {
	tokenUUID, err := uuid.NewRandom()
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate id: %w", err)
	}

	now := time.Now()
	expiresAt := now.Add(s.jwtTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, assertionClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenUUID.String(),
			Issuer:    s.jwtIssuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})

	signed, err := token.SignedString(s.jwtSigningKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}
