package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/duhduh/blog-api/internal/core/domain"
	"github.com/duhduh/blog-api/internal/core/ports"
)

// AuthService implements signup, login and current-user resolution.
type AuthService struct {
	users  ports.UserRepository
	tokens *TokenManager
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens *TokenManager, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, logger: logger}
}

// Signup registers a new user. The email pre-check gives the common case
// a clean failure; the unique constraint on users.email settles concurrent
// signups, and the repository maps that violation to the same error.
func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (*domain.User, error) {
	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", created.Email).Int64("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Login verifies credentials and issues an access token with the user's
// email as subject. An unknown email and a wrong password return the same
// error so callers cannot probe which addresses are registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("email", user.Email).Msg("user logged in")
	return token, nil
}

// CurrentUser resolves a bearer token to a live user. The lookup after
// verification is mandatory: a token whose subject no longer exists must
// not act, however valid its signature.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	subject, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}
	return user, nil
}
