package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"promarket.com/promarket/internal/auth"
	"promarket.com/promarket/internal/constants"
	apperrors "promarket.com/promarket/internal/errors"
	model "promarket.com/promarket/internal/models"
	repository "promarket.com/promarket/internal/repositories"
)

type AuthService struct {
	users     *repository.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    *zap.Logger
}

func NewAuthService(users *repository.UserRepository, jwtSecret string, tokenTTL time.Duration, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      constants.Role
}

// Register creates an active user and issues a token. Duplicate email is a
// conflict and leaves the directory untouched.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*model.User, string, error) {
	exists, err := s.users.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", apperrors.ErrEmailInUse
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Email:         input.Email,
		Password:      hash,
		Role:          input.Role,
		Status:        constants.UserActive,
		EmailVerified: true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := auth.GenerateToken(user.Email, string(user.Role), s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("user registered",
		zap.String("user_id", user.ID),
		zap.String("role", string(user.Role)),
	)
	return user, token, nil
}

// Login checks credentials, stamps lastLoginAt and issues a token. Bad email
// and bad password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}
	if !auth.CheckPassword(password, user.Password) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	user.LastLoginAt = &now
	if err := s.users.Update(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := auth.GenerateToken(user.Email, string(user.Role), s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Verify resolves a bearer token back to its user.
func (s *AuthService) Verify(ctx context.Context, token string) (*model.User, error) {
	email, _, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	return user, nil
}
