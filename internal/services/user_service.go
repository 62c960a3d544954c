package services

import (
	"context"

	"go.uber.org/zap"

	"promarket.com/promarket/internal/constants"
	model "promarket.com/promarket/internal/models"
	repository "promarket.com/promarket/internal/repositories"
)

type UserService struct {
	users  *repository.UserRepository
	logger *zap.Logger
}

func NewUserService(users *repository.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

type ProfileInput struct {
	FirstName string
	LastName  string
	Phone     string
	Location  string
	Bio       string
}

func (s *UserService) GetUser(ctx context.Context, id string) (*model.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, input ProfileInput) (*model.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.Phone = input.Phone
	user.Location = input.Location
	user.Bio = input.Bio

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) DeleteAccount(ctx context.Context, userID string) error {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return err
	}

	if err := s.users.Delete(ctx, userID); err != nil {
		return err
	}
	s.logger.Info("account deleted", zap.String("user_id", userID))
	return nil
}

func (s *UserService) SearchUsers(
	ctx context.Context,
	search string,
	role constants.Role,
	status constants.UserStatus,
	limit, offset int,
) ([]model.User, int64, error) {
	return s.users.Search(ctx, search, role, status, limit, offset)
}

// AdminUpdateInput is the moderation surface: name, role and status.
type AdminUpdateInput struct {
	FirstName string
	LastName  string
	Role      constants.Role
	Status    constants.UserStatus
}

func (s *UserService) AdminUpdateUser(ctx context.Context, id string, input AdminUpdateInput) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.Role = input.Role
	user.Status = input.Status

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) AdminDeleteUser(ctx context.Context, id string) error {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}
	return s.users.Delete(ctx, id)
}
