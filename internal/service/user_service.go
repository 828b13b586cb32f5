package service

import (
	"context"

	"creatorhub/internal/models"
	"creatorhub/internal/repository"
)

type UserService struct {
	userRepo repository.UserRepository
}

type UpdateProfileInput struct {
	UserID   uint
	Username string
	Bio      string
	Avatar   string
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) ListUsers(ctx context.Context, role models.UserRole, limit, offset int) ([]models.User, error) {
	switch role {
	case "", models.RoleCreator, models.RoleBrand, models.RoleAdmin:
	default:
		return nil, models.NewValidationError("Invalid role filter")
	}
	return s.userRepo.List(ctx, role, normalizeLimit(limit), offset)
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	const maxBioLen = 500
	const maxUsernameLen = 30

	if in.Username != "" {
		if len(in.Username) > maxUsernameLen {
			return nil, models.NewValidationError("Username too long (max 30 characters)")
		}
		user.Username = in.Username
	}
	if in.Bio != "" {
		if len(in.Bio) > maxBioLen {
			return nil, models.NewValidationError("Bio too long (max 500 characters)")
		}
		user.Bio = in.Bio
	}
	if in.Avatar != "" {
		user.Avatar = in.Avatar
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// SetUserRole changes an account's role. Admins cannot change their own
// role, which keeps at least the acting admin in place.
func (s *UserService) SetUserRole(ctx context.Context, adminID, targetID uint, role models.UserRole) (*models.User, error) {
	switch role {
	case models.RoleCreator, models.RoleBrand, models.RoleAdmin:
	default:
		return nil, models.NewValidationError("Invalid role")
	}

	if adminID == targetID {
		return nil, models.NewForbiddenError("You cannot change your own role")
	}

	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	user.Role = role
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// SetUserStatus suspends or reactivates an account.
func (s *UserService) SetUserStatus(ctx context.Context, targetID uint, status models.UserStatus) (*models.User, error) {
	switch status {
	case models.UserStatusActive, models.UserStatusSuspended:
	default:
		return nil, models.NewValidationError("Invalid user status")
	}

	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	user.Status = status
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
