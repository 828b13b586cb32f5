package service

import (
	"context"
	"testing"

	"creatorhub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfile(t *testing.T) {
	t.Run("updates provided fields only", func(t *testing.T) {
		repo := noopUserRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Username: "old", Bio: "old bio"}, nil
		}
		var saved *models.User
		repo.updateFn = func(_ context.Context, u *models.User) error {
			saved = u
			return nil
		}

		svc := NewUserService(repo)
		user, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{
			UserID: 4,
			Bio:    "new bio",
		})
		require.NoError(t, err)
		assert.Equal(t, "old", user.Username)
		assert.Equal(t, "new bio", user.Bio)
		require.NotNil(t, saved)
		assert.Equal(t, "new bio", saved.Bio)
	})

	t.Run("rejects oversized bio", func(t *testing.T) {
		svc := NewUserService(noopUserRepo())
		long := make([]byte, 501)
		for i := range long {
			long[i] = 'x'
		}

		_, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{
			UserID: 4,
			Bio:    string(long),
		})
		assertErrorCode(t, err, "VALIDATION_ERROR")
	})
}

func TestSetUserRole(t *testing.T) {
	t.Run("admin promotes a creator to brand", func(t *testing.T) {
		repo := noopUserRepo()
		var saved *models.User
		repo.updateFn = func(_ context.Context, u *models.User) error {
			saved = u
			return nil
		}

		svc := NewUserService(repo)
		user, err := svc.SetUserRole(context.Background(), 1, 7, models.RoleBrand)
		require.NoError(t, err)
		assert.Equal(t, models.RoleBrand, user.Role)
		require.NotNil(t, saved)
		assert.Equal(t, models.RoleBrand, saved.Role)
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		svc := NewUserService(noopUserRepo())
		_, err := svc.SetUserRole(context.Background(), 1, 7, models.UserRole("superuser"))
		assertErrorCode(t, err, "VALIDATION_ERROR")
	})

	t.Run("admin cannot change own role", func(t *testing.T) {
		svc := NewUserService(noopUserRepo())
		_, err := svc.SetUserRole(context.Background(), 1, 1, models.RoleCreator)
		assertErrorCode(t, err, "FORBIDDEN")
	})
}

func TestSetUserStatus(t *testing.T) {
	t.Run("suspend", func(t *testing.T) {
		repo := noopUserRepo()
		svc := NewUserService(repo)

		user, err := svc.SetUserStatus(context.Background(), 9, models.UserStatusSuspended)
		require.NoError(t, err)
		assert.Equal(t, models.UserStatusSuspended, user.Status)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		svc := NewUserService(noopUserRepo())
		_, err := svc.SetUserStatus(context.Background(), 9, models.UserStatus("banned"))
		assertErrorCode(t, err, "VALIDATION_ERROR")
	})
}
