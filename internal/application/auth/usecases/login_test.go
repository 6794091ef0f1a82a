package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techile/fieldportal/internal/domain/user"
	"github.com/techile/fieldportal/internal/shared/authorization"
)

func makeUser(t *testing.T, id uint, email, password string, role authorization.UserRole) *user.User {
	t.Helper()
	u, err := user.NewUser(email, "hashed:"+password, "Test User", role)
	require.NoError(t, err)
	u.SetID(id)
	return u
}

func TestLoginUseCase_Execute(t *testing.T) {
	t.Run("issues a token and records the login", func(t *testing.T) {
		u := makeUser(t, 5, "tech@techile.ca", "s3cret-pass", authorization.RoleTechnician)
		updated := false
		repo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
				assert.Equal(t, "tech@techile.ca", email)
				return u, nil
			},
			UpdateFunc: func(ctx context.Context, u *user.User) error {
				updated = true
				return nil
			},
		}
		limiter := &mockRateLimiter{}
		uc := NewLoginUseCase(repo, mockHasher{}, &mockTokenIssuer{}, limiter, testLogger())

		result, err := uc.Execute(context.Background(), LoginCommand{
			Email:    "  Tech@TechIle.CA ",
			Password: "s3cret-pass",
		})
		require.NoError(t, err)
		assert.Equal(t, "token", result.Token)
		assert.Equal(t, uint(5), result.UserID)
		assert.Equal(t, "technician", result.Role)
		assert.True(t, updated)
		assert.NotNil(t, u.LastLoginAt())
		assert.Equal(t, []string{"tech@techile.ca"}, limiter.resets)
	})

	t.Run("rejects a bad password", func(t *testing.T) {
		u := makeUser(t, 5, "tech@techile.ca", "s3cret-pass", authorization.RoleTechnician)
		repo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
				return u, nil
			},
		}
		uc := NewLoginUseCase(repo, mockHasher{}, &mockTokenIssuer{}, nil, testLogger())

		_, err := uc.Execute(context.Background(), LoginCommand{
			Email:    "tech@techile.ca",
			Password: "wrong",
		})
		assert.Error(t, err)
	})

	t.Run("rejects a deactivated account", func(t *testing.T) {
		u := makeUser(t, 5, "tech@techile.ca", "s3cret-pass", authorization.RoleTechnician)
		u.Deactivate()
		repo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
				return u, nil
			},
		}
		uc := NewLoginUseCase(repo, mockHasher{}, &mockTokenIssuer{}, nil, testLogger())

		_, err := uc.Execute(context.Background(), LoginCommand{
			Email:    "tech@techile.ca",
			Password: "s3cret-pass",
		})
		assert.Error(t, err)
	})

	t.Run("throttles after too many attempts", func(t *testing.T) {
		limiter := &mockRateLimiter{
			AllowFunc: func(ctx context.Context, key string) (bool, error) {
				return false, nil
			},
		}
		uc := NewLoginUseCase(&mockUserRepository{}, mockHasher{}, &mockTokenIssuer{}, limiter, testLogger())

		_, err := uc.Execute(context.Background(), LoginCommand{
			Email:    "tech@techile.ca",
			Password: "s3cret-pass",
		})
		assert.Error(t, err)
	})
}

func TestChangePasswordUseCase_Execute(t *testing.T) {
	u := makeUser(t, 5, "tech@techile.ca", "old-password", authorization.RoleTechnician)
	repo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return u, nil
		},
	}
	uc := NewChangePasswordUseCase(repo, mockHasher{}, testLogger())

	err := uc.Execute(context.Background(), ChangePasswordCommand{
		UserID:          5,
		CurrentPassword: "old-password",
		NewPassword:     "new-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "hashed:new-password", u.PasswordHash())

	err = uc.Execute(context.Background(), ChangePasswordCommand{
		UserID:          5,
		CurrentPassword: "old-password",
		NewPassword:     "another-one",
	})
	assert.Error(t, err)

	err = uc.Execute(context.Background(), ChangePasswordCommand{
		UserID:          5,
		CurrentPassword: "new-password",
		NewPassword:     "short",
	})
	assert.Error(t, err)
}
