package usecases

import (
	"context"
	"time"

	"github.com/techile/fieldportal/internal/domain/user"
	"github.com/techile/fieldportal/internal/shared/authorization"
	"github.com/techile/fieldportal/internal/shared/logger"
)

type mockUserRepository struct {
	SaveFunc        func(ctx context.Context, u *user.User) error
	UpdateFunc      func(ctx context.Context, u *user.User) error
	FindByIDFunc    func(ctx context.Context, id uint) (*user.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*user.User, error)
	ListByRoleFunc  func(ctx context.Context, role authorization.UserRole) ([]*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) ListByRole(ctx context.Context, role authorization.UserRole) ([]*user.User, error) {
	if m.ListByRoleFunc != nil {
		return m.ListByRoleFunc(ctx, role)
	}
	return nil, nil
}

type mockHasher struct{}

func (mockHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (mockHasher) Compare(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errMismatch
	}
	return nil
}

var errMismatch = &mismatchError{}

type mismatchError struct{}

func (*mismatchError) Error() string { return "password mismatch" }

type mockTokenIssuer struct {
	GenerateTokenFunc func(userID uint, email string, role authorization.UserRole) (string, time.Time, error)
}

func (m *mockTokenIssuer) GenerateToken(userID uint, email string, role authorization.UserRole) (string, time.Time, error) {
	if m.GenerateTokenFunc != nil {
		return m.GenerateTokenFunc(userID, email, role)
	}
	return "token", time.Now().Add(time.Hour), nil
}

type mockRateLimiter struct {
	AllowFunc func(ctx context.Context, key string) (bool, error)
	resets    []string
}

func (m *mockRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if m.AllowFunc != nil {
		return m.AllowFunc(ctx, key)
	}
	return true, nil
}

func (m *mockRateLimiter) Reset(ctx context.Context, key string) error {
	m.resets = append(m.resets, key)
	return nil
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}
