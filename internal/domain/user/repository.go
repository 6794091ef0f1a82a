package user

import (
	"context"

	"github.com/techile/fieldportal/internal/shared/authorization"
)

// Repository persists portal accounts.
type Repository interface {
	Save(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	ListByRole(ctx context.Context, role authorization.UserRole) ([]*User, error)
}
