package usecases

import (
	"context"
	"time"

	"github.com/techile/fieldportal/internal/shared/authorization"
)

// PasswordHasher hashes and verifies passwords. Compare returns an error
// when the password does not match the hash.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashedPassword, password string) error
}

// TokenIssuer mints signed access tokens carrying the user's role.
type TokenIssuer interface {
	GenerateToken(userID uint, email string, role authorization.UserRole) (string, time.Time, error)
}

// LoginRateLimiter throttles login attempts per key (normalized email).
// Allow reports whether another attempt may proceed; Reset clears the
// counter after a successful login.
type LoginRateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Reset(ctx context.Context, key string) error
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type ChangePasswordExecutor interface {
	Execute(ctx context.Context, cmd ChangePasswordCommand) error
}
