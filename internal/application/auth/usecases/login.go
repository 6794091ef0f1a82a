package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/techile/fieldportal/internal/domain/user"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token       string    `json:"token"`
	ExpiresAt   time.Time `json:"expires_at"`
	UserID      uint      `json:"user_id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenIssuer
	limiter  LoginRateLimiter
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	limiter LoginRateLimiter,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		limiter:  limiter,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	if uc.limiter != nil {
		allowed, err := uc.limiter.Allow(ctx, email)
		if err != nil {
			// Limiter outage must not lock everyone out.
			uc.logger.Warnw("login rate limiter unavailable", "error", err)
		} else if !allowed {
			uc.logger.Warnw("login rate limited", "email", email)
			return nil, errors.NewTooManyRequestsError("too many login attempts, try again later")
		}
	}

	u, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		uc.logger.Warnw("login failed", "email", email, "reason", "unknown user")
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}
	if !u.IsActive() {
		uc.logger.Warnw("login failed", "email", email, "reason", "account deactivated")
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}
	if err := uc.hasher.Compare(u.PasswordHash(), cmd.Password); err != nil {
		uc.logger.Warnw("login failed", "email", email, "reason", "bad password")
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	token, expiresAt, err := uc.tokens.GenerateToken(u.ID(), u.Email(), u.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue token")
	}

	u.RecordLogin(time.Now())
	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Warnw("failed to record login time", "user_id", u.ID(), "error", err)
	}
	if uc.limiter != nil {
		if err := uc.limiter.Reset(ctx, email); err != nil {
			uc.logger.Warnw("failed to reset login limiter", "email", email, "error", err)
		}
	}

	uc.logger.Infow("user logged in", "user_id", u.ID(), "role", u.Role())
	return &LoginResult{
		Token:       token,
		ExpiresAt:   expiresAt,
		UserID:      u.ID(),
		Email:       u.Email(),
		DisplayName: u.DisplayName(),
		Role:        u.Role().String(),
	}, nil
}
