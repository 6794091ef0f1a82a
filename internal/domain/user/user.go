// Package user models portal accounts and their roles.
package user

import (
	"strings"
	"time"

	"github.com/techile/fieldportal/internal/shared/authorization"
	"github.com/techile/fieldportal/internal/shared/errors"
)

// User is a portal account. Clients additionally own a client record keyed
// by this user.
type User struct {
	id           uint
	email        string
	passwordHash string
	displayName  string
	role         authorization.UserRole
	active       bool
	lastLoginAt  *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates an active account. The password hash must already be
// computed; this package never sees plaintext passwords.
func NewUser(email, passwordHash, displayName string, role authorization.UserRole) (*User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, errors.NewValidationError("email is required")
	}
	if passwordHash == "" {
		return nil, errors.NewValidationError("password hash is required")
	}
	if !role.IsValid() {
		return nil, errors.NewValidationError("invalid role", role.String())
	}

	now := time.Now()
	return &User{
		email:        email,
		passwordHash: passwordHash,
		displayName:  strings.TrimSpace(displayName),
		role:         role,
		active:       true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser rebuilds a user from persistence.
func ReconstructUser(
	id uint,
	email, passwordHash, displayName string,
	role authorization.UserRole,
	active bool,
	lastLoginAt *time.Time,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		displayName:  displayName,
		role:         role,
		active:       active,
		lastLoginAt:  lastLoginAt,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uint                       { return u.id }
func (u *User) Email() string                  { return u.email }
func (u *User) PasswordHash() string           { return u.passwordHash }
func (u *User) DisplayName() string            { return u.displayName }
func (u *User) Role() authorization.UserRole   { return u.role }
func (u *User) IsActive() bool                 { return u.active }
func (u *User) LastLoginAt() *time.Time        { return u.lastLoginAt }
func (u *User) CreatedAt() time.Time           { return u.createdAt }
func (u *User) UpdatedAt() time.Time           { return u.updatedAt }

// SetID sets the ID after persistence.
func (u *User) SetID(id uint) { u.id = id }

// IsAdmin reports whether the account passes admin gates.
func (u *User) IsAdmin() bool { return u.role.IsAdmin() }

// IsTechnician reports whether the account passes technician gates.
func (u *User) IsTechnician() bool { return u.role.IsTechnician() }

// ChangePassword swaps in a new password hash.
func (u *User) ChangePassword(passwordHash string) error {
	if passwordHash == "" {
		return errors.NewValidationError("password hash is required")
	}
	u.passwordHash = passwordHash
	u.updatedAt = time.Now()
	return nil
}

// ChangeRole reassigns the account role.
func (u *User) ChangeRole(role authorization.UserRole) error {
	if !role.IsValid() {
		return errors.NewValidationError("invalid role", role.String())
	}
	u.role = role
	u.updatedAt = time.Now()
	return nil
}

// RecordLogin stamps a successful login.
func (u *User) RecordLogin(now time.Time) {
	u.lastLoginAt = &now
	u.updatedAt = now
}

// Deactivate blocks logins without deleting the account.
func (u *User) Deactivate() {
	u.active = false
	u.updatedAt = time.Now()
}

// Activate restores a deactivated account.
func (u *User) Activate() {
	u.active = true
	u.updatedAt = time.Now()
}
