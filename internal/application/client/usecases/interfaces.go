package usecases

import "context"

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashedPassword, password string) error
}

// RegisterClientExecutor registers new client accounts.
type RegisterClientExecutor interface {
	Execute(ctx context.Context, cmd RegisterClientCommand) (*RegisterClientResult, error)
}

// GetClientExecutor fetches a single client.
type GetClientExecutor interface {
	Execute(ctx context.Context, query GetClientQuery) (*ClientDetail, error)
}

// ListClientsExecutor lists clients for the back office.
type ListClientsExecutor interface {
	Execute(ctx context.Context, query ListClientsQuery) (*ListClientsResult, error)
}

// UpdateProfileExecutor edits a client profile.
type UpdateProfileExecutor interface {
	Execute(ctx context.Context, cmd UpdateProfileCommand) (*ClientDetail, error)
}

// ValidateProfileExecutor evaluates the purchase gate.
type ValidateProfileExecutor interface {
	Execute(ctx context.Context, query ValidateProfileQuery) (*ProfileValidationResult, error)
}

// AdjustCloudQuotaExecutor changes a client's storage allotment.
type AdjustCloudQuotaExecutor interface {
	Execute(ctx context.Context, cmd AdjustCloudQuotaCommand) (*ClientDetail, error)
}

// SuspendClientExecutor suspends or reactivates accounts.
type SuspendClientExecutor interface {
	Execute(ctx context.Context, cmd SuspendClientCommand) (*ClientDetail, error)
}
