package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyClientID  = "client_id"
	ContextKeyRequestID = "request_id"

	// Cloud storage free tier boundary in GB. Storage at or below this
	// amount is covered by the base cloud price.
	CloudFreeTierGB = 50

	// Quote validity window in days.
	QuoteValidityDays = 30

	// Default invoice payment window in days.
	InvoiceDueDays = 30

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
)
