package notification

import "context"

// Repository persists notifications.
type Repository interface {
	Save(ctx context.Context, n *Notification) error
	Update(ctx context.Context, n *Notification) error
	FindByID(ctx context.Context, id uint) (*Notification, error)
	ListByUser(ctx context.Context, userID uint, unreadOnly bool, offset, limit int) ([]*Notification, int64, error)
	MarkAllRead(ctx context.Context, userID uint) error
}
