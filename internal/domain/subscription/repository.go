package subscription

import (
	"context"

	"github.com/techile/fieldportal/internal/domain/subscription/valueobjects"
)

// Repository persists subscriptions. A client has at most one subscription;
// FindByClientID is the primary lookup.
type Repository interface {
	Save(ctx context.Context, s *Subscription) error
	Update(ctx context.Context, s *Subscription) error
	FindByID(ctx context.Context, id uint) (*Subscription, error)
	FindByClientID(ctx context.Context, clientID uint) (*Subscription, error)
	ListByStatus(ctx context.Context, status valueobjects.SubscriptionStatus) ([]*Subscription, error)
}
