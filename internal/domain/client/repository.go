package client

import (
	"context"

	"github.com/techile/fieldportal/internal/domain/client/valueobjects"
)

// ListFilter narrows client list queries. Zero values mean no filtering.
type ListFilter struct {
	Status   valueobjects.ClientStatus
	Priority valueobjects.ClientPriority
	Search   string
}

// Repository persists client accounts.
type Repository interface {
	Save(ctx context.Context, c *Client) error
	Update(ctx context.Context, c *Client) error
	FindByID(ctx context.Context, id uint) (*Client, error)
	FindByUserID(ctx context.Context, userID uint) (*Client, error)
	FindByEmail(ctx context.Context, email string) (*Client, error)
	List(ctx context.Context, filter ListFilter, offset, limit int, orderBy string) ([]*Client, int64, error)
	CountByStatus(ctx context.Context, status valueobjects.ClientStatus) (int64, error)
}
