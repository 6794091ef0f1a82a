package website

import (
	"context"

	"github.com/techile/fieldportal/internal/domain/website/valueobjects"
)

// ListFilter narrows website project list queries.
type ListFilter struct {
	ClientID uint
	Status   valueobjects.ProjectStatus
	Type     valueobjects.WebsiteType
}

// Repository persists website projects.
type Repository interface {
	Save(ctx context.Context, w *WebsiteProject) error
	Update(ctx context.Context, w *WebsiteProject) error
	FindByID(ctx context.Context, id uint) (*WebsiteProject, error)
	FindBySubdomain(ctx context.Context, subdomain string) (*WebsiteProject, error)
	List(ctx context.Context, filter ListFilter, offset, limit int, orderBy string) ([]*WebsiteProject, int64, error)
}
