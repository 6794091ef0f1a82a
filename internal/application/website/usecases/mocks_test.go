package usecases

import (
	"context"

	"github.com/techile/fieldportal/internal/domain/client"
	clvo "github.com/techile/fieldportal/internal/domain/client/valueobjects"
	"github.com/techile/fieldportal/internal/domain/website"
	"github.com/techile/fieldportal/internal/shared/logger"
)

type mockWebsiteRepository struct {
	SaveFunc            func(ctx context.Context, w *website.WebsiteProject) error
	UpdateFunc          func(ctx context.Context, w *website.WebsiteProject) error
	FindByIDFunc        func(ctx context.Context, id uint) (*website.WebsiteProject, error)
	FindBySubdomainFunc func(ctx context.Context, subdomain string) (*website.WebsiteProject, error)
	ListFunc            func(ctx context.Context, filter website.ListFilter, offset, limit int, orderBy string) ([]*website.WebsiteProject, int64, error)
}

func (m *mockWebsiteRepository) Save(ctx context.Context, w *website.WebsiteProject) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, w)
	}
	return nil
}

func (m *mockWebsiteRepository) Update(ctx context.Context, w *website.WebsiteProject) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, w)
	}
	return nil
}

func (m *mockWebsiteRepository) FindByID(ctx context.Context, id uint) (*website.WebsiteProject, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockWebsiteRepository) FindBySubdomain(ctx context.Context, subdomain string) (*website.WebsiteProject, error) {
	if m.FindBySubdomainFunc != nil {
		return m.FindBySubdomainFunc(ctx, subdomain)
	}
	return nil, nil
}

func (m *mockWebsiteRepository) List(ctx context.Context, filter website.ListFilter, offset, limit int, orderBy string) ([]*website.WebsiteProject, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, offset, limit, orderBy)
	}
	return nil, 0, nil
}

type mockClientRepository struct {
	FindByIDFunc func(ctx context.Context, id uint) (*client.Client, error)
}

func (m *mockClientRepository) Save(ctx context.Context, c *client.Client) error   { return nil }
func (m *mockClientRepository) Update(ctx context.Context, c *client.Client) error { return nil }

func (m *mockClientRepository) FindByID(ctx context.Context, id uint) (*client.Client, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockClientRepository) FindByUserID(ctx context.Context, userID uint) (*client.Client, error) {
	return nil, nil
}

func (m *mockClientRepository) FindByEmail(ctx context.Context, email string) (*client.Client, error) {
	return nil, nil
}

func (m *mockClientRepository) List(ctx context.Context, filter client.ListFilter, offset, limit int, orderBy string) ([]*client.Client, int64, error) {
	return nil, 0, nil
}

func (m *mockClientRepository) CountByStatus(ctx context.Context, status clvo.ClientStatus) (int64, error) {
	return 0, nil
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}
