package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techile/fieldportal/internal/domain/client"
	"github.com/techile/fieldportal/internal/domain/website"
)

func purchasingClient(t *testing.T, id uint) *client.Client {
	t.Helper()
	c, err := client.NewClient(1, "emile@example.com", "Café Chez Émile")
	require.NoError(t, err)
	c.SetID(id)
	c.UpdateProfile(client.ProfileUpdate{
		CompanyName: "Café Chez Émile",
		FirstName:   "Émile",
		LastName:    "Arseneau",
		Phone:       "418-555-0199",
		Address:     "8 chemin des Caps",
		City:        "Fatima",
	})
	return c
}

func TestCreateWebsiteUseCase_Execute(t *testing.T) {
	t.Run("creates a planning project with a slugified subdomain", func(t *testing.T) {
		clientRepo := &mockClientRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*client.Client, error) {
				return purchasingClient(t, 7), nil
			},
		}
		var saved *website.WebsiteProject
		websiteRepo := &mockWebsiteRepository{
			FindBySubdomainFunc: func(ctx context.Context, subdomain string) (*website.WebsiteProject, error) {
				return nil, assert.AnError
			},
			SaveFunc: func(ctx context.Context, w *website.WebsiteProject) error {
				w.SetID(3)
				saved = w
				return nil
			},
		}
		uc := NewCreateWebsiteUseCase(websiteRepo, clientRepo, testLogger())

		detail, err := uc.Execute(context.Background(), CreateWebsiteCommand{
			ClientID: 7,
			Name:     "Café Chez Émile",
			Type:     "vitrine",
		})
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, "cafe-chez-emile", detail.Subdomain)
		assert.Equal(t, "planning", detail.Status)
		assert.False(t, detail.IsLive)
	})

	t.Run("rejects a client with an incomplete profile", func(t *testing.T) {
		clientRepo := &mockClientRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*client.Client, error) {
				c, err := client.NewClient(1, "new@example.com", "")
				require.NoError(t, err)
				c.SetID(8)
				return c, nil
			},
		}
		uc := NewCreateWebsiteUseCase(&mockWebsiteRepository{}, clientRepo, testLogger())

		_, err := uc.Execute(context.Background(), CreateWebsiteCommand{
			ClientID: 8,
			Name:     "Nouveau Site",
			Type:     "pme",
		})
		assert.Error(t, err)
	})

	t.Run("rejects a taken subdomain", func(t *testing.T) {
		clientRepo := &mockClientRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*client.Client, error) {
				return purchasingClient(t, 7), nil
			},
		}
		taken, err := website.NewWebsiteProject(9, "Café Chez Émile", "vitrine", "", "")
		require.NoError(t, err)
		websiteRepo := &mockWebsiteRepository{
			FindBySubdomainFunc: func(ctx context.Context, subdomain string) (*website.WebsiteProject, error) {
				return taken, nil
			},
		}
		uc := NewCreateWebsiteUseCase(websiteRepo, clientRepo, testLogger())

		_, err = uc.Execute(context.Background(), CreateWebsiteCommand{
			ClientID: 7,
			Name:     "Café Chez Émile",
			Type:     "vitrine",
		})
		assert.Error(t, err)
	})

	t.Run("rejects an unknown website type", func(t *testing.T) {
		uc := NewCreateWebsiteUseCase(&mockWebsiteRepository{}, &mockClientRepository{}, testLogger())
		_, err := uc.Execute(context.Background(), CreateWebsiteCommand{
			ClientID: 7,
			Name:     "Site",
			Type:     "blog",
		})
		assert.Error(t, err)
	})
}

func TestChangeWebsiteStatusUseCase_Execute(t *testing.T) {
	w, err := website.NewWebsiteProject(7, "Café Chez Émile", "vitrine", "", "")
	require.NoError(t, err)
	w.SetID(3)
	repo := &mockWebsiteRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*website.WebsiteProject, error) {
			return w, nil
		},
	}
	uc := NewChangeWebsiteStatusUseCase(repo, testLogger())

	detail, err := uc.Execute(context.Background(), ChangeWebsiteStatusCommand{WebsiteID: 3, NewStatus: "development"})
	require.NoError(t, err)
	assert.Equal(t, "development", detail.Status)

	// planning to live skips the pipeline.
	w2, err := website.NewWebsiteProject(7, "Autre Site", "pme", "", "")
	require.NoError(t, err)
	w2.SetID(4)
	repo.FindByIDFunc = func(ctx context.Context, id uint) (*website.WebsiteProject, error) {
		return w2, nil
	}
	_, err = uc.Execute(context.Background(), ChangeWebsiteStatusCommand{WebsiteID: 4, NewStatus: "live"})
	assert.Error(t, err)
}

func TestPublishPageUseCase_Execute(t *testing.T) {
	w, err := website.NewWebsiteProject(7, "Café Chez Émile", "vitrine", "", "")
	require.NoError(t, err)
	w.SetID(3)
	w.UpdateContent(website.Content{
		CompanyName: "Café Chez Émile",
		Pages: []website.Page{
			{Slug: "accueil", Title: "Accueil"},
			{Slug: "menu", Title: "Menu"},
		},
	})
	repo := &mockWebsiteRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*website.WebsiteProject, error) {
			return w, nil
		},
	}
	uc := NewPublishPageUseCase(repo, testLogger())

	detail, err := uc.Execute(context.Background(), PublishPageCommand{WebsiteID: 3, PageSlug: "menu", Published: true})
	require.NoError(t, err)
	assert.True(t, detail.Content.Pages[1].Published)
	assert.False(t, detail.Content.Pages[0].Published)

	_, err = uc.Execute(context.Background(), PublishPageCommand{WebsiteID: 3, PageSlug: "contact", Published: true})
	assert.Error(t, err)

	_, err = uc.Execute(context.Background(), PublishPageCommand{WebsiteID: 3, ClientID: 9, PageSlug: "menu"})
	assert.Error(t, err)
}
