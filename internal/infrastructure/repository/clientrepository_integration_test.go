package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/techile/fieldportal/internal/domain/client"
	"github.com/techile/fieldportal/internal/domain/client/valueobjects"
	"github.com/techile/fieldportal/internal/infrastructure/persistence/models"
	"github.com/techile/fieldportal/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = conn.AutoMigrate(&models.ClientModel{})
	require.NoError(t, err)

	return conn
}

func createTestClient(t *testing.T, userID uint, email, company string) *client.Client {
	c, err := client.NewClient(userID, email, company)
	require.NoError(t, err)
	return c
}

func TestClientRepository_Save(t *testing.T) {
	conn := setupTestDB(t)
	repo := NewClientRepository(conn, logger.NewLogger())
	ctx := context.Background()

	t.Run("save new client successfully", func(t *testing.T) {
		c := createTestClient(t, 1, "gaspard@example.com", "Pêcheries Gaspard")

		err := repo.Save(ctx, c)
		assert.NoError(t, err)
		assert.NotZero(t, c.ID())
	})

	t.Run("round trip preserves profile fields", func(t *testing.T) {
		c := createTestClient(t, 2, "aurelie@example.com", "Auberge du Havre")
		c.UpdateProfile(client.ProfileUpdate{
			CompanyName: "Auberge du Havre",
			FirstName:   "Aurélie",
			LastName:    "Leblanc",
			Phone:       "418-555-0142",
			Address:     "12 chemin des Caps",
			City:        "Fatima",
			Province:    "QC",
			PostalCode:  "G4T 2H4",
			IsInIslands: true,
		})
		require.NoError(t, repo.Save(ctx, c))

		found, err := repo.FindByID(ctx, c.ID())
		require.NoError(t, err)
		assert.Equal(t, "Aurélie", found.FirstName())
		assert.Equal(t, "Fatima", found.City())
		assert.True(t, found.IsInIslands())
		assert.Equal(t, valueobjects.StatusActive, found.Status())
	})

	t.Run("duplicate user id should fail", func(t *testing.T) {
		c1 := createTestClient(t, 10, "first@example.com", "First")
		require.NoError(t, repo.Save(ctx, c1))

		c2 := createTestClient(t, 10, "second@example.com", "Second")
		err := repo.Save(ctx, c2)
		assert.Error(t, err)
	})
}

func TestClientRepository_FindByUserID(t *testing.T) {
	conn := setupTestDB(t)
	repo := NewClientRepository(conn, logger.NewLogger())
	ctx := context.Background()

	c := createTestClient(t, 42, "owner@example.com", "Chez Ti-Louis")
	require.NoError(t, repo.Save(ctx, c))

	t.Run("finds existing client", func(t *testing.T) {
		found, err := repo.FindByUserID(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, c.ID(), found.ID())
		assert.Equal(t, "owner@example.com", found.Email())
	})

	t.Run("missing user id returns not found", func(t *testing.T) {
		_, err := repo.FindByUserID(ctx, 9999)
		assert.Error(t, err)
	})
}

func TestClientRepository_Update(t *testing.T) {
	conn := setupTestDB(t)
	repo := NewClientRepository(conn, logger.NewLogger())
	ctx := context.Background()

	t.Run("persists status change", func(t *testing.T) {
		c := createTestClient(t, 7, "suspend@example.com", "Garage Arseneau")
		require.NoError(t, repo.Save(ctx, c))

		require.NoError(t, c.Suspend())
		require.NoError(t, repo.Update(ctx, c))

		found, err := repo.FindByID(ctx, c.ID())
		require.NoError(t, err)
		assert.Equal(t, valueobjects.StatusSuspended, found.Status())
	})

	t.Run("persists cloud quota adjustment", func(t *testing.T) {
		c := createTestClient(t, 8, "cloud@example.com", "Boulangerie Madelon")
		require.NoError(t, repo.Save(ctx, c))

		require.NoError(t, c.SetCloudQuota(100))
		require.NoError(t, c.RecordCloudUsage(37.5))
		require.NoError(t, repo.Update(ctx, c))

		found, err := repo.FindByID(ctx, c.ID())
		require.NoError(t, err)
		assert.Equal(t, float64(100), found.CloudQuotaGB())
		assert.Equal(t, 37.5, found.CloudUsedGB())
	})
}

func TestClientRepository_List(t *testing.T) {
	conn := setupTestDB(t)
	repo := NewClientRepository(conn, logger.NewLogger())
	ctx := context.Background()

	seed := []struct {
		userID  uint
		email   string
		company string
		suspend bool
	}{
		{1, "a@example.com", "Homardier Bleu", false},
		{2, "b@example.com", "Cantine du Quai", false},
		{3, "c@example.com", "Homard Express", true},
	}
	for _, s := range seed {
		c := createTestClient(t, s.userID, s.email, s.company)
		if s.suspend {
			require.NoError(t, c.Suspend())
		}
		require.NoError(t, repo.Save(ctx, c))
	}

	t.Run("list all", func(t *testing.T) {
		found, total, err := repo.List(ctx, client.ListFilter{}, 0, 10, "")
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, found, 3)
	})

	t.Run("filter by status", func(t *testing.T) {
		found, total, err := repo.List(ctx, client.ListFilter{Status: valueobjects.StatusSuspended}, 0, 10, "")
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, found, 1)
		assert.Equal(t, "Homard Express", found[0].CompanyName())
	})

	t.Run("search by company name", func(t *testing.T) {
		found, total, err := repo.List(ctx, client.ListFilter{Search: "Homard"}, 0, 10, "")
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, found, 2)
	})

	t.Run("pagination", func(t *testing.T) {
		found, total, err := repo.List(ctx, client.ListFilter{}, 0, 2, "")
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, found, 2)

		rest, _, err := repo.List(ctx, client.ListFilter{}, 2, 2, "")
		require.NoError(t, err)
		assert.Len(t, rest, 1)
	})

	t.Run("count by status", func(t *testing.T) {
		active, err := repo.CountByStatus(ctx, valueobjects.StatusActive)
		require.NoError(t, err)
		assert.Equal(t, int64(2), active)
	})
}
