package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techile/fieldportal/internal/domain/client/valueobjects"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	c, err := NewClient(1, "marie@example.com", "Boulangerie Marie")
	require.NoError(t, err)
	c.SetID(42)
	return c
}

func TestNewClient(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		c, err := NewClient(7, "  Marie@Example.COM ", " Boulangerie Marie ")
		require.NoError(t, err)
		assert.Equal(t, uint(7), c.UserID())
		assert.Equal(t, "marie@example.com", c.Email())
		assert.Equal(t, "Boulangerie Marie", c.CompanyName())
		assert.Equal(t, valueobjects.StatusActive, c.Status())
		assert.Equal(t, valueobjects.PriorityNormal, c.Priority())
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := NewClient(0, "a@b.com", "")
		assert.Error(t, err)
	})

	t.Run("missing email", func(t *testing.T) {
		_, err := NewClient(1, "   ", "")
		assert.Error(t, err)
	})
}

func TestClientProfileGate(t *testing.T) {
	c := newTestClient(t)

	assert.False(t, c.IsProfileComplete())
	assert.False(t, c.CanPurchase())
	assert.ElementsMatch(t,
		[]string{"firstName", "lastName", "phone", "address", "city"},
		c.MissingProfileFields())

	c.UpdateProfile(ProfileUpdate{
		CompanyName: "Boulangerie Marie",
		FirstName:   "Marie",
		LastName:    "Tremblay",
		Phone:       "418-555-0101",
		Address:     "12 rue Principale",
		City:        "Cap-aux-Meules",
	})

	// Postal code is still empty but it does not gate purchasing.
	assert.True(t, c.IsProfileComplete())
	assert.True(t, c.CanPurchase())
	assert.Empty(t, c.MissingProfileFields())
}

func TestClientProfileCompletionPercentage(t *testing.T) {
	c := newTestClient(t)
	assert.Equal(t, 0, c.ProfileCompletionPercentage())

	c.UpdateProfile(ProfileUpdate{
		FirstName: "Marie",
		LastName:  "Tremblay",
		Phone:     "418-555-0101",
	})
	assert.Equal(t, 50, c.ProfileCompletionPercentage())

	c.UpdateProfile(ProfileUpdate{
		FirstName: "Marie",
		LastName:  "Tremblay",
		Phone:     "418-555-0101",
		Address:   "12 rue Principale",
		City:      "Cap-aux-Meules",
	})
	// Gate passes at 5 of 6 fields; percentage reads 83.
	assert.Equal(t, 83, c.ProfileCompletionPercentage())
	assert.True(t, c.IsProfileComplete())

	c.UpdateProfile(ProfileUpdate{
		FirstName:  "Marie",
		LastName:   "Tremblay",
		Phone:      "418-555-0101",
		Address:    "12 rue Principale",
		City:       "Cap-aux-Meules",
		PostalCode: "G4T 1A1",
	})
	assert.Equal(t, 100, c.ProfileCompletionPercentage())
}

func TestClientWhitespaceOnlyFieldsDoNotCount(t *testing.T) {
	c := newTestClient(t)
	c.UpdateProfile(ProfileUpdate{
		FirstName: "   ",
		LastName:  "Tremblay",
		Phone:     "418-555-0101",
		Address:   "12 rue Principale",
		City:      "Cap-aux-Meules",
	})
	assert.False(t, c.IsProfileComplete())
	assert.Contains(t, c.MissingProfileFields(), "firstName")
}

func TestClientStatusTransitions(t *testing.T) {
	c := newTestClient(t)

	require.NoError(t, c.Suspend())
	assert.Equal(t, valueobjects.StatusSuspended, c.Status())
	assert.False(t, c.IsActive())

	require.NoError(t, c.Activate())
	assert.True(t, c.IsActive())

	c.Cancel()
	assert.Equal(t, valueobjects.StatusCancelled, c.Status())
	assert.Error(t, c.Suspend())
	assert.Error(t, c.Activate())
}

func TestSuspendedClientCannotPurchase(t *testing.T) {
	c := newTestClient(t)
	c.UpdateProfile(ProfileUpdate{
		FirstName: "Marie", LastName: "Tremblay", Phone: "418-555-0101",
		Address: "12 rue Principale", City: "Cap-aux-Meules",
	})
	require.True(t, c.CanPurchase())

	require.NoError(t, c.Suspend())
	assert.False(t, c.CanPurchase())
	assert.True(t, c.IsProfileComplete())
}

func TestClientCloudQuota(t *testing.T) {
	c := newTestClient(t)

	require.NoError(t, c.SetCloudQuota(100))
	require.NoError(t, c.RecordCloudUsage(25))
	assert.Equal(t, 25.0, c.CloudUsagePercent())

	require.NoError(t, c.RecordCloudUsage(120))
	assert.Equal(t, 120.0, c.CloudUsagePercent())

	assert.Error(t, c.SetCloudQuota(-1))
	assert.Error(t, c.RecordCloudUsage(-1))
}

func TestClientCloudUsagePercentWithoutQuota(t *testing.T) {
	c := newTestClient(t)
	require.NoError(t, c.RecordCloudUsage(10))
	assert.Zero(t, c.CloudUsagePercent())
}

func TestClientDisplayName(t *testing.T) {
	c := newTestClient(t)
	assert.Equal(t, "Boulangerie Marie", c.DisplayName())

	c.UpdateProfile(ProfileUpdate{FirstName: "Marie", LastName: "Tremblay"})
	assert.Equal(t, "Marie Tremblay", c.DisplayName())

	c.UpdateProfile(ProfileUpdate{})
	assert.Equal(t, "marie@example.com", c.DisplayName())
}

func TestReconstructClient(t *testing.T) {
	now := time.Now()
	c := ReconstructClient(
		9, 3,
		"Garage Luc", "Luc", "Arseneau", "luc@example.com", "418-555-0102",
		"8 chemin des Caps", "Fatima", "QC", "G4T 2B2", true,
		valueobjects.StatusActive, valueobjects.PriorityHigh,
		"pays late", 250, 60, now, now,
	)
	assert.Equal(t, uint(9), c.ID())
	assert.Equal(t, uint(3), c.UserID())
	assert.Equal(t, valueobjects.PriorityHigh, c.Priority())
	assert.Equal(t, "pays late", c.Notes())
	assert.Equal(t, 24.0, c.CloudUsagePercent())
	assert.True(t, c.IsInIslands())
	assert.True(t, c.CanPurchase())
}

func TestValidateProfile(t *testing.T) {
	c := newTestClient(t)

	v := c.ValidateProfile()
	assert.False(t, v.IsComplete)
	assert.Equal(t, v.IsComplete, v.CanPurchase)
	assert.Len(t, v.MissingFields, 5)

	c.UpdateProfile(ProfileUpdate{
		FirstName: "Marie", LastName: "Tremblay", Phone: "418-555-0101",
		Address: "12 rue Principale", City: "Cap-aux-Meules",
	})
	v = c.ValidateProfile()
	assert.True(t, v.IsComplete)
	assert.True(t, v.CanPurchase)
	assert.Empty(t, v.MissingFields)
}
