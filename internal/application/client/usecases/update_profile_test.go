package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techile/fieldportal/internal/domain/client"
)

func makeClient(t *testing.T, id uint) *client.Client {
	t.Helper()
	c, err := client.NewClient(1, "marie@example.com", "Boulangerie Marie")
	require.NoError(t, err)
	c.SetID(id)
	return c
}

func TestUpdateProfileUseCase_Execute(t *testing.T) {
	c := makeClient(t, 7)
	repo := &mockClientRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*client.Client, error) {
			return c, nil
		},
	}
	uc := NewUpdateProfileUseCase(repo, testLogger())

	detail, err := uc.Execute(context.Background(), UpdateProfileCommand{
		ClientID:  7,
		FirstName: "Marie",
		LastName:  "Tremblay",
		Phone:     "418-555-0101",
		Address:   "12 rue Principale",
		City:      "Cap-aux-Meules",
	})

	require.NoError(t, err)
	assert.True(t, detail.CanPurchase)
	assert.Equal(t, 83, detail.ProfileCompletion)

	_, err = uc.Execute(context.Background(), UpdateProfileCommand{})
	assert.Error(t, err)
}

func TestValidateProfileUseCase_Execute(t *testing.T) {
	c := makeClient(t, 7)
	repo := &mockClientRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*client.Client, error) {
			return c, nil
		},
	}
	uc := NewValidateProfileUseCase(repo, testLogger())

	result, err := uc.Execute(context.Background(), ValidateProfileQuery{ClientID: 7})
	require.NoError(t, err)
	assert.False(t, result.IsComplete)
	assert.Equal(t, result.IsComplete, result.CanPurchase)
	assert.Len(t, result.MissingFields, 5)
	assert.Zero(t, result.Completion)
}

func TestAdjustCloudQuotaUseCase_Execute(t *testing.T) {
	c := makeClient(t, 7)
	repo := &mockClientRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*client.Client, error) {
			return c, nil
		},
	}
	uc := NewAdjustCloudQuotaUseCase(repo, testLogger())

	detail, err := uc.Execute(context.Background(), AdjustCloudQuotaCommand{
		ClientID: 7, QuotaGB: 250, UsedGB: 40,
	})
	require.NoError(t, err)
	assert.Equal(t, 250.0, detail.CloudQuotaGB)
	assert.Equal(t, 40.0, detail.CloudUsedGB)

	// Negative values leave the current numbers alone.
	detail, err = uc.Execute(context.Background(), AdjustCloudQuotaCommand{
		ClientID: 7, QuotaGB: -1, UsedGB: 55,
	})
	require.NoError(t, err)
	assert.Equal(t, 250.0, detail.CloudQuotaGB)
	assert.Equal(t, 55.0, detail.CloudUsedGB)
}

func TestSuspendClientUseCase_Execute(t *testing.T) {
	c := makeClient(t, 7)
	repo := &mockClientRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*client.Client, error) {
			return c, nil
		},
	}
	publisher := &mockEventPublisher{}
	uc := NewSuspendClientUseCase(repo, publisher, testLogger())

	detail, err := uc.Execute(context.Background(), SuspendClientCommand{ClientID: 7, Action: ActionSuspend})
	require.NoError(t, err)
	assert.Equal(t, "suspended", detail.Status)
	require.Len(t, publisher.Published, 1)

	detail, err = uc.Execute(context.Background(), SuspendClientCommand{ClientID: 7, Action: ActionActivate})
	require.NoError(t, err)
	assert.Equal(t, "active", detail.Status)

	detail, err = uc.Execute(context.Background(), SuspendClientCommand{ClientID: 7, Action: ActionCancel})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", detail.Status)

	_, err = uc.Execute(context.Background(), SuspendClientCommand{ClientID: 7, Action: "freeze"})
	assert.Error(t, err)
}
