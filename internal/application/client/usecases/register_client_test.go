package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techile/fieldportal/internal/domain/client"
	"github.com/techile/fieldportal/internal/domain/pricing"
	"github.com/techile/fieldportal/internal/domain/subscription"
	"github.com/techile/fieldportal/internal/domain/user"
)

func TestRegisterClientUseCase_Execute(t *testing.T) {
	t.Run("creates user, client, and base subscription", func(t *testing.T) {
		var savedUser *user.User
		var savedClient *client.Client
		var savedSub *subscription.Subscription

		users := &mockUserRepository{
			SaveFunc: func(ctx context.Context, u *user.User) error {
				u.SetID(2)
				savedUser = u
				return nil
			},
		}
		clients := &mockClientRepository{
			SaveFunc: func(ctx context.Context, c *client.Client) error {
				c.SetID(7)
				savedClient = c
				return nil
			},
		}
		subs := &mockSubscriptionRepository{
			SaveFunc: func(ctx context.Context, s *subscription.Subscription) error {
				s.SetID(4)
				savedSub = s
				return nil
			},
		}
		publisher := &mockEventPublisher{}
		uc := NewRegisterClientUseCase(
			clients, users, subs, &mockHasher{},
			&staticRateProvider{table: pricing.DefaultRateTable()},
			publisher, testLogger(),
		)

		result, err := uc.Execute(context.Background(), RegisterClientCommand{
			Email:       "marie@example.com",
			Password:    "motdepasse1",
			CompanyName: "Boulangerie Marie",
			FirstName:   "Marie",
			LastName:    "Tremblay",
		})

		require.NoError(t, err)
		assert.Equal(t, uint(7), result.ClientID)
		assert.Equal(t, uint(2), result.UserID)
		assert.Equal(t, "base", result.PlanTier)
		assert.Equal(t, 50.0, result.CloudQuotaGB)

		require.NotNil(t, savedUser)
		assert.Equal(t, "hashed:motdepasse1", savedUser.PasswordHash())
		assert.False(t, savedUser.IsAdmin())

		require.NotNil(t, savedClient)
		assert.Equal(t, uint(2), savedClient.UserID())
		assert.Equal(t, 50.0, savedClient.CloudQuotaGB())

		require.NotNil(t, savedSub)
		assert.Equal(t, uint(7), savedSub.ClientID())
		assert.Equal(t, 25.00, savedSub.Price())

		require.Len(t, publisher.Published, 1)
		assert.Equal(t, client.EventClientCreated, publisher.Published[0].GetEventType())
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		existing, err := user.NewUser("marie@example.com", "h", "", "client")
		require.NoError(t, err)
		users := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
				return existing, nil
			},
		}
		uc := NewRegisterClientUseCase(
			&mockClientRepository{}, users, &mockSubscriptionRepository{},
			&mockHasher{}, nil, nil, testLogger(),
		)

		_, err = uc.Execute(context.Background(), RegisterClientCommand{
			Email: "marie@example.com", Password: "motdepasse1",
		})
		assert.Error(t, err)
	})

	t.Run("short password rejected", func(t *testing.T) {
		uc := NewRegisterClientUseCase(
			&mockClientRepository{}, &mockUserRepository{}, &mockSubscriptionRepository{},
			&mockHasher{}, nil, nil, testLogger(),
		)
		_, err := uc.Execute(context.Background(), RegisterClientCommand{
			Email: "a@b.com", Password: "court",
		})
		assert.Error(t, err)
	})
}
