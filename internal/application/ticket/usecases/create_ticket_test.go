package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techile/fieldportal/internal/domain/ticket"
)

func TestCreateTicketUseCase_Execute(t *testing.T) {
	t.Run("successful creation publishes event", func(t *testing.T) {
		var saved *ticket.Ticket
		repo := &mockTicketRepository{
			SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				tk.SetID(11)
				saved = tk
				return nil
			},
		}
		publisher := &mockEventPublisher{}
		uc := NewCreateTicketUseCase(repo, publisher, testLogger())

		result, err := uc.Execute(context.Background(), CreateTicketCommand{
			ClientID:    1,
			Title:       "Réseau hors service",
			Description: "Plus d'accès internet depuis ce matin",
			Type:        "intervention",
			Priority:    "urgent",
		})

		require.NoError(t, err)
		assert.Equal(t, uint(11), result.TicketID)
		assert.Equal(t, "open", result.Status)
		assert.True(t, strings.HasPrefix(result.Number, "TKT-"))
		require.NotNil(t, saved)
		assert.True(t, saved.IsUrgent())
		require.Len(t, publisher.Published, 1)
		assert.Equal(t, ticket.EventTicketCreated, publisher.Published[0].GetEventType())
	})

	t.Run("validation failures", func(t *testing.T) {
		uc := NewCreateTicketUseCase(&mockTicketRepository{}, nil, testLogger())

		tests := []struct {
			name string
			cmd  CreateTicketCommand
		}{
			{"missing client", CreateTicketCommand{Title: "t", Type: "support", Priority: "low"}},
			{"blank title", CreateTicketCommand{ClientID: 1, Title: "  ", Type: "support", Priority: "low"}},
			{"bad type", CreateTicketCommand{ClientID: 1, Title: "t", Type: "hardware", Priority: "low"}},
			{"bad priority", CreateTicketCommand{ClientID: 1, Title: "t", Type: "support", Priority: "asap"}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := uc.Execute(context.Background(), tt.cmd)
				assert.Error(t, err)
			})
		}
	})

	t.Run("save failure", func(t *testing.T) {
		repo := &mockTicketRepository{
			SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				return assert.AnError
			},
		}
		uc := NewCreateTicketUseCase(repo, nil, testLogger())

		_, err := uc.Execute(context.Background(), CreateTicketCommand{
			ClientID: 1, Title: "t", Type: "support", Priority: "low",
		})
		assert.Error(t, err)
	})
}
