package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techile/fieldportal/internal/domain/ticket"
	"github.com/techile/fieldportal/internal/domain/user"
	"github.com/techile/fieldportal/internal/shared/authorization"
)

func makeUser(t *testing.T, id uint, role authorization.UserRole) *user.User {
	t.Helper()
	u, err := user.NewUser("tech@techile.ca", "hash", "Luc", role)
	require.NoError(t, err)
	u.SetID(id)
	return u
}

func TestAssignTicketUseCase_Execute(t *testing.T) {
	t.Run("assigns to a technician", func(t *testing.T) {
		tk := makeTicket(t, 4)
		repo := &mockTicketRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return tk, nil
			},
		}
		users := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return makeUser(t, id, authorization.RoleTechnician), nil
			},
		}
		uc := NewAssignTicketUseCase(repo, users, testLogger())

		result, err := uc.Execute(context.Background(), AssignTicketCommand{
			TicketID: 4, TechnicianID: 3, AssignedBy: 1,
		})

		require.NoError(t, err)
		assert.Equal(t, uint(3), result.TechnicianID)
		require.NotNil(t, tk.AssigneeID())
		assert.Equal(t, uint(3), *tk.AssigneeID())
	})

	t.Run("admin_technician can take tickets", func(t *testing.T) {
		tk := makeTicket(t, 4)
		repo := &mockTicketRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		}
		users := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return makeUser(t, id, authorization.RoleAdminTechnician), nil
			},
		}
		uc := NewAssignTicketUseCase(repo, users, testLogger())

		_, err := uc.Execute(context.Background(), AssignTicketCommand{TicketID: 4, TechnicianID: 8})
		assert.NoError(t, err)
	})

	t.Run("rejects non-technician assignee", func(t *testing.T) {
		users := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return makeUser(t, id, authorization.RoleClient), nil
			},
		}
		uc := NewAssignTicketUseCase(&mockTicketRepository{}, users, testLogger())

		_, err := uc.Execute(context.Background(), AssignTicketCommand{TicketID: 4, TechnicianID: 3})
		assert.Error(t, err)
	})

	t.Run("rejects deactivated technician", func(t *testing.T) {
		users := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				u := makeUser(t, id, authorization.RoleTechnician)
				u.Deactivate()
				return u, nil
			},
		}
		uc := NewAssignTicketUseCase(&mockTicketRepository{}, users, testLogger())

		_, err := uc.Execute(context.Background(), AssignTicketCommand{TicketID: 4, TechnicianID: 3})
		assert.Error(t, err)
	})
}
