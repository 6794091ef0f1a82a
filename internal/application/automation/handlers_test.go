package automation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	invoiceusecases "github.com/techile/fieldportal/internal/application/invoice/usecases"
	"github.com/techile/fieldportal/internal/domain/client"
	clvo "github.com/techile/fieldportal/internal/domain/client/valueobjects"
	"github.com/techile/fieldportal/internal/domain/invoice"
	"github.com/techile/fieldportal/internal/domain/notification"
	"github.com/techile/fieldportal/internal/domain/ticket"
	tkvo "github.com/techile/fieldportal/internal/domain/ticket/valueobjects"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
)

type stubClientRepo struct {
	client.Repository
	c *client.Client
}

func (r *stubClientRepo) FindByID(ctx context.Context, id uint) (*client.Client, error) {
	return r.c, nil
}

func (r *stubClientRepo) CountByStatus(ctx context.Context, status clvo.ClientStatus) (int64, error) {
	return 0, nil
}

type recordingNotifRepo struct {
	notification.Repository
	saved []*notification.Notification
}

func (r *recordingNotifRepo) Save(ctx context.Context, n *notification.Notification) error {
	r.saved = append(r.saved, n)
	return nil
}

type recordingEmailSender struct {
	to       []string
	subjects []string
}

func (s *recordingEmailSender) Send(ctx context.Context, to, subject, body string) error {
	s.to = append(s.to, to)
	s.subjects = append(s.subjects, subject)
	return nil
}

type stubInvoicer struct {
	calls []uint
	err   error
}

func (s *stubInvoicer) Execute(ctx context.Context, cmd invoiceusecases.CreateInvoiceFromTicketCommand) (*invoiceusecases.InvoiceDetail, error) {
	s.calls = append(s.calls, cmd.TicketID)
	if s.err != nil {
		return nil, s.err
	}
	return &invoiceusecases.InvoiceDetail{ID: 41}, nil
}

func makeClient(t *testing.T) *client.Client {
	t.Helper()
	c, err := client.NewClient(5, "marie@example.com", "Boulangerie Marie")
	require.NoError(t, err)
	c.SetID(7)
	return c
}

func overdueEvent(t *testing.T) *invoice.InvoiceOverdueEvent {
	t.Helper()
	now := time.Now()
	inv, err := invoice.NewInvoice(7, nil, []invoice.ItemInput{
		{Description: "Forfait maintenance base", Quantity: 1, UnitPrice: 25},
	}, 15, 1, now.AddDate(0, 0, -10))
	require.NoError(t, err)
	inv.SetID(41)
	require.NoError(t, inv.MarkSent(now.AddDate(0, 0, -10)))
	require.NoError(t, inv.MarkOverdue(now))
	return invoice.NewInvoiceOverdueEvent(inv)
}

func makeResolvedEvent(t *testing.T) *ticket.TicketStatusChangedEvent {
	t.Helper()
	tk, err := ticket.NewTicket(7, "TKT-abc123", "Serveur en panne", "", tkvo.TypeIntervention, tkvo.PriorityUrgent)
	require.NoError(t, err)
	tk.SetID(12)
	require.NoError(t, tk.ChangeStatus(tkvo.StatusInProgress))
	require.NoError(t, tk.ChangeStatus(tkvo.StatusResolved))
	return ticket.NewTicketStatusChangedEvent(tk, tkvo.StatusInProgress)
}

func TestHandlers_OnClientCreated(t *testing.T) {
	c := makeClient(t)
	notifRepo := &recordingNotifRepo{}
	email := &recordingEmailSender{}
	h := NewHandlers(&stubClientRepo{c: c}, notifRepo, email, &stubInvoicer{}, logger.NewLogger())

	err := h.onClientCreated(client.NewClientCreatedEvent(c))
	require.NoError(t, err)

	require.Len(t, notifRepo.saved, 1)
	assert.Equal(t, uint(5), notifRepo.saved[0].UserID())
	assert.Equal(t, notification.TypeSystem, notifRepo.saved[0].Type())
	assert.Equal(t, []string{"marie@example.com"}, email.to)
}

func TestHandlers_OnTicketStatusChanged(t *testing.T) {
	t.Run("resolved intervention raises the invoice", func(t *testing.T) {
		c := makeClient(t)
		notifRepo := &recordingNotifRepo{}
		invoicer := &stubInvoicer{}
		h := NewHandlers(&stubClientRepo{c: c}, notifRepo, nil, invoicer, logger.NewLogger())

		err := h.onTicketStatusChanged(makeResolvedEvent(t))
		require.NoError(t, err)
		assert.Equal(t, []uint{12}, invoicer.calls)
		require.Len(t, notifRepo.saved, 1)
		assert.Equal(t, notification.TypeTicket, notifRepo.saved[0].Type())
	})

	t.Run("non-billable resolution is not an error", func(t *testing.T) {
		c := makeClient(t)
		invoicer := &stubInvoicer{err: errors.NewValidationError("only intervention tickets are billable")}
		h := NewHandlers(&stubClientRepo{c: c}, &recordingNotifRepo{}, nil, invoicer, logger.NewLogger())

		err := h.onTicketStatusChanged(makeResolvedEvent(t))
		assert.NoError(t, err)
	})

	t.Run("non-resolved transitions only notify", func(t *testing.T) {
		c := makeClient(t)
		tk, err := ticket.NewTicket(7, "TKT-abc123", "Serveur en panne", "", tkvo.TypeIntervention, tkvo.PriorityNormal)
		require.NoError(t, err)
		tk.SetID(12)
		require.NoError(t, tk.ChangeStatus(tkvo.StatusInProgress))
		invoicer := &stubInvoicer{}
		notifRepo := &recordingNotifRepo{}
		h := NewHandlers(&stubClientRepo{c: c}, notifRepo, nil, invoicer, logger.NewLogger())

		err = h.onTicketStatusChanged(ticket.NewTicketStatusChangedEvent(tk, tkvo.StatusOpen))
		require.NoError(t, err)
		assert.Empty(t, invoicer.calls)
		assert.Len(t, notifRepo.saved, 1)
	})
}

func TestHandlers_OnInvoiceOverdue(t *testing.T) {
	c := makeClient(t)
	notifRepo := &recordingNotifRepo{}
	email := &recordingEmailSender{}
	h := NewHandlers(&stubClientRepo{c: c}, notifRepo, email, &stubInvoicer{}, logger.NewLogger())

	err := h.onInvoiceOverdue(overdueEvent(t))
	require.NoError(t, err)

	require.Len(t, notifRepo.saved, 1)
	assert.Equal(t, notification.TypeInvoice, notifRepo.saved[0].Type())
	require.Len(t, email.subjects, 1)
	assert.Contains(t, email.subjects[0], "Rappel de paiement")
}
