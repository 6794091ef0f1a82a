// Package automation reacts to domain events: welcome messages on
// registration, client notifications on ticket transitions, the
// auto-invoice on resolved interventions, and overdue payment reminders.
package automation

import (
	"context"
	"fmt"

	invoiceusecases "github.com/techile/fieldportal/internal/application/invoice/usecases"
	"github.com/techile/fieldportal/internal/domain/client"
	"github.com/techile/fieldportal/internal/domain/invoice"
	"github.com/techile/fieldportal/internal/domain/notification"
	"github.com/techile/fieldportal/internal/domain/shared/events"
	"github.com/techile/fieldportal/internal/domain/ticket"
	tkvo "github.com/techile/fieldportal/internal/domain/ticket/valueobjects"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
)

// EmailSender delivers one message. Body is markdown; the mail layer
// renders it to HTML.
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Handlers holds the shared dependencies of every automation hook.
type Handlers struct {
	clientRepo    client.Repository
	notifRepo     notification.Repository
	email         EmailSender
	invoiceFromTk invoiceusecases.CreateInvoiceFromTicketExecutor
	logger        logger.Interface
}

func NewHandlers(
	clientRepo client.Repository,
	notifRepo notification.Repository,
	email EmailSender,
	invoiceFromTk invoiceusecases.CreateInvoiceFromTicketExecutor,
	logger logger.Interface,
) *Handlers {
	return &Handlers{
		clientRepo:    clientRepo,
		notifRepo:     notifRepo,
		email:         email,
		invoiceFromTk: invoiceFromTk,
		logger:        logger,
	}
}

// Register subscribes every automation hook on the dispatcher.
func (h *Handlers) Register(dispatcher events.EventSubscriber) error {
	subs := map[string]func(events.DomainEvent) error{
		client.EventClientCreated:       h.onClientCreated,
		ticket.EventTicketStatusChanged: h.onTicketStatusChanged,
		invoice.EventInvoiceOverdue:     h.onInvoiceOverdue,
	}
	for eventType, fn := range subs {
		if err := dispatcher.Subscribe(eventType, events.NewSimpleEventHandler(eventType, fn)); err != nil {
			return err
		}
	}
	return nil
}

func (h *Handlers) onClientCreated(e events.DomainEvent) error {
	evt, ok := e.(*client.ClientCreatedEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", e.GetEventType())
	}
	ctx := context.Background()

	c, err := h.clientRepo.FindByID(ctx, evt.ClientID)
	if err != nil {
		return fmt.Errorf("client %d not found for welcome: %w", evt.ClientID, err)
	}

	h.notify(ctx, c.UserID(), notification.TypeSystem,
		"Bienvenue chez TechÎle",
		fmt.Sprintf("Bonjour %s, votre compte est prêt. Complétez votre profil pour commander des services.", evt.Name),
		"/profile")

	h.send(ctx, evt.Email, "Bienvenue chez TechÎle",
		fmt.Sprintf("Bonjour %s,\n\nVotre compte TechÎle est maintenant actif. Complétez votre profil pour commander des services.", evt.Name))
	return nil
}

func (h *Handlers) onTicketStatusChanged(e events.DomainEvent) error {
	evt, ok := e.(*ticket.TicketStatusChangedEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", e.GetEventType())
	}
	ctx := context.Background()

	c, err := h.clientRepo.FindByID(ctx, evt.ClientID)
	if err != nil {
		return fmt.Errorf("client %d not found for ticket notification: %w", evt.ClientID, err)
	}

	h.notify(ctx, c.UserID(), notification.TypeTicket,
		fmt.Sprintf("Billet %s mis à jour", evt.Number),
		fmt.Sprintf("Le statut de votre billet est passé de **%s** à **%s**.", evt.FromStatus, evt.ToStatus),
		fmt.Sprintf("/tickets/%d", evt.TicketID))

	if evt.ToStatus == tkvo.StatusResolved {
		_, err := h.invoiceFromTk.Execute(ctx, invoiceusecases.CreateInvoiceFromTicketCommand{TicketID: evt.TicketID})
		if err != nil {
			// Support and billing tickets resolve without an invoice.
			if errors.IsValidationError(err) {
				h.logger.Debugw("ticket resolved without billing", "ticket_id", evt.TicketID, "reason", err)
				return nil
			}
			return fmt.Errorf("auto-invoice for ticket %d: %w", evt.TicketID, err)
		}
	}
	return nil
}

func (h *Handlers) onInvoiceOverdue(e events.DomainEvent) error {
	evt, ok := e.(*invoice.InvoiceOverdueEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", e.GetEventType())
	}
	ctx := context.Background()

	c, err := h.clientRepo.FindByID(ctx, evt.ClientID)
	if err != nil {
		return fmt.Errorf("client %d not found for overdue reminder: %w", evt.ClientID, err)
	}

	h.notify(ctx, c.UserID(), notification.TypeInvoice,
		fmt.Sprintf("Facture %s en retard", evt.Number),
		fmt.Sprintf("Votre facture **%s** de %.2f $ est en retard de paiement.", evt.Number, evt.Total),
		fmt.Sprintf("/invoices/%d", evt.InvoiceID))

	h.send(ctx, c.Email(), fmt.Sprintf("Rappel de paiement : facture %s", evt.Number),
		fmt.Sprintf("Bonjour %s,\n\nVotre facture %s de %.2f $ est maintenant en retard. Merci de régler le solde dès que possible.",
			c.DisplayName(), evt.Number, evt.Total))
	return nil
}

// notify stores an in-portal notification; failures are logged, never fatal.
func (h *Handlers) notify(ctx context.Context, userID uint, notifType notification.Type, title, message, actionURL string) {
	n, err := notification.NewNotification(userID, notifType, title, message, actionURL)
	if err != nil {
		h.logger.Warnw("failed to build notification", "user_id", userID, "error", err)
		return
	}
	if err := h.notifRepo.Save(ctx, n); err != nil {
		h.logger.Warnw("failed to save notification", "user_id", userID, "error", err)
	}
}

// send delivers an email; failures are logged, never fatal.
func (h *Handlers) send(ctx context.Context, to, subject, body string) {
	if h.email == nil || to == "" {
		return
	}
	if err := h.email.Send(ctx, to, subject, body); err != nil {
		h.logger.Warnw("failed to send email", "to", to, "subject", subject, "error", err)
	}
}
