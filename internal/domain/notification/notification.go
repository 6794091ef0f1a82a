// Package notification models in-portal messages shown to users and
// mirrored by email.
package notification

import (
	"strings"
	"time"

	"github.com/techile/fieldportal/internal/shared/errors"
)

// Type classifies a notification by its source.
type Type string

const (
	TypeSystem  Type = "system"
	TypeTicket  Type = "ticket"
	TypeInvoice Type = "invoice"
)

func (t Type) IsValid() bool {
	return t == TypeSystem || t == TypeTicket || t == TypeInvoice
}

func (t Type) String() string {
	return string(t)
}

// Notification is one message for one user. Message holds markdown; the
// email layer renders it to sanitized HTML.
type Notification struct {
	id        uint
	userID    uint
	notifType Type
	title     string
	message   string
	actionURL string
	read      bool
	readAt    *time.Time
	createdAt time.Time
}

// NewNotification creates an unread notification.
func NewNotification(userID uint, notifType Type, title, message, actionURL string) (*Notification, error) {
	title = strings.TrimSpace(title)
	if userID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if !notifType.IsValid() {
		return nil, errors.NewValidationError("invalid notification type", notifType.String())
	}
	if title == "" {
		return nil, errors.NewValidationError("title is required")
	}

	return &Notification{
		userID:    userID,
		notifType: notifType,
		title:     title,
		message:   message,
		actionURL: actionURL,
		createdAt: time.Now(),
	}, nil
}

// ReconstructNotification rebuilds a notification from persistence.
func ReconstructNotification(
	id, userID uint,
	notifType Type,
	title, message, actionURL string,
	read bool,
	readAt *time.Time,
	createdAt time.Time,
) *Notification {
	return &Notification{
		id:        id,
		userID:    userID,
		notifType: notifType,
		title:     title,
		message:   message,
		actionURL: actionURL,
		read:      read,
		readAt:    readAt,
		createdAt: createdAt,
	}
}

func (n *Notification) ID() uint             { return n.id }
func (n *Notification) UserID() uint         { return n.userID }
func (n *Notification) Type() Type           { return n.notifType }
func (n *Notification) Title() string        { return n.title }
func (n *Notification) Message() string      { return n.message }
func (n *Notification) ActionURL() string    { return n.actionURL }
func (n *Notification) IsRead() bool         { return n.read }
func (n *Notification) ReadAt() *time.Time   { return n.readAt }
func (n *Notification) CreatedAt() time.Time { return n.createdAt }

// SetID sets the ID after persistence.
func (n *Notification) SetID(id uint) { n.id = id }

// MarkRead stamps the notification as read. Reading twice is a no-op.
func (n *Notification) MarkRead(now time.Time) {
	if n.read {
		return
	}
	n.read = true
	n.readAt = &now
}
