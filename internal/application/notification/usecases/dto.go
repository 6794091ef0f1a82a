package usecases

import (
	"time"

	"github.com/techile/fieldportal/internal/domain/notification"
)

// NotificationDetail is the notification view returned by the use cases.
type NotificationDetail struct {
	ID        uint       `json:"id"`
	UserID    uint       `json:"user_id"`
	Type      string     `json:"type"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	ActionURL string     `json:"action_url,omitempty"`
	IsRead    bool       `json:"is_read"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// NotificationList is a paginated page of notifications.
type NotificationList struct {
	Notifications []NotificationDetail `json:"notifications"`
	Total         int64                `json:"total"`
	Page          int                  `json:"page"`
	PageSize      int                  `json:"page_size"`
}

func toNotificationDetail(n *notification.Notification) *NotificationDetail {
	return &NotificationDetail{
		ID:        n.ID(),
		UserID:    n.UserID(),
		Type:      n.Type().String(),
		Title:     n.Title(),
		Message:   n.Message(),
		ActionURL: n.ActionURL(),
		IsRead:    n.IsRead(),
		ReadAt:    n.ReadAt(),
		CreatedAt: n.CreatedAt(),
	}
}
