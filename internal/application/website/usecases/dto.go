package usecases

import (
	"time"

	"github.com/techile/fieldportal/internal/domain/website"
)

// WebsiteDetail is the full project view returned by the use cases.
type WebsiteDetail struct {
	ID         uint            `json:"id"`
	ClientID   uint            `json:"client_id"`
	Name       string          `json:"name"`
	Type       string          `json:"type"`
	Domain     string          `json:"domain,omitempty"`
	Subdomain  string          `json:"subdomain"`
	Status     string          `json:"status"`
	Content    website.Content `json:"content"`
	IsLive     bool            `json:"is_live"`
	LaunchedAt *time.Time      `json:"launched_at,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// WebsiteList is a paginated page of projects.
type WebsiteList struct {
	Websites []WebsiteDetail `json:"websites"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

func toWebsiteDetail(w *website.WebsiteProject) *WebsiteDetail {
	return &WebsiteDetail{
		ID:         w.ID(),
		ClientID:   w.ClientID(),
		Name:       w.Name(),
		Type:       w.Type().String(),
		Domain:     w.Domain(),
		Subdomain:  w.Subdomain(),
		Status:     w.Status().String(),
		Content:    w.Content(),
		IsLive:     w.IsLive(),
		LaunchedAt: w.LaunchedAt(),
		CreatedAt:  w.CreatedAt(),
		UpdatedAt:  w.UpdatedAt(),
	}
}
