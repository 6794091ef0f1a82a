package usecases

import (
	"time"

	"github.com/techile/fieldportal/internal/domain/client"
)

// ClientDetail is the client view returned by the use cases.
type ClientDetail struct {
	ID                   uint      `json:"id"`
	UserID               uint      `json:"user_id"`
	CompanyName          string    `json:"company_name,omitempty"`
	FirstName            string    `json:"first_name,omitempty"`
	LastName             string    `json:"last_name,omitempty"`
	Email                string    `json:"email"`
	Phone                string    `json:"phone,omitempty"`
	Address              string    `json:"address,omitempty"`
	City                 string    `json:"city,omitempty"`
	Province             string    `json:"province,omitempty"`
	PostalCode           string    `json:"postal_code,omitempty"`
	IsInIslands          bool      `json:"is_in_islands"`
	Status               string    `json:"status"`
	Priority             string    `json:"priority"`
	CloudQuotaGB         float64   `json:"cloud_quota_gb"`
	CloudUsedGB          float64   `json:"cloud_used_gb"`
	ProfileCompletion    int       `json:"profile_completion"`
	CanPurchase          bool      `json:"can_purchase"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func toClientDetail(c *client.Client) *ClientDetail {
	return &ClientDetail{
		ID:                c.ID(),
		UserID:            c.UserID(),
		CompanyName:       c.CompanyName(),
		FirstName:         c.FirstName(),
		LastName:          c.LastName(),
		Email:             c.Email(),
		Phone:             c.Phone(),
		Address:           c.Address(),
		City:              c.City(),
		Province:          c.Province(),
		PostalCode:        c.PostalCode(),
		IsInIslands:       c.IsInIslands(),
		Status:            c.Status().String(),
		Priority:          c.Priority().String(),
		CloudQuotaGB:      c.CloudQuotaGB(),
		CloudUsedGB:       c.CloudUsedGB(),
		ProfileCompletion: c.ProfileCompletionPercentage(),
		CanPurchase:       c.CanPurchase(),
		CreatedAt:         c.CreatedAt(),
		UpdatedAt:         c.UpdatedAt(),
	}
}
