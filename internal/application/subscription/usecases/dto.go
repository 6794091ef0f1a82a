package usecases

import (
	"time"

	"github.com/techile/fieldportal/internal/domain/subscription"
)

// SubscriptionDetail is the subscription view returned by the use cases.
type SubscriptionDetail struct {
	ID                 uint       `json:"id"`
	ClientID           uint       `json:"client_id"`
	Tier               string     `json:"tier"`
	Cycle              string     `json:"cycle"`
	Status             string     `json:"status"`
	Price              float64    `json:"price"`
	MonthlyValue       float64    `json:"monthly_value"`
	CloudQuotaGB       float64    `json:"cloud_quota_gb"`
	CurrentPeriodStart time.Time  `json:"current_period_start"`
	CurrentPeriodEnd   time.Time  `json:"current_period_end"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func toSubscriptionDetail(s *subscription.Subscription) *SubscriptionDetail {
	return &SubscriptionDetail{
		ID:                 s.ID(),
		ClientID:           s.ClientID(),
		Tier:               s.Tier().String(),
		Cycle:              s.Cycle().String(),
		Status:             s.Status().String(),
		Price:              s.Price(),
		MonthlyValue:       s.MonthlyValue(),
		CloudQuotaGB:       s.CloudQuotaGB(),
		CurrentPeriodStart: s.CurrentPeriodStart(),
		CurrentPeriodEnd:   s.CurrentPeriodEnd(),
		CancelledAt:        s.CancelledAt(),
		CreatedAt:          s.CreatedAt(),
		UpdatedAt:          s.UpdatedAt(),
	}
}
