// Package subscription models a client's maintenance plan: tier, billing
// cycle, price, and the current billing period.
package subscription

import (
	"time"

	"github.com/techile/fieldportal/internal/domain/pricing"
	"github.com/techile/fieldportal/internal/domain/subscription/valueobjects"
	"github.com/techile/fieldportal/internal/shared/errors"
)

// Subscription is a client's active maintenance plan. Price is always set
// from the published rate table at plan selection, never free-form.
type Subscription struct {
	id                 uint
	clientID           uint
	tier               valueobjects.PlanTier
	cycle              valueobjects.BillingCycle
	status             valueobjects.SubscriptionStatus
	price              float64
	currentPeriodStart time.Time
	currentPeriodEnd   time.Time
	cancelledAt        *time.Time
	createdAt          time.Time
	updatedAt          time.Time
}

// NewSubscription starts a plan for a client. The price comes from the rate
// table for the chosen tier, multiplied out for annual billing. The first
// billing period starts now.
func NewSubscription(clientID uint, tier valueobjects.PlanTier, cycle valueobjects.BillingCycle, rt pricing.RateTable, now time.Time) (*Subscription, error) {
	if clientID == 0 {
		return nil, errors.NewValidationError("client ID is required")
	}
	if !tier.IsValid() {
		return nil, errors.NewValidationError("invalid plan tier", tier.String())
	}
	if !cycle.IsValid() {
		return nil, errors.NewValidationError("invalid billing cycle", cycle.String())
	}

	s := &Subscription{
		clientID:  clientID,
		tier:      tier,
		cycle:     cycle,
		status:    valueobjects.StatusActive,
		createdAt: now,
		updatedAt: now,
	}
	s.price = priceFor(tier, cycle, rt)
	s.rollPeriod(now)
	return s, nil
}

// ReconstructSubscription rebuilds a subscription from persistence.
func ReconstructSubscription(
	id, clientID uint,
	tier valueobjects.PlanTier,
	cycle valueobjects.BillingCycle,
	status valueobjects.SubscriptionStatus,
	price float64,
	periodStart, periodEnd time.Time,
	cancelledAt *time.Time,
	createdAt, updatedAt time.Time,
) *Subscription {
	return &Subscription{
		id:                 id,
		clientID:           clientID,
		tier:               tier,
		cycle:              cycle,
		status:             status,
		price:              price,
		currentPeriodStart: periodStart,
		currentPeriodEnd:   periodEnd,
		cancelledAt:        cancelledAt,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

func (s *Subscription) ID() uint                                  { return s.id }
func (s *Subscription) ClientID() uint                            { return s.clientID }
func (s *Subscription) Tier() valueobjects.PlanTier               { return s.tier }
func (s *Subscription) Cycle() valueobjects.BillingCycle          { return s.cycle }
func (s *Subscription) Status() valueobjects.SubscriptionStatus   { return s.status }
func (s *Subscription) Price() float64                            { return s.price }
func (s *Subscription) CurrentPeriodStart() time.Time             { return s.currentPeriodStart }
func (s *Subscription) CurrentPeriodEnd() time.Time               { return s.currentPeriodEnd }
func (s *Subscription) CancelledAt() *time.Time                   { return s.cancelledAt }
func (s *Subscription) CreatedAt() time.Time                      { return s.createdAt }
func (s *Subscription) UpdatedAt() time.Time                      { return s.updatedAt }

// SetID sets the ID after persistence.
func (s *Subscription) SetID(id uint) { s.id = id }

// CloudQuotaGB is the storage allotment the plan carries.
func (s *Subscription) CloudQuotaGB() float64 {
	return s.tier.CloudQuotaGB()
}

// MonthlyValue normalizes the subscription price to a monthly amount for
// recurring-revenue reporting.
func (s *Subscription) MonthlyValue() float64 {
	months := s.cycle.Months()
	if months <= 0 {
		return s.price
	}
	return s.price / float64(months)
}

// IsActive reports whether the subscription currently bills.
func (s *Subscription) IsActive() bool {
	return s.status == valueobjects.StatusActive
}

// ChangePlan moves the subscription to another tier. The price is reset from
// the published rate for the new tier and the billing period restarts, so a
// plan change always bills at the advertised price.
func (s *Subscription) ChangePlan(tier valueobjects.PlanTier, rt pricing.RateTable, now time.Time) error {
	if !tier.IsValid() {
		return errors.NewValidationError("invalid plan tier", tier.String())
	}
	if s.status == valueobjects.StatusCancelled {
		return errors.NewConflictError("cannot change plan on a cancelled subscription")
	}
	if tier == s.tier {
		return errors.NewConflictError("subscription is already on this plan")
	}

	s.tier = tier
	s.price = priceFor(tier, s.cycle, rt)
	s.rollPeriod(now)
	s.updatedAt = now
	return nil
}

// ChangeCycle switches between monthly and annual billing at the published
// rate and restarts the period.
func (s *Subscription) ChangeCycle(cycle valueobjects.BillingCycle, rt pricing.RateTable, now time.Time) error {
	if !cycle.IsValid() {
		return errors.NewValidationError("invalid billing cycle", cycle.String())
	}
	if s.status == valueobjects.StatusCancelled {
		return errors.NewConflictError("cannot change billing cycle on a cancelled subscription")
	}
	if cycle == s.cycle {
		return nil
	}

	s.cycle = cycle
	s.price = priceFor(s.tier, cycle, rt)
	s.rollPeriod(now)
	s.updatedAt = now
	return nil
}

// Renew rolls the billing period forward and clears past-due standing.
func (s *Subscription) Renew(now time.Time) error {
	if s.status == valueobjects.StatusCancelled {
		return errors.NewConflictError("cannot renew a cancelled subscription")
	}
	s.status = valueobjects.StatusActive
	s.rollPeriod(now)
	s.updatedAt = now
	return nil
}

// MarkPastDue flags a missed payment.
func (s *Subscription) MarkPastDue() error {
	if s.status != valueobjects.StatusActive {
		return errors.NewConflictError("only active subscriptions can go past due")
	}
	s.status = valueobjects.StatusPastDue
	s.updatedAt = time.Now()
	return nil
}

// Suspend pauses billing without losing the plan.
func (s *Subscription) Suspend() error {
	if s.status == valueobjects.StatusCancelled {
		return errors.NewConflictError("cannot suspend a cancelled subscription")
	}
	s.status = valueobjects.StatusSuspended
	s.updatedAt = time.Now()
	return nil
}

// Reactivate resumes a suspended or past-due subscription.
func (s *Subscription) Reactivate() error {
	if s.status == valueobjects.StatusCancelled {
		return errors.NewConflictError("cannot reactivate a cancelled subscription")
	}
	s.status = valueobjects.StatusActive
	s.updatedAt = time.Now()
	return nil
}

// Cancel ends the subscription permanently.
func (s *Subscription) Cancel(now time.Time) error {
	if s.status == valueobjects.StatusCancelled {
		return errors.NewConflictError("subscription is already cancelled")
	}
	s.status = valueobjects.StatusCancelled
	s.cancelledAt = &now
	s.updatedAt = now
	return nil
}

func (s *Subscription) rollPeriod(now time.Time) {
	s.currentPeriodStart = now
	s.currentPeriodEnd = now.AddDate(0, s.cycle.Months(), 0)
}

func priceFor(tier valueobjects.PlanTier, cycle valueobjects.BillingCycle, rt pricing.RateTable) float64 {
	monthly := pricing.MaintenancePrice(rt, tier)
	return monthly * float64(cycle.Months())
}
