package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techile/fieldportal/internal/domain/pricing"
	"github.com/techile/fieldportal/internal/domain/subscription/valueobjects"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestSubscription(t *testing.T, tier valueobjects.PlanTier, cycle valueobjects.BillingCycle) *Subscription {
	t.Helper()
	s, err := NewSubscription(1, tier, cycle, pricing.DefaultRateTable(), testNow)
	require.NoError(t, err)
	return s
}

func TestNewSubscription(t *testing.T) {
	t.Run("monthly standard", func(t *testing.T) {
		s := newTestSubscription(t, valueobjects.TierStandard, valueobjects.CycleMonthly)
		assert.Equal(t, 45.00, s.Price())
		assert.Equal(t, valueobjects.StatusActive, s.Status())
		assert.Equal(t, testNow, s.CurrentPeriodStart())
		assert.Equal(t, testNow.AddDate(0, 1, 0), s.CurrentPeriodEnd())
		assert.Equal(t, 100.0, s.CloudQuotaGB())
	})

	t.Run("annual bills twelve months up front", func(t *testing.T) {
		s := newTestSubscription(t, valueobjects.TierBase, valueobjects.CycleAnnual)
		assert.Equal(t, 300.00, s.Price())
		assert.Equal(t, testNow.AddDate(0, 12, 0), s.CurrentPeriodEnd())
	})

	t.Run("validation", func(t *testing.T) {
		_, err := NewSubscription(0, valueobjects.TierBase, valueobjects.CycleMonthly, pricing.DefaultRateTable(), testNow)
		assert.Error(t, err)
		_, err = NewSubscription(1, "gold", valueobjects.CycleMonthly, pricing.DefaultRateTable(), testNow)
		assert.Error(t, err)
		_, err = NewSubscription(1, valueobjects.TierBase, "weekly", pricing.DefaultRateTable(), testNow)
		assert.Error(t, err)
	})
}

func TestSubscriptionMonthlyValue(t *testing.T) {
	monthly := newTestSubscription(t, valueobjects.TierPlus, valueobjects.CycleMonthly)
	assert.Equal(t, 75.00, monthly.MonthlyValue())

	annual := newTestSubscription(t, valueobjects.TierPlus, valueobjects.CycleAnnual)
	assert.Equal(t, 900.00, annual.Price())
	assert.Equal(t, 75.00, annual.MonthlyValue())
}

func TestSubscriptionChangePlan(t *testing.T) {
	s := newTestSubscription(t, valueobjects.TierBase, valueobjects.CycleMonthly)
	later := testNow.AddDate(0, 0, 15)

	require.NoError(t, s.ChangePlan(valueobjects.TierPrestige, pricing.DefaultRateTable(), later))
	assert.Equal(t, valueobjects.TierPrestige, s.Tier())
	assert.Equal(t, 120.00, s.Price())
	assert.Equal(t, 500.0, s.CloudQuotaGB())
	assert.Equal(t, later, s.CurrentPeriodStart())
	assert.Equal(t, later.AddDate(0, 1, 0), s.CurrentPeriodEnd())

	t.Run("same plan rejected", func(t *testing.T) {
		assert.Error(t, s.ChangePlan(valueobjects.TierPrestige, pricing.DefaultRateTable(), later))
	})

	t.Run("custom rate table drives the price", func(t *testing.T) {
		rt := pricing.RateTable{MaintenanceStandard: 55}
		require.NoError(t, s.ChangePlan(valueobjects.TierStandard, rt, later))
		assert.Equal(t, 55.00, s.Price())
	})

	t.Run("cancelled subscription rejects plan change", func(t *testing.T) {
		require.NoError(t, s.Cancel(later))
		assert.Error(t, s.ChangePlan(valueobjects.TierBase, pricing.DefaultRateTable(), later))
	})
}

func TestSubscriptionChangeCycle(t *testing.T) {
	s := newTestSubscription(t, valueobjects.TierStandard, valueobjects.CycleMonthly)
	later := testNow.AddDate(0, 0, 10)

	require.NoError(t, s.ChangeCycle(valueobjects.CycleAnnual, pricing.DefaultRateTable(), later))
	assert.Equal(t, 540.00, s.Price())
	assert.Equal(t, later.AddDate(0, 12, 0), s.CurrentPeriodEnd())

	// Same cycle is a no-op, not an error.
	require.NoError(t, s.ChangeCycle(valueobjects.CycleAnnual, pricing.DefaultRateTable(), later))
}

func TestSubscriptionLifecycle(t *testing.T) {
	s := newTestSubscription(t, valueobjects.TierBase, valueobjects.CycleMonthly)

	require.NoError(t, s.MarkPastDue())
	assert.Equal(t, valueobjects.StatusPastDue, s.Status())
	assert.False(t, s.IsActive())

	// Renew clears past-due and rolls the period.
	renewAt := testNow.AddDate(0, 1, 0)
	require.NoError(t, s.Renew(renewAt))
	assert.True(t, s.IsActive())
	assert.Equal(t, renewAt, s.CurrentPeriodStart())

	require.NoError(t, s.Suspend())
	assert.Equal(t, valueobjects.StatusSuspended, s.Status())
	assert.Error(t, s.MarkPastDue())

	require.NoError(t, s.Reactivate())
	assert.True(t, s.IsActive())

	cancelAt := testNow.AddDate(0, 2, 0)
	require.NoError(t, s.Cancel(cancelAt))
	require.NotNil(t, s.CancelledAt())
	assert.Equal(t, cancelAt, *s.CancelledAt())
	assert.Error(t, s.Cancel(cancelAt))
	assert.Error(t, s.Renew(cancelAt))
	assert.Error(t, s.Suspend())
	assert.Error(t, s.Reactivate())
}
