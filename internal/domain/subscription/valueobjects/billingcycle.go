package valueobjects

import "fmt"

// BillingCycle represents how often a subscription is billed.
type BillingCycle string

const (
	CycleMonthly BillingCycle = "monthly"
	CycleAnnual  BillingCycle = "annual"
)

func (bc BillingCycle) IsValid() bool {
	return bc == CycleMonthly || bc == CycleAnnual
}

func (bc BillingCycle) String() string {
	return string(bc)
}

// Months returns the number of months covered by one billing period.
func (bc BillingCycle) Months() int {
	if bc == CycleAnnual {
		return 12
	}
	return 1
}

func NewBillingCycle(s string) (BillingCycle, error) {
	bc := BillingCycle(s)
	if !bc.IsValid() {
		return "", fmt.Errorf("invalid billing cycle: %s, must be 'monthly' or 'annual'", s)
	}
	return bc, nil
}
