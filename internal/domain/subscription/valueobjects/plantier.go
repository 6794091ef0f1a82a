package valueobjects

import "fmt"

// PlanTier represents one of the four published subscription levels.
type PlanTier string

const (
	// TierBase is the entry-level maintenance plan.
	TierBase PlanTier = "base"
	// TierStandard is the standard maintenance plan.
	TierStandard PlanTier = "standard"
	// TierPlus is the extended maintenance plan.
	TierPlus PlanTier = "plus"
	// TierPrestige is the top maintenance plan.
	TierPrestige PlanTier = "prestige"
)

// IsValid checks if the plan tier is valid
func (pt PlanTier) IsValid() bool {
	return pt == TierBase || pt == TierStandard || pt == TierPlus || pt == TierPrestige
}

// String returns the string representation of the plan tier
func (pt PlanTier) String() string {
	return string(pt)
}

// NewPlanTier creates a new PlanTier from a string
func NewPlanTier(s string) (PlanTier, error) {
	pt := PlanTier(s)
	if !pt.IsValid() {
		return "", fmt.Errorf("invalid plan tier: %s, must be 'base', 'standard', 'plus', or 'prestige'", s)
	}
	return pt, nil
}

// CloudQuotaGB returns the cloud storage quota included with the tier.
func (pt PlanTier) CloudQuotaGB() float64 {
	switch pt {
	case TierStandard:
		return 100
	case TierPlus:
		return 250
	case TierPrestige:
		return 500
	default:
		return 50
	}
}
