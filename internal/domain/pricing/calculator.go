package pricing

import (
	"math"

	subvo "github.com/techile/fieldportal/internal/domain/subscription/valueobjects"
	webvo "github.com/techile/fieldportal/internal/domain/website/valueobjects"
	"github.com/techile/fieldportal/internal/shared/constants"
)

// round2 rounds to two decimals, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// InterventionPrice is the labor/travel/surcharge breakdown for a single
// on-site or remote intervention. All amounts are rounded to the cent.
type InterventionPrice struct {
	LaborCost       float64 `json:"labor_cost"`
	TravelCost      float64 `json:"travel_cost"`
	UrgentSurcharge float64 `json:"urgent_surcharge"`
	Subtotal        float64 `json:"subtotal"`
	TaxAmount       float64 `json:"tax_amount"`
	Total           float64 `json:"total"`
}

// CalculateInterventionPrice prices an intervention from its duration in
// minutes, travel distance in kilometers, and urgency. Labor is billed on
// fractional hours, not rounded up to the next hour. Negative inputs are
// clamped to zero.
func CalculateInterventionPrice(rt RateTable, durationMinutes int, distanceKM float64, urgent bool) InterventionPrice {
	rt = rt.Normalize()
	if durationMinutes < 0 {
		durationMinutes = 0
	}
	if distanceKM < 0 {
		distanceKM = 0
	}

	hours := float64(durationMinutes) / 60.0
	labor := round2(hours * rt.InterventionHourlyRate)
	travel := round2(distanceKM * rt.TravelRate)

	var surcharge float64
	if urgent {
		surcharge = round2(rt.UrgentSurcharge)
	}

	subtotal := round2(labor + travel + surcharge)
	tax := round2(subtotal * rt.TaxRate / 100)
	total := round2(subtotal + tax)

	return InterventionPrice{
		LaborCost:       labor,
		TravelCost:      travel,
		UrgentSurcharge: surcharge,
		Subtotal:        subtotal,
		TaxAmount:       tax,
		Total:           total,
	}
}

// CalculateCloudPrice prices monthly cloud storage. Usage at or below the
// free tier costs the flat base; every gigabyte above it is billed at the
// per-GB rate on top of the base. Negative usage is clamped to zero.
func CalculateCloudPrice(rt RateTable, storageGB float64) float64 {
	rt = rt.Normalize()
	if storageGB < 0 {
		storageGB = 0
	}
	if storageGB <= constants.CloudFreeTierGB {
		return round2(rt.CloudStorageBase)
	}
	extra := storageGB - constants.CloudFreeTierGB
	return round2(rt.CloudStorageBase + extra*rt.CloudStoragePerGB)
}

// MaintenancePrice returns the monthly maintenance price for a plan tier.
// Unknown tiers fall back to the cheapest plan rather than failing.
func MaintenancePrice(rt RateTable, tier subvo.PlanTier) float64 {
	rt = rt.Normalize()
	switch tier {
	case subvo.TierStandard:
		return round2(rt.MaintenanceStandard)
	case subvo.TierPlus:
		return round2(rt.MaintenancePlus)
	case subvo.TierPrestige:
		return round2(rt.MaintenancePrestige)
	default:
		return round2(rt.MaintenanceBase)
	}
}

// WebsitePrice returns the monthly hosting price for a website type.
// Unknown types fall back to the cheapest offering rather than failing.
func WebsitePrice(rt RateTable, wtype webvo.WebsiteType) float64 {
	rt = rt.Normalize()
	switch wtype {
	case webvo.TypePME:
		return round2(rt.WebsitePME)
	case webvo.TypeEcommerce:
		return round2(rt.WebsiteEcommerce)
	default:
		return round2(rt.WebsiteVitrine)
	}
}

// ApplyTax returns the tax amount and tax-inclusive total for a subtotal.
func ApplyTax(rt RateTable, subtotal float64) (taxAmount, total float64) {
	rt = rt.Normalize()
	taxAmount = round2(subtotal * rt.TaxRate / 100)
	total = round2(subtotal + taxAmount)
	return taxAmount, total
}
