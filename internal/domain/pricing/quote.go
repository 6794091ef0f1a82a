package pricing

import (
	"fmt"
	"time"

	subvo "github.com/techile/fieldportal/internal/domain/subscription/valueobjects"
	webvo "github.com/techile/fieldportal/internal/domain/website/valueobjects"
	"github.com/techile/fieldportal/internal/shared/constants"
	"github.com/techile/fieldportal/internal/shared/id"
)

// QuoteItemType labels a quote line with the service it prices.
type QuoteItemType string

const (
	QuoteItemIntervention QuoteItemType = "intervention"
	QuoteItemCloud        QuoteItemType = "cloud_storage"
	QuoteItemMaintenance  QuoteItemType = "maintenance"
	QuoteItemWebsite      QuoteItemType = "website"
)

// QuoteRequest describes the services a prospect wants priced. Each section
// is optional; only requested sections produce line items.
type QuoteRequest struct {
	Intervention *InterventionRequest `json:"intervention,omitempty"`
	CloudGB      float64              `json:"cloud_gb,omitempty"`
	Maintenance  subvo.PlanTier       `json:"maintenance,omitempty"`
	Website      webvo.WebsiteType    `json:"website,omitempty"`
}

// InterventionRequest is the intervention section of a quote request.
type InterventionRequest struct {
	DurationMinutes int     `json:"duration_minutes"`
	DistanceKM      float64 `json:"distance_km"`
	Urgent          bool    `json:"urgent"`
}

// IsEmpty reports whether the request asks for nothing.
func (r QuoteRequest) IsEmpty() bool {
	return r.Intervention == nil && r.CloudGB <= 0 && r.Maintenance == "" && r.Website == ""
}

// QuoteItem is one priced line of a quote. Recurring lines are billed
// monthly; the rest are one-time charges. Both kinds count toward the
// quote subtotal so the client sees the full first-month cost.
type QuoteItem struct {
	Type        QuoteItemType `json:"type"`
	Description string        `json:"description"`
	Price       float64       `json:"price"`
	Recurring   bool          `json:"recurring"`
	Details     string        `json:"details,omitempty"`
}

// Quote is a priced set of services with tax applied, valid until ExpiresAt.
type Quote struct {
	Reference string      `json:"reference"`
	Items     []QuoteItem `json:"items"`
	Subtotal  float64     `json:"subtotal"`
	TaxAmount float64     `json:"tax_amount"`
	Total     float64     `json:"total"`
	CreatedAt time.Time   `json:"created_at"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// GenerateQuote prices every requested section with the given rate table and
// composes the lines into a quote. The subtotal sums one-time and recurring
// lines together.
func GenerateQuote(rt RateTable, req QuoteRequest, now time.Time) Quote {
	rt = rt.Normalize()
	items := make([]QuoteItem, 0, 4)

	if req.Intervention != nil {
		iv := *req.Intervention
		p := CalculateInterventionPrice(rt, iv.DurationMinutes, iv.DistanceKM, iv.Urgent)
		desc := "Intervention technique"
		if iv.Urgent {
			desc = "Intervention technique (urgente)"
		}
		items = append(items, QuoteItem{
			Type:        QuoteItemIntervention,
			Description: desc,
			Price:       p.Subtotal,
			Recurring:   false,
			Details:     fmt.Sprintf("%d min, %.1f km", iv.DurationMinutes, iv.DistanceKM),
		})
	}

	if req.CloudGB > 0 {
		items = append(items, QuoteItem{
			Type:        QuoteItemCloud,
			Description: "Stockage cloud",
			Price:       CalculateCloudPrice(rt, req.CloudGB),
			Recurring:   true,
			Details:     fmt.Sprintf("%.0f GB", req.CloudGB),
		})
	}

	if req.Maintenance != "" {
		items = append(items, QuoteItem{
			Type:        QuoteItemMaintenance,
			Description: fmt.Sprintf("Forfait maintenance %s", req.Maintenance),
			Price:       MaintenancePrice(rt, req.Maintenance),
			Recurring:   true,
		})
	}

	if req.Website != "" {
		items = append(items, QuoteItem{
			Type:        QuoteItemWebsite,
			Description: fmt.Sprintf("Site web %s", req.Website),
			Price:       WebsitePrice(rt, req.Website),
			Recurring:   true,
		})
	}

	var subtotal float64
	for _, it := range items {
		subtotal += it.Price
	}
	subtotal = round2(subtotal)
	tax, total := ApplyTax(rt, subtotal)

	return Quote{
		Reference: id.MustGenerateWithPrefix(id.PrefixQuote, 8),
		Items:     items,
		Subtotal:  subtotal,
		TaxAmount: tax,
		Total:     total,
		CreatedAt: now,
		ExpiresAt: now.AddDate(0, 0, constants.QuoteValidityDays),
	}
}
