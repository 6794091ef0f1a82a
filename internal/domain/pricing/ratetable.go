// Package pricing implements the rate table and the pure price calculators
// for interventions, cloud storage, maintenance plans, website projects, and
// composed quotes. Nothing in this package performs I/O; the rate table is
// always passed in explicitly.
package pricing

// Published default rates. These apply whenever the persisted rate
// configuration is absent or a field was left zero.
const (
	DefaultInterventionHourlyRate = 75.0
	DefaultTravelRate             = 0.65
	DefaultUrgentSurcharge        = 50.0
	DefaultCloudStorageBase       = 10.0
	DefaultCloudStoragePerGB      = 2.0
	DefaultWebsiteVitrine         = 25.0
	DefaultWebsitePME             = 60.0
	DefaultWebsiteEcommerce       = 90.0
	DefaultMaintenanceBase        = 25.0
	DefaultMaintenanceStandard    = 45.0
	DefaultMaintenancePlus        = 75.0
	DefaultMaintenancePrestige    = 120.0
	DefaultTaxRate                = 15.0
)

// RateTable holds every configurable price the calculators use. Amounts are
// in dollars; TaxRate is a percentage.
type RateTable struct {
	InterventionHourlyRate float64 `json:"intervention_hourly_rate"`
	TravelRate             float64 `json:"travel_rate"`
	UrgentSurcharge        float64 `json:"urgent_surcharge"`
	CloudStorageBase       float64 `json:"cloud_storage_base"`
	CloudStoragePerGB      float64 `json:"cloud_storage_per_gb"`
	WebsiteVitrine         float64 `json:"website_vitrine"`
	WebsitePME             float64 `json:"website_pme"`
	WebsiteEcommerce       float64 `json:"website_ecommerce"`
	MaintenanceBase        float64 `json:"maintenance_base"`
	MaintenanceStandard    float64 `json:"maintenance_standard"`
	MaintenancePlus        float64 `json:"maintenance_plus"`
	MaintenancePrestige    float64 `json:"maintenance_prestige"`
	TaxRate                float64 `json:"tax_rate"`
}

// DefaultRateTable returns the published default rates.
func DefaultRateTable() RateTable {
	return RateTable{
		InterventionHourlyRate: DefaultInterventionHourlyRate,
		TravelRate:             DefaultTravelRate,
		UrgentSurcharge:        DefaultUrgentSurcharge,
		CloudStorageBase:       DefaultCloudStorageBase,
		CloudStoragePerGB:      DefaultCloudStoragePerGB,
		WebsiteVitrine:         DefaultWebsiteVitrine,
		WebsitePME:             DefaultWebsitePME,
		WebsiteEcommerce:       DefaultWebsiteEcommerce,
		MaintenanceBase:        DefaultMaintenanceBase,
		MaintenanceStandard:    DefaultMaintenanceStandard,
		MaintenancePlus:        DefaultMaintenancePlus,
		MaintenancePrestige:    DefaultMaintenancePrestige,
		TaxRate:                DefaultTaxRate,
	}
}

// Normalize returns a copy with zero-valued fields replaced by the published
// defaults. Calculators never fail on an incomplete table; they degrade to
// defaults. Callers cannot tell a configured default apart from a fallback,
// which matches the resilience-over-strictness posture of the billing flow.
func (rt RateTable) Normalize() RateTable {
	def := DefaultRateTable()
	if rt.InterventionHourlyRate == 0 {
		rt.InterventionHourlyRate = def.InterventionHourlyRate
	}
	if rt.TravelRate == 0 {
		rt.TravelRate = def.TravelRate
	}
	if rt.UrgentSurcharge == 0 {
		rt.UrgentSurcharge = def.UrgentSurcharge
	}
	if rt.CloudStorageBase == 0 {
		rt.CloudStorageBase = def.CloudStorageBase
	}
	if rt.CloudStoragePerGB == 0 {
		rt.CloudStoragePerGB = def.CloudStoragePerGB
	}
	if rt.WebsiteVitrine == 0 {
		rt.WebsiteVitrine = def.WebsiteVitrine
	}
	if rt.WebsitePME == 0 {
		rt.WebsitePME = def.WebsitePME
	}
	if rt.WebsiteEcommerce == 0 {
		rt.WebsiteEcommerce = def.WebsiteEcommerce
	}
	if rt.MaintenanceBase == 0 {
		rt.MaintenanceBase = def.MaintenanceBase
	}
	if rt.MaintenanceStandard == 0 {
		rt.MaintenanceStandard = def.MaintenanceStandard
	}
	if rt.MaintenancePlus == 0 {
		rt.MaintenancePlus = def.MaintenancePlus
	}
	if rt.MaintenancePrestige == 0 {
		rt.MaintenancePrestige = def.MaintenancePrestige
	}
	if rt.TaxRate == 0 {
		rt.TaxRate = def.TaxRate
	}
	return rt
}
