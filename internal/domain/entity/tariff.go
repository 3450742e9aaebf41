package entity

// TariffSource describes how a leg's tariff was resolved
type TariffSource string

const (
	TariffExact       TariffSource = "exact"
	TariffFallback    TariffSource = "fallback"
	TariffUnpublished TariffSource = "unpublished"
	TariffNone        TariffSource = "none"
)

// TariffEntry is one freight tariff row. A nil PricePerKg means the service is
// bookable but its price is unpublished, which differs from having no entry at all.
type TariffEntry struct {
	Origin      string
	Destination string
	Carrier     string
	Service     string
	PricePerKg  *float64
}

// Priced reports whether the entry carries a published price.
func (t *TariffEntry) Priced() bool {
	return t != nil && t.PricePerKg != nil
}

// LegCost is the per-leg cost breakdown attached to an itinerary.
type LegCost struct {
	PricePerKg     *float64
	Service        string
	MatchedCarrier string
	WeightKg       float64
	Cost           float64
	Source         TariffSource
}

// Missing reports whether the leg has no usable price.
func (c LegCost) Missing() bool {
	return c.Source == TariffUnpublished || c.Source == TariffNone
}
