// internal/domain/entity/route_option.go
package entity

// Category names a route selection rule
type Category string

const (
	CategoryRecommended           Category = "recommended"
	CategoryDirect                Category = "direct"
	CategoryFastest               Category = "fastest"
	CategoryCheapest              Category = "cheapest"
	CategorySameCarrierConnection Category = "sameCarrierConnection"
	CategoryInterline             Category = "interline"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryRecommended,
	CategoryDirect,
	CategoryFastest,
	CategoryCheapest,
	CategorySameCarrierConnection,
	CategoryInterline,
}

// AirportInfo is the airport block rendered on each leg
type AirportInfo struct {
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// CostBreakdown is the rendered tariff detail of one leg
type CostBreakdown struct {
	PricePerKg     *float64     `json:"tariff"`
	Service        string       `json:"service"`
	MatchedCarrier string       `json:"tariffCarrier"`
	WeightKg       float64      `json:"weightKg"`
	Cost           float64      `json:"cost"`
	Source         TariffSource `json:"source"`
}

// FormattedLeg is one display-ready leg
type FormattedLeg struct {
	Category      Category      `json:"category"`
	Carrier       string        `json:"carrier"`
	FlightNumber  string        `json:"flightNumber"`
	Date          string        `json:"date"`
	DepartureTime string        `json:"departureTime"`
	ArrivalTime   string        `json:"arrivalTime"`
	Origin        AirportInfo   `json:"origin"`
	Destination   AirportInfo   `json:"destination"`
	Cost          CostBreakdown `json:"costBreakdown"`
}

// RouteOption is a formatted itinerary. An option with no legs means the
// category had no qualifying itinerary.
type RouteOption struct {
	Legs            []FormattedLeg `json:"legs"`
	TotalDuration   string         `json:"totalDuration,omitempty"`
	DurationMinutes float64        `json:"durationMinutes"`
	TotalCost       string         `json:"totalCost,omitempty"`
	CostValue       float64        `json:"costValue"`
	MissingTariff   bool           `json:"missingTariff"`
	Score           float64        `json:"score"`
}

// Empty reports whether the option carries no itinerary.
func (o RouteOption) Empty() bool {
	return len(o.Legs) == 0
}

// RouteOptions is the answer to a route search, one option per category.
type RouteOptions struct {
	Recommended           RouteOption `json:"recommended"`
	Direct                RouteOption `json:"direct"`
	Fastest               RouteOption `json:"fastest"`
	Cheapest              RouteOption `json:"cheapest"`
	SameCarrierConnection RouteOption `json:"sameCarrierConnection"`
	Interline             RouteOption `json:"interline"`
}

// NewEmptyRouteOptions returns options where every category is an empty list.
func NewEmptyRouteOptions() *RouteOptions {
	empty := RouteOption{Legs: []FormattedLeg{}}
	return &RouteOptions{
		Recommended:           empty,
		Direct:                empty,
		Fastest:               empty,
		Cheapest:              empty,
		SameCarrierConnection: empty,
		Interline:             empty,
	}
}

// Set stores the option for a category.
func (r *RouteOptions) Set(category Category, option RouteOption) {
	switch category {
	case CategoryRecommended:
		r.Recommended = option
	case CategoryDirect:
		r.Direct = option
	case CategoryFastest:
		r.Fastest = option
	case CategoryCheapest:
		r.Cheapest = option
	case CategorySameCarrierConnection:
		r.SameCarrierConnection = option
	case CategoryInterline:
		r.Interline = option
	}
}

// Get returns the option stored for a category.
func (r *RouteOptions) Get(category Category) RouteOption {
	switch category {
	case CategoryRecommended:
		return r.Recommended
	case CategoryDirect:
		return r.Direct
	case CategoryFastest:
		return r.Fastest
	case CategoryCheapest:
		return r.Cheapest
	case CategorySameCarrierConnection:
		return r.SameCarrierConnection
	case CategoryInterline:
		return r.Interline
	}
	return RouteOption{}
}
