package entity

// Airport is the display metadata for an airport code
type Airport struct {
	Code      string
	Name      string
	Latitude  float64
	Longitude float64
}

// UnknownAirport is used when no metadata exists for a code: the code doubles as the name.
func UnknownAirport(code string) Airport {
	return Airport{Code: code, Name: code}
}
