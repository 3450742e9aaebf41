package utils

// Display and schedule layouts
const (
	DATE_LAYOUT     = "02/01/2006"
	CLOCK_LAYOUT    = "15:04"
	ISO_DATE_LAYOUT = "2006-01-02"
)
