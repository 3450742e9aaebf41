package repository

import (
	"time"

	"gorm.io/gorm"
)

// ScheduleRevisions GORM model: one imported schedule file
type ScheduleRevisions struct {
	gorm.Model
	ReferenceMonth time.Time `gorm:"column:reference_month;type:date;not null;index"`
	SourceFile     string    `gorm:"column:source_file;type:varchar(255)"`
	UploadedBy     string    `gorm:"column:uploaded_by;type:varchar(100)"`
	Action         string    `gorm:"column:action;type:varchar(50);not null;default:'import'"`
	Active         bool      `gorm:"column:active;default:true;index"`
}

// TableName overrides the default table name
func (ScheduleRevisions) TableName() string {
	return "schedule_revisions"
}

// FlightLegs GORM model. Clocks are nominal "HH:MM:SS" strings; the arrival
// clock shares the departure date.
type FlightLegs struct {
	gorm.Model
	RevisionID       uint      `gorm:"column:revision_id;not null;index"`
	Carrier          string    `gorm:"column:carrier;type:varchar(10);not null"`
	FlightNumber     string    `gorm:"column:flight_number;type:varchar(20);not null"`
	DepartureDate    time.Time `gorm:"column:departure_date;type:date;not null;index"`
	Origin           string    `gorm:"column:origin;type:varchar(5);not null"`
	DepartureTime    string    `gorm:"column:departure_time;type:varchar(8);not null"`
	ArrivalTime      string    `gorm:"column:arrival_time;type:varchar(8);not null"`
	Destination      string    `gorm:"column:destination;type:varchar(5);not null"`
	EstimatedMinutes *int      `gorm:"column:estimated_minutes"`
}

// TableName overrides the default table name
func (FlightLegs) TableName() string {
	return "flight_legs"
}

// TariffRevisions GORM model: one imported tariff table
type TariffRevisions struct {
	gorm.Model
	ReferenceDate time.Time `gorm:"column:reference_date;type:date;not null;index"`
	SourceFile    string    `gorm:"column:source_file;type:varchar(255)"`
	UploadedBy    string    `gorm:"column:uploaded_by;type:varchar(100)"`
	Active        bool      `gorm:"column:active;default:true;index"`
}

// TableName overrides the default table name
func (TariffRevisions) TableName() string {
	return "tariff_revisions"
}

// Tariffs GORM model. price_raw keeps the imported cell ("R$ 12,50", "-") and is
// parsed when price_per_kg is NULL; a cell that does not parse means the price is unpublished.
type Tariffs struct {
	gorm.Model
	RevisionID  uint     `gorm:"column:revision_id;not null;index"`
	Origin      string   `gorm:"column:origin;type:varchar(5);not null;index:idx_tariff_route"`
	Destination string   `gorm:"column:destination;type:varchar(5);not null;index:idx_tariff_route"`
	Carrier     string   `gorm:"column:carrier;type:varchar(20);not null"`
	Service     string   `gorm:"column:service;type:varchar(100);not null"`
	PricePerKg  *float64 `gorm:"column:price_per_kg"`
	PriceRaw    string   `gorm:"column:price_raw;type:varchar(50)"`
}

// TableName overrides the default table name
func (Tariffs) TableName() string {
	return "tariffs"
}

// CarrierConfigs GORM model for partnership scores
type CarrierConfigs struct {
	gorm.Model
	Carrier string `gorm:"column:carrier;type:varchar(10);not null;uniqueIndex"`
	Score   int    `gorm:"column:score;default:50"`
	Active  bool   `gorm:"column:active;default:true"`
}

// TableName overrides the default table name
func (CarrierConfigs) TableName() string {
	return "carrier_configs"
}

// Airports GORM model for airport display metadata
type Airports struct {
	gorm.Model
	CountryCode string  `gorm:"column:country_code;type:varchar(5)"`
	Region      string  `gorm:"column:region;type:varchar(100)"`
	IataCode    string  `gorm:"column:iata_code;type:varchar(3);uniqueIndex"`
	IcaoCode    string  `gorm:"column:icao_code;type:varchar(4)"`
	Name        string  `gorm:"column:name;type:varchar(255)"`
	Latitude    float64 `gorm:"column:latitude"`
	Longitude   float64 `gorm:"column:longitude"`
}

// TableName overrides the default table name
func (Airports) TableName() string {
	return "airports"
}

// Models lists every GORM model, in migration order
func Models() []interface{} {
	return []interface{}{
		&ScheduleRevisions{},
		&FlightLegs{},
		&TariffRevisions{},
		&Tariffs{},
		&CarrierConfigs{},
		&Airports{},
	}
}
