package domain

import (
	"time"
)

// Booking representa uma reserva do dataset limpo de hotelaria
type Booking struct {
	ArrivalDate   time.Time `json:"arrival_date"`
	LeadTime      int       `json:"lead_time"`
	IsCanceled    int       `json:"is_canceled"`
	MarketSegment string    `json:"market_segment"`
	CustomerType  string    `json:"customer_type"`
	ADR           float64   `json:"adr"`
	CountryName   string    `json:"country_name"`
	WeekendNights int       `json:"stays_in_weekend_nights"`
	WeekNights    int       `json:"stays_in_week_nights"`
	ArrivalMonth  string    `json:"arrival_date_month"`

	// Derived at load time.
	DayOfWeek string `json:"day_of_week"`
	TotalStay int    `json:"total_stay"`
}

// BookingTable is the in-memory dataset every aggregation reads from.
// Row order carries no meaning.
type BookingTable []Booking

// DatasetSnapshot describes one cached materialization of the booking table.
type DatasetSnapshot struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	Fingerprint string    `json:"fingerprint"`
	Rows        int       `json:"rows"`
	LoadedAt    time.Time `json:"loaded_at"`
}
