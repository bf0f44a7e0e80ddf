// Package datasource loads the cleaned hotel bookings dataset from its
// supported backends (CSV, XLSX, Postgres) into the domain booking table.
package datasource

import (
	"context"

	"github.com/stayview/booking-insights-api/internal/domain"
)

// Schema columns every source must provide, in canonical order.
var requiredColumns = []string{
	"arrival_date",
	"lead_time",
	"is_canceled",
	"market_segment",
	"customer_type",
	"adr",
	"country_name",
	"stays_in_weekend_nights",
	"stays_in_week_nights",
	"arrival_date_month",
}

// Source is one backend holding the bookings dataset.
type Source interface {
	// Identity names the source uniquely, e.g. the file path or the
	// database table.
	Identity() string

	// Fingerprint detects source changes cheaply, without a full load.
	Fingerprint(ctx context.Context) (string, error)

	// Fetch loads and validates the whole table. Any malformed row aborts
	// the load; there is never a partial table.
	Fetch(ctx context.Context) (domain.BookingTable, error)
}
