package domain

import (
	"time"
)

// View names identify each derived summary table in reports, exports and
// per-view error maps.
const (
	ViewCancellations          = "cancellations"
	ViewCancellationsBySegment = "cancellations_by_segment"
	ViewCancellationsByMonth   = "cancellations_by_month"
	ViewLeadTimeBuckets        = "lead_time_buckets"
	ViewLeadTimeTrend          = "lead_time_trend"
	ViewADRBySegment           = "adr_by_segment"
	ViewADRByCustomerType      = "adr_by_customer_type"
	ViewADRByDayOfWeek         = "adr_by_day_of_week"
	ViewStayPivot              = "stay_pivot"
)

// CancellationOverview totaliza reservas e cancelamentos da tabela inteira
type CancellationOverview struct {
	TotalBookings int `json:"total_bookings"`
	Canceled      int `json:"canceled"`
	NotCanceled   int `json:"not_canceled"`

	// Fraction of canceled bookings, in [0,1].
	CancellationRate float64 `json:"cancellation_rate"`
}

// SegmentCancellation is one market-segment row of the cancellation breakdown.
type SegmentCancellation struct {
	MarketSegment string `json:"market_segment"`
	Bookings      int    `json:"bookings"`
	Canceled      int    `json:"canceled"`

	// Percent, in [0,100].
	CancellationRate float64 `json:"cancellation_rate"`
}

// MonthCancellation is one calendar-month row. Months with no observed rows
// keep Bookings = 0 and a nil rate.
type MonthCancellation struct {
	Month            string   `json:"month"`
	Bookings         int      `json:"bookings"`
	Canceled         int      `json:"canceled"`
	CancellationRate *float64 `json:"cancellation_rate"`
}

// LeadTimeBucket is one fixed lead-time interval row. Empty buckets keep
// Bookings = 0 and a nil rate.
type LeadTimeBucket struct {
	Label            string   `json:"label"`
	Bookings         int      `json:"bookings"`
	Canceled         int      `json:"canceled"`
	CancellationRate *float64 `json:"cancellation_rate"`
}

// TrendPoint is the smoothed cancellation rate (percent) estimated at one
// observed lead-time value.
type TrendPoint struct {
	LeadTime int     `json:"lead_time"`
	Rate     float64 `json:"rate"`
}

// LeadTimeTrend carries the smoothed curve plus the x-axis tick values the
// dashboard renders (multiples of 100 covering the observed lead times).
type LeadTimeTrend struct {
	Points []TrendPoint `json:"points"`
	Ticks  []int        `json:"ticks"`
}

// SegmentADR is one market-segment row of the mean-ADR ranking.
type SegmentADR struct {
	MarketSegment string  `json:"market_segment"`
	MeanADR       float64 `json:"mean_adr"`
}

// CustomerTypeADR is one customer-type row of the mean-ADR ranking.
type CustomerTypeADR struct {
	CustomerType string  `json:"customer_type"`
	MeanADR      float64 `json:"mean_adr"`
}

// WeekdayADR is one day-of-week row combining mean ADR and booking volume.
type WeekdayADR struct {
	DayOfWeek string  `json:"day_of_week"`
	MeanADR   float64 `json:"mean_adr"`
	Bookings  int     `json:"bookings"`
}

// StayPivotRow is one country row of the length-of-stay pivot. MeanStay is
// aligned with the pivot's CustomerTypes; a nil cell means the combination
// was never observed.
type StayPivotRow struct {
	Country  string     `json:"country"`
	Code     string     `json:"code"`
	Bookings int        `json:"bookings"`
	MeanStay []*float64 `json:"mean_stay"`
}

// StayPivot is the mean length of stay for the most frequent countries,
// pivoted by customer type.
type StayPivot struct {
	CustomerTypes []string       `json:"customer_types"`
	Rows          []StayPivotRow `json:"rows"`
}

// DashboardReport gathers every derived view for the report and export
// surfaces. A failed view leaves its field empty and registers a message in
// Errors keyed by view name; the remaining views are unaffected.
type DashboardReport struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Snapshot    *DatasetSnapshot `json:"snapshot,omitempty"`

	Cancellations          *CancellationOverview `json:"cancellations,omitempty"`
	CancellationsBySegment []SegmentCancellation `json:"cancellations_by_segment,omitempty"`
	CancellationsByMonth   []MonthCancellation   `json:"cancellations_by_month,omitempty"`
	LeadTimeBuckets        []LeadTimeBucket      `json:"lead_time_buckets,omitempty"`
	LeadTimeTrend          *LeadTimeTrend        `json:"lead_time_trend,omitempty"`
	ADRBySegment           []SegmentADR          `json:"adr_by_segment,omitempty"`
	ADRByCustomerType      []CustomerTypeADR     `json:"adr_by_customer_type,omitempty"`
	ADRByDayOfWeek         []WeekdayADR          `json:"adr_by_day_of_week,omitempty"`
	StayPivot              *StayPivot            `json:"stay_pivot,omitempty"`

	Errors map[string]string `json:"errors,omitempty"`
}
