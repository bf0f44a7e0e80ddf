package insighting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stayview/booking-insights-api/internal/domain"
)

func TestLeadTimeBucketIndex(t *testing.T) {
	tests := []struct {
		leadTime int
		expected int
	}{
		{0, 0},
		{5, 0},
		{7, 0},
		{8, 1},
		{30, 1},
		{31, 2},
		{60, 2},
		{61, 3},
		{90, 3},
		{91, 4},
		{500, 4},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, leadTimeBucketIndex(tt.leadTime),
			"lead time %d", tt.leadTime)
	}
}

func TestLeadTimeBuckets(t *testing.T) {
	table := domain.BookingTable{
		{LeadTime: 5, IsCanceled: 1},
		{LeadTime: 5, IsCanceled: 0},
		{LeadTime: 40, IsCanceled: 1},
	}

	rows, err := LeadTimeBuckets(table)
	assert.NoError(t, err)
	assert.Len(t, rows, 5)

	assert.Equal(t, "0-7 days", rows[0].Label)
	assert.Equal(t, 2, rows[0].Bookings)
	assert.Equal(t, 1, rows[0].Canceled)
	assert.NotNil(t, rows[0].CancellationRate)
	assert.Equal(t, 50.0, *rows[0].CancellationRate)

	assert.Equal(t, "8-30 days", rows[1].Label)
	assert.Equal(t, 0, rows[1].Bookings)
	assert.Nil(t, rows[1].CancellationRate)

	assert.Equal(t, "31-60 days", rows[2].Label)
	assert.Equal(t, 1, rows[2].Bookings)
	assert.NotNil(t, rows[2].CancellationRate)
	assert.Equal(t, 100.0, *rows[2].CancellationRate)

	assert.Equal(t, "61-90 days", rows[3].Label)
	assert.Nil(t, rows[3].CancellationRate)

	assert.Equal(t, "90+ days", rows[4].Label)
	assert.Nil(t, rows[4].CancellationRate)
}

func TestLeadTimeBuckets_PartitionsEveryBooking(t *testing.T) {
	leads := []int{0, 7, 8, 30, 31, 60, 61, 90, 91, 500}

	table := make(domain.BookingTable, 0, len(leads))
	for _, lead := range leads {
		table = append(table, domain.Booking{LeadTime: lead})
	}

	rows, err := LeadTimeBuckets(table)
	assert.NoError(t, err)

	total := 0
	for _, row := range rows {
		total += row.Bookings
	}
	assert.Equal(t, len(table), total)

	// Limites inclusivos caem na faixa inferior
	assert.Equal(t, 2, rows[0].Bookings)
	assert.Equal(t, 2, rows[1].Bookings)
	assert.Equal(t, 2, rows[2].Bookings)
	assert.Equal(t, 2, rows[3].Bookings)
	assert.Equal(t, 2, rows[4].Bookings)
}

func TestLeadTimeBuckets_NegativeLeadTime(t *testing.T) {
	table := domain.BookingTable{
		{LeadTime: 10},
		{LeadTime: -1},
	}

	_, err := LeadTimeBuckets(table)
	assert.True(t, IsDomainError(err))
}

func TestLeadTimeBuckets_EmptyTable(t *testing.T) {
	_, err := LeadTimeBuckets(domain.BookingTable{})
	assert.True(t, IsEmptyInputError(err))
}

func TestLeadTimeTrend_ConstantCancellation(t *testing.T) {
	table := make(domain.BookingTable, 0, 10)
	for lead := 0; lead < 100; lead += 10 {
		table = append(table, domain.Booking{LeadTime: lead, IsCanceled: 1})
	}

	trend, err := LeadTimeTrend(table)
	assert.NoError(t, err)
	assert.Len(t, trend.Points, 10)

	for _, point := range trend.Points {
		assert.InDelta(t, 100.0, point.Rate, 1e-9)
	}
	assert.Equal(t, []int{0, 100}, trend.Ticks)
}

func TestLeadTimeTrend_NoCancellations(t *testing.T) {
	table := make(domain.BookingTable, 0, 10)
	for lead := 0; lead < 50; lead += 5 {
		table = append(table, domain.Booking{LeadTime: lead, IsCanceled: 0})
	}

	trend, err := LeadTimeTrend(table)
	assert.NoError(t, err)

	for _, point := range trend.Points {
		assert.InDelta(t, 0.0, point.Rate, 1e-9)
	}
}

func TestLeadTimeTrend_SamplesAtDistinctLeadTimes(t *testing.T) {
	table := domain.BookingTable{
		{LeadTime: 30, IsCanceled: 1},
		{LeadTime: 10, IsCanceled: 0},
		{LeadTime: 10, IsCanceled: 1},
		{LeadTime: 20, IsCanceled: 0},
	}

	trend, err := LeadTimeTrend(table)
	assert.NoError(t, err)
	assert.Len(t, trend.Points, 3)

	// Um ponto por valor distinto de antecedência, em ordem crescente
	assert.Equal(t, 10, trend.Points[0].LeadTime)
	assert.Equal(t, 20, trend.Points[1].LeadTime)
	assert.Equal(t, 30, trend.Points[2].LeadTime)

	for _, point := range trend.Points {
		assert.GreaterOrEqual(t, point.Rate, 0.0)
		assert.LessOrEqual(t, point.Rate, 100.0)
	}
}

func TestLeadTimeTrend_TicksCoverObservedRange(t *testing.T) {
	table := domain.BookingTable{
		{LeadTime: 0, IsCanceled: 0},
		{LeadTime: 125, IsCanceled: 1},
		{LeadTime: 250, IsCanceled: 0},
	}

	trend, err := LeadTimeTrend(table)
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 100, 200, 300}, trend.Ticks)
}

func TestLeadTimeTrend_SingleLeadTime(t *testing.T) {
	table := domain.BookingTable{
		{LeadTime: 0, IsCanceled: 1},
		{LeadTime: 0, IsCanceled: 0},
	}

	trend, err := LeadTimeTrend(table)
	assert.NoError(t, err)
	assert.Len(t, trend.Points, 1)
	assert.InDelta(t, 50.0, trend.Points[0].Rate, 1e-9)
	assert.Equal(t, []int{0}, trend.Ticks)
}

func TestLeadTimeTrend_NegativeLeadTime(t *testing.T) {
	table := domain.BookingTable{
		{LeadTime: -7, IsCanceled: 1},
	}

	_, err := LeadTimeTrend(table)
	assert.True(t, IsDomainError(err))
}

func TestLeadTimeTrend_EmptyTable(t *testing.T) {
	_, err := LeadTimeTrend(nil)
	assert.True(t, IsEmptyInputError(err))
}
