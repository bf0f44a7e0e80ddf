package insighting

import (
	"fmt"
	"sort"

	"github.com/stayview/booking-insights-api/internal/domain"
	"github.com/stayview/booking-insights-api/pkg/utils"
)

// CancellationOverview conta reservas e cancelamentos da tabela inteira.
// The rate is a fraction in [0,1]; total = canceled + not canceled always
// holds.
func CancellationOverview(table domain.BookingTable) (*domain.CancellationOverview, error) {
	if len(table) == 0 {
		return nil, newEmptyInputError(domain.ViewCancellations)
	}

	canceled := 0
	for _, booking := range table {
		canceled += booking.IsCanceled
	}

	total := len(table)

	return &domain.CancellationOverview{
		TotalBookings:    total,
		Canceled:         canceled,
		NotCanceled:      total - canceled,
		CancellationRate: float64(canceled) / float64(total),
	}, nil
}

// CancellationsBySegment breaks cancellations down by market segment. Only
// segments observed in the data appear, one row each, in ascending segment
// order. Rates are percentages.
func CancellationsBySegment(table domain.BookingTable) ([]domain.SegmentCancellation, error) {
	if len(table) == 0 {
		return nil, newEmptyInputError(domain.ViewCancellationsBySegment)
	}

	groups := make(map[string]*domain.SegmentCancellation)
	segments := make([]string, 0)

	for _, booking := range table {
		group, ok := groups[booking.MarketSegment]
		if !ok {
			group = &domain.SegmentCancellation{MarketSegment: booking.MarketSegment}
			groups[booking.MarketSegment] = group
			segments = append(segments, booking.MarketSegment)
		}

		group.Bookings++
		group.Canceled += booking.IsCanceled
	}

	sort.Strings(segments)

	rows := make([]domain.SegmentCancellation, 0, len(segments))
	for _, segment := range segments {
		group := groups[segment]
		group.CancellationRate = utils.Percentage(group.Canceled, group.Bookings)
		rows = append(rows, *group)
	}

	return rows, nil
}

// CancellationsByMonth rolls cancellations up over the fixed January-December
// category. All 12 months appear in calendar order; months with no observed
// rows keep count 0 and a nil rate.
func CancellationsByMonth(table domain.BookingTable) ([]domain.MonthCancellation, error) {
	if len(table) == 0 {
		return nil, newEmptyInputError(domain.ViewCancellationsByMonth)
	}

	rows := make([]domain.MonthCancellation, len(domain.MonthNames))
	for i, month := range domain.MonthNames {
		rows[i] = domain.MonthCancellation{Month: month}
	}

	for _, booking := range table {
		pos, ok := domain.MonthPosition(booking.ArrivalMonth)
		if !ok {
			return nil, newDomainError(
				domain.ViewCancellationsByMonth,
				fmt.Sprintf("unknown arrival month %q", booking.ArrivalMonth),
			)
		}

		rows[pos].Bookings++
		rows[pos].Canceled += booking.IsCanceled
	}

	for i := range rows {
		if rows[i].Bookings == 0 {
			continue
		}
		rate := utils.Percentage(rows[i].Canceled, rows[i].Bookings)
		rows[i].CancellationRate = &rate
	}

	return rows, nil
}
