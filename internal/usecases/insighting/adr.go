package insighting

import (
	"fmt"
	"math"
	"sort"

	"github.com/stayview/booking-insights-api/internal/domain"
	"github.com/stayview/booking-insights-api/pkg/utils"
)

type adrGroup struct {
	sum   float64
	count int
}

// groupADR accumulates ADR sums per key. A NaN rate fails the view: silently
// averaging around bad values would misreport revenue.
func groupADR(table domain.BookingTable, view string, keyOf func(domain.Booking) string) (map[string]*adrGroup, []string, error) {
	groups := make(map[string]*adrGroup)
	keys := make([]string, 0)

	for _, booking := range table {
		if math.IsNaN(booking.ADR) {
			return nil, nil, newTypeMismatchError(view, "adr is not a number")
		}

		key := keyOf(booking)
		group, ok := groups[key]
		if !ok {
			group = &adrGroup{}
			groups[key] = group
			keys = append(keys, key)
		}

		group.sum += booking.ADR
		group.count++
	}

	sort.Strings(keys)

	return groups, keys, nil
}

func (g *adrGroup) mean() float64 {
	return utils.RoundWithTwoDecimalPlace(g.sum / float64(g.count))
}

// ADRBySegment ranks market segments by mean ADR, highest first. Ties keep
// ascending segment order.
func ADRBySegment(table domain.BookingTable) ([]domain.SegmentADR, error) {
	if len(table) == 0 {
		return nil, newEmptyInputError(domain.ViewADRBySegment)
	}

	groups, segments, err := groupADR(table, domain.ViewADRBySegment, func(b domain.Booking) string {
		return b.MarketSegment
	})
	if err != nil {
		return nil, err
	}

	rows := make([]domain.SegmentADR, 0, len(segments))
	for _, segment := range segments {
		rows = append(rows, domain.SegmentADR{
			MarketSegment: segment,
			MeanADR:       groups[segment].mean(),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].MeanADR > rows[j].MeanADR
	})

	return rows, nil
}

// ADRByCustomerType ranks customer types by mean ADR, lowest first.
func ADRByCustomerType(table domain.BookingTable) ([]domain.CustomerTypeADR, error) {
	if len(table) == 0 {
		return nil, newEmptyInputError(domain.ViewADRByCustomerType)
	}

	groups, types, err := groupADR(table, domain.ViewADRByCustomerType, func(b domain.Booking) string {
		return b.CustomerType
	})
	if err != nil {
		return nil, err
	}

	rows := make([]domain.CustomerTypeADR, 0, len(types))
	for _, customerType := range types {
		rows = append(rows, domain.CustomerTypeADR{
			CustomerType: customerType,
			MeanADR:      groups[customerType].mean(),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].MeanADR < rows[j].MeanADR
	})

	return rows, nil
}

// ADRByDayOfWeek combines mean ADR and booking volume per arrival weekday.
// Rows follow the fixed Monday-Sunday order; only observed weekdays appear.
func ADRByDayOfWeek(table domain.BookingTable) ([]domain.WeekdayADR, error) {
	if len(table) == 0 {
		return nil, newEmptyInputError(domain.ViewADRByDayOfWeek)
	}

	groups, days, err := groupADR(table, domain.ViewADRByDayOfWeek, func(b domain.Booking) string {
		return b.DayOfWeek
	})
	if err != nil {
		return nil, err
	}

	for _, day := range days {
		if _, ok := domain.WeekdayPosition(day); !ok {
			return nil, newDomainError(
				domain.ViewADRByDayOfWeek,
				fmt.Sprintf("unknown day of week %q", day),
			)
		}
	}

	rows := make([]domain.WeekdayADR, 0, len(days))
	for _, day := range domain.WeekdayNames {
		group, ok := groups[day]
		if !ok {
			continue
		}
		rows = append(rows, domain.WeekdayADR{
			DayOfWeek: day,
			MeanADR:   group.mean(),
			Bookings:  group.count,
		})
	}

	return rows, nil
}
