package insighting

import (
	"sort"

	"github.com/stayview/booking-insights-api/internal/domain"
	"github.com/stayview/booking-insights-api/pkg/utils"
)

// DefaultTopCountries is how many countries the length-of-stay pivot keeps.
const DefaultTopCountries = 10

type stayCell struct {
	sum   int
	count int
}

// StayPivot restricts the table to the topN countries by booking volume and
// pivots mean total stay by country and customer type. Combinations never
// observed stay nil. Country ties break by name so the cut is deterministic.
func StayPivot(table domain.BookingTable, topN int) (*domain.StayPivot, error) {
	if len(table) == 0 {
		return nil, newEmptyInputError(domain.ViewStayPivot)
	}

	if topN <= 0 {
		topN = DefaultTopCountries
	}

	countryCounts := make(map[string]int)
	countries := make([]string, 0)
	typeSet := make(map[string]bool)
	customerTypes := make([]string, 0)

	for _, booking := range table {
		if _, ok := countryCounts[booking.CountryName]; !ok {
			countries = append(countries, booking.CountryName)
		}
		countryCounts[booking.CountryName]++

		if !typeSet[booking.CustomerType] {
			typeSet[booking.CustomerType] = true
			customerTypes = append(customerTypes, booking.CustomerType)
		}
	}

	sort.Slice(countries, func(i, j int) bool {
		if countryCounts[countries[i]] != countryCounts[countries[j]] {
			return countryCounts[countries[i]] > countryCounts[countries[j]]
		}
		return countries[i] < countries[j]
	})
	if len(countries) > topN {
		countries = countries[:topN]
	}

	sort.Strings(customerTypes)

	kept := make(map[string]bool, len(countries))
	for _, country := range countries {
		kept[country] = true
	}

	cells := make(map[string]map[string]*stayCell, len(countries))
	for _, booking := range table {
		if !kept[booking.CountryName] {
			continue
		}

		byType, ok := cells[booking.CountryName]
		if !ok {
			byType = make(map[string]*stayCell)
			cells[booking.CountryName] = byType
		}

		cell, ok := byType[booking.CustomerType]
		if !ok {
			cell = &stayCell{}
			byType[booking.CustomerType] = cell
		}

		cell.sum += booking.TotalStay
		cell.count++
	}

	rows := make([]domain.StayPivotRow, 0, len(countries))
	for _, country := range countries {
		row := domain.StayPivotRow{
			Country:  country,
			Code:     domain.CountryCode(country),
			Bookings: countryCounts[country],
			MeanStay: make([]*float64, len(customerTypes)),
		}

		for i, customerType := range customerTypes {
			cell, ok := cells[country][customerType]
			if !ok {
				continue
			}
			mean := utils.RoundWithTwoDecimalPlace(float64(cell.sum) / float64(cell.count))
			row.MeanStay[i] = &mean
		}

		rows = append(rows, row)
	}

	return &domain.StayPivot{
		CustomerTypes: customerTypes,
		Rows:          rows,
	}, nil
}
