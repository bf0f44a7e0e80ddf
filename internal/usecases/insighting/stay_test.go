package insighting

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stayview/booking-insights-api/internal/domain"
)

func TestStayPivot(t *testing.T) {
	table := domain.BookingTable{
		{CountryName: "Portugal", CustomerType: "Transient", TotalStay: 2},
		{CountryName: "Portugal", CustomerType: "Transient", TotalStay: 4},
		{CountryName: "Portugal", CustomerType: "Group", TotalStay: 10},
		{CountryName: "France", CustomerType: "Group", TotalStay: 7},
	}

	pivot, err := StayPivot(table, 10)
	assert.NoError(t, err)

	// Tipos de cliente em ordem alfabética
	assert.Equal(t, []string{"Group", "Transient"}, pivot.CustomerTypes)
	assert.Len(t, pivot.Rows, 2)

	portugal := pivot.Rows[0]
	assert.Equal(t, "Portugal", portugal.Country)
	assert.Equal(t, "PRT", portugal.Code)
	assert.Equal(t, 3, portugal.Bookings)
	assert.NotNil(t, portugal.MeanStay[0])
	assert.Equal(t, 10.0, *portugal.MeanStay[0])
	assert.NotNil(t, portugal.MeanStay[1])
	assert.Equal(t, 3.0, *portugal.MeanStay[1])

	france := pivot.Rows[1]
	assert.Equal(t, "France", france.Country)
	assert.Equal(t, "FRA", france.Code)
	assert.NotNil(t, france.MeanStay[0])
	assert.Equal(t, 7.0, *france.MeanStay[0])

	// Combinação nunca observada fica nula
	assert.Nil(t, france.MeanStay[1])
}

func TestStayPivot_KeepsTopCountriesByVolume(t *testing.T) {
	table := make(domain.BookingTable, 0)
	for i := 1; i <= 12; i++ {
		country := fmt.Sprintf("Country %02d", i)
		for j := 0; j < i; j++ {
			table = append(table, domain.Booking{
				CountryName:  country,
				CustomerType: "Transient",
				TotalStay:    3,
			})
		}
	}

	pivot, err := StayPivot(table, 10)
	assert.NoError(t, err)
	assert.Len(t, pivot.Rows, 10)

	// Países mais frequentes primeiro; os dois menores ficam de fora
	assert.Equal(t, "Country 12", pivot.Rows[0].Country)
	assert.Equal(t, 12, pivot.Rows[0].Bookings)
	assert.Equal(t, "Country 03", pivot.Rows[9].Country)
}

func TestStayPivot_TiesBreakByCountryName(t *testing.T) {
	table := domain.BookingTable{
		{CountryName: "Spain", CustomerType: "Transient", TotalStay: 1},
		{CountryName: "Brazil", CustomerType: "Transient", TotalStay: 1},
		{CountryName: "Austria", CustomerType: "Transient", TotalStay: 1},
	}

	pivot, err := StayPivot(table, 2)
	assert.NoError(t, err)
	assert.Len(t, pivot.Rows, 2)
	assert.Equal(t, "Austria", pivot.Rows[0].Country)
	assert.Equal(t, "Brazil", pivot.Rows[1].Country)
}

func TestStayPivot_UnknownCountryCodeFallsBack(t *testing.T) {
	table := domain.BookingTable{
		{CountryName: "Atlantis", CustomerType: "Transient", TotalStay: 5},
	}

	pivot, err := StayPivot(table, 10)
	assert.NoError(t, err)
	assert.Equal(t, "ATL", pivot.Rows[0].Code)
}

func TestStayPivot_NonPositiveTopNUsesDefault(t *testing.T) {
	table := make(domain.BookingTable, 0)
	for i := 1; i <= 12; i++ {
		table = append(table, domain.Booking{
			CountryName:  fmt.Sprintf("Country %02d", i),
			CustomerType: "Transient",
			TotalStay:    2,
		})
	}

	pivot, err := StayPivot(table, 0)
	assert.NoError(t, err)
	assert.Len(t, pivot.Rows, DefaultTopCountries)
}

func TestStayPivot_MeanStayRounded(t *testing.T) {
	table := domain.BookingTable{
		{CountryName: "Portugal", CustomerType: "Transient", TotalStay: 1},
		{CountryName: "Portugal", CustomerType: "Transient", TotalStay: 2},
		{CountryName: "Portugal", CustomerType: "Transient", TotalStay: 2},
	}

	pivot, err := StayPivot(table, 10)
	assert.NoError(t, err)
	assert.Equal(t, 1.67, *pivot.Rows[0].MeanStay[0])
}

func TestStayPivot_EmptyTable(t *testing.T) {
	_, err := StayPivot(nil, 10)
	assert.True(t, IsEmptyInputError(err))
}
