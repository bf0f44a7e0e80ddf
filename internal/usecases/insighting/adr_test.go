package insighting

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stayview/booking-insights-api/internal/domain"
)

func TestADRBySegment(t *testing.T) {
	table := domain.BookingTable{
		{MarketSegment: "A", ADR: 100},
		{MarketSegment: "A", ADR: 200},
		{MarketSegment: "B", ADR: 50},
	}

	rows, err := ADRBySegment(table)
	assert.NoError(t, err)
	assert.Len(t, rows, 2)

	// Maior diária média primeiro
	assert.Equal(t, "A", rows[0].MarketSegment)
	assert.Equal(t, 150.0, rows[0].MeanADR)
	assert.Equal(t, "B", rows[1].MarketSegment)
	assert.Equal(t, 50.0, rows[1].MeanADR)
}

func TestADRBySegment_TiesKeepAscendingSegmentOrder(t *testing.T) {
	table := domain.BookingTable{
		{MarketSegment: "Online TA", ADR: 80},
		{MarketSegment: "Direct", ADR: 80},
		{MarketSegment: "Groups", ADR: 80},
	}

	rows, err := ADRBySegment(table)
	assert.NoError(t, err)
	assert.Equal(t, "Direct", rows[0].MarketSegment)
	assert.Equal(t, "Groups", rows[1].MarketSegment)
	assert.Equal(t, "Online TA", rows[2].MarketSegment)
}

func TestADRBySegment_RoundsToTwoDecimalPlaces(t *testing.T) {
	table := domain.BookingTable{
		{MarketSegment: "A", ADR: 100},
		{MarketSegment: "A", ADR: 200},
		{MarketSegment: "A", ADR: 250},
	}

	rows, err := ADRBySegment(table)
	assert.NoError(t, err)
	assert.Equal(t, 183.33, rows[0].MeanADR)
}

func TestADRBySegment_NaNRate(t *testing.T) {
	table := domain.BookingTable{
		{MarketSegment: "A", ADR: 100},
		{MarketSegment: "B", ADR: math.NaN()},
	}

	_, err := ADRBySegment(table)
	assert.True(t, IsTypeMismatchError(err))
}

func TestADRBySegment_EmptyTable(t *testing.T) {
	_, err := ADRBySegment(domain.BookingTable{})
	assert.True(t, IsEmptyInputError(err))
}

func TestADRByCustomerType(t *testing.T) {
	table := domain.BookingTable{
		{CustomerType: "Transient", ADR: 120},
		{CustomerType: "Contract", ADR: 60},
		{CustomerType: "Group", ADR: 90},
	}

	rows, err := ADRByCustomerType(table)
	assert.NoError(t, err)
	assert.Len(t, rows, 3)

	// Menor diária média primeiro
	assert.Equal(t, "Contract", rows[0].CustomerType)
	assert.Equal(t, 60.0, rows[0].MeanADR)
	assert.Equal(t, "Group", rows[1].CustomerType)
	assert.Equal(t, "Transient", rows[2].CustomerType)
	assert.Equal(t, 120.0, rows[2].MeanADR)
}

func TestADRByCustomerType_EmptyTable(t *testing.T) {
	_, err := ADRByCustomerType(nil)
	assert.True(t, IsEmptyInputError(err))
}

func TestADRByDayOfWeek(t *testing.T) {
	// Entrada embaralhada: a saída segue a ordem fixa segunda-domingo
	table := domain.BookingTable{
		{DayOfWeek: "Sunday", ADR: 70},
		{DayOfWeek: "Monday", ADR: 100},
		{DayOfWeek: "Friday", ADR: 130},
		{DayOfWeek: "Monday", ADR: 140},
	}

	rows, err := ADRByDayOfWeek(table)
	assert.NoError(t, err)
	assert.Len(t, rows, 3)

	assert.Equal(t, "Monday", rows[0].DayOfWeek)
	assert.Equal(t, 120.0, rows[0].MeanADR)
	assert.Equal(t, 2, rows[0].Bookings)

	assert.Equal(t, "Friday", rows[1].DayOfWeek)
	assert.Equal(t, 1, rows[1].Bookings)

	assert.Equal(t, "Sunday", rows[2].DayOfWeek)
	assert.Equal(t, 70.0, rows[2].MeanADR)
}

func TestADRByDayOfWeek_AllDaysObserved(t *testing.T) {
	table := make(domain.BookingTable, 0, len(domain.WeekdayNames))
	for i := len(domain.WeekdayNames) - 1; i >= 0; i-- {
		table = append(table, domain.Booking{DayOfWeek: domain.WeekdayNames[i], ADR: 100})
	}

	rows, err := ADRByDayOfWeek(table)
	assert.NoError(t, err)
	assert.Len(t, rows, 7)

	for i, row := range rows {
		assert.Equal(t, domain.WeekdayNames[i], row.DayOfWeek)
	}
}

func TestADRByDayOfWeek_UnknownDay(t *testing.T) {
	table := domain.BookingTable{
		{DayOfWeek: "Caturday", ADR: 100},
	}

	_, err := ADRByDayOfWeek(table)
	assert.True(t, IsDomainError(err))
}

func TestADRByDayOfWeek_EmptyTable(t *testing.T) {
	_, err := ADRByDayOfWeek(domain.BookingTable{})
	assert.True(t, IsEmptyInputError(err))
}
