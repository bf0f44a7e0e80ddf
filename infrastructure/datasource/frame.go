package datasource

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/stayview/booking-insights-api/internal/domain"
	"github.com/stayview/booking-insights-api/pkg/utils"
)

// frameToTable validates a raw dataframe against the booking schema and
// materializes it. The first malformed row aborts the whole load.
func frameToTable(df dataframe.DataFrame, source string) (domain.BookingTable, error) {
	if df.Err != nil {
		return nil, newParseError(source, 0, "", df.Err.Error())
	}

	available := make(map[string]bool, len(df.Names()))
	for _, name := range df.Names() {
		available[name] = true
	}
	for _, column := range requiredColumns {
		if !available[column] {
			return nil, newParseError(source, 0, column, "missing column")
		}
	}

	columns := make(map[string][]string, len(requiredColumns))
	for _, column := range requiredColumns {
		columns[column] = df.Col(column).Records()
	}

	table := make(domain.BookingTable, 0, df.Nrow())
	for i := 0; i < df.Nrow(); i++ {
		booking, err := parseBooking(source, i, columns)
		if err != nil {
			return nil, err
		}
		table = append(table, *booking)
	}

	return table, nil
}

// parseBooking builds one booking from row i, deriving day_of_week and
// total_stay.
func parseBooking(source string, i int, columns map[string][]string) (*domain.Booking, error) {
	row := i + 1

	arrival, err := utils.ParseDate(strings.TrimSpace(columns["arrival_date"][i]))
	if err != nil {
		return nil, newParseError(source, row, "arrival_date", err.Error())
	}

	leadTime, err := parseIntField(columns["lead_time"][i])
	if err != nil {
		return nil, newParseError(source, row, "lead_time", err.Error())
	}

	canceled, err := parseIntField(columns["is_canceled"][i])
	if err != nil {
		return nil, newParseError(source, row, "is_canceled", err.Error())
	}
	if canceled != 0 && canceled != 1 {
		return nil, newParseError(source, row, "is_canceled", fmt.Sprintf("flag must be 0 or 1, got %d", canceled))
	}

	adr, err := strconv.ParseFloat(strings.TrimSpace(columns["adr"][i]), 64)
	if err != nil {
		return nil, newParseError(source, row, "adr", fmt.Sprintf("not a number: %q", columns["adr"][i]))
	}

	weekendNights, err := parseIntField(columns["stays_in_weekend_nights"][i])
	if err != nil {
		return nil, newParseError(source, row, "stays_in_weekend_nights", err.Error())
	}

	weekNights, err := parseIntField(columns["stays_in_week_nights"][i])
	if err != nil {
		return nil, newParseError(source, row, "stays_in_week_nights", err.Error())
	}

	month := strings.TrimSpace(columns["arrival_date_month"][i])
	if _, ok := domain.MonthPosition(month); !ok {
		return nil, newParseError(source, row, "arrival_date_month", fmt.Sprintf("unknown month %q", month))
	}

	return &domain.Booking{
		ArrivalDate:   *arrival,
		LeadTime:      leadTime,
		IsCanceled:    canceled,
		MarketSegment: strings.TrimSpace(columns["market_segment"][i]),
		CustomerType:  strings.TrimSpace(columns["customer_type"][i]),
		ADR:           adr,
		CountryName:   strings.TrimSpace(columns["country_name"][i]),
		WeekendNights: weekendNights,
		WeekNights:    weekNights,
		ArrivalMonth:  month,
		DayOfWeek:     arrival.Weekday().String(),
		TotalStay:     weekendNights + weekNights,
	}, nil
}

func parseIntField(raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("not an integer: %q", raw)
	}
	return value, nil
}

// recordsToFrame assembles string series from raw records, header row first.
func recordsToFrame(records [][]string) dataframe.DataFrame {
	if len(records) == 0 {
		return dataframe.DataFrame{Err: fmt.Errorf("no rows")}
	}

	headers := records[0]
	columns := make([][]string, len(headers))
	for i := range columns {
		columns[i] = make([]string, 0, len(records)-1)
	}

	for _, record := range records[1:] {
		for i := range headers {
			if i < len(record) {
				columns[i] = append(columns[i], record[i])
			} else {
				columns[i] = append(columns[i], "")
			}
		}
	}

	seriesList := make([]series.Series, len(headers))
	for i, header := range headers {
		seriesList[i] = series.New(columns[i], series.String, header)
	}

	return dataframe.New(seriesList...)
}
