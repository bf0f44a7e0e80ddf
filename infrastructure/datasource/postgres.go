package datasource

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/stayview/booking-insights-api/infrastructure/database/postgres"
	"github.com/stayview/booking-insights-api/internal/domain"
)

// PostgresSource reads the bookings dataset from a relational table carrying
// the same schema as the file exports (see the migration script for DDL).
type PostgresSource struct {
	conn  *postgres.Connection
	table string
}

func NewPostgresSource(conn *postgres.Connection, table string) *PostgresSource {
	return &PostgresSource{conn: conn, table: table}
}

func (s *PostgresSource) Identity() string {
	return "postgres:" + s.table
}

// Fingerprint combines row count and the newest insertion timestamp, so both
// appends and reloads are detected without scanning the table.
func (s *PostgresSource) Fingerprint(ctx context.Context) (string, error) {
	query, args, err := squirrel.
		Select("COUNT(*)", "COALESCE(MAX(created_at), to_timestamp(0))").
		From(s.table).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("building fingerprint query: %w", err)
	}

	var count int
	var newest time.Time
	if err := s.conn.QueryRowContext(ctx, query, args...).Scan(&count, &newest); err != nil {
		return "", newParseError(s.Identity(), 0, "", err.Error())
	}

	return fmt.Sprintf("%d-%d", count, newest.UnixNano()), nil
}

func (s *PostgresSource) Fetch(ctx context.Context) (domain.BookingTable, error) {
	query, args, err := squirrel.
		Select(requiredColumns...).
		From(s.table).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building dataset query: %w", err)
	}

	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, newParseError(s.Identity(), 0, "", err.Error())
	}
	defer rows.Close()

	table := make(domain.BookingTable, 0)
	row := 0

	for rows.Next() {
		row++

		var booking domain.Booking
		err := rows.Scan(
			&booking.ArrivalDate,
			&booking.LeadTime,
			&booking.IsCanceled,
			&booking.MarketSegment,
			&booking.CustomerType,
			&booking.ADR,
			&booking.CountryName,
			&booking.WeekendNights,
			&booking.WeekNights,
			&booking.ArrivalMonth,
		)
		if err != nil {
			return nil, newParseError(s.Identity(), row, "", err.Error())
		}

		if booking.IsCanceled != 0 && booking.IsCanceled != 1 {
			return nil, newParseError(s.Identity(), row, "is_canceled",
				fmt.Sprintf("flag must be 0 or 1, got %d", booking.IsCanceled))
		}
		if _, ok := domain.MonthPosition(booking.ArrivalMonth); !ok {
			return nil, newParseError(s.Identity(), row, "arrival_date_month",
				fmt.Sprintf("unknown month %q", booking.ArrivalMonth))
		}

		booking.DayOfWeek = booking.ArrivalDate.Weekday().String()
		booking.TotalStay = booking.WeekendNights + booking.WeekNights

		table = append(table, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, newParseError(s.Identity(), 0, "", err.Error())
	}

	return table, nil
}
