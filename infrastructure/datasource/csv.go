package datasource

import (
	"context"
	"fmt"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/stayview/booking-insights-api/internal/domain"
)

// CSVSource reads the cleaned bookings export, e.g.
// hotel_bookings_clean.csv.
type CSVSource struct {
	path string
}

func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

func (s *CSVSource) Identity() string {
	return "csv:" + s.path
}

// Fingerprint combines modification time and size, enough to catch both
// rewrites and in-place appends.
func (s *CSVSource) Fingerprint(_ context.Context) (string, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return "", newParseError(s.Identity(), 0, "", err.Error())
	}
	return fmt.Sprintf("%d-%d", info.ModTime().UnixNano(), info.Size()), nil
}

func (s *CSVSource) Fetch(_ context.Context) (domain.BookingTable, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, newParseError(s.Identity(), 0, "", err.Error())
	}
	defer file.Close()

	df := dataframe.ReadCSV(
		file,
		dataframe.HasHeader(true),
		dataframe.DefaultType(series.String),
		dataframe.WithTypes(columnTypes()),
	)

	return frameToTable(df, s.Identity())
}

// columnTypes pins every schema column to a string series; the booking
// parser owns all numeric conversion and its error reporting.
func columnTypes() map[string]series.Type {
	types := make(map[string]series.Type, len(requiredColumns))
	for _, column := range requiredColumns {
		types[column] = series.String
	}
	return types
}
