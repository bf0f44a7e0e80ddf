package datasource

import (
	"context"
	"fmt"
	"os"

	"github.com/tealeg/xlsx"

	"github.com/stayview/booking-insights-api/internal/domain"
)

// XLSXSource reads the bookings dataset from a workbook sheet. An empty
// sheet name selects the first sheet.
type XLSXSource struct {
	path  string
	sheet string
}

func NewXLSXSource(path, sheet string) *XLSXSource {
	return &XLSXSource{path: path, sheet: sheet}
}

func (s *XLSXSource) Identity() string {
	if s.sheet == "" {
		return "xlsx:" + s.path
	}
	return fmt.Sprintf("xlsx:%s#%s", s.path, s.sheet)
}

func (s *XLSXSource) Fingerprint(_ context.Context) (string, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return "", newParseError(s.Identity(), 0, "", err.Error())
	}
	return fmt.Sprintf("%d-%d", info.ModTime().UnixNano(), info.Size()), nil
}

func (s *XLSXSource) Fetch(_ context.Context) (domain.BookingTable, error) {
	workbook, err := xlsx.OpenFile(s.path)
	if err != nil {
		return nil, newParseError(s.Identity(), 0, "", err.Error())
	}

	if len(workbook.Sheets) == 0 {
		return nil, newParseError(s.Identity(), 0, "", "workbook has no sheets")
	}

	sheet := workbook.Sheets[0]
	if s.sheet != "" {
		named, ok := workbook.Sheet[s.sheet]
		if !ok {
			return nil, newParseError(s.Identity(), 0, "", fmt.Sprintf("sheet %q not found", s.sheet))
		}
		sheet = named
	}

	return frameToTable(recordsToFrame(sheetRecords(sheet)), s.Identity())
}

// sheetRecords flattens the sheet into raw records, header row included.
func sheetRecords(sheet *xlsx.Sheet) [][]string {
	records := make([][]string, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		record := make([]string, 0, len(row.Cells))
		for _, cell := range row.Cells {
			record = append(record, cell.Value)
		}
		records = append(records, record)
	}
	return records
}
