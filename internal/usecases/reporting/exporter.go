package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/stayview/booking-insights-api/internal/domain"
)

const summarySheet = "Summary"

// sheetSpec is one workbook sheet: a header row plus one row per entry of the
// backing view.
type sheetSpec struct {
	name   string
	view   string
	header []string
	rows   [][]interface{}
}

func (s *Service) Export(ctx context.Context) ([]byte, error) {
	report, err := s.Report(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}

	writeSummary(f, report)

	for _, spec := range buildSheets(report) {
		if _, err := f.NewSheet(spec.name); err != nil {
			return nil, err
		}

		if message, failed := report.Errors[spec.view]; failed {
			setCell(f, spec.name, 1, 1, fmt.Sprintf("view failed: %s", message))
			continue
		}

		setRow(f, spec.name, 1, headerCells(spec.header))
		for i, row := range spec.rows {
			setRow(f, spec.name, i+2, row)
		}
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}

func writeSummary(f *excelize.File, report *domain.DashboardReport) {
	setRow(f, summarySheet, 1, []interface{}{"generated_at", report.GeneratedAt.Format(time.RFC3339)})

	if report.Snapshot != nil {
		setRow(f, summarySheet, 2, []interface{}{"source", report.Snapshot.Source})
		setRow(f, summarySheet, 3, []interface{}{"snapshot_id", report.Snapshot.ID})
		setRow(f, summarySheet, 4, []interface{}{"rows", report.Snapshot.Rows})
	}

	if message, failed := report.Errors[domain.ViewCancellations]; failed {
		setCell(f, summarySheet, 1, 6, fmt.Sprintf("view failed: %s", message))
		return
	}

	if report.Cancellations != nil {
		setRow(f, summarySheet, 6, []interface{}{"total_bookings", report.Cancellations.TotalBookings})
		setRow(f, summarySheet, 7, []interface{}{"canceled", report.Cancellations.Canceled})
		setRow(f, summarySheet, 8, []interface{}{"not_canceled", report.Cancellations.NotCanceled})
		setRow(f, summarySheet, 9, []interface{}{"cancellation_rate", report.Cancellations.CancellationRate})
	}
}

func buildSheets(report *domain.DashboardReport) []sheetSpec {
	segments := sheetSpec{
		name:   "Cancellations by Segment",
		view:   domain.ViewCancellationsBySegment,
		header: []string{"market_segment", "bookings", "canceled", "cancellation_rate"},
	}
	for _, row := range report.CancellationsBySegment {
		segments.rows = append(segments.rows, []interface{}{row.MarketSegment, row.Bookings, row.Canceled, row.CancellationRate})
	}

	months := sheetSpec{
		name:   "Cancellations by Month",
		view:   domain.ViewCancellationsByMonth,
		header: []string{"month", "bookings", "canceled", "cancellation_rate"},
	}
	for _, row := range report.CancellationsByMonth {
		months.rows = append(months.rows, []interface{}{row.Month, row.Bookings, row.Canceled, floatCell(row.CancellationRate)})
	}

	buckets := sheetSpec{
		name:   "Lead Time Buckets",
		view:   domain.ViewLeadTimeBuckets,
		header: []string{"lead_time", "bookings", "canceled", "cancellation_rate"},
	}
	for _, row := range report.LeadTimeBuckets {
		buckets.rows = append(buckets.rows, []interface{}{row.Label, row.Bookings, row.Canceled, floatCell(row.CancellationRate)})
	}

	trend := sheetSpec{
		name:   "Lead Time Trend",
		view:   domain.ViewLeadTimeTrend,
		header: []string{"lead_time", "cancellation_rate"},
	}
	if report.LeadTimeTrend != nil {
		for _, point := range report.LeadTimeTrend.Points {
			trend.rows = append(trend.rows, []interface{}{point.LeadTime, point.Rate})
		}
	}

	adrSegments := sheetSpec{
		name:   "ADR by Segment",
		view:   domain.ViewADRBySegment,
		header: []string{"market_segment", "mean_adr"},
	}
	for _, row := range report.ADRBySegment {
		adrSegments.rows = append(adrSegments.rows, []interface{}{row.MarketSegment, row.MeanADR})
	}

	adrTypes := sheetSpec{
		name:   "ADR by Customer Type",
		view:   domain.ViewADRByCustomerType,
		header: []string{"customer_type", "mean_adr"},
	}
	for _, row := range report.ADRByCustomerType {
		adrTypes.rows = append(adrTypes.rows, []interface{}{row.CustomerType, row.MeanADR})
	}

	adrDays := sheetSpec{
		name:   "ADR by Day of Week",
		view:   domain.ViewADRByDayOfWeek,
		header: []string{"day_of_week", "mean_adr", "bookings"},
	}
	for _, row := range report.ADRByDayOfWeek {
		adrDays.rows = append(adrDays.rows, []interface{}{row.DayOfWeek, row.MeanADR, row.Bookings})
	}

	pivot := sheetSpec{
		name:   "Stay Pivot",
		view:   domain.ViewStayPivot,
		header: []string{"country", "code", "bookings"},
	}
	if report.StayPivot != nil {
		pivot.header = append(pivot.header, report.StayPivot.CustomerTypes...)
		for _, row := range report.StayPivot.Rows {
			cells := []interface{}{row.Country, row.Code, row.Bookings}
			for _, mean := range row.MeanStay {
				cells = append(cells, floatCell(mean))
			}
			pivot.rows = append(pivot.rows, cells)
		}
	}

	return []sheetSpec{segments, months, buckets, trend, adrSegments, adrTypes, adrDays, pivot}
}

func headerCells(header []string) []interface{} {
	cells := make([]interface{}, len(header))
	for i, name := range header {
		cells[i] = name
	}
	return cells
}

// floatCell keeps never-observed combinations as empty cells.
func floatCell(value *float64) interface{} {
	if value == nil {
		return nil
	}
	return *value
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) {
	for i, value := range values {
		if value == nil {
			continue
		}
		setCell(f, sheet, i+1, row, value)
	}
}

func setCell(f *excelize.File, sheet string, col, row int, value interface{}) {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	f.SetCellValue(sheet, cell, value)
}
