package reporting

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"

	"github.com/stayview/booking-insights-api/internal/domain"
	"github.com/stayview/booking-insights-api/internal/usecases/insighting/mocks"
)

func float64Ptr(f float64) *float64 {
	return &f
}

func expectSnapshot(insighter *mocks.MockInsighter) {
	insighter.EXPECT().Snapshot(gomock.Any()).Return(&domain.DatasetSnapshot{
		ID:       "abc123",
		Source:   "csv:testdata/bookings.csv",
		Rows:     4,
		LoadedAt: time.Now(),
	}, nil)
}

func expectHappyViews(insighter *mocks.MockInsighter) {
	insighter.EXPECT().CancellationOverview(gomock.Any()).Return(&domain.CancellationOverview{
		TotalBookings: 4, Canceled: 1, NotCanceled: 3, CancellationRate: 0.25,
	}, nil)

	insighter.EXPECT().CancellationsBySegment(gomock.Any()).Return([]domain.SegmentCancellation{
		{MarketSegment: "Direct", Bookings: 2, Canceled: 1, CancellationRate: 50.0},
	}, nil)

	insighter.EXPECT().CancellationsByMonth(gomock.Any()).Return([]domain.MonthCancellation{
		{Month: "January", Bookings: 2, Canceled: 1, CancellationRate: float64Ptr(50.0)},
		{Month: "February"},
	}, nil)

	insighter.EXPECT().LeadTimeBuckets(gomock.Any()).Return([]domain.LeadTimeBucket{
		{Label: "0-7 days", Bookings: 2, Canceled: 1, CancellationRate: float64Ptr(50.0)},
	}, nil)

	insighter.EXPECT().LeadTimeTrend(gomock.Any()).Return(&domain.LeadTimeTrend{
		Points: []domain.TrendPoint{{LeadTime: 5, Rate: 50.0}},
		Ticks:  []int{0, 100},
	}, nil)

	insighter.EXPECT().ADRBySegment(gomock.Any()).Return([]domain.SegmentADR{
		{MarketSegment: "Direct", MeanADR: 120.5},
	}, nil)

	insighter.EXPECT().ADRByCustomerType(gomock.Any()).Return([]domain.CustomerTypeADR{
		{CustomerType: "Transient", MeanADR: 99.9},
	}, nil)

	insighter.EXPECT().ADRByDayOfWeek(gomock.Any()).Return([]domain.WeekdayADR{
		{DayOfWeek: "Monday", MeanADR: 80.0, Bookings: 2},
	}, nil)

	insighter.EXPECT().StayPivot(gomock.Any()).Return(&domain.StayPivot{
		CustomerTypes: []string{"Group", "Transient"},
		Rows: []domain.StayPivotRow{
			{Country: "Portugal", Code: "PRT", Bookings: 3, MeanStay: []*float64{nil, float64Ptr(3.5)}},
		},
	}, nil)
}

func TestReport_AllViews(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	insighter := mocks.NewMockInsighter(ctrl)
	expectSnapshot(insighter)
	expectHappyViews(insighter)

	service := NewService(insighter)

	report, err := service.Report(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, report.Errors)
	assert.False(t, report.GeneratedAt.IsZero())
	assert.Equal(t, "abc123", report.Snapshot.ID)
	assert.Equal(t, 4, report.Cancellations.TotalBookings)
	assert.Len(t, report.CancellationsBySegment, 1)
	assert.Len(t, report.CancellationsByMonth, 2)
	assert.Len(t, report.LeadTimeBuckets, 1)
	assert.Len(t, report.LeadTimeTrend.Points, 1)
	assert.Len(t, report.ADRBySegment, 1)
	assert.Len(t, report.ADRByCustomerType, 1)
	assert.Len(t, report.ADRByDayOfWeek, 1)
	assert.Len(t, report.StayPivot.Rows, 1)
}

func TestReport_IsolatesFailedViews(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	insighter := mocks.NewMockInsighter(ctrl)
	expectSnapshot(insighter)

	insighter.EXPECT().CancellationOverview(gomock.Any()).Return(&domain.CancellationOverview{TotalBookings: 4}, nil)
	insighter.EXPECT().CancellationsBySegment(gomock.Any()).Return([]domain.SegmentCancellation{{MarketSegment: "Direct"}}, nil)
	insighter.EXPECT().CancellationsByMonth(gomock.Any()).Return([]domain.MonthCancellation{{Month: "January"}}, nil)
	insighter.EXPECT().LeadTimeBuckets(gomock.Any()).Return(nil, errors.New("negative lead time -3"))
	insighter.EXPECT().LeadTimeTrend(gomock.Any()).Return(nil, errors.New("negative lead time -3"))
	insighter.EXPECT().ADRBySegment(gomock.Any()).Return([]domain.SegmentADR{{MarketSegment: "Direct"}}, nil)
	insighter.EXPECT().ADRByCustomerType(gomock.Any()).Return([]domain.CustomerTypeADR{{CustomerType: "Transient"}}, nil)
	insighter.EXPECT().ADRByDayOfWeek(gomock.Any()).Return([]domain.WeekdayADR{{DayOfWeek: "Monday"}}, nil)
	insighter.EXPECT().StayPivot(gomock.Any()).Return(&domain.StayPivot{}, nil)

	service := NewService(insighter)

	report, err := service.Report(context.Background())
	assert.NoError(t, err)

	// As visões com falha viram placeholders; as demais continuam normais
	assert.Len(t, report.Errors, 2)
	assert.Contains(t, report.Errors[domain.ViewLeadTimeBuckets], "negative lead time")
	assert.Contains(t, report.Errors[domain.ViewLeadTimeTrend], "negative lead time")
	assert.Nil(t, report.LeadTimeBuckets)
	assert.Nil(t, report.LeadTimeTrend)
	assert.NotNil(t, report.Cancellations)
	assert.NotNil(t, report.StayPivot)
}

func TestReport_DatasetFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loadErr := errors.New("parsing csv:testdata/bookings.csv")

	insighter := mocks.NewMockInsighter(ctrl)
	insighter.EXPECT().Snapshot(gomock.Any()).Return(nil, loadErr)

	service := NewService(insighter)

	report, err := service.Report(context.Background())
	assert.ErrorIs(t, err, loadErr)
	assert.Nil(t, report)
}

func TestExport_BuildsWorkbook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	insighter := mocks.NewMockInsighter(ctrl)
	expectSnapshot(insighter)
	expectHappyViews(insighter)

	service := NewService(insighter)

	payload, err := service.Export(context.Background())
	assert.NoError(t, err)
	assert.NotEmpty(t, payload)

	workbook, err := excelize.OpenReader(bytes.NewReader(payload))
	assert.NoError(t, err)
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	assert.Contains(t, sheets, "Summary")
	assert.Contains(t, sheets, "Cancellations by Segment")
	assert.Contains(t, sheets, "Lead Time Trend")
	assert.Contains(t, sheets, "Stay Pivot")

	header, err := workbook.GetCellValue("Cancellations by Segment", "A1")
	assert.NoError(t, err)
	assert.Equal(t, "market_segment", header)

	segment, err := workbook.GetCellValue("Cancellations by Segment", "A2")
	assert.NoError(t, err)
	assert.Equal(t, "Direct", segment)

	// Cabeçalho do pivô carrega os tipos de cliente observados
	pivotType, err := workbook.GetCellValue("Stay Pivot", "D1")
	assert.NoError(t, err)
	assert.Equal(t, "Group", pivotType)

	// Célula nunca observada permanece vazia
	empty, err := workbook.GetCellValue("Stay Pivot", "D2")
	assert.NoError(t, err)
	assert.Equal(t, "", empty)
}

func TestExport_FailedViewGetsPlaceholderSheet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	insighter := mocks.NewMockInsighter(ctrl)
	expectSnapshot(insighter)

	insighter.EXPECT().CancellationOverview(gomock.Any()).Return(&domain.CancellationOverview{TotalBookings: 4}, nil)
	insighter.EXPECT().CancellationsBySegment(gomock.Any()).Return([]domain.SegmentCancellation{{MarketSegment: "Direct"}}, nil)
	insighter.EXPECT().CancellationsByMonth(gomock.Any()).Return([]domain.MonthCancellation{{Month: "January"}}, nil)
	insighter.EXPECT().LeadTimeBuckets(gomock.Any()).Return([]domain.LeadTimeBucket{{Label: "0-7 days"}}, nil)
	insighter.EXPECT().LeadTimeTrend(gomock.Any()).Return(nil, errors.New("negative lead time -3"))
	insighter.EXPECT().ADRBySegment(gomock.Any()).Return([]domain.SegmentADR{{MarketSegment: "Direct"}}, nil)
	insighter.EXPECT().ADRByCustomerType(gomock.Any()).Return([]domain.CustomerTypeADR{{CustomerType: "Transient"}}, nil)
	insighter.EXPECT().ADRByDayOfWeek(gomock.Any()).Return([]domain.WeekdayADR{{DayOfWeek: "Monday"}}, nil)
	insighter.EXPECT().StayPivot(gomock.Any()).Return(&domain.StayPivot{}, nil)

	service := NewService(insighter)

	payload, err := service.Export(context.Background())
	assert.NoError(t, err)

	workbook, err := excelize.OpenReader(bytes.NewReader(payload))
	assert.NoError(t, err)
	defer workbook.Close()

	placeholder, err := workbook.GetCellValue("Lead Time Trend", "A1")
	assert.NoError(t, err)
	assert.Contains(t, placeholder, "view failed")
}
