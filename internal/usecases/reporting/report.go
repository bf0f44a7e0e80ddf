// Package reporting assembles every derived view into a single dashboard
// report and renders it as a spreadsheet.
package reporting

import (
	"context"
	"sync"
	"time"

	"github.com/stayview/booking-insights-api/internal/domain"
	"github.com/stayview/booking-insights-api/internal/usecases/insighting"
	"github.com/stayview/booking-insights-api/pkg/log"
)

// Reporter define a interface para montar o relatório consolidado do dashboard
type Reporter interface {
	// Report builds every derived view. A view that fails is reported under
	// Errors by view name; the other views are unaffected.
	Report(ctx context.Context) (*domain.DashboardReport, error)

	// Export renders the full report as an xlsx workbook, one sheet per view.
	Export(ctx context.Context) ([]byte, error)
}

type Service struct {
	insighter insighting.Insighter
}

func NewService(insighter insighting.Insighter) Reporter {
	return &Service{insighter: insighter}
}

func (s *Service) Report(ctx context.Context) (*domain.DashboardReport, error) {
	// A dataset-level failure aborts the report; per-view failures don't.
	snapshot, err := s.insighter.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	report := &domain.DashboardReport{
		GeneratedAt: time.Now(),
		Snapshot:    snapshot,
		Errors:      make(map[string]string),
	}

	var mu sync.Mutex
	fail := func(view string, err error) {
		log.ForContext(ctx).WithField("view", view).WithError(err).Warn("View failed, reporting placeholder")
		mu.Lock()
		report.Errors[view] = err.Error()
		mu.Unlock()
	}

	views := []struct {
		name string
		run  func(context.Context) error
	}{
		{domain.ViewCancellations, func(ctx context.Context) error {
			overview, err := s.insighter.CancellationOverview(ctx)
			if err != nil {
				return err
			}
			report.Cancellations = overview
			return nil
		}},
		{domain.ViewCancellationsBySegment, func(ctx context.Context) error {
			rows, err := s.insighter.CancellationsBySegment(ctx)
			if err != nil {
				return err
			}
			report.CancellationsBySegment = rows
			return nil
		}},
		{domain.ViewCancellationsByMonth, func(ctx context.Context) error {
			rows, err := s.insighter.CancellationsByMonth(ctx)
			if err != nil {
				return err
			}
			report.CancellationsByMonth = rows
			return nil
		}},
		{domain.ViewLeadTimeBuckets, func(ctx context.Context) error {
			rows, err := s.insighter.LeadTimeBuckets(ctx)
			if err != nil {
				return err
			}
			report.LeadTimeBuckets = rows
			return nil
		}},
		{domain.ViewLeadTimeTrend, func(ctx context.Context) error {
			trend, err := s.insighter.LeadTimeTrend(ctx)
			if err != nil {
				return err
			}
			report.LeadTimeTrend = trend
			return nil
		}},
		{domain.ViewADRBySegment, func(ctx context.Context) error {
			rows, err := s.insighter.ADRBySegment(ctx)
			if err != nil {
				return err
			}
			report.ADRBySegment = rows
			return nil
		}},
		{domain.ViewADRByCustomerType, func(ctx context.Context) error {
			rows, err := s.insighter.ADRByCustomerType(ctx)
			if err != nil {
				return err
			}
			report.ADRByCustomerType = rows
			return nil
		}},
		{domain.ViewADRByDayOfWeek, func(ctx context.Context) error {
			rows, err := s.insighter.ADRByDayOfWeek(ctx)
			if err != nil {
				return err
			}
			report.ADRByDayOfWeek = rows
			return nil
		}},
		{domain.ViewStayPivot, func(ctx context.Context) error {
			pivot, err := s.insighter.StayPivot(ctx)
			if err != nil {
				return err
			}
			report.StayPivot = pivot
			return nil
		}},
	}

	var wg sync.WaitGroup
	wg.Add(len(views))

	for _, view := range views {
		go func(name string, run func(context.Context) error) {
			defer wg.Done()
			if err := run(ctx); err != nil {
				fail(name, err)
			}
		}(view.name, view.run)
	}

	wg.Wait()

	if len(report.Errors) == 0 {
		report.Errors = nil
	}

	return report, nil
}
