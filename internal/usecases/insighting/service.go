package insighting

import (
	"context"

	"github.com/stayview/booking-insights-api/infrastructure/repository"
	"github.com/stayview/booking-insights-api/internal/config"
	"github.com/stayview/booking-insights-api/internal/domain"
)

// Service computa as visões derivadas sobre o dataset em cache no repositório
type Service struct {
	repo         repository.DatasetRepository
	topCountries int
}

// NewService cria uma nova instância do serviço de insights
func NewService(cfg *config.Config, repo repository.DatasetRepository) Insighter {
	topCountries := DefaultTopCountries
	if cfg != nil && cfg.Insights.TopCountries > 0 {
		topCountries = cfg.Insights.TopCountries
	}

	return &Service{
		repo:         repo,
		topCountries: topCountries,
	}
}

func (s *Service) CancellationOverview(ctx context.Context) (*domain.CancellationOverview, error) {
	table, _, err := s.repo.Table(ctx)
	if err != nil {
		return nil, err
	}
	return CancellationOverview(table)
}

func (s *Service) CancellationsBySegment(ctx context.Context) ([]domain.SegmentCancellation, error) {
	table, _, err := s.repo.Table(ctx)
	if err != nil {
		return nil, err
	}
	return CancellationsBySegment(table)
}

func (s *Service) CancellationsByMonth(ctx context.Context) ([]domain.MonthCancellation, error) {
	table, _, err := s.repo.Table(ctx)
	if err != nil {
		return nil, err
	}
	return CancellationsByMonth(table)
}

func (s *Service) LeadTimeBuckets(ctx context.Context) ([]domain.LeadTimeBucket, error) {
	table, _, err := s.repo.Table(ctx)
	if err != nil {
		return nil, err
	}
	return LeadTimeBuckets(table)
}

func (s *Service) LeadTimeTrend(ctx context.Context) (*domain.LeadTimeTrend, error) {
	table, _, err := s.repo.Table(ctx)
	if err != nil {
		return nil, err
	}
	return LeadTimeTrend(table)
}

func (s *Service) ADRBySegment(ctx context.Context) ([]domain.SegmentADR, error) {
	table, _, err := s.repo.Table(ctx)
	if err != nil {
		return nil, err
	}
	return ADRBySegment(table)
}

func (s *Service) ADRByCustomerType(ctx context.Context) ([]domain.CustomerTypeADR, error) {
	table, _, err := s.repo.Table(ctx)
	if err != nil {
		return nil, err
	}
	return ADRByCustomerType(table)
}

func (s *Service) ADRByDayOfWeek(ctx context.Context) ([]domain.WeekdayADR, error) {
	table, _, err := s.repo.Table(ctx)
	if err != nil {
		return nil, err
	}
	return ADRByDayOfWeek(table)
}

func (s *Service) StayPivot(ctx context.Context) (*domain.StayPivot, error) {
	table, _, err := s.repo.Table(ctx)
	if err != nil {
		return nil, err
	}
	return StayPivot(table, s.topCountries)
}

func (s *Service) Snapshot(ctx context.Context) (*domain.DatasetSnapshot, error) {
	return s.repo.Snapshot(ctx)
}
