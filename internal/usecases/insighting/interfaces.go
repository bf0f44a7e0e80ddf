package insighting

import (
	"context"

	"github.com/stayview/booking-insights-api/internal/domain"
)

// Insighter define a interface para obter as visões derivadas do dataset de reservas
type Insighter interface {
	// CancellationOverview retorna os totais e a taxa global de cancelamento
	CancellationOverview(ctx context.Context) (*domain.CancellationOverview, error)

	// CancellationsBySegment retorna a taxa de cancelamento por segmento de mercado
	CancellationsBySegment(ctx context.Context) ([]domain.SegmentCancellation, error)

	// CancellationsByMonth retorna a taxa de cancelamento por mês de chegada
	CancellationsByMonth(ctx context.Context) ([]domain.MonthCancellation, error)

	// LeadTimeBuckets retorna a distribuição de cancelamento por faixa de antecedência
	LeadTimeBuckets(ctx context.Context) ([]domain.LeadTimeBucket, error)

	// LeadTimeTrend retorna a curva suavizada de cancelamento por antecedência
	LeadTimeTrend(ctx context.Context) (*domain.LeadTimeTrend, error)

	// ADRBySegment retorna a diária média por segmento de mercado
	ADRBySegment(ctx context.Context) ([]domain.SegmentADR, error)

	// ADRByCustomerType retorna a diária média por tipo de cliente
	ADRByCustomerType(ctx context.Context) ([]domain.CustomerTypeADR, error)

	// ADRByDayOfWeek retorna a diária média por dia da semana de chegada
	ADRByDayOfWeek(ctx context.Context) ([]domain.WeekdayADR, error)

	// StayPivot retorna a duração média de estadia por país e tipo de cliente
	StayPivot(ctx context.Context) (*domain.StayPivot, error)

	// Snapshot descreve o dataset atualmente em cache
	Snapshot(ctx context.Context) (*domain.DatasetSnapshot, error)
}
