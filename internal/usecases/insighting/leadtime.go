package insighting

import (
	"fmt"
	"math"
	"sort"

	"github.com/stayview/booking-insights-api/internal/domain"
	"github.com/stayview/booking-insights-api/pkg/lowess"
	"github.com/stayview/booking-insights-api/pkg/utils"
)

// Fixed lead-time partition: [0,7], (7,30], (30,60], (60,90], (90,∞).
// Upper bounds are inclusive; zero belongs to the first bucket.
var (
	leadTimeBucketLabels = []string{"0-7 days", "8-30 days", "31-60 days", "61-90 days", "90+ days"}
	leadTimeBucketBounds = []int{7, 30, 60, 90}
)

func leadTimeBucketIndex(leadTime int) int {
	for i, upper := range leadTimeBucketBounds {
		if leadTime <= upper {
			return i
		}
	}
	return len(leadTimeBucketBounds)
}

// LeadTimeBuckets partitions bookings over the five fixed lead-time intervals
// and computes per-bucket cancellation stats. All five buckets appear in
// fixed order; empty buckets keep count 0 and a nil rate. A negative lead
// time fails the whole view.
func LeadTimeBuckets(table domain.BookingTable) ([]domain.LeadTimeBucket, error) {
	if len(table) == 0 {
		return nil, newEmptyInputError(domain.ViewLeadTimeBuckets)
	}

	rows := make([]domain.LeadTimeBucket, len(leadTimeBucketLabels))
	for i, label := range leadTimeBucketLabels {
		rows[i] = domain.LeadTimeBucket{Label: label}
	}

	for _, booking := range table {
		if booking.LeadTime < 0 {
			return nil, newDomainError(
				domain.ViewLeadTimeBuckets,
				fmt.Sprintf("negative lead time %d", booking.LeadTime),
			)
		}

		idx := leadTimeBucketIndex(booking.LeadTime)
		rows[idx].Bookings++
		rows[idx].Canceled += booking.IsCanceled
	}

	for i := range rows {
		if rows[i].Bookings == 0 {
			continue
		}
		rate := utils.Percentage(rows[i].Canceled, rows[i].Bookings)
		rows[i].CancellationRate = &rate
	}

	return rows, nil
}

// LeadTimeTrend fits a locally weighted regression of the cancellation flag
// on lead time. The curve is sampled at the distinct observed lead times,
// expressed as percentages and clamped to [0,100]; the tick values cover the
// observed range in steps of 100.
func LeadTimeTrend(table domain.BookingTable) (*domain.LeadTimeTrend, error) {
	if len(table) == 0 {
		return nil, newEmptyInputError(domain.ViewLeadTimeTrend)
	}

	xs := make([]float64, 0, len(table))
	ys := make([]float64, 0, len(table))
	seen := make(map[int]bool)
	distinct := make([]int, 0)

	for _, booking := range table {
		if booking.LeadTime < 0 {
			return nil, newDomainError(
				domain.ViewLeadTimeTrend,
				fmt.Sprintf("negative lead time %d", booking.LeadTime),
			)
		}

		xs = append(xs, float64(booking.LeadTime))
		ys = append(ys, float64(booking.IsCanceled))

		if !seen[booking.LeadTime] {
			seen[booking.LeadTime] = true
			distinct = append(distinct, booking.LeadTime)
		}
	}

	sort.Ints(distinct)

	samples := make([]float64, len(distinct))
	for i, leadTime := range distinct {
		samples[i] = float64(leadTime)
	}

	fitted, err := lowess.Smooth(xs, ys, samples, lowess.DefaultOptions())
	if err != nil {
		return nil, fmt.Errorf("fitting lead-time trend: %w", err)
	}

	points := make([]domain.TrendPoint, len(distinct))
	for i, leadTime := range distinct {
		points[i] = domain.TrendPoint{
			LeadTime: leadTime,
			Rate:     clampPercent(fitted[i] * 100),
		}
	}

	return &domain.LeadTimeTrend{
		Points: points,
		Ticks:  leadTimeTicks(distinct[len(distinct)-1]),
	}, nil
}

func clampPercent(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

// leadTimeTicks returns multiples of 100 from 0 up to the smallest multiple
// covering maxLead.
func leadTimeTicks(maxLead int) []int {
	upper := int(math.Ceil(float64(maxLead)/100)) * 100

	ticks := make([]int, 0, upper/100+1)
	for tick := 0; tick <= upper; tick += 100 {
		ticks = append(ticks, tick)
	}
	return ticks
}
