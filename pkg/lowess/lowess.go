// Package lowess implements locally weighted scatterplot smoothing
// (Cleveland, 1979) for a single numeric predictor. Each point of the output
// curve comes from a weighted least-squares line fitted to the nearest
// fraction of the data, with tricube distance weights and optional
// robustness iterations that down-weight outliers.
package lowess

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Options control the size of the local fitting window and the number of
// robustness iterations.
type Options struct {
	// Fraction of the data points used for each local fit, in (0,1].
	Fraction float64

	// Iterations is the number of robustness passes re-weighting residuals
	// with the bisquare function. Zero disables robustness.
	Iterations int
}

// DefaultOptions returns the smoothing parameters the dashboard curve has
// always been produced with (statsmodels defaults).
func DefaultOptions() Options {
	return Options{
		Fraction:   2.0 / 3.0,
		Iterations: 3,
	}
}

type point struct {
	x, y float64
}

// Smoother holds the data sorted by predictor plus the fitted robustness
// weights, ready to be evaluated at arbitrary predictor values.
type Smoother struct {
	points  []point
	weights []float64
	window  int
}

// New prepares a Smoother over the (xs[i], ys[i]) observations. xs and ys
// must have the same nonzero length.
func New(xs, ys []float64, opts Options) (*Smoother, error) {
	if len(xs) == 0 {
		return nil, fmt.Errorf("lowess: empty input")
	}
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("lowess: predictor and response lengths differ: %d vs %d", len(xs), len(ys))
	}
	if opts.Fraction <= 0 || opts.Fraction > 1 {
		return nil, fmt.Errorf("lowess: fraction must be in (0,1], got %v", opts.Fraction)
	}
	if opts.Iterations < 0 {
		return nil, fmt.Errorf("lowess: iterations must be >= 0, got %d", opts.Iterations)
	}

	points := make([]point, len(xs))
	for i := range xs {
		points[i] = point{x: xs[i], y: ys[i]}
	}
	sort.Slice(points, func(i, j int) bool { return points[i].x < points[j].x })

	window := int(math.Ceil(opts.Fraction * float64(len(points))))
	if window < 2 {
		window = 2
	}
	if window > len(points) {
		window = len(points)
	}

	s := &Smoother{
		points:  points,
		weights: make([]float64, len(points)),
		window:  window,
	}
	for i := range s.weights {
		s.weights[i] = 1
	}

	s.fitRobustWeights(opts.Iterations)

	return s, nil
}

// Smooth fits the curve and evaluates it at every sample point. Convenience
// wrapper around New + Predict.
func Smooth(xs, ys, samples []float64, opts Options) ([]float64, error) {
	s, err := New(xs, ys, opts)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(samples))
	for i, x := range samples {
		out[i] = s.Predict(x)
	}
	return out, nil
}

// Predict evaluates the smoothed curve at x.
func (s *Smoother) Predict(x float64) float64 {
	if len(s.points) == 1 {
		return s.points[0].y
	}

	lo, hi := s.windowAround(x)

	xs := make([]float64, 0, hi-lo)
	ys := make([]float64, 0, hi-lo)
	ws := make([]float64, 0, hi-lo)

	dmax := 0.0
	for i := lo; i < hi; i++ {
		if d := math.Abs(s.points[i].x - x); d > dmax {
			dmax = d
		}
	}

	for i := lo; i < hi; i++ {
		w := s.weights[i]
		if dmax > 0 {
			w *= tricube(math.Abs(s.points[i].x-x) / dmax)
		}
		xs = append(xs, s.points[i].x)
		ys = append(ys, s.points[i].y)
		ws = append(ws, w)
	}

	if sum(ws) == 0 {
		return stat.Mean(ys, nil)
	}

	// All window predictors identical: a line is undetermined, use the
	// weighted mean instead.
	if dmax == 0 {
		return stat.Mean(ys, ws)
	}

	alpha, beta := stat.LinearRegression(xs, ys, ws, false)
	fitted := alpha + beta*x
	if math.IsNaN(fitted) || math.IsInf(fitted, 0) {
		return stat.Mean(ys, ws)
	}
	return fitted
}

// windowAround returns the half-open index range of the window nearest
// points around x.
func (s *Smoother) windowAround(x float64) (int, int) {
	n := len(s.points)
	lo := sort.Search(n, func(i int) bool { return s.points[i].x >= x })
	hi := lo

	for hi-lo < s.window {
		switch {
		case lo == 0:
			hi++
		case hi == n:
			lo--
		case x-s.points[lo-1].x <= s.points[hi].x-x:
			lo--
		default:
			hi++
		}
	}

	return lo, hi
}

// fitRobustWeights runs the bisquare re-weighting passes over the data
// points, shrinking the influence of observations with large residuals.
func (s *Smoother) fitRobustWeights(iterations int) {
	for it := 0; it < iterations; it++ {
		residuals := make([]float64, len(s.points))
		for i, p := range s.points {
			residuals[i] = math.Abs(p.y - s.Predict(p.x))
		}

		scale := 6 * median(residuals)
		if scale == 0 {
			return
		}

		for i, r := range residuals {
			s.weights[i] = bisquare(r / scale)
		}
	}
}

func tricube(u float64) float64 {
	if u >= 1 {
		return 0
	}
	c := 1 - u*u*u
	return c * c * c
}

func bisquare(u float64) float64 {
	if u >= 1 {
		return 0
	}
	c := 1 - u*u
	return c * c
}

func median(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}
