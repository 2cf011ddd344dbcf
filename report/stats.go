// Package report measures the approximations, generator and hash families
// against exact references and writes the results as CSV.
package report

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// ErrorStats summarises the error of one approximation over a sample set.
type ErrorStats struct {
	Mean  float64
	P50   float64
	P90   float64
	P99   float64
	Max   float64
	MaxAt float64 // Input that produced Max
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// ComputeErrorStats aggregates errs, where errs[i] was measured at args[i].
// errs is not modified.
func ComputeErrorStats(errs, args []float64) ErrorStats {
	n := len(errs)
	if n == 0 {
		return ErrorStats{}
	}

	maxIdx := floats.MaxIdx(errs)
	sorted := make([]float64, n)
	copy(sorted, errs)
	sort.Float64s(sorted)

	return ErrorStats{
		Mean:  floats.Sum(errs) / float64(n),
		P50:   Percentile(sorted, 0.50),
		P90:   Percentile(sorted, 0.90),
		P99:   Percentile(sorted, 0.99),
		Max:   errs[maxIdx],
		MaxAt: args[maxIdx],
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (s ErrorStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("mean", s.Mean),
		slog.Float64("p50", s.P50),
		slog.Float64("p90", s.P90),
		slog.Float64("p99", s.P99),
		slog.Float64("max", s.Max),
		slog.Float64("max_at", s.MaxAt),
	)
}
