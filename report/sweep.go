package report

import (
	"math"

	"github.com/pthm-cable/quickmath/config"
	"github.com/pthm-cable/quickmath/fastmath"
)

// ApproxRow is one line of accuracy.csv.
type ApproxRow struct {
	Name      string  `csv:"name"`
	Reference string  `csv:"reference"`
	Lo        float64 `csv:"lo"`
	Hi        float64 `csv:"hi"`
	Samples   int     `csv:"samples"`
	Relative  bool    `csv:"relative"`
	MeanErr   float64 `csv:"mean_err"`
	P50Err    float64 `csv:"p50_err"`
	P90Err    float64 `csv:"p90_err"`
	P99Err    float64 `csv:"p99_err"`
	MaxErr    float64 `csv:"max_err"`
	MaxErrAt  float64 `csv:"max_err_at"`
	NsPerCall float64 `csv:"ns_per_call"`
}

func newApproxRow(name, ref string, lo, hi float64, relative bool, stats ErrorStats) ApproxRow {
	return ApproxRow{
		Name:      name,
		Reference: ref,
		Lo:        lo,
		Hi:        hi,
		Relative:  relative,
		MeanErr:   stats.Mean,
		P50Err:    stats.P50,
		P90Err:    stats.P90,
		P99Err:    stats.P99,
		MaxErr:    stats.Max,
		MaxErrAt:  stats.MaxAt,
	}
}

// sink keeps timed loops from being optimised away.
var sink float32

// timeScalar times fn over xs under phase.
func timeScalar(perf *PerfCollector, phase string, xs []float32, fn func(float32) float32) {
	var acc float32
	perf.StartPhase(phase)
	for _, x := range xs {
		acc += fn(x)
	}
	perf.EndPhase(len(xs))
	sink = acc
}

// linspace returns n+1 float32 samples evenly spaced over [lo, hi].
func linspace(lo, hi float64, n int) []float32 {
	xs := make([]float32, n+1)
	for i := range xs {
		xs[i] = float32(lo + (hi-lo)*float64(i)/float64(n))
	}
	return xs
}

// sweepAbs measures |fn(x) - ref(x)| at every sample.
func sweepAbs(xs []float32, fn func(float32) float32, ref func(float64) float64) ErrorStats {
	errs := make([]float64, len(xs))
	args := make([]float64, len(xs))
	for i, x := range xs {
		args[i] = float64(x)
		errs[i] = math.Abs(float64(fn(x)) - ref(float64(x)))
	}
	return ComputeErrorStats(errs, args)
}

// SweepTrig measures every cosine approximator over its own domain, then Cos
// and Sin over the configured number of full periods.
func SweepTrig(cfg *config.Config, perf *PerfCollector) []ApproxRow {
	var rows []ApproxRow

	for _, ap := range fastmath.Approximators() {
		lo, hi := float64(ap.Lo), float64(ap.Hi)
		xs := linspace(lo, hi, cfg.Trig.Samples)
		phase := "cos/" + ap.Name
		timeScalar(perf, phase, xs, ap.Fn)

		row := newApproxRow(ap.Name, "math.Cos", lo, hi, false, sweepAbs(xs, ap.Fn, math.Cos))
		row.Samples = len(xs)
		row.NsPerCall = perf.NsPerCall(phase)
		rows = append(rows, row)
	}

	r := float64(cfg.Derived.TrigRange32)
	xs := linspace(-r, r, cfg.Trig.Samples)
	timeScalar(perf, "sin", xs, fastmath.Sin)
	row := newApproxRow("sin", "math.Sin", -r, r, false, sweepAbs(xs, fastmath.Sin, math.Sin))
	row.Samples = len(xs)
	row.NsPerCall = perf.NsPerCall("sin")
	rows = append(rows, row)

	return rows
}

// SweepInvSqrt measures the relative error of QuickInverseSqrt at
// log-spaced samples over [min, max].
func SweepInvSqrt(cfg *config.Config, perf *PerfCollector) ApproxRow {
	n := cfg.InvSqrt.Samples
	xs := make([]float32, n)
	x := cfg.InvSqrt.Min
	for i := range xs {
		xs[i] = float32(x)
		x *= cfg.Derived.InvSqrtStep
	}

	timeScalar(perf, "invsqrt", xs, fastmath.QuickInverseSqrt)

	errs := make([]float64, n)
	args := make([]float64, n)
	for i, x := range xs {
		xf := float64(x)
		args[i] = xf
		errs[i] = math.Abs(float64(fastmath.QuickInverseSqrt(x))*math.Sqrt(xf) - 1)
	}

	row := newApproxRow("quick_inverse_sqrt", "1/math.Sqrt", cfg.InvSqrt.Min, cfg.InvSqrt.Max, true,
		ComputeErrorStats(errs, args))
	row.Samples = n
	row.NsPerCall = perf.NsPerCall("invsqrt")
	return row
}
