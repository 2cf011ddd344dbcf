package report

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"

	"github.com/pthm-cable/quickmath/config"
	"github.com/pthm-cable/quickmath/fastmath"
)

// FitResult is the outcome of refitting an even cosine polynomial.
type FitResult struct {
	Terms    int
	Start    []float64 // Truncated Taylor coefficients the search starts from
	StartErr float64
	Coeffs   []float64 // Best coefficients found, lowest order first
	MaxErr   float64
	Evals    int
	Status   string
}

// TaylorCoeffs returns the first n Taylor coefficients of cos in powers of x².
func TaylorCoeffs(n int) []float64 {
	c := make([]float64, n)
	term := 1.0
	for k := range c {
		c[k] = term
		term /= -float64((2*k + 1) * (2*k + 2))
	}
	return c
}

// EvalEven evaluates c[0] + c[1]·x² + c[2]·x⁴ + ... by Horner's rule.
func EvalEven(c []float64, x float64) float64 {
	x2 := x * x
	var acc float64
	for k := len(c) - 1; k >= 0; k-- {
		acc = acc*x2 + c[k]
	}
	return acc
}

// MaxAbsErr is the largest |EvalEven(c, x) - cos(x)| over xs.
func MaxAbsErr(c []float64, xs []float64) float64 {
	var worst float64
	for _, x := range xs {
		worst = max(worst, math.Abs(EvalEven(c, x)-math.Cos(x)))
	}
	return worst
}

// QuarterSamples returns n+1 points evenly spaced over [0, π/2].
func QuarterSamples(n int) []float64 {
	xs := make([]float64, n+1)
	for i := range xs {
		xs[i] = math.Pi / 2 * float64(i) / float64(n)
	}
	return xs
}

// Shipped returns the built-in polynomial approximator with the given number
// of coefficients, if there is one.
func Shipped(terms int) (fastmath.NamedApproximator, bool) {
	name := fmt.Sprintf("poly%d", 2*terms-3)
	for _, ap := range fastmath.Approximators() {
		if ap.Name == name {
			return ap, true
		}
	}
	return fastmath.NamedApproximator{}, false
}

// FitCosine searches for the cfg.Fit.Terms coefficients that minimise the
// maximum absolute error against math.Cos on [0, π/2]. The search runs in
// coordinates scaled by the Taylor coefficients so every dimension has a
// comparable step size.
func FitCosine(cfg *config.Config) (FitResult, error) {
	terms := cfg.Fit.Terms
	xs := QuarterSamples(cfg.Fit.Samples)
	start := TaylorCoeffs(terms)

	res := FitResult{
		Terms:    terms,
		Start:    start,
		StartErr: MaxAbsErr(start, xs),
	}
	res.Coeffs = append([]float64(nil), start...)
	res.MaxErr = res.StartErr

	unscale := func(x []float64) []float64 {
		c := make([]float64, len(x))
		for i := range x {
			c[i] = x[i] * start[i]
		}
		return c
	}

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			c := unscale(x)
			e := MaxAbsErr(c, xs)
			res.Evals++
			if e < res.MaxErr {
				res.MaxErr = e
				res.Coeffs = c
			}
			return e
		},
	}

	initX := make([]float64, terms)
	for i := range initX {
		initX[i] = 1
	}
	settings := &optimize.Settings{
		FuncEvaluations: cfg.Fit.MaxEvals,
	}

	result, err := optimize.Minimize(problem, initX, settings, &optimize.NelderMead{})
	if result != nil {
		res.Status = result.Status.String()
	}
	// A method error after evaluations only ends the search early; the best
	// point seen so far stands.
	if err != nil && res.Evals == 0 {
		return res, fmt.Errorf("minimizing cosine error: %w", err)
	}
	return res, nil
}
