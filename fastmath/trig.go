// Package fastmath provides float32 approximations of trigonometric and
// inverse square root functions for hot paths that cannot afford the
// float32->float64 round trip through Go's math package.
//
// Every function here is pure and total: out-of-domain input is not checked,
// and NaN or Inf propagate as IEEE-754 arithmetic dictates.
package fastmath

import "math"

// Angle constants in float32 precision.
const (
	Pi         float32 = math.Pi
	PiHalf     float32 = math.Pi / 2
	TwoPi      float32 = Pi * 2
	PiSquared  float32 = Pi * Pi
	Tau        float32 = 2 * math.Pi
	TauSquared float32 = Tau * Tau
)

// CosTaylor is the truncated Taylor series 1 - a²/2 + a⁴/24.
// Only usable close to zero; error reaches ~3e-4 at ±π/4.
func CosTaylor(a float32) float32 {
	a2 := a * a
	a4 := a2 * a2
	return 1 - a2/2 + a4/24
}

// CosApprox3 is a 3-coefficient even polynomial, good to ~3.2 decimal digits
// on [-π/2, π/2].
func CosApprox3(a float32) float32 {
	const (
		c1 float32 = 0.99940307
		c2 float32 = -0.49558072
		c3 float32 = 0.03679168
	)
	a2 := a * a
	return c1 + a2*(c2+a2*c3)
}

// CosApprox5 is a 4-coefficient even polynomial, good to ~5.2 decimal digits
// on [-π/2, π/2].
func CosApprox5(a float32) float32 {
	const (
		c1 float32 = 0.9999932946
		c2 float32 = -0.4999124376
		c3 float32 = 0.0414877472
		c4 float32 = -0.0012712095
	)
	a2 := a * a
	return c1 + a2*(c2+a2*(c3+a2*c4))
}

// CosApprox7 is a 5-coefficient even polynomial, good to ~7.3 decimal digits
// on [-π/2, π/2]. Cos and Sin are built on it.
func CosApprox7(a float32) float32 {
	const (
		c1 float32 = 0.999999953464
		c2 float32 = -0.4999999053455
		c3 float32 = 0.0416635846769
		c4 float32 = -0.0013853704264
		c5 float32 = 0.000023233
	)
	a2 := a * a
	return c1 + a2*(c2+a2*(c3+a2*(c4+a2*c5)))
}

// CosBhaskara1 is Bhaskara I's rational sine approximation shifted by π/2.
// Valid for a in [-π/2, π/2].
func CosBhaskara1(a float32) float32 {
	const fivePiSquared = 5 * PiSquared
	a += PiHalf
	p := a * (Pi - a)
	return (16 * p) / (fivePiSquared - 4*p)
}

// CosBhaskara2 is Bhaskara's formula written directly for cosine.
// Valid for a in [-π/2, π/2].
func CosBhaskara2(a float32) float32 {
	a2 := a * a
	return (PiSquared - 4*a2) / (PiSquared + a2)
}

// CosBhaskara3 is the τ form of the Bhaskara cosine.
// Valid for a in [-π/2, π/2].
func CosBhaskara3(a float32) float32 {
	a2 := a * a
	return 1 - (20*a2)/(4*a2+TauSquared)
}

// Cos approximates cos(a) for any finite a by folding the argument into
// [0, π/2] and evaluating CosApprox7.
func Cos(a float32) float32 {
	if a < 0 {
		a = -a
	}
	a = float32(math.Mod(float64(a), float64(TwoPi)))

	switch int(a / PiHalf) {
	case 1:
		return -CosApprox7(Pi - a)
	case 2:
		return -CosApprox7(a - Pi)
	case 3:
		return CosApprox7(TwoPi - a)
	default:
		return CosApprox7(a)
	}
}

// Sin approximates sin(a) as Cos(π/2 - a).
func Sin(a float32) float32 {
	return Cos(PiHalf - a)
}
