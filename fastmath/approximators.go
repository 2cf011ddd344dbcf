package fastmath

// Approximator is any scalar cosine approximation.
type Approximator func(a float32) float32

// NamedApproximator pairs an approximation with the input domain it is
// specified for.
type NamedApproximator struct {
	Name string
	Fn   Approximator
	Lo   float32
	Hi   float32
}

var approximators = [...]NamedApproximator{
	{Name: "taylor", Fn: CosTaylor, Lo: -Pi / 4, Hi: Pi / 4},
	{Name: "poly3", Fn: CosApprox3, Lo: -PiHalf, Hi: PiHalf},
	{Name: "poly5", Fn: CosApprox5, Lo: -PiHalf, Hi: PiHalf},
	{Name: "poly7", Fn: CosApprox7, Lo: -PiHalf, Hi: PiHalf},
	{Name: "bhaskara1", Fn: CosBhaskara1, Lo: -PiHalf, Hi: PiHalf},
	{Name: "bhaskara2", Fn: CosBhaskara2, Lo: -PiHalf, Hi: PiHalf},
	{Name: "bhaskara3", Fn: CosBhaskara3, Lo: -PiHalf, Hi: PiHalf},
	{Name: "cos", Fn: Cos, Lo: -TwoPi, Hi: TwoPi},
}

// Approximators lists every cosine approximation with its valid domain.
// The returned array is a copy.
func Approximators() [len(approximators)]NamedApproximator {
	return approximators
}
