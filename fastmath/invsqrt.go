package fastmath

import "math"

// MagicInvSqrt seeds the initial 1/√x estimate from the float's bit pattern.
const MagicInvSqrt uint32 = 0x5f3759df

// QuickInverseSqrt approximates 1/√x with the bit-level initial guess and a
// single Newton-Raphson step. Relative error stays under ~0.18% for positive
// normal x. A second Newton step would roughly double the accuracy and the
// cost; it is intentionally not applied.
//
// Zero, negative, NaN and infinite inputs are not special-cased.
func QuickInverseSqrt(x float32) float32 {
	const threeHalfs = 1.5

	halfX := 0.5 * x
	y := math.Float32frombits(MagicInvSqrt - math.Float32bits(x)>>1)
	y = y * (threeHalfs - halfX*y*y)
	return y
}

// FastSqrt approximates √x as x/√x using QuickInverseSqrt.
func FastSqrt(x float32) float32 {
	return x * QuickInverseSqrt(x)
}
