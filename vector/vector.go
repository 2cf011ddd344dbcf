// Package vector provides small fixed-size float32 vectors and matrices.
//
// All types are plain values; nothing here allocates. Normalize uses the
// fast inverse square root from fastmath, NormalizeExact divides by the true
// length.
package vector

import (
	"math"

	"github.com/pthm-cable/quickmath/fastmath"
)

// Vec1 is a one-component vector.
type Vec1 struct{ X float32 }

// Vec2 is a two-component vector.
type Vec2 struct{ X, Y float32 }

// Vec3 is a three-component vector.
type Vec3 struct{ X, Y, Z float32 }

// Vec4 is a four-component vector.
type Vec4 struct{ X, Y, Z, W float32 }

// Vector is implemented by every vector type in this package.
type Vector[V any] interface {
	Add(V) V
	Sub(V) V
	Scale(float32) V
	Dot(V) float32
	Len() float32
	InvLen() float32
	Normalize() V
	NormalizeExact() V
}

var (
	_ Vector[Vec1] = Vec1{}
	_ Vector[Vec2] = Vec2{}
	_ Vector[Vec3] = Vec3{}
	_ Vector[Vec4] = Vec4{}
)

func sqrt32(x float32) float32 { return float32(math.Sqrt(float64(x))) }

func lerp(a, b, t float32) float32 { return a + (b-a)*t }

func lerpPrecise(a, b, t float32) float32 { return (1-t)*a + t*b }

// Lerp interpolates between two vectors of the same type using the fast
// a+(b-a)t form.
func Lerp[V interface {
	Add(V) V
	Sub(V) V
	Scale(float32) V
}](a, b V, t float32) V {
	return a.Add(b.Sub(a).Scale(t))
}

// ---- Vec1 ----

func (v Vec1) Add(o Vec1) Vec1 { return Vec1{v.X + o.X} }
func (v Vec1) Sub(o Vec1) Vec1 { return Vec1{v.X - o.X} }
func (v Vec1) AddScalar(s float32) Vec1 { return Vec1{v.X + s} }
func (v Vec1) Scale(s float32) Vec1 { return Vec1{v.X * s} }
func (v Vec1) Div(o Vec1) Vec1 { return Vec1{v.X / o.X} }
func (v Vec1) Dot(o Vec1) float32 { return v.X * o.X }
func (v Vec1) Len() float32 { return sqrt32(v.Dot(v)) }
func (v Vec1) InvLen() float32 { return fastmath.QuickInverseSqrt(v.Dot(v)) }
func (v Vec1) Normalize() Vec1 { return v.Scale(v.InvLen()) }
func (v Vec1) NormalizeExact() Vec1 {
	return Vec1{v.X / v.Len()}
}
func (v Vec1) Lerp(o Vec1, t float32) Vec1 {
	return Vec1{lerp(v.X, o.X, t)}
}
func (v Vec1) LerpPrecise(o Vec1, t float32) Vec1 {
	return Vec1{lerpPrecise(v.X, o.X, t)}
}

// ---- Vec2 ----

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) AddScalar(s float32) Vec2 { return Vec2{v.X + s, v.Y + s} }
func (v Vec2) Scale(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Div(o Vec2) Vec2 { return Vec2{v.X / o.X, v.Y / o.Y} }
func (v Vec2) Dot(o Vec2) float32 { return v.X*o.X + v.Y*o.Y }
func (v Vec2) Len() float32 { return sqrt32(v.Dot(v)) }
func (v Vec2) InvLen() float32 { return fastmath.QuickInverseSqrt(v.Dot(v)) }
func (v Vec2) Normalize() Vec2 { return v.Scale(v.InvLen()) }
func (v Vec2) NormalizeExact() Vec2 {
	l := v.Len()
	return Vec2{v.X / l, v.Y / l}
}
func (v Vec2) Lerp(o Vec2, t float32) Vec2 {
	return Vec2{lerp(v.X, o.X, t), lerp(v.Y, o.Y, t)}
}
func (v Vec2) LerpPrecise(o Vec2, t float32) Vec2 {
	return Vec2{lerpPrecise(v.X, o.X, t), lerpPrecise(v.Y, o.Y, t)}
}

// ToVec3 extends v with z.
func (v Vec2) ToVec3(z float32) Vec3 { return Vec3{v.X, v.Y, z} }

// ---- Vec3 ----

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) AddScalar(s float32) Vec3 { return Vec3{v.X + s, v.Y + s, v.Z + s} }
func (v Vec3) Scale(s float32) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Div(o Vec3) Vec3 { return Vec3{v.X / o.X, v.Y / o.Y, v.Z / o.Z} }
func (v Vec3) Dot(o Vec3) float32 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) Len() float32 { return sqrt32(v.Dot(v)) }
func (v Vec3) InvLen() float32 { return fastmath.QuickInverseSqrt(v.Dot(v)) }
func (v Vec3) Normalize() Vec3 { return v.Scale(v.InvLen()) }
func (v Vec3) NormalizeExact() Vec3 {
	l := v.Len()
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}
func (v Vec3) Lerp(o Vec3, t float32) Vec3 {
	return Vec3{lerp(v.X, o.X, t), lerp(v.Y, o.Y, t), lerp(v.Z, o.Z, t)}
}
func (v Vec3) LerpPrecise(o Vec3, t float32) Vec3 {
	return Vec3{lerpPrecise(v.X, o.X, t), lerpPrecise(v.Y, o.Y, t), lerpPrecise(v.Z, o.Z, t)}
}

// Vec3XY1 returns (x, y, 1), a 2D point in homogeneous coordinates.
func Vec3XY1(x, y float32) Vec3 { return Vec3{x, y, 1} }

// Cross returns the cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// ToVec4 extends v with w.
func (v Vec3) ToVec4(w float32) Vec4 { return Vec4{v.X, v.Y, v.Z, w} }

// ---- Vec4 ----

func (v Vec4) Add(o Vec4) Vec4 { return Vec4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W} }
func (v Vec4) Sub(o Vec4) Vec4 { return Vec4{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W} }
func (v Vec4) AddScalar(s float32) Vec4 {
	return Vec4{v.X + s, v.Y + s, v.Z + s, v.W + s}
}
func (v Vec4) Scale(s float32) Vec4 { return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s} }
func (v Vec4) Div(o Vec4) Vec4 { return Vec4{v.X / o.X, v.Y / o.Y, v.Z / o.Z, v.W / o.W} }
func (v Vec4) Dot(o Vec4) float32 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W }
func (v Vec4) Len() float32 { return sqrt32(v.Dot(v)) }
func (v Vec4) InvLen() float32 { return fastmath.QuickInverseSqrt(v.Dot(v)) }
func (v Vec4) Normalize() Vec4 { return v.Scale(v.InvLen()) }
func (v Vec4) NormalizeExact() Vec4 {
	l := v.Len()
	return Vec4{v.X / l, v.Y / l, v.Z / l, v.W / l}
}
func (v Vec4) Lerp(o Vec4, t float32) Vec4 {
	return Vec4{lerp(v.X, o.X, t), lerp(v.Y, o.Y, t), lerp(v.Z, o.Z, t), lerp(v.W, o.W, t)}
}
func (v Vec4) LerpPrecise(o Vec4, t float32) Vec4 {
	return Vec4{
		lerpPrecise(v.X, o.X, t), lerpPrecise(v.Y, o.Y, t),
		lerpPrecise(v.Z, o.Z, t), lerpPrecise(v.W, o.W, t),
	}
}

// Vec4XYZ1 returns (x, y, z, 1), a 3D point in homogeneous coordinates.
func Vec4XYZ1(x, y, z float32) Vec4 { return Vec4{x, y, z, 1} }

// XYZ drops the w component.
func (v Vec4) XYZ() Vec3 { return Vec3{v.X, v.Y, v.Z} }

// MulVec3D scales the xyz part of v and resets w to 1.
func MulVec3D(v Vec4, m float32) Vec4 { return Vec4XYZ1(v.X*m, v.Y*m, v.Z*m) }

// DivVec3D divides the xyz part of v and resets w to 1.
func DivVec3D(v Vec4, d float32) Vec4 { return Vec4XYZ1(v.X/d, v.Y/d, v.Z/d) }
