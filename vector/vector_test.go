package vector

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/pthm-cable/quickmath/rng"
)

func near(a, b float32, tol float64) bool {
	return scalar.EqualWithinAbs(float64(a), float64(b), tol)
}

func TestDotMatchesBLAS(t *testing.T) {
	r := rng.New(3)
	for i := 0; i < 200; i++ {
		a := Vec4{r.Float32Range(-10, 10), r.Float32Range(-10, 10), r.Float32Range(-10, 10), r.Float32Range(-10, 10)}
		b := Vec4{r.Float32Range(-10, 10), r.Float32Range(-10, 10), r.Float32Range(-10, 10), r.Float32Range(-10, 10)}
		x := blas32.Vector{N: 4, Inc: 1, Data: []float32{a.X, a.Y, a.Z, a.W}}
		y := blas32.Vector{N: 4, Inc: 1, Data: []float32{b.X, b.Y, b.Z, b.W}}
		if got, want := a.Dot(b), blas32.Dot(x, y); !near(got, want, 1e-3) {
			t.Fatalf("%v·%v = %v, blas32.Dot = %v", a, b, got, want)
		}
		if got, want := a.XYZ().Dot(b.XYZ()), blas32.Dot(
			blas32.Vector{N: 3, Inc: 1, Data: x.Data[:3]},
			blas32.Vector{N: 3, Inc: 1, Data: y.Data[:3]},
		); !near(got, want, 1e-3) {
			t.Fatalf("Vec3 dot = %v, blas32.Dot = %v", got, want)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		len  float32
	}{
		{"vec1", Vec1{-4}.Normalize().Len()},
		{"vec2", Vec2{3, 4}.Normalize().Len()},
		{"vec3", Vec3{1, 2, 2}.Normalize().Len()},
		{"vec4", Vec4{1, 1, 1, 1}.Normalize().Len()},
	}
	for _, tt := range tests {
		if !scalar.EqualWithinRel(float64(tt.len), 1, 0.002) {
			t.Errorf("%s: |Normalize()| = %v, want ~1", tt.name, tt.len)
		}
	}

	exact := Vec3{1, 2, 2}.NormalizeExact()
	if !near(exact.X, 1.0/3, 1e-6) || !near(exact.Y, 2.0/3, 1e-6) || !near(exact.Z, 2.0/3, 1e-6) {
		t.Errorf("NormalizeExact = %v", exact)
	}
	if v := (Vec2{0, -5}).NormalizeExact(); v != (Vec2{0, -1}) {
		t.Errorf("NormalizeExact = %v", v)
	}
}

func TestArithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}
	if got := a.Add(b); got != (Vec3{5, 7, 9}) {
		t.Errorf("Add = %v", got)
	}
	if got := b.Sub(a); got != (Vec3{3, 3, 3}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(2); got != (Vec3{2, 4, 6}) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.AddScalar(1); got != (Vec3{2, 3, 4}) {
		t.Errorf("AddScalar = %v", got)
	}
	if got := b.Div(Vec3{2, 5, 3}); got != (Vec3{2, 1, 2}) {
		t.Errorf("Div = %v", got)
	}
	if got := a.Cross(b); got != (Vec3{-3, 6, -3}) {
		t.Errorf("Cross = %v", got)
	}
	if got := (Vec3{1, 0, 0}).Cross(Vec3{0, 1, 0}); got != (Vec3{0, 0, 1}) {
		t.Errorf("x × y = %v", got)
	}
}

func TestConversions(t *testing.T) {
	if got := (Vec2{1, 2}).ToVec3(3); got != (Vec3{1, 2, 3}) {
		t.Errorf("ToVec3 = %v", got)
	}
	if got := (Vec3{1, 2, 3}).ToVec4(4); got != (Vec4{1, 2, 3, 4}) {
		t.Errorf("ToVec4 = %v", got)
	}
	if got := Vec3XY1(5, 6); got != (Vec3{5, 6, 1}) {
		t.Errorf("Vec3XY1 = %v", got)
	}
	if got := Vec4XYZ1(5, 6, 7); got != (Vec4{5, 6, 7, 1}) {
		t.Errorf("Vec4XYZ1 = %v", got)
	}
	if got := MulVec3D(Vec4{1, 2, 3, 9}, 2); got != (Vec4{2, 4, 6, 1}) {
		t.Errorf("MulVec3D = %v", got)
	}
	if got := DivVec3D(Vec4{2, 4, 6, 9}, 2); got != (Vec4{1, 2, 3, 1}) {
		t.Errorf("DivVec3D = %v", got)
	}
}

func TestLerp(t *testing.T) {
	a := Vec2{0, 10}
	b := Vec2{10, 20}
	if got := a.Lerp(b, 0.25); got != (Vec2{2.5, 12.5}) {
		t.Errorf("Lerp = %v", got)
	}
	if got := a.LerpPrecise(b, 1); got != b {
		t.Errorf("LerpPrecise(1) = %v, want %v", got, b)
	}
	if got := Lerp(a, b, 0.5); got != (Vec2{5, 15}) {
		t.Errorf("generic Lerp = %v", got)
	}
	if got := (Vec4{}).Lerp(Vec4{4, 4, 4, 4}, 0.5); got != (Vec4{2, 2, 2, 2}) {
		t.Errorf("Vec4 Lerp = %v", got)
	}
}

func TestMatrixIdentity(t *testing.T) {
	v := Vec4{1, 2, 3, 4}
	if got := Identity4().MulVec(v); got != v {
		t.Errorf("I·v = %v", got)
	}
	m := RotationZ(0.3)
	if got := m.Mul(Identity4()); got != m {
		t.Errorf("M·I != M")
	}
	if got := Identity3().MulVec(Vec3{1, 2, 3}); got != (Vec3{1, 2, 3}) {
		t.Errorf("I3·v = %v", got)
	}
	if got := Identity3().ToMat4(); got.M[3][3] != 0 || got.M[2][2] != 1 {
		t.Errorf("ToMat4 = %v", got)
	}
}

func TestRotations(t *testing.T) {
	const quarter = math.Pi / 2

	tests := []struct {
		name string
		m    Mat4
		in   Vec4
		want Vec4
	}{
		{"z: x to y", RotationZ(quarter), Vec4{1, 0, 0, 1}, Vec4{0, 1, 0, 1}},
		{"x: y to z", RotationX(quarter), Vec4{0, 1, 0, 1}, Vec4{0, 0, 1, 1}},
		{"y: z to x", RotationY(quarter), Vec4{0, 0, 1, 1}, Vec4{1, 0, 0, 1}},
		{"z: half turn", RotationZ(math.Pi), Vec4{1, 2, 3, 1}, Vec4{-1, -2, 3, 1}},
	}
	for _, tt := range tests {
		got := tt.m.MulVec(tt.in)
		if !near(got.X, tt.want.X, 1e-5) || !near(got.Y, tt.want.Y, 1e-5) ||
			!near(got.Z, tt.want.Z, 1e-5) || !near(got.W, tt.want.W, 1e-5) {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}

	p := Rotation2D(quarter).MulVec(Vec3XY1(2, 0))
	if !near(p.X, 0, 1e-5) || !near(p.Y, 2, 1e-5) || p.Z != 1 {
		t.Errorf("Rotation2D: got %v", p)
	}

	// Composition: two eighth turns equal one quarter turn.
	eighth := RotationX(math.Pi / 4)
	composed := eighth.Mul(eighth)
	direct := RotationX(quarter)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if !near(composed.M[r][c], direct.M[r][c], 1e-5) {
				t.Fatalf("composed[%d][%d] = %v, want %v", r, c, composed.M[r][c], direct.M[r][c])
			}
		}
	}
}
