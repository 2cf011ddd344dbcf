package vector

import "github.com/pthm-cable/quickmath/fastmath"

// Mat3 is a row-major 3x3 matrix. Vectors are rows: v' = v·M.
type Mat3 struct {
	M [3][3]float32
}

// Mat4 is a row-major 4x4 matrix. Vectors are rows: v' = v·M.
type Mat4 struct {
	M [4][4]float32
}

// Identity3 returns the 3x3 identity.
func Identity3() Mat3 {
	return Mat3{M: [3][3]float32{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}}
}

// Identity4 returns the 4x4 identity.
func Identity4() Mat4 {
	return Mat4{M: [4][4]float32{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

// Mul returns m·o.
func (m Mat3) Mul(o Mat3) Mat3 {
	var out Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out.M[r][c] = m.M[r][0]*o.M[0][c] + m.M[r][1]*o.M[1][c] + m.M[r][2]*o.M[2][c]
		}
	}
	return out
}

// MulVec returns v·m.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		X: v.X*m.M[0][0] + v.Y*m.M[1][0] + v.Z*m.M[2][0],
		Y: v.X*m.M[0][1] + v.Y*m.M[1][1] + v.Z*m.M[2][1],
		Z: v.X*m.M[0][2] + v.Y*m.M[1][2] + v.Z*m.M[2][2],
	}
}

// ToMat4 embeds m in the upper-left of a 4x4 matrix with zeros elsewhere.
func (m Mat3) ToMat4() Mat4 {
	return Mat4{M: [4][4]float32{
		{m.M[0][0], m.M[0][1], m.M[0][2], 0},
		{m.M[1][0], m.M[1][1], m.M[1][2], 0},
		{m.M[2][0], m.M[2][1], m.M[2][2], 0},
		{0, 0, 0, 0},
	}}
}

// Mul returns m·o.
func (m Mat4) Mul(o Mat4) Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out.M[r][c] = m.M[r][0]*o.M[0][c] + m.M[r][1]*o.M[1][c] +
				m.M[r][2]*o.M[2][c] + m.M[r][3]*o.M[3][c]
		}
	}
	return out
}

// MulVec returns v·m.
func (m Mat4) MulVec(v Vec4) Vec4 {
	return Vec4{
		X: v.X*m.M[0][0] + v.Y*m.M[1][0] + v.Z*m.M[2][0] + v.W*m.M[3][0],
		Y: v.X*m.M[0][1] + v.Y*m.M[1][1] + v.Z*m.M[2][1] + v.W*m.M[3][1],
		Z: v.X*m.M[0][2] + v.Y*m.M[1][2] + v.Z*m.M[2][2] + v.W*m.M[3][2],
		W: v.X*m.M[0][3] + v.Y*m.M[1][3] + v.Z*m.M[2][3] + v.W*m.M[3][3],
	}
}

// Rotation2D rotates homogeneous 2D points (x, y, 1) counter-clockwise by
// angle radians.
func Rotation2D(angle float32) Mat3 {
	c, s := fastmath.Cos(angle), fastmath.Sin(angle)
	return Mat3{M: [3][3]float32{
		{c, s, 0},
		{-s, c, 0},
		{0, 0, 1},
	}}
}

// RotationX rotates about the x axis by angle radians.
func RotationX(angle float32) Mat4 {
	c, s := fastmath.Cos(angle), fastmath.Sin(angle)
	return Mat4{M: [4][4]float32{
		{1, 0, 0, 0},
		{0, c, s, 0},
		{0, -s, c, 0},
		{0, 0, 0, 1},
	}}
}

// RotationY rotates about the y axis by angle radians.
func RotationY(angle float32) Mat4 {
	c, s := fastmath.Cos(angle), fastmath.Sin(angle)
	return Mat4{M: [4][4]float32{
		{c, 0, -s, 0},
		{0, 1, 0, 0},
		{s, 0, c, 0},
		{0, 0, 0, 1},
	}}
}

// RotationZ rotates about the z axis by angle radians.
func RotationZ(angle float32) Mat4 {
	c, s := fastmath.Cos(angle), fastmath.Sin(angle)
	return Mat4{M: [4][4]float32{
		{c, s, 0, 0},
		{-s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}
