// Package signum provides a sign that is never zero, for stepping integer
// coordinates one unit in either direction.
package signum

// Signum is +1 or -1. The zero value is not a valid Signum; use Pos or Neg.
type Signum int8

const (
	Pos Signum = 1
	Neg Signum = -1
)

// Of returns Neg for negative v and Pos otherwise.
func Of[T Signed](v T) Signum {
	if v < 0 {
		return Neg
	}
	return Pos
}

func (s Signum) IsPositive() bool { return s > 0 }
func (s Signum) IsNegative() bool { return s < 0 }

// Flip returns the opposite sign.
func (s Signum) Flip() Signum { return -s }

// Signed lists the signed integer widths a Signum applies to.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// Unsigned lists the unsigned integer widths a Signum applies to.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Integer is any width Signum arithmetic is defined for.
type Integer interface {
	Signed | Unsigned
}

// Mul returns v with its sign multiplied by s. For unsigned v, Neg yields the
// two's complement negation.
func Mul[T Integer](s Signum, v T) T {
	if s < 0 {
		return -v
	}
	return v
}

// Div equals Mul since |s| is 1.
func Div[T Integer](v T, s Signum) T {
	return Mul(s, v)
}

// Add returns v+s. Unsigned values wrap, so Add(uint8(0), Neg) is 255.
func Add[T Integer](v T, s Signum) T {
	if s < 0 {
		return v - 1
	}
	return v + 1
}

// Sub returns v-s with the same wrapping as Add.
func Sub[T Integer](v T, s Signum) T {
	return Add(v, -s)
}
