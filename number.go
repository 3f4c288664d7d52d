package semicircle

import "golang.org/x/exp/constraints"

// Coord is the set of signed integer types a generator can emit
// coordinates in.
type Coord interface {
	~int | ~int32 | ~int64
}

// Radius is the set of unsigned integer types accepted as a radius.
type Radius interface {
	constraints.Unsigned
}

// MaxRadius is the exclusive upper bound on the radius. The error term of
// the walk grows with the radius and must stay inside an int32.
const MaxRadius = 100_000_000

// toCoord converts an unsigned radius to T, reporting whether the value
// survived the conversion unchanged.
func toCoord[T Coord, U Radius](v U) (T, bool) {
	c := T(v)
	if c < 0 || U(c) != v {
		return 0, false
	}
	return c, true
}

func abs[T Coord](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
