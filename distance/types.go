package distance

import "errors"

var (
	// ErrInvalidInput is returned when the city set is empty, contains an
	// empty or duplicate identifier, or has non-finite coordinates.
	ErrInvalidInput = errors.New("distance: invalid city set")

	// ErrUnknownCity is returned when a lookup references a city that is not
	// present in the table.
	ErrUnknownCity = errors.New("distance: unknown city")
)

// City is a named point in the plane.
type City struct {
	// ID uniquely identifies the city within a set.
	ID string

	// X and Y are the planar coordinates.
	X, Y float64
}

// Point is a bare coordinate pair, used by FromMap.
type Point struct {
	X, Y float64
}
