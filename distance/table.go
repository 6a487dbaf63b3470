package distance

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gatsp/matrix"
)

// Table is a complete, symmetric distance table over an ordered city set.
type Table struct {
	cities []City         // cities in index order; cities[0] is the anchor
	index  map[string]int // identifier -> index
	dist   *matrix.Dense  // n×n row-major distances
}

// New validates cities and precomputes all pairwise Euclidean distances.
//
// Stage 1 validates shape, identifiers and coordinates.
// Stage 2 fills the upper triangle and mirrors it; the diagonal stays 0.
//
// Complexity: O(n²) time and memory.
func New(cities []City) (*Table, error) {
	n := len(cities)
	if n == 0 {
		return nil, fmt.Errorf("%w: no cities", ErrInvalidInput)
	}

	var (
		index = make(map[string]int, n)
		i, j  int
		c     City
		ok    bool
	)
	for i, c = range cities {
		if c.ID == "" {
			return nil, fmt.Errorf("%w: empty id at position %d", ErrInvalidInput, i)
		}
		if _, ok = index[c.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidInput, c.ID)
		}
		if !finite(c.X) || !finite(c.Y) {
			return nil, fmt.Errorf("%w: non-finite coordinates for %q", ErrInvalidInput, c.ID)
		}
		index[c.ID] = i
	}

	dist, err := matrix.NewSquare(n)
	if err != nil {
		return nil, err
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if err = dist.SetSymmetric(i, j, euclidean(cities[i], cities[j])); err != nil {
				// Finite coordinates may still overflow to +Inf when squared.
				return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
		}
	}

	own := make([]City, n)
	copy(own, cities)

	return &Table{cities: own, index: index, dist: dist}, nil
}

// FromMap builds a Table from an identifier->point mapping. Go maps carry no
// order, so order lists the identifiers in table order (order[0] is the
// anchor) and must cover the map exactly.
func FromMap(points map[string]Point, order []string) (*Table, error) {
	if len(order) != len(points) {
		return nil, fmt.Errorf("%w: order has %d ids, map has %d", ErrInvalidInput, len(order), len(points))
	}
	cities := make([]City, 0, len(order))
	for _, id := range order {
		p, ok := points[id]
		if !ok {
			return nil, fmt.Errorf("%w: %q missing from map", ErrInvalidInput, id)
		}
		cities = append(cities, City{ID: id, X: p.X, Y: p.Y})
	}

	return New(cities)
}

// Len returns the number of cities.
func (t *Table) Len() int { return len(t.cities) }

// Anchor returns the identifier of the anchor city (index 0).
func (t *Table) Anchor() string { return t.cities[0].ID }

// ID returns the identifier at index i. It panics if i is out of range,
// like a slice index.
func (t *Table) ID(i int) string { return t.cities[i].ID }

// City returns the city at index i. It panics if i is out of range.
func (t *Table) City(i int) City { return t.cities[i] }

// IDs returns a fresh copy of the identifiers in index order.
func (t *Table) IDs() []string {
	out := make([]string, len(t.cities))
	for i := range t.cities {
		out[i] = t.cities[i].ID
	}

	return out
}

// Index returns the index of id.
func (t *Table) Index(id string) (int, bool) {
	i, ok := t.index[id]
	return i, ok
}

// At returns the distance between the cities at indices i and j.
// Complexity: O(1).
func (t *Table) At(i, j int) (float64, error) {
	d, err := t.dist.At(i, j)
	if err != nil {
		return 0, fmt.Errorf("%w: index pair (%d,%d)", ErrUnknownCity, i, j)
	}

	return d, nil
}

// Lookup returns the distance between the cities named a and b.
// Complexity: O(1) expected.
func (t *Table) Lookup(a, b string) (float64, error) {
	i, ok := t.index[a]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCity, a)
	}
	j, ok := t.index[b]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCity, b)
	}

	return t.At(i, j)
}

// euclidean returns the straight-line distance between a and b.
func euclidean(a, b City) float64 {
	return math.Sqrt((b.X-a.X)*(b.X-a.X) + (b.Y-a.Y)*(b.Y-a.Y))
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
