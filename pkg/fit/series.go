package fit

import (
	"github.com/pkg/errors"
)

// Series is a numeric curve sampled at ordered x coordinates. All series
// taking part in one selection share an identical x grid, which makes the y
// vectors directly comparable point by point.
type Series struct {
	Name string
	X    []float64
	Y    []float64
}

// Point is a single test observation. Test points arrive in file order and
// are not required to form a grid of their own, but every x must hit the
// shared candidate grid exactly.
type Point struct {
	X float64
	Y float64
}

// Len returns the number of samples in the series.
func (s Series) Len() int {
	return len(s.X)
}

// Validate checks the per-series invariants: at least one sample, x and y of
// equal length, x values unique and sorted ascending.
func (s Series) Validate() error {
	if len(s.X) == 0 {
		return invalidInputf("series is empty")
	}
	if len(s.X) != len(s.Y) {
		return invalidInputf("series has %d x values but %d y values", len(s.X), len(s.Y))
	}
	for i := 1; i < len(s.X); i++ {
		if !(s.X[i] > s.X[i-1]) {
			return invalidInputf("series x values must be unique and sorted ascending, offending position %d", i)
		}
	}
	return nil
}

// SameGrid reports whether two series are sampled at identical x coordinates
// in identical order.
func SameGrid(a, b Series) bool {
	return equalGrid(a.X, b.X)
}

func equalGrid(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// checkSeries validates every series of one kind and its alignment with the
// reference grid. Indices in messages are 1-based to match dataset column
// numbering.
func checkSeries(kind string, all []Series, grid []float64) error {
	for i, series := range all {
		if err := series.Validate(); err != nil {
			return errors.Wrapf(err, "%s series %d", kind, i+1)
		}
		if !equalGrid(series.X, grid) {
			return invalidInputf("%s series %d does not share the common x grid", kind, i+1)
		}
	}
	return nil
}

// gridIndex maps every x on the shared grid to its position for exact
// lookups.
func gridIndex(grid []float64) map[float64]int {
	index := make(map[float64]int, len(grid))
	for i, x := range grid {
		index[x] = i
	}
	return index
}
