package fit

import (
	"math"

	"golang.org/x/sync/errgroup"
)

// MappedPoint records a test observation explained by one of the selected
// ideal functions. Deviation is the absolute deviation from the matched
// function at X. The value is terminal: never mutated after creation.
type MappedPoint struct {
	X              float64
	Y              float64
	Deviation      float64
	CandidateIndex int // 1-based index of the matched ideal function
}

// Mapper classifies test points against the ideal functions chosen by a
// Selector using the sqrt(2) deviation criterion.
type Mapper struct {
	config Config
}

// NewMapper returns a Mapper bounded by the given configuration.
func NewMapper(config Config) Mapper {
	if config.Parallelism < 1 {
		config.Parallelism = 1
	}
	return Mapper{config: config}
}

// Map checks every test point against the selected ideal functions. A point
// is explained by a selection when its absolute deviation at x stays within
// the selection's maximum training deviation scaled by sqrt(2), boundary
// included. The closest accepting selection wins; on equal deviations the
// earliest selection does. Points explained by no selection produce no
// output. The returned slice preserves test input order.
func (m Mapper) Map(test []Point, selections []Selection, candidates []Series) ([]MappedPoint, error) {
	if err := m.validateInput(selections, candidates); err != nil {
		return nil, err
	}
	if len(test) == 0 {
		return []MappedPoint{}, nil
	}

	index := gridIndex(candidates[0].X)

	matches := make([]*MappedPoint, len(test))
	workers := m.config.Parallelism
	if workers > len(test) {
		workers = len(test)
	}

	var group errgroup.Group
	for worker := 0; worker < workers; worker++ {
		worker := worker
		group.Go(func() error {
			// Each slot of matches is owned by exactly one worker, so input
			// order can be restored below no matter how work interleaves.
			for i := worker; i < len(test); i += workers {
				match, err := mapOne(test[i], selections, candidates, index)
				if err != nil {
					return err
				}
				matches[i] = match
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	mapped := make([]MappedPoint, 0, len(test))
	for _, match := range matches {
		if match != nil {
			mapped = append(mapped, *match)
		}
	}
	return mapped, nil
}

func (m Mapper) validateInput(selections []Selection, candidates []Series) error {
	if len(selections) != m.config.TrainingCount {
		return invalidInputf("expected exactly %d selections, got %d", m.config.TrainingCount, len(selections))
	}
	if len(candidates) == 0 || len(candidates) > m.config.CandidateCount {
		return invalidInputf("expected between 1 and %d candidate series, got %d", m.config.CandidateCount, len(candidates))
	}

	if err := checkSeries("candidate", candidates, candidates[0].X); err != nil {
		return err
	}

	for j, selection := range selections {
		if selection.CandidateIndex < 1 || selection.CandidateIndex > len(candidates) {
			return invalidInputf("selection %d references candidate %d outside 1..%d", j+1, selection.CandidateIndex, len(candidates))
		}
		if selection.MaxAbsoluteDeviation < 0 {
			return invalidInputf("selection %d carries a negative maximum deviation %v", j+1, selection.MaxAbsoluteDeviation)
		}
	}
	return nil
}

// mapOne classifies a single test point. A nil result means no selection
// explains the point.
func mapOne(point Point, selections []Selection, candidates []Series, index map[float64]int) (*MappedPoint, error) {
	pos, ok := index[point.X]
	if !ok {
		return nil, invalidInputf("test x %v is not present on the candidate grid", point.X)
	}

	best := -1
	bestDeviation := 0.0
	for j, selection := range selections {
		candidate := candidates[selection.CandidateIndex-1]
		deviation := math.Abs(point.Y - candidate.Y[pos])

		// Inclusive boundary; the negated form also rejects NaN deviations.
		if !(deviation <= selection.MaxAbsoluteDeviation*math.Sqrt2) {
			continue
		}
		if best == -1 || deviation < bestDeviation {
			best = j
			bestDeviation = deviation
		}
	}
	if best == -1 {
		return nil, nil
	}

	return &MappedPoint{
		X:              point.X,
		Y:              point.Y,
		Deviation:      bestDeviation,
		CandidateIndex: selections[best].CandidateIndex,
	}, nil
}
