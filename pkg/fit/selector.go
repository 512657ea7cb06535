package fit

import (
	"math"

	"golang.org/x/sync/errgroup"
)

// Selection describes the ideal function chosen for one training series
// together with the goodness of fit observed for the winning pair. It is a
// plain value: created once by the Selector, then only read.
type Selection struct {
	TrainingIndex        int // 1-based index of the training series
	CandidateIndex       int // 1-based index of the winning ideal function
	SumSquaredDeviation  float64
	MaxAbsoluteDeviation float64
}

// Selector picks, for every training series, the ideal function minimizing
// the sum of squared deviations on the shared x grid.
type Selector struct {
	config Config
}

// NewSelector returns a Selector bounded by the given configuration.
func NewSelector(config Config) Selector {
	if config.Parallelism < 1 {
		config.Parallelism = 1
	}
	return Selector{config: config}
}

// Select scans all candidates for each training series and returns one
// Selection per training series, ordered by training index. Ties on the
// deviation sum break towards the lowest candidate index. A candidate whose
// deviation sum is NaN can never win; a training series for which every
// candidate sum is NaN yields an InvalidInputError.
func (s Selector) Select(training, candidates []Series) ([]Selection, error) {
	if err := s.validateInput(training, candidates); err != nil {
		return nil, err
	}

	selections := make([]Selection, len(training))
	workers := s.config.Parallelism
	if workers > len(training) {
		workers = len(training)
	}

	var group errgroup.Group
	for worker := 0; worker < workers; worker++ {
		worker := worker
		group.Go(func() error {
			// Each slot of selections is owned by exactly one worker.
			for t := worker; t < len(training); t += workers {
				selection, err := selectOne(training[t], t+1, candidates)
				if err != nil {
					return err
				}
				selections[t] = selection
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return selections, nil
}

func (s Selector) validateInput(training, candidates []Series) error {
	if len(training) == 0 || len(training) > s.config.TrainingCount {
		return invalidInputf("expected between 1 and %d training series, got %d", s.config.TrainingCount, len(training))
	}
	if len(candidates) == 0 || len(candidates) > s.config.CandidateCount {
		return invalidInputf("expected between 1 and %d candidate series, got %d", s.config.CandidateCount, len(candidates))
	}

	grid := training[0].X
	if err := checkSeries("training", training, grid); err != nil {
		return err
	}
	return checkSeries("candidate", candidates, grid)
}

// selectOne performs the candidate scan for a single training series.
func selectOne(training Series, trainingIndex int, candidates []Series) (Selection, error) {
	best := -1
	bestSum := 0.0
	for c, candidate := range candidates {
		sum := sumSquaredDeviation(training.Y, candidate.Y)
		if math.IsNaN(sum) {
			continue
		}
		if best == -1 || sum < bestSum {
			best = c
			bestSum = sum
		}
	}
	if best == -1 {
		return Selection{}, invalidInputf("no candidate yields a comparable deviation sum for training series %d", trainingIndex)
	}

	return Selection{
		TrainingIndex:        trainingIndex,
		CandidateIndex:       best + 1,
		SumSquaredDeviation:  bestSum,
		MaxAbsoluteDeviation: maxAbsoluteDeviation(training.Y, candidates[best].Y),
	}, nil
}

// sumSquaredDeviation is the least squares measure between two y vectors
// sampled on the same grid.
func sumSquaredDeviation(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// maxAbsoluteDeviation is the largest pointwise distance between two y
// vectors sampled on the same grid.
func maxAbsoluteDeviation(a, b []float64) float64 {
	var max float64
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > max {
			max = d
		}
	}
	return max
}
