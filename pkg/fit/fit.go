// Package fit chooses, for each training series, the ideal function that
// minimizes the sum of squared deviations over a shared x grid, and then maps
// test points onto the chosen functions using the sqrt(2) deviation criterion.
// Both operations are pure transformations over in-memory series; persistence
// and rendering live elsewhere.
package fit

import "runtime"

const (
	// DefaultTrainingCount is the number of training series in a full dataset.
	DefaultTrainingCount = 4
	// DefaultCandidateCount is the number of ideal functions in a full library.
	DefaultCandidateCount = 50
)

// Config bounds the series counts accepted by Selector and Mapper and sets
// the number of workers used for independent per-series and per-point work.
type Config struct {
	TrainingCount  int
	CandidateCount int
	Parallelism    int
}

// DefaultConfig returns the configuration matching the canonical dataset:
// four training series scanned against a library of fifty ideal functions.
func DefaultConfig() Config {
	return Config{
		TrainingCount:  DefaultTrainingCount,
		CandidateCount: DefaultCandidateCount,
		Parallelism:    runtime.NumCPU(),
	}
}
