// Package store persists the inputs and outcomes of an ideal function
// mapping run so they can be inspected after the experiment finished.
// SQLite is the durable backend; the in memory implementation serves
// tests and dry runs.
package store

import (
	"context"

	"github.com/pkg/errors"

	"github.com/intelsdi-x/gauss/pkg/fit"
)

// Store defines persistence operations for one experiment run.
// Save operations replace whatever a previous run left behind.
type Store interface {
	Init(ctx context.Context) error
	SaveTrainingData(ctx context.Context, training []fit.Series) error
	GetTrainingData(ctx context.Context) ([]fit.Series, error)
	SaveIdealFunctions(ctx context.Context, candidates []fit.Series) error
	GetIdealFunctions(ctx context.Context) ([]fit.Series, error)
	SaveSelections(ctx context.Context, selections []fit.Selection) error
	GetSelections(ctx context.Context) ([]fit.Selection, error)
	SaveMappedPoints(ctx context.Context, points []fit.MappedPoint) error
	GetMappedPoints(ctx context.Context) ([]fit.MappedPoint, error)
}

// checkSharedGrid rejects series sets which cannot be laid out as one
// table with a common x column.
func checkSharedGrid(series []fit.Series) error {
	if len(series) == 0 {
		return errors.New("no series to save")
	}
	for _, s := range series {
		if err := s.Validate(); err != nil {
			return errors.Wrapf(err, "series %q cannot be saved", s.Name)
		}
		if !fit.SameGrid(series[0], s) {
			return errors.Errorf("series %q is not on the shared grid", s.Name)
		}
	}
	return nil
}
