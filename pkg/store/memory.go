package store

import (
	"context"
	"sync"

	"github.com/intelsdi-x/gauss/pkg/fit"
)

// MemoryStore keeps one run worth of results in process memory. It
// mirrors the SQLite semantics so tests and dry runs can swap it in.
type MemoryStore struct {
	mu       sync.RWMutex
	training []fit.Series
	ideal    []fit.Series
	selected []fit.Selection
	mapped   []fit.MappedPoint
}

// NewMemoryStore returns an empty in memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Init resets the store to its empty state.
func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.training = nil
	s.ideal = nil
	s.selected = nil
	s.mapped = nil
	return nil
}

func (s *MemoryStore) SaveTrainingData(_ context.Context, training []fit.Series) error {
	if err := checkSharedGrid(training); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.training = copySeries(training)
	return nil
}

func (s *MemoryStore) GetTrainingData(_ context.Context) ([]fit.Series, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return copySeries(s.training), nil
}

func (s *MemoryStore) SaveIdealFunctions(_ context.Context, candidates []fit.Series) error {
	if err := checkSharedGrid(candidates); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.ideal = copySeries(candidates)
	return nil
}

func (s *MemoryStore) GetIdealFunctions(_ context.Context) ([]fit.Series, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return copySeries(s.ideal), nil
}

func (s *MemoryStore) SaveSelections(_ context.Context, selections []fit.Selection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selected = append([]fit.Selection(nil), selections...)
	return nil
}

func (s *MemoryStore) GetSelections(_ context.Context) ([]fit.Selection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]fit.Selection(nil), s.selected...), nil
}

func (s *MemoryStore) SaveMappedPoints(_ context.Context, points []fit.MappedPoint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mapped = append([]fit.MappedPoint(nil), points...)
	return nil
}

func (s *MemoryStore) GetMappedPoints(_ context.Context) ([]fit.MappedPoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]fit.MappedPoint(nil), s.mapped...), nil
}

func copySeries(series []fit.Series) []fit.Series {
	if series == nil {
		return nil
	}
	copied := make([]fit.Series, len(series))
	for i, oneSeries := range series {
		copied[i] = fit.Series{
			Name: oneSeries.Name,
			X:    append([]float64(nil), oneSeries.X...),
			Y:    append([]float64(nil), oneSeries.Y...),
		}
	}
	return copied
}
