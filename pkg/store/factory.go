package store

import (
	"github.com/pkg/errors"

	"github.com/intelsdi-x/gauss/pkg/conf"
)

// NewDefault builds the store selected by the results_db flag.
func NewDefault() (Store, error) {
	return New(conf.ResultsDBBackend.Value(), conf.ResultsDBPath.Value())
}

// New builds a store for the given backend name.
func New(backend, sqlitePath string) (Store, error) {
	switch backend {
	case "", "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		return NewSQLiteStore(sqlitePath), nil
	default:
		return nil, errors.Errorf("unsupported results backend %q", backend)
	}
}

// CloseIfSupported closes stores which hold external resources.
func CloseIfSupported(store Store) error {
	closer, ok := store.(interface{ Close() error })
	if !ok {
		return nil
	}
	return closer.Close()
}
