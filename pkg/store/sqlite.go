package store

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"github.com/intelsdi-x/gauss/pkg/fit"
)

// SQLiteStore persists results in a single SQLite database file: one
// wide table per dataset with an x column followed by y columns, plus
// the selections and test_results tables.
type SQLiteStore struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

// NewSQLiteStore returns a store backed by the database file at path.
// The file is created on Init when it does not exist yet.
func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

// Init opens the database file and creates missing tables.
func (s *SQLiteStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return errors.New("sqlite path is required")
	}
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return errors.Wrapf(err, "could not open results database %q", s.path)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return errors.Wrapf(err, "could not connect to results database %q", s.path)
	}
	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return errors.Wrap(err, "could not create results tables")
	}

	s.db = db
	return nil
}

// SaveTrainingData replaces the training_data table contents.
func (s *SQLiteStore) SaveTrainingData(ctx context.Context, training []fit.Series) error {
	return s.saveSeries(ctx, "training_data", training)
}

// GetTrainingData reads the training_data table ordered by x.
func (s *SQLiteStore) GetTrainingData(ctx context.Context) ([]fit.Series, error) {
	return s.getSeries(ctx, "training_data")
}

// SaveIdealFunctions replaces the ideal_functions table contents.
func (s *SQLiteStore) SaveIdealFunctions(ctx context.Context, candidates []fit.Series) error {
	return s.saveSeries(ctx, "ideal_functions", candidates)
}

// GetIdealFunctions reads the ideal_functions table ordered by x.
func (s *SQLiteStore) GetIdealFunctions(ctx context.Context) ([]fit.Series, error) {
	return s.getSeries(ctx, "ideal_functions")
}

// SaveSelections replaces the selections table contents.
func (s *SQLiteStore) SaveSelections(ctx context.Context, selections []fit.Selection) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "could not begin transaction for selections")
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM selections`); err != nil {
		return errors.Wrap(err, "could not clear selections")
	}
	for _, selection := range selections {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO selections (training_idx, candidate_idx, sum_squared_deviation, max_absolute_deviation)
			VALUES (?, ?, ?, ?)
		`, selection.TrainingIndex, selection.CandidateIndex,
			selection.SumSquaredDeviation, selection.MaxAbsoluteDeviation)
		if err != nil {
			return errors.Wrapf(err, "could not insert selection for training series %d", selection.TrainingIndex)
		}
	}
	return errors.Wrap(tx.Commit(), "could not commit selections")
}

// GetSelections reads the selections table ordered by training index.
func (s *SQLiteStore) GetSelections(ctx context.Context) ([]fit.Selection, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT training_idx, candidate_idx, sum_squared_deviation, max_absolute_deviation
		FROM selections ORDER BY training_idx
	`)
	if err != nil {
		return nil, errors.Wrap(err, "could not read selections")
	}
	defer rows.Close()

	var selections []fit.Selection
	for rows.Next() {
		var selection fit.Selection
		err := rows.Scan(&selection.TrainingIndex, &selection.CandidateIndex,
			&selection.SumSquaredDeviation, &selection.MaxAbsoluteDeviation)
		if err != nil {
			return nil, errors.Wrap(err, "could not scan selection")
		}
		selections = append(selections, selection)
	}
	return selections, errors.Wrap(rows.Err(), "could not read selections")
}

// SaveMappedPoints replaces the test_results table contents. Points are
// stored in mapping order.
func (s *SQLiteStore) SaveMappedPoints(ctx context.Context, points []fit.MappedPoint) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "could not begin transaction for test results")
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM test_results`); err != nil {
		return errors.Wrap(err, "could not clear test results")
	}
	for _, point := range points {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO test_results (x, y, delta_y, ideal_func_number)
			VALUES (?, ?, ?, ?)
		`, point.X, point.Y, point.Deviation, point.CandidateIndex)
		if err != nil {
			return errors.Wrapf(err, "could not insert test result for x %v", point.X)
		}
	}
	return errors.Wrap(tx.Commit(), "could not commit test results")
}

// GetMappedPoints reads the test_results table in mapping order.
func (s *SQLiteStore) GetMappedPoints(ctx context.Context) ([]fit.MappedPoint, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT x, y, delta_y, ideal_func_number FROM test_results ORDER BY id
	`)
	if err != nil {
		return nil, errors.Wrap(err, "could not read test results")
	}
	defer rows.Close()

	var points []fit.MappedPoint
	for rows.Next() {
		var point fit.MappedPoint
		err := rows.Scan(&point.X, &point.Y, &point.Deviation, &point.CandidateIndex)
		if err != nil {
			return nil, errors.Wrap(err, "could not scan test result")
		}
		points = append(points, point)
	}
	return points, errors.Wrap(rows.Err(), "could not read test results")
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, errors.New("store is not initialized")
	}
	return s.db, nil
}

// saveSeries rebuilds a wide series table so its width always matches
// the saved series count.
func (s *SQLiteStore) saveSeries(ctx context.Context, table string, series []fit.Series) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}
	if err := checkSharedGrid(series); err != nil {
		return errors.Wrapf(err, "could not save %s", table)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrapf(err, "could not begin transaction for %s", table)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", table)); err != nil {
		return errors.Wrapf(err, "could not reset table %s", table)
	}
	if _, err := tx.ExecContext(ctx, seriesTableDDL(table, len(series))); err != nil {
		return errors.Wrapf(err, "could not create table %s", table)
	}

	columns := []string{"x"}
	placeholders := []string{"?"}
	for i := range series {
		columns = append(columns, fmt.Sprintf("y%d", i+1))
		placeholders = append(placeholders, "?")
	}
	statement, err := tx.PrepareContext(ctx, fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(columns, ", "), strings.Join(placeholders, ", ")))
	if err != nil {
		return errors.Wrapf(err, "could not prepare insert into %s", table)
	}
	defer statement.Close()

	grid := series[0].X
	for row := range grid {
		args := make([]interface{}, 0, len(series)+1)
		args = append(args, grid[row])
		for _, oneSeries := range series {
			args = append(args, floatOrNull(oneSeries.Y[row]))
		}
		if _, err := statement.ExecContext(ctx, args...); err != nil {
			return errors.Wrapf(err, "could not insert into %s", table)
		}
	}
	return errors.Wrapf(tx.Commit(), "could not commit %s", table)
}

// getSeries reads a wide series table back into one Series per y
// column, however many columns the table carries.
func (s *SQLiteStore) getSeries(ctx context.Context, table string) ([]fit.Series, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s ORDER BY x", table))
	if err != nil {
		return nil, errors.Wrapf(err, "could not read table %s", table)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, errors.Wrapf(err, "could not inspect table %s", table)
	}
	// Layout is id, x, y1..yN.
	seriesCount := len(columns) - 2
	if seriesCount < 1 {
		return nil, errors.Errorf("table %s carries no series columns", table)
	}

	var x []float64
	ys := make([][]float64, seriesCount)
	for rows.Next() {
		values := make([]sql.NullFloat64, len(columns))
		dest := make([]interface{}, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, errors.Wrapf(err, "could not scan row of table %s", table)
		}
		x = append(x, values[1].Float64)
		for i := 0; i < seriesCount; i++ {
			ys[i] = append(ys[i], nullToFloat(values[i+2]))
		}
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "could not read table %s", table)
	}
	if len(x) == 0 {
		return nil, nil
	}

	series := make([]fit.Series, seriesCount)
	for i := range series {
		series[i] = fit.Series{Name: fmt.Sprintf("y%d", i+1), X: x, Y: ys[i]}
	}
	return series, nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	statements := []string{
		seriesTableDDL("training_data", fit.DefaultTrainingCount),
		seriesTableDDL("ideal_functions", fit.DefaultCandidateCount),
		`CREATE TABLE IF NOT EXISTS selections (
			training_idx INTEGER PRIMARY KEY,
			candidate_idx INTEGER NOT NULL,
			sum_squared_deviation REAL NOT NULL,
			max_absolute_deviation REAL NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS test_results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			x REAL NOT NULL,
			y REAL NOT NULL,
			delta_y REAL NOT NULL,
			ideal_func_number INTEGER NOT NULL
		)`,
	}
	for _, statement := range statements {
		if _, err := db.ExecContext(ctx, statement); err != nil {
			return err
		}
	}
	return nil
}

// seriesTableDDL lays a series set out as an x column followed by one
// y column per series. The y columns admit NULL because SQLite has no
// NaN representation of its own.
func seriesTableDDL(table string, seriesCount int) string {
	columns := []string{"id INTEGER PRIMARY KEY AUTOINCREMENT", "x REAL NOT NULL"}
	for i := 1; i <= seriesCount; i++ {
		columns = append(columns, fmt.Sprintf("y%d REAL", i))
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", table, strings.Join(columns, ", "))
}

// floatOrNull maps NaN to NULL on the way in; nullToFloat maps NULL
// back to NaN on the way out.
func floatOrNull(value float64) interface{} {
	if math.IsNaN(value) {
		return nil
	}
	return value
}

func nullToFloat(value sql.NullFloat64) float64 {
	if !value.Valid {
		return math.NaN()
	}
	return value.Float64
}
