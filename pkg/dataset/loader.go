// Package dataset loads the semicolon separated CSV inputs of the ideal
// function mapping experiment: the training set, the ideal function
// library and the test set.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/intelsdi-x/gauss/pkg/fit"
	errcollection "github.com/intelsdi-x/gauss/pkg/utils/err_collection"
)

// LoadTrainingData reads the training CSV.
// The file must carry an "x" column followed by columns y1..y4.
func LoadTrainingData(path string) ([]fit.Series, error) {
	return loadSeries(path, fit.DefaultTrainingCount)
}

// LoadIdealFunctions reads the ideal function library CSV.
// The file must carry an "x" column followed by columns y1..y50.
func LoadIdealFunctions(path string) ([]fit.Series, error) {
	return loadSeries(path, fit.DefaultCandidateCount)
}

// LoadTestPoints reads the test CSV with columns "x" and "y".
// Rows are returned in file order; test points are not required to be
// sorted by x.
func LoadTestPoints(path string) ([]fit.Point, error) {
	header, rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	if err := validateHeader(path, header, []string{"x", "y"}); err != nil {
		return nil, err
	}

	points := make([]fit.Point, len(rows))
	for i, row := range rows {
		points[i] = fit.Point{X: row[0], Y: row[1]}
	}
	return points, nil
}

// loadSeries reads an "x;y1;...;yN" CSV into one Series per y column.
// All returned series share the x column as their grid.
func loadSeries(path string, seriesCount int) ([]fit.Series, error) {
	expected := make([]string, 0, seriesCount+1)
	expected = append(expected, "x")
	for i := 1; i <= seriesCount; i++ {
		expected = append(expected, fmt.Sprintf("y%d", i))
	}

	header, rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	if err := validateHeader(path, header, expected); err != nil {
		return nil, err
	}

	x := make([]float64, len(rows))
	columns := make([][]float64, seriesCount)
	for i := range columns {
		columns[i] = make([]float64, len(rows))
	}
	for i, row := range rows {
		x[i] = row[0]
		for j := 0; j < seriesCount; j++ {
			columns[j][i] = row[j+1]
		}
	}

	series := make([]fit.Series, seriesCount)
	for i := range series {
		series[i] = fit.Series{Name: expected[i+1], X: x, Y: columns[i]}
	}
	return series, nil
}

// readCSV parses a semicolon separated file into a normalized header and
// float rows. Cells which are empty or not numeric make the load fail;
// how NaN values behave is decided later by the fit package.
func readCSV(path string) ([]string, [][]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "could not open dataset %q", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = ';'
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, errors.Wrapf(err, "could not parse dataset %q", path)
	}
	if len(records) == 0 {
		return nil, nil, errors.Errorf("dataset %q is empty", path)
	}

	header := make([]string, len(records[0]))
	for i, cell := range records[0] {
		header[i] = strings.ToLower(strings.TrimSpace(cell))
	}

	rows := make([][]float64, 0, len(records)-1)
	for rowNumber, record := range records[1:] {
		row := make([]float64, len(record))
		for column, cell := range record {
			value, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, nil, errors.Wrapf(err,
					"could not parse %q column of dataset %q at data row %d",
					header[column], path, rowNumber+1)
			}
			row[column] = value
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, nil, errors.Errorf("dataset %q contains no data rows", path)
	}
	return header, rows, nil
}

// validateHeader gathers every header violation before failing so a
// malformed file is reported in one pass.
func validateHeader(path string, header, expected []string) error {
	var errCollection errcollection.ErrorCollection
	if len(header) != len(expected) {
		errCollection.Add(errors.Errorf(
			"expected %d columns but found %d", len(expected), len(header)))
	}
	for i, name := range expected {
		if i >= len(header) {
			break
		}
		if header[i] != name {
			errCollection.Add(errors.Errorf(
				"expected column %d to be %q but found %q", i+1, name, header[i]))
		}
	}
	if err := errCollection.GetErrIfAny(); err != nil {
		return errors.Wrapf(err, "invalid header in dataset %q", path)
	}
	return nil
}
