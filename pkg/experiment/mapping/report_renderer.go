package mapping

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"

	"github.com/intelsdi-x/gauss/pkg/fit"
	"github.com/intelsdi-x/gauss/pkg/store"
	"github.com/intelsdi-x/gauss/pkg/visualization"
)

// noValue marks summary cells which cannot be computed without mapped points.
const noValue = "-"

var (
	selectionHeaders = []string{"Training", "Ideal", "Sum of squared deviations", "Max deviation", "Mapping threshold"}
	mappingHeaders   = []string{"Ideal", "Mapped points", "Deviation (mean +/- stddev)", "Min deviation", "Max deviation"}
)

// Draw renders the stored outcome of an experiment run on stdout: the
// selected ideal functions and a per-function summary of the mapped test
// points. It creates model of data in a form of table and asks view to draw it.
func Draw(ctx context.Context, resultsStore store.Store, experimentID string) error {
	// Get data from the results store.
	selections, err := resultsStore.GetSelections(ctx)
	if err != nil {
		return err
	}
	mapped, err := resultsStore.GetMappedPoints(ctx)
	if err != nil {
		return err
	}

	if experimentID != "" {
		visualization.PrintExperimentMetadata(visualization.NewExperimentMetadata(experimentID))
	}

	// View selection table.
	err = visualization.DrawTable(visualization.NewTable(selectionHeaders, selectionData(selections)))
	if err != nil {
		return err
	}

	// View mapping summary table.
	summary, err := mappingSummaryData(selections, mapped)
	if err != nil {
		return err
	}
	err = visualization.DrawTable(visualization.NewTable(mappingHeaders, summary))
	if err != nil {
		return err
	}

	fmt.Printf("Mapped test points: %d\n", len(mapped))
	return nil
}

// selectionData prepares one row per training series with the chosen ideal
// function and the deviation bound test points must stay within.
func selectionData(selections []fit.Selection) [][]string {
	data := [][]string{}
	for _, selection := range selections {
		data = append(data, []string{
			fmt.Sprintf("y%d", selection.TrainingIndex),
			fmt.Sprintf("y%d", selection.CandidateIndex),
			fmt.Sprintf("%f", selection.SumSquaredDeviation),
			fmt.Sprintf("%f", selection.MaxAbsoluteDeviation),
			fmt.Sprintf("%f", selection.MaxAbsoluteDeviation*math.Sqrt2),
		})
	}
	return data
}

// mappingSummaryData aggregates mapped point deviations per selected ideal
// function, in selection order.
func mappingSummaryData(selections []fit.Selection, mapped []fit.MappedPoint) ([][]string, error) {
	deviations := map[int][]float64{}
	for _, point := range mapped {
		deviations[point.CandidateIndex] = append(deviations[point.CandidateIndex], point.Deviation)
	}

	data := [][]string{}
	for _, selection := range selections {
		values := deviations[selection.CandidateIndex]
		row := []string{fmt.Sprintf("y%d", selection.CandidateIndex), strconv.Itoa(len(values))}
		if len(values) == 0 {
			data = append(data, append(row, noValue, noValue, noValue))
			continue
		}

		mean, err := stats.Mean(values)
		if err != nil {
			return nil, errors.Wrap(err, "mean computation failed")
		}
		stdev, err := stats.StandardDeviation(values)
		if err != nil {
			return nil, errors.Wrap(err, "standard deviation computation failed")
		}
		min, err := stats.Min(values)
		if err != nil {
			return nil, errors.Wrap(err, "minimum computation failed")
		}
		max, err := stats.Max(values)
		if err != nil {
			return nil, errors.Wrap(err, "maximum computation failed")
		}

		data = append(data, append(row,
			fmt.Sprintf("%f (+/- %f)", mean, stdev),
			fmt.Sprintf("%f", min),
			fmt.Sprintf("%f", max)))
	}
	return data, nil
}
