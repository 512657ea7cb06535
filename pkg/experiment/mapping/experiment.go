// Package mapping runs the ideal function mapping experiment: it loads the
// training, ideal function and test data sets, selects the best fitting
// ideal function for every training series, maps the test points onto the
// selected functions and persists the outcome together with run metadata.
package mapping

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/cheggaaa/pb.v1"

	"github.com/intelsdi-x/gauss/pkg/conf"
	"github.com/intelsdi-x/gauss/pkg/dataset"
	"github.com/intelsdi-x/gauss/pkg/experiment"
	"github.com/intelsdi-x/gauss/pkg/fit"
	"github.com/intelsdi-x/gauss/pkg/metadata"
	"github.com/intelsdi-x/gauss/pkg/store"
)

// Config holds the experiment inputs.
type Config struct {
	TrainingSetPath string
	IdealSetPath    string
	TestSetPath     string
	// Parallelism is the number of selection and mapping workers; zero
	// selects one worker per CPU.
	Parallelism int
}

// DefaultConfig returns experiment configuration based on flags.
func DefaultConfig() Config {
	return Config{
		TrainingSetPath: trainingSetFlag.Value(),
		IdealSetPath:    idealSetFlag.Value(),
		TestSetPath:     testSetFlag.Value(),
		Parallelism:     parallelismFlag.Value(),
	}
}

// Experiment wires dataset loading, ideal function selection, test point
// mapping, result persistence and metadata recording into a single run.
type Experiment struct {
	session  experiment.Session
	config   Config
	store    store.Store
	metadata metadata.Metadata

	training   []fit.Series
	candidates []fit.Series
	testPoints []fit.Point
	selections []fit.Selection
	mapped     []fit.MappedPoint
}

// NewExperiment returns an experiment operating on a ready to use results
// store and metadata recorder.
func NewExperiment(session experiment.Session, config Config, resultsStore store.Store, metadataRecorder metadata.Metadata) *Experiment {
	return &Experiment{
		session:  session,
		config:   config,
		store:    resultsStore,
		metadata: metadataRecorder,
	}
}

// Run executes all experiment phases in order. The run stops on the first
// failing phase and the returned error names it.
func (e *Experiment) Run(ctx context.Context) error {
	phases := []struct {
		name string
		run  func() error
	}{
		{"loading data sets", e.loadDatasets},
		{"selecting ideal functions", e.selectIdealFunctions},
		{"mapping test points", e.mapTestPoints},
		{"saving results", func() error { return e.saveResults(ctx) }},
		{"recording metadata", e.recordMetadata},
	}

	// With logging reduced to errors the progress bar is the only sign of life.
	var bar *pb.ProgressBar
	if conf.LogLevel() == logrus.ErrorLevel {
		bar = pb.StartNew(len(phases))
		bar.ShowCounters = false
		bar.ShowTimeLeft = true
		defer bar.Finish()
	}

	for i, phase := range phases {
		if bar != nil {
			bar.Prefix(fmt.Sprintf("[%02d / %02d] %s ", i+1, len(phases), phase.name))
			// Changes to progress bar should be applied immediately
			bar.AlwaysUpdate = true
			bar.Update()
			bar.AlwaysUpdate = false
		}

		logrus.Infof("Starting phase %q", phase.name)
		if err := phase.run(); err != nil {
			return errors.Wrapf(err, "phase %q failed", phase.name)
		}

		if bar != nil {
			bar.Add(1)
		}
	}

	return nil
}

func (e *Experiment) loadDatasets() error {
	training, err := dataset.LoadTrainingData(e.config.TrainingSetPath)
	if err != nil {
		return err
	}
	candidates, err := dataset.LoadIdealFunctions(e.config.IdealSetPath)
	if err != nil {
		return err
	}
	testPoints, err := dataset.LoadTestPoints(e.config.TestSetPath)
	if err != nil {
		return err
	}

	e.training = training
	e.candidates = candidates
	e.testPoints = testPoints
	logrus.Debugf("Loaded %d training series, %d ideal functions and %d test points",
		len(training), len(candidates), len(testPoints))
	return nil
}

func (e *Experiment) selectIdealFunctions() error {
	selections, err := fit.NewSelector(e.fitConfig()).Select(e.training, e.candidates)
	if err != nil {
		return err
	}
	e.selections = selections

	for _, selection := range selections {
		logrus.Infof("Training series y%d is fitted best by ideal function y%d (sum of squared deviations %g)",
			selection.TrainingIndex, selection.CandidateIndex, selection.SumSquaredDeviation)
	}
	return nil
}

func (e *Experiment) mapTestPoints() error {
	mapped, err := fit.NewMapper(e.fitConfig()).Map(e.testPoints, e.selections, e.candidates)
	if err != nil {
		return err
	}
	e.mapped = mapped

	logrus.Infof("Mapped %d of %d test points", len(mapped), len(e.testPoints))
	return nil
}

func (e *Experiment) saveResults(ctx context.Context) error {
	if err := e.store.SaveTrainingData(ctx, e.training); err != nil {
		return err
	}
	if err := e.store.SaveIdealFunctions(ctx, e.candidates); err != nil {
		return err
	}
	if err := e.store.SaveSelections(ctx, e.selections); err != nil {
		return err
	}
	return e.store.SaveMappedPoints(ctx, e.mapped)
}

func (e *Experiment) recordMetadata() error {
	err := metadata.RecordRuntimeEnv(e.metadata, e.session.Started)
	if err != nil {
		return err
	}
	err = e.metadata.RecordMap(e.selectionMetadata(), metadata.TypeSelection)
	if err != nil {
		return err
	}
	return e.metadata.RecordMap(e.mappingMetadata(), metadata.TypeMapping)
}

func (e *Experiment) fitConfig() fit.Config {
	config := fit.DefaultConfig()
	if e.config.Parallelism > 0 {
		config.Parallelism = e.config.Parallelism
	}
	return config
}

func (e *Experiment) selectionMetadata() map[string]string {
	selectionMap := map[string]string{}
	for _, selection := range e.selections {
		key := fmt.Sprintf("y%d", selection.TrainingIndex)
		selectionMap[key+"_ideal"] = fmt.Sprintf("y%d", selection.CandidateIndex)
		selectionMap[key+"_sum_squared_deviation"] = formatFloat(selection.SumSquaredDeviation)
		selectionMap[key+"_max_absolute_deviation"] = formatFloat(selection.MaxAbsoluteDeviation)
	}
	return selectionMap
}

func (e *Experiment) mappingMetadata() map[string]string {
	return map[string]string{
		"test_points":    strconv.Itoa(len(e.testPoints)),
		"mapped_points":  strconv.Itoa(len(e.mapped)),
		"dropped_points": strconv.Itoa(len(e.testPoints) - len(e.mapped)),
	}
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}
