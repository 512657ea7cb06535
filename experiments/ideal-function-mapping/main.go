package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/intelsdi-x/gauss/pkg/conf"
	"github.com/intelsdi-x/gauss/pkg/experiment"
	"github.com/intelsdi-x/gauss/pkg/experiment/mapping"
	"github.com/intelsdi-x/gauss/pkg/metadata"
	"github.com/intelsdi-x/gauss/pkg/store"
	"github.com/intelsdi-x/gauss/pkg/utils/errutil"
)

func main() {
	// Setup conf.
	conf.SetAppName("ideal-function-mapping")
	conf.SetHelp(`Ideal function mapping experiment chooses, for each of the four training series, the ideal function with the least sum of squared deviations and maps the test points onto the chosen functions using the sqrt(2) deviation criterion.`)

	// Parse CLI.
	experiment.Configure()

	session, err := experiment.NewSession()
	errutil.Check(err)

	logrus.Info("Starting experiment ", conf.AppName(), " with experiment ID ", session.ExperimentID)
	fmt.Println(session.ExperimentID)

	// Experiment directory with master log; results land next to it.
	_, logFile, err := experiment.CreateExperimentDir(session)
	errutil.Check(err)
	experiment.SetupLogging(logFile)

	ctx := context.Background()

	resultsStore, err := store.NewDefault()
	errutil.Check(err)
	errutil.Check(resultsStore.Init(ctx))

	metadataRecorder, err := metadata.NewDefault(session.ExperimentID)
	errutil.Check(err)

	// Run experiment.
	err = mapping.NewExperiment(session, mapping.DefaultConfig(), resultsStore, metadataRecorder).Run(ctx)
	errutil.Check(err)

	// Render report of the run.
	errutil.Check(mapping.Draw(ctx, resultsStore, session.ExperimentID))
	errutil.Check(store.CloseIfSupported(resultsStore))
}
