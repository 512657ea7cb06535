package main

import (
	"context"

	"github.com/intelsdi-x/gauss/pkg/conf"
	"github.com/intelsdi-x/gauss/pkg/experiment/mapping"
	"github.com/intelsdi-x/gauss/pkg/store"
	"github.com/intelsdi-x/gauss/pkg/utils/errutil"
)

var experimentIDFlag = conf.NewStringFlag("experiment_id", "Experiment ID printed in the report header.", "")

// Run via: go run cmds/report/main.go -results_db_path=/tmp/ideal-function-mapping/<ID>/gauss.db
func main() {
	conf.SetAppName("gauss-report")
	conf.SetHelp(`Report viewer renders the stored outcome of an ideal function mapping experiment run.`)
	errutil.Check(conf.ParseFlags())

	ctx := context.Background()

	resultsStore, err := store.NewDefault()
	errutil.Check(err)
	errutil.Check(resultsStore.Init(ctx))

	errutil.Check(mapping.Draw(ctx, resultsStore, experimentIDFlag.Value()))
	errutil.Check(store.CloseIfSupported(resultsStore))
}
