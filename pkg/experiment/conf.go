package experiment

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/intelsdi-x/gauss/pkg/conf"
	"github.com/intelsdi-x/gauss/pkg/metadata"
	"github.com/intelsdi-x/gauss/pkg/utils/errutil"
)

// ExUsage is the exit code of a binary invoked with a bad command line, as
// in BSD sysexits.
const ExUsage = 64

var (
	// DumpConfigFlag name includes dash to excluded it from dumping.
	dumpConfigFlag = conf.NewBoolFlag("config-dump", "Dump configuration as environment script.", false)

	// DumpConfigExperimentIDFlag name includes dash to excluded it from dumping.
	dumpConfigExperimentIDFlag = conf.NewStringFlag("config-dump-experiment-id", "Dump configuration based on experiment ID.", "")
)

// Configure handles configuration parsing, generation and restoration based on config-* flags.
// Note: exits if configuration generation was requested.
// This function must reside in experiment package because depends on metadata access.
func Configure() {
	err := conf.ParseFlags()
	if err != nil {
		logrus.Errorf("Cannot parse flags: %q", err.Error())
		os.Exit(ExUsage)
	}
	logrus.SetLevel(conf.LogLevel())

	if dumpConfigFlag.Value() {
		previousExperimentID := dumpConfigExperimentIDFlag.Value()
		if previousExperimentID != "" {
			meta, err := metadata.NewDefault(previousExperimentID)
			errutil.Check(err)
			flags, err := meta.GetByKind(metadata.TypeFlags)
			errutil.Check(err)
			fmt.Println(conf.DumpConfigMap(flags))
		} else {
			fmt.Println(conf.DumpConfig())
		}
		os.Exit(0)
	}
}
