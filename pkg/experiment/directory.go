package experiment

import (
	"io"
	"os"
	"path"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/intelsdi-x/gauss/pkg/conf"
)

// CreateExperimentDir creates unique directory for experiment logs and
// results and makes it the working directory of the process.
func CreateExperimentDir(session Session) (experimentDirectory string, logFile *os.File, err error) {
	experimentDirectory = path.Join(os.TempDir(), conf.AppName(), session.ExperimentID)
	err = os.MkdirAll(experimentDirectory, 0777)
	if err != nil {
		return "", nil, errors.Wrapf(err, "cannot create experiment directory %q", experimentDirectory)
	}
	err = os.Chdir(experimentDirectory)
	if err != nil {
		return "", nil, errors.Wrapf(err, "cannot chdir to experiment directory %q", experimentDirectory)
	}

	masterLogFilename := path.Join(experimentDirectory, "master.log")
	logFile, err = os.OpenFile(masterLogFilename, os.O_WRONLY|os.O_CREATE, 0755)
	if err != nil {
		return "", nil, errors.Wrapf(err, "could not open log file %q", masterLogFilename)
	}

	return experimentDirectory, logFile, nil
}

// SetupLogging directs log output to both the master log file and stderr.
func SetupLogging(logFile *os.File) {
	logrus.SetLevel(conf.LogLevel())
	logrus.SetFormatter(new(logrus.TextFormatter))
	logrus.SetOutput(io.MultiWriter(logFile, os.Stderr))
}
