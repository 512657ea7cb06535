package mapping

import "github.com/intelsdi-x/gauss/pkg/conf"

var (
	trainingSetFlag = conf.NewStringFlag("training_set", "Path of the training data set (CSV with columns x;y1..y4).", "train.csv")
	idealSetFlag    = conf.NewStringFlag("ideal_set", "Path of the ideal function set (CSV with columns x;y1..y50).", "ideal.csv")
	testSetFlag     = conf.NewStringFlag("test_set", "Path of the test data set (CSV with columns x;y).", "test.csv")
	parallelismFlag = conf.NewIntFlag("parallelism", "Number of workers used for selection and mapping (0 means one worker per CPU).", 0)
)
