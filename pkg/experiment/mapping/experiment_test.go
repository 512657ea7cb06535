package mapping

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"
	"testing"

	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/mock"

	"github.com/intelsdi-x/gauss/pkg/experiment"
	"github.com/intelsdi-x/gauss/pkg/metadata"
	metadatamocks "github.com/intelsdi-x/gauss/pkg/metadata/mocks"
	"github.com/intelsdi-x/gauss/pkg/store"
	storemocks "github.com/intelsdi-x/gauss/pkg/store/mocks"
)

// writeFixtureDatasets lays out a run where the ideal library holds the
// straight lines y_k(x) = k*x, so training series k has candidate k as its
// obvious winner.
func writeFixtureDatasets(t *testing.T) Config {
	dir := t.TempDir()
	grid := []float64{0, 1, 2, 3}

	var ideal strings.Builder
	ideal.WriteString("x")
	for candidate := 1; candidate <= 50; candidate++ {
		fmt.Fprintf(&ideal, ";y%d", candidate)
	}
	ideal.WriteString("\n")
	for _, x := range grid {
		fmt.Fprintf(&ideal, "%g", x)
		for candidate := 1; candidate <= 50; candidate++ {
			fmt.Fprintf(&ideal, ";%g", float64(candidate)*x)
		}
		ideal.WriteString("\n")
	}

	var train strings.Builder
	train.WriteString("x;y1;y2;y3;y4\n")
	for _, x := range grid {
		fmt.Fprintf(&train, "%g;%g;%g;%g;%g\n", x, 1.1*x, 2*x, 3*x-0.1, 4.05*x)
	}

	// Points 1-3 and 5 stay within the mapping threshold of exactly one
	// selected function each; point 4 is far away from all of them.
	test := "x;y\n" +
		"1;1.05\n" +
		"2;4\n" +
		"3;9.05\n" +
		"0;5\n" +
		"1;4.1\n"

	write := func(name, content string) string {
		filePath := path.Join(dir, name)
		if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		return filePath
	}

	return Config{
		TrainingSetPath: write("train.csv", train.String()),
		IdealSetPath:    write("ideal.csv", ideal.String()),
		TestSetPath:     write("test.csv", test),
		Parallelism:     2,
	}
}

func TestMappingExperiment(t *testing.T) {
	Convey("With the experiment data sets on disk", t, func() {
		config := writeFixtureDatasets(t)
		session, err := experiment.NewSession()
		So(err, ShouldBeNil)
		ctx := context.Background()

		Convey("The experiment runs all phases and persists the outcome", func() {
			resultsStore := store.NewMemoryStore()
			So(resultsStore.Init(ctx), ShouldBeNil)

			metadataRecorder := new(metadatamocks.Metadata)
			metadataRecorder.On("Record", mock.Anything, mock.Anything, mock.Anything).Return(nil)
			metadataRecorder.On("RecordMap", mock.Anything, mock.Anything).Return(nil)

			err := NewExperiment(session, config, resultsStore, metadataRecorder).Run(ctx)
			So(err, ShouldBeNil)

			Convey("Each training series got its ideal function", func() {
				selections, err := resultsStore.GetSelections(ctx)
				So(err, ShouldBeNil)
				So(selections, ShouldHaveLength, 4)
				for i, selection := range selections {
					So(selection.TrainingIndex, ShouldEqual, i+1)
					So(selection.CandidateIndex, ShouldEqual, i+1)
				}
				So(selections[1].SumSquaredDeviation, ShouldEqual, 0.0)
			})

			Convey("Matching test points were mapped in input order", func() {
				mapped, err := resultsStore.GetMappedPoints(ctx)
				So(err, ShouldBeNil)
				So(mapped, ShouldHaveLength, 4)
				So(mapped[0].CandidateIndex, ShouldEqual, 1)
				So(mapped[0].Deviation, ShouldAlmostEqual, 0.05)
				So(mapped[1].CandidateIndex, ShouldEqual, 2)
				So(mapped[1].Deviation, ShouldEqual, 0.0)
				So(mapped[2].CandidateIndex, ShouldEqual, 3)
				So(mapped[3].CandidateIndex, ShouldEqual, 4)
				So(mapped[3].X, ShouldEqual, 1.0)
				So(mapped[3].Y, ShouldAlmostEqual, 4.1)
			})

			Convey("Training data and ideal functions were persisted too", func() {
				training, err := resultsStore.GetTrainingData(ctx)
				So(err, ShouldBeNil)
				So(training, ShouldHaveLength, 4)
				candidates, err := resultsStore.GetIdealFunctions(ctx)
				So(err, ShouldBeNil)
				So(candidates, ShouldHaveLength, 50)
			})

			Convey("Selection and mapping summaries were recorded", func() {
				metadataRecorder.AssertCalled(t, "RecordMap", mock.MatchedBy(func(m map[string]string) bool {
					return m["y2_ideal"] == "y2"
				}), metadata.TypeSelection)
				metadataRecorder.AssertCalled(t, "RecordMap", mock.MatchedBy(func(m map[string]string) bool {
					return m["test_points"] == "5" && m["mapped_points"] == "4" && m["dropped_points"] == "1"
				}), metadata.TypeMapping)
			})
		})

		Convey("A missing data set fails the loading phase", func() {
			config.TrainingSetPath = path.Join(t.TempDir(), "absent.csv")

			err := NewExperiment(session, config, store.NewMemoryStore(), metadata.NewNoop()).Run(ctx)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, `phase "loading data sets" failed`)
		})

		Convey("A failing results store fails the saving phase", func() {
			resultsStore := new(storemocks.Store)
			resultsStore.On("SaveTrainingData", mock.Anything, mock.Anything).Return(errors.New("database is gone"))

			err := NewExperiment(session, config, resultsStore, metadata.NewNoop()).Run(ctx)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, `phase "saving results" failed`)
			So(err.Error(), ShouldContainSubstring, "database is gone")
		})

		Convey("A failing metadata backend fails the recording phase", func() {
			resultsStore := store.NewMemoryStore()
			So(resultsStore.Init(ctx), ShouldBeNil)

			metadataRecorder := new(metadatamocks.Metadata)
			metadataRecorder.On("Record", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("no backend"))
			metadataRecorder.On("RecordMap", mock.Anything, mock.Anything).Return(errors.New("no backend"))

			err := NewExperiment(session, config, resultsStore, metadataRecorder).Run(ctx)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, `phase "recording metadata" failed`)
			So(err.Error(), ShouldContainSubstring, "no backend")
		})
	})
}
