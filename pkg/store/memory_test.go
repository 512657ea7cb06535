package store

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/intelsdi-x/gauss/pkg/fit"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	Convey("While using an in memory store", t, func() {
		memory := NewMemoryStore()
		So(memory.Init(ctx), ShouldBeNil)

		grid := []float64{0, 1, 2}
		training := testSeries(
			[]string{"y1", "y2"},
			grid,
			[][]float64{{1, 2, 3}, {4, 5, 6}},
		)

		Convey("Everything saved comes back unchanged", func() {
			selections := []fit.Selection{{TrainingIndex: 1, CandidateIndex: 3, SumSquaredDeviation: 2, MaxAbsoluteDeviation: 1}}
			points := []fit.MappedPoint{{X: 1, Y: 2, Deviation: 0.5, CandidateIndex: 3}}

			So(memory.SaveTrainingData(ctx, training), ShouldBeNil)
			So(memory.SaveIdealFunctions(ctx, training), ShouldBeNil)
			So(memory.SaveSelections(ctx, selections), ShouldBeNil)
			So(memory.SaveMappedPoints(ctx, points), ShouldBeNil)

			readTraining, err := memory.GetTrainingData(ctx)
			So(err, ShouldBeNil)
			So(readTraining, ShouldResemble, training)

			readIdeal, err := memory.GetIdealFunctions(ctx)
			So(err, ShouldBeNil)
			So(readIdeal, ShouldResemble, training)

			readSelections, err := memory.GetSelections(ctx)
			So(err, ShouldBeNil)
			So(readSelections, ShouldResemble, selections)

			readPoints, err := memory.GetMappedPoints(ctx)
			So(err, ShouldBeNil)
			So(readPoints, ShouldResemble, points)
		})

		Convey("Mutating a read result does not touch the stored data", func() {
			So(memory.SaveTrainingData(ctx, training), ShouldBeNil)

			read, err := memory.GetTrainingData(ctx)
			So(err, ShouldBeNil)
			read[0].Y[0] = 999

			unchanged, err := memory.GetTrainingData(ctx)
			So(err, ShouldBeNil)
			So(unchanged[0].Y[0], ShouldEqual, 1.0)
		})

		Convey("Mutating the saved input does not touch the stored data", func() {
			So(memory.SaveTrainingData(ctx, training), ShouldBeNil)
			training[0].Y[0] = 999

			unchanged, err := memory.GetTrainingData(ctx)
			So(err, ShouldBeNil)
			So(unchanged[0].Y[0], ShouldEqual, 1.0)
		})

		Convey("Init clears everything from the previous run", func() {
			So(memory.SaveTrainingData(ctx, training), ShouldBeNil)
			So(memory.Init(ctx), ShouldBeNil)

			read, err := memory.GetTrainingData(ctx)
			So(err, ShouldBeNil)
			So(read, ShouldBeNil)
		})

		Convey("Series on diverging grids are rejected", func() {
			broken := []fit.Series{
				{Name: "y1", X: grid, Y: []float64{1, 2, 3}},
				{Name: "y2", X: []float64{5, 6, 7}, Y: []float64{1, 2, 3}},
			}
			So(memory.SaveIdealFunctions(ctx, broken), ShouldNotBeNil)
		})

		Convey("An empty series set is rejected", func() {
			So(memory.SaveTrainingData(ctx, nil), ShouldNotBeNil)
		})
	})
}
