package fit

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func mapperConfig(trainingCount int) Config {
	config := DefaultConfig()
	config.TrainingCount = trainingCount
	config.Parallelism = 1
	return config
}

func TestMapper(t *testing.T) {
	grid := []float64{0, 1, 2}

	Convey("While mapping test points onto selected ideal functions", t, func() {
		Convey("A deviation exactly on the sqrt(2) boundary is accepted", func() {
			mapper := NewMapper(mapperConfig(1))
			selections := []Selection{{TrainingIndex: 1, CandidateIndex: 1, MaxAbsoluteDeviation: 1.0}}
			candidates := []Series{constantSeries("y1", grid, 0)}
			test := []Point{{X: 1, Y: math.Sqrt2}}

			mapped, err := mapper.Map(test, selections, candidates)
			So(err, ShouldBeNil)
			So(len(mapped), ShouldEqual, 1)
			So(mapped[0].X, ShouldEqual, 1.0)
			So(mapped[0].Y, ShouldEqual, math.Sqrt2)
			So(mapped[0].Deviation, ShouldEqual, math.Sqrt2)
			So(mapped[0].CandidateIndex, ShouldEqual, 1)
		})

		Convey("A deviation beyond the boundary is dropped without an error", func() {
			mapper := NewMapper(mapperConfig(1))
			selections := []Selection{{TrainingIndex: 1, CandidateIndex: 1, MaxAbsoluteDeviation: 1.0}}
			candidates := []Series{constantSeries("y1", grid, 0)}
			test := []Point{{X: 1, Y: 1.5}}

			mapped, err := mapper.Map(test, selections, candidates)
			So(err, ShouldBeNil)
			So(mapped, ShouldBeEmpty)
		})

		Convey("A test point off the candidate grid fails", func() {
			mapper := NewMapper(mapperConfig(1))
			selections := []Selection{{TrainingIndex: 1, CandidateIndex: 1, MaxAbsoluteDeviation: 1.0}}
			candidates := []Series{constantSeries("y1", grid, 0)}
			test := []Point{{X: 7, Y: 0}}

			_, err := mapper.Map(test, selections, candidates)
			So(err, ShouldNotBeNil)
			So(IsInvalidInput(err), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "7")
		})

		Convey("The selection with the smallest deviation wins", func() {
			mapper := NewMapper(mapperConfig(2))
			selections := []Selection{
				{TrainingIndex: 1, CandidateIndex: 1, MaxAbsoluteDeviation: 1.0},
				{TrainingIndex: 2, CandidateIndex: 2, MaxAbsoluteDeviation: 1.0},
			}
			candidates := []Series{
				constantSeries("y1", grid, 0),
				constantSeries("y2", grid, 0.5),
			}
			test := []Point{{X: 1, Y: 0.3}}

			mapped, err := mapper.Map(test, selections, candidates)
			So(err, ShouldBeNil)
			So(len(mapped), ShouldEqual, 1)
			So(mapped[0].CandidateIndex, ShouldEqual, 2)
			So(mapped[0].Deviation, ShouldAlmostEqual, 0.2)
		})

		Convey("On an exact deviation tie the earliest selection wins", func() {
			mapper := NewMapper(mapperConfig(2))
			selections := []Selection{
				{TrainingIndex: 1, CandidateIndex: 1, MaxAbsoluteDeviation: 2.0},
				{TrainingIndex: 2, CandidateIndex: 2, MaxAbsoluteDeviation: 2.0},
			}
			candidates := []Series{
				constantSeries("y1", grid, 1),
				constantSeries("y2", grid, -1),
			}
			test := []Point{{X: 0, Y: 0}}

			mapped, err := mapper.Map(test, selections, candidates)
			So(err, ShouldBeNil)
			So(len(mapped), ShouldEqual, 1)
			So(mapped[0].CandidateIndex, ShouldEqual, 1)
			So(mapped[0].Deviation, ShouldEqual, 1.0)
		})

		Convey("Accepted points keep the input order when others are dropped", func() {
			mapper := NewMapper(mapperConfig(1))
			selections := []Selection{{TrainingIndex: 1, CandidateIndex: 1, MaxAbsoluteDeviation: 1.0}}
			candidates := []Series{constantSeries("y1", grid, 0)}
			test := []Point{{X: 2, Y: 0.5}, {X: 1, Y: 100}, {X: 0, Y: -0.5}}

			mapped, err := mapper.Map(test, selections, candidates)
			So(err, ShouldBeNil)
			So(len(mapped), ShouldEqual, 2)
			So(mapped[0].X, ShouldEqual, 2.0)
			So(mapped[1].X, ShouldEqual, 0.0)
			So(mapped[1].Deviation, ShouldEqual, 0.5)
		})

		Convey("Mapping is pure and deterministic regardless of parallelism", func() {
			test := []Point{}
			for i := 0; i < 100; i++ {
				test = append(test, Point{X: float64(i % 3), Y: float64(i%7) / 10.0})
			}
			selections := []Selection{
				{TrainingIndex: 1, CandidateIndex: 1, MaxAbsoluteDeviation: 0.2},
				{TrainingIndex: 2, CandidateIndex: 2, MaxAbsoluteDeviation: 0.3},
			}
			candidates := []Series{
				constantSeries("y1", grid, 0),
				constantSeries("y2", grid, 0.5),
			}

			serialConfig := mapperConfig(2)
			parallelConfig := mapperConfig(2)
			parallelConfig.Parallelism = 4

			serial, err := NewMapper(serialConfig).Map(test, selections, candidates)
			So(err, ShouldBeNil)
			parallel, err := NewMapper(parallelConfig).Map(test, selections, candidates)
			So(err, ShouldBeNil)
			repeated, err := NewMapper(serialConfig).Map(test, selections, candidates)
			So(err, ShouldBeNil)

			So(parallel, ShouldResemble, serial)
			So(repeated, ShouldResemble, serial)
		})

		Convey("An empty test series maps to an empty result", func() {
			mapper := NewMapper(mapperConfig(1))
			selections := []Selection{{TrainingIndex: 1, CandidateIndex: 1, MaxAbsoluteDeviation: 1.0}}
			candidates := []Series{constantSeries("y1", grid, 0)}

			mapped, err := mapper.Map(nil, selections, candidates)
			So(err, ShouldBeNil)
			So(mapped, ShouldBeEmpty)
		})

		Convey("Structurally broken input fails with an invalid input error", func() {
			selections := []Selection{{TrainingIndex: 1, CandidateIndex: 1, MaxAbsoluteDeviation: 1.0}}
			candidates := []Series{constantSeries("y1", grid, 0)}
			test := []Point{{X: 1, Y: 0}}

			Convey("Too few selections", func() {
				mapper := NewMapper(mapperConfig(4))
				_, err := mapper.Map(test, selections, candidates)
				So(IsInvalidInput(err), ShouldBeTrue)
			})

			Convey("Too many selections", func() {
				mapper := NewMapper(mapperConfig(1))
				double := append(append([]Selection{}, selections...), selections...)
				_, err := mapper.Map(test, double, candidates)
				So(IsInvalidInput(err), ShouldBeTrue)
			})

			Convey("A negative deviation bound", func() {
				mapper := NewMapper(mapperConfig(1))
				negative := []Selection{{TrainingIndex: 1, CandidateIndex: 1, MaxAbsoluteDeviation: -0.5}}
				_, err := mapper.Map(test, negative, candidates)
				So(IsInvalidInput(err), ShouldBeTrue)
			})

			Convey("A selection referencing a candidate that does not exist", func() {
				mapper := NewMapper(mapperConfig(1))
				dangling := []Selection{{TrainingIndex: 1, CandidateIndex: 13, MaxAbsoluteDeviation: 1.0}}
				_, err := mapper.Map(test, dangling, candidates)
				So(IsInvalidInput(err), ShouldBeTrue)
			})

			Convey("An empty candidate library", func() {
				mapper := NewMapper(mapperConfig(1))
				_, err := mapper.Map(test, selections, nil)
				So(IsInvalidInput(err), ShouldBeTrue)
			})

			Convey("Candidates on diverging grids", func() {
				mapper := NewMapper(mapperConfig(1))
				mixed := []Series{candidates[0], constantSeries("y2", []float64{0, 1, 3}, 0)}
				_, err := mapper.Map(test, selections, mixed)
				So(IsInvalidInput(err), ShouldBeTrue)
			})
		})
	})
}
