package visualization

import (
	"bytes"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestVisualization(t *testing.T) {
	Convey("While rendering experiment data", t, func() {
		Convey("A table prints its headers and rows", func() {
			table := NewTable(
				[]string{"Training", "Ideal"},
				[][]string{{"y1", "y36"}, {"y2", "y11"}},
			)

			buffer := &bytes.Buffer{}
			So(FprintTable(buffer, table), ShouldBeNil)

			output := buffer.String()
			So(output, ShouldContainSubstring, "TRAINING")
			So(output, ShouldContainSubstring, "IDEAL")
			So(output, ShouldContainSubstring, "y36")
			So(output, ShouldContainSubstring, "y11")
		})

		Convey("Experiment metadata prints the experiment id", func() {
			metadata := NewExperimentMetadata("57d29b7d-4d92-4dbd-4d3f-571b0b7a3a27")
			So(metadata.String(), ShouldEqual, "Experiment id: 57d29b7d-4d92-4dbd-4d3f-571b0b7a3a27")
		})
	})
}
