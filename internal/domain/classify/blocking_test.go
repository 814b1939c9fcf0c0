package classify_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/Reesemix123/the-coach-hub-sub008/internal/domain/classify"
	"github.com/Reesemix123/the-coach-hub-sub008/internal/domain/geometry"
)

func TestBlockingClassifier(t *testing.T) {
	Convey("Given a blocking classifier with default thresholds", t, func() {
		bc := classify.NewBlockingClassifier()

		Convey("When a lineman travels far down the line", func() {
			res := bc.Classify(geometry.Path{{X: 500, Y: 395}, {X: 620, Y: 390}})

			Convey("Then it is a Pull at high confidence", func() {
				So(res.Assignment, ShouldEqual, classify.BlockPull)
				So(res.Confidence, ShouldEqual, classify.High)
			})
		})

		Convey("When the same wide track goes leftward", func() {
			res := bc.Classify(geometry.Path{{X: 620, Y: 395}, {X: 500, Y: 390}})

			Convey("Then the signed drift does not satisfy the pull rule", func() {
				So(res.Assignment, ShouldEqual, classify.BlockPass)
			})
		})

		Convey("When the movement is a short surge", func() {
			res := bc.Classify(geometry.Path{{X: 500, Y: 395}, {X: 515, Y: 380}})

			Convey("Then it is a Run Block", func() {
				So(res.Assignment, ShouldEqual, classify.BlockRun)
				So(res.Confidence, ShouldEqual, classify.Medium)
			})
		})

		Convey("When the movement is a deeper vertical set", func() {
			res := bc.Classify(geometry.Path{{X: 500, Y: 395}, {X: 505, Y: 330}})

			Convey("Then it falls through to Pass Block", func() {
				So(res.Assignment, ShouldEqual, classify.BlockPass)
				So(res.Confidence, ShouldEqual, classify.Medium)
			})
		})

		Convey("When the drift is wide but the path is short", func() {
			res := bc.Classify(geometry.Path{{X: 500, Y: 395}, {X: 570, Y: 395}})

			Convey("Then the pull rule needs both width and distance", func() {
				So(res.Assignment, ShouldEqual, classify.BlockPass)
			})
		})

		Convey("When the path is degenerate", func() {
			res := bc.Classify(geometry.Path{{X: 500, Y: 395}})

			Convey("Then it is Pass Block at low confidence", func() {
				So(res.Assignment, ShouldEqual, classify.BlockPass)
				So(res.Confidence, ShouldEqual, classify.Low)
			})
		})
	})

	Convey("Given a blocking classifier with a raised run-block ceiling", t, func() {
		bc := classify.NewBlockingClassifier(classify.WithRunBlockMaxDistance(100))

		Convey("When a 65-unit vertical set is classified", func() {
			res := bc.Classify(geometry.Path{{X: 500, Y: 395}, {X: 505, Y: 330}})

			Convey("Then it now counts as a Run Block", func() {
				So(res.Assignment, ShouldEqual, classify.BlockRun)
			})
		})
	})
}
