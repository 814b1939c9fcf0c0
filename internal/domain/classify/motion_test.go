package classify_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/Reesemix123/the-coach-hub-sub008/internal/domain/classify"
	"github.com/Reesemix123/the-coach-hub-sub008/internal/domain/geometry"
)

func TestMotionClassifier(t *testing.T) {
	Convey("Given a motion classifier with default thresholds", t, func() {
		mc := classify.NewMotionClassifier()

		Convey("When a wide sweep crosses toward center behind the line", func() {
			res := mc.Classify(geometry.Path{{X: 850, Y: 430}, {X: 700, Y: 440}}, 850, testField)

			Convey("Then it is a Jet at high confidence", func() {
				So(res.Motion, ShouldEqual, classify.MotionJet)
				So(res.Confidence, ShouldEqual, classify.High)
				So(res.Direction, ShouldEqual, classify.TowardCenter)
			})
		})

		Convey("When the same sweep rides on or past the line", func() {
			res := mc.Classify(geometry.Path{{X: 850, Y: 415}, {X: 700, Y: 410}}, 850, testField)

			Convey("Then the jet rule rejects it", func() {
				So(res.Motion, ShouldNotEqual, classify.MotionJet)
			})
		})

		Convey("When a many-point path loops around the backfield", func() {
			res := mc.Classify(geometry.Path{
				{X: 850, Y: 430}, {X: 830, Y: 465}, {X: 790, Y: 480}, {X: 770, Y: 475},
			}, 850, testField)

			Convey("Then it is an Orbit", func() {
				So(res.Motion, ShouldEqual, classify.MotionOrbit)
				So(res.Confidence, ShouldEqual, classify.Medium)
			})
		})

		Convey("When a flat two-point path crosses the formation", func() {
			res := mc.Classify(geometry.Path{{X: 850, Y: 430}, {X: 760, Y: 425}}, 850, testField)

			Convey("Then it is an Across at high confidence", func() {
				So(res.Motion, ShouldEqual, classify.MotionAcross)
				So(res.Confidence, ShouldEqual, classify.High)
			})
		})

		Convey("When the player works back away from center", func() {
			res := mc.Classify(geometry.Path{{X: 700, Y: 430}, {X: 760, Y: 430}}, 700, testField)

			Convey("Then it is a Return", func() {
				So(res.Motion, ShouldEqual, classify.MotionReturn)
				So(res.Confidence, ShouldEqual, classify.Medium)
				So(res.Direction, ShouldEqual, classify.AwayFromCenter)
			})
		})

		Convey("When the movement is a small settle", func() {
			res := mc.Classify(geometry.Path{{X: 700, Y: 430}, {X: 690, Y: 435}}, 700, testField)

			Convey("Then it falls through to Shift at low confidence", func() {
				So(res.Motion, ShouldEqual, classify.MotionShift)
				So(res.Confidence, ShouldEqual, classify.Low)
			})
		})

		Convey("When direction is judged against the pre-snap alignment", func() {
			// The drawn start is at center but the player aligned wide, so
			// the endpoint closing on center reads as toward.
			res := mc.Classify(geometry.Path{{X: 600, Y: 430}, {X: 650, Y: 430}}, 850, testField)

			Convey("Then the alignment, not the drawn start, sets toward", func() {
				So(res.Direction, ShouldEqual, classify.TowardCenter)
			})
		})

		Convey("When the path is degenerate", func() {
			res := mc.Classify(geometry.Path{{X: 820, Y: 430}}, 850, testField)

			Convey("Then it is a Shift at low confidence", func() {
				So(res.Motion, ShouldEqual, classify.MotionShift)
				So(res.Confidence, ShouldEqual, classify.Low)
			})

			Convey("Then the direction is still computed from the endpoint", func() {
				So(res.Direction, ShouldEqual, classify.TowardCenter)
				So(res.Endpoint, ShouldResemble, geometry.Point{X: 820, Y: 430})
			})
		})
	})

	Convey("Given a motion classifier with a lowered jet width", t, func() {
		mc := classify.NewMotionClassifier(classify.WithJetThresholds(60, 20))

		Convey("When a 90-unit toward sweep is classified", func() {
			res := mc.Classify(geometry.Path{{X: 850, Y: 430}, {X: 760, Y: 440}}, 850, testField)

			Convey("Then it now qualifies as a Jet", func() {
				So(res.Motion, ShouldEqual, classify.MotionJet)
			})
		})
	})
}
