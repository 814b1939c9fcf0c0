package classify_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/Reesemix123/the-coach-hub-sub008/internal/domain/classify"
	"github.com/Reesemix123/the-coach-hub-sub008/internal/domain/geometry"
)

func TestGapClassifier(t *testing.T) {
	Convey("Given a gap classifier with default buckets", t, func() {
		gc := classify.NewGapClassifier()

		Convey("When the rush finishes just right of center", func() {
			res := gc.Classify(geometry.Path{{X: 650, Y: 250}, {X: 610, Y: 390}}, testField)

			Convey("Then it is a Strong A-gap at high confidence", func() {
				So(res.Gap, ShouldEqual, classify.GapStrongA)
				So(res.Confidence, ShouldEqual, classify.High)
			})

			Convey("Then the result carries the path endpoint", func() {
				So(res.Endpoint, ShouldResemble, geometry.Point{X: 610, Y: 390})
			})
		})

		Convey("When the rush finishes just left of center", func() {
			res := gc.Classify(geometry.Path{{X: 550, Y: 250}, {X: 590, Y: 390}}, testField)

			Convey("Then the same width reads as the Weak A-gap", func() {
				So(res.Gap, ShouldEqual, classify.GapWeakA)
			})
		})

		Convey("When the rush widens into each bucket", func() {
			Convey("Then 50 units out is a B-gap", func() {
				res := gc.Classify(geometry.Path{{X: 700, Y: 250}, {X: 650, Y: 390}}, testField)
				So(res.Gap, ShouldEqual, classify.GapStrongB)
				So(res.Confidence, ShouldEqual, classify.High)
			})

			Convey("Then 90 units out is a C-gap", func() {
				res := gc.Classify(geometry.Path{{X: 480, Y: 250}, {X: 510, Y: 390}}, testField)
				So(res.Gap, ShouldEqual, classify.GapWeakC)
				So(res.Confidence, ShouldEqual, classify.Medium)
			})

			Convey("Then anything wider is a D-gap", func() {
				res := gc.Classify(geometry.Path{{X: 800, Y: 250}, {X: 780, Y: 390}}, testField)
				So(res.Gap, ShouldEqual, classify.GapStrongD)
				So(res.Confidence, ShouldEqual, classify.Medium)
			})
		})

		Convey("When the endpoint sits exactly on the center line", func() {
			res := gc.Classify(geometry.Path{{X: 640, Y: 250}, {X: 600, Y: 390}}, testField)

			Convey("Then the tie goes to the strong side", func() {
				So(res.Gap, ShouldEqual, classify.GapStrongA)
			})
		})

		Convey("When the start point is wide but the endpoint is tight", func() {
			res := gc.Classify(geometry.Path{{X: 900, Y: 250}, {X: 615, Y: 390}}, testField)

			Convey("Then only the endpoint decides the gap", func() {
				So(res.Gap, ShouldEqual, classify.GapStrongA)
			})
		})

		Convey("When the path is degenerate", func() {
			res := gc.Classify(nil, testField)

			Convey("Then it defaults to the Strong A-gap at low confidence", func() {
				So(res.Gap, ShouldEqual, classify.GapStrongA)
				So(res.Confidence, ShouldEqual, classify.Low)
				So(res.Endpoint, ShouldResemble, geometry.Point{X: 600, Y: 400})
			})
		})

		Convey("When every label is checked against the vocabulary", func() {
			vocab := make(map[classify.GapLabel]struct{})
			for _, l := range classify.GapVocabulary() {
				vocab[l] = struct{}{}
			}

			Convey("Then all eight side and bucket combinations are members", func() {
				endXs := []float64{610, 590, 650, 550, 690, 510, 780, 420}
				for _, x := range endXs {
					res := gc.Classify(geometry.Path{{X: x, Y: 250}, {X: x, Y: 390}}, testField)
					_, ok := vocab[res.Gap]
					So(ok, ShouldBeTrue)
				}
			})
		})
	})

	Convey("Given a gap classifier with widened buckets", t, func() {
		gc := classify.NewGapClassifier(classify.WithGapBuckets(60, 100, 160))

		Convey("When the rush finishes 50 units from center", func() {
			res := gc.Classify(geometry.Path{{X: 700, Y: 250}, {X: 650, Y: 390}}, testField)

			Convey("Then the widened A bucket claims it", func() {
				So(res.Gap, ShouldEqual, classify.GapStrongA)
			})
		})
	})
}
