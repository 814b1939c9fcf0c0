package classify_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/Reesemix123/the-coach-hub-sub008/internal/domain/classify"
	"github.com/Reesemix123/the-coach-hub-sub008/internal/domain/geometry"
)

func TestCoverageClassifier(t *testing.T) {
	Convey("Given a coverage classifier with default thresholds", t, func() {
		cc := classify.NewCoverageClassifier()

		Convey("When a defender drops 150 units and lands near the center", func() {
			res := cc.Classify(geometry.Path{{X: 600, Y: 260}, {X: 590, Y: 110}}, 260, testField)

			Convey("Then it is a Deep Third at high confidence", func() {
				So(res.Zone, ShouldEqual, classify.ZoneDeepThird)
				So(res.Confidence, ShouldEqual, classify.High)
			})

			Convey("Then the result carries the path endpoint", func() {
				So(res.Endpoint, ShouldResemble, geometry.Point{X: 590, Y: 110})
			})
		})

		Convey("When the same deep drop lands wide of center", func() {
			res := cc.Classify(geometry.Path{{X: 350, Y: 260}, {X: 300, Y: 100}}, 260, testField)

			Convey("Then it is a Deep Half", func() {
				So(res.Zone, ShouldEqual, classify.ZoneDeepHalf)
				So(res.Confidence, ShouldEqual, classify.High)
			})
		})

		Convey("When the drop is intermediate", func() {
			res := cc.Classify(geometry.Path{{X: 500, Y: 300}, {X: 490, Y: 210}}, 300, testField)

			Convey("Then it is a Quarter", func() {
				So(res.Zone, ShouldEqual, classify.ZoneQuarter)
				So(res.Confidence, ShouldEqual, classify.Medium)
			})
		})

		Convey("When the drop is shallow", func() {
			res := cc.Classify(geometry.Path{{X: 560, Y: 300}, {X: 570, Y: 260}}, 300, testField)

			Convey("Then it is a Hook/Curl", func() {
				So(res.Zone, ShouldEqual, classify.ZoneHookCurl)
				So(res.Confidence, ShouldEqual, classify.Medium)
			})
		})

		Convey("When the defender widens without dropping", func() {
			res := cc.Classify(geometry.Path{{X: 820, Y: 300}, {X: 860, Y: 290}}, 300, testField)

			Convey("Then it is a Flat zone", func() {
				So(res.Zone, ShouldEqual, classify.ZoneFlat)
				So(res.Confidence, ShouldEqual, classify.High)
			})
		})

		Convey("When the path shows neither drop nor width", func() {
			res := cc.Classify(geometry.Path{{X: 600, Y: 300}, {X: 610, Y: 310}}, 300, testField)

			Convey("Then it falls through to Man at low confidence", func() {
				So(res.Zone, ShouldEqual, classify.ZoneMan)
				So(res.Confidence, ShouldEqual, classify.Low)
			})
		})

		Convey("When the drop anchors on the pre-snap y, not the drawn start", func() {
			// The gesture starts mid-drop; the drop still measures from
			// the alignment at y=300.
			res := cc.Classify(geometry.Path{{X: 600, Y: 220}, {X: 595, Y: 150}}, 300, testField)

			Convey("Then the full 150-unit drop reads as a Deep Third", func() {
				So(res.Zone, ShouldEqual, classify.ZoneDeepThird)
			})
		})

		Convey("When the path is degenerate", func() {
			Convey("And it holds a single point", func() {
				res := cc.Classify(geometry.Path{{X: 580, Y: 280}}, 280, testField)

				Convey("Then it is Man with that point as the endpoint", func() {
					So(res.Zone, ShouldEqual, classify.ZoneMan)
					So(res.Confidence, ShouldEqual, classify.Low)
					So(res.Endpoint, ShouldResemble, geometry.Point{X: 580, Y: 280})
				})
			})

			Convey("And it is empty", func() {
				res := cc.Classify(nil, 280, testField)

				Convey("Then the endpoint synthesizes from the field geometry", func() {
					So(res.Zone, ShouldEqual, classify.ZoneMan)
					So(res.Endpoint, ShouldResemble, geometry.Point{X: 600, Y: 400})
				})
			})
		})
	})

	Convey("Given a coverage classifier with custom drop bands", t, func() {
		cc := classify.NewCoverageClassifier(classify.WithDropBands(40, 90, 160))

		Convey("When a 150-unit central drop is classified", func() {
			res := cc.Classify(geometry.Path{{X: 600, Y: 260}, {X: 590, Y: 110}}, 260, testField)

			Convey("Then the raised deep threshold demotes it to a Quarter", func() {
				So(res.Zone, ShouldEqual, classify.ZoneQuarter)
			})
		})
	})
}
