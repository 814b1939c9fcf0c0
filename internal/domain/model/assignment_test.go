package model_test

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/Reesemix123/the-coach-hub-sub008/internal/domain/classify"
	"github.com/Reesemix123/the-coach-hub-sub008/internal/domain/geometry"
	"github.com/Reesemix123/the-coach-hub-sub008/internal/domain/model"
)

func TestKindValid(t *testing.T) {
	Convey("Given the assignment kinds", t, func() {
		Convey("Then every classifier kind is valid", func() {
			kinds := []model.Kind{
				model.KindRoute, model.KindBlocking, model.KindCoverage,
				model.KindGap, model.KindMotion,
			}
			for _, k := range kinds {
				So(k.Valid(), ShouldBeTrue)
			}
		})

		Convey("Then unknown and empty kinds are invalid", func() {
			So(model.Kind("juggling").Valid(), ShouldBeFalse)
			So(model.Kind("").Valid(), ShouldBeFalse)
		})
	})
}

func TestOutcomeJSON(t *testing.T) {
	Convey("Given an outcome without an endpoint", t, func() {
		o := model.Outcome{
			AssignmentID: "a-1",
			PlayID:       "play-1",
			Kind:         model.KindRoute,
			Label:        string(classify.RouteGo),
			Confidence:   classify.High,
		}

		Convey("When it is marshaled", func() {
			raw, err := json.Marshal(o)
			So(err, ShouldBeNil)

			Convey("Then the endpoint field is omitted", func() {
				So(string(raw), ShouldNotContainSubstring, "endpoint")
			})
		})
	})

	Convey("Given an outcome with an endpoint", t, func() {
		o := model.Outcome{
			AssignmentID: "a-2",
			Kind:         model.KindGap,
			Label:        string(classify.GapStrongA),
			Confidence:   classify.Low,
			Endpoint:     &geometry.Point{X: 610, Y: 390},
		}

		Convey("When it is marshaled", func() {
			raw, err := json.Marshal(o)
			So(err, ShouldBeNil)

			Convey("Then the endpoint survives the round trip", func() {
				var back model.Outcome
				So(json.Unmarshal(raw, &back), ShouldBeNil)
				So(back.Endpoint, ShouldResemble, &geometry.Point{X: 610, Y: 390})
			})
		})
	})
}
