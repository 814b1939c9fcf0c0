package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManagerCreation(t *testing.T) {
	Convey("Given manager creation", t, func() {
		Convey("When creating with a private registry", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})

			Convey("Then its collectors land in that registry", func() {
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				So(families, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom naming options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("testspace"),
				WithSubsystem("testsys"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithRegistry(registry),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})
	})
}

func TestGlobalRecording(t *testing.T) {
	Convey("Given the package-level helpers", t, func() {
		Convey("When recording classification metrics", func() {
			Convey("Then the helpers should not panic", func() {
				So(func() {
					RecordClassification("route", "Go/Streak/9", "high")
					RecordClassificationDuration("route", 0.25)
					RecordDegeneratePath("route")
					ObservePathPoints("route", 12)
					RecordSuggestionCount(5)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording pipeline metrics", func() {
			Convey("Then the helpers should not panic", func() {
				So(func() {
					RecordJobAccepted()
					RecordJobDuplicate()
					RecordJobDropped()
					UpdateQueueSize(3)
					UpdateQueueCapacity(100)
					UpdateWorkerCount(4)
					RecordWorkerProcessingLatency(1.5)
					RecordWorkerError()
					RecordOutcomeStored()
					UpdateStoredOutcomes(10)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording HTTP metrics", func() {
			Convey("Then the helpers should not panic", func() {
				So(func() {
					RecordHTTPRequest("classify", "POST", "200")
					RecordHTTPRequestDuration("classify", "POST", "200", 2.5)
				}, ShouldNotPanic)
			})
		})

		Convey("When reading the global registry", func() {
			registry := GetRegistry()

			Convey("Then it gathers the recorded families", func() {
				So(registry, ShouldNotBeNil)
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				So(len(families), ShouldBeGreaterThan, 0)
			})
		})
	})
}

func TestRecordingEdgeCases(t *testing.T) {
	Convey("Given edge-case values", t, func() {
		Convey("When recording zero and negative values", func() {
			Convey("Then gauges and histograms accept them", func() {
				So(func() {
					UpdateQueueSize(0)
					RecordClassificationDuration("route", 0)
					ObservePathPoints("route", 0)
					RecordSuggestionCount(0)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording with empty label values", func() {
			Convey("Then the vectors still accept the sample", func() {
				So(func() {
					RecordClassification("", "", "")
					RecordHTTPRequest("", "", "")
				}, ShouldNotPanic)
			})
		})
	})
}
