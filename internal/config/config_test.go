package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/Reesemix123/the-coach-hub-sub008/internal/config"
)

func clearEnv() {
	for _, e := range os.Environ() {
		if strings.HasPrefix(e, "PLAYBOOK_") {
			key, _, _ := strings.Cut(e, "=")
			os.Unsetenv(key)
		}
	}
}

func TestNew(t *testing.T) {
	Convey("Given the default configuration", t, func() {
		cfg := config.New()

		Convey("Then the serving defaults are set", func() {
			So(cfg.Addr, ShouldEqual, ":9080")
			So(cfg.LogLevel, ShouldEqual, "info")
		})

		Convey("Then the field template matches the standard diagram", func() {
			So(cfg.FieldCenterX, ShouldEqual, 600)
			So(cfg.FieldLineOfScrimmage, ShouldEqual, 400)
			So(cfg.FieldCenterBand, ShouldEqual, 50)
		})

		Convey("Then the classifier thresholds carry the product defaults", func() {
			So(cfg.RouteShortMax, ShouldEqual, 80)
			So(cfg.RouteDeepMin, ShouldEqual, 150)
			So(cfg.BreakAngle, ShouldEqual, 30)
			So(cfg.InsideTolerance, ShouldEqual, 20)
		})

		Convey("Then the pipeline sizing is populated", func() {
			So(cfg.QueueSize, ShouldEqual, 10_000)
			So(cfg.WorkerCount, ShouldBeGreaterThan, 0)
			So(cfg.DedupeSize, ShouldEqual, 50_000)
			So(cfg.StoreShardCount, ShouldEqual, 8)
		})
	})
}

func TestLoad(t *testing.T) {
	Convey("Given a clean environment", t, func() {
		clearEnv()
		Reset(clearEnv)
		ctx := context.Background()

		Convey("When loading with no overrides", func() {
			cfg, err := config.Load(ctx)

			Convey("Then the defaults come back", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":9080")
				So(cfg.RouteDeepMin, ShouldEqual, 150)
			})
		})

		Convey("When env vars override values", func() {
			os.Setenv("PLAYBOOK_ADDR", ":7070")
			os.Setenv("PLAYBOOK_QUEUE_SIZE", "123")
			os.Setenv("PLAYBOOK_BREAK_ANGLE", "45")

			cfg, err := config.Load(ctx)

			Convey("Then the env values win", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":7070")
				So(cfg.QueueSize, ShouldEqual, 123)
				So(cfg.BreakAngle, ShouldEqual, 45)
			})

			Convey("Then untouched values keep their defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.RouteShortMax, ShouldEqual, 80)
			})
		})

		Convey("When a YAML file provides values and env overrides one", func() {
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			yaml := "addr: \":6060\"\nroute_short_max: 60\nroute_deep_min: 140\n"
			So(os.WriteFile(path, []byte(yaml), 0o600), ShouldBeNil)

			os.Setenv("PLAYBOOK_CONFIG", path)
			os.Setenv("PLAYBOOK_ADDR", ":5050")

			cfg, err := config.Load(ctx)

			Convey("Then env beats file beats defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":5050")
				So(cfg.RouteShortMax, ShouldEqual, 60)
				So(cfg.RouteDeepMin, ShouldEqual, 140)
				So(cfg.BreakAngle, ShouldEqual, 30)
			})
		})

		Convey("When the config file path is bogus", func() {
			os.Setenv("PLAYBOOK_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

			_, err := config.Load(ctx)

			Convey("Then loading fails with the load sentinel", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, config.ErrLoadConfig), ShouldBeTrue)
			})
		})

		Convey("When validation rejects the result", func() {
			Convey("And the route bands are inverted", func() {
				os.Setenv("PLAYBOOK_ROUTE_DEEP_MIN", "50")

				_, err := config.Load(ctx)
				So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
			})

			Convey("And the break angle is out of range", func() {
				os.Setenv("PLAYBOOK_BREAK_ANGLE", "200")

				_, err := config.Load(ctx)
				So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
			})

			Convey("And the address is blanked", func() {
				os.Setenv("PLAYBOOK_ADDR", "")

				_, err := config.Load(ctx)
				So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
			})
		})
	})
}
