package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Reesemix123/the-coach-hub-sub008/internal/adapters/http/api"
	app "github.com/Reesemix123/the-coach-hub-sub008/internal/app"
	"github.com/Reesemix123/the-coach-hub-sub008/internal/config"
	"github.com/Reesemix123/the-coach-hub-sub008/internal/domain/geometry"
	"github.com/Reesemix123/the-coach-hub-sub008/pkg/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	m.Run()
}

// buildService mirrors the wiring main performs from a loaded config.
func buildService(cfg *config.Config) *app.Service {
	return app.New(
		app.WithLogger(logger.Get()),
		app.WithField(geometry.Field{
			CenterX:         cfg.FieldCenterX,
			LineOfScrimmage: cfg.FieldLineOfScrimmage,
			CenterBand:      cfg.FieldCenterBand,
		}),
		app.WithDistanceBands(cfg.RouteShortMax, cfg.RouteDeepMin),
		app.WithBreakAngle(cfg.BreakAngle),
		app.WithInsideTolerance(cfg.InsideTolerance),
		app.WithWorkerCount(cfg.WorkerCount),
		app.WithQueueSize(cfg.QueueSize),
		app.WithDedupeSize(cfg.DedupeSize),
		app.WithShardCount(cfg.StoreShardCount),
	)
}

func TestApplicationWiring(t *testing.T) {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	svc := buildService(cfg)
	if err := svc.Start(ctx); err != nil {
		t.Fatalf("failed to start service: %v", err)
	}
	defer svc.Stop()

	mux := http.NewServeMux()
	api.NewServer(svc, svc).Register(ctx, mux)
	ts := httptest.NewServer(mux)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("health check failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("health check returned %d", resp.StatusCode)
	}

	resp, err = http.Get(ts.URL + "/stats")
	if err != nil {
		t.Fatalf("stats read failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("stats read returned %d", resp.StatusCode)
	}
}

func TestServiceMetricsUpdater(t *testing.T) {
	svc := app.New(app.WithWorkerCount(1), app.WithQueueSize(4))
	ctx, cancel := context.WithCancel(context.Background())
	if err := svc.Start(ctx); err != nil {
		t.Fatalf("failed to start service: %v", err)
	}
	defer svc.Stop()

	done := make(chan struct{})
	go func() {
		startServiceMetricsUpdater(ctx, svc)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("metrics updater did not stop on context cancel")
	}
}
