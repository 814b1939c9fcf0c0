package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/Reesemix123/the-coach-hub-sub008/internal/simulate"
	"github.com/Reesemix123/the-coach-hub-sub008/pkg/logger"
)

// runTimeout bounds the whole simulation run.
const runTimeout = 10 * time.Minute

func main() {
	var (
		baseURL = flag.String("url", simulate.DefaultBaseURL, "Base URL of the service")
		rounds  = flag.Int("rounds", simulate.DefaultRounds, "Jittered copies of each gesture to submit")
		workers = flag.Int("workers", runtime.NumCPU(), "Number of concurrent submitters")
		timeout = flag.Duration("timeout", simulate.DefaultTimeout, "HTTP request timeout")
		bulk    = flag.Bool("bulk", true, "Also exercise the async assignment pipeline")
		verbose = flag.Bool("verbose", false, "Log every verified gesture")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("Failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	ctx, timeoutCancel := context.WithTimeout(ctx, runTimeout)
	defer timeoutCancel()

	cfg := simulate.NewConfig()
	cfg.BaseURL = *baseURL
	cfg.Rounds = *rounds
	cfg.Workers = *workers
	cfg.Timeout = *timeout
	cfg.Bulk = *bulk
	cfg.Verbose = *verbose

	if err := simulate.NewRunner(cfg).Run(ctx); err != nil {
		logger.Get().Error(ctx, "simulation failed", logger.Error(err))
		os.Exit(1)
	}
}
