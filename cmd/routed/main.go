// Command routed is the HTTP front end for the drone route solver. It
// exposes POST /api/run (raw token input in, solver JSON out) and a
// Prometheus /metrics endpoint, enforcing a request body cap, a solve
// timeout, and a bound on concurrent solver runs.
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/Sudhanva-BR/Autonomous-Drone-Delivery-Simulation/internal/logging"
	"github.com/Sudhanva-BR/Autonomous-Drone-Delivery-Simulation/internal/observability"
)

func main() {
	addr := flag.String("addr", ":8080", "TCP address the HTTP server listens on")
	solveTimeout := flag.Duration("solve-timeout", 10*time.Second, "maximum wall-clock time for a single solve")
	maxConcurrent := flag.Int("max-concurrent", 3, "maximum number of solver runs executing at once")
	maxBody := flag.Int64("max-body", 64*1024, "maximum request body size in bytes")
	flag.Parse()

	log := logging.NewFromEnv()
	ctx := context.Background()

	collector, err := observability.NewSolverCollector(nil)
	if err != nil {
		log.Error(ctx, "failed to initialise metrics collector", logging.String("error", err.Error()))
		os.Exit(1)
	}

	mux := http.NewServeMux()
	mux.Handle("/api/run", newSolveServer(log, collector, *solveTimeout, *maxBody, *maxConcurrent))
	mux.Handle("/metrics", collector.Handler())

	srv := &http.Server{
		Addr:    *addr,
		Handler: mux,
	}

	go func() {
		log.Info(ctx, "starting routed HTTP server",
			logging.String("addr", *addr),
			logging.Any("solve_timeout", *solveTimeout),
			logging.Int("max_concurrent", *maxConcurrent),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error(ctx, "HTTP server exited", logging.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	<-stopCtx.Done()

	log.Info(ctx, "shutting down routed server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
