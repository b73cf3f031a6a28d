package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Sudhanva-BR/Autonomous-Drone-Delivery-Simulation/internal/logging"
	"github.com/Sudhanva-BR/Autonomous-Drone-Delivery-Simulation/internal/observability"
	"github.com/Sudhanva-BR/Autonomous-Drone-Delivery-Simulation/route"
	"github.com/Sudhanva-BR/Autonomous-Drone-Delivery-Simulation/scenario"
)

// solveServer handles POST /api/run: it reads the raw token input from
// the request body, validates it, runs the route search under a timeout
// and a concurrency cap, and replies with the solver's JSON output.
type solveServer struct {
	log       logging.Logger
	collector *observability.SolverCollector
	timeout   time.Duration // wall-clock budget for one solve
	maxBody   int64         // request body cap in bytes
	sem       chan struct{} // counting semaphore for concurrent solves
}

func newSolveServer(log logging.Logger, collector *observability.SolverCollector, timeout time.Duration, maxBody int64, maxConcurrent int) *solveServer {
	if log == nil {
		log = logging.Noop()
	}
	return &solveServer{
		log:       log,
		collector: collector,
		timeout:   timeout,
		maxBody:   maxBody,
		sem:       make(chan struct{}, maxConcurrent),
	}
}

// ServeHTTP wraps handle with per-request metrics and a request ID for
// log correlation.
func (s *solveServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	reqLog := s.log.With(logging.String("request_id", logging.NewRequestID()))

	code := s.handle(w, r, reqLog)
	s.collector.ObserveRequest(code, time.Since(start))
}

// handle runs the full request pipeline and returns the HTTP status it
// wrote: 405 for non-POST, 413 for an oversized body, 400 for malformed
// or invalid input, 504 for a solve that exceeded the timeout, 503 when
// the client gave up while queueing for a solver slot, 500 for anything
// unexpected, and 200 for both a solved route and the -1 no-route answer.
func (s *solveServer) handle(w http.ResponseWriter, r *http.Request, reqLog logging.Logger) int {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		return s.fail(w, http.StatusMethodNotAllowed, "only POST is supported")
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return s.fail(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("input size exceeds maximum of %d bytes", s.maxBody))
		}
		return s.fail(w, http.StatusBadRequest, "failed to read request body")
	}

	sc, err := scenario.Decode(bytes.NewReader(body))
	if err != nil {
		return s.fail(w, http.StatusBadRequest, "invalid input format: "+err.Error())
	}
	if err := sc.Validate(); err != nil {
		return s.fail(w, http.StatusBadRequest, err.Error())
	}
	grid, err := sc.Grid()
	if err != nil {
		return s.fail(w, http.StatusBadRequest, err.Error())
	}

	// Queue for a solver slot; give up if the client disconnects first.
	select {
	case s.sem <- struct{}{}:
	case <-ctx.Done():
		return s.fail(w, http.StatusServiceUnavailable, "no solver slot available")
	}
	defer func() { <-s.sem }()
	solveDone := s.collector.SolveStarted()
	defer solveDone()

	solveCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	plan, err := route.Solve(grid,
		route.Budget(sc.Budget),
		route.Recharge(sc.Recharge),
		route.Stations(sc.StationSet()),
		route.WithContext(solveCtx),
	)
	switch {
	case errors.Is(err, route.ErrNoRoute):
		w.Header().Set("Content-Type", "application/json")
		_ = scenario.EncodeNoRoute(w)
		return http.StatusOK
	case errors.Is(err, context.DeadlineExceeded):
		reqLog.Warn(ctx, "solve timed out",
			logging.Int("rows", sc.Rows),
			logging.Int("cols", sc.Cols),
		)
		return s.fail(w, http.StatusGatewayTimeout,
			fmt.Sprintf("solver execution timeout (>%s)", s.timeout))
	case err != nil:
		reqLog.Error(ctx, "solve failed", logging.String("error", err.Error()))
		return s.fail(w, http.StatusInternalServerError, "solver execution failed")
	}

	w.Header().Set("Content-Type", "application/json")
	if err := scenario.EncodePlan(w, plan); err != nil {
		reqLog.Warn(ctx, "failed to write response", logging.String("error", err.Error()))
	}
	return http.StatusOK
}

// fail writes a JSON error body with the given status and returns the
// status for metrics.
func (s *solveServer) fail(w http.ResponseWriter, code int, msg string) int {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
	return code
}
