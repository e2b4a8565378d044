// cmd/visualizer/debug.go
package main

import (
	"errors"
	"log/slog"
	"net/http"
	"net/http/pprof"

	"go-astar-visualizer/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

// startDebugServer serves pprof and Prometheus metrics on addr in the
// background. It returns nil when addr is empty.
func startDebugServer(addr string, g prometheus.Gatherer, log *slog.Logger) *http.Server {
	if addr == "" {
		return nil
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	mux.Handle("/metrics", metrics.Handler(g))

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		log.Info("debug server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("debug server stopped", "error", err)
		}
	}()
	return srv
}
