package router

import (
	"fmt"
	"net/http"
	"time"

	"cargo-route-service/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registrar mounts a group of routes on a mux
type Registrar interface {
	Register(mux *http.ServeMux)
}

// Router assembles the HTTP surface: health, metrics and the registered API groups
type Router struct {
	mux    *http.ServeMux
	logger logger.Logger
}

// NewRouter creates a router serving /health and /metrics from gatherer.
// A nil gatherer serves the default prometheus registry.
func NewRouter(gatherer prometheus.Gatherer, logger logger.Logger) *Router {
	mux := http.NewServeMux()
	if gatherer == nil {
		mux.Handle("/metrics", promhttp.Handler())
	} else {
		mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})

	return &Router{
		mux:    mux,
		logger: logger,
	}
}

// Register mounts a route group
func (r *Router) Register(group Registrar) {
	group.Register(r.mux)
	r.logger.Info("Registered routes", "group", fmt.Sprintf("%T", group))
}

// Handler returns the mux wrapped with request logging
func (r *Router) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		r.mux.ServeHTTP(rec, req)
		if req.URL.Path == "/health" || req.URL.Path == "/metrics" {
			return
		}
		r.logger.Info("HTTP request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", rec.status,
			"elapsed", time.Since(start))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}
