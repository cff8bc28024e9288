package router

import (
	"net/http"

	"github.com/digitalnycagency/seo-audit-api/internal/delivery/http/handler"
	"github.com/digitalnycagency/seo-audit-api/internal/delivery/http/middleware"
	"github.com/digitalnycagency/seo-audit-api/pkg/metrics"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// New builds the public API router. It exposes the audit endpoint only.
func New(h *handler.Handler, m *metrics.Metrics, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Metrics(m))
	r.Use(chimw.Recoverer)

	r.Post("/api/seo-audit", h.HandleSEOAudit)

	return r
}

// NewOps builds the operational router served on the metrics listener.
func NewOps(h *handler.Handler, gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)

	r.Get("/healthz", h.HandleHealthCheck)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return r
}
