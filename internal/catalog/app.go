package catalog

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"MiniLibrary/pkg/kit"
)

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string
}

func NewHandler(s *Server, deps HTTPDeps) http.Handler {
	r := chi.NewRouter()

	setupMiddleware(r, deps)
	setupMetrics(r, s, deps)

	r.Mount("/", s.Routes())
	return r
}

func setupMiddleware(r *chi.Mux, deps HTTPDeps) {
	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer)
	r.Use(kit.Logging(deps.Log))
}

func setupMetrics(r *chi.Mux, s *Server, deps HTTPDeps) {
	if deps.Registry == nil {
		return
	}

	metrics := kit.NewMetrics(deps.Registry)
	r.Use(metrics.Middleware(deps.Service, kit.ChiRoutePatternOrPath))

	kit.NewGauge(deps.Registry, "library_products", "Products currently in the catalog", func() float64 {
		st, err := s.Store.Stats(context.Background())
		if err != nil {
			return 0
		}
		return float64(st.Count)
	})
	kit.NewGauge(deps.Registry, "library_genres", "Distinct genres interned so far", func() float64 {
		st, err := s.Store.Stats(context.Background())
		if err != nil {
			return 0
		}
		return float64(st.Genres)
	})

	if !deps.MetricsEnabled {
		return
	}

	r.With(kit.MetricsAuth(deps.MetricsToken)).
		Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
}
