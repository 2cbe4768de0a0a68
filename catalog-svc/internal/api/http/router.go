package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

// NewRouter wires the API routes behind access logging, metrics and CORS.
// The storefront calls PATCH with a bearer token, which cors.Default does
// not allow.
func NewRouter(handler *Handler, metrics *Metrics, gatherer prometheus.Gatherer) http.Handler {
	r := mux.NewRouter()
	r.Use(AccessLog(handler.Log))
	if metrics != nil {
		r.Use(metrics.Middleware)
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods("GET")
	}
	handler.RegisterRoutes(r)

	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)
}
