package httpapi

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

func NewRouter(handler *Handler) http.Handler {
	r := mux.NewRouter()
	r.Use(accessLog(handler.Log))
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	handler.RegisterRoutes(r)
	return cors.Default().Handler(r)
}

func accessLog(log logrus.FieldLogger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			log.WithFields(logrus.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"duration": time.Since(start).String(),
			}).Debug("request")
		})
	}
}
