package gateway

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	CatalogSvcURL string
	AggSvcURL     string
}

type Gateway struct {
	config Config
	client HTTPClient
	log    logrus.FieldLogger
}

func NewGateway(config Config, client HTTPClient, log logrus.FieldLogger) *Gateway {
	return &Gateway{
		config: config,
		client: client,
		log:    log,
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "api-gateway",
	})
}

// hopHeaders are connection-scoped and never forwarded.
var hopHeaders = map[string]bool{
	"Connection":        true,
	"Keep-Alive":        true,
	"Transfer-Encoding": true,
	"Upgrade":           true,
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	url := strings.TrimRight(targetURL, "/") + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}
	log := g.log.WithFields(logrus.Fields{"method": r.Method, "path": r.URL.Path, "target": targetURL})

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		log.WithError(err).Error("failed to create request")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	for k, v := range r.Header {
		if !hopHeaders[k] {
			req.Header[k] = v
		}
	}
	// Upstreams key rate limits on this header, so it is never taken from the client.
	req.Header.Del("X-Forwarded-For")
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		req.Header.Set("X-Forwarded-For", host)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.WithError(err).Warn("upstream unavailable")
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "upstream unavailable"})
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		if !hopHeaders[k] {
			w.Header()[k] = v
		}
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		log.WithError(err).Warn("failed to copy response")
	}
	log.WithField("status", resp.StatusCode).Debug("proxied")
}

// RouteHandler sends analytics to agg-svc and everything else under /api
// to catalog-svc.
func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	switch {
	case strings.HasPrefix(path, "/api/analytics/"):
		g.ProxyRequest(w, r, g.config.AggSvcURL)
	case strings.HasPrefix(path, "/api/"):
		g.ProxyRequest(w, r, g.config.CatalogSvcURL)
	default:
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "route not found"})
	}
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix("/").HandlerFunc(g.RouteHandler)
	return r
}
