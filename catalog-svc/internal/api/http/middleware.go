package httpapi

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"crawingo-delivery/catalog-svc/internal/domain"
	"crawingo-delivery/catalog-svc/internal/service"

	"github.com/gorilla/mux"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

type ctxKey int

const userIDKey ctxKey = iota

func withUserID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserID returns the authenticated user attached by RequireAuth.
func UserID(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(userIDKey).(int)
	return id, ok
}

// RequireAuth rejects requests without a valid bearer token.
func RequireAuth(auth service.AuthServiceInterface, log logrus.FieldLogger, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			writeError(w, log, fmt.Errorf("missing bearer token: %w", domain.ErrUnauthorized))
			return
		}
		id, err := auth.Authenticate(token)
		if err != nil {
			writeError(w, log, err)
			return
		}
		next(w, r.WithContext(withUserID(r.Context(), id)))
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func routeName(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}

func AccessLog(log logrus.FieldLogger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			log.WithFields(logrus.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"status":   rec.status,
				"duration": time.Since(start).String(),
			}).Info("request")
		})
	}
}

type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer, service string) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "HTTP requests by route, method and status.",
			ConstLabels: prometheus.Labels{"service": service},
		}, []string{"route", "method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency by route.",
			ConstLabels: prometheus.Labels{"service": service},
			Buckets:     prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}
	reg.MustRegister(m.requests, m.duration)
	return m
}

func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		route := routeName(r)
		m.requests.WithLabelValues(route, r.Method, strconv.Itoa(rec.status)).Inc()
		m.duration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}

// limiterCapacity bounds how many client buckets are tracked at once.
const limiterCapacity = 4096

// LoginLimiter throttles login attempts per client address. X-Forwarded-For
// is honoured only when the peer is one of the trusted proxies.
type LoginLimiter struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	trusted  map[string]bool
	limiters *lru.Cache[string, *rate.Limiter]
}

func NewLoginLimiter(perSecond float64, burst int, trustedProxies ...string) *LoginLimiter {
	return newLoginLimiter(perSecond, burst, limiterCapacity, trustedProxies)
}

func newLoginLimiter(perSecond float64, burst, capacity int, trustedProxies []string) *LoginLimiter {
	limiters, err := lru.New[string, *rate.Limiter](capacity)
	if err != nil {
		panic(fmt.Sprintf("login limiter: %v", err))
	}
	trusted := make(map[string]bool, len(trustedProxies))
	for _, addr := range trustedProxies {
		if addr = strings.TrimSpace(addr); addr != "" {
			trusted[addr] = true
		}
	}
	return &LoginLimiter{
		limit:    rate.Limit(perSecond),
		burst:    burst,
		trusted:  trusted,
		limiters: limiters,
	}
}

func (l *LoginLimiter) Allow(client string) bool {
	l.mu.Lock()
	lim, ok := l.limiters.Get(client)
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.limiters.Add(client, lim)
	}
	l.mu.Unlock()
	return lim.Allow()
}

func (l *LoginLimiter) Wrap(next http.HandlerFunc) http.HandlerFunc {
	if l == nil {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(l.clientIP(r)) {
			writeJSON(w, http.StatusTooManyRequests, map[string]string{"error": "too many login attempts"})
			return
		}
		next(w, r)
	}
}

// clientIP is the peer address, or the last X-Forwarded-For hop when the
// peer is a trusted proxy.
func (l *LoginLimiter) clientIP(r *http.Request) string {
	peer, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		peer = r.RemoteAddr
	}
	if !l.trusted[peer] {
		return peer
	}
	fwd := r.Header.Get("X-Forwarded-For")
	if i := strings.LastIndex(fwd, ","); i >= 0 {
		fwd = fwd[i+1:]
	}
	if fwd = strings.TrimSpace(fwd); fwd != "" {
		return fwd
	}
	return peer
}
