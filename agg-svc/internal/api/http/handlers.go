package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"crawingo-delivery/agg-svc/internal/domain"
	"crawingo-delivery/agg-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	Analytics service.AnalyticsInterface
	Log       logrus.FieldLogger
}

func NewHandler(svc service.AnalyticsInterface, log logrus.FieldLogger) *Handler {
	return &Handler{Analytics: svc, Log: log}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": "agg-svc"})
	}).Methods("GET")
	r.HandleFunc("/api/analytics/top-today", h.getTopToday).Methods("GET")
	r.HandleFunc("/api/analytics/rating-distribution", h.getGlobalRatingDistribution).Methods("GET")
	r.HandleFunc("/api/analytics/restaurants/{restaurantId:[0-9]+}/top-dishes", h.getTopDishes).Methods("GET")
	r.HandleFunc("/api/analytics/restaurants/{restaurantId:[0-9]+}/dishes/{dishId:[0-9]+}/stats", h.getDishStats).Methods("GET")
	r.HandleFunc("/api/analytics/restaurants/{restaurantId:[0-9]+}/rating-distribution", h.getRatingDistribution).Methods("GET")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	h.Log.WithError(err).Error("request failed")
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}

func limitParam(r *http.Request) int {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	return limit
}

func pathInt(r *http.Request, name string) int {
	n, _ := strconv.Atoi(mux.Vars(r)[name])
	return n
}

func (h *Handler) getTopToday(w http.ResponseWriter, r *http.Request) {
	data, err := h.Analytics.TopToday(r.Context(), limitParam(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (h *Handler) getTopDishes(w http.ResponseWriter, r *http.Request) {
	data, err := h.Analytics.TopDishes(r.Context(), pathInt(r, "restaurantId"), limitParam(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (h *Handler) getDishStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Analytics.DishStats(r.Context(), pathInt(r, "restaurantId"), pathInt(r, "dishId"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) getRatingDistribution(w http.ResponseWriter, r *http.Request) {
	data, err := h.Analytics.RatingDistribution(r.Context(), pathInt(r, "restaurantId"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (h *Handler) getGlobalRatingDistribution(w http.ResponseWriter, r *http.Request) {
	data, err := h.Analytics.RatingDistribution(r.Context(), 0)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}
