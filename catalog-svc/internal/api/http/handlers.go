package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"crawingo-delivery/catalog-svc/internal/domain"
	"crawingo-delivery/catalog-svc/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	Catalog service.CatalogServiceInterface
	Reviews service.ReviewServiceInterface
	Orders  service.OrderServiceInterface
	Auth    service.AuthServiceInterface
	Limiter *LoginLimiter
	Log     logrus.FieldLogger

	validate *validator.Validate
}

func NewHandler(catalog service.CatalogServiceInterface, reviews service.ReviewServiceInterface, orders service.OrderServiceInterface, auth service.AuthServiceInterface, limiter *LoginLimiter, log logrus.FieldLogger) *Handler {
	return &Handler{
		Catalog:  catalog,
		Reviews:  reviews,
		Orders:   orders,
		Auth:     auth,
		Limiter:  limiter,
		Log:      log,
		validate: validator.New(),
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/register", h.register).Methods("POST")
	r.HandleFunc("/api/login", h.Limiter.Wrap(h.login)).Methods("POST")
	r.HandleFunc("/api/user", h.authed(h.currentUser)).Methods("GET")

	r.HandleFunc("/api/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}", h.getRestaurant).Methods("GET")

	r.HandleFunc("/api/dishes", h.getDishes).Methods("GET")
	r.HandleFunc("/api/dishes/{id:[0-9]+}", h.getDish).Methods("GET")
	r.HandleFunc("/api/dishes/{id:[0-9]+}/reviews", h.getDishReviews).Methods("GET")
	r.HandleFunc("/api/dishes/{id:[0-9]+}/reviews", h.authed(h.createReview)).Methods("POST")

	r.HandleFunc("/api/orders", h.authed(h.createOrder)).Methods("POST")
	r.HandleFunc("/api/orders", h.authed(h.getOrders)).Methods("GET")
	r.HandleFunc("/api/orders/{id:[0-9]+}/status", h.authed(h.updateOrderStatus)).Methods("PATCH")
	r.HandleFunc("/api/orders/{id:[0-9]+}/qrcode", h.authed(h.getOrderQRCode)).Methods("GET")
}

func (h *Handler) authed(next http.HandlerFunc) http.HandlerFunc {
	return RequireAuth(h.Auth, h.Log, next)
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "catalog-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// decode reads a JSON body into dst and runs its validation tags.
func (h *Handler) decode(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON body: %w", domain.ErrValidation)
	}
	return h.validate.Struct(dst)
}

func pathID(r *http.Request) int {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	return id
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, h.Log, err)
		return
	}
	user, token, err := h.Auth.Register(r.Context(), domain.User{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
		Address:  req.Address,
	})
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	h.Log.WithField("user_id", user.ID).Info("user registered")
	writeJSON(w, http.StatusCreated, authResponse{Token: token, User: user})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, h.Log, err)
		return
	}
	user, token, err := h.Auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, authResponse{Token: token, User: user})
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserID(r.Context())
	user, err := h.Auth.CurrentUser(r.Context(), userID)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Catalog.ListRestaurants(r.Context())
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	detail, err := h.Catalog.GetRestaurant(r.Context(), pathID(r))
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *Handler) getDishes(w http.ResponseWriter, r *http.Request) {
	var restaurantID *int
	if raw := r.URL.Query().Get("restaurantId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, h.Log, fmt.Errorf("restaurantId %q is not a number: %w", raw, domain.ErrValidation))
			return
		}
		restaurantID = &id
	}
	dishes, err := h.Catalog.ListDishes(r.Context(), restaurantID)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, dishes)
}

func (h *Handler) getDish(w http.ResponseWriter, r *http.Request) {
	detail, err := h.Catalog.GetDish(r.Context(), pathID(r))
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *Handler) getDishReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.Reviews.ListDishReviews(r.Context(), pathID(r))
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, h.Log, err)
		return
	}
	userID, _ := UserID(r.Context())
	review, err := h.Reviews.Create(r.Context(), domain.Review{
		UserID:  userID,
		DishID:  pathID(r),
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusCreated, review)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, h.Log, err)
		return
	}
	userID, _ := UserID(r.Context())
	order, err := h.Orders.Create(r.Context(), req.toDomain(userID))
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	h.Log.WithFields(logrus.Fields{"order_id": order.ID, "user_id": userID}).Info("order placed")
	writeJSON(w, http.StatusCreated, orderResponse{Order: order, TrackingURL: h.Orders.QRLink(order.ID)})
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserID(r.Context())
	orders, err := h.Orders.ListForUser(r.Context(), userID)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, h.Log, err)
		return
	}
	userID, _ := UserID(r.Context())
	order, err := h.Orders.UpdateStatus(r.Context(), userID, pathID(r), req.Status)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserID(r.Context())
	png, err := h.Orders.QRCode(r.Context(), userID, pathID(r))
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "private, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
