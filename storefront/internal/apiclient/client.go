// Package apiclient talks to the catalog service over HTTP.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"crawingo-delivery/storefront/internal/model"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

const DefaultCacheSize = 64

type Config struct {
	BaseURL   string
	HTTP      HTTPClient
	Token     string
	CacheSize int
	Log       logrus.FieldLogger
}

type Client struct {
	baseURL string
	http    HTTPClient
	log     logrus.FieldLogger
	dishes  *lru.Cache[int, model.DishDetail]

	mu    sync.RWMutex
	token string
}

func New(cfg Config) (*Client, error) {
	if cfg.HTTP == nil {
		cfg.HTTP = http.DefaultClient
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	if cfg.Log == nil {
		logger := logrus.New()
		logger.SetOutput(io.Discard)
		cfg.Log = logger
	}
	cache, err := lru.New[int, model.DishDetail](cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("dish cache: %w", err)
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    cfg.HTTP,
		log:     cfg.Log,
		dishes:  cache,
		token:   cfg.Token,
	}, nil
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

type errorBody struct {
	Error string `json:"error"`
}

func (c *Client) send(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: build %s %s: %v", ErrTransport, method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WithError(err).WithField("path", path).Warn("request failed")
		return nil, fmt.Errorf("%w: %s %s: %v", ErrTransport, method, path, err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		defer resp.Body.Close()
		var eb errorBody
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		if eb.Error == "" {
			eb.Error = http.StatusText(resp.StatusCode)
		}
		return nil, fmt.Errorf("%w: %s", errorForStatus(resp.StatusCode), eb.Error)
	}
	return resp, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	resp, err := c.send(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrTransport, path, err)
	}
	return nil
}

type authResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// Register creates an account and keeps the returned token.
func (c *Client) Register(ctx context.Context, username, password, name, address string) (model.User, error) {
	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/api/register", map[string]string{
		"username": username,
		"password": password,
		"name":     name,
		"address":  address,
	}, &resp)
	if err != nil {
		return model.User{}, err
	}
	c.SetToken(resp.Token)
	return resp.User, nil
}

// Login keeps the returned token for later calls.
func (c *Client) Login(ctx context.Context, username, password string) (model.User, error) {
	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/api/login", map[string]string{
		"username": username,
		"password": password,
	}, &resp)
	if err != nil {
		return model.User{}, err
	}
	c.SetToken(resp.Token)
	return resp.User, nil
}

func (c *Client) CurrentUser(ctx context.Context) (model.User, error) {
	var user model.User
	err := c.do(ctx, http.MethodGet, "/api/user", nil, &user)
	return user, err
}

func (c *Client) Restaurants(ctx context.Context) ([]model.Restaurant, error) {
	var out []model.Restaurant
	err := c.do(ctx, http.MethodGet, "/api/restaurants", nil, &out)
	return out, err
}

func (c *Client) Restaurant(ctx context.Context, id int) (model.RestaurantDetail, error) {
	var out model.RestaurantDetail
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/restaurants/%d", id), nil, &out)
	return out, err
}

// Dishes lists every dish, or a single restaurant's menu when restaurantID
// is set.
func (c *Client) Dishes(ctx context.Context, restaurantID *int) ([]model.Dish, error) {
	path := "/api/dishes"
	if restaurantID != nil {
		path += "?" + url.Values{"restaurantId": {strconv.Itoa(*restaurantID)}}.Encode()
	}
	var out []model.Dish
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

// Dish returns the dish detail, served from the local cache when present.
func (c *Client) Dish(ctx context.Context, id int) (model.DishDetail, error) {
	if detail, ok := c.dishes.Get(id); ok {
		return detail, nil
	}
	var out model.DishDetail
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/dishes/%d", id), nil, &out); err != nil {
		return model.DishDetail{}, err
	}
	c.dishes.Add(id, out)
	return out, nil
}

func (c *Client) InvalidateDish(id int) {
	c.dishes.Remove(id)
}

func (c *Client) Reviews(ctx context.Context, dishID int) ([]model.Review, error) {
	var out []model.Review
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/dishes/%d/reviews", dishID), nil, &out)
	return out, err
}

func (c *Client) PostReview(ctx context.Context, dishID, rating int, comment string) (model.Review, error) {
	var out model.Review
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/dishes/%d/reviews", dishID), map[string]interface{}{
		"rating":  rating,
		"comment": comment,
	}, &out)
	return out, err
}

func (c *Client) PlaceOrder(ctx context.Context, items []model.OrderItem) (model.Order, error) {
	var out model.Order
	err := c.do(ctx, http.MethodPost, "/api/orders", map[string]interface{}{"items": items}, &out)
	return out, err
}

func (c *Client) Orders(ctx context.Context) ([]model.Order, error) {
	var out []model.Order
	err := c.do(ctx, http.MethodGet, "/api/orders", nil, &out)
	return out, err
}

func (c *Client) UpdateOrderStatus(ctx context.Context, orderID int, status string) (model.Order, error) {
	var out model.Order
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/orders/%d/status", orderID), map[string]string{"status": status}, &out)
	return out, err
}

// ReportStatus adapts UpdateOrderStatus for progress reporting.
func (c *Client) ReportStatus(ctx context.Context, orderID int, status string) error {
	_, err := c.UpdateOrderStatus(ctx, orderID, status)
	return err
}

// QRCode returns the PNG tracking code for an order.
func (c *Client) QRCode(ctx context.Context, orderID int) ([]byte, error) {
	path := fmt.Sprintf("/api/orders/%d/qrcode", orderID)
	resp, err := c.send(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	png, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrTransport, path, err)
	}
	return png, nil
}
