package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"crawingo-delivery/catalog-svc/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthConfig struct {
	Secret     string
	TokenTTL   time.Duration
	BcryptCost int
}

// AuthService issues HS256 tokens whose subject is the user id.
type AuthService struct {
	repo   CatalogRepository
	secret []byte
	ttl    time.Duration
	cost   int
	now    func() time.Time
}

func NewAuthService(repo CatalogRepository, cfg AuthConfig) *AuthService {
	cost := cfg.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &AuthService{
		repo:   repo,
		secret: []byte(cfg.Secret),
		ttl:    cfg.TokenTTL,
		cost:   cost,
		now:    time.Now,
	}
}

func (s *AuthService) Register(ctx context.Context, user domain.User) (domain.User, string, error) {
	user.Username = strings.TrimSpace(user.Username)
	if user.Username == "" || user.Password == "" {
		return domain.User{}, "", fmt.Errorf("username and password are required: %w", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), s.cost)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("hash password: %w", err)
	}
	user.Password = string(hash)

	created, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		return domain.User{}, "", err
	}
	token, err := s.issue(created.ID)
	if err != nil {
		return domain.User{}, "", err
	}
	return created, token, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (domain.User, string, error) {
	user, err := s.repo.GetUserByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, "", fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)
	}
	if err != nil {
		return domain.User{}, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return domain.User{}, "", fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)
	}
	token, err := s.issue(user.ID)
	if err != nil {
		return domain.User{}, "", err
	}
	return user, token, nil
}

// Authenticate returns the user id carried by a valid token.
func (s *AuthService) Authenticate(token string) (int, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || !parsed.Valid {
		return 0, fmt.Errorf("invalid token: %w", domain.ErrUnauthorized)
	}
	id, err := strconv.Atoi(claims.Subject)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid token subject: %w", domain.ErrUnauthorized)
	}
	return id, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, userID int) (domain.User, error) {
	user, err := s.repo.GetUser(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, fmt.Errorf("user %d no longer exists: %w", userID, domain.ErrUnauthorized)
	}
	return user, err
}

func (s *AuthService) issue(userID int) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.Itoa(userID),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
