package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "crawingo-delivery/catalog-svc/internal/api/http"
	"crawingo-delivery/catalog-svc/internal/service"
	"crawingo-delivery/catalog-svc/internal/storage"
	"crawingo-delivery/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
)

type catalogBackend interface {
	service.CatalogRepository
	storage.Seeder
}

// openStore returns the configured backend, seeded when empty.
func openStore(ctx context.Context, cfg config.Settings, log logrus.FieldLogger) (catalogBackend, func()) {
	if cfg.StoreBackend != "postgres" {
		store := storage.NewMemoryStore()
		if err := storage.Seed(ctx, store); err != nil {
			log.WithError(err).Fatal("failed to seed catalog")
		}
		return store, func() {}
	}

	db := config.MustInitPostgres(log)
	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.WithError(err).Fatal("failed to ensure schema")
	}
	empty, err := repo.IsEmpty(ctx)
	if err != nil {
		log.WithError(err).Fatal("failed to inspect catalog")
	}
	if empty {
		if err := storage.Seed(ctx, repo); err != nil {
			log.WithError(err).Fatal("failed to seed catalog")
		}
		log.Info("seeded empty postgres catalog")
	}
	return repo, func() { db.Close() }
}

func main() {
	cfg := config.Load(":8081")
	log := config.NewLogger("catalog-svc", cfg.LogLevel, cfg.LogFormat)
	ctx := context.Background()

	store, closeStore := openStore(ctx, cfg, log)
	defer closeStore()

	var cache service.DishCache = storage.NoopDishCache{}
	if cfg.RedisEnabled {
		rdb := config.MustInitRedis(log)
		defer rdb.Close()
		cache = storage.NewRedisDishCache(rdb, cfg.CacheTTL)
	}

	var publisher service.EventPublisher = storage.NoopPublisher{}
	if cfg.KafkaEnabled {
		kafkaPublisher := storage.NewKafkaPublisher(
			config.NewKafkaWriter(cfg.ReviewTopic),
			config.NewKafkaWriter(cfg.OrderTopic),
		)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	}

	handler := httpapi.NewHandler(
		service.NewCatalogService(store, cache, log),
		service.NewReviewService(store, cache, publisher, log),
		service.NewOrderService(store, publisher, service.TrackingQRGenerator{BaseURL: cfg.PublicBaseURL}, cfg.PublicBaseURL, log),
		service.NewAuthService(store, service.AuthConfig{
			Secret:     cfg.JWTSecret,
			TokenTTL:   cfg.TokenTTL,
			BcryptCost: cfg.BcryptCost,
		}),
		httpapi.NewLoginLimiter(cfg.LoginRate, cfg.LoginBurst, cfg.TrustedProxies...),
		log,
	)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := httpapi.NewMetrics(reg, "catalog-svc")

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.NewRouter(handler, metrics, reg),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.WithFields(logrus.Fields{"addr": cfg.HTTPAddr, "store": cfg.StoreBackend}).Info("catalog service starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server stopped")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
	log.Info("catalog service stopped")
}
