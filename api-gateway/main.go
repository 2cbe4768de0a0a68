package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"crawingo-delivery/api-gateway/internal/gateway"
	"crawingo-delivery/config"

	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load(":8080")
	log := config.NewLogger("api-gateway", cfg.LogLevel, cfg.LogFormat)

	gw := gateway.NewGateway(gateway.Config{
		CatalogSvcURL: cfg.CatalogSvcURL,
		AggSvcURL:     cfg.AggSvcURL,
	}, &http.Client{Timeout: 15 * time.Second}, log)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           c.Handler(gw.SetupRoutes()),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.WithFields(logrus.Fields{
			"addr":    cfg.HTTPAddr,
			"catalog": cfg.CatalogSvcURL,
			"agg":     cfg.AggSvcURL,
		}).Info("api gateway starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server stopped")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
	log.Info("api gateway stopped")
}
