package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	httpapi "crawingo-delivery/agg-svc/internal/api/http"
	"crawingo-delivery/agg-svc/internal/service"
	"crawingo-delivery/agg-svc/internal/storage"
	"crawingo-delivery/config"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load(":8083")
	log := config.NewLogger("agg-svc", cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rdb := config.MustInitRedis(log)
	defer rdb.Close()
	store := storage.NewStore(rdb)

	if cfg.KafkaEnabled {
		for _, topic := range []string{cfg.ReviewTopic, cfg.OrderTopic} {
			reader := config.NewKafkaReader(topic, "agg-svc-consumer")
			defer reader.Close()
			consumer := service.NewConsumer(reader, store, log.WithField("topic", topic))
			go consumer.Start(ctx)
		}
	} else {
		log.Warn("kafka disabled, aggregates will not be updated")
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.NewRouter(httpapi.NewHandler(service.NewAnalyticsService(store), log)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.WithFields(logrus.Fields{"addr": cfg.HTTPAddr, "kafka": cfg.KafkaEnabled}).Info("aggregation service starting")
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
	log.Info("aggregation service stopped")
}
