package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"jyotish/internal/cache"
	charthandler "jyotish/internal/chart/handler"
	chartservice "jyotish/internal/chart/service"
	dashahandler "jyotish/internal/dasha/handler"
	dashaservice "jyotish/internal/dasha/service"
	"jyotish/internal/ephemeris/meeus"
	"jyotish/internal/panchang"
	panchanghandler "jyotish/internal/panchang/handler"
	"jyotish/internal/platform/config"
	"jyotish/internal/platform/httpserver"
	"jyotish/internal/platform/logger"
	"jyotish/internal/platform/metrics"
	platformredis "jyotish/internal/platform/redis"
	httptransport "jyotish/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()
	m := metrics.New()

	var store cache.Store = cache.NewMemoryStore()
	if cfg.RedisURL != "" {
		client, err := platformredis.New(cfg.RedisURL)
		if err != nil {
			log.Error("redis connection failed, using in-memory cache", "error", err)
		} else if client != nil {
			defer client.Close()
			store = cache.NewRedisStore(client)
			log.Info("response cache backed by redis")
		}
	}
	responses := cache.New(store, cfg.CacheTTL, m)

	chartservice.DefaultAyanamsa = chartservice.NormalizeAyanamsaName(cfg.Ayanamsa)

	provider := meeus.New()
	charts := chartservice.New(provider)
	dashas := dashaservice.New(provider)
	days := panchang.NewSolver(provider, provider)

	router := httptransport.NewRouter(
		charthandler.New(charts, responses, log, m),
		dashahandler.New(dashas, responses, log, m),
		panchanghandler.New(days, provider, responses, log, m),
	)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting jyotish", "addr", cfg.Addr, "ayanamsa", chartservice.DefaultAyanamsa)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
