package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"saudade-match/internal/config"
	"saudade-match/internal/db"
	"saudade-match/internal/domain"
	apihttp "saudade-match/internal/http"
	"saudade-match/internal/repository"
	"saudade-match/internal/service"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	defaultLocale, err := domain.ParseLocale(cfg.DefaultLocale)
	if err != nil {
		logger.Warn("invalid default locale, using en", zap.String("locale", cfg.DefaultLocale))
		defaultLocale = domain.LocaleEnglish
	}

	var (
		profileRepo repository.ProfileRepository = repository.NewMemoryProfileRepository()
		matchRepo   repository.MatchRepository   = repository.NewMemoryMatchRepository()
	)
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer pool.Close()
		if err := db.EnsureSchema(ctx, pool); err != nil {
			logger.Fatal("db schema", zap.Error(err))
		}
		profileRepo = repository.NewPgProfileRepository(pool)
		matchRepo = repository.NewPgMatchRepository(pool)
	} else {
		logger.Warn("database not configured, using in-memory repositories")
	}

	perMinute := cfg.RateLimitPerMinute
	var (
		cache   = service.NewMemoryResultCache(cfg.ResultCacheSize, cfg.ResultCacheTTL())
		limiter service.RateLimiter
	)
	if perMinute > 0 {
		limiter = service.NewMemoryRateLimiter(time.Minute, perMinute)
	}
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			cache = service.NewTieredResultCache(cache, service.NewRedisResultCache(redisClient, cfg.ResultCacheTTL()))
			if perMinute > 0 {
				limiter = service.NewRedisRateLimiter(redisClient, time.Minute, perMinute)
			}
		}
		cancel()
	}

	var (
		observer       service.Observer
		metricsHandler http.Handler
	)
	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		obs, err := service.NewPrometheusObserver("", reg)
		if err != nil {
			logger.Warn("metrics init failed", zap.Error(err))
		} else {
			observer = obs
			metricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
		}
	}

	jwtSvc := service.NewJWTService(cfg.JWTSecret, cfg.JWTAccessTTL(), cfg.JWTIssuer)
	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured")
	}

	matchSvc := service.NewMatchService(logger, profileRepo, matchRepo, cache, observer, service.MatchOptions{
		Workers:        cfg.MatchWorkers,
		CandidateLimit: cfg.MatchCandidateLimit,
	})
	router := apihttp.NewRouter(logger,
		apihttp.RouterDeps{JWT: jwtSvc, Limiter: limiter, Metrics: metricsHandler},
		apihttp.NewCompatibilityHandler(logger, matchSvc, defaultLocale),
		apihttp.NewProfileHandler(logger, matchSvc, defaultLocale),
		apihttp.NewMatchHandler(logger, matchSvc, defaultLocale),
	)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Warn("server shutdown", zap.Error(err))
		}
	}()

	logger.Info("starting server", zap.String("port", cfg.HTTPPort), zap.String("default_locale", string(defaultLocale)))

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server error", zap.Error(err))
	}
}
