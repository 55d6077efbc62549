package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/codelens/codelens/internal/cache"
	"github.com/codelens/codelens/internal/config"
	"github.com/codelens/codelens/internal/handler"
	"github.com/codelens/codelens/internal/metrics"
	"github.com/codelens/codelens/internal/service"
	"github.com/codelens/codelens/internal/web"

	_ "github.com/codelens/codelens/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Code Analyzer API
// @version 1.0
// @description Uploads one source file, runs an LLM architecture analysis and returns a segmented markdown/mermaid report with a standalone HTML export.
// @BasePath /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := log.Default()

	a := handler.NewAnalyzeHandler(nil, cfg.Server.MaxUploadBytes)
	if cfg.OpenAI.Enabled() {
		analyzeService := service.NewAnalyzeService(
			logger,
			openai.NewClient(
				option.WithAPIKey(cfg.OpenAI.APIKey),
				option.WithBaseURL(cfg.OpenAI.BaseURL),
			), cfg.OpenAI)

		if cfg.CacheEnable {
			redisCache := cache.NewRedisCache(
				cfg.RedisConfig.Addr,
				cfg.RedisConfig.Password,
				cfg.RedisConfig.DB,
				cfg.RedisConfig.TTL,
			)
			analyzeService.SetCacheClient(redisCache)
			logger.Println("set redis as cache")
		}
		a = handler.NewAnalyzeHandler(analyzeService, cfg.Server.MaxUploadBytes)
	} else {
		logger.Println("OPENAI_API_KEY is not set, analysis disabled")
	}

	index := web.NewIndexHandler(logger, cfg.OpenAI.Enabled())

	r := chi.NewRouter()
	r.Use([]func(http.Handler) http.Handler{
		middleware.Logger,
		middleware.Recoverer,
		middleware.Throttle(cfg.Server.ThrottleLimit),
		middleware.Timeout(cfg.Server.Timeout),
		metrics.Middleware,
	}...)

	r.Get("/", index.Index)
	r.Post("/api/analyze", a.Analyze)
	r.Get("/healthz", handler.Health)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		logger.Printf("server started :%s\n", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("listen error: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Println("server stopped")
}
