package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	supabase "github.com/nedpals/supabase-go"
	"go.uber.org/zap"

	"github.com/careerspark/jobspark-backend/internal/auth"
	"github.com/careerspark/jobspark-backend/internal/cache"
	"github.com/careerspark/jobspark-backend/internal/config"
	"github.com/careerspark/jobspark-backend/internal/handlers"
	"github.com/careerspark/jobspark-backend/internal/logger"
	"github.com/careerspark/jobspark-backend/internal/services"
	"github.com/careerspark/jobspark-backend/internal/storage"
)

func main() {
	// 1. Environment & Config
	if err := godotenv.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load .env file: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("starting jobspark backend",
		zap.String("port", cfg.Port),
		zap.String("model", cfg.GeminiModel),
	)

	// 2. Supabase client (saved-jobs collection + auth boundary)
	sb := supabase.CreateClient(cfg.SupabaseURL, cfg.SupabaseKey)
	savedJobStore := storage.NewSupabaseStore(sb)
	fallbackStore := storage.NewFallbackStore(cfg.FallbackPath)
	authService := auth.NewService(sb, log)

	// 3. Optional Redis search cache
	var jobCache *cache.Cache
	if cfg.RedisAddr != "" {
		jobCache, err = cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, log)
		if err != nil {
			log.Warn("search cache disabled", zap.Error(err))
			jobCache = nil
		} else {
			defer jobCache.Close()
		}
	} else {
		log.Info("REDIS_ADDR not set, search cache disabled")
	}

	// 4. Core services
	ctx := context.Background()
	llmService, err := services.NewLLMService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, log)
	if err != nil {
		log.Fatal("failed to create Gemini client", zap.Error(err))
	}
	savedJobService := services.NewSavedJobService(savedJobStore, fallbackStore, log)

	// 5. Handlers
	jobHandler := handlers.NewJobHandler(llmService, savedJobService, jobCache, cfg.LLMTimeout, cfg.FeedJobCount, cfg.SearchJobCount, log)
	savedJobHandler := handlers.NewSavedJobHandler(savedJobService)
	authHandler := handlers.NewAuthHandler(authService, log)

	// 6. Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 7. Routes
	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)
		api.POST("/auth/login", authHandler.Login)

		protected := api.Group("/")
		protected.Use(authService.RequireUser())
		{
			protected.POST("/auth/logout", authHandler.Logout)
			protected.GET("/auth/me", authHandler.Me)

			protected.GET("/jobs/feed", jobHandler.Feed)
			protected.POST("/jobs/search", jobHandler.Search)

			protected.GET("/saved-jobs", savedJobHandler.List)
			protected.POST("/saved-jobs/toggle", savedJobHandler.Toggle)
		}
	}

	// 8. Serve with graceful shutdown
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}

	log.Info("server stopped")
}
