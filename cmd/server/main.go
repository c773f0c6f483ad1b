package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/lusotech/storefront/config"
	"github.com/lusotech/storefront/internal/auth"
	"github.com/lusotech/storefront/internal/cache"
	"github.com/lusotech/storefront/internal/cart"
	"github.com/lusotech/storefront/internal/database"
	"github.com/lusotech/storefront/internal/logger"
	"go.uber.org/zap"

	cartH "github.com/lusotech/storefront/internal/cart/handler"

	catH "github.com/lusotech/storefront/internal/category/handler"
	catRepoPkg "github.com/lusotech/storefront/internal/category/repository"
	catUCPkg "github.com/lusotech/storefront/internal/category/usecase"

	prodH "github.com/lusotech/storefront/internal/product/handler"
	prodRepoPkg "github.com/lusotech/storefront/internal/product/repository"
	prodUCPkg "github.com/lusotech/storefront/internal/product/usecase"

	slideH "github.com/lusotech/storefront/internal/slide/handler"
	slideRepoPkg "github.com/lusotech/storefront/internal/slide/repository"
	slideUCPkg "github.com/lusotech/storefront/internal/slide/usecase"

	userH "github.com/lusotech/storefront/internal/user/handler"
	userRepoPkg "github.com/lusotech/storefront/internal/user/repository"
	userUCPkg "github.com/lusotech/storefront/internal/user/usecase"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.Config{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}

	if cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
	db, err := database.NewSQLite(&database.Config{
		Path:         cfg.SQLite.Path,
		MaxOpenConns: cfg.SQLite.MaxOpenConns,
		MaxIdleConns: cfg.SQLite.MaxIdleConns,
	})
	if err != nil {
		appLogger.Fatal("Could not open database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to SQLite database", zap.String("path", cfg.SQLite.Path))

	// 4. Initialize Redis (optional; catalog caching and redis-backed carts)
	var redisClient *cache.RedisClient
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedisClient(&cache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			appLogger.Warn("Could not connect to Redis, continuing without cache", zap.Error(err))
			redisClient = nil
		} else {
			defer redisClient.Close()
			appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
		}
	}

	// 5. Initialize Repositories
	catRepo := catRepoPkg.NewSQLiteRepository(db)
	prodRepo := prodRepoPkg.NewSQLiteRepository(db)
	slideRepo := slideRepoPkg.NewSQLiteRepository(db)
	userRepo := userRepoPkg.NewSQLiteRepository(db)

	// 6. Initialize UseCases
	catUC := catUCPkg.NewCategoryUseCase(catRepo, appLogger)
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, catRepo, redisClient, appLogger)
	slideUC := slideUCPkg.NewSlideUseCase(slideRepo, appLogger)
	userUC := userUCPkg.NewUserUseCase(userRepo, cfg.Auth.SecretKey, time.Duration(cfg.Auth.TokenTTL)*time.Second, appLogger)

	// 6.5 Seed initial admin account
	if err := userUC.EnsureAdmin(context.Background(), cfg.Auth.AdminEmail, cfg.Auth.AdminPassword); err != nil {
		appLogger.Fatal("Could not seed admin account", zap.Error(err))
	}

	// 7. Cart storage: redis when available, JSON files otherwise
	var cartStorage cart.Storage
	if redisClient != nil {
		cartStorage = cart.NewRedisStorage(redisClient.Client, time.Duration(cfg.Cart.SessionTTL)*time.Second)
	} else {
		cartStorage, err = cart.NewFileStorage(cfg.Cart.Dir)
		if err != nil {
			appLogger.Fatal("Could not initialize cart storage", zap.Error(err))
		}
	}
	cartManager := cart.NewManager(cartStorage, appLogger)

	// 8. Initialize Handlers
	guard := func(next http.Handler) http.Handler {
		return auth.RequireAuth(cfg.Auth.SecretKey, next)
	}
	superGuard := func(next http.Handler) http.Handler {
		return auth.RequireSuperadmin(cfg.Auth.SecretKey, next)
	}

	mux := http.NewServeMux()
	prodH.NewProductHandler(prodUC, appLogger).Register(mux, guard)
	catH.NewCategoryHandler(catUC, appLogger).Register(mux, guard)
	slideH.NewSlideHandler(slideUC, appLogger).Register(mux, guard)
	userH.NewUserHandler(userUC, appLogger).Register(mux, guard, superGuard)
	cartH.NewCartHandler(cartManager, prodUC, cfg.WhatsApp.BaseURL, cfg.WhatsApp.PhoneNumber, cfg.Cart.SessionTTL, appLogger).Register(mux)

	// 9. Start HTTP Server
	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	server := &http.Server{
		Addr:         port,
		Handler:      mux,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	appLogger.Info("Starting HTTP server", zap.String("port", port))

	// Graceful Shutdown
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("forced shutdown", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
