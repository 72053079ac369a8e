package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	gormlogger "gorm.io/gorm/logger"

	"rms/internal/auth"
	"rms/internal/cache"
	"rms/internal/config"
	"rms/internal/db"
	"rms/internal/handler"
	"rms/internal/model"
	"rms/internal/repository"
	"rms/internal/router"
	"rms/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title Restaurant Management API
// @version 1.0
// @description Restaurants, menus, tables, bookings, orders, feedback and incomes with JWT authentication.
// @host localhost:5500
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warnf("unknown LOG_LEVEL %q, using info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	gormLevel := gormlogger.Warn
	if level >= logrus.DebugLevel {
		gormLevel = gormlogger.Info
	}

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN, gormLevel)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if cfg.ResetDB {
		log.Warn("RESET_DB=true detected, dropping all tables")
	}
	if err := db.Migrate(gormDB, cfg.ResetDB); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	if err := cacheClient.Ping(pingCtx); err != nil {
		log.WithError(err).Warn("redis unavailable, running without cache and token revocation")
	}
	cancel()

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	restaurantRepo := repository.NewRestaurantRepository(gormDB)
	menuRepo := repository.NewChildRepository[model.MenuItem](gormDB)
	tableRepo := repository.NewChildRepository[model.Table](gormDB)
	bookingRepo := repository.NewBookingRepository(gormDB)
	orderRepo := repository.NewChildRepository[model.Order](gormDB)
	feedbackRepo := repository.NewChildRepository[model.Feedback](gormDB)
	incomeRepo := repository.NewChildRepository[model.Income](gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, auth.WithExpiry(cfg.TokenTTL))
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	restaurantService := service.NewRestaurantService(restaurantRepo, cacheClient)
	menuService := service.NewChildService[model.MenuItem]("menu item", restaurantRepo, menuRepo, cacheClient)
	tableService := service.NewChildService[model.Table]("table", restaurantRepo, tableRepo, cacheClient)
	bookingService := service.NewBookingService(restaurantRepo, bookingRepo, cacheClient)
	orderService := service.NewChildService[model.Order]("order", restaurantRepo, orderRepo, cacheClient)
	feedbackService := service.NewChildService[model.Feedback]("feedback", restaurantRepo, feedbackRepo, cacheClient)
	incomeService := service.NewChildService[model.Income]("income", restaurantRepo, incomeRepo, cacheClient)

	e := echo.New()
	e.HideBanner = true

	// Register routes
	router.Register(e, cfg, log, router.Handlers{
		Health: handler.NewHealthHandler(cfg.ServerPort, func(ctx context.Context) error {
			return db.Ping(ctx, gormDB)
		}),
		Auth:        handler.NewAuthHandler(authService),
		Restaurants: handler.NewRestaurantHandler(restaurantService),
		Menu:        handler.NewMenuHandler(menuService),
		Tables:      handler.NewTableHandler(tableService),
		Bookings:    handler.NewBookingHandler(bookingService),
		Orders:      handler.NewOrderHandler(orderService),
		Feedback:    handler.NewFeedbackHandler(feedbackService),
		Incomes:     handler.NewIncomeHandler(incomeService),
		JWTService:  jwtService,
		TokenStore:  tokenStore,
	})

	log.Infof("Swagger documentation available at: %s", swaggerURL(cfg))

	go func() {
		addr := ":" + cfg.ServerPort
		log.WithField("addr", addr).Info("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.WithError(err).Error("server shutdown")
	}
	if err := db.Close(gormDB); err != nil {
		log.WithError(err).Error("database close")
	}
	if err := cacheClient.Close(); err != nil {
		log.WithError(err).Error("redis close")
	}
}

func swaggerURL(cfg *config.Config) string {
	host := cfg.SwaggerHost
	if host == "" {
		host = "localhost:" + cfg.ServerPort
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return host + "/swagger/index.html"
}
