package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	availabilityapp "github.com/muhammadheryan/rental-shop/application/availability"
	productapp "github.com/muhammadheryan/rental-shop/application/product"
	rentalapp "github.com/muhammadheryan/rental-shop/application/rental"
	sessionapp "github.com/muhammadheryan/rental-shop/application/session"
	subscriptionapp "github.com/muhammadheryan/rental-shop/application/subscription"
	"github.com/muhammadheryan/rental-shop/cmd/config"
	redisclient "github.com/muhammadheryan/rental-shop/cmd/redis"
	_ "github.com/muhammadheryan/rental-shop/docs"
	lockRepo "github.com/muhammadheryan/rental-shop/repository/lock"
	orderRepo "github.com/muhammadheryan/rental-shop/repository/order"
	outletRepo "github.com/muhammadheryan/rental-shop/repository/outlet"
	productRepo "github.com/muhammadheryan/rental-shop/repository/product"
	redisRepo "github.com/muhammadheryan/rental-shop/repository/redis"
	subscriptionRepo "github.com/muhammadheryan/rental-shop/repository/subscription"
	txRepo "github.com/muhammadheryan/rental-shop/repository/tx"
	"github.com/muhammadheryan/rental-shop/thirdparty/rabbitmq"
	"github.com/muhammadheryan/rental-shop/transport"
	"github.com/muhammadheryan/rental-shop/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// @title RENTAL SHOP API
// @version 1.0
// @description Rental availability, bookings and subscription billing
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Events are best effort; the API keeps serving without a broker
	var publisher rabbitmq.EventPublisher
	p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("rabbitmq unavailable, events disabled", zap.Error(err))
	} else {
		publisher = p
		defer p.Close()
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)
	OutletRepo := outletRepo.NewOutletRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)
	SubscriptionRepo := subscriptionRepo.NewSubscriptionRepository(db)
	RedisRepo := redisRepo.NewRepository()
	Locker := lockRepo.NewLocker(cfg.Rental.LockRetryBackoff, cfg.Rental.LockMaxRetries)

	// Initialize application layers
	SessionApp := sessionapp.NewSessionApp(cfg, RedisRepo)
	ProductApp := productapp.NewProductApp(ProductRepo)
	AvailabilityApp := availabilityapp.NewAvailabilityApp(ProductRepo, OutletRepo, OrderRepo, time.Now)
	RentalApp := rentalapp.NewRentalApp(cfg, TxRepo, OrderRepo, OutletRepo, Locker, publisher, time.Now)
	SubscriptionApp := subscriptionapp.NewSubscriptionApp(TxRepo, SubscriptionRepo, publisher, time.Now)

	httpTransport := transport.NewTransport(&transport.RestHandler{
		ProductApp:      ProductApp,
		AvailabilityApp: AvailabilityApp,
		RentalApp:       RentalApp,
		SubscriptionApp: SubscriptionApp,
	}, transport.Options{
		SessionApp:     SessionApp,
		InternalAPIKey: cfg.Internal.APIKey,
		Limiter:        rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst),
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("HTTP server stopped")
}
