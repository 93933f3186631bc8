package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/muhammadheryan/rental-shop/cmd/config"
	"github.com/muhammadheryan/rental-shop/thirdparty/rabbitmq"
	"github.com/muhammadheryan/rental-shop/utils/logger"
	"go.uber.org/zap"
)

// Consumes pickup expiration events and asks the API to cancel stale reservations.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	if cfg.Internal.APIKey == "" {
		logger.Fatal("INTERNAL_API_KEY is required")
	}

	consumer, err := rabbitmq.NewConsumer(
		cfg.RabbitMQ.Host,
		cfg.RabbitMQ.Port,
		cfg.RabbitMQ.User,
		cfg.RabbitMQ.Password,
		cfg.Internal.APIURL,
		cfg.Internal.APIKey,
	)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("failed start consumer", zap.Error(err))
	}
	logger.Info("pickup expiration consumer running", zap.String("api_url", cfg.Internal.APIURL))

	<-ctx.Done()
	logger.Info("pickup expiration consumer stopped")
}
