package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/bookingpay/config"
	"github.com/Domenick1991/bookingpay/internal/bootstrap"
	"github.com/Domenick1991/bookingpay/internal/cache"
	"github.com/Domenick1991/bookingpay/internal/gateway"
	"github.com/Domenick1991/bookingpay/internal/kafka"
	"github.com/Domenick1991/bookingpay/internal/repository"
	"github.com/Domenick1991/bookingpay/internal/service/billing"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Billing.CostCacheTTL)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	costRepo := repository.NewCostRepository(pool)
	paymentClient := gateway.NewPaymentClient(cfg.Gateways.PaymentURL, cfg.Gateways.Timeout())
	taxClient := gateway.NewTaxClient(cfg.Gateways.TaxURL, cfg.Gateways.Timeout())

	opts := []billing.BillingServiceOption{
		billing.WithCostCache(redisCache),
		billing.WithEvents(producer, cfg.Kafka.PaymentEventsTopic),
		billing.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	}
	if cfg.Billing.FraudCheckEnabled {
		opts = append(opts, billing.WithFraudCheck(gateway.NewFraudClient(cfg.Gateways.FraudURL, cfg.Gateways.Timeout())))
	}

	billingService := billing.NewBillingService(paymentClient, taxClient, costRepo, opts...)

	if err := bootstrap.Run(ctx, cfg, billingService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
