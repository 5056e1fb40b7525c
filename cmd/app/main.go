package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"marketplace-core/config"
	pgStorage "marketplace-core/internal/adapter/storage/postgres"
	redisStorage "marketplace-core/internal/adapter/storage/redis"
	"marketplace-core/internal/core/domain"
	"marketplace-core/internal/jobs"
	"marketplace-core/internal/service"
	"marketplace-core/pkg/logger"

	"github.com/google/uuid"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	log.Info().Msg("Starting marketplace core")

	platformWalletID, err := uuid.Parse(cfg.Platform.WalletID)
	if err != nil {
		log.Fatal().Err(err).Msg("platform.wallet_id must be a valid UUID")
	}

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// Initialize repositories
	userRepo := pgStorage.NewUserRepo(pool)
	productRepo := pgStorage.NewProductRepo(pool)
	walletRepo := pgStorage.NewWalletRepo(pool)
	txRepo := pgStorage.NewTransactionRepo(pool)
	orderRepo := pgStorage.NewOrderRepo(pool)
	deliveryRepo := pgStorage.NewDeliveryRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	locationStore := redisStorage.NewDriverLocationStore(rdb, cfg.Delivery.LiveLocationTTL)

	// The commission engine is fixed at startup from the single active
	// configured rate.
	var rate *domain.Commission
	if active := cfg.Commission.Active(); active != nil {
		rate = &domain.Commission{Name: active.Name, RateBps: active.RateBps(), Active: true}
		log.Info().Str("name", rate.Name).Int64("rate_bps", rate.RateBps).Msg("commission rate active")
	} else {
		log.Warn().Msg("no active commission rate, merchants keep full revenue")
	}
	engine := service.NewCommissionEngine(rate)

	geocoder := service.NewOfflineGeocoder(
		cfg.Delivery.GeocodeBaseLat, cfg.Delivery.GeocodeBaseLng,
		cfg.Delivery.BaseFee, cfg.Delivery.PerKmRate,
	)

	// Initialize business services
	inventorySvc := service.NewInventoryService(productRepo, transactor, logger.Component(log, "inventory"))
	walletSvc := service.NewWalletService(
		walletRepo, txRepo, orderRepo, productRepo,
		engine, transactor, platformWalletID, logger.Component(log, "wallet"),
	)
	orderSvc := service.NewOrderService(
		orderRepo, productRepo, walletRepo,
		inventorySvc, walletSvc, logger.Component(log, "order"),
	)
	deliverySvc := service.NewDeliveryService(
		deliveryRepo, orderRepo, userRepo, productRepo,
		orderSvc, walletSvc, geocoder, locationStore,
		transactor, logger.Component(log, "delivery"),
	)
	// Verify the platform wallet exists before accepting work.
	if wallet, err := walletRepo.GetByID(ctx, platformWalletID); err != nil {
		log.Fatal().Err(err).Msg("Failed to look up platform wallet")
	} else if wallet == nil {
		log.Fatal().Str("wallet_id", platformWalletID.String()).Msg("Platform wallet not found")
	}

	// Start background jobs
	jobManager := jobs.NewJobManager(deliveryRepo, deliverySvc, cfg.Jobs, log)
	if err := jobManager.StartAll(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start background jobs")
	}
	defer jobManager.StopAll()

	log.Info().Msg("Marketplace core running")

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down")
}
