package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	viewv1 "github.com/fekuna/omnipos-retail-view/api/view/v1"
	"github.com/fekuna/omnipos-retail-view/config"
	"github.com/fekuna/omnipos-retail-view/internal/backend"
	"github.com/fekuna/omnipos-retail-view/internal/broker"
	"github.com/fekuna/omnipos-retail-view/internal/cache"
	"github.com/fekuna/omnipos-retail-view/internal/database/postgres"
	"github.com/fekuna/omnipos-retail-view/internal/inventory"
	"github.com/fekuna/omnipos-retail-view/internal/listener"
	"github.com/fekuna/omnipos-retail-view/internal/logger"
	"github.com/fekuna/omnipos-retail-view/internal/middleware"
	"github.com/fekuna/omnipos-retail-view/internal/model"
	"github.com/fekuna/omnipos-retail-view/internal/product"

	dashH "github.com/fekuna/omnipos-retail-view/internal/dashboard/handler"
	dashUCPkg "github.com/fekuna/omnipos-retail-view/internal/dashboard/usecase"

	invH "github.com/fekuna/omnipos-retail-view/internal/inventory/handler"
	invRepoPkg "github.com/fekuna/omnipos-retail-view/internal/inventory/repository"
	invUCPkg "github.com/fekuna/omnipos-retail-view/internal/inventory/usecase"

	checkH "github.com/fekuna/omnipos-retail-view/internal/inventorycheck/handler"
	checkUCPkg "github.com/fekuna/omnipos-retail-view/internal/inventorycheck/usecase"

	notifH "github.com/fekuna/omnipos-retail-view/internal/notification/handler"
	notifRepoPkg "github.com/fekuna/omnipos-retail-view/internal/notification/repository"
	notifUCPkg "github.com/fekuna/omnipos-retail-view/internal/notification/usecase"

	prodH "github.com/fekuna/omnipos-retail-view/internal/product/handler"
	prodRepoPkg "github.com/fekuna/omnipos-retail-view/internal/product/repository"
	prodUCPkg "github.com/fekuna/omnipos-retail-view/internal/product/usecase"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

func main() {
	// 1. Load Configuration
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}

	if cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = "console"
		logConfig.Level = "debug"
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Initialize Backend Client
	backendClient := backend.NewClient(&backend.Config{
		BaseURL:  cfg.Backend.BaseURL,
		Token:    cfg.Backend.Token,
		Timeout:  time.Duration(cfg.Backend.TimeoutSeconds) * time.Second,
		RetryMax: cfg.Backend.RetryMax,
		DataPath: cfg.Backend.DataPath,
	}, appLogger)

	// 4. Initialize Repositories
	var (
		prodRepo product.Repository
		invRepo  inventory.Repository
	)
	switch cfg.Source.Driver {
	case "postgres":
		db, err := postgres.NewPostgres(&postgres.Config{
			Host:            cfg.Postgres.Host,
			Port:            cfg.Postgres.Port,
			User:            cfg.Postgres.User,
			Password:        cfg.Postgres.Password,
			DBName:          cfg.Postgres.DBName,
			SSLMode:         cfg.Postgres.SSLMode,
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
			ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
		})
		if err != nil {
			appLogger.Fatal("Could not connect to database", zap.Error(err))
		}
		defer db.Close()
		appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

		prodRepo = prodRepoPkg.NewPGRepository(db)
		invRepo = invRepoPkg.NewPGRepository(db)
	default:
		prodRepo = prodRepoPkg.NewRESTRepository(backendClient, cfg.Backend.Endpoints.Products)
		invRepo = invRepoPkg.NewRESTRepository(backendClient, cfg.Backend.Endpoints.Inventory)
		appLogger.Info("Reading collections from backend", zap.String("base_url", cfg.Backend.BaseURL))
	}
	notifRepo := notifRepoPkg.NewRESTRepository(backendClient, cfg.Backend.Endpoints.Notifications)

	// 5. Initialize Redis
	var store cache.Store
	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Warn("Could not connect to Redis, collections are fetched on every load", zap.Error(err))
	} else {
		defer redisClient.Close()
		store = redisClient
		appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
	}
	ttl := time.Duration(cfg.Redis.CacheTTLSeconds) * time.Second

	// 6. Initialize UseCases
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, cache.NewCollection[model.Product]("products", store, ttl, appLogger), appLogger)
	invUC := invUCPkg.NewInventoryUseCase(invRepo, cache.NewCollection[model.InventoryLine]("inventory", store, ttl, appLogger), appLogger)
	notifUC := notifUCPkg.NewNotificationUseCase(notifRepo, cache.NewCollection[model.Notification]("notifications", store, ttl, appLogger), appLogger)
	checkUC := checkUCPkg.NewCheckUseCase(invUC, appLogger)
	dashUC := dashUCPkg.NewDashboardUseCase(prodUC, notifUC, checkUC)

	// 7. Initialize Kafka Listener
	kafkaConsumer := broker.NewKafkaConsumer(&broker.KafkaConfig{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
		GroupID: cfg.Kafka.GroupID,
	})
	defer kafkaConsumer.Close()
	appLogger.Info("Connected to Kafka Consumer", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))

	eventListener := listener.New(kafkaConsumer, prodUC, invUC, notifUC, appLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go eventListener.Start(ctx)

	// 8. Initialize Handlers
	prodHandler := prodH.NewProductHandler(prodUC, time.Duration(cfg.View.SearchDebounceMS)*time.Millisecond, appLogger)
	invHandler := invH.NewInventoryHandler(invUC, appLogger)
	notifHandler := notifH.NewNotificationHandler(notifUC, appLogger)
	checkHandler := checkH.NewCheckHandler(checkUC, appLogger)
	dashHandler := dashH.NewDashboardHandler(dashUC, appLogger)

	// 9. Start gRPC Server
	port := cfg.Server.GRPCPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	lis, err := net.Listen("tcp", port)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(middleware.ContextInterceptor(appLogger)),
		grpc.StreamInterceptor(middleware.StreamLoggingInterceptor(appLogger)),
	)

	// Register Services
	viewv1.RegisterProductViewServiceServer(grpcServer, prodHandler)
	viewv1.RegisterInventoryViewServiceServer(grpcServer, invHandler)
	viewv1.RegisterNotificationViewServiceServer(grpcServer, notifHandler)
	viewv1.RegisterInventoryCheckServiceServer(grpcServer, checkHandler)
	viewv1.RegisterDashboardServiceServer(grpcServer, dashHandler)

	// Register Reflection
	reflection.Register(grpcServer)

	appLogger.Info("Starting gRPC server", zap.String("port", port))

	// Graceful Shutdown
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	cancel()
	grpcServer.GracefulStop()
	appLogger.Info("Server stopped")
}
