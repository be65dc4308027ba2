package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloudmart_service/config"
	"cloudmart_service/internal/delivery"
	grpcHandler "cloudmart_service/internal/delivery/grpc"
	"cloudmart_service/internal/repository"
	"cloudmart_service/internal/usecase"
	"cloudmart_service/pkg/logger"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

func main() {
	log := logger.New(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig(log)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log = logger.New(cfg.LogLevel)
	log.Info("Starting Cloudmart Service...")

	// --- Store selection (once per process) ---
	connectCtx, cancelConnect := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	store := repository.NewStore(connectCtx, cfg.RemoteSettings(), repository.ConnectRemote, log)
	cancelConnect()
	defer func() {
		if err := store.Close(); err != nil {
			log.Errorf("Error closing store: %v", err)
		}
	}()
	log.Infof("Store mode: %s", store.Mode())

	// --- Dependency Injection ---
	catalogUseCase := usecase.NewCatalogUseCase(store, log)
	cartUseCase := usecase.NewCartUseCase(store, log)
	orderUseCase := usecase.NewOrderUseCase(store, log)
	log.Info("Use cases initialized.")

	gin.SetMode(gin.ReleaseMode)
	router := delivery.NewRouter(store.Mode(), log,
		delivery.NewProductHandler(catalogUseCase, log),
		delivery.NewCartHandler(cartUseCase, log),
		delivery.NewOrderHandler(orderUseCase, log),
	)
	httpServer := &http.Server{
		Addr:              cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	grpcServer := grpc.NewServer()
	grpcHandler.RegisterStoreServiceServer(grpcServer, grpcHandler.NewStoreHandler(catalogUseCase, cartUseCase, orderUseCase, log))
	reflection.Register(grpcServer)
	log.Info("gRPC reflection service registered")

	lis, err := net.Listen("tcp", cfg.GrpcPort)
	if err != nil {
		log.Fatalf("Failed to listen on port %s: %v", cfg.GrpcPort, err)
	}

	go func() {
		log.Infof("gRPC server listening on %s", cfg.GrpcPort)
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			log.Fatalf("Failed to serve gRPC: %v", err)
		}
	}()

	go func() {
		log.Infof("Starting HTTP server on port %s", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Warn("Shutdown signal received...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf("HTTP server shutdown error: %v", err)
	}
	grpcServer.GracefulStop()
	log.Info("Cloudmart Service shut down gracefully.")
}
