package config

import (
	"fmt"
	"os"
	"time"

	"cloudmart_service/internal/repository"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	CosmosEndpoint string        `envconfig:"COSMOS_ENDPOINT"`
	CosmosKey      string        `envconfig:"COSMOS_KEY"`
	HTTPPort       string        `envconfig:"HTTP_PORT"             default:":8080"`
	GrpcPort       string        `envconfig:"GRPC_PORT"             default:":50051"`
	LogLevel       string        `envconfig:"LOG_LEVEL"             default:"info"`
	ConnectTimeout time.Duration `envconfig:"STORE_CONNECT_TIMEOUT" default:"10s"` // bound on the one-time remote check
}

// LoadConfig reads an optional .env file and then the environment.
func LoadConfig(logger *logrus.Logger) (*Config, error) {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		logger.Warnf("Error loading .env file (but continuing): %v", err)
	} else if err == nil {
		logger.Info("Loaded configuration from .env file")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process configuration from environment variables: %w", err)
	}

	logger.Infof("Configuration loaded: HTTP Port=%s, GRPC Port=%s, LogLevel=%s", cfg.HTTPPort, cfg.GrpcPort, cfg.LogLevel)
	if cfg.RemoteSettings().Configured() {
		logger.Info("Configuration loaded: remote store endpoint and key are set")
	}
	return &cfg, nil
}

func (c *Config) RemoteSettings() repository.RemoteSettings {
	return repository.RemoteSettings{
		Endpoint: c.CosmosEndpoint,
		Key:      c.CosmosKey,
	}
}
