package repository

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"cloudmart_service/internal/domain"
	"cloudmart_service/pkg/db"

	"github.com/sirupsen/logrus"
)

// RemoteSettings are the two connection settings that select the remote store.
type RemoteSettings struct {
	Endpoint string
	Key      string
}

func (s RemoteSettings) Configured() bool {
	return s.Endpoint != "" && s.Key != ""
}

// RemoteConnector builds a remote store from the settings or fails.
type RemoteConnector func(ctx context.Context, settings RemoteSettings, logger *logrus.Logger) (domain.Store, error)

// NewStore picks the backend once. When both settings are present it tries connect; any failure
// there is logged and the process continues on a local store seeded with SeedProducts.
func NewStore(ctx context.Context, settings RemoteSettings, connect RemoteConnector, logger *logrus.Logger) domain.Store {
	if !settings.Configured() {
		logger.Info("Remote store not configured, using local store")
		return NewMemoryStore(SeedProducts(), logger)
	}

	store, err := connect(ctx, settings, logger)
	if err != nil {
		logger.Warnf("Remote store unavailable, falling back to local store: %v", err)
		return NewMemoryStore(SeedProducts(), logger)
	}

	logger.Infof("Using remote store (database %s)", DatabaseName)
	return store
}

// ConnectRemote chooses the driver by the endpoint scheme: https for Cosmos DB, postgres for Postgres.
func ConnectRemote(ctx context.Context, settings RemoteSettings, logger *logrus.Logger) (domain.Store, error) {
	u, err := url.Parse(settings.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint: %w", err)
	}

	switch strings.ToLower(u.Scheme) {
	case "https":
		return connectCosmos(ctx, settings, logger)
	case "postgres", "postgresql":
		return connectPostgres(ctx, settings, logger)
	default:
		return nil, fmt.Errorf("unsupported endpoint scheme %q", u.Scheme)
	}
}

func connectCosmos(ctx context.Context, settings RemoteSettings, logger *logrus.Logger) (domain.Store, error) {
	database, err := db.ConnectCosmos(ctx, settings.Endpoint, settings.Key, DatabaseName)
	if err != nil {
		return nil, err
	}

	collections := make([]Collection, 0, 3)
	for _, name := range []string{ProductsCollection, CartCollection, OrdersCollection} {
		c, err := NewCosmosCollection(database, name, logger)
		if err != nil {
			return nil, err
		}
		collections = append(collections, c)
	}

	logger.Info("Cosmos DB connection established.")
	return NewDocumentStore(collections[0], collections[1], collections[2], nil, logger), nil
}

func connectPostgres(ctx context.Context, settings RemoteSettings, logger *logrus.Logger) (domain.Store, error) {
	database, err := db.ConnectPostgres(ctx, settings.Endpoint, settings.Key)
	if err != nil {
		return nil, err
	}

	logger.Info("Database connection established.")
	return NewDocumentStore(
		NewPostgresCollection(database, DatabaseName, ProductsCollection, logger),
		NewPostgresCollection(database, DatabaseName, CartCollection, logger),
		NewPostgresCollection(database, DatabaseName, OrdersCollection, logger),
		database,
		logger,
	), nil
}
