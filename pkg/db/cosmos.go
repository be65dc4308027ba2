package db

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"
)

// ConnectCosmos resolves the named database on a Cosmos DB account and reads its properties once,
// so an unreachable account or a missing database is reported here rather than on first use.
func ConnectCosmos(ctx context.Context, endpoint, key, database string) (*azcosmos.DatabaseClient, error) {
	cred, err := azcosmos.NewKeyCredential(key)
	if err != nil {
		return nil, fmt.Errorf("invalid cosmos key: %w", err)
	}

	client, err := azcosmos.NewClientWithKey(endpoint, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cosmos client: %w", err)
	}

	dbClient, err := client.NewDatabase(database)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve database %s: %w", database, err)
	}

	if _, err := dbClient.Read(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to read database %s: %w", database, err)
	}

	return dbClient, nil
}
