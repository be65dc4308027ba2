package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"cloudmart_service/internal/domain"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"
	"github.com/sirupsen/logrus"
)

// cosmosCollection is a Cosmos DB container partitioned on /id.
type cosmosCollection struct {
	container *azcosmos.ContainerClient
	name      string
	log       *logrus.Logger
}

func NewCosmosCollection(db *azcosmos.DatabaseClient, name string, logger *logrus.Logger) (Collection, error) {
	container, err := db.NewContainer(name)
	if err != nil {
		return nil, fmt.Errorf("could not resolve container %s: %w", name, err)
	}
	return &cosmosCollection{container: container, name: name, log: logger}, nil
}

func (c *cosmosCollection) Name() string { return c.name }

func (c *cosmosCollection) ReadAll(ctx context.Context) ([][]byte, error) {
	return c.query(ctx, readAllDocumentsQuery, nil)
}

func (c *cosmosCollection) FindByID(ctx context.Context, id string) ([][]byte, error) {
	return c.query(ctx, productByIDQuery, []azcosmos.QueryParameter{{Name: "@id", Value: id}})
}

func (c *cosmosCollection) Create(ctx context.Context, id string, doc []byte) error {
	_, err := c.container.CreateItem(ctx, azcosmos.NewPartitionKeyString(id), doc, nil)
	if err != nil {
		return classifyCosmosError(c.name, id, err)
	}
	c.log.Debugf("Created document %q in container %s", id, c.name)
	return nil
}

func (c *cosmosCollection) Delete(ctx context.Context, id string) error {
	_, err := c.container.DeleteItem(ctx, azcosmos.NewPartitionKeyString(id), id, nil)
	if err != nil {
		return classifyCosmosError(c.name, id, err)
	}
	c.log.Debugf("Deleted document %q from container %s", id, c.name)
	return nil
}

// query runs across all partitions.
func (c *cosmosCollection) query(ctx context.Context, query string, params []azcosmos.QueryParameter) ([][]byte, error) {
	pager := c.container.NewQueryItemsPager(query, azcosmos.NewPartitionKey(), &azcosmos.QueryOptions{
		QueryParameters: params,
	})
	docs := [][]byte{}
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("could not query container %s: %w", c.name, err)
		}
		docs = append(docs, page.Items...)
	}
	c.log.Debugf("Read %d documents from container %s", len(docs), c.name)
	return docs, nil
}

func classifyCosmosError(container, id string, err error) error {
	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) {
		switch respErr.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%s document %q: %w", container, id, domain.ErrDocumentNotFound)
		case http.StatusConflict:
			return fmt.Errorf("%s document %q: %w", container, id, domain.ErrDocumentConflict)
		case http.StatusBadRequest:
			return fmt.Errorf("%s document %q: %w: %v", container, id, domain.ErrInvalidDocument, err)
		}
	}
	return fmt.Errorf("cosmos request on %s failed: %w", container, err)
}
