package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cloudmart_service/internal/domain"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// postgresCollection stores documents in table <schema>.<name> (id TEXT PRIMARY KEY, doc JSONB NOT NULL).
type postgresCollection struct {
	db    *sql.DB
	name  string
	table string
	log   *logrus.Logger
}

func NewPostgresCollection(db *sql.DB, schema, name string, logger *logrus.Logger) Collection {
	return &postgresCollection{
		db:    db,
		name:  name,
		table: pq.QuoteIdentifier(schema) + "." + pq.QuoteIdentifier(name),
		log:   logger,
	}
}

func (c *postgresCollection) Name() string { return c.name }

func (c *postgresCollection) ReadAll(ctx context.Context) ([][]byte, error) {
	query := `SELECT doc FROM ` + c.table
	return c.queryDocs(ctx, query)
}

func (c *postgresCollection) FindByID(ctx context.Context, id string) ([][]byte, error) {
	query := `SELECT doc FROM ` + c.table + ` WHERE id = $1`
	return c.queryDocs(ctx, query, id)
}

func (c *postgresCollection) Create(ctx context.Context, id string, doc []byte) error {
	query := `INSERT INTO ` + c.table + ` (id, doc) VALUES ($1, $2)`
	_, err := c.db.ExecContext(ctx, query, id, doc)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return fmt.Errorf("%s document %q: %w", c.name, id, domain.ErrDocumentConflict)
		}
		return fmt.Errorf("could not insert %s document: %w", c.name, err)
	}
	c.log.Debugf("Inserted document %q into %s", id, c.table)
	return nil
}

func (c *postgresCollection) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM ` + c.table + ` WHERE id = $1`
	result, err := c.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("could not delete %s document: %w", c.name, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not confirm %s document deletion: %w", c.name, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s document %q: %w", c.name, id, domain.ErrDocumentNotFound)
	}
	return nil
}

func (c *postgresCollection) queryDocs(ctx context.Context, query string, args ...any) ([][]byte, error) {
	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("could not query %s: %w", c.name, err)
	}
	defer rows.Close()

	docs := [][]byte{}
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("error scanning %s document: %w", c.name, err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s documents: %w", c.name, err)
	}
	c.log.Debugf("Read %d documents from %s", len(docs), c.table)
	return docs, nil
}
