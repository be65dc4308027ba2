package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"cloudmart_service/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockCollection(t *testing.T, name string) (Collection, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresCollection(db, DatabaseName, name, newTestLogger()), mock
}

func TestPostgresCollection_ReadAll(t *testing.T) {
	c, mock := newMockCollection(t, CartCollection)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT doc FROM "cloudmart"."cart"`)).
		WillReturnRows(sqlmock.NewRows([]string{"doc"}).
			AddRow([]byte(`{"id":"a","qty":2}`)).
			AddRow([]byte(`{"id":"b"}`)))

	docs, err := c.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte(`{"id":"a","qty":2}`), []byte(`{"id":"b"}`)}, docs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCollection_FindByID(t *testing.T) {
	c, mock := newMockCollection(t, ProductsCollection)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT doc FROM "cloudmart"."products" WHERE id = $1`)).
		WithArgs("1").
		WillReturnRows(sqlmock.NewRows([]string{"doc"}).AddRow([]byte(`{"id":"1"}`)))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT doc FROM "cloudmart"."products" WHERE id = $1`)).
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows([]string{"doc"}))

	docs, err := c.FindByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Len(t, docs, 1)

	docs, err = c.FindByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Empty(t, docs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCollection_Create(t *testing.T) {
	c, mock := newMockCollection(t, OrdersCollection)
	insert := regexp.QuoteMeta(`INSERT INTO "cloudmart"."orders" (id, doc) VALUES ($1, $2)`)

	mock.ExpectExec(insert).
		WithArgs("o1", []byte(`{"id":"o1"}`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(insert).
		WithArgs("o1", []byte(`{"id":"o1"}`)).
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})
	mock.ExpectExec(insert).
		WithArgs("o2", []byte(`{"id":"o2"}`)).
		WillReturnError(errors.New("connection reset"))

	require.NoError(t, c.Create(context.Background(), "o1", []byte(`{"id":"o1"}`)))
	assert.ErrorIs(t, c.Create(context.Background(), "o1", []byte(`{"id":"o1"}`)), domain.ErrDocumentConflict)

	err := c.Create(context.Background(), "o2", []byte(`{"id":"o2"}`))
	assert.ErrorContains(t, err, "connection reset")
	assert.NotErrorIs(t, err, domain.ErrDocumentConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCollection_Delete(t *testing.T) {
	c, mock := newMockCollection(t, CartCollection)
	del := regexp.QuoteMeta(`DELETE FROM "cloudmart"."cart" WHERE id = $1`)

	mock.ExpectExec(del).WithArgs("a").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(del).WithArgs("a").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, c.Delete(context.Background(), "a"))
	assert.ErrorIs(t, c.Delete(context.Background(), "a"), domain.ErrDocumentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCollection_DocumentStoreRemoveIsIdempotent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	logger := newTestLogger()
	store := NewDocumentStore(
		NewPostgresCollection(db, DatabaseName, ProductsCollection, logger),
		NewPostgresCollection(db, DatabaseName, CartCollection, logger),
		NewPostgresCollection(db, DatabaseName, OrdersCollection, logger),
		db,
		logger,
	)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "cloudmart"."cart" WHERE id = $1`)).
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectClose()

	assert.NoError(t, store.RemoveCartItem(context.Background(), "ghost"))
	assert.NoError(t, store.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCollection_DocumentStoreRejectsMissingID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	logger := newTestLogger()
	store := NewDocumentStore(
		NewPostgresCollection(db, DatabaseName, ProductsCollection, logger),
		NewPostgresCollection(db, DatabaseName, CartCollection, logger),
		NewPostgresCollection(db, DatabaseName, OrdersCollection, logger),
		nil,
		logger,
	)

	assert.ErrorIs(t, store.CreateOrder(context.Background(), domain.Order{"total": 5}), domain.ErrInvalidDocument)
	assert.ErrorIs(t, store.AddCartItem(context.Background(), domain.CartItem{"qty": 1}), domain.ErrInvalidDocument)
	assert.NoError(t, mock.ExpectationsWereMet())
}
