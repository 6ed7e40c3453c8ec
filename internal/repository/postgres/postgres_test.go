// internal/repository/postgres/postgres_test.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoice-dao/internal/domain"
	"invoice-dao/internal/util"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestCustomerRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCustomerRepository()

	t.Run("GetCustomerByID", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM Customer WHERE ID = $1")).
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "street", "city"}).
				AddRow(5, "Laura", "Steel", "429 Seventh Av.", "Dallas"))

		c, err := repo.GetCustomerByID(ctx, db, 5)

		require.NoError(t, err)
		assert.Equal(t, &domain.Customer{ID: 5, FirstName: "Laura", LastName: "Steel", Street: "429 Seventh Av.", City: "Dallas"}, c)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetCustomerByIDNotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM Customer WHERE ID = $1")).
			WithArgs(int64(404)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "street", "city"}))

		c, err := repo.GetCustomerByID(ctx, db, 404)

		assert.Nil(t, c)
		assert.ErrorIs(t, err, util.ErrNotFound)
	})

	t.Run("GetCustomerLastName", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT LastName FROM Customer WHERE ID = $1")).
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows([]string{"lastname"}).AddRow("Steel"))

		name, err := repo.GetCustomerLastName(ctx, db, 5)

		require.NoError(t, err)
		assert.Equal(t, "Steel", name)
	})

	t.Run("CountCustomers", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM Customer")).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(50))

		n, err := repo.CountCustomers(ctx, db)

		require.NoError(t, err)
		assert.Equal(t, int64(50), n)
	})

	t.Run("ListCustomersByCity", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM Customer WHERE City = $1 ORDER BY ID")).
			WithArgs("Dallas").
			WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "street", "city"}).
				AddRow(5, "Laura", "Steel", "429 Seventh Av.", "Dallas").
				AddRow(9, "Robert", "Ott", "361 Sixth Av.", "Dallas"))

		list, err := repo.ListCustomersByCity(ctx, db, "Dallas")

		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Ott", list[1].LastName)
	})
}

func TestProductRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository()

	t.Run("ProductExists", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM Product WHERE ID = $1)")).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		ok, err := repo.ProductExists(ctx, db, 1)

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("GetProductPrice", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT Price FROM Product WHERE ID = $1")).
			WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows([]string{"price"}).AddRow("2.50"))

		price, found, err := repo.GetProductPrice(ctx, db, 2)

		require.NoError(t, err)
		assert.True(t, found)
		assert.True(t, price.Equal(decimal.RequireFromString("2.5")))
	})

	t.Run("GetProductPriceNotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT Price FROM Product WHERE ID = $1")).
			WithArgs(int64(999)).
			WillReturnRows(sqlmock.NewRows([]string{"price"}))

		price, found, err := repo.GetProductPrice(ctx, db, 999)

		require.NoError(t, err)
		assert.False(t, found)
		assert.True(t, price.IsZero())
	})

	t.Run("GetProductPriceError", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT Price FROM Product WHERE ID = $1")).
			WillReturnError(sql.ErrConnDone)

		_, found, err := repo.GetProductPrice(ctx, db, 1)

		assert.ErrorIs(t, err, sql.ErrConnDone)
		assert.False(t, found)
	})
}

func TestInvoiceRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewInvoiceRepository()

	t.Run("InsertInvoiceHeaderReturnsID", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO Invoice (CustomerID) VALUES ($1) RETURNING ID")).
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

		id, err := repo.InsertInvoiceHeader(ctx, db, 5)

		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
	})

	t.Run("HeaderIDIsReadOnTheTransaction", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO Invoice (CustomerID) VALUES ($1) RETURNING ID")).
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(43))
		mock.ExpectRollback()

		tx, err := db.BeginTxx(ctx, nil)
		require.NoError(t, err)
		id, err := repo.InsertInvoiceHeader(ctx, tx, 5)
		require.NoError(t, err)
		require.NoError(t, tx.Rollback())

		assert.Equal(t, int64(43), id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("InsertLineItem", func(t *testing.T) {
		db, mock := newMockDB(t)
		cost := decimal.RequireFromString("10.00")
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO Item (InvoiceID, Item, ProductID, Quantity, Cost)")).
			WithArgs(int64(42), 0, int64(1), 2, cost).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.InsertLineItem(ctx, db, &domain.LineItem{InvoiceID: 42, Sequence: 0, ProductID: 1, Quantity: 2, UnitCost: cost})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("InsertLineItemForeignKeyViolation", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO Item")).
			WillReturnError(&pq.Error{Code: "23503", Message: "insert or update on table \"item\" violates foreign key constraint"})

		err := repo.InsertLineItem(ctx, db, &domain.LineItem{InvoiceID: 42, ProductID: 999, Quantity: 1})

		require.Error(t, err)
		assert.True(t, isForeignKeyViolation(err))
		assert.Contains(t, err.Error(), "foreign key violation")
	})

	t.Run("UpdateInvoiceCustomerNoRows", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(regexp.QuoteMeta("UPDATE Invoice SET CustomerID = $1 WHERE ID = $2")).
			WithArgs(int64(5), int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateInvoiceCustomer(ctx, db, 42, 5)

		assert.ErrorIs(t, err, util.ErrNotFound)
	})

	t.Run("GetLineItems", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM Item")).
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows([]string{"invoice_id", "item", "product_id", "quantity", "cost"}).
				AddRow(42, 0, 1, 2, "10.00").
				AddRow(42, 1, 2, 3, "2.50"))

		items, err := repo.GetLineItems(ctx, db, 42)

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, 1, items[1].Sequence)
		assert.True(t, items[1].UnitCost.Equal(decimal.RequireFromString("2.5")))
	})

	t.Run("GetInvoiceByIDNotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM Invoice WHERE ID = $1")).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "customer_id"}))

		inv, err := repo.GetInvoiceByID(ctx, db, 7)

		assert.Nil(t, inv)
		assert.ErrorIs(t, err, util.ErrNotFound)
	})

	t.Run("CountLineItems", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM Item WHERE InvoiceID = $1")).
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		n, err := repo.CountLineItems(ctx, db, 42)

		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CountLineItemsError", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM Item WHERE InvoiceID = $1")).
			WillReturnError(sql.ErrConnDone)

		_, err := repo.CountLineItems(ctx, db, 42)

		assert.ErrorIs(t, err, sql.ErrConnDone)
	})

	t.Run("CountInvoicesForCustomer", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM Invoice WHERE CustomerID = $1")).
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

		n, err := repo.CountInvoicesForCustomer(ctx, db, 5)

		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})

	t.Run("TotalForCustomer", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("SUM(it.Quantity * it.Cost)")).
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("27.50"))

		total, err := repo.TotalForCustomer(ctx, db, 5)

		require.NoError(t, err)
		assert.True(t, total.Equal(decimal.RequireFromString("27.5")))
	})
}

func TestSQLStateClassification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"LibPQ", &pq.Error{Code: "23514"}, "23514"},
		{"PGX", &pgconn.PgError{Code: "40001"}, "40001"},
		{"Wrapped", errors.Join(errors.New("context"), &pgconn.PgError{Code: "23505"}), "23505"},
		{"Plain", errors.New("boom"), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, sqlState(tt.err))
		})
	}

	assert.True(t, isCheckViolation(&pq.Error{Code: "23514"}))
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isSerializationFailure(&pgconn.PgError{Code: "40P01"}))
	assert.False(t, isForeignKeyViolation(errors.New("boom")))
	assert.Equal(t, "check violation", describe(&pq.Error{Code: "23514"}))
	assert.Equal(t, "driver error", describe(errors.New("boom")))
	assert.Equal(t, "concurrent update conflict", describe(&pq.Error{Code: "40001"}))
	assert.Equal(t, "not null violation", describe(&pgconn.PgError{Code: "23502"}))
}
