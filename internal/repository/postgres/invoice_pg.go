// internal/repository/postgres/invoice_pg.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"invoice-dao/internal/domain"
	"invoice-dao/internal/repository"
	"invoice-dao/internal/util"

	"github.com/shopspring/decimal"
)

// InvoiceRepository implements repository.InvoiceRepository for PostgreSQL.
type InvoiceRepository struct{}

// NewInvoiceRepository creates a new InvoiceRepository.
func NewInvoiceRepository() repository.InvoiceRepository {
	return &InvoiceRepository{}
}

// InsertInvoiceHeader inserts a new invoice and reads its generated ID back on the same executor.
func (r *InvoiceRepository) InsertInvoiceHeader(ctx context.Context, q repository.DBExecutor, customerID int64) (int64, error) {
	var id int64
	err := q.QueryRowContext(ctx, `INSERT INTO Invoice (CustomerID) VALUES ($1) RETURNING ID`, customerID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert invoice for customer %d (%s): %w", customerID, describe(err), err)
	}
	return id, nil
}

// InsertLineItem inserts one invoice item using the provided DBExecutor.
func (r *InvoiceRepository) InsertLineItem(ctx context.Context, q repository.DBExecutor, item *domain.LineItem) error {
	query := `INSERT INTO Item (InvoiceID, Item, ProductID, Quantity, Cost)
              VALUES ($1, $2, $3, $4, $5)`
	_, err := q.ExecContext(ctx, query, item.InvoiceID, item.Sequence, item.ProductID, item.Quantity, item.UnitCost)
	if err != nil {
		return fmt.Errorf("failed to insert item %d of invoice %d (%s): %w", item.Sequence, item.InvoiceID, describe(err), err)
	}
	return nil
}

// UpdateInvoiceCustomer sets the owning customer of an invoice using the provided DBExecutor.
func (r *InvoiceRepository) UpdateInvoiceCustomer(ctx context.Context, q repository.DBExecutor, invoiceID, customerID int64) error {
	result, err := q.ExecContext(ctx, `UPDATE Invoice SET CustomerID = $1 WHERE ID = $2`, customerID, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to update customer of invoice %d (%s): %w", invoiceID, describe(err), err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after updating invoice %d: %w", invoiceID, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("no rows affected when updating invoice %d: %w", invoiceID, util.ErrNotFound)
	}
	return nil
}

// GetInvoiceByID retrieves an invoice header using the provided DBExecutor.
func (r *InvoiceRepository) GetInvoiceByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Invoice, error) {
	var invoice domain.Invoice
	err := q.GetContext(ctx, &invoice, `SELECT ID AS id, CustomerID AS customer_id FROM Invoice WHERE ID = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invoice by ID %d: %w", id, err)
	}
	return &invoice, nil
}

// GetLineItems retrieves the items of an invoice in sequence order.
func (r *InvoiceRepository) GetLineItems(ctx context.Context, q repository.DBExecutor, invoiceID int64) ([]domain.LineItem, error) {
	items := []domain.LineItem{}
	query := `
		SELECT InvoiceID AS invoice_id, Item AS item, ProductID AS product_id, Quantity AS quantity, Cost AS cost
		FROM Item
		WHERE InvoiceID = $1
		ORDER BY Item`
	if err := q.SelectContext(ctx, &items, query, invoiceID); err != nil {
		return nil, fmt.Errorf("failed to fetch items of invoice %d: %w", invoiceID, err)
	}
	return items, nil
}

// CountLineItems returns how many items are stored for an invoice.
func (r *InvoiceRepository) CountLineItems(ctx context.Context, q repository.DBExecutor, invoiceID int64) (int64, error) {
	var count int64
	if err := q.GetContext(ctx, &count, `SELECT COUNT(*) FROM Item WHERE InvoiceID = $1`, invoiceID); err != nil {
		return 0, fmt.Errorf("failed to count items of invoice %d: %w", invoiceID, err)
	}
	return count, nil
}

// CountInvoicesForCustomer returns the number of invoices owned by a customer.
func (r *InvoiceRepository) CountInvoicesForCustomer(ctx context.Context, q repository.DBExecutor, customerID int64) (int64, error) {
	var count int64
	if err := q.GetContext(ctx, &count, `SELECT COUNT(*) FROM Invoice WHERE CustomerID = $1`, customerID); err != nil {
		return 0, fmt.Errorf("failed to count invoices of customer %d: %w", customerID, err)
	}
	return count, nil
}

// TotalForCustomer sums quantity * cost over every item billed to a customer.
// The total is derived from the items themselves so it cannot drift from them.
func (r *InvoiceRepository) TotalForCustomer(ctx context.Context, q repository.DBExecutor, customerID int64) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `
		SELECT COALESCE(SUM(it.Quantity * it.Cost), 0)
		FROM Item it
		JOIN Invoice inv ON inv.ID = it.InvoiceID
		WHERE inv.CustomerID = $1`
	if err := q.GetContext(ctx, &total, query, customerID); err != nil {
		return decimal.Zero, fmt.Errorf("failed to total invoices of customer %d: %w", customerID, err)
	}
	return total, nil
}
