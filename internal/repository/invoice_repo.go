// internal/repository/invoice_repo.go
package repository

import (
	"context"

	"invoice-dao/internal/domain"

	"github.com/shopspring/decimal"
)

// InvoiceRepository defines the interface for invoice data operations.
type InvoiceRepository interface {
	// InsertInvoiceHeader inserts an invoice owned by customerID and returns its generated ID.
	// The ID is read back on q itself, so on a transaction it is transaction-local.
	InsertInvoiceHeader(ctx context.Context, q DBExecutor, customerID int64) (int64, error)
	// InsertLineItem inserts one line item row.
	InsertLineItem(ctx context.Context, q DBExecutor, item *domain.LineItem) error
	// UpdateInvoiceCustomer sets the owning customer of an invoice.
	UpdateInvoiceCustomer(ctx context.Context, q DBExecutor, invoiceID, customerID int64) error
	// GetInvoiceByID retrieves an invoice header (without items), or util.ErrNotFound.
	GetInvoiceByID(ctx context.Context, q DBExecutor, id int64) (*domain.Invoice, error)
	// GetLineItems retrieves the items of an invoice ordered by sequence.
	GetLineItems(ctx context.Context, q DBExecutor, invoiceID int64) ([]domain.LineItem, error)
	// CountLineItems returns the number of items stored for an invoice.
	CountLineItems(ctx context.Context, q DBExecutor, invoiceID int64) (int64, error)
	// CountInvoicesForCustomer returns the number of invoices owned by a customer.
	CountInvoicesForCustomer(ctx context.Context, q DBExecutor, customerID int64) (int64, error)
	// TotalForCustomer returns the sum of quantity * cost over every item billed to a customer.
	TotalForCustomer(ctx context.Context, q DBExecutor, customerID int64) (decimal.Decimal, error)
}
