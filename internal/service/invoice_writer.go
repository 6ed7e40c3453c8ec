// internal/service/invoice_writer.go
package service

import (
	"context"
	"fmt"

	"invoice-dao/internal/domain"
	"invoice-dao/internal/repository"
	"invoice-dao/internal/util"

	"github.com/shopspring/decimal"
)

// InvoiceWriter persists invoice headers and line items inside a caller-owned transaction.
type InvoiceWriter struct {
	invoiceRepo repository.InvoiceRepository
}

// NewInvoiceWriter creates a new InvoiceWriter.
func NewInvoiceWriter(invoiceRepo repository.InvoiceRepository) *InvoiceWriter {
	return &InvoiceWriter{invoiceRepo: invoiceRepo}
}

// InvoiceDraft is an invoice header written but not yet committed.
// Line items can only be appended through a draft.
type InvoiceDraft struct {
	writer *InvoiceWriter
	q      repository.DBExecutor
	id     int64
	items  int
}

// CreateHeader inserts the invoice header on q and returns a draft bound to it.
func (w *InvoiceWriter) CreateHeader(ctx context.Context, q repository.DBExecutor, customerID int64) (*InvoiceDraft, error) {
	id, err := w.invoiceRepo.InsertInvoiceHeader(ctx, q, customerID)
	if err != nil {
		return nil, fmt.Errorf("%w: create invoice header: %w", util.ErrPersistenceFailure, err)
	}
	return &InvoiceDraft{writer: w, q: q, id: id}, nil
}

// ID returns the identity generated for the draft's header.
func (d *InvoiceDraft) ID() int64 {
	return d.id
}

// Items returns how many line items have been appended so far.
func (d *InvoiceDraft) Items() int {
	return d.items
}

// AppendLineItem writes one line item at position seq with unitCost as its price snapshot.
func (d *InvoiceDraft) AppendLineItem(ctx context.Context, seq int, productID int64, quantity int, unitCost decimal.Decimal) error {
	item := &domain.LineItem{
		InvoiceID: d.id,
		Sequence:  seq,
		ProductID: productID,
		Quantity:  quantity,
		UnitCost:  unitCost,
	}
	if err := d.writer.invoiceRepo.InsertLineItem(ctx, d.q, item); err != nil {
		return fmt.Errorf("%w: append item %d to invoice %d: %w", util.ErrPersistenceFailure, seq, d.id, err)
	}
	d.items++
	return nil
}

// FinalizeHeader sets the owning customer on the header.
func (d *InvoiceDraft) FinalizeHeader(ctx context.Context, customerID int64) error {
	if err := d.writer.invoiceRepo.UpdateInvoiceCustomer(ctx, d.q, d.id, customerID); err != nil {
		return fmt.Errorf("%w: finalize invoice %d: %w", util.ErrPersistenceFailure, d.id, err)
	}
	return nil
}
