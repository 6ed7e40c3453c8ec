// internal/domain/invoice.go
package domain

import (
	"github.com/shopspring/decimal" // For precise monetary calculations
)

// Invoice represents an invoice header together with its line items.
type Invoice struct {
	ID         int64      `db:"id" json:"id"`                   // Primary key, BIGSERIAL in DB
	CustomerID int64      `db:"customer_id" json:"customer_id"` // Owning customer
	Items      []LineItem `db:"-" json:"items"`                 // Line items ordered by sequence
}

// Total returns the sum of quantity * unit cost over the invoice items.
func (inv *Invoice) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range inv.Items {
		total = total.Add(item.Amount())
	}
	return total
}

// LineItem is one priced product/quantity entry of an invoice.
// UnitCost is a snapshot of the product price taken when the invoice was created.
type LineItem struct {
	InvoiceID int64           `db:"invoice_id" json:"invoice_id"` // Owning invoice
	Sequence  int             `db:"item" json:"sequence"`         // Zero-based position within the invoice
	ProductID int64           `db:"product_id" json:"product_id"` // Referenced product
	Quantity  int             `db:"quantity" json:"quantity"`     // Always > 0
	UnitCost  decimal.Decimal `db:"cost" json:"unit_cost"`        // Price snapshot, NUMERIC(12, 2) in DB
}

// Amount returns quantity * unit cost.
func (li LineItem) Amount() decimal.Decimal {
	return li.UnitCost.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// LineItemRequest pairs one product with its requested quantity.
// It only exists as input to invoice creation and is never persisted.
type LineItemRequest struct {
	ProductID int64
	Quantity  int
}

// PairLineItems zips the positional product and quantity slices.
// The caller must have checked that both slices have the same length.
func PairLineItems(productIDs []int64, quantities []int) []LineItemRequest {
	requests := make([]LineItemRequest, len(productIDs))
	for i := range productIDs {
		requests[i] = LineItemRequest{ProductID: productIDs[i], Quantity: quantities[i]}
	}
	return requests
}
