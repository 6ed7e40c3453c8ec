// internal/api/types/response.go
package types

import (
	"invoice-dao/internal/domain"

	"github.com/shopspring/decimal"
)

// ListResponse wraps a list result together with its length.
// T represents the type of data contained in the 'Data' slice.
type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Count int `json:"count"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// CreateInvoiceResponse is returned by POST /invoices.
type CreateInvoiceResponse struct {
	InvoiceID int64 `json:"invoice_id"`
}

// InvoiceResponse is an invoice with its computed total.
type InvoiceResponse struct {
	ID         int64             `json:"id"`
	CustomerID int64             `json:"customer_id"`
	Items      []domain.LineItem `json:"items"`
	Total      decimal.Decimal   `json:"total"`
}

// NewInvoiceResponse builds the response body for an invoice.
func NewInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	items := inv.Items
	if items == nil {
		items = []domain.LineItem{}
	}
	return InvoiceResponse{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		Items:      items,
		Total:      inv.Total(),
	}
}

// CustomerResponse is a customer with its display fields.
type CustomerResponse struct {
	domain.Customer
	DisplayName    string `json:"display_name"`
	DisplayAddress string `json:"display_address"`
}

// NewCustomerResponse builds the response body for a customer.
func NewCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{Customer: *c, DisplayName: c.Name(), DisplayAddress: c.Address()}
}

// CountResponse carries a single count.
type CountResponse struct {
	Count int64 `json:"count"`
}

// NameResponse carries a customer name.
type NameResponse struct {
	Name string `json:"name"`
}

// TotalResponse carries a monetary total.
type TotalResponse struct {
	CustomerID int64           `json:"customer_id"`
	Total      decimal.Decimal `json:"total"`
}
