// internal/domain/customer.go
package domain

import "strings"

// Customer represents a billable customer.
// Customers are managed elsewhere; this module only reads them.
type Customer struct {
	ID        int64  `db:"id" json:"id"`                 // Primary key, BIGSERIAL in DB
	FirstName string `db:"first_name" json:"first_name"` // Given name
	LastName  string `db:"last_name" json:"last_name"`   // Family name
	Street    string `db:"street" json:"street"`         // Street address line
	City      string `db:"city" json:"city"`             // City of the billing address
}

// Name returns the display name of the customer.
func (c *Customer) Name() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// Address returns the display address of the customer.
func (c *Customer) Address() string {
	switch {
	case c.Street == "":
		return c.City
	case c.City == "":
		return c.Street
	default:
		return c.Street + ", " + c.City
	}
}
