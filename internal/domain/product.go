// internal/domain/product.go
package domain

import (
	"github.com/shopspring/decimal" // For precise monetary calculations
)

// Product represents an entry of the product catalog.
type Product struct {
	ID    int64           `db:"id" json:"id"`       // Primary key, BIGSERIAL in DB
	Name  string          `db:"name" json:"name"`   // Catalog label
	Price decimal.Decimal `db:"price" json:"price"` // Current unit price, NUMERIC(12, 2) in DB
}
