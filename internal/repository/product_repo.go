// internal/repository/product_repo.go
package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// ProductRepository defines the product catalog lookups used while invoicing.
type ProductRepository interface {
	// ProductExists reports whether a product with the given ID is in the catalog.
	ProductExists(ctx context.Context, q DBExecutor, id int64) (bool, error)
	// GetProductPrice returns the current unit price of a product.
	// found is false when the product does not exist; that is not an error.
	GetProductPrice(ctx context.Context, q DBExecutor, id int64) (price decimal.Decimal, found bool, err error)
}
