// internal/repository/postgres/product_pg.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"invoice-dao/internal/repository"

	"github.com/shopspring/decimal"
)

// ProductRepository implements repository.ProductRepository for PostgreSQL.
type ProductRepository struct{}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository() repository.ProductRepository {
	return &ProductRepository{}
}

// ProductExists reports whether the product is in the catalog using the provided DBExecutor.
func (r *ProductRepository) ProductExists(ctx context.Context, q repository.DBExecutor, id int64) (bool, error) {
	var exists bool
	err := q.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM Product WHERE ID = $1)`, id)
	if err != nil {
		return false, fmt.Errorf("failed to look up product %d: %w", id, err)
	}
	return exists, nil
}

// GetProductPrice reads the current price of a product using the provided DBExecutor.
func (r *ProductRepository) GetProductPrice(ctx context.Context, q repository.DBExecutor, id int64) (decimal.Decimal, bool, error) {
	var price decimal.Decimal
	err := q.GetContext(ctx, &price, `SELECT Price FROM Product WHERE ID = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, fmt.Errorf("failed to get price of product %d: %w", id, err)
	}
	return price, true, nil
}
