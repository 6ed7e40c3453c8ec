// internal/service/pricing.go
package service

import (
	"context"
	"fmt"

	"invoice-dao/internal/repository"
	"invoice-dao/internal/util"

	"github.com/shopspring/decimal"
)

// PricingResolver reads the unit price charged for a product.
type PricingResolver struct {
	productRepo repository.ProductRepository
}

// NewPricingResolver creates a new PricingResolver.
func NewPricingResolver(productRepo repository.ProductRepository) *PricingResolver {
	return &PricingResolver{productRepo: productRepo}
}

// ResolvePrice returns the current price of productID as seen by q.
// A missing product is reported through found, not as an error.
func (r *PricingResolver) ResolvePrice(ctx context.Context, q repository.DBExecutor, productID int64) (decimal.Decimal, bool, error) {
	price, found, err := r.productRepo.GetProductPrice(ctx, q, productID)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("%w: resolve price of product %d: %w", util.ErrPersistenceFailure, productID, err)
	}
	return price, found, nil
}
