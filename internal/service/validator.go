// internal/service/validator.go
package service

import (
	"context"
	"fmt"

	"invoice-dao/internal/repository"
	"invoice-dao/internal/util"
)

// InputValidator checks an invoice request against the product catalog
// before anything is written.
type InputValidator struct {
	productRepo repository.ProductRepository
}

// NewInputValidator creates a new InputValidator.
func NewInputValidator(productRepo repository.ProductRepository) *InputValidator {
	return &InputValidator{productRepo: productRepo}
}

// Validate runs three rules in a fixed order and returns the first violation:
// the two slices must have the same length, every product must exist, and
// every quantity must be positive. All products are checked before any
// quantity, so an unknown product wins over a bad quantity at an earlier position.
//
// q should be the transaction executor of the caller so the catalog is read in
// the same scope the invoice is written in.
func (v *InputValidator) Validate(ctx context.Context, q repository.DBExecutor, productIDs []int64, quantities []int) error {
	if len(productIDs) != len(quantities) {
		return fmt.Errorf("%w: %d products, %d quantities", util.ErrShapeMismatch, len(productIDs), len(quantities))
	}

	for i, productID := range productIDs {
		exists, err := v.productRepo.ProductExists(ctx, q, productID)
		if err != nil {
			return fmt.Errorf("%w: validate product at position %d: %w", util.ErrPersistenceFailure, i, err)
		}
		if !exists {
			return fmt.Errorf("%w: product %d at position %d", util.ErrUnknownProduct, productID, i)
		}
	}

	for i, quantity := range quantities {
		if quantity <= 0 {
			return fmt.Errorf("%w: got %d at position %d", util.ErrInvalidQuantity, quantity, i)
		}
	}

	return nil
}
