// internal/util/errors.go
package util

import "errors"

// Common application-specific errors.
var (
	ErrNotFound         = errors.New("resource not found")
	ErrInvalidInput     = errors.New("invalid input provided")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrInvoiceNotFound  = errors.New("invoice not found")
	ErrCustomerRequired = errors.New("a resolved customer is required")
)

// Invoice creation failures. Each one aborts the whole transaction.
var (
	ErrShapeMismatch      = errors.New("product and quantity lists differ in length")
	ErrUnknownProduct     = errors.New("unknown product")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrEmptyInvoice       = errors.New("invoice needs at least one line item")
	ErrPersistenceFailure = errors.New("persistence failure")
)

// IsError reports whether err matches target anywhere in its chain.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}

// kinds maps sentinel errors to the stable names used in API responses and logs.
// A persistence failure may wrap a repository sentinel such as ErrNotFound, so it is matched first.
var kinds = []struct {
	err  error
	name string
}{
	{ErrPersistenceFailure, "PERSISTENCE_FAILURE"},
	{ErrShapeMismatch, "SHAPE_MISMATCH"},
	{ErrUnknownProduct, "UNKNOWN_PRODUCT"},
	{ErrInvalidQuantity, "INVALID_QUANTITY"},
	{ErrEmptyInvoice, "EMPTY_INVOICE"},
	{ErrCustomerRequired, "CUSTOMER_REQUIRED"},
	{ErrCustomerNotFound, "CUSTOMER_NOT_FOUND"},
	{ErrInvoiceNotFound, "INVOICE_NOT_FOUND"},
	{ErrNotFound, "NOT_FOUND"},
	{ErrInvalidInput, "INVALID_INPUT"},
}

// Kind returns the stable name of the first known sentinel in err's chain,
// or "INTERNAL" when none matches.
func Kind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return "INTERNAL"
}
