// internal/repository/customer_repo.go
package repository

import (
	"context"

	"invoice-dao/internal/domain"
)

// CustomerRepository defines the read-only customer lookups.
type CustomerRepository interface {
	// GetCustomerByID retrieves a customer by ID, or util.ErrNotFound.
	GetCustomerByID(ctx context.Context, q DBExecutor, id int64) (*domain.Customer, error)
	// GetCustomerLastName retrieves only the last name of a customer, or util.ErrNotFound.
	GetCustomerLastName(ctx context.Context, q DBExecutor, id int64) (string, error)
	// CountCustomers returns the number of customer rows.
	CountCustomers(ctx context.Context, q DBExecutor) (int64, error)
	// ListCustomersByCity retrieves the customers billed in the given city.
	ListCustomersByCity(ctx context.Context, q DBExecutor, city string) ([]domain.Customer, error)
}
