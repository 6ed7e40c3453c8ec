// internal/repository/postgres/customer_pg.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"invoice-dao/internal/domain"
	"invoice-dao/internal/repository"
	"invoice-dao/internal/util"
)

const customerColumns = `ID AS id, FirstName AS first_name, LastName AS last_name, Street AS street, City AS city`

// CustomerRepository implements repository.CustomerRepository for PostgreSQL.
type CustomerRepository struct{}

// NewCustomerRepository creates a new CustomerRepository.
// Methods receive their DBExecutor, so the same value serves pool reads and transactions.
func NewCustomerRepository() repository.CustomerRepository {
	return &CustomerRepository{}
}

// GetCustomerByID retrieves a customer by their ID using the provided DBExecutor.
func (r *CustomerRepository) GetCustomerByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Customer, error) {
	var customer domain.Customer
	query := `SELECT ` + customerColumns + ` FROM Customer WHERE ID = $1`
	err := q.GetContext(ctx, &customer, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get customer by ID %d: %w", id, err)
	}
	return &customer, nil
}

// GetCustomerLastName retrieves the last name of a customer using the provided DBExecutor.
func (r *CustomerRepository) GetCustomerLastName(ctx context.Context, q repository.DBExecutor, id int64) (string, error) {
	var lastName string
	err := q.GetContext(ctx, &lastName, `SELECT LastName FROM Customer WHERE ID = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", util.ErrNotFound
		}
		return "", fmt.Errorf("failed to get name of customer %d: %w", id, err)
	}
	return lastName, nil
}

// CountCustomers returns the number of customers using the provided DBExecutor.
func (r *CustomerRepository) CountCustomers(ctx context.Context, q repository.DBExecutor) (int64, error) {
	var count int64
	if err := q.GetContext(ctx, &count, `SELECT COUNT(*) FROM Customer`); err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}
	return count, nil
}

// ListCustomersByCity retrieves the customers of a city ordered by ID.
func (r *CustomerRepository) ListCustomersByCity(ctx context.Context, q repository.DBExecutor, city string) ([]domain.Customer, error) {
	customers := []domain.Customer{}
	query := `SELECT ` + customerColumns + ` FROM Customer WHERE City = $1 ORDER BY ID`
	if err := q.SelectContext(ctx, &customers, query, city); err != nil {
		return nil, fmt.Errorf("failed to list customers in city '%s': %w", city, err)
	}
	return customers, nil
}
