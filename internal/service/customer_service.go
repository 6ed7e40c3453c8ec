// internal/service/customer_service.go
package service

import (
	"context"
	"fmt"

	"invoice-dao/internal/domain"
	"invoice-dao/internal/repository"
	"invoice-dao/internal/util"

	"github.com/shopspring/decimal"
)

// CustomerService defines the read-only customer queries.
type CustomerService interface {
	GetCustomer(ctx context.Context, customerID int64) (*domain.Customer, error)
	CustomerName(ctx context.Context, customerID int64) (string, error)
	CountCustomers(ctx context.Context) (int64, error)
	CustomersInCity(ctx context.Context, city string) ([]domain.Customer, error)
	CountInvoicesForCustomer(ctx context.Context, customerID int64) (int64, error)
	TotalForCustomer(ctx context.Context, customerID int64) (decimal.Decimal, error)
}

type customerService struct {
	dbExecutor   repository.DBExecutor
	customerRepo repository.CustomerRepository
	invoiceRepo  repository.InvoiceRepository
}

// NewCustomerService creates a new instance of CustomerService.
func NewCustomerService(
	dbExecutor repository.DBExecutor,
	customerRepo repository.CustomerRepository,
	invoiceRepo repository.InvoiceRepository,
) CustomerService {
	return &customerService{
		dbExecutor:   dbExecutor,
		customerRepo: customerRepo,
		invoiceRepo:  invoiceRepo,
	}
}

func (s *customerService) GetCustomer(ctx context.Context, customerID int64) (*domain.Customer, error) {
	customer, err := s.customerRepo.GetCustomerByID(ctx, s.dbExecutor, customerID)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return customer, nil
}

// CustomerName returns the name a customer is addressed by on invoices, which is the last name.
func (s *customerService) CustomerName(ctx context.Context, customerID int64) (string, error) {
	name, err := s.customerRepo.GetCustomerLastName(ctx, s.dbExecutor, customerID)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return "", util.ErrCustomerNotFound
		}
		return "", fmt.Errorf("customer name: %w", err)
	}
	return name, nil
}

func (s *customerService) CountCustomers(ctx context.Context) (int64, error) {
	return s.customerRepo.CountCustomers(ctx, s.dbExecutor)
}

func (s *customerService) CustomersInCity(ctx context.Context, city string) ([]domain.Customer, error) {
	if city == "" {
		return nil, fmt.Errorf("%w: city is required", util.ErrInvalidInput)
	}
	return s.customerRepo.ListCustomersByCity(ctx, s.dbExecutor, city)
}

// CountInvoicesForCustomer returns 0 for a customer without invoices and
// ErrCustomerNotFound for an unknown customer.
func (s *customerService) CountInvoicesForCustomer(ctx context.Context, customerID int64) (int64, error) {
	if _, err := s.GetCustomer(ctx, customerID); err != nil {
		return 0, err
	}
	count, err := s.invoiceRepo.CountInvoicesForCustomer(ctx, s.dbExecutor, customerID)
	if err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return count, nil
}

// TotalForCustomer sums every item ever billed to the customer.
func (s *customerService) TotalForCustomer(ctx context.Context, customerID int64) (decimal.Decimal, error) {
	if _, err := s.GetCustomer(ctx, customerID); err != nil {
		return decimal.Zero, err
	}
	total, err := s.invoiceRepo.TotalForCustomer(ctx, s.dbExecutor, customerID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total for customer: %w", err)
	}
	return total, nil
}
