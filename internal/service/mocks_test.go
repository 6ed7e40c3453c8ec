// internal/service/mocks_test.go
package service

import (
	"context"
	"database/sql"

	"invoice-dao/internal/domain"
	"invoice-dao/internal/repository"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockDBExecutor is a mock implementation of repository.DBExecutor.
type MockDBExecutor struct {
	mock.Mock
}

func (m *MockDBExecutor) GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	argsCalled := m.Called(ctx, dest, query, args)
	return argsCalled.Error(0)
}

func (m *MockDBExecutor) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	argsCalled := m.Called(ctx, dest, query, args)
	return argsCalled.Error(0)
}

func (m *MockDBExecutor) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	argsCalled := m.Called(ctx, query, args)
	return argsCalled.Get(0).(sql.Result), argsCalled.Error(1)
}

func (m *MockDBExecutor) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	m.Called(ctx, query, args)
	return &sql.Row{}
}

// MockCustomerRepository is a mock implementation of repository.CustomerRepository.
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) GetCustomerByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Customer, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetCustomerLastName(ctx context.Context, q repository.DBExecutor, id int64) (string, error) {
	args := m.Called(ctx, q, id)
	return args.String(0), args.Error(1)
}

func (m *MockCustomerRepository) CountCustomers(ctx context.Context, q repository.DBExecutor) (int64, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) ListCustomersByCity(ctx context.Context, q repository.DBExecutor, city string) ([]domain.Customer, error) {
	args := m.Called(ctx, q, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

// MockProductRepository is a mock implementation of repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) ProductExists(ctx context.Context, q repository.DBExecutor, id int64) (bool, error) {
	args := m.Called(ctx, q, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) GetProductPrice(ctx context.Context, q repository.DBExecutor, id int64) (decimal.Decimal, bool, error) {
	args := m.Called(ctx, q, id)
	return args.Get(0).(decimal.Decimal), args.Bool(1), args.Error(2)
}

// MockInvoiceRepository is a mock implementation of repository.InvoiceRepository.
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) InsertInvoiceHeader(ctx context.Context, q repository.DBExecutor, customerID int64) (int64, error) {
	args := m.Called(ctx, q, customerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) InsertLineItem(ctx context.Context, q repository.DBExecutor, item *domain.LineItem) error {
	args := m.Called(ctx, q, item)
	return args.Error(0)
}

func (m *MockInvoiceRepository) UpdateInvoiceCustomer(ctx context.Context, q repository.DBExecutor, invoiceID, customerID int64) error {
	args := m.Called(ctx, q, invoiceID, customerID)
	return args.Error(0)
}

func (m *MockInvoiceRepository) GetInvoiceByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Invoice, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) GetLineItems(ctx context.Context, q repository.DBExecutor, invoiceID int64) ([]domain.LineItem, error) {
	args := m.Called(ctx, q, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LineItem), args.Error(1)
}

func (m *MockInvoiceRepository) CountLineItems(ctx context.Context, q repository.DBExecutor, invoiceID int64) (int64, error) {
	args := m.Called(ctx, q, invoiceID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) CountInvoicesForCustomer(ctx context.Context, q repository.DBExecutor, customerID int64) (int64, error) {
	args := m.Called(ctx, q, customerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) TotalForCustomer(ctx context.Context, q repository.DBExecutor, customerID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, q, customerID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// MockDBBeginner is a mock implementation of db.DBTxBeginner.
type MockDBBeginner struct {
	mock.Mock
}

func (m *MockDBBeginner) BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error) {
	args := m.Called(ctx, opts)
	return &sqlx.Tx{}, args.Error(1)
}

// MockTxController is a mock implementation of db.TxController.
// It also implicitly implements repository.DBExecutor for testing purposes
// by embedding MockDBExecutor.
type MockTxController struct {
	mock.Mock
	MockDBExecutor // Embed MockDBExecutor to satisfy repository.DBExecutor interface
}

func (m *MockTxController) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockTxController) Rollback() error {
	args := m.Called()
	return args.Error(0)
}
