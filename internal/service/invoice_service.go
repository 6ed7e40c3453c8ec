// internal/service/invoice_service.go
package service

import (
	"context"
	"fmt"

	"invoice-dao/internal/domain"
	"invoice-dao/internal/repository"
	"invoice-dao/internal/util"
	"invoice-dao/pkg/db"
)

// InvoiceService defines the interface for invoice-related business logic.
type InvoiceService interface {
	CreateInvoice(ctx context.Context, customer *domain.Customer, productIDs []int64, quantities []int) (int64, error)
	GetInvoice(ctx context.Context, invoiceID int64) (*domain.Invoice, error)
}

// invoiceService implements the InvoiceService interface.
type invoiceService struct {
	dbBeginner  db.DBTxBeginner       // For starting transactions (e.g., *sqlx.DB)
	dbExecutor  repository.DBExecutor // For non-transactional reads (e.g., *sqlx.DB)
	invoiceRepo repository.InvoiceRepository
	validator   *InputValidator
	pricing     *PricingResolver
	writer      *InvoiceWriter
	beginTx     db.BeginTxFunc
	commitTx    db.CommitTxFunc
	rollbackTx  db.RollbackTxFunc
}

// NewInvoiceService creates a new instance of InvoiceService.
func NewInvoiceService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	productRepo repository.ProductRepository,
	invoiceRepo repository.InvoiceRepository,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
) InvoiceService {
	return &invoiceService{
		dbBeginner:  dbBeginner,
		dbExecutor:  dbExecutor,
		invoiceRepo: invoiceRepo,
		validator:   NewInputValidator(productRepo),
		pricing:     NewPricingResolver(productRepo),
		writer:      NewInvoiceWriter(invoiceRepo),
		beginTx:     beginTx,
		commitTx:    commitTx,
		rollbackTx:  rollbackTx,
	}
}

// CreateInvoice bills customer for productIDs[i] x quantities[i] and returns the new invoice ID.
//
// Validation, pricing and every write run in one transaction. On any error the
// transaction is rolled back and no part of the invoice is visible; the first
// error encountered is returned.
func (s *invoiceService) CreateInvoice(ctx context.Context, customer *domain.Customer, productIDs []int64, quantities []int) (int64, error) {
	if customer == nil {
		return s.abort(0, util.ErrCustomerRequired)
	}
	if len(productIDs) == 0 && len(quantities) == 0 {
		return s.abort(customer.ID, util.ErrEmptyInvoice)
	}

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return s.abort(customer.ID, fmt.Errorf("%w: create invoice: failed to begin transaction: %w", util.ErrPersistenceFailure, err))
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return s.abort(customer.ID, fmt.Errorf("%w: create invoice: transaction controller does not implement DBExecutor", util.ErrPersistenceFailure))
	}

	if err := s.validator.Validate(ctx, txExecutor, productIDs, quantities); err != nil {
		return s.abort(customer.ID, err)
	}

	draft, err := s.writer.CreateHeader(ctx, txExecutor, customer.ID)
	if err != nil {
		return s.abort(customer.ID, err)
	}

	for seq, req := range domain.PairLineItems(productIDs, quantities) {
		price, found, err := s.pricing.ResolvePrice(ctx, txExecutor, req.ProductID)
		if err != nil {
			return s.abort(customer.ID, err)
		}
		if !found {
			// Deleted between validation and pricing.
			return s.abort(customer.ID, fmt.Errorf("%w: product %d at position %d", util.ErrUnknownProduct, req.ProductID, seq))
		}
		if err := draft.AppendLineItem(ctx, seq, req.ProductID, req.Quantity, price); err != nil {
			return s.abort(customer.ID, err)
		}
	}

	if err := draft.FinalizeHeader(ctx, customer.ID); err != nil {
		return s.abort(customer.ID, err)
	}

	if err := s.commitTx(txController); err != nil {
		return s.abort(customer.ID, fmt.Errorf("%w: create invoice: failed to commit transaction: %w", util.ErrPersistenceFailure, err))
	}

	util.GetLogger().Info().
		Int64("invoice_id", draft.ID()).
		Int64("customer_id", customer.ID).
		Int("items", draft.Items()).
		Msg("invoice created")

	return draft.ID(), nil
}

// abort logs a failed creation and returns its error.
func (s *invoiceService) abort(customerID int64, err error) (int64, error) {
	util.GetLogger().Warn().
		Err(err).
		Str("kind", util.Kind(err)).
		Int64("customer_id", customerID).
		Msg("invoice creation aborted")
	return 0, err
}

// GetInvoice retrieves an invoice header together with its items.
func (s *invoiceService) GetInvoice(ctx context.Context, invoiceID int64) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.GetInvoiceByID(ctx, s.dbExecutor, invoiceID)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("get invoice: failed to get invoice %d: %w", invoiceID, err)
	}

	items, err := s.invoiceRepo.GetLineItems(ctx, s.dbExecutor, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("get invoice: failed to get items of invoice %d: %w", invoiceID, err)
	}
	invoice.Items = items

	return invoice, nil
}
