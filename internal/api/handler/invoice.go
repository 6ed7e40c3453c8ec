// internal/api/handler/invoice.go
package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"invoice-dao/internal/api/types"
	"invoice-dao/internal/service"
	"invoice-dao/internal/util"
)

// InvoiceHandler handles HTTP requests related to invoices.
type InvoiceHandler struct {
	invoices  service.InvoiceService
	customers service.CustomerService
	validate  *validator.Validate
	logger    *zerolog.Logger
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoices service.InvoiceService, customers service.CustomerService, logger *zerolog.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		invoices:  invoices,
		customers: customers,
		validate:  validator.New(),
		logger:    logger,
	}
}

// CreateInvoiceRequest represents the request body for invoice creation.
// product_ids[i] is billed quantities[i] times.
type CreateInvoiceRequest struct {
	CustomerID int64   `json:"customer_id" validate:"required,gt=0"`
	ProductIDs []int64 `json:"product_ids"`
	Quantities []int   `json:"quantities"`
}

// CreateInvoice handles the create invoice request.
// POST /invoices
func (h *InvoiceHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var req CreateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, fmt.Errorf("%w: malformed body", util.ErrInvalidInput))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondWithError(h.logger, w, fmt.Errorf("%w: %s", util.ErrInvalidInput, err.Error()))
		return
	}

	customer, err := h.customers.GetCustomer(r.Context(), req.CustomerID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	invoiceID, err := h.invoices.CreateInvoice(r.Context(), customer, req.ProductIDs, req.Quantities)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusCreated, types.CreateInvoiceResponse{InvoiceID: invoiceID})
}

// GetInvoice handles the get invoice request.
// GET /invoices/{invoiceID}
func (h *InvoiceHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	invoiceID, err := idParam(r, "invoiceID")
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	invoice, err := h.invoices.GetInvoice(r.Context(), invoiceID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, types.NewInvoiceResponse(invoice))
}
