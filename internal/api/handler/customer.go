// internal/api/handler/customer.go
package handler

import (
	"net/http"

	"github.com/rs/zerolog"

	"invoice-dao/internal/api/types"
	"invoice-dao/internal/service"
)

// CustomerHandler serves the read-only customer queries.
type CustomerHandler struct {
	service service.CustomerService
	logger  *zerolog.Logger
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(svc service.CustomerService, logger *zerolog.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: svc,
		logger:  logger,
	}
}

// GetCustomer handles GET /customers/{customerID}
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := idParam(r, "customerID")
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	customer, err := h.service.GetCustomer(r.Context(), customerID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, types.NewCustomerResponse(customer))
}

// GetCustomerName handles GET /customers/{customerID}/name
func (h *CustomerHandler) GetCustomerName(w http.ResponseWriter, r *http.Request) {
	customerID, err := idParam(r, "customerID")
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	name, err := h.service.CustomerName(r.Context(), customerID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, types.NameResponse{Name: name})
}

// CountCustomers handles GET /customers/count
func (h *CustomerHandler) CountCustomers(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.CountCustomers(r.Context())
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, types.CountResponse{Count: count})
}

// ListCustomers handles GET /customers?city=
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.service.CustomersInCity(r.Context(), r.URL.Query().Get("city"))
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	data := make([]types.CustomerResponse, 0, len(customers))
	for i := range customers {
		data = append(data, types.NewCustomerResponse(&customers[i]))
	}
	respondWithJSON(h.logger, w, http.StatusOK, types.ListResponse[types.CustomerResponse]{Data: data, Count: len(data)})
}

// CountInvoices handles GET /customers/{customerID}/invoices/count
func (h *CustomerHandler) CountInvoices(w http.ResponseWriter, r *http.Request) {
	customerID, err := idParam(r, "customerID")
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	count, err := h.service.CountInvoicesForCustomer(r.Context(), customerID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, types.CountResponse{Count: count})
}

// GetTotal handles GET /customers/{customerID}/total
func (h *CustomerHandler) GetTotal(w http.ResponseWriter, r *http.Request) {
	customerID, err := idParam(r, "customerID")
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	total, err := h.service.TotalForCustomer(r.Context(), customerID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, types.TotalResponse{CustomerID: customerID, Total: total})
}
