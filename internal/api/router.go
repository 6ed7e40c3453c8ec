// internal/api/router.go
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"invoice-dao/internal/api/handler"
)

// NewRouter sets up and returns a new HTTP router.
func NewRouter(invoiceHandler *handler.InvoiceHandler, customerHandler *handler.CustomerHandler, logger *zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)                       // Add a request ID to the context
	r.Use(middleware.RealIP)                          // Use the real IP address
	r.Use(accessLog(logger))                          // Log HTTP requests
	r.Use(middleware.Recoverer)                       // Recover from panics and return 500
	r.Use(middleware.Timeout(handler.DefaultTimeout)) // Bound request and transaction time

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/invoices", func(r chi.Router) {
		r.Post("/", invoiceHandler.CreateInvoice)
		r.Get("/{invoiceID}", invoiceHandler.GetInvoice)
	})

	r.Route("/customers", func(r chi.Router) {
		r.Get("/", customerHandler.ListCustomers)
		r.Get("/count", customerHandler.CountCustomers)
		r.Get("/{customerID}", customerHandler.GetCustomer)
		r.Get("/{customerID}/name", customerHandler.GetCustomerName)
		r.Get("/{customerID}/invoices/count", customerHandler.CountInvoices)
		r.Get("/{customerID}/total", customerHandler.GetTotal)
	})

	return r
}
