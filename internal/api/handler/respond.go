// internal/api/handler/respond.go
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"invoice-dao/internal/api/types"
	"invoice-dao/internal/util" // For custom errors
)

// DefaultTimeout bounds every request, including the invoice transaction it runs.
const DefaultTimeout = 30 * time.Second

// Helper function to send JSON responses.
func respondWithJSON(logger *zerolog.Logger, w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error().Err(err).Msg("failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// Helper function to send error responses.
func respondWithError(logger *zerolog.Logger, w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case util.IsError(err, util.ErrPersistenceFailure): // may wrap ErrNotFound from a zero-row update
		logger.Error().Err(err).Msg("persistence failure")
		message = "Could not store the invoice"
	case util.IsError(err, util.ErrShapeMismatch),
		util.IsError(err, util.ErrUnknownProduct),
		util.IsError(err, util.ErrInvalidQuantity),
		util.IsError(err, util.ErrEmptyInvoice),
		util.IsError(err, util.ErrCustomerRequired),
		util.IsError(err, util.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		message = err.Error() // Validation messages name the offending position
	case util.IsError(err, util.ErrCustomerNotFound):
		statusCode = http.StatusNotFound
		message = "Customer not found"
	case util.IsError(err, util.ErrInvoiceNotFound):
		statusCode = http.StatusNotFound
		message = "Invoice not found"
	case util.IsError(err, util.ErrNotFound):
		statusCode = http.StatusNotFound
		message = "Resource not found"
	default:
		logger.Error().Err(err).Msg("unhandled service error")
	}

	respondWithJSON(logger, w, statusCode, types.ErrorResponse{Error: message, Kind: util.Kind(err)})
}

// idParam parses a positive int64 path parameter.
func idParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, util.ErrInvalidInput
	}
	return id, nil
}
