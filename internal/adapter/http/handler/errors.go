package handler

import (
	"errors"
	"net/http"

	"github.com/Temutjin2k/delivery-pricing/internal/domain/types"
)

// messageNoPrice is returned to clients when an address cannot be located.
const messageNoPrice = "could not determine a price for this address"

func errorResponse(w http.ResponseWriter, status int, message any) {
	env := envelope{"error": message}

	// Fall back to an empty 500 response if the envelope cannot be written.
	if err := writeJSON(w, status, env, nil); err != nil {
		w.WriteHeader(500)
	}
}

// failedValidationResponse returns 422 UnprocessableEntity status.
// The request was well-formed but its fields failed validation, so repeating
// it without modification will fail the same way.
func failedValidationResponse(w http.ResponseWriter, errors map[string]string) {
	errorResponse(w, http.StatusUnprocessableEntity, errors)
}

// badRequestResponse returns 400 BadRequest status
func badRequestResponse(w http.ResponseWriter, message any) {
	errorResponse(w, http.StatusBadRequest, message)
}

// internalErrorResponse returns 500 InternalServerError status
func internalErrorResponse(w http.ResponseWriter, message any) {
	errorResponse(w, http.StatusInternalServerError, message)
}

// serviceErrorResponse maps a service error to its status code.
// Unlocatable addresses get a fixed message so provider details do not leak to clients.
func serviceErrorResponse(w http.ResponseWriter, err error) {
	code := GetCode(err)
	switch {
	case errors.Is(err, types.ErrNotFound):
		errorResponse(w, code, messageNoPrice)
	case code == http.StatusInternalServerError:
		internalErrorResponse(w, "the server encountered a problem and could not process your request")
	default:
		errorResponse(w, code, err.Error())
	}
}
