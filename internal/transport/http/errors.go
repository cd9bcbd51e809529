package http

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/makanikart/catalog-service/internal/app/catalog/domain"
)

// Error codes of the response envelope.
const (
	codeValidationFailed = "validation_failed"
	codeNotFound         = "not_found"
	codeConflict         = "conflict"
	codeUnauthorized     = "unauthorized"
	codeRateLimited      = "rate_limited"
	codeDependencyFailed = "dependency_failed"
)

// respondError maps application errors onto the envelope. Validation and
// not-found errors surface verbatim; everything else is genericized so
// storage internals never leak to API clients.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	if v, ok := domain.AsValidationError(err); ok {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "validation failed", v.Fields())
		return
	}

	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, "product not found", nil)
	case errors.Is(err, domain.ErrOfferNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, "offer not found", nil)
	case errors.Is(err, domain.ErrSlugConflict):
		writeError(w, http.StatusConflict, codeConflict, "slug already in use", nil)
	case errors.Is(err, context.Canceled):
		// Client went away; 499 in the nginx tradition.
		writeError(w, 499, codeDependencyFailed, "request canceled", nil)
	default:
		log.Printf("http: %s %s: %v", r.Method, r.URL.Path, err)
		writeError(w, http.StatusInternalServerError, codeDependencyFailed, "service temporarily unavailable", nil)
	}
}

// badRequest reports a malformed query or body parameter without going
// through the domain validation machinery.
func badRequest(w http.ResponseWriter, field, message string) {
	writeError(w, http.StatusBadRequest, codeValidationFailed, "validation failed", map[string]string{field: message})
}
