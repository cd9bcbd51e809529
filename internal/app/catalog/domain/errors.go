package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors shared across the catalog subsystem.
var (
	ErrProductNotFound = errors.New("product not found")
	ErrOfferNotFound   = errors.New("offer not found")
	ErrSlugConflict    = errors.New("slug already in use")
)

// ValidationError carries field-level violations for admin writes. It is
// surfaced verbatim to the caller; nothing is applied when it fires.
type ValidationError struct {
	fields map[string]string
}

// NewValidationError creates an empty ValidationError.
func NewValidationError() *ValidationError {
	return &ValidationError{fields: make(map[string]string)}
}

// Add records a violation for a field. The first message per field wins.
func (v *ValidationError) Add(field, message string) {
	if _, ok := v.fields[field]; !ok {
		v.fields[field] = message
	}
}

// HasErrors reports whether any violation was recorded.
func (v *ValidationError) HasErrors() bool {
	return len(v.fields) > 0
}

// Fields returns a copy of the field-to-message map.
func (v *ValidationError) Fields() map[string]string {
	out := make(map[string]string, len(v.fields))
	for k, msg := range v.fields {
		out[k] = msg
	}
	return out
}

// Error implements error with a stable, sorted field listing.
func (v *ValidationError) Error() string {
	names := make([]string, 0, len(v.fields))
	for k := range v.fields {
		names = append(names, k)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, v.fields[name]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsValidationError unwraps err into a *ValidationError when possible.
func AsValidationError(err error) (*ValidationError, bool) {
	var v *ValidationError
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
