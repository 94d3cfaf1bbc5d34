package services

import (
	"errors"

	"github.com/google/uuid"
)

// Service errors form the taxonomy handlers translate to HTTP statuses.
var (
	ErrValidation = errors.New("invalid input")
	ErrNotFound   = errors.New("resource not found")
	ErrForbidden  = errors.New("insufficient ownership")
	ErrConflict   = errors.New("duplicate resource")
)

// validID reports whether a route identifier is structurally valid.
// Malformed identifiers are treated exactly like missing resources so
// existence is never leaked through a different status code.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
