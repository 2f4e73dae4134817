// Package repository holds the per-collection data access types. Every method
// takes the request context and maps driver errors onto apperr kinds.
package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"fliquecms/internal/apperr"
)

// storeErr normalizes a driver error: no-document and duplicate-key get their
// own kinds, everything else is a store failure.
func storeErr(err error, notFoundMsg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return apperr.New(apperr.NotFound, notFoundMsg)
	case mongo.IsDuplicateKeyError(err):
		return apperr.Wrap(apperr.Conflict, err, "duplicate key")
	default:
		return apperr.Wrap(apperr.Store, err, "store operation failed")
	}
}
