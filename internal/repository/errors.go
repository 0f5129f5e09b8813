// Package repository provides data access operations for the application.
package repository

import (
	apperrors "wastetrack/internal/errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// mapStoreError normalizes driver errors so raw store messages never reach
// callers: uniqueness violations become ErrDuplicateRecord, transient
// network/timeout failures become the retryable ErrStoreUnavailable.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.ErrDuplicateRecord
	}
	if mongo.IsTimeout(err) || mongo.IsNetworkError(err) {
		return apperrors.ErrStoreUnavailable
	}
	return err
}
