package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrValidation marks malformed input rejected before any write.
	ErrValidation = errors.New("validation error")
	// ErrNotFound marks a referenced test, user or attempt that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConsistency marks submitted answers that cannot be lined up with the answer key.
	ErrConsistency = errors.New("consistency error")
	// ErrStorage marks a failed database operation. It is never retried.
	ErrStorage = errors.New("storage error")
)

// storageErr classifies a repository error: missing rows become ErrNotFound,
// everything else ErrStorage.
func storageErr(err error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", msg, ErrNotFound)
	}
	return fmt.Errorf("%s: %w: %v", msg, ErrStorage, err)
}

func validationErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
