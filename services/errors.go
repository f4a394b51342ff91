package services

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrAlreadyCompleted    = errors.New("challenge already completed")
	ErrDuplicateEnrollment = errors.New("already enrolled in challenge")
	ErrUnavailable         = errors.New("store unavailable")
)

// storeErr maps a GORM error to the service taxonomy. Missing rows are
// NotFound; anything else (connectivity, bad SQL) is retryable
// Unavailable and must never masquerade as NotFound.
func storeErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return ErrUnavailable
}
