package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"backend/services"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"not found", services.ErrNotFound, http.StatusNotFound},
		{"invalid input", services.ErrInvalidInput, http.StatusBadRequest},
		{"wrapped invalid input", fmt.Errorf("%w: incorrect password", services.ErrInvalidInput), http.StatusBadRequest},
		{"wrapped not found", fmt.Errorf("%w: user gone", services.ErrNotFound), http.StatusNotFound},
		{"already completed", services.ErrAlreadyCompleted, http.StatusConflict},
		{"duplicate enrollment", services.ErrDuplicateEnrollment, http.StatusConflict},
		{"unavailable", services.ErrUnavailable, http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range tests {
		if got := statusFor(tc.err); got != tc.code {
			t.Errorf("%s: status = %d, want %d", tc.name, got, tc.code)
		}
	}
}
