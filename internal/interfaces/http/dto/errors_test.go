package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code   string
		status int
	}{
		{ErrCodeBadRequest, http.StatusBadRequest},
		{ErrCodeUnauthorized, http.StatusUnauthorized},
		{ErrCodeForbidden, http.StatusForbidden},
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeInternal, http.StatusInternalServerError},
		{"ALREADY_EXISTS", http.StatusConflict},
		{"DUPLICATE_INVOICE", http.StatusConflict},
		{"INSUFFICIENT_STOCK", http.StatusUnprocessableEntity},
		{"INVALID_CREDENTIALS", http.StatusUnauthorized},
		{"TOKEN_EXPIRED", http.StatusUnauthorized},
		{"INVALID_DATE", http.StatusBadRequest},
		{"INVALID_CATEGORY", http.StatusBadRequest},
		{"EMPTY_ITEMS", http.StatusBadRequest},
		{"SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.status, GetHTTPStatus(tt.code))
		})
	}
}

func TestResponseEnvelopes(t *testing.T) {
	success := NewSuccessResponse(map[string]int{"id": 1})
	assert.True(t, success.Success)
	assert.Nil(t, success.Error)

	failure := NewErrorResponse("NOT_FOUND", "Resource not found")
	assert.False(t, failure.Success)
	assert.Equal(t, "NOT_FOUND", failure.Error.Code)
}
