package errors

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpstreamError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *UpstreamError
		want string
	}{
		{
			name: "Typed backend error",
			err:  NewUpstreamError(404, "TABLE_NOT_FOUND", "Could not find table tblX"),
			want: "backend error (404) TABLE_NOT_FOUND: Could not find table tblX",
		},
		{
			name: "Type only",
			err:  NewUpstreamError(401, "AUTHENTICATION_REQUIRED", ""),
			want: "backend error (401) AUTHENTICATION_REQUIRED",
		},
		{
			name: "Transport failure",
			err:  WrapUpstreamError(context.DeadlineExceeded),
			want: "backend error: context deadline exceeded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestClassification(t *testing.T) {
	wrapped := fmt.Errorf("listing tables: %w", NewUpstreamError(500, "SERVER_ERROR", "boom"))

	assert.True(t, IsUpstream(wrapped))
	assert.False(t, IsValidation(wrapped))
	assert.Equal(t, http.StatusBadGateway, GetHTTPStatus(wrapped))
	assert.Equal(t, "UPSTREAM_ERROR", GetErrorCode(wrapped))

	assert.True(t, IsValidation(NewValidationError("", "No valid data provided")))
	assert.Equal(t, "No valid data provided", NewValidationError("", "No valid data provided").Error())
	assert.True(t, IsNotFound(NewNotFoundError("table", "tbl1")))
	assert.True(t, IsConfig(NewConfigError("AIRTABLE_TOKEN", "is required")))

	plain := fmt.Errorf("plain")
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus(plain))
	assert.Equal(t, "UNKNOWN_ERROR", GetErrorCode(plain))
}

func TestUpstreamError_Unwrap(t *testing.T) {
	err := WrapUpstreamError(context.Canceled)
	assert.ErrorIs(t, err, context.Canceled)
}
