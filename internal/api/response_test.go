package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/ledgerscope/explorer-analytics/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestResponseBuilderError(t *testing.T) {
	tests := []struct {
		name     string
		err      *types.Error
		expected Envelope
	}{
		{
			name:     "internal details are hidden",
			err:      types.NewInternalServiceError(errors.New("dial tcp 10.0.0.3:5432: connection refused")),
			expected: Envelope{Code: http.StatusInternalServerError, Message: internalErrorMessage},
		},
		{
			name:     "bad request echoes message",
			err:      types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "start_time must be an integer"),
			expected: Envelope{Code: http.StatusBadRequest, Message: "start_time must be an integer"},
		},
		{
			name:     "not found",
			err:      types.NewErrorWithMsg(http.StatusNotFound, types.NotFound, "not found"),
			expected: Envelope{Code: http.StatusNotFound, Message: "not found"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewResponse().Data("stale").Error(tt.err).Envelope()
			assert.Equal(t, tt.expected, got)
		})
	}
}
