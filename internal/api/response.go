package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ledgerscope/explorer-analytics/internal/types"
	"github.com/rs/zerolog/log"
)

const internalErrorMessage = "internal service error"

// Envelope is the body of every api response. Data is null on failure and
// Code always equals the http status.
type Envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// ResponseBuilder assembles an Envelope and writes it with a matching status
type ResponseBuilder struct {
	envelope Envelope
}

func NewResponse() *ResponseBuilder {
	return &ResponseBuilder{
		envelope: Envelope{Code: http.StatusOK},
	}
}

func (b *ResponseBuilder) Data(data any) *ResponseBuilder {
	b.envelope.Data = data
	return b
}

// Error turns err into a failed envelope. Internal details stay in the logs,
// only client input errors echo their message back.
func (b *ResponseBuilder) Error(err *types.Error) *ResponseBuilder {
	b.envelope.Code = err.StatusCode
	b.envelope.Data = nil
	switch err.ErrorCode {
	case types.BadRequest, types.NotFound:
		b.envelope.Message = err.Error()
	default:
		b.envelope.Message = internalErrorMessage
	}
	return b
}

func (b *ResponseBuilder) Envelope() Envelope {
	return b.envelope
}

func (b *ResponseBuilder) Write(ctx context.Context, w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(b.envelope.Code)
	if err := json.NewEncoder(w).Encode(b.envelope); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to write response")
	}
}
