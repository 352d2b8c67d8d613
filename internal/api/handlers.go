package api

import (
	"context"
	"net/http"

	"github.com/ledgerscope/explorer-analytics/internal/types"
)

// Service is the analytics surface the handlers need
type Service interface {
	Ping(ctx context.Context) *types.Error
	GetStatistics(ctx context.Context) (*types.StatisticsSnapshot, *types.Error)
	GetDistribution(ctx context.Context) (*types.DistributionSnapshot, *types.Error)
	GetAddressCount(ctx context.Context, window types.TimeWindow) (*types.AddressCountResult, *types.Error)
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.service.Ping(ctx); err != nil {
		NewResponse().Error(err).Write(ctx, w)
		return
	}
	NewResponse().Data("ok").Write(ctx, w)
}

func (h *Handler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	stats, err := h.service.GetStatistics(ctx)
	if err != nil {
		NewResponse().Error(err).Write(ctx, w)
		return
	}
	NewResponse().Data(stats).Write(ctx, w)
}

func (h *Handler) GetDistribution(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	dist, err := h.service.GetDistribution(ctx)
	if err != nil {
		NewResponse().Error(err).Write(ctx, w)
		return
	}
	NewResponse().Data(dist).Write(ctx, w)
}

func (h *Handler) GetAddressCount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	window, err := parseTimeWindow(r.URL.Query())
	if err != nil {
		NewResponse().Error(err).Write(ctx, w)
		return
	}

	count, err := h.service.GetAddressCount(ctx, window)
	if err != nil {
		NewResponse().Error(err).Write(ctx, w)
		return
	}
	NewResponse().Data(count).Write(ctx, w)
}
