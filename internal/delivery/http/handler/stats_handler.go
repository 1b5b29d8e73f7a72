package handler

import (
	"context"

	"clinic-registry/internal/usecase"
)

type StatsHandler struct {
	statsUsecase usecase.StatsUsecase
}

func NewStatsHandler(statsUsecase usecase.StatsUsecase) *StatsHandler {
	return &StatsHandler{statsUsecase: statsUsecase}
}

// GetStats returns the dashboard counters.
func (h *StatsHandler) GetStats(ctx context.Context, req *Request) (interface{}, error) {
	return h.statsUsecase.GetStats(ctx)
}
