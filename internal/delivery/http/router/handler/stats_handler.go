package handler

import (
	"log/slog"
	"net/http"

	"github.com/kendymann/leftover-love/internal/delivery/http/response"
	"github.com/kendymann/leftover-love/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StatsHandler serves the public platform-wide impact statistics.
type StatsHandler struct {
	statsUc usecase.StatsUsecase
	logger  *slog.Logger
}

// NewStatsHandler is the constructor for StatsHandler, injected by Fx.
func NewStatsHandler(statsUc usecase.StatsUsecase, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{
		statsUc: statsUc,
		logger:  logger,
	}
}

// GetGlobalStats returns impact totals across all completed pickups.
func (h *StatsHandler) GetGlobalStats(c echo.Context) error {
	stats, err := h.statsUc.Global(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Statistics retrieved successfully")
}
