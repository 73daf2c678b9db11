package http

import (
	"photoshare/internal/usecase"
	"photoshare/pkg/logger"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsUseCase usecase.StatsUseCase
	logger       *logger.Logger
}

func NewStatsHandler(statsUseCase usecase.StatsUseCase, logger *logger.Logger) *StatsHandler {
	return &StatsHandler{
		statsUseCase: statsUseCase,
		logger:       logger,
	}
}

// Stats godoc
// @Summary      Platform statistics
// @Description  Aggregate photo, view and user counts, cached for a few minutes
// @Tags         stats
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /stats [get]
func (h *StatsHandler) Stats(c *gin.Context) {
	stats, err := h.statsUseCase.PlatformStats(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to load platform stats: %v", err)
		respondError(c, err)
		return
	}
	ok(c, stats)
}
