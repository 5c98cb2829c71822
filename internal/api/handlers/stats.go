package handlers

import (
	"net/http"

	"github.com/unstakeportal/portal-api-service/internal/types"
)

// GetOverallStats godoc
// @Summary Get portal stats
// @Description Returns the portal-wide lifecycle totals: unstaked and claimed
// @Description volumes and counts.
// @Produce json
// @Success 200 {object} PublicResponse[services.StatsPublic] "Overall portal stats"
// @Failure 500 {object} types.Error "Internal service error"
// @Router /v1/stats [get]
func (h *Handler) GetOverallStats(request *http.Request) (*Result, *types.Error) {
	stats, err := h.services.GetStats(request.Context())
	if err != nil {
		return nil, err
	}

	return NewResult(stats), nil
}
