package handlers

import (
	"net/http"

	"github.com/unstakeportal/portal-api-service/internal/types"
)

// GetParams godoc
// @Summary Get portal parameters
// @Description Returns the staking parameters and network identity: chain id,
// @Description contract addresses, fee rate and unstaking period.
// @Produce json
// @Success 200 {object} PublicResponse[services.ParamsPublic] "Portal parameters"
// @Router /v1/params [get]
func (h *Handler) GetParams(request *http.Request) (*Result, *types.Error) {
	params, err := h.services.GetParams(request.Context())
	if err != nil {
		return nil, err
	}

	return NewResult(params), nil
}
