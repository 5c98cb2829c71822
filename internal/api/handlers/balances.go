package handlers

import (
	"net/http"

	"github.com/unstakeportal/portal-api-service/internal/types"
)

// GetBalances godoc
// @Summary Get account balances
// @Description Returns the staked, reward and available balances of the
// @Description account's session, in token base units.
// @Produce json
// @Param account query string true "Account address"
// @Success 200 {object} PublicResponse[services.BalancePublic] "Balances"
// @Failure 404 {object} types.Error "No active session for the account"
// @Router /v1/balances [get]
func (h *Handler) GetBalances(request *http.Request) (*Result, *types.Error) {
	account, err := parseAccountQuery(request)
	if err != nil {
		return nil, err
	}

	balances, err := h.services.GetBalances(request.Context(), account)
	if err != nil {
		return nil, err
	}

	return NewResult(balances), nil
}
