package handlers

import (
	"net/http"

	"github.com/unstakeportal/portal-api-service/internal/types"
)

// GetWithdrawals godoc
// @Summary List withdrawals
// @Description Lists the session's withdrawals in request order, readiness
// @Description re-evaluated against the current clock. Claimed entries are
// @Description included only when include_claimed=true.
// @Produce json
// @Param account query string true "Account address"
// @Param include_claimed query string false "Include claimed withdrawals" Enums(true, false)
// @Success 200 {object} PublicResponse[[]services.WithdrawalPublic] "List of withdrawals"
// @Failure 404 {object} types.Error "No active session for the account"
// @Router /v1/withdrawals [get]
func (h *Handler) GetWithdrawals(request *http.Request) (*Result, *types.Error) {
	account, err := parseAccountQuery(request)
	if err != nil {
		return nil, err
	}

	includeClaimed := request.URL.Query().Get("include_claimed") == "true"

	withdrawals, err := h.services.GetWithdrawals(request.Context(), account, includeClaimed)
	if err != nil {
		return nil, err
	}

	return NewResult(withdrawals), nil
}

// GetWithdrawalHistory godoc
// @Summary Get claimed withdrawal history
// @Description Returns the archived claimed withdrawals for the account across
// @Description sessions. Does not require a live session.
// @Produce json
// @Param account query string true "Account address"
// @Success 200 {object} PublicResponse[[]services.WithdrawalHistoryPublic] "Claimed withdrawal history"
// @Failure 400 {object} types.Error "Missing or invalid account"
// @Router /v1/withdrawals/history [get]
func (h *Handler) GetWithdrawalHistory(request *http.Request) (*Result, *types.Error) {
	account, err := parseAccountQuery(request)
	if err != nil {
		return nil, err
	}

	history, err := h.services.GetWithdrawalHistory(request.Context(), account)
	if err != nil {
		return nil, err
	}

	return NewResult(history), nil
}
