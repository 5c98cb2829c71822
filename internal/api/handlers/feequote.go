package handlers

import (
	"net/http"

	"github.com/unstakeportal/portal-api-service/internal/types"
	"github.com/unstakeportal/portal-api-service/internal/utils"
)

// GetFeeQuote godoc
// @Summary Quote the unstaking fee
// @Description Computes the fee breakdown for a prospective unstake amount.
// @Description Quotes are ephemeral, nothing is reserved. The optional account
// @Description parameter improves the USD valuation with the session's token
// @Description decimals.
// @Produce json
// @Param amount query string true "Principal in token base units"
// @Param account query string false "Account address"
// @Success 200 {object} PublicResponse[services.FeeQuotePublic] "Fee quote"
// @Failure 400 {object} types.Error "Invalid amount"
// @Router /v1/fee-quote [get]
func (h *Handler) GetFeeQuote(request *http.Request) (*Result, *types.Error) {
	amount := request.URL.Query().Get("amount")
	if amount == "" {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "amount is required")
	}

	account := request.URL.Query().Get("account")
	if account != "" && !utils.IsValidAccountAddress(account) {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid account address")
	}

	quote, err := h.services.GetFeeQuote(request.Context(), account, amount)
	if err != nil {
		return nil, err
	}

	return NewResult(quote), nil
}
