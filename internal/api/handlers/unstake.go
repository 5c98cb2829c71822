package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/unstakeportal/portal-api-service/internal/types"
	"github.com/unstakeportal/portal-api-service/internal/utils"
)

type UnstakeRequestPayload struct {
	Account string `json:"account"`
	// Amount is the principal to unstake in token base units, as a decimal
	// string. The unstaking fee is deducted from it.
	Amount string `json:"amount"`
}

func parseUnstakeRequestPayload(request *http.Request) (*UnstakeRequestPayload, *types.Error) {
	payload := &UnstakeRequestPayload{}
	err := json.NewDecoder(request.Body).Decode(payload)
	if err != nil {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid request payload")
	}
	if !utils.IsValidAccountAddress(payload.Account) {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "invalid account address",
		)
	}
	if payload.Amount == "" {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "amount is required",
		)
	}
	return payload, nil
}

// Unstake godoc
// @Summary Unstake tokens
// @Description Submits an unstake for the amount, deducts the unstaking fee and
// @Description records the net amount as a pending withdrawal once the chain
// @Description confirms. Balances roll back on any failure.
// @Accept json
// @Produce json
// @Param payload body UnstakeRequestPayload true "Unstake Request Payload"
// @Success 200 {object} PublicResponse[services.UnstakeResultPublic] "Unstake confirmed"
// @Failure 400 {object} types.Error "Invalid amount"
// @Failure 403 {object} types.Error "Insufficient balance"
// @Failure 502 {object} types.Error "Chain submission failed or reverted"
// @Router /v1/unstake [post]
func (h *Handler) Unstake(request *http.Request) (*Result, *types.Error) {
	payload, err := parseUnstakeRequestPayload(request)
	if err != nil {
		return nil, err
	}

	result, err := h.services.Unstake(request.Context(), payload.Account, payload.Amount)
	if err != nil {
		return nil, err
	}

	return NewResult(result), nil
}
