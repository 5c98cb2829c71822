package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/unstakeportal/portal-api-service/internal/types"
	"github.com/unstakeportal/portal-api-service/internal/utils"
)

type ClaimRequestPayload struct {
	Account      string `json:"account"`
	WithdrawalID uint64 `json:"withdrawal_id"`
}

func parseClaimRequestPayload(request *http.Request) (*ClaimRequestPayload, *types.Error) {
	payload := &ClaimRequestPayload{}
	err := json.NewDecoder(request.Body).Decode(payload)
	if err != nil {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid request payload")
	}
	if !utils.IsValidAccountAddress(payload.Account) {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "invalid account address",
		)
	}
	return payload, nil
}

// Claim godoc
// @Summary Claim a ready withdrawal
// @Description Submits a claim for the withdrawal and marks it claimed once the
// @Description chain confirms. The withdrawal must be past its unlock time.
// @Accept json
// @Produce json
// @Param payload body ClaimRequestPayload true "Claim Request Payload"
// @Success 200 {object} PublicResponse[services.ClaimResultPublic] "Withdrawal claimed"
// @Failure 403 {object} types.Error "Withdrawal not ready"
// @Failure 404 {object} types.Error "Withdrawal not found"
// @Failure 502 {object} types.Error "Chain submission failed or reverted"
// @Router /v1/claim [post]
func (h *Handler) Claim(request *http.Request) (*Result, *types.Error) {
	payload, err := parseClaimRequestPayload(request)
	if err != nil {
		return nil, err
	}

	result, err := h.services.Claim(request.Context(), payload.Account, payload.WithdrawalID)
	if err != nil {
		return nil, err
	}

	return NewResult(result), nil
}
