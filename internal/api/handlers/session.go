package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/unstakeportal/portal-api-service/internal/types"
	"github.com/unstakeportal/portal-api-service/internal/utils"
)

type ConnectRequestPayload struct {
	Account string `json:"account"`
}

func parseConnectRequestPayload(request *http.Request) (*ConnectRequestPayload, *types.Error) {
	payload := &ConnectRequestPayload{}
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

// Connect godoc
// @Summary Connect an account
// @Description Establishes a session for the account, verifying the provider and
// @Description network and seeding balances and withdrawals from the chain.
// @Accept json
// @Produce json
// @Param payload body ConnectRequestPayload true "Connect Request Payload"
// @Success 200 {object} PublicResponse[services.SessionPublic] "Session established"
// @Failure 400 {object} types.Error "Invalid request payload"
// @Failure 502 {object} types.Error "Provider unreachable or on the wrong network"
// @Router /v1/session [post]
func (h *Handler) Connect(request *http.Request) (*Result, *types.Error) {
	payload, err := parseConnectRequestPayload(request)
	if err != nil {
		return nil, err
	}

	session, err := h.services.Connect(request.Context(), payload.Account)
	if err != nil {
		return nil, err
	}

	return NewResult(session), nil
}

// Disconnect godoc
// @Summary Disconnect an account
// @Description Drops the account's session and its in-memory state. Claimed
// @Description withdrawal history survives in the archive.
// @Produce json
// @Param account query string true "Account address"
// @Success 200 "Session dropped"
// @Failure 404 {object} types.Error "No active session for the account"
// @Router /v1/session [delete]
func (h *Handler) Disconnect(request *http.Request) (*Result, *types.Error) {
	account, err := parseAccountQuery(request)
	if err != nil {
		return nil, err
	}

	if err := h.services.Disconnect(request.Context(), account); err != nil {
		return nil, err
	}

	return &Result{Status: http.StatusOK}, nil
}
