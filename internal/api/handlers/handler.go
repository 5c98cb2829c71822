package handlers

import (
	"context"
	"net/http"

	"github.com/unstakeportal/portal-api-service/internal/config"
	"github.com/unstakeportal/portal-api-service/internal/services"
	"github.com/unstakeportal/portal-api-service/internal/types"
	"github.com/unstakeportal/portal-api-service/internal/utils"
)

type Handler struct {
	config   *config.Config
	services *services.Services
}

type PublicResponse[T any] struct {
	Data T `json:"data"`
}

type Result struct {
	Data   interface{}
	Status int
}

// NewResult returns a successful result, with default status code 200
func NewResult[T any](data T) *Result {
	res := &PublicResponse[T]{Data: data}
	return &Result{Data: res, Status: http.StatusOK}
}

func New(
	ctx context.Context, cfg *config.Config, services *services.Services,
) (*Handler, error) {
	return &Handler{
		config:   cfg,
		services: services,
	}, nil
}

// parseAccountQuery extracts and validates the account query parameter.
func parseAccountQuery(request *http.Request) (string, *types.Error) {
	account := request.URL.Query().Get("account")
	if account == "" {
		return "", types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "account is required")
	}
	if !utils.IsValidAccountAddress(account) {
		return "", types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid account address")
	}
	return account, nil
}
