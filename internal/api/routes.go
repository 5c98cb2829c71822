package api

import (
	"github.com/go-chi/chi"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/unstakeportal/portal-api-service/docs"
)

func (a *Server) SetupRoutes(r *chi.Mux) {
	handlers := a.handlers
	r.Get("/healthcheck", registerHandler(handlers.HealthCheck))

	r.Post("/v1/session", registerHandler(handlers.Connect))
	r.Delete("/v1/session", registerHandler(handlers.Disconnect))
	r.Get("/v1/balances", registerHandler(handlers.GetBalances))
	r.Get("/v1/withdrawals", registerHandler(handlers.GetWithdrawals))
	r.Get("/v1/withdrawals/history", registerHandler(handlers.GetWithdrawalHistory))
	r.Get("/v1/fee-quote", registerHandler(handlers.GetFeeQuote))
	r.Post("/v1/unstake", registerHandler(handlers.Unstake))
	r.Post("/v1/claim", registerHandler(handlers.Claim))
	r.Get("/v1/params", registerHandler(handlers.GetParams))
	r.Get("/v1/stats", registerHandler(handlers.GetOverallStats))

	r.Get("/swagger/*", httpSwagger.WrapHandler)
}
