package middlewares

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/unstakeportal/portal-api-service/internal/config"
)

const maxAge = 300

func CorsMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		MaxAge:         maxAge,
	})
	return func(next http.Handler) http.Handler {
		return c.Handler(next)
	}
}
