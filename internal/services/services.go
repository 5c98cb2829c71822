package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/unstakeportal/portal-api-service/internal/chain"
	"github.com/unstakeportal/portal-api-service/internal/clients"
	"github.com/unstakeportal/portal-api-service/internal/config"
	"github.com/unstakeportal/portal-api-service/internal/db"
	"github.com/unstakeportal/portal-api-service/internal/queue"
	"github.com/unstakeportal/portal-api-service/internal/session"
)

// Service layer contains the business logic: the unstake and claim
// controllers, session management and the background refresh. It talks to the
// chain through the gateway interface and to the database and other external
// clients (if any).
type Services struct {
	DbClient  db.DBClient
	Gateway   chain.Gateway
	Sessions  *session.Manager
	Publisher queue.Publisher
	Clients   *clients.Clients
	cfg       *config.Config
}

func New(
	ctx context.Context,
	cfg *config.Config,
	gateway chain.Gateway,
	publisher queue.Publisher,
	clients *clients.Clients,
) (*Services, error) {
	dbClient, err := db.New(ctx, cfg.Db)
	if err != nil {
		log.Ctx(ctx).Fatal().Err(err).Msg("error while creating db client")
		return nil, err
	}
	return &Services{
		DbClient:  dbClient,
		Gateway:   gateway,
		Sessions:  session.NewManager(),
		Publisher: publisher,
		Clients:   clients,
		cfg:       cfg,
	}, nil
}

// DoHealthCheck checks the health of the service dependencies: the database
// and, when enabled, the queue broker connection.
func (s *Services) DoHealthCheck(ctx context.Context) error {
	if err := s.DbClient.Ping(ctx); err != nil {
		return err
	}
	return s.Publisher.IsConnectionHealthy()
}
