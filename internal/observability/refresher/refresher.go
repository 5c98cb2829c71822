package refresher

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/unstakeportal/portal-api-service/internal/services"
)

// StartSessionRefreshCron runs the background session refresh on the given
// interval until the context is cancelled. Each cycle re-syncs balances from
// the chain and re-evaluates withdrawal readiness for every live session.
func StartSessionRefreshCron(ctx context.Context, svc *services.Services, interval time.Duration) error {
	c := cron.New()
	seconds := int(interval.Seconds())
	if seconds < 1 {
		seconds = 1
	}

	_, err := c.AddFunc(fmt.Sprintf("@every %ds", seconds), func() {
		svc.RefreshSessions(ctx)
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Ctx(ctx).Info().Int("intervalSeconds", seconds).Msg("session refresh cron started")

	go func() {
		<-ctx.Done()
		log.Ctx(ctx).Info().Msg("stopping session refresh cron")
		c.Stop()
	}()

	return nil
}
