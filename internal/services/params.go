package services

import (
	"context"

	"github.com/unstakeportal/portal-api-service/internal/types"
)

// GetParams returns the portal's staking parameters and network identity, for
// clients that render them before any session exists.
func (s *Services) GetParams(ctx context.Context) (*ParamsPublic, *types.Error) {
	chainCfg := s.cfg.Chain
	return &ParamsPublic{
		ChainID:             chainCfg.ChainID,
		StakingContract:     chainCfg.StakingContract,
		TokenContract:       chainCfg.TokenContract,
		ExplorerURL:         chainCfg.ExplorerURL,
		UnstakingFeePercent: chainCfg.UnstakingFeePercent,
		UnstakingFeeBps:     chainCfg.FeeRateBps(),
		UnstakingPeriodDays: chainCfg.UnstakingPeriodDays,
	}, nil
}
