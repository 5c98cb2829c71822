package services

import (
	"context"

	"github.com/unstakeportal/portal-api-service/internal/types"
)

// GetStats returns the portal-wide lifecycle totals.
func (s *Services) GetStats(ctx context.Context) (*StatsPublic, *types.Error) {
	doc, dbErr := s.DbClient.GetOverallStats(ctx)
	if dbErr != nil {
		return nil, types.NewInternalServiceError(dbErr)
	}

	return &StatsPublic{
		TotalUnstaked: doc.TotalUnstaked.String(),
		TotalClaimed:  doc.TotalClaimed.String(),
		UnstakeCount:  doc.UnstakeCount,
		ClaimCount:    doc.ClaimCount,
	}, nil
}
