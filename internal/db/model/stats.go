package model

import "go.mongodb.org/mongo-driver/bson/primitive"

const StatsCollection = "portal_stats"

// OverallStatsID is the _id of the single aggregate stats document.
const OverallStatsID = "overall"

// StatsDocument accumulates portal-wide lifecycle totals. Volumes are stored
// as Decimal128 so $inc stays exact for base-unit amounts.
type StatsDocument struct {
	ID            string               `bson:"_id"`
	TotalUnstaked primitive.Decimal128 `bson:"total_unstaked"`
	TotalClaimed  primitive.Decimal128 `bson:"total_claimed"`
	UnstakeCount  int64                `bson:"unstake_count"`
	ClaimCount    int64                `bson:"claim_count"`
}
