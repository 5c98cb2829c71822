package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/unstakeportal/portal-api-service/internal/db/model"
)

// IncrementUnstakeStats adds a confirmed unstake to the portal-wide totals.
// Amounts are decimal strings in token base units; Decimal128 keeps the $inc exact.
func (db *Database) IncrementUnstakeStats(ctx context.Context, amount string) error {
	return db.incrementStats(ctx, "total_unstaked", "unstake_count", amount)
}

// IncrementClaimStats adds a successful claim to the portal-wide totals.
func (db *Database) IncrementClaimStats(ctx context.Context, amount string) error {
	return db.incrementStats(ctx, "total_claimed", "claim_count", amount)
}

func (db *Database) incrementStats(ctx context.Context, volumeField, countField, amount string) error {
	volume, err := primitive.ParseDecimal128(amount)
	if err != nil {
		return err
	}

	client := db.Client.Database(db.DbName).Collection(model.StatsCollection)
	filter := bson.M{"_id": model.OverallStatsID}
	update := bson.M{
		"$inc": bson.M{
			volumeField: volume,
			countField:  1,
		},
	}
	opts := options.Update().SetUpsert(true)

	_, err = client.UpdateOne(ctx, filter, update, opts)
	return err
}

func (db *Database) GetOverallStats(ctx context.Context) (*model.StatsDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.StatsCollection)
	filter := bson.M{"_id": model.OverallStatsID}

	var result model.StatsDocument
	err := client.FindOne(ctx, filter).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// No lifecycle activity yet, report zeroes.
			return &model.StatsDocument{ID: model.OverallStatsID}, nil
		}
		return nil, err
	}
	return &result, nil
}
