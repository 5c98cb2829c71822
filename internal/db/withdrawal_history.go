package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/unstakeportal/portal-api-service/internal/db/model"
)

func (db *Database) SaveClaimedWithdrawal(ctx context.Context, doc *model.WithdrawalHistoryDocument) error {
	client := db.Client.Database(db.DbName).Collection(model.WithdrawalHistoryCollection)
	_, err := client.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return &DuplicateKeyError{
				Key:     doc.Account,
				Message: "withdrawal already archived",
			}
		}
		return err
	}
	return nil
}

func (db *Database) FindWithdrawalHistory(ctx context.Context, account string) ([]model.WithdrawalHistoryDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.WithdrawalHistoryCollection)
	filter := bson.M{"account": account}
	opts := options.Find().SetSort(bson.M{"claimed_at": -1})

	cursor, err := client.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx) // nolint:errcheck

	var results []model.WithdrawalHistoryDocument
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}
