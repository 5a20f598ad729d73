package hostRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"slotbook/models"
)

// ensureIndexes creates indexes for fields frequently used in queries.
// Nickname and email uniqueness is enforced here, at the store.
func (r *mongoHostRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "uid", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "nickname", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *mongoHostRepo) Create(ctx context.Context, host *models.Host) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, host); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrNicknameTaken
		}
		return fmt.Errorf("failed to insert host: %w", err)
	}
	return nil
}

func (r *mongoHostRepo) GetByID(ctx context.Context, uid string) (*models.Host, error) {
	return r.findOne(ctx, bson.M{"uid": uid})
}

func (r *mongoHostRepo) GetByEmail(ctx context.Context, email string) (*models.Host, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *mongoHostRepo) GetByNickname(ctx context.Context, nickname string) (*models.Host, error) {
	return r.findOne(ctx, bson.M{"nickname": nickname})
}

func (r *mongoHostRepo) findOne(ctx context.Context, filter bson.M) (*models.Host, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var host models.Host
	if err := r.coll.FindOne(ctx, filter).Decode(&host); err != nil {
		return nil, err
	}
	return &host, nil
}

func (r *mongoHostRepo) UpdateAdditionalInfo(ctx context.Context, uid, info string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"additionalInfo": info}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"uid": uid}, update)
	if err != nil {
		return fmt.Errorf("failed to update host: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
