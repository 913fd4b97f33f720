package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"sociofeed/models"
)

// UserStore resolves the author records posts and comments snapshot their
// display fields from, and owns the friends list.
type UserStore interface {
	Get(ctx context.Context, id primitive.ObjectID) (models.User, error)
	GetMany(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error)
	UpdateFriends(ctx context.Context, id primitive.ObjectID, friends []primitive.ObjectID) error
}

type MongoUserStore struct {
	coll *mongo.Collection
}

func NewMongoUserStore(coll *mongo.Collection) *MongoUserStore {
	return &MongoUserStore{coll: coll}
}

func (s *MongoUserStore) Get(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, fmt.Errorf("user %s: %w", id.Hex(), ErrNotFound)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// GetMany fetches the given users in one round trip. Ids that no longer
// resolve are skipped; the result keeps the order of the input ids.
func (s *MongoUserStore) GetMany(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	if len(ids) == 0 {
		return []models.User{}, nil
	}

	cursor, err := s.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	defer cursor.Close(ctx)

	var fetched []models.User
	if err := cursor.All(ctx, &fetched); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	byID := make(map[primitive.ObjectID]models.User, len(fetched))
	for _, u := range fetched {
		byID[u.ID] = u
	}

	users := []models.User{}
	for _, id := range ids {
		if u, ok := byID[id]; ok {
			users = append(users, u)
		}
	}
	return users, nil
}

func (s *MongoUserStore) UpdateFriends(ctx context.Context, id primitive.ObjectID, friends []primitive.ObjectID) error {
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"friends": friends}})
	if err != nil {
		return fmt.Errorf("update friends: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("user %s: %w", id.Hex(), ErrNotFound)
	}
	return nil
}
