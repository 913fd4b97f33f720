package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sociofeed/models"
)

// ErrNotFound reports that a referenced post or user does not exist.
var ErrNotFound = errors.New("not found")

// PostStore is the durable post collection. The update path is deliberately
// narrow: each mutation writes exactly one field of the document, so a likes
// write can never clobber a concurrent comments write on the same post.
type PostStore interface {
	Insert(ctx context.Context, post models.Post) error
	Get(ctx context.Context, id primitive.ObjectID) (models.Post, error)
	ListAll(ctx context.Context) ([]models.Post, error)
	ListByAuthor(ctx context.Context, authorID primitive.ObjectID) ([]models.Post, error)
	UpdateLikes(ctx context.Context, id primitive.ObjectID, likes models.LikeSet) (models.Post, error)
	UpdateComments(ctx context.Context, id primitive.ObjectID, comments []models.Comment) (models.Post, error)
}

// feedSort orders newest first. ObjectIDs are monotonic, so the secondary
// key settles createdAt ties in insertion order.
var feedSort = bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}}

type MongoPostStore struct {
	coll *mongo.Collection
}

func NewMongoPostStore(coll *mongo.Collection) *MongoPostStore {
	return &MongoPostStore{coll: coll}
}

func (s *MongoPostStore) Insert(ctx context.Context, post models.Post) error {
	if _, err := s.coll.InsertOne(ctx, post); err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

func (s *MongoPostStore) Get(ctx context.Context, id primitive.ObjectID) (models.Post, error) {
	var post models.Post
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Post{}, fmt.Errorf("post %s: %w", id.Hex(), ErrNotFound)
	}
	if err != nil {
		return models.Post{}, fmt.Errorf("get post: %w", err)
	}
	return post, nil
}

func (s *MongoPostStore) ListAll(ctx context.Context) ([]models.Post, error) {
	return s.list(ctx, bson.M{})
}

func (s *MongoPostStore) ListByAuthor(ctx context.Context, authorID primitive.ObjectID) ([]models.Post, error) {
	return s.list(ctx, bson.M{"userId": authorID})
}

func (s *MongoPostStore) list(ctx context.Context, filter bson.M) ([]models.Post, error) {
	cursor, err := s.coll.Find(ctx, filter, options.Find().SetSort(feedSort))
	if err != nil {
		return nil, fmt.Errorf("find posts: %w", err)
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}
	return posts, nil
}

func (s *MongoPostStore) UpdateLikes(ctx context.Context, id primitive.ObjectID, likes models.LikeSet) (models.Post, error) {
	return s.setField(ctx, id, "likes", likes)
}

func (s *MongoPostStore) UpdateComments(ctx context.Context, id primitive.ObjectID, comments []models.Comment) (models.Post, error) {
	return s.setField(ctx, id, "comments", comments)
}

// setField $sets a single named field and returns the document as it stands
// after the write.
func (s *MongoPostStore) setField(ctx context.Context, id primitive.ObjectID, field string, value interface{}) (models.Post, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var post models.Post
	err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{field: value}}, opts).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Post{}, fmt.Errorf("post %s: %w", id.Hex(), ErrNotFound)
	}
	if err != nil {
		return models.Post{}, fmt.Errorf("update post %s: %w", field, err)
	}
	return post, nil
}
