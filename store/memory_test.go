package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"sociofeed/models"
)

func newPost(author primitive.ObjectID, createdAt time.Time) models.Post {
	return models.Post{
		ID:        primitive.NewObjectID(),
		UserID:    author,
		Likes:     models.LikeSet{},
		Comments:  []models.Comment{},
		CreatedAt: createdAt,
	}
}

func TestMemoryPostStoreOrdering(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryPostStore()
	author := primitive.NewObjectID()

	t0 := time.Unix(1000, 0)
	old := newPost(author, t0)
	newer := newPost(author, t0.Add(time.Hour))
	tieA := newPost(author, t0.Add(2*time.Hour))
	tieB := newPost(author, t0.Add(2*time.Hour))

	for _, p := range []models.Post{old, tieA, tieB, newer} {
		if err := s.Insert(ctx, p); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	posts, err := s.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []primitive.ObjectID{tieA.ID, tieB.ID, newer.ID, old.ID}
	if len(posts) != len(want) {
		t.Fatalf("expected %d posts, got %d", len(want), len(posts))
	}
	for i, id := range want {
		if posts[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id.Hex(), posts[i].ID.Hex())
		}
	}
}

func TestMemoryPostStoreNarrowUpdate(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryPostStore()

	post := newPost(primitive.NewObjectID(), time.Now())
	post.Comments = []models.Comment{{CommentText: "first"}}
	if err := s.Insert(ctx, post); err != nil {
		t.Fatalf("insert: %v", err)
	}

	likes := models.LikeSet{}
	likes.Add("u1")
	updated, err := s.UpdateLikes(ctx, post.ID, likes)
	if err != nil {
		t.Fatalf("update likes: %v", err)
	}
	if len(updated.Comments) != 1 || updated.Comments[0].CommentText != "first" {
		t.Fatal("likes update must not touch comments")
	}

	updated, err = s.UpdateComments(ctx, post.ID, append(updated.Comments, models.Comment{CommentText: "second"}))
	if err != nil {
		t.Fatalf("update comments: %v", err)
	}
	if !updated.Likes.Has("u1") {
		t.Fatal("comments update must not touch likes")
	}
}

func TestMemoryPostStoreGetMissing(t *testing.T) {
	s := NewMemoryPostStore()
	_, err := s.Get(context.Background(), primitive.NewObjectID())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryPostStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryPostStore()

	post := newPost(primitive.NewObjectID(), time.Now())
	if err := s.Insert(ctx, post); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := s.Get(ctx, post.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	got.Likes.Add("intruder")

	again, err := s.Get(ctx, post.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if again.Likes.Has("intruder") {
		t.Fatal("mutating a returned post must not change stored state")
	}
}

func TestMemoryUserStoreGetMany(t *testing.T) {
	ctx := context.Background()
	a := models.User{ID: primitive.NewObjectID(), FirstName: "Ada"}
	b := models.User{ID: primitive.NewObjectID(), FirstName: "Bo"}
	s := NewMemoryUserStore(a, b)

	users, err := s.GetMany(ctx, []primitive.ObjectID{b.ID, primitive.NewObjectID(), a.ID})
	if err != nil {
		t.Fatalf("get many: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].ID != b.ID || users[1].ID != a.ID {
		t.Fatal("result must keep the order of the requested ids")
	}
}

func TestMemoryUserStoreUpdateFriends(t *testing.T) {
	ctx := context.Background()
	u := models.User{ID: primitive.NewObjectID()}
	s := NewMemoryUserStore(u)

	friend := primitive.NewObjectID()
	if err := s.UpdateFriends(ctx, u.ID, []primitive.ObjectID{friend}); err != nil {
		t.Fatalf("update friends: %v", err)
	}

	got, err := s.Get(ctx, u.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Friends) != 1 || got.Friends[0] != friend {
		t.Fatal("friends update not persisted")
	}

	if err := s.UpdateFriends(ctx, primitive.NewObjectID(), nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown user, got %v", err)
	}
}
