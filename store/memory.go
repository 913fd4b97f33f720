package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"sociofeed/models"
)

// MemoryPostStore keeps posts in process memory. It backs the tests and
// runs without a MONGODB_URI, and honors the same contract as the Mongo
// store: newest-first scans with insertion-order ties, and single-field
// updates that leave the rest of the post untouched.
type MemoryPostStore struct {
	mu    sync.RWMutex
	posts []models.Post
}

func NewMemoryPostStore() *MemoryPostStore {
	return &MemoryPostStore{posts: []models.Post{}}
}

func (s *MemoryPostStore) Insert(_ context.Context, post models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append(s.posts, clonePost(post))
	return nil
}

func (s *MemoryPostStore) Get(_ context.Context, id primitive.ObjectID) (models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.posts {
		if p.ID == id {
			return clonePost(p), nil
		}
	}
	return models.Post{}, fmt.Errorf("post %s: %w", id.Hex(), ErrNotFound)
}

func (s *MemoryPostStore) ListAll(_ context.Context) ([]models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedClone(s.posts, func(models.Post) bool { return true }), nil
}

func (s *MemoryPostStore) ListByAuthor(_ context.Context, authorID primitive.ObjectID) ([]models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedClone(s.posts, func(p models.Post) bool { return p.UserID == authorID }), nil
}

func (s *MemoryPostStore) UpdateLikes(_ context.Context, id primitive.ObjectID, likes models.LikeSet) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts[i].Likes = cloneLikes(likes)
			return clonePost(s.posts[i]), nil
		}
	}
	return models.Post{}, fmt.Errorf("post %s: %w", id.Hex(), ErrNotFound)
}

func (s *MemoryPostStore) UpdateComments(_ context.Context, id primitive.ObjectID, comments []models.Comment) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts[i].Comments = append([]models.Comment{}, comments...)
			return clonePost(s.posts[i]), nil
		}
	}
	return models.Post{}, fmt.Errorf("post %s: %w", id.Hex(), ErrNotFound)
}

// sortedClone filters, copies, then stable-sorts newest first. The stable
// sort keeps insertion order among posts created at the same instant.
func sortedClone(posts []models.Post, keep func(models.Post) bool) []models.Post {
	out := []models.Post{}
	for _, p := range posts {
		if keep(p) {
			out = append(out, clonePost(p))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// clonePost deep-copies the mutable fields so callers can't alias the
// store's state through a returned post.
func clonePost(p models.Post) models.Post {
	p.Likes = cloneLikes(p.Likes)
	p.Comments = append([]models.Comment{}, p.Comments...)
	return p
}

func cloneLikes(likes models.LikeSet) models.LikeSet {
	out := models.LikeSet{}
	for k, v := range likes {
		out[k] = v
	}
	return out
}

// MemoryUserStore is the in-process counterpart of MongoUserStore.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[primitive.ObjectID]models.User
}

func NewMemoryUserStore(users ...models.User) *MemoryUserStore {
	s := &MemoryUserStore{users: make(map[primitive.ObjectID]models.User)}
	for _, u := range users {
		s.users[u.ID] = cloneUser(u)
	}
	return s
}

// Put inserts or replaces a user record.
func (s *MemoryUserStore) Put(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = cloneUser(user)
}

func (s *MemoryUserStore) Get(_ context.Context, id primitive.ObjectID) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return models.User{}, fmt.Errorf("user %s: %w", id.Hex(), ErrNotFound)
	}
	return cloneUser(u), nil
}

func (s *MemoryUserStore) GetMany(_ context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := []models.User{}
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			users = append(users, cloneUser(u))
		}
	}
	return users, nil
}

func (s *MemoryUserStore) UpdateFriends(_ context.Context, id primitive.ObjectID, friends []primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return fmt.Errorf("user %s: %w", id.Hex(), ErrNotFound)
	}
	u.Friends = append([]primitive.ObjectID{}, friends...)
	s.users[id] = u
	return nil
}

func cloneUser(u models.User) models.User {
	u.Friends = append([]primitive.ObjectID{}, u.Friends...)
	return u
}
