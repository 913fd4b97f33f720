package feed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"sociofeed/models"
	"sociofeed/store"
)

// ErrInvalidReference reports a malformed identifier. It is raised before
// any store call, so a rejected request leaves the store untouched.
var ErrInvalidReference = errors.New("invalid reference")

// Service implements the post mutation protocol: creating posts, assembling
// feeds, toggling likes and appending comments.
type Service struct {
	posts store.PostStore
	users store.UserStore
	locks *postLocks
}

func NewService(posts store.PostStore, users store.UserStore) *Service {
	return &Service{posts: posts, users: users, locks: newPostLocks()}
}

// CreatePost persists a new post carrying a snapshot of the author's display
// fields. The snapshot is frozen here; later profile edits do not rewrite
// existing posts.
func (s *Service) CreatePost(ctx context.Context, authorID, description, picturePath string) (models.Post, error) {
	uid, err := primitive.ObjectIDFromHex(authorID)
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: author id %q", ErrInvalidReference, authorID)
	}

	author, err := s.users.Get(ctx, uid)
	if err != nil {
		return models.Post{}, err
	}

	post := models.Post{
		ID:              primitive.NewObjectID(),
		UserID:          author.ID,
		FirstName:       author.FirstName,
		LastName:        author.LastName,
		Location:        author.Location,
		Description:     description,
		PicturePath:     picturePath,
		UserPicturePath: author.PicturePath,
		Likes:           models.LikeSet{},
		Comments:        []models.Comment{},
		CreatedAt:       time.Now(),
	}

	if err := s.posts.Insert(ctx, post); err != nil {
		return models.Post{}, err
	}
	return post, nil
}

// Feed returns posts newest first. An empty authorID selects the global
// feed; otherwise the result is limited to that author's posts. An author
// with no posts yields an empty list, not an error.
func (s *Service) Feed(ctx context.Context, authorID string) ([]models.Post, error) {
	if authorID == "" {
		return s.posts.ListAll(ctx)
	}
	uid, err := primitive.ObjectIDFromHex(authorID)
	if err != nil {
		return nil, fmt.Errorf("%w: author id %q", ErrInvalidReference, authorID)
	}
	return s.posts.ListByAuthor(ctx, uid)
}

// ToggleLike flips userID's membership in the post's like set and returns
// the updated post. The per-post lock is held across the load and the write
// so two toggles on the same post cannot lose an update.
func (s *Service) ToggleLike(ctx context.Context, postID, userID string) (models.Post, error) {
	pid, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: post id %q", ErrInvalidReference, postID)
	}

	mu := s.locks.acquire(pid.Hex())
	defer mu.Unlock()

	post, err := s.posts.Get(ctx, pid)
	if err != nil {
		return models.Post{}, err
	}

	if post.Likes == nil {
		post.Likes = models.LikeSet{}
	}
	post.Likes.Toggle(userID)

	return s.posts.UpdateLikes(ctx, pid, post.Likes)
}

// AddComment appends one immutable comment carrying the author's display
// fields as they stand right now, and returns the updated post. Identical
// text from the same author is appended again, never merged.
func (s *Service) AddComment(ctx context.Context, postID, authorID, commentText string) (models.Post, error) {
	pid, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: post id %q", ErrInvalidReference, postID)
	}
	uid, err := primitive.ObjectIDFromHex(authorID)
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: author id %q", ErrInvalidReference, authorID)
	}

	author, err := s.users.Get(ctx, uid)
	if err != nil {
		return models.Post{}, err
	}

	mu := s.locks.acquire(pid.Hex())
	defer mu.Unlock()

	post, err := s.posts.Get(ctx, pid)
	if err != nil {
		return models.Post{}, err
	}

	comment := models.Comment{
		UserID:      author.ID,
		FirstName:   author.FirstName,
		LastName:    author.LastName,
		PicturePath: author.PicturePath,
		CommentText: commentText,
	}

	return s.posts.UpdateComments(ctx, pid, append(post.Comments, comment))
}
