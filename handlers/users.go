package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"sociofeed/models"
	"sociofeed/store"
)

// GetUser returns one user record.
func (h *Handler) GetUser(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	user, err := h.users.Get(ctx, id)
	if err != nil {
		respondUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetUserFriends returns the user's friends in display shape.
func (h *Handler) GetUserFriends(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	user, err := h.users.Get(ctx, id)
	if err != nil {
		respondUserError(c, err)
		return
	}

	friends, err := h.users.GetMany(ctx, user.Friends)
	if err != nil {
		respondUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, friendSummaries(friends))
}

// AddRemoveFriend toggles the friendship between the two users on both
// records and returns the first user's refreshed friends list.
func (h *Handler) AddRemoveFriend(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}
	friendID, err := primitive.ObjectIDFromHex(c.Param("friendId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid friend ID"})
		return
	}
	if id == friendID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot friend yourself"})
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	user, err := h.users.Get(ctx, id)
	if err != nil {
		respondUserError(c, err)
		return
	}
	friend, err := h.users.Get(ctx, friendID)
	if err != nil {
		respondUserError(c, err)
		return
	}

	if containsID(user.Friends, friendID) {
		user.Friends = removeID(user.Friends, friendID)
		friend.Friends = removeID(friend.Friends, id)
	} else {
		user.Friends = append(user.Friends, friendID)
		friend.Friends = append(friend.Friends, id)
	}

	if err := h.users.UpdateFriends(ctx, user.ID, user.Friends); err != nil {
		respondUserError(c, err)
		return
	}
	if err := h.users.UpdateFriends(ctx, friend.ID, friend.Friends); err != nil {
		respondUserError(c, err)
		return
	}

	friends, err := h.users.GetMany(ctx, user.Friends)
	if err != nil {
		respondUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, friendSummaries(friends))
}

func respondUserError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	log.Printf("user handler error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
}

func friendSummaries(users []models.User) []models.FriendSummary {
	out := make([]models.FriendSummary, len(users))
	for i, u := range users {
		out[i] = models.FriendSummary{
			ID:          u.ID,
			FirstName:   u.FirstName,
			LastName:    u.LastName,
			Occupation:  u.Occupation,
			Location:    u.Location,
			PicturePath: u.PicturePath,
		}
	}
	return out
}

func containsID(ids []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func removeID(ids []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
