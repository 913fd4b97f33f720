package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is a single feed entry. The author's display fields are copied in at
// creation time and never refreshed when the profile changes later, so old
// posts keep showing the name and picture the author had when posting.
type Post struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID `bson:"userId" json:"userId"`
	FirstName       string             `bson:"firstName" json:"firstName"`
	LastName        string             `bson:"lastName" json:"lastName"`
	Location        string             `bson:"location" json:"location"`
	Description     string             `bson:"description" json:"description"`
	PicturePath     string             `bson:"picturePath" json:"picturePath"`
	UserPicturePath string             `bson:"userPicturePath" json:"userPicturePath"`
	Likes           LikeSet            `bson:"likes" json:"likes"`
	Comments        []Comment          `bson:"comments" json:"comments"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}

// Comment lives inside its post's comments array. Array position is the
// display order; entries are never edited or removed after being appended.
type Comment struct {
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	FirstName   string             `bson:"firstName" json:"firstName"`
	LastName    string             `bson:"lastName" json:"lastName"`
	PicturePath string             `bson:"picturePath" json:"picturePath"`
	CommentText string             `bson:"commentText" json:"commentText"`
}
