package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the account record posts and comments snapshot their display
// fields from. Credentials are owned by the external auth layer and never
// stored here.
type User struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	FirstName     string               `bson:"firstName" json:"firstName"`
	LastName      string               `bson:"lastName" json:"lastName"`
	Email         string               `bson:"email" json:"email"`
	PicturePath   string               `bson:"picturePath" json:"picturePath"`
	Friends       []primitive.ObjectID `bson:"friends" json:"friends"`
	Location      string               `bson:"location" json:"location"`
	Occupation    string               `bson:"occupation" json:"occupation"`
	ViewedProfile int64                `bson:"viewedProfile" json:"viewedProfile"`
	Impressions   int64                `bson:"impressions" json:"impressions"`
	CreatedAt     time.Time            `bson:"createdAt" json:"createdAt"`
}

// FriendSummary is the display shape friend lists are rendered from.
type FriendSummary struct {
	ID          primitive.ObjectID `json:"id"`
	FirstName   string             `json:"firstName"`
	LastName    string             `json:"lastName"`
	Occupation  string             `json:"occupation"`
	Location    string             `json:"location"`
	PicturePath string             `json:"picturePath"`
}
