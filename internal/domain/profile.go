package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Profile represents a user account and its public profile.
type Profile struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username" json:"username"` // unique, stored lowercase
	Email        string             `bson:"email" json:"-"`           // unique, never exposed
	PasswordHash string             `bson:"passwordHash" json:"-"`
	DisplayName  string             `bson:"displayName,omitempty" json:"displayName,omitempty"`
	AvatarURL    string             `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	Bio          string             `bson:"bio,omitempty" json:"bio,omitempty"`
	IsPrivate    bool               `bson:"isPrivate" json:"isPrivate"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ProfileUpdate carries the editable profile fields. Nil means "leave as is".
type ProfileUpdate struct {
	DisplayName *string
	AvatarURL   *string
	Bio         *string
	IsPrivate   *bool
}
