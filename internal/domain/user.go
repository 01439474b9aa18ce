package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is the single persisted account entity. Email and phone are optional
// individually but at least one must be set; each is unique across the
// collection when present. PasswordDigest holds the bcrypt digest, never the
// plaintext.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Email          string             `bson:"email,omitempty"`
	Phone          string             `bson:"phone,omitempty"`
	Name           string             `bson:"name"`
	PasswordDigest string             `bson:"password"`
	ProfileImage   string             `bson:"profileImage,omitempty"`
	IsAdmin        bool               `bson:"isAdmin"`
}
