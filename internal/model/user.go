package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User represents a registered user in the system.
type User struct {
	ID           bson.ObjectID `json:"-" bson:"_id,omitempty"`
	Email        string        `json:"email" bson:"email"`
	PasswordHash string        `json:"-" bson:"password_hash"` // Never expose in JSON
	CreatedAt    time.Time     `json:"created_at" bson:"created_at"`
}
