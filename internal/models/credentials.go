package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminCredentials is a singleton record. Only a bcrypt hash of the password
// is ever stored.
type AdminCredentials struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	Email        string             `bson:"email" json:"email"`
}
