package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// User models an authenticated actor. The password hash is never serialised
// into API responses.
type User struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Email        string             `json:"email" bson:"email"`
	PasswordHash string             `json:"-" bson:"password_hash"`
	IsAdmin      bool               `json:"isAdmin" bson:"is_admin"`
}
