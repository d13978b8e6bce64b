package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Customer is an independently owned entity. Rentals reference it by value
// snapshot, not by id, so later edits never rewrite rental history.
type Customer struct {
	ID     primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name   string             `json:"name" bson:"name"`
	Phone  string             `json:"phone" bson:"phone"`
	IsGold bool               `json:"isGold" bson:"is_gold"`
}
