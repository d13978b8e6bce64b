package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Genre is embedded by value inside Movie.
type Genre struct {
	ID   primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name string             `json:"name" bson:"name"`
}
