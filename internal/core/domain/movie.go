package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Movie is the rentable inventory unit. NumberInStock is mutated only by the
// rental lifecycle (decrement on rent, increment on return) and must never
// go negative.
type Movie struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title           string             `json:"title" bson:"title"`
	Genre           Genre              `json:"genre" bson:"genre"`
	NumberInStock   int                `json:"numberInStock" bson:"number_in_stock"`
	DailyRentalRate float64            `json:"dailyRentalRate" bson:"daily_rental_rate"`
}
