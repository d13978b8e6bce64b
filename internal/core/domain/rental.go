package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CustomerSnapshot is the value copy of a customer embedded in a rental at
// creation time.
type CustomerSnapshot struct {
	ID    primitive.ObjectID `json:"id" bson:"_id"`
	Name  string             `json:"name" bson:"name"`
	Phone string             `json:"phone" bson:"phone"`
}

// MovieSnapshot is the value copy of a movie embedded in a rental at
// creation time. DailyRentalRate is captured here so that later rate changes
// never retroactively affect the fee.
type MovieSnapshot struct {
	ID              primitive.ObjectID `json:"id" bson:"_id"`
	Title           string             `json:"title" bson:"title"`
	DailyRentalRate float64            `json:"dailyRentalRate" bson:"daily_rental_rate"`
}

// Rental is the core aggregate of the lifecycle engine. It has two states:
// open (DateReturned nil) and returned (DateReturned and RentalFee set
// together, terminal). A returned rental is immutable.
type Rental struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Customer     CustomerSnapshot   `json:"customer" bson:"customer"`
	Movie        MovieSnapshot      `json:"movie" bson:"movie"`
	DateOut      time.Time          `json:"dateOut" bson:"date_out"`
	DateReturned *time.Time         `json:"dateReturned" bson:"date_returned,omitempty"`
	RentalFee    *float64           `json:"rentalFee" bson:"rental_fee,omitempty"`
}

// Returned reports whether the rental has reached its terminal state.
func (r *Rental) Returned() bool {
	return r.DateReturned != nil
}
