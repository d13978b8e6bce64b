package ports

import (
	"context"
	"time"

	"github.com/cinehub/rental-service/internal/core/domain"
)

// RentalRepository defines persistence for rentals.
type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	// FindAll returns all rentals sorted by date_out descending.
	FindAll(ctx context.Context) ([]domain.Rental, error)
	FindByID(ctx context.Context, id string) (*domain.Rental, error)
	// FindByCustomerAndMovie looks a rental up by its business keys; at
	// return time the client only knows the customer and movie ids.
	FindByCustomerAndMovie(ctx context.Context, customerID, movieID string) (*domain.Rental, error)
	// MarkReturned sets date_returned and rental_fee in a single conditional
	// update guarded on date_returned still being unset. The loser of a
	// concurrent double return gets domain.ErrRentalAlreadyReturned.
	MarkReturned(ctx context.Context, id string, returnedAt time.Time, fee float64) (*domain.Rental, error)
}
