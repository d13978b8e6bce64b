package service

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/cinehub/rental-service/internal/core/domain"
	"github.com/cinehub/rental-service/internal/core/ports"
)

type rentalService struct {
	rentals    ports.RentalRepository
	movies     ports.MovieRepository
	customers  ports.CustomerRepository
	reconciler ports.StockReconciler
	log        zerolog.Logger
}

// NewRentalService returns the rental lifecycle engine. reconciler may be
// nil; failed stock increments are then only logged.
func NewRentalService(
	rentals ports.RentalRepository,
	movies ports.MovieRepository,
	customers ports.CustomerRepository,
	reconciler ports.StockReconciler,
	log zerolog.Logger,
) ports.RentalService {
	return &rentalService{
		rentals:    rentals,
		movies:     movies,
		customers:  customers,
		reconciler: reconciler,
		log:        log,
	}
}

func (s *rentalService) List(ctx context.Context) ([]domain.Rental, error) {
	return s.rentals.FindAll(ctx)
}

func (s *rentalService) Get(ctx context.Context, id string) (*domain.Rental, error) {
	return s.rentals.FindByID(ctx, id)
}

// Create opens a rental. The rental document is persisted before the stock
// decrement: after a crash, an orphan rental is recoverable, a silently lost
// copy is not.
func (s *rentalService) Create(ctx context.Context, customerID, movieID string) (*domain.Rental, error) {
	// 1. Resolve both entities before any mutation.
	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	movie, err := s.movies.FindByID(ctx, movieID)
	if err != nil {
		return nil, err
	}

	// 2. Refuse when no copy is left. No mutation has happened yet.
	if movie.NumberInStock == 0 {
		return nil, domain.ErrMovieOutOfStock
	}

	// 3. Persist the rental with value snapshots taken at this instant.
	rental := &domain.Rental{
		Customer: domain.CustomerSnapshot{
			ID:    customer.ID,
			Name:  customer.Name,
			Phone: customer.Phone,
		},
		Movie: domain.MovieSnapshot{
			ID:              movie.ID,
			Title:           movie.Title,
			DailyRentalRate: movie.DailyRentalRate,
		},
		DateOut: time.Now().UTC(),
	}
	if err := s.rentals.Create(ctx, rental); err != nil {
		return nil, err
	}

	// 4. Decrement stock, guarded against going negative.
	if err := s.movies.AdjustStock(ctx, movieID, -1); err != nil {
		s.log.Error().Err(err).
			Str("rental_id", rental.ID.Hex()).
			Str("movie_id", movieID).
			Msg("stock decrement failed after rental creation")
		return nil, err
	}

	s.log.Info().
		Str("rental_id", rental.ID.Hex()).
		Str("movie_id", movieID).
		Str("customer_id", customerID).
		Msg("rental created")

	return rental, nil
}

// Return closes a rental: idempotency check, fee computation from the
// snapshot rate, then stock increment on the live movie.
func (s *rentalService) Return(ctx context.Context, customerID, movieID string) (*domain.Rental, error) {
	// 1. Look up by business keys; the client does not know the rental id.
	rental, err := s.rentals.FindByCustomerAndMovie(ctx, customerID, movieID)
	if err != nil {
		return nil, err
	}

	// 2. A returned rental is terminal.
	if rental.Returned() {
		return nil, domain.ErrRentalAlreadyReturned
	}

	// 3. Fee from the snapshot rate, so rate changes after creation never
	// retroactively affect the charge.
	returnedAt := time.Now().UTC()
	fee := rentalFee(rental.DateOut, returnedAt, rental.Movie.DailyRentalRate)

	// 4. Conditional update: only the first concurrent return wins.
	updated, err := s.rentals.MarkReturned(ctx, rental.ID.Hex(), returnedAt, fee)
	if err != nil {
		return nil, err
	}

	// 5. Stock increment is a separate write against the live movie. When it
	// fails the rental stays returned: a duplicate fee is harder to undo
	// than inventory drift, which the reconciler repairs.
	if err := s.movies.AdjustStock(ctx, movieID, 1); err != nil {
		s.log.Error().Err(err).
			Str("rental_id", updated.ID.Hex()).
			Str("movie_id", movieID).
			Msg("stock increment failed after return, queueing for reconciliation")
		if s.reconciler != nil {
			s.reconciler.EnqueueIncrement(movieID)
		}
	}

	s.log.Info().
		Str("rental_id", updated.ID.Hex()).
		Float64("rental_fee", fee).
		Msg("rental returned")

	return updated, nil
}

// rentalFee charges the snapshot daily rate for every started day, with a
// minimum of one day.
func rentalFee(dateOut, returnedAt time.Time, dailyRate float64) float64 {
	days := math.Ceil(returnedAt.Sub(dateOut).Hours() / 24)
	if days < 1 {
		days = 1
	}
	return days * dailyRate
}
