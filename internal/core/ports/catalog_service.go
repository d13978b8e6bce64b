package ports

import (
	"context"

	"github.com/cinehub/rental-service/internal/core/domain"
)

// CustomerInput carries the validated fields of a customer write request.
type CustomerInput struct {
	Name   string
	Phone  string
	IsGold bool
}

// CustomerService orchestrates customer CRUD.
type CustomerService interface {
	List(ctx context.Context) ([]domain.Customer, error)
	Get(ctx context.Context, id string) (*domain.Customer, error)
	Create(ctx context.Context, in CustomerInput) (*domain.Customer, error)
	Update(ctx context.Context, id string, in CustomerInput) (*domain.Customer, error)
	Delete(ctx context.Context, id string) (*domain.Customer, error)
}

// GenreService orchestrates genre CRUD.
type GenreService interface {
	List(ctx context.Context) ([]domain.Genre, error)
	Get(ctx context.Context, id string) (*domain.Genre, error)
	Create(ctx context.Context, name string) (*domain.Genre, error)
	Update(ctx context.Context, id string, name string) (*domain.Genre, error)
	Delete(ctx context.Context, id string) (*domain.Genre, error)
}

// MovieInput carries the validated fields of a movie write request. GenreID
// must resolve to an existing genre; the genre is embedded by value.
type MovieInput struct {
	Title           string
	GenreID         string
	NumberInStock   int
	DailyRentalRate float64
}

// MovieService orchestrates movie CRUD.
type MovieService interface {
	List(ctx context.Context) ([]domain.Movie, error)
	Get(ctx context.Context, id string) (*domain.Movie, error)
	Create(ctx context.Context, in MovieInput) (*domain.Movie, error)
	Update(ctx context.Context, id string, in MovieInput) (*domain.Movie, error)
	Delete(ctx context.Context, id string) (*domain.Movie, error)
}
