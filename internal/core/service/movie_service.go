package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/cinehub/rental-service/internal/core/domain"
	"github.com/cinehub/rental-service/internal/core/ports"
)

type movieService struct {
	movies ports.MovieRepository
	genres ports.GenreRepository
	log    zerolog.Logger
}

// NewMovieService returns a MovieService implementation.
func NewMovieService(movies ports.MovieRepository, genres ports.GenreRepository, log zerolog.Logger) ports.MovieService {
	return &movieService{movies: movies, genres: genres, log: log}
}

func (s *movieService) List(ctx context.Context) ([]domain.Movie, error) {
	return s.movies.FindAll(ctx)
}

func (s *movieService) Get(ctx context.Context, id string) (*domain.Movie, error) {
	return s.movies.FindByID(ctx, id)
}

func (s *movieService) Create(ctx context.Context, in ports.MovieInput) (*domain.Movie, error) {
	genre, err := s.genres.FindByID(ctx, in.GenreID)
	if err != nil {
		return nil, err
	}

	movie := &domain.Movie{
		Title: in.Title,
		// Only id and name are embedded; the snapshot is decoupled from
		// later genre edits.
		Genre:           domain.Genre{ID: genre.ID, Name: genre.Name},
		NumberInStock:   in.NumberInStock,
		DailyRentalRate: in.DailyRentalRate,
	}
	if err := s.movies.Create(ctx, movie); err != nil {
		return nil, err
	}
	return movie, nil
}

func (s *movieService) Update(ctx context.Context, id string, in ports.MovieInput) (*domain.Movie, error) {
	genre, err := s.genres.FindByID(ctx, in.GenreID)
	if err != nil {
		return nil, err
	}

	return s.movies.Update(ctx, id, &domain.Movie{
		Title:           in.Title,
		Genre:           domain.Genre{ID: genre.ID, Name: genre.Name},
		NumberInStock:   in.NumberInStock,
		DailyRentalRate: in.DailyRentalRate,
	})
}

func (s *movieService) Delete(ctx context.Context, id string) (*domain.Movie, error) {
	return s.movies.Delete(ctx, id)
}
