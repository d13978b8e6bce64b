package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/cinehub/rental-service/internal/core/domain"
	"github.com/cinehub/rental-service/internal/core/ports"
)

type genreService struct {
	genres ports.GenreRepository
	log    zerolog.Logger
}

// NewGenreService returns a GenreService implementation.
func NewGenreService(genres ports.GenreRepository, log zerolog.Logger) ports.GenreService {
	return &genreService{genres: genres, log: log}
}

func (s *genreService) List(ctx context.Context) ([]domain.Genre, error) {
	return s.genres.FindAll(ctx)
}

func (s *genreService) Get(ctx context.Context, id string) (*domain.Genre, error) {
	return s.genres.FindByID(ctx, id)
}

func (s *genreService) Create(ctx context.Context, name string) (*domain.Genre, error) {
	genre := &domain.Genre{Name: name}
	if err := s.genres.Create(ctx, genre); err != nil {
		return nil, err
	}
	return genre, nil
}

func (s *genreService) Update(ctx context.Context, id string, name string) (*domain.Genre, error) {
	return s.genres.Update(ctx, id, name)
}

func (s *genreService) Delete(ctx context.Context, id string) (*domain.Genre, error) {
	deleted, err := s.genres.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("genre_id", id).Msg("genre deleted")
	return deleted, nil
}
