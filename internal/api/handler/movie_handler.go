package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cinehub/rental-service/internal/core/ports"
)

// MovieHandler handles movie CRUD.
type MovieHandler struct {
	movies ports.MovieService
}

func NewMovieHandler(movies ports.MovieService) *MovieHandler {
	return &MovieHandler{movies: movies}
}

type movieRequest struct {
	Title           string  `json:"title"           validate:"required"`
	GenreID         string  `json:"genreId"         validate:"required,objectid"`
	NumberInStock   int     `json:"numberInStock"   validate:"min=0"`
	DailyRentalRate float64 `json:"dailyRentalRate" validate:"required,gt=0"`
}

func (r movieRequest) input() ports.MovieInput {
	return ports.MovieInput{
		Title:           r.Title,
		GenreID:         r.GenreID,
		NumberInStock:   r.NumberInStock,
		DailyRentalRate: r.DailyRentalRate,
	}
}

// List returns all movies sorted by title.
//
// @Summary  List movies
// @Tags     movies
// @Produce  json
// @Success  200  {array}  domain.Movie
// @Router   /movies [get]
func (h *MovieHandler) List(c echo.Context) error {
	movies, err := h.movies.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, movies)
}

// Get returns a single movie.
func (h *MovieHandler) Get(c echo.Context) error {
	movie, err := h.movies.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, movie)
}

// Create stores a new movie with its genre embedded by value. An unknown
// genre id fails with 404.
//
// @Summary   Create a movie
// @Tags      movies
// @Accept    json
// @Produce   json
// @Security  TokenAuth
// @Param     body  body      movieRequest  true  "Movie"
// @Success   200   {object}  domain.Movie
// @Failure   400   {object}  map[string]string
// @Failure   404   {object}  map[string]string
// @Router    /movies [post]
func (h *MovieHandler) Create(c echo.Context) error {
	var req movieRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	movie, err := h.movies.Create(c.Request().Context(), req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, movie)
}

// Update replaces a movie, re-resolving the genre snapshot.
func (h *MovieHandler) Update(c echo.Context) error {
	var req movieRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	movie, err := h.movies.Update(c.Request().Context(), c.Param("id"), req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, movie)
}

// Delete removes a movie.
func (h *MovieHandler) Delete(c echo.Context) error {
	movie, err := h.movies.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, movie)
}
