package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cinehub/rental-service/internal/core/ports"
)

// GenreHandler handles genre CRUD.
type GenreHandler struct {
	genres ports.GenreService
}

func NewGenreHandler(genres ports.GenreService) *GenreHandler {
	return &GenreHandler{genres: genres}
}

type genreRequest struct {
	Name string `json:"name" validate:"required,min=3,max=50"`
}

// List returns all genres sorted by name.
//
// @Summary  List genres
// @Tags     genres
// @Produce  json
// @Success  200  {array}  domain.Genre
// @Router   /genres [get]
func (h *GenreHandler) List(c echo.Context) error {
	genres, err := h.genres.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, genres)
}

// Get returns a single genre.
//
// @Summary  Get a genre
// @Tags     genres
// @Produce  json
// @Param    id   path      string  true  "Genre id"
// @Success  200  {object}  domain.Genre
// @Failure  404  {object}  map[string]string
// @Router   /genres/{id} [get]
func (h *GenreHandler) Get(c echo.Context) error {
	genre, err := h.genres.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, genre)
}

// Create stores a new genre.
//
// @Summary   Create a genre
// @Tags      genres
// @Accept    json
// @Produce   json
// @Security  TokenAuth
// @Param     body  body      genreRequest  true  "Genre"
// @Success   200   {object}  domain.Genre
// @Failure   400   {object}  map[string]string
// @Router    /genres [post]
func (h *GenreHandler) Create(c echo.Context) error {
	var req genreRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	genre, err := h.genres.Create(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, genre)
}

// Update renames an existing genre.
//
// @Summary   Update a genre
// @Tags      genres
// @Accept    json
// @Produce   json
// @Security  TokenAuth
// @Param     id    path      string        true  "Genre id"
// @Param     body  body      genreRequest  true  "Genre"
// @Success   200   {object}  domain.Genre
// @Failure   404   {object}  map[string]string
// @Router    /genres/{id} [put]
func (h *GenreHandler) Update(c echo.Context) error {
	var req genreRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	genre, err := h.genres.Update(c.Request().Context(), c.Param("id"), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, genre)
}

// Delete removes a genre. Admin only.
//
// @Summary   Delete a genre
// @Tags      genres
// @Produce   json
// @Security  TokenAuth
// @Param     id   path      string  true  "Genre id"
// @Success   200  {object}  domain.Genre
// @Failure   403  {object}  map[string]string
// @Failure   404  {object}  map[string]string
// @Router    /genres/{id} [delete]
func (h *GenreHandler) Delete(c echo.Context) error {
	genre, err := h.genres.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, genre)
}
