package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cinehub/rental-service/internal/api/metrics"
	"github.com/cinehub/rental-service/internal/core/ports"
)

// RentalHandler handles rental listing and creation.
type RentalHandler struct {
	rentals ports.RentalService
}

func NewRentalHandler(rentals ports.RentalService) *RentalHandler {
	return &RentalHandler{rentals: rentals}
}

// rentalRequest identifies a rental by its business keys.
type rentalRequest struct {
	CustomerID string `json:"customerId" validate:"required,objectid"`
	MovieID    string `json:"movieId"    validate:"required,objectid"`
}

// List returns all rentals, most recent first.
//
// @Summary  List rentals
// @Tags     rentals
// @Produce  json
// @Success  200  {array}  domain.Rental
// @Router   /rentals [get]
func (h *RentalHandler) List(c echo.Context) error {
	rentals, err := h.rentals.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rentals)
}

// Get returns a single rental.
func (h *RentalHandler) Get(c echo.Context) error {
	rental, err := h.rentals.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rental)
}

// Create opens a rental and decrements the movie's stock.
//
// @Summary   Create a rental
// @Tags      rentals
// @Accept    json
// @Produce   json
// @Security  TokenAuth
// @Param     body  body      rentalRequest  true  "Customer and movie ids"
// @Success   200   {object}  domain.Rental
// @Failure   400   {object}  map[string]string
// @Failure   404   {object}  map[string]string
// @Router    /rentals [post]
func (h *RentalHandler) Create(c echo.Context) error {
	var req rentalRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	rental, err := h.rentals.Create(c.Request().Context(), req.CustomerID, req.MovieID)
	if err != nil {
		return err
	}

	metrics.RentalsCreatedTotal.Inc()
	return c.JSON(http.StatusOK, rental)
}
