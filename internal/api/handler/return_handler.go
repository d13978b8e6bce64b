package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cinehub/rental-service/internal/api/metrics"
	"github.com/cinehub/rental-service/internal/core/domain"
	"github.com/cinehub/rental-service/internal/core/ports"
)

// ReturnHandler handles the rental return endpoint.
type ReturnHandler struct {
	rentals ports.RentalService
}

func NewReturnHandler(rentals ports.RentalService) *ReturnHandler {
	return &ReturnHandler{rentals: rentals}
}

// Process closes the open rental matching the given customer and movie,
// charging the fee computed from the rate snapshot.
//
// @Summary   Return a rented movie
// @Tags      returns
// @Accept    json
// @Produce   json
// @Security  TokenAuth
// @Param     body  body      rentalRequest  true  "Customer and movie ids"
// @Success   200   {object}  domain.Rental
// @Failure   400   {object}  map[string]string
// @Failure   404   {object}  map[string]string
// @Router    /returns [post]
func (h *ReturnHandler) Process(c echo.Context) error {
	var req rentalRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	rental, err := h.rentals.Return(c.Request().Context(), req.CustomerID, req.MovieID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRentalAlreadyReturned):
			metrics.ReturnsProcessedTotal.WithLabelValues("already_processed").Inc()
		case errors.Is(err, domain.ErrRentalNotFound):
			metrics.ReturnsProcessedTotal.WithLabelValues("not_found").Inc()
		}
		return err
	}

	metrics.ReturnsProcessedTotal.WithLabelValues("returned").Inc()
	if rental.RentalFee != nil {
		metrics.RentalFee.Observe(*rental.RentalFee)
	}

	return c.JSON(http.StatusOK, rental)
}
