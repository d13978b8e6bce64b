package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cinehub/rental-service/internal/core/domain"
)

func renderError(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("error response not JSON: %v", err)
	}
	return rec, body
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusBadRequest},
		{"user exists", domain.ErrUserExists, http.StatusBadRequest},
		{"out of stock", domain.ErrMovieOutOfStock, http.StatusBadRequest},
		{"already returned", domain.ErrRentalAlreadyReturned, http.StatusBadRequest},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"customer not found", domain.ErrCustomerNotFound, http.StatusNotFound},
		{"genre not found", domain.ErrGenreNotFound, http.StatusNotFound},
		{"movie not found", domain.ErrMovieNotFound, http.StatusNotFound},
		{"rental not found", domain.ErrRentalNotFound, http.StatusNotFound},
		{"too many attempts", domain.ErrTooManyAttempts, http.StatusTooManyRequests},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, body := renderError(t, tc.err)
			if rec.Code != tc.want {
				t.Errorf("status: got %d, want %d", rec.Code, tc.want)
			}
			if body["error"] != tc.err.Error() {
				t.Errorf("message: got %q, want %q", body["error"], tc.err.Error())
			}
		})
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("lookup failed"), domain.ErrMovieNotFound)
	rec, _ := renderError(t, wrapped)
	if rec.Code != http.StatusNotFound {
		t.Errorf("wrapped domain error: got %d, want 404", rec.Code)
	}
}

func TestHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	rec, body := renderError(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
	if body["error"] != "invalid payload" {
		t.Errorf("message: got %q", body["error"])
	}
}

func TestHTTPErrorHandler_UnknownError(t *testing.T) {
	rec, body := renderError(t, errors.New("connection reset by peer"))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want 500", rec.Code)
	}
	if body["error"] != "internal server error" {
		t.Errorf("internal detail leaked: %q", body["error"])
	}
}
