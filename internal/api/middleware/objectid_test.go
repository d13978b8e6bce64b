package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestObjectID_ValidID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(primitive.NewObjectID().Hex())

	called := false
	handler := ObjectID()(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestObjectID_MalformedID(t *testing.T) {
	for _, id := range []string{"1", "abc", "", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues(id)

		handler := ObjectID()(func(c echo.Context) error {
			t.Fatalf("should not reach next handler for id %q", id)
			return nil
		})

		if err := handler(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("id %q: expected 400, got %d", id, rec.Code)
		}
	}
}
