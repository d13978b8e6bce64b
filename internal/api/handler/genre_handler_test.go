package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cinehub/rental-service/internal/core/domain"
)

type stubGenreService struct {
	genres  []domain.Genre
	created []string
}

func (s *stubGenreService) List(context.Context) ([]domain.Genre, error) {
	return s.genres, nil
}

func (s *stubGenreService) Get(_ context.Context, id string) (*domain.Genre, error) {
	for _, g := range s.genres {
		if g.ID.Hex() == id {
			return &g, nil
		}
	}
	return nil, domain.ErrGenreNotFound
}

func (s *stubGenreService) Create(_ context.Context, name string) (*domain.Genre, error) {
	s.created = append(s.created, name)
	g := domain.Genre{ID: primitive.NewObjectID(), Name: name}
	s.genres = append(s.genres, g)
	return &g, nil
}

func (s *stubGenreService) Update(_ context.Context, id, name string) (*domain.Genre, error) {
	for i := range s.genres {
		if s.genres[i].ID.Hex() == id {
			s.genres[i].Name = name
			return &s.genres[i], nil
		}
	}
	return nil, domain.ErrGenreNotFound
}

func (s *stubGenreService) Delete(_ context.Context, id string) (*domain.Genre, error) {
	for i, g := range s.genres {
		if g.ID.Hex() == id {
			s.genres = append(s.genres[:i], s.genres[i+1:]...)
			return &g, nil
		}
	}
	return nil, domain.ErrGenreNotFound
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder, *echo.Echo) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec, e
}

func TestGenreHandler_Create(t *testing.T) {
	svc := &stubGenreService{}
	h := NewGenreHandler(svc)
	c, rec, _ := newTestContext(t, http.MethodPost, "/genres", `{"name":"thriller"}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rec.Code)
	}

	var got domain.Genre
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("response not JSON: %v", err)
	}
	if got.Name != "thriller" {
		t.Errorf("name: got %q, want thriller", got.Name)
	}
	if got.ID.IsZero() {
		t.Errorf("created genre has no id")
	}
}

func TestGenreHandler_Create_NameTooShort(t *testing.T) {
	svc := &stubGenreService{}
	h := NewGenreHandler(svc)
	c, _, e := newTestContext(t, http.MethodPost, "/genres", `{"name":"ab"}`)

	err := h.Create(c)
	assertHTTPError(t, e, c, err, http.StatusBadRequest)
	if len(svc.created) != 0 {
		t.Errorf("invalid genre must not reach the service")
	}
}

func TestGenreHandler_Create_NameTooLong(t *testing.T) {
	svc := &stubGenreService{}
	h := NewGenreHandler(svc)
	name := strings.Repeat("x", 51)
	c, _, e := newTestContext(t, http.MethodPost, "/genres", `{"name":"`+name+`"}`)

	err := h.Create(c)
	assertHTTPError(t, e, c, err, http.StatusBadRequest)
	if len(svc.created) != 0 {
		t.Errorf("invalid genre must not reach the service")
	}
}

func TestGenreHandler_List(t *testing.T) {
	svc := &stubGenreService{genres: []domain.Genre{
		{ID: primitive.NewObjectID(), Name: "action"},
		{ID: primitive.NewObjectID(), Name: "drama"},
	}}
	h := NewGenreHandler(svc)
	c, rec, _ := newTestContext(t, http.MethodGet, "/genres", "")

	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rec.Code)
	}

	var got []domain.Genre
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("response not JSON: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("genres: got %d, want 2", len(got))
	}
}

func TestGenreHandler_Get_NotFound(t *testing.T) {
	svc := &stubGenreService{}
	h := NewGenreHandler(svc)
	c, _, _ := newTestContext(t, http.MethodGet, "/", "")
	c.SetPath("/genres/:id")
	c.SetParamNames("id")
	c.SetParamValues(primitive.NewObjectID().Hex())

	err := h.Get(c)
	if err != domain.ErrGenreNotFound {
		t.Fatalf("expected ErrGenreNotFound to propagate, got %v", err)
	}
}

// assertHTTPError renders err through the error handler and checks the
// resulting status code.
func assertHTTPError(t *testing.T, e *echo.Echo, c echo.Context, err error, want int) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected an error, got nil")
	}
	e.HTTPErrorHandler(err, c)
	if got := c.Response().Status; got != want {
		t.Errorf("status: got %d, want %d", got, want)
	}
}
