package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cinehub/rental-service/internal/api/middleware"
	"github.com/cinehub/rental-service/internal/core/domain"
)

type stubAuthService struct {
	user       *domain.User
	token      string
	registered int
	loginErr   error
}

func (s *stubAuthService) Register(_ context.Context, name, email, _ string) (*domain.User, string, error) {
	s.registered++
	u := &domain.User{
		ID:           primitive.NewObjectID(),
		Name:         name,
		Email:        email,
		PasswordHash: "$2a$10$hash",
	}
	s.user = u
	return u, s.token, nil
}

func (s *stubAuthService) Login(context.Context, string, string) (string, error) {
	if s.loginErr != nil {
		return "", s.loginErr
	}
	return s.token, nil
}

func (s *stubAuthService) Me(_ context.Context, userID string) (*domain.User, error) {
	if s.user == nil || s.user.ID.Hex() != userID {
		return nil, domain.ErrUserNotFound
	}
	return s.user, nil
}

func TestUserHandler_Register(t *testing.T) {
	svc := &stubAuthService{token: "signed.jwt.token"}
	h := NewUserHandler(svc)
	c, rec, _ := newTestContext(t, http.MethodPost, "/users",
		`{"name":"Bob","email":"bob@example.com","password":"sekret1"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rec.Code)
	}
	if got := rec.Header().Get(middleware.TokenHeader); got != "signed.jwt.token" {
		t.Errorf("token header: got %q", got)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response not JSON: %v", err)
	}
	if body["name"] != "Bob" || body["email"] != "bob@example.com" {
		t.Errorf("unexpected body: %v", body)
	}
	if body["id"] == "" || body["id"] == nil {
		t.Errorf("id missing from response")
	}
	if strings.Contains(strings.ToLower(rec.Body.String()), "password") {
		t.Errorf("password must never appear in the response: %s", rec.Body.String())
	}
}

func TestUserHandler_Register_InvalidEmail(t *testing.T) {
	svc := &stubAuthService{}
	h := NewUserHandler(svc)
	c, _, e := newTestContext(t, http.MethodPost, "/users",
		`{"name":"Bob","email":"not-an-email","password":"sekret1"}`)

	err := h.Register(c)
	assertHTTPError(t, e, c, err, http.StatusBadRequest)
	if svc.registered != 0 {
		t.Errorf("invalid registration must not reach the service")
	}
}

func TestUserHandler_Register_ShortPassword(t *testing.T) {
	svc := &stubAuthService{}
	h := NewUserHandler(svc)
	c, _, e := newTestContext(t, http.MethodPost, "/users",
		`{"name":"Bob","email":"bob@example.com","password":"abc"}`)

	err := h.Register(c)
	assertHTTPError(t, e, c, err, http.StatusBadRequest)
	if svc.registered != 0 {
		t.Errorf("invalid registration must not reach the service")
	}
}

func TestUserHandler_Me(t *testing.T) {
	user := &domain.User{
		ID:           primitive.NewObjectID(),
		Name:         "Bob",
		Email:        "bob@example.com",
		PasswordHash: "$2a$10$hash",
	}
	svc := &stubAuthService{user: user}
	h := NewUserHandler(svc)
	c, rec, _ := newTestContext(t, http.MethodGet, "/users/me", "")
	c.Set(middleware.CtxUserID, user.ID.Hex())

	if err := h.Me(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "$2a$10$hash") {
		t.Errorf("password hash must never appear in the response")
	}
}
