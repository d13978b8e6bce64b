package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/cinehub/rental-service/internal/core/domain"
)

const testSecret = "test-secret"

type stubUserRepo struct {
	byEmail map[string]*domain.User
}

func newStubUserRepo(users ...*domain.User) *stubUserRepo {
	r := &stubUserRepo{byEmail: make(map[string]*domain.User)}
	for _, u := range users {
		r.byEmail[u.Email] = u
	}
	return r
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if _, ok := r.byEmail[u.Email]; ok {
		return nil, domain.ErrUserExists
	}
	u.ID = primitive.NewObjectID()
	r.byEmail[u.Email] = u
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.byEmail {
		if u.ID.Hex() == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type stubThrottle struct {
	blocked  bool
	failures int
	resets   int
}

func (t *stubThrottle) TooManyFailures(context.Context, string) (bool, error) {
	return t.blocked, nil
}

func (t *stubThrottle) RecordFailure(context.Context, string) error {
	t.failures++
	return nil
}

func (t *stubThrottle) Reset(context.Context, string) error {
	t.resets++
	return nil
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(hash)
}

func TestAuthService_Register_HashesPasswordAndIssuesToken(t *testing.T) {
	users := newStubUserRepo()
	svc := NewAuthService(users, nil, testSecret, time.Hour, discardLogger)

	user, token, err := svc.Register(context.Background(), "Bob", "bob@example.com", "sekret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.PasswordHash == "sekret1" {
		t.Fatalf("password stored in clear")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("sekret1")) != nil {
		t.Errorf("stored hash does not verify against the password")
	}

	claims := parseClaims(t, token)
	if claims["sub"] != user.ID.Hex() {
		t.Errorf("token subject: got %v, want %s", claims["sub"], user.ID.Hex())
	}
	if claims["is_admin"] != false {
		t.Errorf("fresh user must not be admin in token")
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	existing := &domain.User{ID: primitive.NewObjectID(), Email: "bob@example.com"}
	svc := NewAuthService(newStubUserRepo(existing), nil, testSecret, time.Hour, discardLogger)

	_, _, err := svc.Register(context.Background(), "Bob", "bob@example.com", "sekret1")
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	user := &domain.User{
		ID:           primitive.NewObjectID(),
		Email:        "bob@example.com",
		PasswordHash: hashOf(t, "sekret1"),
		IsAdmin:      true,
	}
	throttle := &stubThrottle{}
	svc := NewAuthService(newStubUserRepo(user), throttle, testSecret, time.Hour, discardLogger)

	token, err := svc.Login(context.Background(), "bob@example.com", "sekret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims := parseClaims(t, token)
	if claims["sub"] != user.ID.Hex() {
		t.Errorf("token subject: got %v, want %s", claims["sub"], user.ID.Hex())
	}
	if claims["is_admin"] != true {
		t.Errorf("is_admin claim not carried into token")
	}
	if throttle.resets != 1 {
		t.Errorf("successful login must reset the failure counter")
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	user := &domain.User{
		ID:           primitive.NewObjectID(),
		Email:        "bob@example.com",
		PasswordHash: hashOf(t, "sekret1"),
	}
	throttle := &stubThrottle{}
	svc := NewAuthService(newStubUserRepo(user), throttle, testSecret, time.Hour, discardLogger)

	_, err := svc.Login(context.Background(), "bob@example.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if throttle.failures != 1 {
		t.Errorf("failed login not recorded")
	}
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestAuthService_Login_UnknownEmail(t *testing.T) {
	throttle := &stubThrottle{}
	svc := NewAuthService(newStubUserRepo(), throttle, testSecret, time.Hour, discardLogger)

	_, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if throttle.failures != 1 {
		t.Errorf("failed login not recorded")
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	user := &domain.User{
		ID:           primitive.NewObjectID(),
		Email:        "bob@example.com",
		PasswordHash: hashOf(t, "sekret1"),
	}
	throttle := &stubThrottle{blocked: true}
	svc := NewAuthService(newStubUserRepo(user), throttle, testSecret, time.Hour, discardLogger)

	_, err := svc.Login(context.Background(), "bob@example.com", "sekret1")
	if !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthService_Me(t *testing.T) {
	user := &domain.User{ID: primitive.NewObjectID(), Name: "Bob", Email: "bob@example.com"}
	svc := NewAuthService(newStubUserRepo(user), nil, testSecret, time.Hour, discardLogger)

	got, err := svc.Me(context.Background(), user.ID.Hex())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Email != "bob@example.com" {
		t.Errorf("wrong user: %+v", got)
	}

	if _, err := svc.Me(context.Background(), primitive.NewObjectID().Hex()); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func parseClaims(t *testing.T, token string) jwt.MapClaims {
	t.Helper()
	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not parse: %v", err)
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatalf("unexpected claims type %T", parsed.Claims)
	}
	return claims
}
