package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/vallespasiegos/catalog-system/internal/core/domain"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = strconv.Itoa(r.nextID)
	r.users[created.Username] = cloneUser(created)
	return cloneUser(created), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	result, err := svc.Register(context.Background(), "alice", "pass1")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected token, got empty")
	}
	if result.User.Role != domain.RoleUser {
		t.Fatalf("expected role %q, got %q", domain.RoleUser, result.User.Role)
	}
	if result.User.PasswordHash == "pass1" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(result.User.PasswordHash), []byte("pass1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	claims, err := svc.Verify(result.Token)
	if err != nil {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims.ID != result.User.ID || claims.Username != "alice" || claims.Role != domain.RoleUser {
		t.Fatalf("claims do not match stored user: %+v", claims)
	}
}

func TestAuthService_Register_TrimsUsername(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	result, err := svc.Register(context.Background(), "  bob  ", "pass1")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if result.User.Username != "bob" {
		t.Fatalf("expected trimmed username, got %q", result.User.Username)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	var ve *domain.ValidationError
	if _, err := svc.Register(context.Background(), "ab", "pass1"); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for short username, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "   a   ", "pass1"); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for whitespace-padded short username, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "carol", "abc"); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for short password, got %v", err)
	}
	if len(repo.users) != 0 {
		t.Fatalf("no user should have been stored, got %d", len(repo.users))
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "dave", "pass1"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "dave", "pass2"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	registered, err := svc.Register(context.Background(), "eve", "s3cret")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	result, err := svc.Login(context.Background(), "eve", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected token, got empty")
	}
	if result.User.ID != registered.User.ID {
		t.Fatalf("expected user %s, got %s", registered.User.ID, result.User.ID)
	}

	claims, err := svc.Verify(result.Token)
	if err != nil {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims.Username != "eve" || claims.Role != domain.RoleUser {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	_, _ = svc.Register(context.Background(), "frank", "goodpass")
	if _, err := svc.Login(context.Background(), "frank", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	// Unknown usernames map to the same error as wrong passwords so the
	// login endpoint never reveals whether an account exists.
	if _, err := svc.Login(context.Background(), "ghost", "pass1"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Verify_Expired(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       "1",
		"username": "alice",
		"role":     domain.RoleUser,
		"exp":      time.Now().Add(-time.Minute).Unix(),
	})
	tokenString, err := expired.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}

	if _, err := svc.Verify(tokenString); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for expired token, got %v", err)
	}
}

func TestAuthService_Verify_WrongSecret(t *testing.T) {
	issuer := NewAuthService(newStubUserRepo(), "secret-a", time.Hour)
	verifier := NewAuthService(newStubUserRepo(), "secret-b", time.Hour)

	result, err := issuer.Register(context.Background(), "alice", "pass1")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := verifier.Verify(result.Token); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong secret, got %v", err)
	}
}

func TestAuthService_Verify_Malformed(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := svc.Verify(token); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials for %q, got %v", token, err)
		}
	}
}
