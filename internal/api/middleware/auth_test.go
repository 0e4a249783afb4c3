package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/vallespasiegos/catalog-system/internal/core/domain"
)

type stubVerifier struct {
	claims *domain.Claims
	err    error
}

func (s *stubVerifier) Verify(token string) (*domain.Claims, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.claims, nil
}

func runAuth(t *testing.T, verifier *stubVerifier, authHeader string) (echo.Context, *httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(verifier)
	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return c, rec, handler(c)
}

func TestAuth_MissingHeader(t *testing.T) {
	_, _, err := runAuth(t, &stubVerifier{}, "")

	var he *echo.HTTPError
	if err == nil || !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	for _, header := range []string{"token-without-scheme", "Basic abc123"} {
		_, _, err := runAuth(t, &stubVerifier{}, header)

		var he *echo.HTTPError
		if err == nil || !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 HTTPError for %q, got %v", header, err)
		}
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	verifier := &stubVerifier{err: domain.ErrInvalidCredentials}
	_, _, err := runAuth(t, verifier, "Bearer expired-token")

	var he *echo.HTTPError
	if err == nil || !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuth_ValidTokenInjectsClaims(t *testing.T) {
	claims := &domain.Claims{ID: "1", Username: "alice", Role: domain.RoleAdmin}
	c, rec, err := runAuth(t, &stubVerifier{claims: claims}, "Bearer good-token")
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	got := ClaimsFrom(c)
	if got == nil || got.Username != "alice" || got.Role != domain.RoleAdmin {
		t.Fatalf("claims not injected: %+v", got)
	}
}

func TestAuth_BearerSchemeCaseInsensitive(t *testing.T) {
	claims := &domain.Claims{ID: "1", Username: "alice", Role: domain.RoleUser}
	_, rec, err := runAuth(t, &stubVerifier{claims: claims}, "bearer good-token")
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
