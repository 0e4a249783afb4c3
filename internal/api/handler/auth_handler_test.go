package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/vallespasiegos/catalog-system/internal/core/domain"
	"github.com/vallespasiegos/catalog-system/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, username, password string) (*ports.AuthResult, error)
	loginFn    func(ctx context.Context, username, password string) (*ports.AuthResult, error)
}

func (s *stubAuthService) Register(ctx context.Context, username, password string) (*ports.AuthResult, error) {
	return s.registerFn(ctx, username, password)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*ports.AuthResult, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) Verify(string) (*domain.Claims, error) {
	return nil, domain.ErrInvalidCredentials
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, password string) (*ports.AuthResult, error) {
			if username != "alice" || password != "pass1" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return &ports.AuthResult{
				Token: "signed-token",
				User:  &domain.User{ID: "1", Username: username, Role: domain.RoleUser},
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := postJSON(e, "/api/auth/register", `{"username":"alice","password":"pass1"}`)
	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "signed-token" {
		t.Fatalf("expected token in response, got %+v", resp)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["username"] != "alice" || user["role"] != domain.RoleUser {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if _, leaked := user["passwordHash"]; leaked {
		t.Fatalf("password hash must never be serialized")
	}
}

func TestAuthHandler_Register_AdminRoleIgnored(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, password string) (*ports.AuthResult, error) {
			// The service never sees a role; it always assigns "usuario".
			return &ports.AuthResult{
				Token: "t",
				User:  &domain.User{ID: "1", Username: username, Role: domain.RoleUser},
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := postJSON(e, "/api/auth/register", `{"username":"mallory","password":"pass1","role":"admin"}`)
	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		User struct {
			Role string `json:"role"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.User.Role != domain.RoleUser {
		t.Fatalf("expected role %q despite admin in payload, got %q", domain.RoleUser, resp.User.Role)
	}
}

func TestAuthHandler_Register_ShortUsername(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, password string) (*ports.AuthResult, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := postJSON(e, "/api/auth/register", `{"username":"ab","password":"pass1"}`)
	err := handler.Register(c)

	var he *echo.HTTPError
	if err == nil || !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Register_UserExists(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, password string) (*ports.AuthResult, error) {
			return nil, domain.ErrUserExists
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := postJSON(e, "/api/auth/register", `{"username":"bob","password":"pass1"}`)
	_ = handler.Register(c)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, password string) (*ports.AuthResult, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := postJSON(e, "/api/auth/register", "not-json")
	_ = handler.Register(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (*ports.AuthResult, error) {
			if username != "alice" || password != "pass1" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return &ports.AuthResult{
				Token: "signed-token",
				User:  &domain.User{ID: "1", Username: username, Role: domain.RoleAdmin},
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := postJSON(e, "/api/auth/login", `{"username":"alice","password":"pass1"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (*ports.AuthResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := postJSON(e, "/api/auth/login", `{"username":"alice","password":"wrong"}`)
	_ = handler.Login(c)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
