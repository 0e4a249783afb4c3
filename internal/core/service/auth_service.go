package service

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/vallespasiegos/catalog-system/internal/core/domain"
	"github.com/vallespasiegos/catalog-system/internal/core/ports"
)

const defaultTokenTTL = 3 * time.Hour

// AuthService implements registration, login, and token verification.
type AuthService struct {
	repo      ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Register creates an account with the "usuario" role. The admin role can
// never be self-assigned through registration.
func (s *AuthService) Register(ctx context.Context, username, password string) (*ports.AuthResult, error) {
	username = strings.TrimSpace(username)
	if len(username) < 3 {
		return nil, domain.NewValidationError("username must be at least 3 characters")
	}
	if len(password) < 4 {
		return nil, domain.NewValidationError("password must be at least 4 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.generateToken(created)
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{Token: token, User: created}, nil
}

// Login checks credentials and mints a token. Unknown usernames and wrong
// passwords both come back as ErrInvalidCredentials so account existence
// is not leaked.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.AuthResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, domain.NewValidationError("username and password are required")
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{Token: token, User: user}, nil
}

// Verify parses and validates a token, returning its claims. Any failure
// (malformed, wrong signature, expired) maps to ErrInvalidCredentials.
func (s *AuthService) Verify(tokenString string) (*domain.Claims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidCredentials
	}

	id, _ := claims["id"].(string)
	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)
	if username == "" || role == "" {
		return nil, domain.ErrInvalidCredentials
	}

	return &domain.Claims{ID: id, Username: username, Role: role}, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"id":       user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
