package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/vallespasiegos/catalog-system/internal/api/metrics"
	"github.com/vallespasiegos/catalog-system/internal/core/domain"
	"github.com/vallespasiegos/catalog-system/internal/core/ports"
)

// ClaimsKey is the echo context key the verified claims are stored under.
const ClaimsKey = "claims"

// Auth validates the bearer token and injects the verified claims into the
// request context. Verification is delegated to the auth service so the HTTP
// and websocket paths share a single implementation.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := BearerToken(c.Request())
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues("missing_token").Inc()
				return err
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(ClaimsKey, claims)

			return next(c)
		}
	}
}

// BearerToken extracts the token from an Authorization: Bearer header.
func BearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}
	return parts[1], nil
}

// ClaimsFrom returns the claims injected by Auth, or nil when absent.
func ClaimsFrom(c echo.Context) *domain.Claims {
	claims, _ := c.Get(ClaimsKey).(*domain.Claims)
	return claims
}
