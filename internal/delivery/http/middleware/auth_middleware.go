package middleware

import (
	"net/http"
	"strings"

	"shamba/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// userIDKey is the echo context key the authenticated user ID is stored under.
const userIDKey = "userID"

// AuthMiddleware guards routes behind a valid session token.
type AuthMiddleware struct {
	verifier service.TokenVerifier
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Authenticate validates the bearer token and stores the user ID on the
// request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		userID, err := m.verifier.VerifyToken(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		c.Set(userIDKey, userID)

		return next(c)
	}
}

// GetUserID returns the authenticated user ID set by Authenticate.
func GetUserID(c echo.Context) (string, bool) {
	userID, ok := c.Get(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}

	return userID, true
}
