package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"grooming-booking/internal/handler/httperr"
	"grooming-booking/internal/pkg/cookie"
	"grooming-booking/internal/pkg/errs"
	"grooming-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errTokenMissing = errs.New("access token missing")
	errTokenInvalid = errs.New("access token invalid")
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxCustomerIDKey  = "customer_id"
	ctxUsernameKey    = "username"
	ctxAccessTokenKey = "access_token"
	ctxJWTClaimsKey   = "jwt_claims"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth accepts the access_token cookie first, then a Bearer header.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errTokenMissing, "Access token required", nil)
			return
		}

		validated, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.Mark(err, errTokenInvalid), "Invalid or expired token", nil)
			return
		}

		c.Set(ctxCustomerIDKey, validated.CustomerID)
		c.Set(ctxUsernameKey, validated.Username)
		c.Set(ctxAccessTokenKey, token)
		c.Set(ctxJWTClaimsKey, map[string]any{
			"customer_id": validated.CustomerID.String(),
			"username":    validated.Username,
		})
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetCustomerID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxCustomerIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := v.(uuid.UUID)
	return id, ok
}

func GetAccessToken(c *gin.Context) string {
	return c.GetString(ctxAccessTokenKey)
}

// SetCustomerContext is what RequireAuth stores; handler tests use it in place of a real token.
func SetCustomerContext(c *gin.Context, customerID uuid.UUID, username string) {
	c.Set(ctxCustomerIDKey, customerID)
	c.Set(ctxUsernameKey, username)
	c.Set(ctxJWTClaimsKey, map[string]any{
		"customer_id": customerID.String(),
		"username":    username,
	})
}
