package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"bondbazaar/internal/config"
	"bondbazaar/internal/models"
)

const (
	// PrincipalKey is the Gin context key holding the caller's principal.
	PrincipalKey = "principal"
	// RoleKey is the Gin context key holding the caller's role.
	RoleKey = "role"
)

// getJWTKey returns the JWT key from configuration
func getJWTKey() []byte {
	return []byte(config.Get().JWTSecret)
}

// SessionClaims are the claims carried by a session token. The principal is
// the opaque caller identity handed to us after sign-in; the registry keys
// all per-user data on it.
type SessionClaims struct {
	Principal string `json:"principal"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateSessionToken issues a signed session token for a principal.
func GenerateSessionToken(principal string, role models.UserRole) (string, error) {
	claims := &SessionClaims{
		Principal: principal,
		Role:      string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(config.Get().JWTExpirationDur)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "bondbazaar",
			Subject:   principal,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(getJWTKey())
}

func parseSessionToken(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return getJWTKey(), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}
	return claims, nil
}

// AuthMiddleware verifies the session token and sets the principal and role
// in the context. Requests without a valid token are rejected with a prompt
// to sign in.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{"code": "UNAUTHORIZED", "message": "Sign in to continue"}})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{"code": "UNAUTHORIZED", "message": "Invalid authorization header format"}})
			c.Abort()
			return
		}

		claims, err := parseSessionToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{"code": "UNAUTHORIZED", "message": "Invalid or expired session"}})
			c.Abort()
			return
		}

		c.Set(PrincipalKey, claims.Principal)
		c.Set(RoleKey, claims.Role)
		c.Next()
	}
}

// OptionalAuth sets the principal when a valid token is present but lets
// anonymous requests through. Catalog browsing does not require sign-in.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			if claims, err := parseSessionToken(parts[1]); err == nil {
				c.Set(PrincipalKey, claims.Principal)
				c.Set(RoleKey, claims.Role)
			}
		}
		c.Next()
	}
}

// RequireAdmin rejects callers whose session does not carry the admin role.
// Must run after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(RoleKey)
		if role != string(models.RoleAdmin) {
			c.JSON(http.StatusForbidden, gin.H{"error": gin.H{"code": "FORBIDDEN", "message": "Access denied"}})
			c.Abort()
			return
		}
		c.Next()
	}
}
