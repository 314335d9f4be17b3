package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lembranca/memorial-backend/internal/common"
	"github.com/lembranca/memorial-backend/pkg/jwt"
)

// JWTAuth JWT authentication middleware; rejects requests without a
// valid bearer token
func JWTAuth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := claimsFromHeader(c, jwtManager)
		if err != nil {
			if errors.Is(err, jwt.ErrExpiredToken) {
				common.ErrorResponse(c, 401, "Sessão expirada, faça login novamente", err)
			} else {
				common.ErrorResponse(c, 401, "Autenticação necessária", err)
			}
			c.Abort()
			return
		}

		setUser(c, claims)
		c.Next()
	}
}

// OptionalJWTAuth parses the bearer token when present but lets
// anonymous requests through. Used on public reads whose result depends
// on caller identity (owner sees hidden messages) and on guest posting.
func OptionalJWTAuth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := claimsFromHeader(c, jwtManager); err == nil {
			setUser(c, claims)
		}
		c.Next()
	}
}

func claimsFromHeader(c *gin.Context, jwtManager *jwt.Manager) (*jwt.Claims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, common.ErrUnauthorized
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, common.ErrInvalidToken
	}

	return jwtManager.VerifyToken(parts[1])
}

func setUser(c *gin.Context, claims *jwt.Claims) {
	c.Set("userID", claims.UserID)
	c.Set("userName", claims.Name)
	c.Set("userRole", claims.Role)
}

// GetUserID extracts the authenticated user id from context; 0 when anonymous
func GetUserID(c *gin.Context) int {
	userID, exists := c.Get("userID")
	if !exists {
		return 0
	}
	if id, ok := userID.(int); ok {
		return id
	}
	return 0
}

// CurrentUserID returns the user id as a pointer, nil when anonymous
func CurrentUserID(c *gin.Context) *int {
	if id := GetUserID(c); id != 0 {
		return &id
	}
	return nil
}

// GetUserName extracts the authenticated user name from context
func GetUserName(c *gin.Context) string {
	name, exists := c.Get("userName")
	if !exists {
		return ""
	}
	if str, ok := name.(string); ok {
		return str
	}
	return ""
}
