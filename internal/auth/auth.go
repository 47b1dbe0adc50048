package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const userIDKey = "userID"

type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// Middleware resolves the caller's identity. The gateway injects
// X-User-ID on proxied requests; direct callers may instead present a
// Bearer token when a JWT secret is configured. No resolvable identity
// means 401.
func Middleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" && jwtSecret != "" {
			userID = userIDFromBearer(c.GetHeader("Authorization"), jwtSecret)
		}
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
				"code":  "MISSING_USER_ID",
			})
			c.Abort()
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the identity resolved by Middleware for this request.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

func userIDFromBearer(header, secret string) string {
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	claims, err := ValidateToken(token, secret)
	if err != nil {
		return ""
	}
	return claims.UserID
}

func ValidateToken(tokenString, secret string) (*Claims, error) {
	if tokenString == "" {
		return nil, errors.New("token is required")
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// GenerateToken issues a token for the given user, mainly useful for
// local development against a service with no gateway in front.
func GenerateToken(userID, secret string) (string, error) {
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
