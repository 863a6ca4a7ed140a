package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/bobthecat1708/barber-finder-api/internal/config"
)

const (
	ContextShopID       = "shopID"
	ContextShopName     = "shopName"
	ContextCustomerID   = "customerID"
	ContextCustomerName = "customerName"

	// Scope claim values; a shop token never opens customer routes and
	// vice versa.
	ScopeShop     = "shop"
	ScopeCustomer = "customer"
)

// ShopAuthMiddleware admits barber-shop tokens only.
func ShopAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c, cfg)
		if !ok {
			return
		}

		if scope, _ := claims["scope"].(string); scope != ScopeShop {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "wrong_token_scope"})
			return
		}

		id, ok := claims["sub"].(float64)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_payload"})
			return
		}

		name, _ := claims["name"].(string)
		c.Set(ContextShopID, uint(id))
		c.Set(ContextShopName, name)

		c.Next()
	}
}

// CustomerAuthMiddleware admits customer tokens only.
func CustomerAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c, cfg)
		if !ok {
			return
		}

		if scope, _ := claims["scope"].(string); scope != ScopeCustomer {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "wrong_token_scope"})
			return
		}

		id, ok := claims["sub"].(float64)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_payload"})
			return
		}

		name, _ := claims["name"].(string)
		c.Set(ContextCustomerID, uint(id))
		c.Set(ContextCustomerName, name)

		c.Next()
	}
}

func bearerClaims(c *gin.Context, cfg *config.Config) (jwt.MapClaims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
		return nil, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
		return nil, false
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_claims"})
		return nil, false
	}

	return claims, true
}
