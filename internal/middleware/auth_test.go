package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/bobthecat1708/barber-finder-api/internal/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret"}
}

func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func protectedRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.GET("/customer", CustomerAuthMiddleware(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"customer_id": c.MustGet(ContextCustomerID)})
	})
	r.GET("/shop", ShopAuthMiddleware(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"shop_id": c.MustGet(ContextShopID)})
	})
	return r
}

func get(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuth_MissingHeader(t *testing.T) {
	r := protectedRouter(testConfig())
	if w := get(r, "/customer", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	r := protectedRouter(testConfig())
	if w := get(r, "/customer", "Token abc"); w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAuth_BadSignature(t *testing.T) {
	cfg := testConfig()
	r := protectedRouter(cfg)

	token := signTestToken(t, "other-secret", jwt.MapClaims{
		"sub":   float64(3),
		"scope": ScopeCustomer,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	if w := get(r, "/customer", "Bearer "+token); w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	cfg := testConfig()
	r := protectedRouter(cfg)

	token := signTestToken(t, cfg.JWTSecret, jwt.MapClaims{
		"sub":   float64(3),
		"scope": ScopeCustomer,
		"exp":   time.Now().Add(-time.Hour).Unix(),
	})
	if w := get(r, "/customer", "Bearer "+token); w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAuth_ScopesDoNotCross(t *testing.T) {
	cfg := testConfig()
	r := protectedRouter(cfg)

	customerToken := signTestToken(t, cfg.JWTSecret, jwt.MapClaims{
		"sub":   float64(3),
		"scope": ScopeCustomer,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	shopToken := signTestToken(t, cfg.JWTSecret, jwt.MapClaims{
		"sub":   float64(5),
		"scope": ScopeShop,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	if w := get(r, "/shop", "Bearer "+customerToken); w.Code != http.StatusUnauthorized {
		t.Fatalf("customer token on shop route: status = %d, want 401", w.Code)
	}
	if w := get(r, "/customer", "Bearer "+shopToken); w.Code != http.StatusUnauthorized {
		t.Fatalf("shop token on customer route: status = %d, want 401", w.Code)
	}

	if w := get(r, "/customer", "Bearer "+customerToken); w.Code != http.StatusOK {
		t.Fatalf("valid customer token: status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if w := get(r, "/shop", "Bearer "+shopToken); w.Code != http.StatusOK {
		t.Fatalf("valid shop token: status = %d, want 200: %s", w.Code, w.Body.String())
	}
}

func TestRateLimit_BlocksAfterBurst(t *testing.T) {
	rl := NewRateLimiter(1, 2)

	r := gin.New()
	r.POST("/login", RateLimitMiddleware(rl), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	for range 3 {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("first two requests = %v, want 200s", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Fatalf("third request = %d, want 429", codes[2])
	}
}
