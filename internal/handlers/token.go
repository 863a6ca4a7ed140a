package handlers

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bobthecat1708/barber-finder-api/internal/config"
	"github.com/bobthecat1708/barber-finder-api/internal/middleware"
)

const tokenTTL = 5 * time.Hour

func signShopToken(cfg *config.Config, shopID uint, name string) (string, error) {
	return signToken(cfg, shopID, name, middleware.ScopeShop)
}

func signCustomerToken(cfg *config.Config, customerID uint, name string) (string, error) {
	return signToken(cfg, customerID, name, middleware.ScopeCustomer)
}

func signToken(cfg *config.Config, sub uint, name, scope string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   sub,
		"name":  name,
		"scope": scope,
		"exp":   now.Add(tokenTTL).Unix(),
		"iat":   now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}
