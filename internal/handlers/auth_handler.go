package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/bobthecat1708/barber-finder-api/internal/config"
	"github.com/bobthecat1708/barber-finder-api/internal/httperr"
	"github.com/bobthecat1708/barber-finder-api/internal/httpresp"
	"github.com/bobthecat1708/barber-finder-api/internal/models"
	"github.com/bobthecat1708/barber-finder-api/internal/validators"
)

// AuthHandler signs barber shops up and in.
type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type ShopSignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Address  string `json:"address" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Signup(c *gin.Context) {
	var req ShopSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Shop name, address, email, and password are required.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not look valid.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not create the account.")
		return
	}

	shop := models.BarberShop{
		Name:         req.Name,
		Address:      req.Address,
		Email:        email,
		PasswordHash: string(hashed),
	}

	if err := h.db.Create(&shop).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, "email_already_exists", "An account with this email already exists.")
			return
		}
		httperr.Internal(c, "failed_to_create_shop", "Could not create the account.")
		return
	}

	httpresp.Created(c, gin.H{
		"message": "Barber shop account created successfully!",
		"shop": gin.H{
			"id":    shop.ID,
			"name":  shop.Name,
			"email": shop.Email,
		},
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Email and password are required.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var shop models.BarberShop
	if err := h.db.Where("email = ?", email).First(&shop).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials.")
			return
		}
		httperr.Internal(c, "internal_error", "Could not log in.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(shop.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials.")
		return
	}

	token, err := signShopToken(h.config, shop.ID, shop.Name)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not log in.")
		return
	}

	httpresp.OK(c, gin.H{
		"message": "Login successful!",
		"token":   token,
		"shop": gin.H{
			"id":    shop.ID,
			"name":  shop.Name,
			"email": shop.Email,
		},
	})
}
