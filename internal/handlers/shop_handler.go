package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bobthecat1708/barber-finder-api/internal/httperr"
	"github.com/bobthecat1708/barber-finder-api/internal/httpresp"
	"github.com/bobthecat1708/barber-finder-api/internal/models"
)

// ShopHandler serves the unauthenticated browse surface: shop listings,
// shop detail with its barbers, and a shop's service menu.
type ShopHandler struct {
	db *gorm.DB
}

func NewShopHandler(db *gorm.DB) *ShopHandler {
	return &ShopHandler{db: db}
}

func (h *ShopHandler) List(c *gin.Context) {
	var shops []models.BarberShop
	if err := h.db.Order("id ASC").Find(&shops).Error; err != nil {
		httperr.Internal(c, "failed_to_list_shops", "Could not list shops.")
		return
	}

	httpresp.List(c, shops)
}

func (h *ShopHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var shop models.BarberShop
	if err := h.db.First(&shop, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "shop_not_found", "Shop not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_shop", "Could not load the shop.")
		return
	}

	var barbers []models.Barber
	if err := h.db.
		Where("shop_id = ?", shop.ID).
		Order("name ASC").
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Could not load the shop.")
		return
	}

	httpresp.OK(c, gin.H{
		"id":      shop.ID,
		"name":    shop.Name,
		"address": shop.Address,
		"email":   shop.Email,
		"barbers": barbers,
	})
}

func (h *ShopHandler) ListServices(c *gin.Context) {
	id := c.Param("id")

	var services []models.Service
	if err := h.db.
		Where("shop_id = ?", id).
		Order("price ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	httpresp.List(c, services)
}
