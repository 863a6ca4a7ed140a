package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bobthecat1708/barber-finder-api/internal/httperr"
	"github.com/bobthecat1708/barber-finder-api/internal/httpresp"
	"github.com/bobthecat1708/barber-finder-api/internal/middleware"
	"github.com/bobthecat1708/barber-finder-api/internal/models"
)

type FavouriteHandler struct {
	db *gorm.DB
}

func NewFavouriteHandler(db *gorm.DB) *FavouriteHandler {
	return &FavouriteHandler{db: db}
}

type AddFavouriteRequest struct {
	ShopID uint `json:"shop_id" binding:"required"`
}

func (h *FavouriteHandler) List(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextCustomerID).(uint)

	var shops []models.BarberShop
	err := h.db.
		Joins("JOIN favourite_shops fs ON fs.shop_id = barber_shops.id").
		Where("fs.customer_id = ?", customerID).
		Find(&shops).Error

	if err != nil {
		httperr.Internal(c, "failed_to_list_favourites", "Could not list favourites.")
		return
	}

	httpresp.List(c, shops)
}

func (h *FavouriteHandler) Add(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextCustomerID).(uint)

	var req AddFavouriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_shop_id", "shop_id is required.")
		return
	}

	fav := models.FavouriteShop{
		CustomerID: customerID,
		ShopID:     req.ShopID,
	}

	if err := h.db.Create(&fav).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, "already_favourited", "Shop is already in favourites.")
			return
		}
		httperr.Internal(c, "failed_to_add_favourite", "Could not add the favourite.")
		return
	}

	httpresp.Created(c, fav)
}

func (h *FavouriteHandler) Remove(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextCustomerID).(uint)
	shopID := c.Param("shopId")

	res := h.db.
		Where("customer_id = ? AND shop_id = ?", customerID, shopID).
		Delete(&models.FavouriteShop{})

	if res.Error != nil {
		httperr.Internal(c, "failed_to_remove_favourite", "Could not remove the favourite.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "favourite_not_found", "Favourite not found.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Removed from favourites."})
}
