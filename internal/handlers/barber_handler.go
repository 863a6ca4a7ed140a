package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bobthecat1708/barber-finder-api/internal/httperr"
	"github.com/bobthecat1708/barber-finder-api/internal/httpresp"
	"github.com/bobthecat1708/barber-finder-api/internal/media"
	"github.com/bobthecat1708/barber-finder-api/internal/middleware"
	"github.com/bobthecat1708/barber-finder-api/internal/models"
)

// BarberHandler manages a shop's own barbers from the dashboard.
type BarberHandler struct {
	db       *gorm.DB
	uploader *media.Uploader
}

func NewBarberHandler(db *gorm.DB, uploader *media.Uploader) *BarberHandler {
	return &BarberHandler{db: db, uploader: uploader}
}

// --------- Requests ---------

type BarberRequest struct {
	Name     string `json:"name" binding:"required"`
	ImageURL string `json:"image_url"`
}

// --------- Handlers ---------

func (h *BarberHandler) List(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	var barbers []models.Barber
	if err := h.db.
		Where("shop_id = ?", shopID).
		Order("name ASC").
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Could not list barbers.")
		return
	}

	httpresp.List(c, barbers)
}

func (h *BarberHandler) Create(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	var req BarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_name", "Barber name is required.")
		return
	}

	barber := models.Barber{
		ShopID:   shopID,
		Name:     req.Name,
		ImageURL: req.ImageURL,
	}

	if err := h.db.Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Could not create the barber.")
		return
	}

	httpresp.Created(c, barber)
}

func (h *BarberHandler) Update(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)
	id := c.Param("id")

	var req BarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_name", "Barber name is required.")
		return
	}

	barber, ok := h.ownBarber(c, shopID, id)
	if !ok {
		return
	}

	barber.Name = req.Name
	barber.ImageURL = req.ImageURL

	if err := h.db.Save(barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Could not update the barber.")
		return
	}

	httpresp.OK(c, barber)
}

func (h *BarberHandler) Delete(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)
	id := c.Param("id")

	res := h.db.Where("id = ? AND shop_id = ?", id, shopID).Delete(&models.Barber{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_barber", "Could not delete the barber.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "barber_not_found", "Barber not found in your shop.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Barber deleted successfully."})
}

// UploadPhoto stores a barber portrait: decoded, downscaled, re-encoded
// as webp and pushed to object storage.
func (h *BarberHandler) UploadPhoto(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)
	id := c.Param("id")

	barber, ok := h.ownBarber(c, shopID, id)
	if !ok {
		return
	}

	file, _, err := c.Request.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "A photo form file is required.")
		return
	}
	defer file.Close()

	url, err := h.uploader.UploadBarberPhoto(c.Request.Context(), barber.ID, file)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_photo", "Could not store the photo.")
		return
	}

	barber.ImageURL = url
	if err := h.db.Save(barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Could not update the barber.")
		return
	}

	httpresp.OK(c, barber)
}

func (h *BarberHandler) ownBarber(c *gin.Context, shopID uint, id string) (*models.Barber, bool) {
	var barber models.Barber
	if err := h.db.
		Where("id = ? AND shop_id = ?", id, shopID).
		First(&barber).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barber not found in your shop.")
		return nil, false
	}
	return &barber, true
}
