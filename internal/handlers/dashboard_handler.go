package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bobthecat1708/barber-finder-api/internal/dto"
	"github.com/bobthecat1708/barber-finder-api/internal/httperr"
	"github.com/bobthecat1708/barber-finder-api/internal/httpresp"
	"github.com/bobthecat1708/barber-finder-api/internal/middleware"
)

// DashboardHandler serves the shop's appointment book.
type DashboardHandler struct {
	db *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{db: db}
}

func (h *DashboardHandler) ListAppointments(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	var appointments []dto.DashboardAppointmentDTO
	err := h.db.
		Table("appointments a").
		Select(`a.id, a.appointment_time, a.status,
            s.name AS service_name, b.name AS barber_name`).
		Joins("JOIN services s ON a.service_id = s.id").
		Joins("JOIN barbers b ON a.barber_id = b.id").
		Where("b.shop_id = ?", shopID).
		Order("a.appointment_time DESC").
		Scan(&appointments).Error

	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	httpresp.List(c, appointments)
}
