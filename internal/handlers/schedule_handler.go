package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bobthecat1708/barber-finder-api/internal/audit"
	domain "github.com/bobthecat1708/barber-finder-api/internal/domain/booking"
	"github.com/bobthecat1708/barber-finder-api/internal/httperr"
	"github.com/bobthecat1708/barber-finder-api/internal/httpresp"
	"github.com/bobthecat1708/barber-finder-api/internal/middleware"
	"github.com/bobthecat1708/barber-finder-api/internal/models"
	"github.com/bobthecat1708/barber-finder-api/internal/timeutil"
)

// ======================================================
// HANDLER
// ======================================================

type ScheduleHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewScheduleHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *ScheduleHandler {
	return &ScheduleHandler{db: db, audit: dispatcher}
}

// ======================================================
// REQUESTS
// ======================================================

type ScheduleDayConfig struct {
	ScheduleDate string `json:"schedule_date" binding:"required"` // YYYY-MM-DD
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	IsActive     bool   `json:"is_active"`
}

type ReplaceScheduleRequest struct {
	SchedulesByBarber map[uint][]ScheduleDayConfig `json:"schedules_by_barber" binding:"required"`
	StartDate         string                       `json:"start_date" binding:"required"`
	EndDate           string                       `json:"end_date" binding:"required"`
}

// ======================================================
// GET
// ======================================================

func (h *ScheduleHandler) Get(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	var entries []models.ScheduleEntry
	err := h.db.
		Joins("JOIN barbers b ON b.id = schedule_entries.barber_id").
		Where("b.shop_id = ?", shopID).
		Order("schedule_entries.barber_id ASC, schedule_entries.schedule_date ASC").
		Find(&entries).Error

	if err != nil {
		httperr.Internal(c, "failed_to_list_schedules", "Could not list schedules.")
		return
	}

	httpresp.List(c, entries)
}

// ======================================================
// REPLACE (delete + insert over a date range, one transaction)
// ======================================================

func (h *ScheduleHandler) Replace(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	var req ReplaceScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "schedules_by_barber, start_date, and end_date are required.")
		return
	}

	startDate, err := timeutil.ParseDateUTC(req.StartDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_start_date", "start_date must be YYYY-MM-DD.")
		return
	}
	endDate, err := timeutil.ParseDateUTC(req.EndDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_end_date", "end_date must be YYYY-MM-DD.")
		return
	}
	if endDate.Before(startDate) {
		httperr.BadRequest(c, "invalid_date_range", "end_date must not be before start_date.")
		return
	}

	toCreate, err := h.buildEntries(shopID, req, startDate, endDate)
	if err != nil {
		httperr.BadRequest(c, httperr.BusinessCode(err), "A schedule day is malformed.")
		return
	}

	// One scoped transaction: the shop's schedules over the range are
	// either fully replaced or untouched.
	err = h.db.Transaction(func(tx *gorm.DB) error {
		var barberIDs []uint
		if err := tx.Model(&models.Barber{}).
			Where("shop_id = ?", shopID).
			Pluck("id", &barberIDs).Error; err != nil {
			return err
		}
		if len(barberIDs) == 0 {
			return nil
		}

		if err := tx.
			Where("barber_id IN ? AND schedule_date >= ? AND schedule_date <= ?",
				barberIDs, startDate, endDate).
			Delete(&models.ScheduleEntry{}).Error; err != nil {
			return err
		}

		if len(toCreate) > 0 {
			if err := tx.Create(&toCreate).Error; err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		httperr.Internal(c, "failed_to_save_schedules", "Could not update schedules.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ShopID: &shopID,
		Action: "schedule_replaced",
		Entity: "schedule_entry",
		Metadata: map[string]any{
			"start_date": req.StartDate,
			"end_date":   req.EndDate,
		},
	})

	httpresp.OK(c, gin.H{"message": "All schedules updated successfully!"})
}

// buildEntries validates and collects the active days. Days for barbers
// outside the shop are silently ignored; inactive days are simply not
// stored.
func (h *ScheduleHandler) buildEntries(
	shopID uint,
	req ReplaceScheduleRequest,
	startDate time.Time,
	endDate time.Time,
) ([]models.ScheduleEntry, error) {

	var ownIDs []uint
	if err := h.db.Model(&models.Barber{}).
		Where("shop_id = ?", shopID).
		Pluck("id", &ownIDs).Error; err != nil {
		return nil, err
	}
	own := make(map[uint]struct{}, len(ownIDs))
	for _, id := range ownIDs {
		own[id] = struct{}{}
	}

	var toCreate []models.ScheduleEntry
	for barberID, days := range req.SchedulesByBarber {
		if _, ok := own[barberID]; !ok {
			continue
		}

		for _, day := range days {
			if !day.IsActive {
				continue
			}

			date, err := timeutil.ParseDateUTC(day.ScheduleDate)
			if err != nil {
				return nil, httperr.ErrBusiness("invalid_schedule")
			}
			if date.Before(startDate) || date.After(endDate) {
				return nil, httperr.ErrBusiness("invalid_schedule")
			}

			window := domain.ScheduleWindow{
				BarberID: barberID,
				Date:     date,
				Active:   true,
				Start:    day.StartTime,
				End:      day.EndTime,
			}
			if err := window.Validate(); err != nil {
				return nil, err
			}

			toCreate = append(toCreate, models.ScheduleEntry{
				BarberID:     barberID,
				ScheduleDate: date,
				StartTime:    day.StartTime,
				EndTime:      day.EndTime,
				IsActive:     true,
			})
		}
	}

	return toCreate, nil
}
