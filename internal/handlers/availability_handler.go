package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bobthecat1708/barber-finder-api/internal/httperr"
	"github.com/bobthecat1708/barber-finder-api/internal/httpresp"
	ucbooking "github.com/bobthecat1708/barber-finder-api/internal/usecase/booking"
)

type AvailabilityHandler struct {
	getAvailability *ucbooking.GetAvailability
}

func NewAvailabilityHandler(getAvailability *ucbooking.GetAvailability) *AvailabilityHandler {
	return &AvailabilityHandler{getAvailability: getAvailability}
}

// Get answers GET /api/barbers/:id/availability?date=YYYY-MM-DD with the
// barber's open slot starts as RFC3339 UTC timestamps.
func (h *AvailabilityHandler) Get(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barber id must be numeric.")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "A date query parameter is required.")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, time.UTC)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	slots, err := h.getAvailability.Execute(c.Request.Context(), uint(barberID), date)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_schedule") {
			httperr.Internal(c, "invalid_schedule", "The barber's schedule is malformed.")
			return
		}
		httperr.Internal(c, "availability_failed", "Could not compute availability.")
		return
	}

	out := make([]string, 0, len(slots))
	for _, slot := range slots {
		out = append(out, slot.UTC().Format(time.RFC3339))
	}

	httpresp.OK(c, out)
}
