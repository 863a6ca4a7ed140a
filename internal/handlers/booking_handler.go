package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bobthecat1708/barber-finder-api/internal/dto"
	"github.com/bobthecat1708/barber-finder-api/internal/httperr"
	"github.com/bobthecat1708/barber-finder-api/internal/httpresp"
	"github.com/bobthecat1708/barber-finder-api/internal/middleware"
	ucbooking "github.com/bobthecat1708/barber-finder-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	db       *gorm.DB
	createUC *ucbooking.CreateAppointment
	cancelUC *ucbooking.CancelBooking
}

func NewBookingHandler(
	db *gorm.DB,
	createUC *ucbooking.CreateAppointment,
	cancelUC *ucbooking.CancelBooking,
) *BookingHandler {
	return &BookingHandler{
		db:       db,
		createUC: createUC,
		cancelUC: cancelUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	BarberID        uint      `json:"barber_id" binding:"required"`
	ServiceID       uint      `json:"service_id" binding:"required"`
	AppointmentTime time.Time `json:"appointment_time" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextCustomerID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Missing required appointment details.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucbooking.CreateAppointmentInput{
		BarberID:        req.BarberID,
		ServiceID:       req.ServiceID,
		CustomerID:      customerID,
		AppointmentTime: req.AppointmentTime,
	})
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"message":     "Appointment created successfully!",
		"appointment": ap,
	})
}

// mapBookingErrors turns booking rejections into their HTTP shape:
// validation 400, unknown references 404, taken slot 409, the rest 500.
func mapBookingErrors(c *gin.Context, err error) {
	switch code := httperr.BusinessCode(err); code {
	case "missing_fields":
		httperr.BadRequest(c, code, "Missing required appointment details.")
	case "misaligned_time":
		httperr.BadRequest(c, code, "Appointment time must start on a half-hour boundary (UTC).")
	case "barber_not_found":
		httperr.NotFound(c, code, "Barber not found.")
	case "service_not_found":
		httperr.NotFound(c, code, "Service not found.")
	case "slot_unavailable":
		httperr.Conflict(c, code, "That time slot is no longer available.")
	case "invalid_schedule":
		httperr.Internal(c, code, "The barber's schedule is malformed.")
	default:
		httperr.Internal(c, "failed_to_create_appointment", "Could not create the appointment.")
	}
}

// ======================================================
// LIST (booking history)
// ======================================================

func (h *BookingHandler) ListBookings(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextCustomerID).(uint)

	var bookings []dto.BookingListDTO
	err := h.db.
		Table("appointments a").
		Select(`a.id, a.reference, a.appointment_time, a.status,
            s.name AS service_name, b.name AS barber_name,
            bs.name AS shop_name, bs.address AS shop_address`).
		Joins("JOIN services s ON a.service_id = s.id").
		Joins("JOIN barbers b ON a.barber_id = b.id").
		Joins("JOIN barber_shops bs ON b.shop_id = bs.id").
		Where("a.customer_id = ?", customerID).
		Order("a.appointment_time DESC").
		Scan(&bookings).Error

	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	httpresp.List(c, bookings)
}

// ======================================================
// CANCEL
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextCustomerID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Booking id must be numeric.")
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), customerID, uint(id))
	if err != nil {
		if httperr.IsBusiness(err, "booking_not_found") {
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
			return
		}
		if httperr.IsBusiness(err, "invalid_state") {
			httperr.BadRequest(c, "invalid_state", "This booking cannot be cancelled.")
			return
		}
		httperr.Internal(c, "failed_to_cancel_booking", "Could not cancel the booking.")
		return
	}

	httpresp.OK(c, ap)
}
