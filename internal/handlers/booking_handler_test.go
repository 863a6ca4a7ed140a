package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bobthecat1708/barber-finder-api/internal/audit"
	"github.com/bobthecat1708/barber-finder-api/internal/httperr"
	"github.com/bobthecat1708/barber-finder-api/internal/middleware"
	"github.com/bobthecat1708/barber-finder-api/internal/models"
	ucbooking "github.com/bobthecat1708/barber-finder-api/internal/usecase/booking"
)

func bookingRouter(repo *fakeBookingRepo) *gin.Engine {
	r := gin.New()

	nop := audit.NewNopDispatcher()
	h := NewBookingHandler(
		nil,
		ucbooking.NewCreateAppointment(repo, nop),
		ucbooking.NewCancelBooking(repo, nop),
	)

	// stand-in for the customer auth middleware
	authed := func(c *gin.Context) {
		c.Set(middleware.ContextCustomerID, uint(3))
		c.Next()
	}

	r.POST("/api/customers/appointments", authed, h.Create)
	r.PATCH("/api/customers/bookings/:id/cancel", authed, h.Cancel)
	return r
}

func postBooking(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/customers/appointments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestBookingCreate_MissingFields(t *testing.T) {
	r := bookingRouter(&fakeBookingRepo{})

	w := postBooking(t, r, `{"barber_id": 1}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", w.Code, w.Body.String())
	}
}

func TestBookingCreate_MisalignedTime(t *testing.T) {
	r := bookingRouter(&fakeBookingRepo{})

	w := postBooking(t, r, `{"barber_id":1,"service_id":2,"appointment_time":"2024-07-21T09:10:00Z"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "misaligned_time") {
		t.Fatalf("body = %s, want misaligned_time", w.Body.String())
	}
}

func TestBookingCreate_UnknownBarberIs404(t *testing.T) {
	r := bookingRouter(&fakeBookingRepo{
		getBarberFn: func(ctx context.Context, id uint) (*models.Barber, error) {
			return nil, httperr.ErrBusiness("barber_not_found")
		},
	})

	w := postBooking(t, r, `{"barber_id":9,"service_id":2,"appointment_time":"2024-07-21T09:30:00Z"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404: %s", w.Code, w.Body.String())
	}
}

func TestBookingCreate_TakenSlotIs409(t *testing.T) {
	r := bookingRouter(&fakeBookingRepo{
		bookAppointmentFn: func(ctx context.Context, ap *models.Appointment) error {
			return httperr.ErrBusiness("slot_unavailable")
		},
	})

	w := postBooking(t, r, `{"barber_id":1,"service_id":2,"appointment_time":"2024-07-21T09:30:00Z"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "slot_unavailable") {
		t.Fatalf("body = %s, want slot_unavailable", w.Body.String())
	}
}

func TestBookingCreate_Success(t *testing.T) {
	var booked *models.Appointment
	r := bookingRouter(&fakeBookingRepo{
		bookAppointmentFn: func(ctx context.Context, ap *models.Appointment) error {
			booked = ap
			ap.ID = 7
			return nil
		},
	})

	w := postBooking(t, r, `{"barber_id":1,"service_id":2,"appointment_time":"2024-07-21T09:30:00Z"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}

	if booked == nil {
		t.Fatal("appointment never reached the repository")
	}
	if booked.CustomerID == nil || *booked.CustomerID != 3 {
		t.Fatalf("customer_id = %v, want the authenticated customer", booked.CustomerID)
	}
	want := time.Date(2024, 7, 21, 9, 30, 0, 0, time.UTC)
	if !booked.AppointmentTime.Equal(want) {
		t.Fatalf("appointment_time = %v, want %v", booked.AppointmentTime, want)
	}
}

func TestBookingCancel_Flow(t *testing.T) {
	r := bookingRouter(&fakeBookingRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/customers/bookings/42/cancel", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "cancelled") {
		t.Fatalf("body = %s, want cancelled status", w.Body.String())
	}
}

func TestBookingCancel_OtherCustomersBookingIs404(t *testing.T) {
	r := bookingRouter(&fakeBookingRepo{
		getForCustomerFn: func(ctx context.Context, appointmentID, customerID uint) (*models.Appointment, error) {
			return nil, httperr.ErrBusiness("booking_not_found")
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/customers/bookings/42/cancel", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404: %s", w.Code, w.Body.String())
	}
}
