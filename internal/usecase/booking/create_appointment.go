package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bobthecat1708/barber-finder-api/internal/audit"
	domain "github.com/bobthecat1708/barber-finder-api/internal/domain/booking"
	"github.com/bobthecat1708/barber-finder-api/internal/httperr"
	"github.com/bobthecat1708/barber-finder-api/internal/models"
	"github.com/bobthecat1708/barber-finder-api/internal/timeutil"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	BarberID        uint
	ServiceID       uint
	CustomerID      uint
	AppointmentTime time.Time
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute validates the request, then hands the slot check and insert to
// the repository as one atomic booking transaction. A booking attempt
// either commits or is rejected with a coded error; there is no persisted
// in-between state.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if in.BarberID == 0 || in.ServiceID == 0 || in.CustomerID == 0 {
		return nil, httperr.ErrBusiness("missing_fields")
	}

	if in.AppointmentTime.IsZero() {
		return nil, httperr.ErrBusiness("missing_fields")
	}

	start := in.AppointmentTime.UTC()
	if !timeutil.IsSlotAligned(start, domain.SlotDuration) {
		return nil, httperr.ErrBusiness("misaligned_time")
	}

	if _, err := uc.repo.GetBarber(ctx, in.BarberID); err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	if _, err := uc.repo.GetService(ctx, in.ServiceID); err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	customerID := in.CustomerID
	ap := &models.Appointment{
		BarberID:        in.BarberID,
		ServiceID:       in.ServiceID,
		CustomerID:      &customerID,
		AppointmentTime: start,
		Status:          string(domain.InitialStatus()),
		Reference:       uuid.NewString(),
	}

	if err := uc.repo.BookAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CustomerID: &customerID,
		Action:     "appointment_booked",
		Entity:     "appointment",
		EntityID:   &ap.ID,
	})

	return ap, nil
}
