package booking

import (
	"context"
	"time"

	"github.com/bobthecat1708/barber-finder-api/internal/models"
)

type Repository interface {
	// -------- Reference data --------
	GetBarber(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Schedule --------

	// GetScheduleEntry returns (nil, nil) when no entry exists for the
	// barber/date; absence is availability's common empty case, not an
	// error.
	GetScheduleEntry(
		ctx context.Context,
		barberID uint,
		date time.Time,
	) (*models.ScheduleEntry, error)

	// -------- Appointments --------

	// ListBookedTimes returns the non-cancelled slot starts for the
	// barber within [dayStart, dayEnd), ascending.
	ListBookedTimes(
		ctx context.Context,
		barberID uint,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]time.Time, error)

	// BookAppointment atomically re-derives availability for the slot
	// and inserts ap, all inside one store transaction. It fails with
	// the slot_unavailable business error when the slot is taken or the
	// schedule is inactive; on any failure nothing is persisted.
	BookAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointmentForCustomer(
		ctx context.Context,
		appointmentID uint,
		customerID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error
}
