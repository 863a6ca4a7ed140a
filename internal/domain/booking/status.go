package booking

import (
	"time"

	"github.com/bobthecat1708/barber-finder-api/internal/httperr"
	"github.com/bobthecat1708/barber-finder-api/internal/models"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusBooked    Status = "booked"
	StatusCancelled Status = "cancelled"
)

func InitialStatus() Status {
	return StatusBooked
}

// CanCancel allows the transition booked -> cancelled only.
func CanCancel(current Status) error {
	if current != StatusBooked {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}
