package booking

import (
	"context"
	"time"

	domain "github.com/bobthecat1708/barber-finder-api/internal/domain/booking"
	"github.com/bobthecat1708/barber-finder-api/internal/timeutil"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute returns the open slot starts for a barber on a date, ascending.
// A missing or inactive schedule entry means the barber simply does not
// work that day: empty result, not an error.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	barberID uint,
	date time.Time,
) ([]time.Time, error) {

	entry, err := uc.repo.GetScheduleEntry(ctx, barberID, date)
	if err != nil {
		return nil, err
	}
	if entry == nil || !entry.IsActive {
		return []time.Time{}, nil
	}

	window := domain.WindowFromEntry(entry)
	if err := window.Validate(); err != nil {
		return nil, err
	}

	dayStart := timeutil.DayStartUTC(date)
	booked, err := uc.repo.ListBookedTimes(
		ctx,
		barberID,
		dayStart,
		dayStart.Add(24*time.Hour),
	)
	if err != nil {
		return nil, err
	}

	taken := make(map[int64]struct{}, len(booked))
	for _, bt := range booked {
		taken[bt.UTC().Unix()] = struct{}{}
	}

	// Candidate slots come out of the window in ascending order already;
	// subtraction is by exact instant, one slot per appointment.
	open := []time.Time{}
	for slot := range window.Slots() {
		if _, busy := taken[slot.Unix()]; busy {
			continue
		}
		open = append(open, slot)
	}

	return open, nil
}
