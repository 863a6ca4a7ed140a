package booking

import (
	"fmt"
	"iter"
	"time"

	"github.com/bobthecat1708/barber-finder-api/internal/httperr"
	"github.com/bobthecat1708/barber-finder-api/internal/models"
	"github.com/bobthecat1708/barber-finder-api/internal/timeutil"
)

// SlotDuration is the fixed booking granularity. Every appointment
// occupies exactly one slot and slot starts are aligned to this grid.
const SlotDuration = 30 * time.Minute

// ScheduleWindow is one barber's working window for one calendar date,
// already pinned to UTC.
type ScheduleWindow struct {
	BarberID uint
	Date     time.Time // UTC midnight of the calendar date
	Active   bool
	Start    string // HH:MM
	End      string // HH:MM
}

func WindowFromEntry(e *models.ScheduleEntry) ScheduleWindow {
	return ScheduleWindow{
		BarberID: e.BarberID,
		Date:     timeutil.DayStartUTC(e.ScheduleDate),
		Active:   e.IsActive,
		Start:    e.StartTime,
		End:      e.EndTime,
	}
}

// Validate rejects malformed windows instead of letting them produce a
// wrong slot set.
func (w ScheduleWindow) Validate() error {
	start, err := minuteOfDay(w.Start)
	if err != nil {
		return httperr.ErrBusiness("invalid_schedule")
	}
	end, err := minuteOfDay(w.End)
	if err != nil {
		return httperr.ErrBusiness("invalid_schedule")
	}
	if start >= end {
		return httperr.ErrBusiness("invalid_schedule")
	}
	if w.Date.IsZero() {
		return httperr.ErrBusiness("invalid_schedule")
	}
	return nil
}

// Slots yields the candidate slot starts for the window: Date+Start,
// then every SlotDuration after, strictly before Date+End. The sequence
// is empty for an inactive or invalid window, and restartable.
func (w ScheduleWindow) Slots() iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		if !w.Active || w.Validate() != nil {
			return
		}

		start, _ := minuteOfDay(w.Start)
		end, _ := minuteOfDay(w.End)

		dayStart := timeutil.DayStartUTC(w.Date)
		for cur := dayStart.Add(start); cur.Before(dayStart.Add(end)); cur = cur.Add(SlotDuration) {
			if !yield(cur) {
				return
			}
		}
	}
}

// SlotTimes collects Slots into an ordered slice.
func (w ScheduleWindow) SlotTimes() []time.Time {
	var out []time.Time
	for slot := range w.Slots() {
		out = append(out, slot)
	}
	return out
}

func minuteOfDay(hm string) (time.Duration, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, fmt.Errorf("invalid minute of day %q: %w", hm, err)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}
