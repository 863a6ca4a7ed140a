package booking

import (
	"testing"
	"time"

	"github.com/bobthecat1708/barber-finder-api/internal/httperr"
	"github.com/bobthecat1708/barber-finder-api/internal/models"
)

func utcDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSlots_CountSpacingAndBounds(t *testing.T) {
	w := ScheduleWindow{
		BarberID: 1,
		Date:     utcDate(2024, 7, 21),
		Active:   true,
		Start:    "09:00",
		End:      "11:00",
	}

	got := w.SlotTimes()
	if len(got) != 4 {
		t.Fatalf("slots = %d, want 4", len(got))
	}

	wantFirst := time.Date(2024, 7, 21, 9, 0, 0, 0, time.UTC)
	if !got[0].Equal(wantFirst) {
		t.Fatalf("first slot = %v, want %v", got[0], wantFirst)
	}

	end := time.Date(2024, 7, 21, 11, 0, 0, 0, time.UTC)
	for i, slot := range got {
		if !slot.Before(end) {
			t.Fatalf("slot %d = %v, not before window end %v", i, slot, end)
		}
		if i > 0 && slot.Sub(got[i-1]) != SlotDuration {
			t.Fatalf("gap between slot %d and %d = %v, want %v", i-1, i, slot.Sub(got[i-1]), SlotDuration)
		}
	}
}

func TestSlots_EndExclusiveOnUnevenWindow(t *testing.T) {
	w := ScheduleWindow{
		BarberID: 1,
		Date:     utcDate(2024, 7, 21),
		Active:   true,
		Start:    "09:00",
		End:      "10:15",
	}

	// 09:00, 09:30, 10:00 — the 10:30 slot would start past the end.
	got := w.SlotTimes()
	if len(got) != 3 {
		t.Fatalf("slots = %d, want 3", len(got))
	}
	last := time.Date(2024, 7, 21, 10, 0, 0, 0, time.UTC)
	if !got[2].Equal(last) {
		t.Fatalf("last slot = %v, want %v", got[2], last)
	}
}

func TestSlots_InactiveWindowIsEmpty(t *testing.T) {
	w := ScheduleWindow{
		BarberID: 1,
		Date:     utcDate(2024, 7, 21),
		Active:   false,
		Start:    "09:00",
		End:      "17:00",
	}

	if got := w.SlotTimes(); len(got) != 0 {
		t.Fatalf("inactive window produced %d slots, want 0", len(got))
	}
}

func TestSlots_Restartable(t *testing.T) {
	w := ScheduleWindow{
		BarberID: 1,
		Date:     utcDate(2024, 7, 21),
		Active:   true,
		Start:    "09:00",
		End:      "12:00",
	}

	seq := w.Slots()

	first := 0
	for range seq {
		first++
	}
	second := 0
	for range seq {
		second++
	}

	if first != 6 || second != 6 {
		t.Fatalf("iterations produced %d then %d slots, want 6 both times", first, second)
	}
}

func TestSlots_StopsWhenYieldReturnsFalse(t *testing.T) {
	w := ScheduleWindow{
		BarberID: 1,
		Date:     utcDate(2024, 7, 21),
		Active:   true,
		Start:    "00:00",
		End:      "23:59",
	}

	n := 0
	for range w.Slots() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Fatalf("early break consumed %d slots, want 3", n)
	}
}

func TestValidate_Rejections(t *testing.T) {
	cases := []struct {
		name string
		w    ScheduleWindow
	}{
		{"start after end", ScheduleWindow{Date: utcDate(2024, 7, 21), Active: true, Start: "17:00", End: "09:00"}},
		{"start equals end", ScheduleWindow{Date: utcDate(2024, 7, 21), Active: true, Start: "09:00", End: "09:00"}},
		{"garbage start", ScheduleWindow{Date: utcDate(2024, 7, 21), Active: true, Start: "morning", End: "17:00"}},
		{"garbage end", ScheduleWindow{Date: utcDate(2024, 7, 21), Active: true, Start: "09:00", End: "25:61"}},
		{"zero date", ScheduleWindow{Active: true, Start: "09:00", End: "17:00"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.w.Validate()
			if !httperr.IsBusiness(err, "invalid_schedule") {
				t.Fatalf("Validate() = %v, want invalid_schedule", err)
			}
			if got := tc.w.SlotTimes(); len(got) != 0 {
				t.Fatalf("invalid window still produced %d slots", len(got))
			}
		})
	}
}

func TestWindowFromEntry(t *testing.T) {
	e := &models.ScheduleEntry{
		BarberID:     7,
		ScheduleDate: time.Date(2024, 7, 21, 15, 30, 0, 0, time.UTC),
		StartTime:    "09:00",
		EndTime:      "17:00",
		IsActive:     true,
	}

	w := WindowFromEntry(e)
	if w.BarberID != 7 || !w.Active {
		t.Fatalf("window = %+v", w)
	}
	if !w.Date.Equal(utcDate(2024, 7, 21)) {
		t.Fatalf("date = %v, want UTC midnight", w.Date)
	}
}

func TestCancel_Transitions(t *testing.T) {
	now := time.Date(2024, 7, 21, 12, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusBooked)}
	if err := Cancel(ap, now); err != nil {
		t.Fatalf("Cancel booked: %v", err)
	}
	if ap.Status != string(StatusCancelled) || ap.CancelledAt == nil {
		t.Fatalf("after cancel: status=%q cancelled_at=%v", ap.Status, ap.CancelledAt)
	}

	if err := Cancel(ap, now); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("second cancel = %v, want invalid_state", err)
	}
}
