package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/bobthecat1708/barber-finder-api/internal/httperr"
)

// Two racers can both pass the locked availability check before either
// commits; the index violation on insert must then surface as the same
// slot_unavailable rejection, not as an internal failure.
func TestTranslateInsertError(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "idx_appointments_barber_slot"}

	cases := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"unique violation", unique, "slot_unavailable"},
		{"wrapped unique violation", fmt.Errorf("insert: %w", unique), "slot_unavailable"},
		{"foreign key violation", &pgconn.PgError{Code: "23503"}, ""},
		{"plain store error", errors.New("connection reset"), ""},
	}

	for _, tc := range cases {
		got := translateInsertError(tc.err)
		if tc.wantCode != "" {
			if !httperr.IsBusiness(got, tc.wantCode) {
				t.Errorf("%s: got %v, want business code %q", tc.name, got, tc.wantCode)
			}
			continue
		}
		if !errors.Is(got, tc.err) {
			t.Errorf("%s: got %v, want the original error passed through", tc.name, got)
		}
	}
}
