package httperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestBusinessCode(t *testing.T) {
	err := ErrBusiness("slot_unavailable")
	if got := BusinessCode(err); got != "slot_unavailable" {
		t.Fatalf("BusinessCode = %q, want slot_unavailable", got)
	}
	if got := BusinessCode(errors.New("boom")); got != "" {
		t.Fatalf("BusinessCode on plain error = %q, want empty", got)
	}
	if got := BusinessCode(nil); got != "" {
		t.Fatalf("BusinessCode on nil = %q, want empty", got)
	}
}

func TestIsBusinessUnwraps(t *testing.T) {
	wrapped := fmt.Errorf("book appointment: %w", ErrBusiness("barber_not_found"))
	if !IsBusiness(wrapped, "barber_not_found") {
		t.Fatal("wrapped business error not recognised")
	}
	if IsBusiness(wrapped, "service_not_found") {
		t.Fatal("code mismatch should not match")
	}
}
