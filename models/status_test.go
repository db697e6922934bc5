package models

import "testing"

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to ReservationStatus
		want     bool
	}{
		{StatusConfirmed, StatusCheckedIn, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusCheckedIn, StatusCheckedOut, true},

		{StatusConfirmed, StatusCheckedOut, false},
		{StatusCheckedIn, StatusCancelled, false}, // checked-in guests must check out
		{StatusCheckedOut, StatusCheckedIn, false},
		{StatusCheckedOut, StatusCheckedOut, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusCheckedIn, false},
	}
	for _, tc := range tests {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestStatusOccupying(t *testing.T) {
	if !StatusConfirmed.Occupying() || !StatusCheckedIn.Occupying() {
		t.Fatal("Confirmed and CheckedIn must occupy the room")
	}
	if StatusCheckedOut.Occupying() || StatusCancelled.Occupying() {
		t.Fatal("CheckedOut and Cancelled must never block availability")
	}
}

func TestParseReservationStatus(t *testing.T) {
	if _, ok := ParseReservationStatus("Confirmed"); !ok {
		t.Fatal("Confirmed must parse")
	}
	if _, ok := ParseReservationStatus("checked-in"); ok {
		t.Fatal("free-form strings must not parse")
	}
}
