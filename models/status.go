package models

// ReservationStatus is a closed set; anything read from outside must pass ParseReservationStatus.
type ReservationStatus string

const (
	StatusConfirmed  ReservationStatus = "Confirmed"
	StatusCheckedIn  ReservationStatus = "CheckedIn"
	StatusCheckedOut ReservationStatus = "CheckedOut"
	StatusCancelled  ReservationStatus = "Cancelled"
)

// transitions holds every legal move. CheckedIn -> Cancelled is deliberately absent:
// a guest who has checked in must check out.
var transitions = map[ReservationStatus][]ReservationStatus{
	StatusConfirmed: {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn: {StatusCheckedOut},
}

func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Occupying reports whether a reservation in this status blocks the room's dates.
// Cancelled and checked-out stays never do.
func (s ReservationStatus) Occupying() bool {
	return s == StatusConfirmed || s == StatusCheckedIn
}

func ParseReservationStatus(raw string) (ReservationStatus, bool) {
	switch ReservationStatus(raw) {
	case StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled:
		return ReservationStatus(raw), true
	}
	return "", false
}
