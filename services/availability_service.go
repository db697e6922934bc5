package services

import (
	"context"
	"errors"
	"fmt"

	"hospitality-backend/models"

	"github.com/shopspring/decimal"
)

type AvailabilityStatus string

const (
	Available   AvailabilityStatus = "Available"
	Unavailable AvailabilityStatus = "Unavailable"
)

// AvailabilityResult reflects store state at call time only; it is not a hold.
type AvailabilityResult struct {
	Status           AvailabilityStatus `json:"AvailabilityStatus"`
	ConflictingCount int                `json:"ConflictingReservations"`
}

// AvailableRoom is one alternative offered when the requested room is taken.
type AvailableRoom struct {
	RoomID       uint            `json:"RoomID"`
	RoomNumber   string          `json:"RoomNumber"`
	RoomType     string          `json:"RoomType"`
	RatePerNight decimal.Decimal `json:"RatePerNight"`
	MaxOccupancy int             `json:"MaxOccupancy"`
	HotelName    string          `json:"HotelName"`
}

type AvailabilityService struct {
	store Store
}

func NewAvailabilityService(store Store) *AvailabilityService {
	return &AvailabilityService{store: store}
}

func parseRange(checkIn, checkOut string) (Interval, error) {
	inputErr := newValidationError()

	in, err := ParseDate(checkIn)
	if err != nil {
		inputErr.addError("checkInDate", fmt.Sprintf("invalid date %q, want YYYY-MM-DD", checkIn))
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		inputErr.addError("checkOutDate", fmt.Sprintf("invalid date %q, want YYYY-MM-DD", checkOut))
	}
	if inputErr.fieldsCount() > 0 {
		return Interval{}, inputErr
	}

	iv := NewInterval(in, out)
	if !iv.Valid() {
		inputErr.addError("checkInDate", "check-in date must be before check-out date")
		return Interval{}, inputErr
	}
	return iv, nil
}

func countConflicts(existing []models.Reservation, iv Interval) int {
	count := 0
	for _, r := range existing {
		if !r.Status.Occupying() {
			continue
		}
		if iv.Overlaps(NewInterval(r.CheckInDate, r.CheckOutDate)) {
			count++
		}
	}
	return count
}

// CheckAvailability is a pure read: no side effects, no hold on the room.
func (s *AvailabilityService) CheckAvailability(ctx context.Context, roomID uint, checkIn, checkOut string) (AvailabilityResult, error) {
	iv, err := parseRange(checkIn, checkOut)
	if err != nil {
		return AvailabilityResult{}, err
	}

	if _, err := s.store.GetRoom(ctx, roomID); err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return AvailabilityResult{}, &NotFoundError{Entity: "room", ID: roomID}
		}
		return AvailabilityResult{}, fmt.Errorf("load room %d: %w", roomID, err)
	}

	existing, err := s.store.OccupyingReservations(ctx, roomID)
	if err != nil {
		return AvailabilityResult{}, fmt.Errorf("load reservations for room %d: %w", roomID, err)
	}

	conflicts := countConflicts(existing, iv)
	result := AvailabilityResult{Status: Available, ConflictingCount: conflicts}
	if conflicts > 0 {
		result.Status = Unavailable
	}
	return result, nil
}

// FindAlternatives lists the hotel's free rooms for the range, ordered by room
// number. Zero matches is a valid result, not an error.
func (s *AvailabilityService) FindAlternatives(ctx context.Context, hotelID uint, checkIn, checkOut string, roomType string) ([]AvailableRoom, error) {
	iv, err := parseRange(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	hotel, err := s.store.GetHotel(ctx, hotelID)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "hotel", ID: hotelID}
		}
		return nil, fmt.Errorf("load hotel %d: %w", hotelID, err)
	}

	rooms, err := s.store.ListHotelRooms(ctx, hotelID, roomType)
	if err != nil {
		return nil, fmt.Errorf("load rooms for hotel %d: %w", hotelID, err)
	}

	alternatives := make([]AvailableRoom, 0, len(rooms))
	for _, room := range rooms {
		existing, err := s.store.OccupyingReservations(ctx, room.ID)
		if err != nil {
			return nil, fmt.Errorf("load reservations for room %d: %w", room.ID, err)
		}
		if countConflicts(existing, iv) > 0 {
			continue
		}
		alternatives = append(alternatives, AvailableRoom{
			RoomID:       room.ID,
			RoomNumber:   room.RoomNumber,
			RoomType:     room.RoomType,
			RatePerNight: room.RatePerNight,
			MaxOccupancy: room.MaxOccupancy,
			HotelName:    hotel.Name,
		})
	}
	return alternatives, nil
}
