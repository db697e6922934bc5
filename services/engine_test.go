package services_test

import (
	"context"
	"testing"

	"hospitality-backend/models"
	"hospitality-backend/services"
	"hospitality-backend/storage/memory"

	"github.com/shopspring/decimal"
)

func rate(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("parse rate %q: %v", s, err)
	}
	return d
}

// newCatalog seeds one hotel with three rooms (101 Standard 100.00,
// 102 Standard 90.00, 201 Deluxe 180.00) and returns the pieces tests need.
func newCatalog(t *testing.T) (*memory.Store, models.Hotel, []models.Room) {
	t.Helper()
	ctx := context.Background()
	store := memory.New()

	hotel := models.Hotel{Name: "Grand Palace Hotel", Address: "1 Riverside Road"}
	if err := store.CreateHotel(ctx, &hotel); err != nil {
		t.Fatalf("seed hotel: %v", err)
	}

	rooms := []models.Room{
		{HotelID: hotel.ID, RoomNumber: "101", RoomType: "Standard", RatePerNight: rate(t, "100.00"), MaxOccupancy: 2},
		{HotelID: hotel.ID, RoomNumber: "102", RoomType: "Standard", RatePerNight: rate(t, "90.00"), MaxOccupancy: 2},
		{HotelID: hotel.ID, RoomNumber: "201", RoomType: "Deluxe", RatePerNight: rate(t, "180.00"), MaxOccupancy: 3},
	}
	for i := range rooms {
		if err := store.CreateRoom(ctx, &rooms[i]); err != nil {
			t.Fatalf("seed room %s: %v", rooms[i].RoomNumber, err)
		}
	}
	return store, hotel, rooms
}

func mustReserve(t *testing.T, svc *services.ReservationService, roomID uint, checkIn, checkOut string) models.Reservation {
	t.Helper()
	res, err := svc.Create(context.Background(), services.CreateReservationInput{
		UserID:    1,
		RoomID:    roomID,
		GuestName: "Alice Walker",
		CheckIn:   checkIn,
		CheckOut:  checkOut,
	})
	if err != nil {
		t.Fatalf("create reservation room=%d %s..%s: %v", roomID, checkIn, checkOut, err)
	}
	return res
}
