package services

import (
	"context"

	"hospitality-backend/models"
)

// ReservationFilter narrows ListReservations. Zero values mean "all".
type ReservationFilter struct {
	HotelID uint
	Status  models.ReservationStatus
}

// Store is the reservation store abstraction every read and write flows through.
// storage.GormStore implements it on MySQL; storage/memory implements it for tests.
//
// Lock-scoped methods run fn inside one atomic unit: for GormStore that is a
// transaction holding a SELECT ... FOR UPDATE row lock, so a failed fn leaves
// the store untouched. The Store handed to fn must be used for every access
// inside the callback.
type Store interface {
	GetHotel(ctx context.Context, id uint) (models.Hotel, error)
	ListHotels(ctx context.Context) ([]models.Hotel, error)
	CreateHotel(ctx context.Context, h *models.Hotel) error

	GetRoom(ctx context.Context, id uint) (models.Room, error)
	// ListHotelRooms returns the hotel's rooms ordered by room number ascending,
	// optionally filtered by room type.
	ListHotelRooms(ctx context.Context, hotelID uint, roomType string) ([]models.Room, error)
	CreateRoom(ctx context.Context, r *models.Room) error

	GetUserByUsername(ctx context.Context, username string) (models.User, error)

	GetReservation(ctx context.Context, id uint) (models.Reservation, error)
	ListReservations(ctx context.Context, f ReservationFilter) ([]models.Reservation, error)
	// OccupyingReservations returns the room's reservations whose status still
	// blocks dates (Confirmed or CheckedIn).
	OccupyingReservations(ctx context.Context, roomID uint) ([]models.Reservation, error)
	CreateReservation(ctx context.Context, r *models.Reservation) error
	UpdateReservation(ctx context.Context, r *models.Reservation) error

	CreateBill(ctx context.Context, b *models.Bill) error
	BillForReservation(ctx context.Context, reservationID uint) (models.Bill, error)

	// WithRoomLock serializes concurrent writers targeting the same room across
	// the read-then-write of reservation creation. ErrRecordNotFound if the room
	// does not exist.
	WithRoomLock(ctx context.Context, roomID uint, fn func(tx Store) error) error

	// WithReservation loads the reservation under a row lock and passes it to fn,
	// serializing concurrent lifecycle transitions on the same row.
	WithReservation(ctx context.Context, id uint, fn func(tx Store, r *models.Reservation) error) error
}
