package storage

import (
	"context"
	"errors"
	"fmt"

	"hospitality-backend/models"
	"hospitality-backend/services"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore implements services.Store on MySQL. Lock-scoped methods open a
// transaction and take a SELECT ... FOR UPDATE row lock, so the read-then-write
// inside the callback is one atomic unit.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// wrapErr translates driver errors into the engine's taxonomy. MySQL 1205 is a
// lock wait timeout, 1213 a deadlock; both are transient and worth a retry.
func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return services.ErrRecordNotFound
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case 1205, 1213:
			return fmt.Errorf("%w: %v", services.ErrStorageConflict, err)
		}
	}
	return err
}

func (s *GormStore) GetHotel(ctx context.Context, id uint) (models.Hotel, error) {
	var hotel models.Hotel
	if err := s.db.WithContext(ctx).First(&hotel, id).Error; err != nil {
		return models.Hotel{}, wrapErr(err)
	}
	return hotel, nil
}

func (s *GormStore) ListHotels(ctx context.Context) ([]models.Hotel, error) {
	var hotels []models.Hotel
	err := s.db.WithContext(ctx).
		Preload("Rooms", func(db *gorm.DB) *gorm.DB { return db.Order("room_number ASC") }).
		Order("id ASC").
		Find(&hotels).Error
	if err != nil {
		return nil, wrapErr(err)
	}
	return hotels, nil
}

func (s *GormStore) CreateHotel(ctx context.Context, h *models.Hotel) error {
	return wrapErr(s.db.WithContext(ctx).Create(h).Error)
}

func (s *GormStore) GetRoom(ctx context.Context, id uint) (models.Room, error) {
	var room models.Room
	if err := s.db.WithContext(ctx).First(&room, id).Error; err != nil {
		return models.Room{}, wrapErr(err)
	}
	return room, nil
}

func (s *GormStore) ListHotelRooms(ctx context.Context, hotelID uint, roomType string) ([]models.Room, error) {
	q := s.db.WithContext(ctx).Where("hotel_id = ?", hotelID)
	if roomType != "" {
		q = q.Where("room_type = ?", roomType)
	}
	var rooms []models.Room
	if err := q.Order("room_number ASC").Find(&rooms).Error; err != nil {
		return nil, wrapErr(err)
	}
	return rooms, nil
}

func (s *GormStore) CreateRoom(ctx context.Context, r *models.Room) error {
	return wrapErr(s.db.WithContext(ctx).Create(r).Error)
}

func (s *GormStore) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return models.User{}, wrapErr(err)
	}
	return user, nil
}

func (s *GormStore) GetReservation(ctx context.Context, id uint) (models.Reservation, error) {
	var res models.Reservation
	if err := s.db.WithContext(ctx).Preload("Room").First(&res, id).Error; err != nil {
		return models.Reservation{}, wrapErr(err)
	}
	return res, nil
}

func (s *GormStore) ListReservations(ctx context.Context, f services.ReservationFilter) ([]models.Reservation, error) {
	q := s.db.WithContext(ctx).Model(&models.Reservation{}).Preload("Room")
	if f.HotelID != 0 {
		q = q.Joins("JOIN rooms ON rooms.id = reservations.room_id").
			Where("rooms.hotel_id = ?", f.HotelID)
	}
	if f.Status != "" {
		q = q.Where("reservations.status = ?", f.Status)
	}
	var list []models.Reservation
	if err := q.Order("reservations.created_at DESC").Find(&list).Error; err != nil {
		return nil, wrapErr(err)
	}
	return list, nil
}

func (s *GormStore) OccupyingReservations(ctx context.Context, roomID uint) ([]models.Reservation, error) {
	var list []models.Reservation
	err := s.db.WithContext(ctx).
		Where("room_id = ? AND status IN ?", roomID,
			[]models.ReservationStatus{models.StatusConfirmed, models.StatusCheckedIn}).
		Find(&list).Error
	if err != nil {
		return nil, wrapErr(err)
	}
	return list, nil
}

func (s *GormStore) CreateReservation(ctx context.Context, r *models.Reservation) error {
	return wrapErr(s.db.WithContext(ctx).Create(r).Error)
}

func (s *GormStore) UpdateReservation(ctx context.Context, r *models.Reservation) error {
	return wrapErr(s.db.WithContext(ctx).Save(r).Error)
}

func (s *GormStore) CreateBill(ctx context.Context, b *models.Bill) error {
	return wrapErr(s.db.WithContext(ctx).Create(b).Error)
}

func (s *GormStore) BillForReservation(ctx context.Context, reservationID uint) (models.Bill, error) {
	var bill models.Bill
	if err := s.db.WithContext(ctx).Where("reservation_id = ?", reservationID).First(&bill).Error; err != nil {
		return models.Bill{}, wrapErr(err)
	}
	return bill, nil
}

func (s *GormStore) WithRoomLock(ctx context.Context, roomID uint, fn func(tx services.Store) error) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, roomID).Error; err != nil {
			return wrapErr(err)
		}
		return fn(&GormStore{db: tx})
	})
	return wrapErr(err)
}

func (s *GormStore) WithReservation(ctx context.Context, id uint, fn func(tx services.Store, r *models.Reservation) error) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var res models.Reservation
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&res, id).Error; err != nil {
			return wrapErr(err)
		}
		return fn(&GormStore{db: tx}, &res)
	})
	return wrapErr(err)
}
