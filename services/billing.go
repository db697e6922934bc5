package services

import (
	"context"
	"errors"
	"fmt"

	"hospitality-backend/models"

	"github.com/shopspring/decimal"
)

// buildBill prices the stay: whole nights times the rate in effect right now.
// The rate is deliberately the checkout-time rate, not the booking-time one.
func buildBill(res *models.Reservation, rate decimal.Decimal) models.Bill {
	nights := NewInterval(res.CheckInDate, res.CheckOutDate).Nights()
	total := rate.Mul(decimal.NewFromInt(int64(nights))).Round(2)
	return models.Bill{
		ReservationID: res.ID,
		Nights:        nights,
		RatePerNight:  rate,
		TotalAmount:   total,
		PaymentStatus: models.PaymentUnpaid,
	}
}

// CheckOut moves a CheckedIn reservation to CheckedOut and writes its Bill in
// the same atomic unit. A second call fails InvalidTransition, so at most one
// Bill can ever exist per reservation.
func (s *ReservationService) CheckOut(ctx context.Context, id uint) (models.Bill, error) {
	var bill models.Bill
	var err error
	for attempt := 0; ; attempt++ {
		err = s.store.WithReservation(ctx, id, func(tx Store, res *models.Reservation) error {
			if !res.Status.CanTransitionTo(models.StatusCheckedOut) {
				return &InvalidTransitionError{ReservationID: id, Current: res.Status, Requested: models.StatusCheckedOut}
			}

			// Rate is read fresh inside the transaction; the catalog may have
			// changed since booking and the bill reflects the settlement rate.
			room, err := tx.GetRoom(ctx, res.RoomID)
			if err != nil {
				return fmt.Errorf("load room %d: %w", res.RoomID, err)
			}

			applyTransition(res, models.StatusCheckedOut)
			if err := tx.UpdateReservation(ctx, res); err != nil {
				return fmt.Errorf("update reservation %d: %w", id, err)
			}

			b := buildBill(res, room.RatePerNight)
			if err := tx.CreateBill(ctx, &b); err != nil {
				return fmt.Errorf("create bill for reservation %d: %w", id, err)
			}
			bill = b
			return nil
		})
		if errors.Is(err, ErrStorageConflict) && attempt < maxConflictRetries {
			continue
		}
		break
	}
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return models.Bill{}, &NotFoundError{Entity: "reservation", ID: id}
		}
		return models.Bill{}, err
	}
	return bill, nil
}

// GetBill returns the reservation's bill; NotFound until the guest has checked out.
func (s *ReservationService) GetBill(ctx context.Context, reservationID uint) (models.Bill, error) {
	bill, err := s.store.BillForReservation(ctx, reservationID)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return models.Bill{}, &NotFoundError{Entity: "bill for reservation", ID: reservationID}
		}
		return models.Bill{}, fmt.Errorf("load bill for reservation %d: %w", reservationID, err)
	}
	return bill, nil
}
