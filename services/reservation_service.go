package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"hospitality-backend/models"
	"hospitality-backend/utils"

	"gorm.io/datatypes"
)

// maxConflictRetries bounds internal retries on transient storage contention.
const maxConflictRetries = 3

type CreateReservationInput struct {
	UserID     uint
	RoomID     uint
	GuestName  string
	GuestPhone string
	GuestEmail string
	CheckIn    string
	CheckOut   string
}

func (in *CreateReservationInput) validate() (Interval, error) {
	inputErr := newValidationError()

	if in.UserID == 0 {
		inputErr.addError("userId", "provide userId")
	}
	if in.RoomID == 0 {
		inputErr.addError("roomId", "provide roomId")
	}
	if strings.TrimSpace(in.GuestName) == "" {
		inputErr.addError("guestName", "provide guestName")
	}

	iv, err := parseRange(in.CheckIn, in.CheckOut)
	if err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			for field, messages := range ve.Fields() {
				for _, m := range messages {
					inputErr.addError(field, m)
				}
			}
		} else {
			return Interval{}, err
		}
	}

	if inputErr.fieldsCount() > 0 {
		return Interval{}, inputErr
	}
	return iv, nil
}

type ReservationService struct {
	store Store
}

func NewReservationService(store Store) *ReservationService {
	return &ReservationService{store: store}
}

// Create validates, then re-checks availability and inserts inside one atomic
// unit scoped to the room, so concurrent overlapping attempts resolve to
// exactly one success.
func (s *ReservationService) Create(ctx context.Context, input CreateReservationInput) (models.Reservation, error) {
	iv, err := input.validate()
	if err != nil {
		return models.Reservation{}, err
	}

	var created models.Reservation
	for attempt := 0; ; attempt++ {
		err = s.store.WithRoomLock(ctx, input.RoomID, func(tx Store) error {
			existing, err := tx.OccupyingReservations(ctx, input.RoomID)
			if err != nil {
				return fmt.Errorf("load reservations for room %d: %w", input.RoomID, err)
			}
			if conflicts := countConflicts(existing, iv); conflicts > 0 {
				return &RoomUnavailableError{RoomID: input.RoomID, ConflictingCount: conflicts}
			}

			res := models.Reservation{
				RoomID:        input.RoomID,
				UserID:        input.UserID,
				ReferenceCode: utils.NewReferenceCode(),
				GuestName:     strings.TrimSpace(input.GuestName),
				GuestPhone:    strings.TrimSpace(input.GuestPhone),
				GuestEmail:    strings.TrimSpace(input.GuestEmail),
				CheckInDate:   iv.CheckIn,
				CheckOutDate:  iv.CheckOut,
				Status:        models.StatusConfirmed,
			}
			if err := tx.CreateReservation(ctx, &res); err != nil {
				return fmt.Errorf("create reservation: %w", err)
			}
			created = res
			return nil
		})

		if errors.Is(err, ErrStorageConflict) && attempt < maxConflictRetries {
			continue
		}
		break
	}
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return models.Reservation{}, &NotFoundError{Entity: "room", ID: input.RoomID}
		}
		if errors.Is(err, ErrStorageConflict) {
			// Contention on this room did not settle within the bounded retries;
			// report it the way a lost race is reported.
			return models.Reservation{}, &RoomUnavailableError{RoomID: input.RoomID, ConflictingCount: 1}
		}
		return models.Reservation{}, err
	}
	return created, nil
}

// CheckIn moves a Confirmed reservation to CheckedIn. The room is already held
// by the reservation, so no availability re-check happens here.
func (s *ReservationService) CheckIn(ctx context.Context, id uint) error {
	return s.transition(ctx, id, models.StatusCheckedIn)
}

// Cancel moves a Confirmed reservation to Cancelled, immediately freeing its
// date range for future availability checks.
func (s *ReservationService) Cancel(ctx context.Context, id uint) error {
	return s.transition(ctx, id, models.StatusCancelled)
}

func (s *ReservationService) transition(ctx context.Context, id uint, next models.ReservationStatus) error {
	var err error
	for attempt := 0; ; attempt++ {
		err = s.store.WithReservation(ctx, id, func(tx Store, res *models.Reservation) error {
			if !res.Status.CanTransitionTo(next) {
				return &InvalidTransitionError{ReservationID: id, Current: res.Status, Requested: next}
			}
			applyTransition(res, next)
			if err := tx.UpdateReservation(ctx, res); err != nil {
				return fmt.Errorf("update reservation %d: %w", id, err)
			}
			return nil
		})
		if errors.Is(err, ErrStorageConflict) && attempt < maxConflictRetries {
			continue
		}
		break
	}
	if errors.Is(err, ErrRecordNotFound) {
		return &NotFoundError{Entity: "reservation", ID: id}
	}
	return err
}

// applyTransition mutates status and appends to the JSON history log.
func applyTransition(res *models.Reservation, next models.ReservationStatus) {
	var history []models.StatusChange
	if len(res.StatusHistory) > 0 {
		// A corrupt log must not block a legal transition; start a fresh log.
		_ = json.Unmarshal(res.StatusHistory, &history)
	}
	history = append(history, models.StatusChange{
		From: res.Status,
		To:   next,
		At:   time.Now().UTC(),
	})
	if raw, err := json.Marshal(history); err == nil {
		res.StatusHistory = datatypes.JSON(raw)
	}
	res.Status = next
}

func (s *ReservationService) GetByID(ctx context.Context, id uint) (models.Reservation, error) {
	res, err := s.store.GetReservation(ctx, id)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return models.Reservation{}, &NotFoundError{Entity: "reservation", ID: id}
		}
		return models.Reservation{}, fmt.Errorf("load reservation %d: %w", id, err)
	}
	return res, nil
}

func (s *ReservationService) List(ctx context.Context, filter ReservationFilter) ([]models.Reservation, error) {
	list, err := s.store.ListReservations(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	return list, nil
}
