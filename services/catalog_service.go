package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hospitality-backend/models"

	"github.com/shopspring/decimal"
)

// CatalogService covers hotel and room registration plus catalog reads. Rooms
// are immutable after creation as far as the engine cares; rate edits are a
// back-office concern outside this core.
type CatalogService struct {
	store Store
}

func NewCatalogService(store Store) *CatalogService {
	return &CatalogService{store: store}
}

func (s *CatalogService) RegisterHotel(ctx context.Context, name, address, phone string) (models.Hotel, error) {
	inputErr := newValidationError()
	if strings.TrimSpace(name) == "" {
		inputErr.addError("name", "provide hotel name")
	}
	if inputErr.fieldsCount() > 0 {
		return models.Hotel{}, inputErr
	}

	hotel := models.Hotel{
		Name:    strings.TrimSpace(name),
		Address: strings.TrimSpace(address),
		Phone:   strings.TrimSpace(phone),
	}
	if err := s.store.CreateHotel(ctx, &hotel); err != nil {
		return models.Hotel{}, fmt.Errorf("create hotel: %w", err)
	}
	return hotel, nil
}

type RegisterRoomInput struct {
	HotelID      uint
	RoomNumber   string
	RoomType     string
	RatePerNight decimal.Decimal
	MaxOccupancy int
}

func (s *CatalogService) RegisterRoom(ctx context.Context, input RegisterRoomInput) (models.Room, error) {
	inputErr := newValidationError()
	if input.HotelID == 0 {
		inputErr.addError("hotelId", "provide hotelId")
	}
	if strings.TrimSpace(input.RoomNumber) == "" {
		inputErr.addError("roomNumber", "provide roomNumber")
	}
	if !input.RatePerNight.IsPositive() {
		inputErr.addError("ratePerNight", "rate per night must be positive")
	}
	if input.MaxOccupancy < 0 {
		inputErr.addError("maxOccupancy", "max occupancy must be positive")
	}
	if inputErr.fieldsCount() > 0 {
		return models.Room{}, inputErr
	}

	if _, err := s.store.GetHotel(ctx, input.HotelID); err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return models.Room{}, &NotFoundError{Entity: "hotel", ID: input.HotelID}
		}
		return models.Room{}, fmt.Errorf("load hotel %d: %w", input.HotelID, err)
	}

	occupancy := input.MaxOccupancy
	if occupancy == 0 {
		occupancy = 2
	}

	room := models.Room{
		HotelID:      input.HotelID,
		RoomNumber:   strings.TrimSpace(input.RoomNumber),
		RoomType:     strings.TrimSpace(input.RoomType),
		RatePerNight: input.RatePerNight,
		MaxOccupancy: occupancy,
	}
	if err := s.store.CreateRoom(ctx, &room); err != nil {
		return models.Room{}, fmt.Errorf("create room: %w", err)
	}
	return room, nil
}

func (s *CatalogService) ListHotels(ctx context.Context) ([]models.Hotel, error) {
	hotels, err := s.store.ListHotels(ctx)
	if err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}
	return hotels, nil
}

func (s *CatalogService) ListRooms(ctx context.Context, hotelID uint) ([]models.Room, error) {
	if _, err := s.store.GetHotel(ctx, hotelID); err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "hotel", ID: hotelID}
		}
		return nil, fmt.Errorf("load hotel %d: %w", hotelID, err)
	}
	rooms, err := s.store.ListHotelRooms(ctx, hotelID, "")
	if err != nil {
		return nil, fmt.Errorf("list rooms for hotel %d: %w", hotelID, err)
	}
	return rooms, nil
}
