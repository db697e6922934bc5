package controllers

import (
	"net/http"
	"strconv"

	"hospitality-backend/services"
	"hospitality-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type HotelController struct {
	catalog *services.CatalogService
}

func NewHotelController(catalog *services.CatalogService) *HotelController {
	return &HotelController{catalog: catalog}
}

// GetHotels returns every hotel grouped with its rooms, ordered by room number.
func (hc *HotelController) GetHotels(c *gin.Context) {
	hotels, err := hc.catalog.ListHotels(c.Request.Context())
	if err != nil {
		respondEngineError(c, err)
		return
	}
	utils.JSONOk(c, http.StatusOK, gin.H{"hotels": hotels})
}

type registerHotelPayload struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

func (hc *HotelController) RegisterHotel(c *gin.Context) {
	var payload registerHotelPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	hotel, err := hc.catalog.RegisterHotel(c.Request.Context(), payload.Name, payload.Address, payload.Phone)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	utils.JSONOk(c, http.StatusOK, gin.H{"hotelId": hotel.ID})
}

func (hc *HotelController) GetHotelRooms(c *gin.Context) {
	hotelID, err := strconv.ParseUint(c.Param("hotelId"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid hotel id")
		return
	}

	rooms, err := hc.catalog.ListRooms(c.Request.Context(), uint(hotelID))
	if err != nil {
		respondEngineError(c, err)
		return
	}
	utils.JSONOk(c, http.StatusOK, gin.H{"rooms": rooms})
}

type registerRoomPayload struct {
	HotelID      uint            `json:"hotelId"`
	RoomNumber   string          `json:"roomNumber"`
	RoomType     string          `json:"roomType"`
	RatePerNight decimal.Decimal `json:"ratePerNight"`
	MaxOccupancy int             `json:"maxOccupancy"`
}

func (hc *HotelController) RegisterRoom(c *gin.Context) {
	var payload registerRoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	room, err := hc.catalog.RegisterRoom(c.Request.Context(), services.RegisterRoomInput{
		HotelID:      payload.HotelID,
		RoomNumber:   payload.RoomNumber,
		RoomType:     payload.RoomType,
		RatePerNight: payload.RatePerNight,
		MaxOccupancy: payload.MaxOccupancy,
	})
	if err != nil {
		respondEngineError(c, err)
		return
	}
	utils.JSONOk(c, http.StatusOK, gin.H{"roomId": room.ID})
}
