package controllers

import (
	"net/http"
	"strconv"

	"hospitality-backend/models"
	"hospitality-backend/services"
	"hospitality-backend/utils"

	"github.com/gin-gonic/gin"
)

type ReservationController struct {
	availability *services.AvailabilityService
	reservations *services.ReservationService
}

func NewReservationController(
	availability *services.AvailabilityService,
	reservations *services.ReservationService,
) *ReservationController {
	return &ReservationController{availability: availability, reservations: reservations}
}

func reservationIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid reservation id")
		return 0, false
	}
	return uint(id), true
}

type availabilityPayload struct {
	RoomID       uint   `json:"roomId"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
}

// CheckAvailability is a pure read; the result is a snapshot, not a hold.
func (rc *ReservationController) CheckAvailability(c *gin.Context) {
	var payload availabilityPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	result, err := rc.availability.CheckAvailability(c.Request.Context(), payload.RoomID, payload.CheckInDate, payload.CheckOutDate)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	utils.JSONOk(c, http.StatusOK, gin.H{"availability": result})
}

// RoomAvailability serves the flattened shape the dashboard uses.
func (rc *ReservationController) RoomAvailability(c *gin.Context) {
	var payload availabilityPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	result, err := rc.availability.CheckAvailability(c.Request.Context(), payload.RoomID, payload.CheckInDate, payload.CheckOutDate)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	utils.JSONOk(c, http.StatusOK, gin.H{
		"available":               result.Status == services.Available,
		"status":                  result.Status,
		"conflictingReservations": result.ConflictingCount,
	})
}

type alternativesPayload struct {
	HotelID      uint   `json:"hotelId"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	RoomType     string `json:"roomType"`
}

func (rc *ReservationController) FindAlternatives(c *gin.Context) {
	var payload alternativesPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	rooms, err := rc.availability.FindAlternatives(c.Request.Context(), payload.HotelID, payload.CheckInDate, payload.CheckOutDate, payload.RoomType)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	utils.JSONOk(c, http.StatusOK, gin.H{"rooms": rooms})
}

type createReservationPayload struct {
	UserID       uint   `json:"userId"`
	RoomID       uint   `json:"roomId"`
	GuestName    string `json:"guestName"`
	GuestPhone   string `json:"guestPhone"`
	GuestEmail   string `json:"guestEmail"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
}

func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var payload createReservationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	res, err := rc.reservations.Create(c.Request.Context(), services.CreateReservationInput{
		UserID:     payload.UserID,
		RoomID:     payload.RoomID,
		GuestName:  payload.GuestName,
		GuestPhone: payload.GuestPhone,
		GuestEmail: payload.GuestEmail,
		CheckIn:    payload.CheckInDate,
		CheckOut:   payload.CheckOutDate,
	})
	if err != nil {
		respondEngineError(c, err)
		return
	}
	utils.JSONOk(c, http.StatusOK, gin.H{
		"reservationId": res.ID,
		"referenceCode": res.ReferenceCode,
	})
}

func (rc *ReservationController) ListReservations(c *gin.Context) {
	var filter services.ReservationFilter

	if raw := c.Query("hotelId"); raw != "" {
		hotelID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid hotel id")
			return
		}
		filter.HotelID = uint(hotelID)
	}
	if raw := c.Query("status"); raw != "" {
		status, ok := models.ParseReservationStatus(raw)
		if !ok {
			utils.JSONError(c, http.StatusBadRequest, "unknown status "+raw)
			return
		}
		filter.Status = status
	}

	list, err := rc.reservations.List(c.Request.Context(), filter)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	utils.JSONOk(c, http.StatusOK, gin.H{"reservations": list})
}

func (rc *ReservationController) CheckIn(c *gin.Context) {
	id, ok := reservationIDParam(c, "id")
	if !ok {
		return
	}
	if err := rc.reservations.CheckIn(c.Request.Context(), id); err != nil {
		respondEngineError(c, err)
		return
	}
	utils.JSONOk(c, http.StatusOK, gin.H{"message": "Guest checked in successfully"})
}

// CheckOut settles the stay: the transition and the bill are written together.
func (rc *ReservationController) CheckOut(c *gin.Context) {
	id, ok := reservationIDParam(c, "id")
	if !ok {
		return
	}
	bill, err := rc.reservations.CheckOut(c.Request.Context(), id)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	utils.JSONOk(c, http.StatusOK, gin.H{
		"message": "Guest checked out successfully",
		"bill":    bill,
	})
}

func (rc *ReservationController) CancelReservation(c *gin.Context) {
	id, ok := reservationIDParam(c, "id")
	if !ok {
		return
	}
	if err := rc.reservations.Cancel(c.Request.Context(), id); err != nil {
		respondEngineError(c, err)
		return
	}
	utils.JSONOk(c, http.StatusOK, gin.H{"message": "Reservation cancelled successfully"})
}

func (rc *ReservationController) GetBill(c *gin.Context) {
	id, ok := reservationIDParam(c, "reservationId")
	if !ok {
		return
	}
	bill, err := rc.reservations.GetBill(c.Request.Context(), id)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	utils.JSONOk(c, http.StatusOK, gin.H{"bill": bill})
}
