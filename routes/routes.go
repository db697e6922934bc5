package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hospitality-backend/controllers"
	"hospitality-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controllers onto the API paths the frontend calls.
func SetupRouter(
	ac *controllers.AuthController,
	hc *controllers.HotelController,
	rc *controllers.ReservationController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/login", ac.Login)

		api.GET("/hotels", hc.GetHotels)
		api.POST("/hotels", hc.RegisterHotel)
		api.GET("/hotels/:hotelId/rooms", hc.GetHotelRooms)
		api.POST("/rooms", hc.RegisterRoom)

		api.POST("/check-availability", rc.CheckAvailability)
		api.POST("/rooms/availability", rc.RoomAvailability)

		// Same handler on both paths; older frontend builds use the first.
		api.POST("/available-rooms", rc.FindAlternatives)
		api.POST("/rooms/available", rc.FindAlternatives)

		api.POST("/reservations", rc.CreateReservation)
		api.GET("/reservations", rc.ListReservations)
		api.DELETE("/reservations/:id", rc.CancelReservation)

		api.POST("/checkin/:id", rc.CheckIn)
		api.POST("/checkout/:id", rc.CheckOut)

		api.GET("/bills/:reservationId", rc.GetBill)
	}

	return r
}
