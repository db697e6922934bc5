package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospitality-backend/controllers"
	"hospitality-backend/models"
	"hospitality-backend/routes"
	"hospitality-backend/services"
	"hospitality-backend/storage/memory"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// buildTestServer wires the real router onto the in-memory store with one
// hotel, two rooms and one staff login.
func buildTestServer(t *testing.T) (*gin.Engine, *memory.Store, models.Hotel, []models.Room) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctx := context.Background()
	store := memory.New()

	hash, err := bcrypt.GenerateFromPassword([]byte("frontdesk123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{Username: "frontdesk", Password: string(hash), Role: "Receptionist"}
	if err := store.CreateUser(ctx, &user); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	hotel := models.Hotel{Name: "Grand Palace Hotel"}
	if err := store.CreateHotel(ctx, &hotel); err != nil {
		t.Fatalf("seed hotel: %v", err)
	}
	rooms := []models.Room{
		{HotelID: hotel.ID, RoomNumber: "101", RoomType: "Standard", RatePerNight: decimal.RequireFromString("100.00"), MaxOccupancy: 2},
		{HotelID: hotel.ID, RoomNumber: "102", RoomType: "Deluxe", RatePerNight: decimal.RequireFromString("180.00"), MaxOccupancy: 3},
	}
	for i := range rooms {
		if err := store.CreateRoom(ctx, &rooms[i]); err != nil {
			t.Fatalf("seed room: %v", err)
		}
	}

	router := routes.SetupRouter(
		controllers.NewAuthController(services.NewAuthService(store)),
		controllers.NewHotelController(services.NewCatalogService(store)),
		controllers.NewReservationController(
			services.NewAvailabilityService(store),
			services.NewReservationService(store),
		),
	)
	return router, store, hotel, rooms
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, payload any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			t.Fatalf("encode payload: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	decoded := map[string]any{}
	if resp.Body.Len() > 0 {
		if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("decode response %q: %v", resp.Body.String(), err)
		}
	}
	return resp, decoded
}

func TestLogin(t *testing.T) {
	router, _, _, _ := buildTestServer(t)

	resp, body := doJSON(t, router, http.MethodPost, "/api/login",
		map[string]any{"username": "frontdesk", "password": "frontdesk123"})
	if resp.Code != http.StatusOK {
		t.Fatalf("login: %d %v", resp.Code, body)
	}
	if body["success"] != true {
		t.Fatalf("login body: %v", body)
	}

	resp, _ = doJSON(t, router, http.MethodPost, "/api/login",
		map[string]any{"username": "frontdesk", "password": "wrong"})
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("bad password should be 401, got %d", resp.Code)
	}
}

func TestReservationFlowOverHTTP(t *testing.T) {
	router, _, hotel, rooms := buildTestServer(t)

	// create
	resp, body := doJSON(t, router, http.MethodPost, "/api/reservations", map[string]any{
		"userId": 1, "roomId": rooms[0].ID, "guestName": "Alice Walker",
		"checkInDate": "2025-07-25", "checkOutDate": "2025-07-28",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("create: %d %v", resp.Code, body)
	}
	resID := uint(body["reservationId"].(float64))

	// overlapping create is rejected with the conflict count
	resp, body = doJSON(t, router, http.MethodPost, "/api/reservations", map[string]any{
		"userId": 1, "roomId": rooms[0].ID, "guestName": "Bob",
		"checkInDate": "2025-07-26", "checkOutDate": "2025-07-29",
	})
	if resp.Code != http.StatusConflict {
		t.Fatalf("overlap should be 409, got %d %v", resp.Code, body)
	}
	if body["conflictingReservations"].(float64) != 1 {
		t.Fatalf("conflictingReservations = %v, want 1", body["conflictingReservations"])
	}

	// alternatives exclude the taken room
	resp, body = doJSON(t, router, http.MethodPost, "/api/available-rooms", map[string]any{
		"hotelId": hotel.ID, "checkInDate": "2025-07-26", "checkOutDate": "2025-07-29",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("available-rooms: %d %v", resp.Code, body)
	}
	alts := body["rooms"].([]any)
	if len(alts) != 1 {
		t.Fatalf("alternatives = %v, want just room 102", alts)
	}

	// bill does not exist yet
	resp, _ = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/bills/%d", resID), nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("bill before checkout should be 404, got %d", resp.Code)
	}

	// check in, check out
	resp, body = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/checkin/%d", resID), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("checkin: %d %v", resp.Code, body)
	}
	resp, body = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/checkout/%d", resID), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("checkout: %d %v", resp.Code, body)
	}
	bill := body["bill"].(map[string]any)
	if bill["Nights"].(float64) != 3 {
		t.Fatalf("bill nights = %v, want 3", bill["Nights"])
	}

	// second checkout fails the state machine
	resp, body = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/checkout/%d", resID), nil)
	if resp.Code != http.StatusConflict {
		t.Fatalf("double checkout should be 409, got %d %v", resp.Code, body)
	}

	// the bill endpoint serves the settled bill now
	resp, body = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/bills/%d", resID), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("get bill: %d %v", resp.Code, body)
	}
}

func TestCancelOverHTTP(t *testing.T) {
	router, _, _, rooms := buildTestServer(t)

	_, body := doJSON(t, router, http.MethodPost, "/api/reservations", map[string]any{
		"userId": 1, "roomId": rooms[1].ID, "guestName": "Carol",
		"checkInDate": "2025-09-01", "checkOutDate": "2025-09-05",
	})
	resID := uint(body["reservationId"].(float64))

	resp, _ := doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/reservations/%d", resID), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("cancel: %d", resp.Code)
	}

	// same range rebooks fine after the cancel
	resp, _ = doJSON(t, router, http.MethodPost, "/api/reservations", map[string]any{
		"userId": 1, "roomId": rooms[1].ID, "guestName": "Dave",
		"checkInDate": "2025-09-01", "checkOutDate": "2025-09-05",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("rebook after cancel: %d", resp.Code)
	}
}

func TestErrorStatusMapping(t *testing.T) {
	router, _, _, rooms := buildTestServer(t)

	// unknown room -> 404
	resp, _ := doJSON(t, router, http.MethodPost, "/api/check-availability", map[string]any{
		"roomId": 9999, "checkInDate": "2025-07-25", "checkOutDate": "2025-07-27",
	})
	if resp.Code != http.StatusNotFound {
		t.Fatalf("unknown room should be 404, got %d", resp.Code)
	}

	// reversed range -> 400
	resp, _ = doJSON(t, router, http.MethodPost, "/api/check-availability", map[string]any{
		"roomId": rooms[0].ID, "checkInDate": "2025-07-27", "checkOutDate": "2025-07-25",
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("reversed range should be 400, got %d", resp.Code)
	}

	// unknown hotel -> 404
	resp, _ = doJSON(t, router, http.MethodPost, "/api/available-rooms", map[string]any{
		"hotelId": 9999, "checkInDate": "2025-07-25", "checkOutDate": "2025-07-27",
	})
	if resp.Code != http.StatusNotFound {
		t.Fatalf("unknown hotel should be 404, got %d", resp.Code)
	}

	// unknown reservation -> 404
	resp, _ = doJSON(t, router, http.MethodPost, "/api/checkin/555", nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("unknown reservation should be 404, got %d", resp.Code)
	}

	// unknown status filter -> 400
	resp, _ = doJSON(t, router, http.MethodGet, "/api/reservations?status=bogus", nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("bogus status filter should be 400, got %d", resp.Code)
	}
}
