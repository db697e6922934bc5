package controllers

import (
	"errors"
	"net/http"
	"strings"

	"hospitality-backend/services"
	"hospitality-backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login checks a staff credential pair. There is no session here: the caller
// keeps the returned user id and passes it back on CreateReservation.
func (ac *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	username := strings.TrimSpace(payload.Username)
	if username == "" || payload.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "username and password required")
		return
	}

	user, err := ac.auth.Authenticate(c.Request.Context(), username, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		respondEngineError(c, err)
		return
	}

	utils.JSONOk(c, http.StatusOK, gin.H{
		"user": gin.H{
			"UserID":   user.ID,
			"Username": user.Username,
			"Role":     user.Role,
			"name":     user.Username,
		},
	})
}
