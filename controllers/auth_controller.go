package controllers

import (
	"encoding/json"
	"net/http"

	"cricket_server/services"
)

// AuthController handles signup and login
type AuthController struct {
	AuthService *services.AuthService
}

// NewAuthController initializes the auth controller
func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{AuthService: service}
}

// HandleSignup creates an account and returns a token
func (c *AuthController) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var input services.SignupInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	result, err := c.AuthService.SignUp(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// HandleLogin authenticates by phone and password
func (c *AuthController) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Phone    string `json:"phone"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	result, err := c.AuthService.Login(r.Context(), request.Phone, request.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
