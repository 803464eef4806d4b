package routes

import (
	"cricket_server/controllers"
	"cricket_server/services"

	"github.com/gorilla/mux"
)

// RegisterAuthRoutes sets up signup and login under /api
func RegisterAuthRoutes(r *mux.Router, authService *services.AuthService) {
	controller := controllers.NewAuthController(authService)

	r.HandleFunc("/api/signup", controller.HandleSignup).Methods("POST")
	r.HandleFunc("/api/login", controller.HandleLogin).Methods("POST")
}
