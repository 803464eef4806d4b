package routes

import (
	"cricket_server/controllers"
	"cricket_server/middleware"
	"cricket_server/services"

	"github.com/gorilla/mux"
)

// RegisterAvailabilityRoutes sets up availability routes under
// /api/availability. The open board is public; posting requires auth.
func RegisterAvailabilityRoutes(r *mux.Router, availabilityService *services.AvailabilityService, authService *services.AuthService) {
	controller := controllers.NewAvailabilityController(availabilityService)

	availabilityRouter := r.PathPrefix("/api/availability").Subrouter()
	availabilityRouter.HandleFunc("/open", controller.HandleListOpen).Methods("GET")

	protected := availabilityRouter.NewRoute().Subrouter()
	protected.Use(middleware.Auth(authService))
	protected.HandleFunc("/create", controller.HandleCreate).Methods("POST")
}
