package routes

import (
	"cricket_server/controllers"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up the root and health routes
func RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", controllers.HealthCheckHandler).Methods("GET")
	r.HandleFunc("/", controllers.WelcomeHandler).Methods("GET")
}
