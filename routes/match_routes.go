package routes

import (
	"cricket_server/controllers"
	"cricket_server/middleware"
	"cricket_server/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes sets up match listing and confirmation routes
func RegisterMatchRoutes(r *mux.Router, matchService *services.MatchService, authService *services.AuthService) {
	controller := controllers.NewMatchController(matchService)

	// Admin view is unauthenticated, as is the original dashboard.
	r.HandleFunc("/api/admin/matches", controller.HandleListAllMatches).Methods("GET")

	matchRouter := r.PathPrefix("/api").Subrouter()
	matchRouter.Use(middleware.Auth(authService))

	matchRouter.HandleFunc("/matches", controller.HandleListMatches).Methods("GET")
	matchRouter.HandleFunc("/match/confirm", controller.HandleDecide).Methods("POST")
}
