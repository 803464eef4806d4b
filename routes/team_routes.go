package routes

import (
	"cricket_server/controllers"
	"cricket_server/middleware"
	"cricket_server/services"

	"github.com/gorilla/mux"
)

// RegisterTeamRoutes sets up team directory routes (authenticated)
func RegisterTeamRoutes(r *mux.Router, teamService *services.TeamService, authService *services.AuthService) {
	controller := controllers.NewTeamController(teamService)

	teamRouter := r.PathPrefix("/api").Subrouter()
	teamRouter.Use(middleware.Auth(authService))

	teamRouter.HandleFunc("/user/team", controller.HandleGetUserTeam).Methods("GET")
	teamRouter.HandleFunc("/teams", controller.HandleListTeams).Methods("GET")
}
