package routes

import (
	"cricket_server/controllers"
	"cricket_server/middleware"
	"cricket_server/services"

	"github.com/gorilla/mux"
)

// RegisterChatRoutes sets up chat routes under /api/chat (authenticated)
func RegisterChatRoutes(r *mux.Router, chatService *services.ChatService, authService *services.AuthService) {
	controller := controllers.NewChatController(chatService)

	chatRouter := r.PathPrefix("/api/chat").Subrouter()
	chatRouter.Use(middleware.Auth(authService))

	chatRouter.HandleFunc("/send", controller.HandleSendMessage).Methods("POST")
	chatRouter.HandleFunc("/{matchId}", controller.HandleGetMessages).Methods("GET")
}
