package controllers

import (
	"encoding/json"
	"net/http"

	"cricket_server/middleware"
	"cricket_server/services"

	"github.com/gorilla/mux"
)

// ChatController handles the per-match chat channel
type ChatController struct {
	ChatService *services.ChatService
}

// NewChatController initializes the chat controller
func NewChatController(service *services.ChatService) *ChatController {
	return &ChatController{ChatService: service}
}

// HandleGetMessages returns a match's messages, oldest first
func (c *ChatController) HandleGetMessages(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["matchId"]

	messages, err := c.ChatService.ListMessages(r.Context(), matchID, middleware.CaptainID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

// HandleSendMessage appends a message to a match's chat
func (c *ChatController) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	var request struct {
		MatchID string `json:"match_id"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	message, err := c.ChatService.PostMessage(r.Context(), request.MatchID, middleware.CaptainID(r), request.Message)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "message": message})
}
