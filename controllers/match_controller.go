package controllers

import (
	"encoding/json"
	"net/http"

	"cricket_server/middleware"
	"cricket_server/services"
)

// MatchController handles match listing and confirmation
type MatchController struct {
	MatchService *services.MatchService
}

// NewMatchController initializes the match controller
func NewMatchController(service *services.MatchService) *MatchController {
	return &MatchController{MatchService: service}
}

// HandleListMatches returns the calling captain's matches
func (c *MatchController) HandleListMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := c.MatchService.ListMatchesForCaptain(r.Context(), middleware.CaptainID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, matches)
}

// HandleDecide records a confirm or decline on a proposed match
func (c *MatchController) HandleDecide(w http.ResponseWriter, r *http.Request) {
	var request struct {
		MatchID  string `json:"match_id"`
		Decision string `json:"decision"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	match, err := c.MatchService.Decide(r.Context(), request.MatchID, middleware.CaptainID(r), request.Decision)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "match": match})
}

// HandleListAllMatches returns every match, for the admin view
func (c *MatchController) HandleListAllMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := c.MatchService.ListAllMatches(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, matches)
}
