package controllers

import (
	"encoding/json"
	"net/http"

	"cricket_server/middleware"
	"cricket_server/services"
)

// AvailabilityController handles availability posting and the open board
type AvailabilityController struct {
	AvailabilityService *services.AvailabilityService
}

// NewAvailabilityController initializes the availability controller
func NewAvailabilityController(service *services.AvailabilityService) *AvailabilityController {
	return &AvailabilityController{AvailabilityService: service}
}

// HandleCreate posts availability and reports whether it matched
func (c *AvailabilityController) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input services.AvailabilityInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	result, err := c.AvailabilityService.SubmitAvailability(r.Context(), middleware.CaptainID(r), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// HandleListOpen returns open posts for a ground type (default free)
func (c *AvailabilityController) HandleListOpen(w http.ResponseWriter, r *http.Request) {
	posts, err := c.AvailabilityService.ListOpenPosts(r.Context(), r.URL.Query().Get("ground_type"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}
