package controllers

import (
	"errors"
	"net/http"

	"cricket_server/apperrors"
	"cricket_server/middleware"
	"cricket_server/models"
	"cricket_server/services"
)

// TeamController exposes the captain's team directory entry
type TeamController struct {
	TeamService *services.TeamService
}

// NewTeamController initializes the team controller
func NewTeamController(service *services.TeamService) *TeamController {
	return &TeamController{TeamService: service}
}

// HandleGetUserTeam returns the calling captain's team, if any
func (c *TeamController) HandleGetUserTeam(w http.ResponseWriter, r *http.Request) {
	captainID := middleware.CaptainID(r)

	team, err := c.TeamService.GetTeamForCaptain(r.Context(), captainID)
	if errors.Is(err, apperrors.ErrTeamNotFound) {
		writeJSON(w, http.StatusOK, map[string]interface{}{"hasTeam": false})
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"hasTeam": true,
		"team": map[string]string{
			"id":     team.ID,
			"name":   team.TeamName,
			"ground": team.Ground,
		},
	})
}

// HandleListTeams returns the calling captain's teams
func (c *TeamController) HandleListTeams(w http.ResponseWriter, r *http.Request) {
	captainID := middleware.CaptainID(r)

	team, err := c.TeamService.GetTeamForCaptain(r.Context(), captainID)
	if errors.Is(err, apperrors.ErrTeamNotFound) {
		writeJSON(w, http.StatusOK, []models.Team{})
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, []models.Team{*team})
}
