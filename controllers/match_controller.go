package controllers

import (
	"encoding/json"
	"net/http"

	"loveconnect_server/middleware"
	"loveconnect_server/services"
)

// MatchController handles the match lifecycle endpoints.
type MatchController struct {
	MatchService *services.MatchService
}

func NewMatchController(matchService *services.MatchService) *MatchController {
	return &MatchController{MatchService: matchService}
}

// RequestMatch opens (or returns) the match between the viewer and a target.
func (c *MatchController) RequestMatch(w http.ResponseWriter, r *http.Request) {
	viewerID := middleware.UserID(r.Context())

	var request struct {
		TargetID string `json:"targetId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body."})
		return
	}

	match, err := c.MatchService.RequestMatch(r.Context(), viewerID, request.TargetID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"match": match})
}

// ListMatches returns the viewer's matches hydrated with counterpart
// profiles.
func (c *MatchController) ListMatches(w http.ResponseWriter, r *http.Request) {
	viewerID := middleware.UserID(r.Context())

	matches, err := c.MatchService.ListMatches(r.Context(), viewerID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"matches": matches})
}

// RespondMatch accepts or declines a pending match.
func (c *MatchController) RespondMatch(w http.ResponseWriter, r *http.Request) {
	viewerID := middleware.UserID(r.Context())

	var request struct {
		MatchID string `json:"matchId"`
		Action  string `json:"action"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body."})
		return
	}

	match, err := c.MatchService.RespondMatch(r.Context(), viewerID, request.MatchID, request.Action)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"match": match})
}

// GetConnections returns the viewer's connections snapshot.
func (c *MatchController) GetConnections(w http.ResponseWriter, r *http.Request) {
	viewerID := middleware.UserID(r.Context())

	snapshot, err := c.MatchService.GetConnections(r.Context(), viewerID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, snapshot)
}
