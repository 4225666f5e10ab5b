package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"loveconnect_server/middleware"
	"loveconnect_server/models"
	"loveconnect_server/services"
)

// UserProfileController handles the viewer's own profile and the discovery
// feed.
type UserProfileController struct {
	ProfileService   *services.ProfileService
	DiscoveryService *services.DiscoveryService
}

func NewUserProfileController(profileService *services.ProfileService, discoveryService *services.DiscoveryService) *UserProfileController {
	return &UserProfileController{ProfileService: profileService, DiscoveryService: discoveryService}
}

// GetProfile returns the viewer's own profile, or null when none exists yet.
func (c *UserProfileController) GetProfile(w http.ResponseWriter, r *http.Request) {
	viewerID := middleware.UserID(r.Context())

	profile, err := c.ProfileService.GetProfile(r.Context(), viewerID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"profile": profile})
}

// SaveProfile upserts the viewer's profile.
func (c *UserProfileController) SaveProfile(w http.ResponseWriter, r *http.Request) {
	viewerID := middleware.UserID(r.Context())

	var profile models.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body."})
		return
	}

	saved, err := c.ProfileService.SaveProfile(r.Context(), viewerID, profile)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"profile": saved})
}

// Discover returns the candidate pool for the viewer. Without query
// parameters the pool is returned as-is (viewer excluded, capped); filter
// parameters switch on the richer predicate set.
func (c *UserProfileController) Discover(w http.ResponseWriter, r *http.Request) {
	viewerID := middleware.UserID(r.Context())

	pool, err := c.ProfileService.GetDiscoverProfiles(r.Context(), viewerID)
	if err != nil {
		writeError(w, err)
		return
	}

	filters, apply := parseDiscoveryFilters(r)
	if apply {
		viewer, err := c.ProfileService.GetProfile(r.Context(), viewerID)
		if err != nil {
			writeError(w, err)
			return
		}
		pool = c.DiscoveryService.FilterProfiles(viewer, pool, filters)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"profiles": pool})
}

// parseDiscoveryFilters reads the optional filter query parameters; the
// second return reports whether any were present.
func parseDiscoveryFilters(r *http.Request) (services.DiscoveryFilters, bool) {
	filters := services.DefaultDiscoveryFilters()
	apply := false
	query := r.URL.Query()

	if v := query.Get("minCompatibility"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filters.MinCompatibility = n
			apply = true
		}
	}
	if v := query.Get("ageMin"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filters.AgeMin = n
			apply = true
		}
	}
	if v := query.Get("ageMax"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filters.AgeMax = n
			apply = true
		}
	}
	if v := query.Get("maxDistanceKm"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filters.MaxDistanceKm = n
			apply = true
		}
	}
	if v := query.Get("onlineOnly"); v == "true" {
		filters.OnlineOnly = true
		apply = true
	}
	if v := query.Get("interests"); v != "" {
		filters.Interests = strings.Split(v, ",")
		apply = true
	}
	if v := query.Get("sort"); v == "best" {
		filters.BestMatchesFirst = true
		apply = true
	}

	return filters, apply
}
