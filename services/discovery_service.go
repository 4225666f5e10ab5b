package services

import (
	"sort"

	"loveconnect_server/models"
	"loveconnect_server/utils"
)

// Bounds for the compatibility threshold slider.
const (
	MinCompatibilityFloor   = 75
	MinCompatibilityCeiling = 99
)

// DiscoveryFilters mirrors the discovery controls: every predicate must pass
// for a candidate to survive.
type DiscoveryFilters struct {
	MinCompatibility int
	AgeMin           int
	AgeMax           int
	OnlineOnly       bool
	Interests        []string
	MaxDistanceKm    int
	BestMatchesFirst bool
}

func DefaultDiscoveryFilters() DiscoveryFilters {
	return DiscoveryFilters{
		MinCompatibility: 85,
		AgeMin:           22,
		AgeMax:           38,
		MaxDistanceKm:    50,
	}
}

// DiscoveryService filters a candidate pool for a viewer. It is pure: the
// pool is whatever the caller supplies, and the result is always a subset of
// it.
type DiscoveryService struct{}

// FilterProfiles applies the discovery predicates to the pool. A candidate
// passes when its compatibility meets the threshold, its age is inside the
// range (unset ages always pass), it is online if onlineOnly is set, it
// shares an interest when interests are selected, and it is within
// MaxDistanceKm of the viewer (unknown distances always pass). Pool order is
// preserved unless BestMatchesFirst sorts by descending compatibility.
func (ds *DiscoveryService) FilterProfiles(viewer *models.Profile, pool []models.Profile, filters DiscoveryFilters) []models.Profile {
	minCompatibility := clamp(filters.MinCompatibility, MinCompatibilityFloor, MinCompatibilityCeiling)

	filtered := make([]models.Profile, 0, len(pool))
	for _, candidate := range pool {
		candidate.DistanceKm = distanceFromViewer(viewer, &candidate)

		if candidate.Compatibility == 0 {
			candidate.Compatibility = models.DefaultCompatibility
		}
		compatibility := candidate.Compatibility

		meetsCompatibility := compatibility >= minCompatibility
		meetsAge := candidate.Age == 0 || (candidate.Age >= filters.AgeMin && candidate.Age <= filters.AgeMax)
		meetsOnline := !filters.OnlineOnly || candidate.IsOnline
		meetsInterests := len(filters.Interests) == 0 || sharesInterest(filters.Interests, candidate.Interests)
		meetsDistance := candidate.DistanceKm == nil || *candidate.DistanceKm <= filters.MaxDistanceKm

		if meetsCompatibility && meetsAge && meetsOnline && meetsInterests && meetsDistance {
			filtered = append(filtered, candidate)
		}
	}

	if filters.BestMatchesFirst {
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Compatibility > filtered[j].Compatibility
		})
	}

	return filtered
}

// distanceFromViewer returns the rounded distance in km, or nil when either
// side has no usable coordinates. A missing location never means "0 km away".
func distanceFromViewer(viewer, candidate *models.Profile) *int {
	if viewer == nil || !viewer.Location.IsSet() || !candidate.Location.IsSet() {
		return nil
	}
	d := utils.DistanceKm(
		viewer.Location.Latitude(), viewer.Location.Longitude(),
		candidate.Location.Latitude(), candidate.Location.Longitude(),
	)
	return &d
}

func sharesInterest(selected, candidate []string) bool {
	for _, want := range selected {
		for _, have := range candidate {
			if want == have {
				return true
			}
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
