package utils

import "math"

// Earth radius in kilometers
const earthRadiusKm = 6371

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// HaversineKm returns the great-circle distance in kilometers between two
// points given as (latitude, longitude) pairs in degrees.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// DistanceKm is HaversineKm rounded to the nearest whole kilometer.
func DistanceKm(lat1, lon1, lat2, lon2 float64) int {
	return int(math.Round(HaversineKm(lat1, lon1, lat2, lon2)))
}
