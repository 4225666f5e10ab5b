package models

import "encoding/json"

// GeoPoint is stored GeoJSON-style: Coordinates is [longitude, latitude], so
// the persisted attribute stays compatible with a geo index. The JSON boundary
// uses the {latitude, longitude} convenience shape instead.
type GeoPoint struct {
	Type        string    `dynamodbav:"type"`
	Coordinates []float64 `dynamodbav:"coordinates"`
}

type geoPointJSON struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewGeoPoint builds a point from a latitude/longitude pair in degrees.
func NewGeoPoint(latitude, longitude float64) GeoPoint {
	return GeoPoint{Type: "Point", Coordinates: []float64{longitude, latitude}}
}

func (g GeoPoint) Latitude() float64 {
	if len(g.Coordinates) < 2 {
		return 0
	}
	return g.Coordinates[1]
}

func (g GeoPoint) Longitude() float64 {
	if len(g.Coordinates) < 2 {
		return 0
	}
	return g.Coordinates[0]
}

// IsSet reports whether the point holds real coordinates. The origin counts
// as unset, matching the schema default of [0, 0].
func (g GeoPoint) IsSet() bool {
	return len(g.Coordinates) == 2 && (g.Coordinates[0] != 0 || g.Coordinates[1] != 0)
}

func (g GeoPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(geoPointJSON{Latitude: g.Latitude(), Longitude: g.Longitude()})
}

func (g *GeoPoint) UnmarshalJSON(data []byte) error {
	var p geoPointJSON
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*g = NewGeoPoint(p.Latitude, p.Longitude)
	return nil
}
