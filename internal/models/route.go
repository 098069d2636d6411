package models

import "encoding/json"

// RouteCandidate is one directions-provider alternative, annotated with
// the flood-safety verdict computed against current flood zones.
type RouteCandidate struct {
	Summary  string `json:"summary"`
	Distance string `json:"distance"`
	Duration string `json:"duration"`
	Polyline string `json:"polyline"`
	Safe     bool   `json:"safe"`
}

// Waypoint is a route endpoint. Clients send either a "lat,lon" string
// or a {"lat":..,"lon":..} object; both decode to a Coordinate.
type Waypoint struct {
	Coordinate
}

// UnmarshalJSON accepts the two waypoint encodings the frontend produces.
func (w *Waypoint) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		c, err := ParseCoordinate(s)
		if err != nil {
			return err
		}
		w.Coordinate = c
		return nil
	}

	var obj LatLon
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	w.Coordinate = Coordinate{Latitude: obj.Lat, Longitude: obj.Lon}
	return w.Coordinate.Validate()
}
