package entity

import (
	"github.com/paulmach/orb"
)

// GeoPosition is the geo catalog record as the VPN-config upstream serves it,
// including its internal numeric id. The id is stripped before the record is
// embedded into a server view.
type GeoPosition struct {
	ID        int64   `json:"id"`               // Internal catalog key, never exposed to callers.
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country,omitempty"`
	State     string  `json:"state,omitempty"`
	City      string  `json:"city,omitempty"`
	Region    string  `json:"region,omitempty"`
}

// Geo is the embedded view of a GeoPosition with the internal id removed.
type Geo struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country,omitempty"`
	State     string  `json:"state,omitempty"`
	City      string  `json:"city,omitempty"`
	Region    string  `json:"region,omitempty"`
}

// Embed strips the internal id and returns the embeddable view.
func (p *GeoPosition) Embed() *Geo {
	return &Geo{
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		Country:   p.Country,
		State:     p.State,
		City:      p.City,
		Region:    p.Region,
	}
}

// Point returns the position as an orb.Point (lon, lat order).
func (g *Geo) Point() orb.Point {
	return orb.Point{g.Longitude, g.Latitude}
}

// GeoCity is a named city entry in the geo catalog.
type GeoCity struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// GeoCountry is a named country entry in the geo catalog.
type GeoCountry struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// GeoState is a named state / province entry in the geo catalog.
type GeoState struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
