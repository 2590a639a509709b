// Package geo handles geographic data structures and coordinate conversions.
package geo

import (
	"encoding/json"
	"fmt"

	"github.com/gabriel-briffe/openaip-airspace/internal/openair"
)

// Point is a single position as [Lon, Lat], the GeoJSON axis order.
type Point [2]float64

// Lon returns the longitude component.
func (p Point) Lon() float64 { return p[0] }

// Lat returns the latitude component.
func (p Point) Lat() float64 { return p[1] }

// SourceTag identifies which dataset a feature came from.
type SourceTag string

const (
	SourcePrimary  SourceTag = "primary"
	SourceExternal SourceTag = "external"
)

// FeatureCollection represents a collection of geographic features.
// It follows the standard GeoJSON structure.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// NewFeatureCollection returns an empty, well-typed collection.
func NewFeatureCollection() FeatureCollection {
	return FeatureCollection{Type: "FeatureCollection", Features: []Feature{}}
}

// Feature represents a single airspace with geometry and canonical
// properties.
type Feature struct {
	Type       string     `json:"type"`
	Properties Properties `json:"properties"`
	Geometry   Geometry   `json:"geometry"`
}

// Properties is the canonical flattened airspace record.
type Properties struct {
	Name    string           `json:"name"`
	Class   openair.Class    `json:"class"`
	Floor   openair.Altitude `json:"floor"`
	Ceiling openair.Altitude `json:"ceiling"`
	Source  SourceTag        `json:"source"`
}

// Geometry represents the geometry of a feature. Coordinates stay raw so
// externally-sourced MultiPolygon geometry passes through unharmed.
type Geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// NewPolygon builds a Polygon geometry from a closed outer ring.
func NewPolygon(ring []Point) Geometry {
	coords, err := json.Marshal([][]Point{ring})
	if err != nil {
		// [][]Point cannot fail to marshal; keep the signature clean.
		panic(err)
	}
	return Geometry{Type: "Polygon", Coordinates: coords}
}

// PolygonRing decodes the outer ring of a Polygon geometry.
func (g Geometry) PolygonRing() ([]Point, error) {
	if g.Type != "Polygon" {
		return nil, fmt.Errorf("geometry is %q, not Polygon", g.Type)
	}
	var rings [][]Point
	if err := json.Unmarshal(g.Coordinates, &rings); err != nil {
		return nil, err
	}
	if len(rings) == 0 {
		return nil, fmt.Errorf("polygon has no rings")
	}
	return rings[0], nil
}
