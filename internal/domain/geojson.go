package domain

import (
	"encoding/json"
	"fmt"
)

// Geometry is a GeoJSON geometry. Coordinates stay as raw JSON because the
// store already encodes them; the service never recomputes geometry.
type Geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// Feature is a GeoJSON Feature. Geometry may be nil and serializes as null,
// never dropped. Property values keep null as null.
type Feature struct {
	Type       string                 `json:"type"`
	Geometry   *Geometry              `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

// FeatureCollection is an ordered sequence of Features. Ordering is decided
// by the query that produced it and preserved here.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

func NewFeature(geometry *Geometry, properties map[string]interface{}) Feature {
	if properties == nil {
		properties = make(map[string]interface{})
	}
	return Feature{
		Type:       "Feature",
		Geometry:   geometry,
		Properties: properties,
	}
}

func NewFeatureCollection(features []Feature) FeatureCollection {
	if features == nil {
		features = []Feature{}
	}
	return FeatureCollection{
		Type:     "FeatureCollection",
		Features: features,
	}
}

// ParseGeometry normalizes ST_AsGeoJSON output into a Geometry. The store
// may hand back jsonb or text; both arrive here as raw bytes. A NULL
// geometry column yields nil.
func ParseGeometry(raw []byte) (*Geometry, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var geom Geometry
	if err := json.Unmarshal(raw, &geom); err != nil {
		return nil, fmt.Errorf("parse geometry: %w", err)
	}
	if geom.Type == "" {
		return nil, fmt.Errorf("parse geometry: missing type")
	}

	return &geom, nil
}
