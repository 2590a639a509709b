package geo

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/gabriel-briffe/openaip-airspace/internal/openair"
)

// External dataset schema (the planeur-net France export): nested ceiling
// and frequency objects, separate class and type fields.
type externalCollection struct {
	Type     string            `json:"type"`
	Features []externalFeature `json:"features"`
}

type externalFeature struct {
	Type       string             `json:"type"`
	Properties externalProperties `json:"properties"`
	Geometry   Geometry           `json:"geometry"`
}

type externalProperties struct {
	Name         string           `json:"name"`
	Class        string           `json:"class"`
	Type         string           `json:"type"`
	UpperCeiling *externalCeiling `json:"upperCeiling"`
	LowerCeiling *externalCeiling `json:"lowerCeiling"`
}

type externalCeiling struct {
	Value          any    `json:"value"` // number, or "GND"/"UNLIMITED"
	Unit           string `json:"unit"`
	ReferenceDatum string `json:"referenceDatum"`
}

// TransformExternal converts an externally-schemed GeoJSON dataset into
// the canonical collection shape. Geometry passes through untouched;
// class and ceiling properties are remapped.
func TransformExternal(data []byte) (FeatureCollection, error) {
	var ext externalCollection
	if err := json.Unmarshal(data, &ext); err != nil {
		return FeatureCollection{}, fmt.Errorf("decode external dataset: %w", err)
	}
	if ext.Type != "FeatureCollection" {
		return FeatureCollection{}, fmt.Errorf("external dataset type is %q, not FeatureCollection", ext.Type)
	}

	out := NewFeatureCollection()
	for _, f := range ext.Features {
		out.Features = append(out.Features, Feature{
			Type: "Feature",
			Properties: Properties{
				Name:    f.Properties.Name,
				Class:   externalClass(f.Properties),
				Floor:   ceilingToAltitude(f.Properties.LowerCeiling, openair.Altitude{Reference: openair.RefSFC}),
				Ceiling: ceilingToAltitude(f.Properties.UpperCeiling, openair.Altitude{Reference: openair.RefUnlimited}),
				Source:  SourceExternal,
			},
			Geometry: f.Geometry,
		})
	}
	return out, nil
}

// externalClass applies the class remapping rules of the external schema:
// LTA sectors keep class E, sporting/gliding types get their canonical
// names, ICAO classes A-G pass through, and P/Q/R expand.
func externalClass(p externalProperties) openair.Class {
	switch {
	case p.Class == "E" && strings.HasPrefix(p.Name, "LTA "):
		return openair.ClassE
	case p.Type == "GSEC":
		return openair.ClassGlidingSector
	case p.Type == "AERIAL_SPORTING_RECREATIONAL":
		return openair.ClassActivity
	case len(p.Class) == 1 && p.Class >= "A" && p.Class <= "G":
		return openair.ParseClass(p.Class)
	case p.Type == "P":
		return openair.ClassProhibited
	case p.Type == "Q":
		return openair.ClassDanger
	case p.Type == "R":
		return openair.ClassRestricted
	default:
		return openair.ParseClass(p.Type)
	}
}

// ceilingToAltitude maps a nested ceiling object onto the canonical
// altitude. A missing or unrecognized ceiling falls back to the given
// default rather than dropping the feature.
func ceilingToAltitude(c *externalCeiling, fallback openair.Altitude) openair.Altitude {
	if c == nil {
		return fallback
	}

	switch v := c.Value.(type) {
	case string:
		switch strings.ToUpper(v) {
		case "GND", "SFC":
			return openair.Altitude{Reference: openair.RefSFC}
		case "UNL", "UNLTD", "UNLIMITED":
			return openair.Altitude{Reference: openair.RefUnlimited}
		}
		return fallback

	case float64:
		value := int(math.Round(v))
		switch c.ReferenceDatum {
		case "STD":
			return openair.Altitude{ValueFeet: value * 100, Reference: openair.RefFL}
		case "AMSL":
			return openair.Altitude{ValueFeet: toFeet(value, c.Unit), Reference: openair.RefMSL}
		case "AGL", "GND":
			return openair.Altitude{ValueFeet: toFeet(value, c.Unit), Reference: openair.RefAGL}
		case "SFC":
			return openair.Altitude{Reference: openair.RefSFC}
		}
		return fallback
	}

	return fallback
}

func toFeet(value int, unit string) int {
	if strings.EqualFold(unit, "M") {
		return int(math.Round(float64(value) * 3.28084))
	}
	return value
}
