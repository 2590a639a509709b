package openair

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// AltitudeReference is the datum an altitude value is measured against.
type AltitudeReference string

const (
	RefAGL       AltitudeReference = "AGL"       // above ground level
	RefMSL       AltitudeReference = "MSL"       // above mean sea level
	RefFL        AltitudeReference = "FL"        // flight level (standard pressure)
	RefSFC       AltitudeReference = "SFC"       // the surface itself
	RefUnlimited AltitudeReference = "UNLIMITED" // no upper bound
)

// Altitude is a vertical limit normalized to feet. Flight levels keep the
// FL reference but store their MSL-equivalent value (FL065 -> 6500).
type Altitude struct {
	ValueFeet int               `json:"value_feet"`
	Reference AltitudeReference `json:"reference"`
}

const feetPerMeter = 3.28084

var altitudeRe = regexp.MustCompile(`^(\d+)\s*(FT|M)?\s*(AGL|GND|SFC|MSL|AMSL)?$`)

// ParseAltitude normalizes an OpenAir altitude token. Accepted forms:
// SFC/GND, UNL/UNLTD/UNLIMITED, FLnnn, and "<value>[FT|M] [AGL|GND|MSL|AMSL]".
// A bare unit-less or datum-less value is feet above ground, following the
// source data convention.
func ParseAltitude(s string) (Altitude, error) {
	token := strings.ToUpper(strings.Join(strings.Fields(s), " "))
	if token == "" {
		return Altitude{}, fmt.Errorf("empty altitude")
	}

	switch token {
	case "GND", "SFC":
		return Altitude{ValueFeet: 0, Reference: RefSFC}, nil
	case "UNL", "UNLTD", "UNLIMITED":
		return Altitude{ValueFeet: 0, Reference: RefUnlimited}, nil
	}

	if rest, ok := strings.CutPrefix(token, "FL"); ok {
		fl, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil || fl < 0 {
			return Altitude{}, fmt.Errorf("invalid flight level: %q", s)
		}
		return Altitude{ValueFeet: fl * 100, Reference: RefFL}, nil
	}

	m := altitudeRe.FindStringSubmatch(token)
	if m == nil {
		return Altitude{}, fmt.Errorf("invalid altitude format: %q", s)
	}

	value, err := strconv.Atoi(m[1])
	if err != nil {
		return Altitude{}, fmt.Errorf("invalid altitude value: %q", s)
	}
	if m[2] == "M" {
		value = int(math.Round(float64(value) * feetPerMeter))
	}

	ref := RefAGL
	switch m[3] {
	case "MSL", "AMSL":
		ref = RefMSL
	}

	return Altitude{ValueFeet: value, Reference: ref}, nil
}

// String renders the canonical form; ParseAltitude(a.String()) yields a
// back unchanged.
func (a Altitude) String() string {
	switch a.Reference {
	case RefSFC:
		return "SFC"
	case RefUnlimited:
		return "UNLIMITED"
	case RefFL:
		return fmt.Sprintf("FL%03d", a.ValueFeet/100)
	case RefMSL:
		return fmt.Sprintf("%dFT MSL", a.ValueFeet)
	default:
		return fmt.Sprintf("%dFT AGL", a.ValueFeet)
	}
}

// Meters returns the value converted to meters, for interop with metric
// consumers.
func (a Altitude) Meters() float64 {
	return float64(a.ValueFeet) / feetPerMeter
}
