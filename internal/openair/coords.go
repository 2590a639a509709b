package openair

import (
	"fmt"
	"regexp"
	"strconv"
)

// Coordinate is a parsed geographic position in decimal degrees.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Coordinate grammar. Latitude takes exactly two degree digits, longitude
// one to three; seconds may carry decimals and, following real-world
// files, may equal 60. A space before the hemisphere letter is optional.
var (
	dmsRe = regexp.MustCompile(
		`^(\d{2}):(\d{2}):(\d{1,2}(?:\.\d+)?)\s*([NS])\s+(\d{1,3}):(\d{2}):(\d{1,2}(?:\.\d+)?)\s*([EW])$`)
	decimalRe = regexp.MustCompile(
		`^(\d{1,2}(?:\.\d+)?)\s*([NS])\s+(\d{1,3}(?:\.\d+)?)\s*([EW])$`)
)

// ParseCoordinate parses an OpenAir coordinate pair in DMS
// ("48:50:08 N 007:02:05 E") or decimal ("48.85 N 7.03 E") form.
// Source order is latitude first.
func ParseCoordinate(s string) (Coordinate, error) {
	if m := dmsRe.FindStringSubmatch(s); m != nil {
		lat, err := dmsToDegrees(m[1], m[2], m[3], 90)
		if err != nil {
			return Coordinate{}, fmt.Errorf("latitude %q: %w", s, err)
		}
		lon, err := dmsToDegrees(m[5], m[6], m[7], 180)
		if err != nil {
			return Coordinate{}, fmt.Errorf("longitude %q: %w", s, err)
		}
		if m[4] == "S" {
			lat = -lat
		}
		if m[8] == "W" {
			lon = -lon
		}
		return Coordinate{Lat: lat, Lon: lon}, nil
	}

	if m := decimalRe.FindStringSubmatch(s); m != nil {
		lat, _ := strconv.ParseFloat(m[1], 64)
		lon, _ := strconv.ParseFloat(m[3], 64)
		if lat > 90 {
			return Coordinate{}, fmt.Errorf("latitude out of range: %q", s)
		}
		if lon > 180 {
			return Coordinate{}, fmt.Errorf("longitude out of range: %q", s)
		}
		if m[2] == "S" {
			lat = -lat
		}
		if m[4] == "W" {
			lon = -lon
		}
		return Coordinate{Lat: lat, Lon: lon}, nil
	}

	return Coordinate{}, fmt.Errorf("invalid coordinate format: %q", s)
}

func dmsToDegrees(degStr, minStr, secStr string, maxDeg int) (float64, error) {
	deg, err := strconv.Atoi(degStr)
	if err != nil {
		return 0, err
	}
	min, err := strconv.Atoi(minStr)
	if err != nil {
		return 0, err
	}
	sec, err := strconv.ParseFloat(secStr, 64)
	if err != nil {
		return 0, err
	}

	if deg > maxDeg {
		return 0, fmt.Errorf("degrees must be at most %d: %d", maxDeg, deg)
	}
	if min >= 60 {
		return 0, fmt.Errorf("minutes must be less than 60: %d", min)
	}
	if sec > 60 {
		return 0, fmt.Errorf("seconds must be at most 60: %g", sec)
	}

	return float64(deg) + float64(min)/60 + sec/3600, nil
}
