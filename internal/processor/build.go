// Package processor converts OpenAir sources into the canonical GeoJSON
// collection: fetching, per-block geometry reconstruction, metadata
// normalization, and run diagnostics.
package processor

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gabriel-briffe/openaip-airspace/internal/geo"
	"github.com/gabriel-briffe/openaip-airspace/internal/openair"
)

// Arc interpolation granularity.
const (
	arcStepDeg    = 5.0  // max sweep per chord segment on DA/DB arcs
	circleStepDeg = 10.0 // fixed step for DC circles
)

// GeometryError is a block-fatal reconstruction failure: the block is
// dropped, the file continues.
type GeometryError struct {
	Block  string
	Line   int
	Reason string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("block %q line %d: %s", e.Block, e.Line, e.Reason)
}

// penState is the directive-mutated parsing state of one block. It never
// crosses block boundaries: each BuildRing call starts fresh.
type penState struct {
	center    *geo.Point
	clockwise bool
}

// BuildRing reconstructs the closed polygon ring of one block, resolving
// DP vertices, DB/DA arcs, and DC circles against the V-directive state.
// Warnings cover block integrity issues that do not invalidate the ring.
func BuildRing(b openair.Block) ([]geo.Point, []string, error) {
	var (
		ring     []geo.Point
		warnings []string
		state    = penState{clockwise: true}
		closed   bool // a DC record fully defines the boundary
	)

	fail := func(line int, format string, args ...any) error {
		return &GeometryError{Block: b.Name(), Line: line, Reason: fmt.Sprintf(format, args...)}
	}

	for _, l := range b.Lines {
		if closed && l.IsGeometry() {
			warnings = append(warnings,
				fmt.Sprintf("line %d: %s record after circle ignored", l.Num, l.Tag))
			continue
		}

		switch l.Tag {
		case openair.TagVariable:
			name, value, _ := strings.Cut(l.Args, "=")
			switch strings.TrimSpace(name) {
			case "D":
				state.clockwise = strings.TrimSpace(value) == "+"
			case "X":
				c, err := openair.ParseCoordinate(strings.TrimSpace(value))
				if err != nil {
					return nil, warnings, fail(l.Num, "bad center: %v", err)
				}
				center := geo.Point{c.Lon, c.Lat}
				state.center = &center
			}

		case openair.TagPoint, openair.TagAirway:
			c, err := openair.ParseCoordinate(l.Args)
			if err != nil {
				return nil, warnings, fail(l.Num, "bad point: %v", err)
			}
			ring = append(ring, geo.Point{c.Lon, c.Lat})

		case openair.TagArcPoints:
			if state.center == nil {
				return nil, warnings, fail(l.Num, "DB arc without a prior V X= center")
			}
			first, second, _ := strings.Cut(l.Args, ",")
			start, err := openair.ParseCoordinate(strings.TrimSpace(first))
			if err != nil {
				return nil, warnings, fail(l.Num, "bad arc start: %v", err)
			}
			end, err := openair.ParseCoordinate(strings.TrimSpace(second))
			if err != nil {
				return nil, warnings, fail(l.Num, "bad arc end: %v", err)
			}
			startPt := geo.Point{start.Lon, start.Lat}
			endPt := geo.Point{end.Lon, end.Lat}
			ring = append(ring, arcBetween(*state.center, startPt, endPt, state.clockwise)...)

		case openair.TagArc:
			if state.center == nil {
				return nil, warnings, fail(l.Num, "DA arc without a prior V X= center")
			}
			radius, startBrg, endBrg, err := parseArcArgs(l.Args)
			if err != nil {
				return nil, warnings, fail(l.Num, "%v", err)
			}
			dist := geo.NMToRadians(radius)
			startPt := geo.Destination(*state.center, startBrg, dist)
			endPt := geo.Destination(*state.center, endBrg, dist)
			ring = append(ring, arcBetween(*state.center, startPt, endPt, state.clockwise)...)

		case openair.TagCircle:
			if state.center == nil {
				return nil, warnings, fail(l.Num, "DC circle without a prior V X= center")
			}
			radius, err := strconv.ParseFloat(strings.TrimSpace(l.Args), 64)
			if err != nil || radius <= 0 {
				return nil, warnings, fail(l.Num, "bad circle radius %q", l.Args)
			}
			if len(ring) > 0 {
				warnings = append(warnings,
					fmt.Sprintf("line %d: circle replaces %d earlier vertices", l.Num, len(ring)))
			}
			ring = circle(*state.center, geo.NMToRadians(radius))
			closed = true
		}
	}

	if len(ring) == 0 {
		return nil, warnings, fail(b.StartLine(), "no geometry produced")
	}
	if ring[0] != ring[len(ring)-1] {
		ring = append(ring, ring[0])
	}
	if distinctPoints(ring) < 3 {
		return nil, warnings, fail(b.StartLine(), "ring has fewer than 3 distinct points")
	}

	return ring, warnings, nil
}

// arcBetween interpolates an arc from start to end around center,
// sweeping in the declared direction even when that is the reflex path:
// OpenAir uses the direction explicitly to disambiguate.
func arcBetween(center, start, end geo.Point, clockwise bool) []geo.Point {
	radius := geo.AngularDistance(center, start)
	startBrg := geo.Bearing(center, start)
	endBrg := geo.Bearing(center, end)

	// Strict inequality: coincident start and end bearings mean a
	// degenerate zero-sweep arc, not a full circle (that is what DC is
	// for).
	sweep := endBrg - startBrg
	if clockwise {
		if sweep < 0 {
			sweep += 360
		}
	} else {
		if sweep > 0 {
			sweep -= 360
		}
	}

	segments := int(math.Ceil(math.Abs(sweep) / arcStepDeg))
	if segments < 2 {
		segments = 2
	}

	points := make([]geo.Point, 0, segments+1)
	points = append(points, start)
	for i := 1; i < segments; i++ {
		bearing := startBrg + sweep*float64(i)/float64(segments)
		points = append(points, geo.Destination(center, bearing, radius))
	}
	points = append(points, end)
	return points
}

// circle emits a full closed ring around center at the fixed angular
// step.
func circle(center geo.Point, radius float64) []geo.Point {
	steps := int(360 / circleStepDeg)
	points := make([]geo.Point, 0, steps+1)
	for i := 0; i < steps; i++ {
		points = append(points, geo.Destination(center, float64(i)*circleStepDeg, radius))
	}
	points = append(points, points[0])
	return points
}

func parseArcArgs(args string) (radius, start, end float64, err error) {
	parts := strings.Split(args, ",")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("DA expects radius,start,end; got %q", args)
	}
	nums := make([]float64, 3)
	for i, p := range parts {
		nums[i], err = strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("bad DA value %q", p)
		}
	}
	return nums[0], nums[1], nums[2], nil
}

func distinctPoints(ring []geo.Point) int {
	seen := make(map[geo.Point]bool, len(ring))
	for _, p := range ring {
		seen[p] = true
	}
	return len(seen)
}
