package openair

import (
	"fmt"
	"strconv"
	"strings"
)

// SyntaxError reports a record whose arguments do not match its grammar.
// One syntax error fails the whole file: a malformed geometry line would
// corrupt all arc and circle math after it, so there is no partial salvage.
type SyntaxError struct {
	Line   int
	Tag    string
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s: %s", e.Line, e.Tag, e.Reason)
}

// ValidateLine checks a single record against its grammar, independent of
// block context. Returns nil or a *SyntaxError.
func ValidateLine(l Line) error {
	fail := func(format string, args ...any) error {
		return &SyntaxError{Line: l.Num, Tag: l.Tag, Reason: fmt.Sprintf(format, args...)}
	}

	switch l.Tag {
	case TagPoint, TagAirway:
		if _, err := ParseCoordinate(l.Args); err != nil {
			return fail("%v", err)
		}

	case TagArcPoints:
		coords := strings.Split(l.Args, ",")
		if len(coords) != 2 {
			return fail("expected two coordinates separated by comma, got %d", len(coords))
		}
		for i, c := range coords {
			if _, err := ParseCoordinate(strings.TrimSpace(c)); err != nil {
				return fail("coordinate %d: %v", i+1, err)
			}
		}

	case TagCircle:
		radius, err := strconv.ParseFloat(strings.TrimSpace(l.Args), 64)
		if err != nil {
			return fail("invalid radius: %q", l.Args)
		}
		if radius <= 0 {
			return fail("radius must be positive: %g", radius)
		}

	case TagArc:
		parts := strings.Split(l.Args, ",")
		if len(parts) != 3 {
			return fail("expected radius,start,end; got %d values", len(parts))
		}
		nums := make([]float64, 3)
		for i, p := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return fail("invalid number: %q", p)
			}
			nums[i] = v
		}
		if nums[0] <= 0 {
			return fail("radius must be positive: %g", nums[0])
		}
		for _, angle := range nums[1:] {
			if angle < 0 || angle > 360 {
				return fail("bearing must be within [0,360]: %g", angle)
			}
		}

	case TagVariable:
		name, value, found := strings.Cut(l.Args, "=")
		if !found {
			return fail("missing '='")
		}
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		switch name {
		case "D":
			if value != "+" && value != "-" {
				return fail("direction must be + or -, got %q", value)
			}
		case "X":
			if _, err := ParseCoordinate(value); err != nil {
				return fail("%v", err)
			}
		default:
			return fail("unknown variable %q", name)
		}

	default:
		// Ax metadata and styling records are free-form.
		if !knownTags[l.Tag] {
			return fail("unknown record tag")
		}
	}

	return nil
}

// ValidateLines checks every record, failing fast on the first invalid
// one.
func ValidateLines(lines []Line) error {
	for _, l := range lines {
		if l.Tag != "" && !knownTags[l.Tag] {
			// Unknown tags are the segmenter's problem (dropped with a
			// warning there); validation only judges recognized records.
			continue
		}
		if err := ValidateLine(l); err != nil {
			return err
		}
	}
	return nil
}
