// Package openair parses the OpenAir airspace text format: line records,
// block segmentation, and the class/altitude vocabulary.
package openair

import "strings"

// Record tags recognized by the parser.
const (
	TagClass     = "AC" // airspace class
	TagName      = "AN" // airspace name
	TagCeiling   = "AH" // upper limit
	TagFloor     = "AL" // lower limit
	TagFrequency = "AF" // radio frequency
	TagCallsign  = "AG" // ground station callsign
	TagIdent     = "AI" // unique identifier
	TagType      = "AY" // airspace type (extended format)
	TagPoint     = "DP" // polygon point
	TagArcPoints = "DB" // arc between two points
	TagArc       = "DA" // arc by radius and bearings
	TagCircle    = "DC" // circle by radius
	TagAirway    = "DY" // airway segment point
	TagVariable  = "V"  // parser variable assignment
)

// knownTags is the set of record tags the segmenter accepts. Anything
// else is dropped with a warning.
var knownTags = map[string]bool{
	TagClass: true, TagName: true, TagCeiling: true, TagFloor: true,
	TagFrequency: true, TagCallsign: true, TagIdent: true, TagType: true,
	TagPoint: true, TagArcPoints: true, TagArc: true, TagCircle: true,
	TagAirway: true, TagVariable: true,
	"SP": true, "SB": true, // pen/brush styling, carried but unused
}

// Line is one logical OpenAir record: a tag plus its argument string.
type Line struct {
	Tag  string
	Args string
	Num  int // 1-based line number in the source file
}

// IsGeometry reports whether the record contributes boundary geometry.
func (l Line) IsGeometry() bool {
	switch l.Tag {
	case TagPoint, TagArcPoints, TagArc, TagCircle, TagAirway:
		return true
	}
	return false
}

// IsCommentOrEmpty reports whether a raw line carries no record.
func IsCommentOrEmpty(raw string) bool {
	s := strings.TrimSpace(raw)
	return s == "" || strings.HasPrefix(s, "*")
}

// SplitRecord extracts the tag and argument string from a raw line.
// Trailing comments are stripped. Returns ok=false for comment or blank
// lines.
func SplitRecord(raw string, num int) (Line, bool) {
	if idx := strings.Index(raw, "*"); idx >= 0 {
		raw = raw[:idx]
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Line{}, false
	}

	tag, args, _ := strings.Cut(raw, " ")
	return Line{
		Tag:  strings.TrimSpace(tag),
		Args: strings.TrimSpace(args),
		Num:  num,
	}, true
}

// SplitLines breaks a file's content into records, skipping comments and
// blank lines. Handles both LF and CRLF input.
func SplitLines(content string) []Line {
	raw := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	lines := make([]Line, 0, len(raw))
	for i, r := range raw {
		if IsCommentOrEmpty(r) {
			continue
		}
		if line, ok := SplitRecord(r, i+1); ok {
			lines = append(lines, line)
		}
	}
	return lines
}
