package openair

import "strings"

// Class is the canonical airspace class vocabulary. Codes outside the
// known set normalize to ClassOther rather than failing, so downstream
// filters can still act on the classes they know.
type Class string

const (
	ClassFIR           Class = "FIR"
	ClassFISSector     Class = "FIS_SECTOR"
	ClassCTR           Class = "CTR"
	ClassTMA           Class = "TMA"
	ClassCTA           Class = "CTA"
	ClassATZ           Class = "ATZ"
	ClassRMZ           Class = "RMZ"
	ClassTMZ           Class = "TMZ"
	ClassA             Class = "A"
	ClassB             Class = "B"
	ClassC             Class = "C"
	ClassD             Class = "D"
	ClassE             Class = "E"
	ClassF             Class = "F"
	ClassG             Class = "G"
	ClassProhibited    Class = "PROHIBITED"
	ClassRestricted    Class = "RESTRICTED"
	ClassDanger        Class = "DANGER"
	ClassGlidingSector Class = "GLIDING_SECTOR"
	ClassActivity      Class = "ACTIVITY"
	ClassWave          Class = "WAVE"
	ClassOther         Class = "OTHER"
)

// rawClasses maps source codes onto the canonical vocabulary. Canonical
// names map to themselves so already-normalized input round-trips.
var rawClasses = map[string]Class{
	"FIR": ClassFIR, "FIS_SECTOR": ClassFISSector,
	"CTR": ClassCTR, "TMA": ClassTMA, "CTA": ClassCTA,
	"ATZ": ClassATZ, "RMZ": ClassRMZ, "TMZ": ClassTMZ,
	"A": ClassA, "B": ClassB, "C": ClassC, "D": ClassD,
	"E": ClassE, "F": ClassF, "G": ClassG,
	"P": ClassProhibited, "R": ClassRestricted, "Q": ClassDanger,
	"PROHIBITED": ClassProhibited, "RESTRICTED": ClassRestricted,
	"DANGER": ClassDanger,
	"GSEC":   ClassGlidingSector, "GLIDING_SECTOR": ClassGlidingSector,
	"ASRA": ClassActivity, "ACTIVITY": ClassActivity,
	"AERIAL_SPORTING_RECREATIONAL": ClassActivity,
	"OFR":                          ClassProhibited,
	"OVERFLIGHT_RESTRICTION":       ClassProhibited,
	"W": ClassWave, "WAVE": ClassWave,
}

// ParseClass normalizes a raw class or type code. Unknown codes map to
// ClassOther, never an error.
func ParseClass(raw string) Class {
	if c, ok := rawClasses[strings.ToUpper(strings.TrimSpace(raw))]; ok {
		return c
	}
	return ClassOther
}

// Known reports whether the code maps onto the vocabulary without the
// ClassOther fallback.
func Known(raw string) bool {
	_, ok := rawClasses[strings.ToUpper(strings.TrimSpace(raw))]
	return ok
}
