package openair

import (
	"fmt"
	"strings"
)

// Block is one airspace definition: the records from an AC line up to the
// next AC or end of file. Blocks are rebuilt, never patched, when the
// segmenter repairs them.
type Block struct {
	Index int // position in the source file, for stable output ordering
	Lines []Line
}

// Field returns the argument string of the first record with the given
// tag.
func (b Block) Field(tag string) (string, bool) {
	for _, l := range b.Lines {
		if l.Tag == tag {
			return l.Args, true
		}
	}
	return "", false
}

// ClassCode returns the raw AC value, or the AY value when AC is the
// placeholder "UNC" used by extended-format files.
func (b Block) ClassCode() string {
	ac, _ := b.Field(TagClass)
	if ac != "UNC" {
		return ac
	}
	if ay, ok := b.Field(TagType); ok {
		return ay
	}
	return ac
}

// Name returns the AN record value.
func (b Block) Name() string {
	name, _ := b.Field(TagName)
	return name
}

// HasGeometry reports whether any record produces boundary geometry.
func (b Block) HasGeometry() bool {
	for _, l := range b.Lines {
		if l.IsGeometry() {
			return true
		}
	}
	return false
}

// StartLine returns the source line number of the opening AC record.
func (b Block) StartLine() int {
	if len(b.Lines) == 0 {
		return 0
	}
	return b.Lines[0].Num
}

// Repair records a non-fatal correction or drop the segmenter applied.
type Repair struct {
	Line    int    `json:"line"`
	Action  string `json:"action"`
	Message string `json:"message"`
}

// Repair actions.
const (
	RepairDroppedLine    = "dropped_line"
	RepairDroppedBlock   = "dropped_block"
	RepairInvertedVBlock = "inverted_v_block"
	RepairInjectedVD     = "injected_direction"
	RepairSuspectVBlock  = "suspect_v_block"
)

// Segment splits records into airspace blocks, repairing malformed block
// structure where possible. Geometry appearing before the first AC record
// is fatal: there is no class to attach it to. Blocks without geometry
// are treated as administrative notes and dropped with a warning.
func Segment(lines []Line) ([]Block, []Repair, error) {
	var (
		blocks  []Block
		repairs []Repair
		current []Line
		open    bool
	)

	closeBlock := func() {
		if !open {
			return
		}
		b := Block{Index: len(blocks), Lines: current}
		if !b.HasGeometry() {
			repairs = append(repairs, Repair{
				Line:    b.StartLine(),
				Action:  RepairDroppedBlock,
				Message: fmt.Sprintf("block %q has no geometry records", b.Name()),
			})
			return
		}
		lines, blockRepairs := repairVBlocks(b.Lines)
		b.Lines = lines
		repairs = append(repairs, blockRepairs...)
		blocks = append(blocks, b)
	}

	for _, l := range lines {
		if !knownTags[l.Tag] {
			repairs = append(repairs, Repair{
				Line:    l.Num,
				Action:  RepairDroppedLine,
				Message: fmt.Sprintf("unrecognized record tag %q", l.Tag),
			})
			continue
		}

		if l.Tag == TagClass {
			closeBlock()
			current = []Line{l}
			open = true
			continue
		}

		if !open {
			if l.IsGeometry() {
				return nil, repairs, fmt.Errorf(
					"line %d: geometry record %s before any AC record", l.Num, l.Tag)
			}
			// Header metadata before the first block is dropped quietly.
			continue
		}

		current = append(current, l)
	}
	closeBlock()

	return blocks, repairs, nil
}

// repairVBlocks normalizes runs of V records ahead of DA/DB geometry: a
// lone "V X=" gets the ambient direction injected before it, an inverted
// "V X="/"V D=" pair is swapped. The ambient direction starts clockwise
// and follows every "V D=" record in the block.
func repairVBlocks(lines []Line) ([]Line, []Repair) {
	var (
		out       []Line
		repairs   []Repair
		direction = "+"
	)

	isVarOf := func(l Line, name string) bool {
		n, _, found := strings.Cut(l.Args, "=")
		return found && strings.TrimSpace(n) == name
	}
	varValue := func(l Line) string {
		_, v, _ := strings.Cut(l.Args, "=")
		return strings.TrimSpace(v)
	}

	i := 0
	for i < len(lines) {
		l := lines[i]
		if l.Tag != TagVariable {
			out = append(out, l)
			i++
			continue
		}

		// Collect the consecutive V run and the record that terminates it.
		run := []Line{}
		for i < len(lines) && lines[i].Tag == TagVariable {
			if isVarOf(lines[i], "D") {
				direction = varValue(lines[i])
			}
			run = append(run, lines[i])
			i++
		}

		terminatedByArc := i < len(lines) &&
			(lines[i].Tag == TagArc || lines[i].Tag == TagArcPoints)

		switch {
		case terminatedByArc && len(run) == 1 && isVarOf(run[0], "X"):
			out = append(out, Line{Tag: TagVariable, Args: "D=" + direction, Num: run[0].Num})
			out = append(out, run[0])
			repairs = append(repairs, Repair{
				Line:    run[0].Num,
				Action:  RepairInjectedVD,
				Message: fmt.Sprintf("injected ambient direction %q before lone V X=", direction),
			})

		case terminatedByArc && len(run) == 2 && isVarOf(run[0], "X") && isVarOf(run[1], "D"):
			direction = varValue(run[1])
			out = append(out, run[1], run[0])
			repairs = append(repairs, Repair{
				Line:    run[0].Num,
				Action:  RepairInvertedVBlock,
				Message: "swapped inverted V X=/V D= pair",
			})

		default:
			switch {
			case terminatedByArc && len(run) > 2:
				repairs = append(repairs, Repair{
					Line:    run[0].Num,
					Action:  RepairSuspectVBlock,
					Message: fmt.Sprintf("expected 1 or 2 V records before arc, got %d", len(run)),
				})
			case terminatedByArc && len(run) == 1 && !isVarOf(run[0], "X"):
				repairs = append(repairs, Repair{
					Line:    run[0].Num,
					Action:  RepairSuspectVBlock,
					Message: fmt.Sprintf("expected V X= before arc, got V %s", run[0].Args),
				})
			}
			out = append(out, run...)
		}
	}

	return out, repairs
}
