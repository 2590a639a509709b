package openair

import (
	"strings"
	"testing"
)

func segmentText(t *testing.T, text string) ([]Block, []Repair, error) {
	t.Helper()
	return Segment(SplitLines(text))
}

func TestSegment(t *testing.T) {
	t.Run("splits on AC records", func(t *testing.T) {
		blocks, repairs, err := segmentText(t, `
AC CTR
AN FIRST
DP 45:30:00 N 005:15:00 E
AC D
AN SECOND
DP 46:30:00 N 006:15:00 E
`)
		if err != nil {
			t.Fatal(err)
		}
		if len(repairs) != 0 {
			t.Errorf("unexpected repairs: %+v", repairs)
		}
		if len(blocks) != 2 {
			t.Fatalf("got %d blocks, want 2", len(blocks))
		}
		if blocks[0].Name() != "FIRST" || blocks[1].Name() != "SECOND" {
			t.Errorf("names = %q, %q", blocks[0].Name(), blocks[1].Name())
		}
		if blocks[0].Index != 0 || blocks[1].Index != 1 {
			t.Errorf("indexes = %d, %d", blocks[0].Index, blocks[1].Index)
		}
	})

	t.Run("geometry before first AC is fatal", func(t *testing.T) {
		_, _, err := segmentText(t, `
AN ORPHAN
DP 45:30:00 N 005:15:00 E
AC CTR
AN OK
DP 45:30:00 N 005:15:00 E
`)
		if err == nil {
			t.Fatal("expected an error for geometry without a class")
		}
	})

	t.Run("metadata before first AC is ignored", func(t *testing.T) {
		blocks, _, err := segmentText(t, `
AN FILE HEADER
AC CTR
AN OK
DP 45:30:00 N 005:15:00 E
`)
		if err != nil {
			t.Fatal(err)
		}
		if len(blocks) != 1 {
			t.Fatalf("got %d blocks, want 1", len(blocks))
		}
	})

	t.Run("unknown tags are dropped with a repair", func(t *testing.T) {
		blocks, repairs, err := segmentText(t, `
AC CTR
AN OK
ZZ mystery record
DP 45:30:00 N 005:15:00 E
`)
		if err != nil {
			t.Fatal(err)
		}
		if len(blocks) != 1 || len(blocks[0].Lines) != 3 {
			t.Fatalf("blocks = %+v", blocks)
		}
		if len(repairs) != 1 || repairs[0].Action != RepairDroppedLine {
			t.Errorf("repairs = %+v", repairs)
		}
	})

	t.Run("blocks without geometry are dropped with a repair", func(t *testing.T) {
		blocks, repairs, err := segmentText(t, `
AC CTR
AN NOTE ONLY
AH FL 195
AL SFC
AC D
AN REAL
DP 45:30:00 N 005:15:00 E
`)
		if err != nil {
			t.Fatal(err)
		}
		if len(blocks) != 1 || blocks[0].Name() != "REAL" {
			t.Fatalf("blocks = %+v", blocks)
		}
		if len(repairs) != 1 || repairs[0].Action != RepairDroppedBlock {
			t.Errorf("repairs = %+v", repairs)
		}
		if !strings.Contains(repairs[0].Message, "NOTE ONLY") {
			t.Errorf("repair message should name the block: %q", repairs[0].Message)
		}
	})
}

func TestSegmentVBlockRepairs(t *testing.T) {
	t.Run("lone V X= before arc gets direction injected", func(t *testing.T) {
		blocks, repairs, err := segmentText(t, `
AC CTR
AN ARC
DP 45:30:00 N 005:15:00 E
V X=45:30:00 N 005:15:00 E
DB 45:35:00 N 005:15:00 E, 45:30:00 N 005:22:00 E
`)
		if err != nil {
			t.Fatal(err)
		}
		if len(repairs) != 1 || repairs[0].Action != RepairInjectedVD {
			t.Fatalf("repairs = %+v", repairs)
		}
		lines := blocks[0].Lines
		if lines[3].Tag != TagVariable || lines[3].Args != "D=+" {
			t.Errorf("expected injected V D=+ before V X=, got %+v", lines[3])
		}
		if lines[4].Args != "X=45:30:00 N 005:15:00 E" {
			t.Errorf("V X= should follow the injection, got %+v", lines[4])
		}
	})

	t.Run("injection reuses the ambient direction", func(t *testing.T) {
		blocks, repairs, err := segmentText(t, `
AC CTR
AN ARC
V D=-
V X=45:30:00 N 005:15:00 E
DA 10,270,290
V X=46:30:00 N 006:15:00 E
DA 10,90,110
`)
		if err != nil {
			t.Fatal(err)
		}
		if len(repairs) != 1 || repairs[0].Action != RepairInjectedVD {
			t.Fatalf("repairs = %+v", repairs)
		}
		var injected Line
		for _, l := range blocks[0].Lines[4:] {
			if l.Tag == TagVariable && strings.HasPrefix(l.Args, "D=") {
				injected = l
			}
		}
		if injected.Args != "D=-" {
			t.Errorf("injected direction = %q, want ambient D=-", injected.Args)
		}
	})

	t.Run("inverted pair is swapped", func(t *testing.T) {
		blocks, repairs, err := segmentText(t, `
AC CTR
AN ARC
V X=45:30:00 N 005:15:00 E
V D=-
DA 10,270,290
`)
		if err != nil {
			t.Fatal(err)
		}
		if len(repairs) != 1 || repairs[0].Action != RepairInvertedVBlock {
			t.Fatalf("repairs = %+v", repairs)
		}
		lines := blocks[0].Lines
		if lines[2].Args != "D=-" {
			t.Errorf("direction should come first after swap, got %+v", lines[2])
		}
		if !strings.HasPrefix(lines[3].Args, "X=") {
			t.Errorf("center should come second after swap, got %+v", lines[3])
		}
	})

	t.Run("correct pair is untouched", func(t *testing.T) {
		_, repairs, err := segmentText(t, `
AC CTR
AN ARC
V D=+
V X=45:30:00 N 005:15:00 E
DA 10,270,290
`)
		if err != nil {
			t.Fatal(err)
		}
		if len(repairs) != 0 {
			t.Errorf("unexpected repairs: %+v", repairs)
		}
	})

	t.Run("lone V D= before arc is flagged", func(t *testing.T) {
		_, repairs, err := segmentText(t, `
AC CTR
AN ARC
V D=+
V X=45:30:00 N 005:15:00 E
DA 10,270,290
V D=-
DA 10,90,110
`)
		if err != nil {
			t.Fatal(err)
		}
		if len(repairs) != 1 || repairs[0].Action != RepairSuspectVBlock {
			t.Fatalf("repairs = %+v", repairs)
		}
		if !strings.Contains(repairs[0].Message, "V X=") {
			t.Errorf("repair message should name the missing center: %q", repairs[0].Message)
		}
	})

	t.Run("oversized V run before arc is flagged", func(t *testing.T) {
		_, repairs, err := segmentText(t, `
AC CTR
AN ARC
V D=+
V X=45:30:00 N 005:15:00 E
V D=-
DA 10,270,290
`)
		if err != nil {
			t.Fatal(err)
		}
		if len(repairs) != 1 || repairs[0].Action != RepairSuspectVBlock {
			t.Errorf("repairs = %+v", repairs)
		}
	})
}

func TestBlockClassCode(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "plain AC",
			text: "AC CTR\nAN A\nDP 45:30:00 N 005:15:00 E\n",
			want: "CTR",
		},
		{
			name: "UNC falls back to AY",
			text: "AC UNC\nAY TMZ\nAN A\nDP 45:30:00 N 005:15:00 E\n",
			want: "TMZ",
		},
		{
			name: "UNC without AY stays UNC",
			text: "AC UNC\nAN A\nDP 45:30:00 N 005:15:00 E\n",
			want: "UNC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks, _, err := segmentText(t, tt.text)
			if err != nil {
				t.Fatal(err)
			}
			if got := blocks[0].ClassCode(); got != tt.want {
				t.Errorf("ClassCode() = %q, want %q", got, tt.want)
			}
		})
	}
}
