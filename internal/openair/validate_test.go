package openair

import (
	"errors"
	"testing"
)

func TestValidateLine(t *testing.T) {
	tests := []struct {
		name    string
		tag     string
		args    string
		wantErr bool
	}{
		{name: "valid DP", tag: "DP", args: "45:30:00 N 005:15:00 E"},
		{name: "DP with bad coordinate", tag: "DP", args: "45:30 N 005:15 E", wantErr: true},
		{name: "valid DB", tag: "DB", args: "45:30:00 N 005:15:00 E, 45:35:00 N 005:20:00 E"},
		{name: "DB with one coordinate", tag: "DB", args: "45:30:00 N 005:15:00 E", wantErr: true},
		{name: "DB with bad second coordinate", tag: "DB", args: "45:30:00 N 005:15:00 E, oops", wantErr: true},
		{name: "valid DC", tag: "DC", args: "5"},
		{name: "DC fractional radius", tag: "DC", args: "2.5"},
		{name: "DC zero radius", tag: "DC", args: "0", wantErr: true},
		{name: "DC non-numeric", tag: "DC", args: "five", wantErr: true},
		{name: "valid DA", tag: "DA", args: "10,270,290"},
		{name: "DA with spaces", tag: "DA", args: "10, 270, 290"},
		{name: "DA missing value", tag: "DA", args: "10,270", wantErr: true},
		{name: "DA angle out of range", tag: "DA", args: "10,270,361", wantErr: true},
		{name: "DA negative radius", tag: "DA", args: "-10,270,290", wantErr: true},
		{name: "valid V direction plus", tag: "V", args: "D=+"},
		{name: "valid V direction minus", tag: "V", args: "D=-"},
		{name: "V bad direction", tag: "V", args: "D=x", wantErr: true},
		{name: "valid V center", tag: "V", args: "X=45:30:00 N 005:15:00 E"},
		{name: "V bad center", tag: "V", args: "X=nowhere", wantErr: true},
		{name: "V unknown variable", tag: "V", args: "Z=1", wantErr: true},
		{name: "V without equals", tag: "V", args: "D+", wantErr: true},
		{name: "AC is free-form", tag: "AC", args: "CTR"},
		{name: "AN is free-form", tag: "AN", args: "GENEVA TMA"},
		{name: "unknown tag", tag: "XX", args: "whatever", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLine(Line{Tag: tt.tag, Args: tt.args, Num: 1})
			if tt.wantErr && err == nil {
				t.Errorf("ValidateLine(%s %s) = nil, want error", tt.tag, tt.args)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateLine(%s %s) = %v, want nil", tt.tag, tt.args, err)
			}
		})
	}
}

func TestValidateLinesFailsFast(t *testing.T) {
	lines := []Line{
		{Tag: "AC", Args: "CTR", Num: 1},
		{Tag: "DP", Args: "bogus", Num: 2},
		{Tag: "DP", Args: "also bogus", Num: 3},
	}

	err := ValidateLines(lines)
	if err == nil {
		t.Fatal("expected a syntax error")
	}

	var synErr *SyntaxError
	if !errors.As(err, &synErr) {
		t.Fatalf("expected *SyntaxError, got %T", err)
	}
	if synErr.Line != 2 {
		t.Errorf("failed on line %d, want first bad line 2", synErr.Line)
	}
}

func TestSplitLines(t *testing.T) {
	content := "* comment\r\nAC CTR\r\n\r\nAN TEST AREA * trailing comment\nDP 45:30:00 N 005:15:00 E\n"

	lines := SplitLines(content)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %+v", len(lines), lines)
	}
	if lines[0].Tag != "AC" || lines[0].Args != "CTR" {
		t.Errorf("line 0 = %+v", lines[0])
	}
	if lines[1].Tag != "AN" || lines[1].Args != "TEST AREA" {
		t.Errorf("trailing comment not stripped: %+v", lines[1])
	}
	if lines[2].Tag != "DP" {
		t.Errorf("line 2 = %+v", lines[2])
	}
	if lines[2].Num != 5 {
		t.Errorf("line numbers should count raw lines, got %d", lines[2].Num)
	}
}
