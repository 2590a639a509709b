package openair

import (
	"math"
	"testing"
)

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantLat float64
		wantLon float64
		wantErr bool
	}{
		{
			name:    "DMS with spaced hemispheres",
			input:   "45:30:00 N 005:15:00 E",
			wantLat: 45.5,
			wantLon: 5.25,
		},
		{
			name:    "DMS without spaces before hemispheres",
			input:   "48:50:08N 007:02:05E",
			wantLat: 48.0 + 50.0/60 + 8.0/3600,
			wantLon: 7.0 + 2.0/60 + 5.0/3600,
		},
		{
			name:    "decimal seconds",
			input:   "46:08:48.5 N 006:06:10.2 E",
			wantLat: 46.0 + 8.0/60 + 48.5/3600,
			wantLon: 6.0 + 6.0/60 + 10.2/3600,
		},
		{
			name:    "southern and western hemispheres",
			input:   "33:51:00 S 151:12:00 E",
			wantLat: -(33.0 + 51.0/60),
			wantLon: 151.2,
		},
		{
			name:    "west longitude",
			input:   "51:28:00 N 000:27:00 W",
			wantLat: 51.0 + 28.0/60,
			wantLon: -0.45,
		},
		{
			name:    "decimal form",
			input:   "45.5 N 5.25 E",
			wantLat: 45.5,
			wantLon: 5.25,
		},
		{
			name:    "seconds equal to 60 are tolerated",
			input:   "45:30:60 N 005:15:00 E",
			wantLat: 45.0 + 30.0/60 + 60.0/3600,
			wantLon: 5.25,
		},
		{name: "single degree digit latitude", input: "5:30:00 N 005:15:00 E", wantErr: true},
		{name: "latitude degrees out of range", input: "91:00:00 N 005:15:00 E", wantErr: true},
		{name: "longitude degrees out of range", input: "45:30:00 N 181:00:00 E", wantErr: true},
		{name: "minutes out of range", input: "45:60:00 N 005:15:00 E", wantErr: true},
		{name: "missing hemisphere", input: "45:30:00 005:15:00", wantErr: true},
		{name: "garbage", input: "not a coordinate", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCoordinate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseCoordinate(%q) = %+v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCoordinate(%q) error: %v", tt.input, err)
			}
			if math.Abs(got.Lat-tt.wantLat) > 1e-9 {
				t.Errorf("Lat = %v, want %v", got.Lat, tt.wantLat)
			}
			if math.Abs(got.Lon-tt.wantLon) > 1e-9 {
				t.Errorf("Lon = %v, want %v", got.Lon, tt.wantLon)
			}
		})
	}
}
