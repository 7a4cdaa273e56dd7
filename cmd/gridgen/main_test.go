package main

import (
	"testing"

	"tilesystem/internal/maps"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		w, h    int
		wantErr bool
	}{
		{"48x24", 48, 24, false},
		{"3x3", 3, 3, false},
		{"2x10", 0, 0, true},
		{"10", 0, 0, true},
		{"ax4", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			w, h, err := parseSize(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if w != tt.w || h != tt.h {
				t.Errorf("parseSize = %dx%d, want %dx%d", w, h, tt.w, tt.h)
			}
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := generate("a", 32, 16, 7, true)
	b := generate("b", 32, 16, 7, true)
	for row := range a.Cells {
		for col := range a.Cells[row] {
			if a.Cells[row][col] != b.Cells[row][col] || a.Rotations[row][col] != b.Rotations[row][col] {
				t.Fatalf("cell (%d,%d) differs between runs", row, col)
			}
		}
	}
}

func TestGenerateRotatesOnlyRock(t *testing.T) {
	m := generate("g", 64, 64, 42, true)
	for row := range m.Cells {
		for col, b := range m.Cells[row] {
			if b != bRock && m.Rotations[row][col] != 0 {
				t.Fatalf("brush %d at (%d,%d) rotated", b, row, col)
			}
		}
	}
}

func TestGeneratedMapRoundTrips(t *testing.T) {
	m := generate("g", 12, 8, 3, false)
	m.Brushes = terrainBrushes("terrain", true)
	data, err := m.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	got, err := maps.ParseMap(data)
	if err != nil {
		t.Fatalf("ParseMap: %v", err)
	}
	if len(got.Brushes) != len(m.Brushes) {
		t.Fatalf("%d brushes, want %d", len(got.Brushes), len(m.Brushes))
	}
	if !got.Brushes[bSand].Rules.Groups[2] || got.Brushes[bGrass].Atlas != "terrain" {
		t.Errorf("brush rules lost: %+v", got.Brushes)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		elev, moist float64
		want        int
	}{
		{0.1, 0.9, bWater},
		{0.4, 0.5, bSand},
		{0.5, 0.2, bGrass},
		{0.5, 0.8, bForest},
		{0.9, 0.1, bRock},
	}
	for _, tt := range tests {
		if got := classify(tt.elev, tt.moist); got != tt.want {
			t.Errorf("classify(%v, %v) = %d, want %d", tt.elev, tt.moist, got, tt.want)
		}
	}
}
