package tileset

import (
	"image"
	"math"
	"testing"
)

func TestNewMetrics(t *testing.T) {
	tests := []struct {
		name                                 string
		atlasW, atlasH, tileW, tileH, border int
		count                                int
		wantCols, wantRows                   int
	}{
		{"16 tiles no border", 128, 128, 32, 32, 0, 16, 4, 4},
		{"47 tiles with border", 256, 256, 32, 32, 2, 47, 7, 7},
		{"partial last row", 128, 64, 16, 16, 0, 10, 8, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMetrics(tt.atlasW, tt.atlasH, tt.tileW, tt.tileH, tt.border, tt.count)
			if m.Columns != tt.wantCols || m.Rows != tt.wantRows {
				t.Fatalf("got %d×%d, want %d×%d", m.Columns, m.Rows, tt.wantCols, tt.wantRows)
			}
			if m.Columns*m.Rows < tt.count {
				t.Errorf("%d cells cannot hold %d tiles", m.Columns*m.Rows, tt.count)
			}
		})
	}
}

func TestMetricsRects(t *testing.T) {
	m := NewMetrics(128, 128, 28, 28, 2, 16)
	if got, want := m.OuterRect(5), image.Rect(32, 32, 64, 64); got != want {
		t.Errorf("OuterRect(5) = %v, want %v", got, want)
	}
	if got, want := m.TileRect(5), image.Rect(34, 34, 62, 62); got != want {
		t.Errorf("TileRect(5) = %v, want %v", got, want)
	}
}

func TestMetricsUV(t *testing.T) {
	m := NewMetrics(128, 128, 32, 32, 0, 16)
	u0, v0, u1, v1 := m.UV(0)
	want := [4]float64{0, 0.75, 0.25, 1}
	got := [4]float64{u0, v0, u1, v1}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("UV(0) = %v, want %v", got, want)
		}
	}
}

func TestNewMetricsZeroSize(t *testing.T) {
	m := NewMetrics(0, 0, 0, 0, 0, 4)
	if m.Columns != 0 || m.Rows != 0 || m.DeltaU != 0 {
		t.Errorf("degenerate metrics not zeroed: %+v", m)
	}
	if c, r := m.Cell(3); c != 0 || r != 0 {
		t.Errorf("Cell on empty metrics = %d,%d", c, r)
	}
}
