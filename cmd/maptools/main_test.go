package main

import (
	"testing"

	"tilesystem/internal/config"
	"tilesystem/internal/maps"
	"tilesystem/internal/orient"
)

// buildTestGrid paints a 2×2 block next to an L shape. The L's inner
// corner only differs from the block's corner by its diagonal.
func buildTestGrid() *maps.Map {
	m := maps.NewMap("test", 5, 2)
	m.Brushes = []maps.Brush{
		{Name: "grass", Atlas: "grass", Rules: orient.Rules{Coalesce: orient.CoalesceOwn}},
		{Name: "rock"},
	}
	for _, p := range [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {0, 3}, {0, 4}, {1, 3}} {
		m.Paint(p[0], p[1], 0, 0)
	}
	m.Paint(1, 4, 1, 0)
	return m
}

func TestTileUsage(t *testing.T) {
	tests := []struct {
		name       string
		cfg        *config.Config
		innerJoins bool
		wantTiles  int
	}{
		{"no config", nil, true, 7},
		{"joined job", &config.Config{Jobs: []config.Job{{Name: "grass", InnerJoins: true}}}, true, 7},
		{"joinless job", &config.Config{Jobs: []config.Job{{Name: "grass"}}}, false, 6},
		{"unrelated job", &config.Config{Jobs: []config.Job{{Name: "water"}}}, true, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usage, empty := tileUsage(buildTestGrid(), jobJoins(tt.cfg))
			if empty != 2 {
				t.Errorf("empty = %d, want 2", empty)
			}
			if len(usage) != 2 || usage[0].name != "grass" || usage[1].name != "rock" {
				t.Fatalf("usage = %+v", usage)
			}
			grass := usage[0]
			if grass.count != 7 || grass.innerJoins != tt.innerJoins {
				t.Errorf("grass = %+v", grass)
			}
			if len(grass.tiles) != tt.wantTiles {
				t.Errorf("grass uses %d tiles, want %d", len(grass.tiles), tt.wantTiles)
			}
			if usage[1].tiles != nil {
				t.Errorf("rock does not coalesce but reported tiles %v", usage[1].tiles)
			}
		})
	}
}

func TestTileUsageEmptyGrid(t *testing.T) {
	usage, empty := tileUsage(maps.NewMap("empty", 0, 0), jobJoins(nil))
	if len(usage) != 0 || empty != 0 {
		t.Errorf("usage = %+v, empty = %d", usage, empty)
	}
	if got := percent(empty, 0); got != 0 {
		t.Errorf("percent of empty grid = %v, want 0", got)
	}
	if got := percent(1, 4); got != 25 {
		t.Errorf("percent(1, 4) = %v, want 25", got)
	}
}
