// Command gridgen writes a noise-generated painted grid for previewing
// autotile atlases.
package main

import (
	"cmp"
	"fmt"
	"math/rand"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"tilesystem/internal/autotile"
	"tilesystem/internal/maps"
	"tilesystem/internal/orient"
)

// Brush indices for the terrain legend.
const (
	bWater = iota
	bSand
	bGrass
	bForest
	bRock
)

var (
	elevationOctaves = octaves{freq: 0.04, count: 4, lacunarity: 2, persistence: 0.5}
	moistureOctaves  = octaves{freq: 0.06, count: 3, lacunarity: 2, persistence: 0.5}
)

func terrainBrushes(atlas string, border bool) []maps.Brush {
	return []maps.Brush{
		bWater: {Name: "water", Char: '~', Fg: 34},
		bSand: {Name: "sand", Group: 1, Char: ':', Fg: 33, Atlas: atlas,
			Rules: orient.Rules{Coalesce: orient.CoalesceOwnAndGroups, Groups: map[int]bool{2: true}, CoalesceWithBorder: border}},
		bGrass: {Name: "grass", Group: 2, Char: '.', Fg: 32, Atlas: atlas,
			Rules: orient.Rules{Coalesce: orient.CoalesceOwn, CoalesceWithBorder: border}},
		bForest: {Name: "forest", Group: 2, Char: 'T', Fg: 92,
			Rules: orient.Rules{Coalesce: orient.CoalesceGroups, Groups: map[int]bool{2: true}, CoalesceWithBorder: border}},
		bRock: {Name: "rock", Char: '^', Fg: 90,
			Rules: orient.Rules{Coalesce: orient.CoalesceOwn, CoalesceWithRotated: true}},
	}
}

func main() {
	seed := pflag.Int64("seed", 0, "random seed (0 = random)")
	size := pflag.String("size", "48x24", "grid size as WxH")
	name := pflag.String("name", "Generated", "map name")
	out := pflag.StringP("out", "o", "", "output file (default: stdout)")
	atlas := pflag.String("atlas", "", "expansion job that draws sand and grass")
	border := pflag.Bool("border", false, "coalesce terrain with the grid border")
	rotate := pflag.Bool("rotate", false, "paint rock with random quarter turns")
	pflag.Parse()

	w, h, err := parseSize(*size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	fmt.Fprintf(os.Stderr, "Generating %dx%d grid %q (seed %d)...\n", w, h, *name, *seed)
	m := generate(*name, w, h, *seed, *rotate)
	m.Brushes = terrainBrushes(*atlas, *border)

	if *out == "" {
		data, err := m.Marshal()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
	} else {
		if err := m.Save(*out); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", *out)
	}

	printSummary(m)
}

func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(s, "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q (expected WxH)", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil || w < 3 {
		return 0, 0, fmt.Errorf("invalid width %q (minimum 3)", ws)
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h < 3 {
		return 0, 0, fmt.Errorf("invalid height %q (minimum 3)", hs)
	}
	return w, h, nil
}

// generate paints a w×h grid from elevation and moisture noise. The
// brushes are left for the caller to attach.
func generate(name string, w, h int, seed int64, rotate bool) *maps.Map {
	elevation := newSimplex(seed)
	moisture := newSimplex(seed + 1)
	rng := rand.New(rand.NewSource(seed + 100))

	m := maps.NewMap(name, w, h)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			x, y := float64(col), float64(row)
			b := classify(elevation.fractal(x, y, elevationOctaves), moisture.fractal(x, y, moistureOctaves))
			rotation := 0
			if rotate && b == bRock {
				rotation = rng.Intn(4)
			}
			m.Cells[row][col] = b
			m.Rotations[row][col] = rotation
		}
	}
	return m
}

func classify(elev, moist float64) int {
	switch {
	case elev < 0.38:
		return bWater
	case elev < 0.44:
		return bSand
	case elev < 0.66:
		if moist > 0.55 {
			return bForest
		}
		return bGrass
	default:
		return bRock
	}
}

func printSummary(m *maps.Map) {
	counts := make(map[int]int)
	tiles := make(map[string]map[orient.Mask]bool)
	for row := 0; row < m.Height; row++ {
		for col := 0; col < m.Width; col++ {
			counts[m.Cells[row][col]]++
			mask, b, ok := m.Orientation(row, col)
			if !ok || !b.Coalescable() {
				continue
			}
			if tiles[b.Name] == nil {
				tiles[b.Name] = make(map[orient.Mask]bool)
			}
			tiles[b.Name][autotile.Canonicalize(mask, true)] = true
		}
	}

	type entry struct {
		name  string
		count int
	}
	var sorted []entry
	for idx, c := range counts {
		if idx >= 0 && idx < len(m.Brushes) {
			sorted = append(sorted, entry{m.Brushes[idx].Name, c})
		}
	}
	slices.SortFunc(sorted, func(a, b entry) int {
		return cmp.Or(cmp.Compare(b.count, a.count), cmp.Compare(a.name, b.name))
	})

	total := m.Width * m.Height
	fmt.Fprintf(os.Stderr, "\nBrush distribution:\n")
	for _, e := range sorted {
		fmt.Fprintf(os.Stderr, "  %-8s %5d (%5.1f%%)  %2d/%d atlas tiles\n",
			e.name, e.count, float64(e.count)/float64(total)*100,
			len(tiles[e.name]), autotile.JoinedOrientationCount)
	}
}
