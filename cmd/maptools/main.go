package main

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"tilesystem/internal/autotile"
	"tilesystem/internal/config"
	"tilesystem/internal/maps"
	"tilesystem/internal/orient"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "validate":
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Usage: maptools validate <maps-dir>")
			os.Exit(1)
		}
		os.Exit(runValidate(args[0]))
	case "viz":
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Usage: maptools viz <map-file>")
			os.Exit(1)
		}
		os.Exit(runViz(args[0]))
	case "masks":
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Usage: maptools masks <map-file>")
			os.Exit(1)
		}
		os.Exit(runMasks(args[0]))
	case "stats":
		if len(args) < 1 || len(args) > 2 {
			fmt.Fprintln(os.Stderr, "Usage: maptools stats <map-file> [config]")
			os.Exit(1)
		}
		configPath := config.DefaultPath
		if len(args) == 2 {
			configPath = args[1]
		}
		os.Exit(runStats(args[0], configPath))
	case "all":
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Usage: maptools all <maps-dir>")
			os.Exit(1)
		}
		os.Exit(runAll(args[0]))
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: maptools <command> <path>

Commands:
  validate <maps-dir>   Validate all painted grids in directory
  viz      <map-file>   Render grid as colored ASCII art
  masks    <map-file>   Print each cell's resolved orientation as hex
  stats    <map-file> [config]
                        Show brush distribution and atlas tiles used;
                        inner joins per brush come from its config job
  all      <maps-dir>   Run validate + viz + stats for all grids`)
}

// --- validate ---

func runValidate(dir string) int {
	// LoadMaps already rejects malformed cells and brushes.
	allMaps, err := maps.LoadMaps(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
		return 1
	}

	warnings := 0
	for _, name := range sortedNames(allMaps) {
		m := allMaps[name]
		fmt.Printf("Validating %q...\n", name)

		used := make(map[int]bool)
		for _, row := range m.Cells {
			for _, idx := range row {
				used[idx] = true
			}
		}
		for i, b := range m.Brushes {
			if b.Name != "" && !used[i] {
				fmt.Printf("  WARN: brush %d (%s) is never painted\n", i, b.Name)
				warnings++
			}
			if b.Rules.Coalesce == orient.CoalesceGroups || b.Rules.Coalesce == orient.CoalesceOwnAndGroups {
				if len(b.Rules.Groups) == 0 {
					fmt.Printf("  WARN: brush %d (%s) coalesces with groups but lists none\n", i, b.Name)
					warnings++
				}
			}
		}
		fmt.Printf("  OK (%dx%d, %d brushes)\n", m.Width, m.Height, len(m.Brushes))
	}

	fmt.Printf("\nAll %d grids valid", len(allMaps))
	if warnings > 0 {
		fmt.Printf(", %d warning(s)", warnings)
	}
	fmt.Println()
	return 0
}

func sortedNames(all map[string]*maps.Map) []string {
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// --- viz ---

// ansiColor returns the ANSI escape for the given code.
func ansiColor(code int) string {
	return fmt.Sprintf("\033[%dm", code)
}

func runViz(path string) int {
	m, err := maps.LoadMap(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Printf("%s (%dx%d)\n", m.Name, m.Width, m.Height)

	for row := 0; row < m.Height; row++ {
		for col := 0; col < m.Width; col++ {
			b := m.BrushAt(row, col)
			if b == nil {
				fmt.Print(" ")
				continue
			}
			fmt.Print(ansiColor(b.Fg), string(b.Char), "\033[0m")
		}
		fmt.Println()
	}

	fmt.Println()
	for i, b := range m.Brushes {
		if b.Name == "" {
			continue
		}
		fmt.Printf("  %s%c\033[0m %2d %-10s %s\n", ansiColor(b.Fg), b.Char, i, b.Name, b.Rules.Coalesce)
	}
	return 0
}

// --- masks ---

func runMasks(path string) int {
	m, err := maps.LoadMap(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Printf("%s (%dx%d)\n", m.Name, m.Width, m.Height)
	for _, row := range m.Orientations() {
		cells := make([]string, len(row))
		for col, mask := range row {
			cells[col] = fmt.Sprintf("%02X", uint8(mask))
		}
		fmt.Println(strings.Join(cells, " "))
	}
	return 0
}

// --- stats ---

// brushUsage is how often a brush is painted and which atlas tiles it
// resolves to.
type brushUsage struct {
	name       string
	count      int
	tiles      map[int]bool
	innerJoins bool
}

// tileUsage tallies every painted cell. innerJoins reports the orientation
// table of the atlas drawing a brush.
func tileUsage(m *maps.Map, innerJoins func(b *maps.Brush) bool) (usage []brushUsage, empty int) {
	byName := make(map[string]*brushUsage)
	for row := 0; row < m.Height; row++ {
		for col := 0; col < m.Width; col++ {
			mask, b, ok := m.Orientation(row, col)
			if !ok {
				empty++
				continue
			}
			u := byName[b.Name]
			if u == nil {
				u = &brushUsage{name: b.Name, innerJoins: innerJoins(b)}
				byName[b.Name] = u
			}
			u.count++
			if b.Coalescable() {
				if u.tiles == nil {
					u.tiles = make(map[int]bool)
				}
				u.tiles[autotile.AtlasIndex(mask, u.innerJoins)] = true
			}
		}
	}

	for _, u := range byName {
		usage = append(usage, *u)
	}
	slices.SortFunc(usage, func(a, b brushUsage) int {
		return cmp.Or(cmp.Compare(b.count, a.count), cmp.Compare(a.name, b.name))
	})
	return usage, empty
}

// jobJoins looks brush atlases up in cfg. Brushes without a known job use
// the inner-join table.
func jobJoins(cfg *config.Config) func(b *maps.Brush) bool {
	return func(b *maps.Brush) bool {
		if cfg == nil {
			return true
		}
		if j, ok := cfg.Job(b.Atlas); ok {
			return j.InnerJoins
		}
		return true
	}
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}

func runStats(path, configPath string) int {
	m, err := maps.LoadMap(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	cfg, err := config.Load(configPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	total := m.Width * m.Height
	fmt.Printf("%s (%dx%d = %d cells)\n\n", m.Name, m.Width, m.Height, total)

	usage, empty := tileUsage(m, jobJoins(cfg))
	for _, u := range usage {
		pct := percent(u.count, total)
		bar := strings.Repeat("█", int(pct/2))
		used := "-"
		if u.tiles != nil {
			used = fmt.Sprintf("%d/%d", len(u.tiles), autotile.OrientationCount(u.innerJoins))
		}
		fmt.Printf("  %-10s %4d (%5.1f%%) tiles %-6s %s\n", u.name, u.count, pct, used, bar)
	}

	fmt.Printf("\nEmpty: %d/%d (%.1f%%)\n", empty, total, percent(empty, total))
	return 0
}

// --- all ---

func runAll(dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading directory: %v\n", err)
		return 1
	}

	// Run validate first
	fmt.Println("=== VALIDATE ===")
	code := runValidate(dir)
	if code != 0 {
		return code
	}

	// Then viz + stats for each grid
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		fmt.Printf("\n=== VIZ: %s ===\n", entry.Name())
		runViz(path)
		fmt.Printf("\n=== STATS: %s ===\n", entry.Name())
		runStats(path, config.DefaultPath)
	}

	return 0
}
