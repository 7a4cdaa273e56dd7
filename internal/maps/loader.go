package maps

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"tilesystem/internal/orient"
)

// Empty marks an unpainted cell.
const Empty = -1

// colorNames maps color names from JSON to ANSI codes.
var colorNames = map[string]int{
	"black":          30,
	"red":            31,
	"green":          32,
	"yellow":         33,
	"blue":           34,
	"magenta":        35,
	"cyan":           36,
	"white":          37,
	"gray":           90,
	"grey":           90,
	"bright_red":     91,
	"bright_green":   92,
	"bright_yellow":  93,
	"bright_blue":    94,
	"bright_magenta": 95,
	"bright_cyan":    96,
	"bright_white":   97,
}

func resolveColor(name string) int {
	if code, ok := colorNames[name]; ok {
		return code
	}
	return 37
}

func colorName(code int) string {
	for name, c := range colorNames {
		if c == code && name != "grey" {
			return name
		}
	}
	return "white"
}

// Brush defines how cells painted with it connect to their neighbours.
type Brush struct {
	Name  string
	Group int
	Rules orient.Rules
	// Atlas names the expansion job whose atlas draws this brush.
	Atlas string
	// Char and Fg draw the brush when no atlas is available.
	Char rune
	Fg   int
}

// Coalescable reports whether cells painted with the brush depend on
// their neighbours at all.
func (b *Brush) Coalescable() bool {
	return b != nil && b.Rules.Coalesce != orient.CoalesceNone
}

// Map is a painted grid of brush indices. Row 0 is the top row.
type Map struct {
	Name      string
	Width     int
	Height    int
	Cells     [][]int // [row][col] brush index or Empty
	Rotations [][]int // [row][col] clockwise quarter turns
	Brushes   []Brush // index → brush definition
}

// jsonMap is the on-disk JSON format.
type jsonMap struct {
	Name      string               `json:"name"`
	Width     int                  `json:"width"`
	Height    int                  `json:"height"`
	Cells     [][]int              `json:"cells"`
	Rotations [][]int              `json:"rotations,omitempty"`
	Brushes   map[string]jsonBrush `json:"brushes"`
}

type jsonBrush struct {
	Name                string `json:"name"`
	Group               int    `json:"group,omitempty"`
	Coalesce            string `json:"coalesce,omitempty"`
	Groups              []int  `json:"groups,omitempty"`
	CoalesceWithRotated bool   `json:"coalesce_with_rotated,omitempty"`
	CoalesceWithBorder  bool   `json:"coalesce_with_border,omitempty"`
	Atlas               string `json:"atlas,omitempty"`
	Char                string `json:"char,omitempty"`
	Fg                  string `json:"fg,omitempty"`
}

// NewMap returns an empty w×h map.
func NewMap(name string, w, h int) *Map {
	cells := make([][]int, h)
	rots := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		rots[y] = make([]int, w)
		for x := range cells[y] {
			cells[y][x] = Empty
		}
	}
	return &Map{Name: name, Width: w, Height: h, Cells: cells, Rotations: rots}
}

// LoadMap reads a JSON map file from disk.
func LoadMap(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read map file: %w", err)
	}
	return ParseMap(data)
}

// ParseMap decodes and validates a JSON map.
func ParseMap(data []byte) (*Map, error) {
	var jm jsonMap
	if err := json.Unmarshal(data, &jm); err != nil {
		return nil, fmt.Errorf("parse map JSON: %w", err)
	}

	// Build brush array from the highest key
	maxIdx := -1
	indices := make(map[string]int, len(jm.Brushes))
	for k := range jm.Brushes {
		idx, err := strconv.Atoi(k)
		if err != nil || idx < 0 {
			return nil, fmt.Errorf("brush key %q is not a non-negative index", k)
		}
		indices[k] = idx
		maxIdx = max(maxIdx, idx)
	}

	brushes := make([]Brush, maxIdx+1)
	for k, jb := range jm.Brushes {
		b, err := jb.brush()
		if err != nil {
			return nil, fmt.Errorf("brush %s: %w", k, err)
		}
		brushes[indices[k]] = b
	}

	// Validate cell dimensions
	if len(jm.Cells) != jm.Height {
		return nil, fmt.Errorf("cell rows %d != declared height %d", len(jm.Cells), jm.Height)
	}
	for y, row := range jm.Cells {
		if len(row) != jm.Width {
			return nil, fmt.Errorf("row %d has %d cells, expected %d", y, len(row), jm.Width)
		}
		for x, idx := range row {
			if idx != Empty && (idx < 0 || idx >= len(brushes) || brushes[idx].Name == "") {
				return nil, fmt.Errorf("cell (%d,%d) references unknown brush %d", x, y, idx)
			}
		}
	}

	m := NewMap(jm.Name, jm.Width, jm.Height)
	m.Brushes = brushes
	for y := range jm.Cells {
		copy(m.Cells[y], jm.Cells[y])
	}
	if jm.Rotations != nil {
		if len(jm.Rotations) != jm.Height {
			return nil, fmt.Errorf("rotation rows %d != declared height %d", len(jm.Rotations), jm.Height)
		}
		for y, row := range jm.Rotations {
			if len(row) != jm.Width {
				return nil, fmt.Errorf("rotation row %d has %d entries, expected %d", y, len(row), jm.Width)
			}
			for x, r := range row {
				m.Rotations[y][x] = ((r % 4) + 4) % 4
			}
		}
	}
	return m, nil
}

func (jb jsonBrush) brush() (Brush, error) {
	if jb.Name == "" {
		return Brush{}, fmt.Errorf("name is required")
	}
	rule, err := orient.ParseCoalesce(jb.Coalesce)
	if err != nil {
		return Brush{}, err
	}
	var groups map[int]bool
	if len(jb.Groups) > 0 {
		groups = make(map[int]bool, len(jb.Groups))
		for _, g := range jb.Groups {
			groups[g] = true
		}
	}
	ch := '?'
	if len(jb.Char) > 0 {
		ch = []rune(jb.Char)[0]
	}
	return Brush{
		Name:  jb.Name,
		Group: jb.Group,
		Rules: orient.Rules{
			Coalesce:            rule,
			Groups:              groups,
			CoalesceWithRotated: jb.CoalesceWithRotated,
			CoalesceWithBorder:  jb.CoalesceWithBorder,
		},
		Atlas: jb.Atlas,
		Char:  ch,
		Fg:    resolveColor(jb.Fg),
	}, nil
}

// Marshal encodes the map as indented JSON.
func (m *Map) Marshal() ([]byte, error) {
	jm := jsonMap{
		Name:      m.Name,
		Width:     m.Width,
		Height:    m.Height,
		Cells:     m.Cells,
		Rotations: m.Rotations,
		Brushes:   make(map[string]jsonBrush, len(m.Brushes)),
	}
	for i, b := range m.Brushes {
		if b.Name == "" {
			continue
		}
		var groups []int
		for g := range b.Rules.Groups {
			groups = append(groups, g)
		}
		slices.Sort(groups)
		jm.Brushes[strconv.Itoa(i)] = jsonBrush{
			Name:                b.Name,
			Group:               b.Group,
			Coalesce:            b.Rules.Coalesce.String(),
			Groups:              groups,
			CoalesceWithRotated: b.Rules.CoalesceWithRotated,
			CoalesceWithBorder:  b.Rules.CoalesceWithBorder,
			Atlas:               b.Atlas,
			Char:                string(b.Char),
			Fg:                  colorName(b.Fg),
		}
	}
	data, err := json.MarshalIndent(jm, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode map: %w", err)
	}
	return append(data, '\n'), nil
}

// Save writes the map as indented JSON.
func (m *Map) Save(path string) error {
	data, err := m.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write map file: %w", err)
	}
	return nil
}

// BrushAt returns the brush painted at (row, col), or nil.
func (m *Map) BrushAt(row, col int) *Brush {
	if row < 0 || row >= m.Height || col < 0 || col >= m.Width {
		return nil
	}
	idx := m.Cells[row][col]
	if idx < 0 || idx >= len(m.Brushes) {
		return nil
	}
	return &m.Brushes[idx]
}

// Paint sets (row, col) to brush idx at the given rotation. Out-of-range
// coordinates are ignored.
func (m *Map) Paint(row, col, idx, rotation int) {
	if row < 0 || row >= m.Height || col < 0 || col >= m.Width {
		return
	}
	m.Cells[row][col] = idx
	m.Rotations[row][col] = ((rotation % 4) + 4) % 4
}

// LoadMaps scans a directory for *.json files, loads each as a Map,
// and returns them indexed by Name.
func LoadMaps(dir string) (map[string]*Map, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read maps directory: %w", err)
	}

	allMaps := make(map[string]*Map)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		m, err := LoadMap(path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", entry.Name(), err)
		}
		if _, exists := allMaps[m.Name]; exists {
			return nil, fmt.Errorf("duplicate map name %q in %s", m.Name, entry.Name())
		}
		allMaps[m.Name] = m
	}
	return allMaps, nil
}

// DefaultMap returns a small island map if no JSON file is available.
func DefaultMap() *Map {
	w, h := 24, 12
	m := NewMap("Default", w, h)
	m.Brushes = []Brush{
		{Name: "water", Char: '~', Fg: 34},
		{Name: "grass", Group: 1, Char: '.', Fg: 32, Rules: orient.Rules{Coalesce: orient.CoalesceOwn}},
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx, dy := float64(x-w/2)/float64(w/2), float64(y-h/2)/float64(h/2)
			if dx*dx+dy*dy < 0.6 {
				m.Cells[y][x] = 1
			} else {
				m.Cells[y][x] = 0
			}
		}
	}
	return m
}
