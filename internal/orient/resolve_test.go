package orient

import (
	"errors"
	"testing"
)

type testOccupant struct {
	identity string
	group    int
	rotation int
}

func (o testOccupant) Identity() string { return o.identity }
func (o testOccupant) Group() int       { return o.group }
func (o testOccupant) Rotation() int    { return o.rotation }

type testGrid struct {
	cells [][]*testOccupant
}

func (g *testGrid) RowCount() int    { return len(g.cells) }
func (g *testGrid) ColumnCount() int { return len(g.cells[0]) }

func (g *testGrid) TryGetOccupant(row, col int) (Occupant, bool) {
	if row < 0 || row >= len(g.cells) || col < 0 || col >= len(g.cells[row]) {
		return nil, false
	}
	occ := g.cells[row][col]
	if occ == nil {
		return nil, false
	}
	return *occ, true
}

// buildTestGrid creates a grid from rows of brush names; "." is empty.
// Brush "rock" is placed in group 2, everything else in group 1.
func buildTestGrid(rows ...[]string) *testGrid {
	g := &testGrid{}
	for _, row := range rows {
		cells := make([]*testOccupant, len(row))
		for i, name := range row {
			if name == "." {
				continue
			}
			group := 1
			if name == "rock" {
				group = 2
			}
			cells[i] = &testOccupant{identity: name, group: group}
		}
		g.cells = append(g.cells, cells)
	}
	return g
}

func TestDetermineOrientationSurroundedAndIsolated(t *testing.T) {
	full := buildTestGrid(
		[]string{"water", "water", "water"},
		[]string{"water", "water", "water"},
		[]string{"water", "water", "water"},
	)
	own := Rules{Coalesce: CoalesceOwn}
	if got := DetermineOrientation(full, 1, 1, "water", own, 0); got != All {
		t.Errorf("surrounded cell = %s, want 11111111", got)
	}

	alone := buildTestGrid(
		[]string{".", ".", "."},
		[]string{".", "water", "."},
		[]string{".", ".", "."},
	)
	if got := DetermineOrientation(alone, 1, 1, "water", own, 0); got != None {
		t.Errorf("isolated cell = %s, want 00000000", got)
	}
}

func TestDetermineOrientationCoalesceRules(t *testing.T) {
	//   water rock  grass
	//   rock  [w]   water
	//   .     grass water
	g := buildTestGrid(
		[]string{"water", "rock", "grass"},
		[]string{"rock", "water", "water"},
		[]string{".", "grass", "water"},
	)

	tests := []struct {
		name  string
		rules Rules
		want  Mask
	}{
		{"none", Rules{Coalesce: CoalesceNone}, None},
		{"own", Rules{Coalesce: CoalesceOwn}, TopLeft | Right | BottomRight},
		{"other", Rules{Coalesce: CoalesceOther}, Top | TopRight | Left | Bottom},
		{"any", Rules{Coalesce: CoalesceAny}, All &^ BottomLeft},
		{"groups", Rules{Coalesce: CoalesceGroups, Groups: map[int]bool{2: true}}, Top | Left},
		{"own and groups", Rules{Coalesce: CoalesceOwnAndGroups, Groups: map[int]bool{2: true}},
			TopLeft | Top | Left | Right | BottomRight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetermineOrientation(g, 1, 1, "water", tt.rules, 0)
			if got != tt.want {
				t.Errorf("mask = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDetermineOrientationRotation(t *testing.T) {
	g := buildTestGrid(
		[]string{".", "pipe", "."},
		[]string{".", "pipe", "."},
		[]string{".", ".", "."},
	)
	g.cells[0][1].rotation = 1
	g.cells[1][1].rotation = 1

	own := Rules{Coalesce: CoalesceOwn}

	// Painted one quarter turn clockwise: the neighbour above is the
	// tile's own left side.
	if got := DetermineOrientation(g, 1, 1, "pipe", own, 1); got != Left {
		t.Errorf("rotated mask = %s, want %s", got, Left)
	}

	// A neighbour at a different rotation is ignored unless allowed.
	g.cells[0][1].rotation = 0
	if got := DetermineOrientation(g, 1, 1, "pipe", own, 1); got != None {
		t.Errorf("mismatched rotation = %s, want %s", got, None)
	}
	own.CoalesceWithRotated = true
	if got := DetermineOrientation(g, 1, 1, "pipe", own, 1); got != Left {
		t.Errorf("rotation-agnostic mask = %s, want %s", got, Left)
	}
}

func TestDetermineOrientationBorder(t *testing.T) {
	rules := Rules{Coalesce: CoalesceOwn, CoalesceWithBorder: true}

	single := buildTestGrid([]string{"water"})
	if got := DetermineOrientation(single, 0, 0, "water", rules, 0); got != All {
		t.Errorf("single-cell grid = %s, want 11111111", got)
	}

	g := buildTestGrid(
		[]string{"water", "water", "."},
		[]string{"water", ".", "."},
		[]string{".", ".", "."},
	)

	tests := []struct {
		name     string
		row, col int
		want     Mask
	}{
		// Convex corner: only the empty interior diagonal stays clear.
		{"top-left corner", 0, 0, All &^ BottomRight},
		// Top edge with a real neighbour to the left implies top-left.
		{"top edge", 0, 1, TopLeft | Top | Left | BottomLeft},
		{"left edge", 1, 0, TopLeft | Top | TopRight | Left},
		{"interior", 1, 1, TopLeft | Top | Left},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetermineOrientation(g, tt.row, tt.col, "water", rules, 0)
			if got != tt.want {
				t.Errorf("mask = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParseCoalesce(t *testing.T) {
	tests := []struct {
		in   string
		want Coalesce
	}{
		{"", CoalesceNone},
		{"own", CoalesceOwn},
		{"Other", CoalesceOther},
		{"ANY", CoalesceAny},
		{"groups", CoalesceGroups},
		{"own-and-groups", CoalesceOwnAndGroups},
	}
	for _, tt := range tests {
		got, err := ParseCoalesce(tt.in)
		if err != nil {
			t.Errorf("ParseCoalesce(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCoalesce(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if tt.in != "" && got.String() == "" {
			t.Errorf("%v has no name", got)
		}
	}

	if _, err := ParseCoalesce("sometimes"); !errors.Is(err, ErrInvalidCoalesce) {
		t.Errorf("unknown rule error = %v, want ErrInvalidCoalesce", err)
	}
}
