package maps

import "tilesystem/internal/orient"

// cell is the occupant view of one painted cell.
type cell struct {
	brush    *Brush
	rotation int
}

func (c cell) Identity() string { return c.brush.Name }
func (c cell) Group() int       { return c.brush.Group }
func (c cell) Rotation() int    { return c.rotation }

// RowCount implements orient.Grid.
func (m *Map) RowCount() int { return m.Height }

// ColumnCount implements orient.Grid.
func (m *Map) ColumnCount() int { return m.Width }

// TryGetOccupant implements orient.Grid. Empty and out-of-range cells
// report false.
func (m *Map) TryGetOccupant(row, col int) (orient.Occupant, bool) {
	b := m.BrushAt(row, col)
	if b == nil {
		return nil, false
	}
	return cell{brush: b, rotation: m.Rotations[row][col]}, true
}

// Orientation resolves the mask of the cell at (row, col) using the
// painted brush's rules. Brushes that do not coalesce resolve to
// orient.None. ok is false for empty cells.
func (m *Map) Orientation(row, col int) (mask orient.Mask, b *Brush, ok bool) {
	b = m.BrushAt(row, col)
	if b == nil {
		return orient.None, nil, false
	}
	if !b.Coalescable() {
		return orient.None, b, true
	}
	rot := m.Rotations[row][col]
	return orient.DetermineOrientation(m, row, col, b.Name, b.Rules, rot), b, true
}

// Orientations resolves every painted cell. Empty cells hold orient.None.
func (m *Map) Orientations() [][]orient.Mask {
	out := make([][]orient.Mask, m.Height)
	for row := range out {
		out[row] = make([]orient.Mask, m.Width)
		for col := range out[row] {
			out[row][col], _, _ = m.Orientation(row, col)
		}
	}
	return out
}
