package orient

import (
	"errors"
	"fmt"
	"strings"
)

// Coalesce selects which neighbouring occupants count as connected.
type Coalesce int

const (
	// CoalesceNone disables orientation; every cell resolves to mask 0.
	CoalesceNone Coalesce = iota
	// CoalesceOwn connects occupants painted with the same brush.
	CoalesceOwn
	// CoalesceOther connects occupants painted with a different brush.
	CoalesceOther
	// CoalesceAny connects every occupant.
	CoalesceAny
	// CoalesceGroups connects occupants whose group is in Rules.Groups.
	CoalesceGroups
	// CoalesceOwnAndGroups combines CoalesceOwn and CoalesceGroups.
	CoalesceOwnAndGroups
)

var coalesceNames = [...]string{"none", "own", "other", "any", "groups", "own_and_groups"}

// ErrInvalidCoalesce is returned by ParseCoalesce for unknown names.
var ErrInvalidCoalesce = errors.New("invalid coalesce rule")

func (c Coalesce) String() string {
	if c < 0 || int(c) >= len(coalesceNames) {
		return fmt.Sprintf("Coalesce(%d)", int(c))
	}
	return coalesceNames[c]
}

// ParseCoalesce converts a rule name such as "own_and_groups" to a Coalesce.
// Matching ignores case and accepts '-' in place of '_'.
func ParseCoalesce(s string) (Coalesce, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	if norm == "" {
		return CoalesceNone, nil
	}
	for i, name := range coalesceNames {
		if name == norm {
			return Coalesce(i), nil
		}
	}
	return CoalesceNone, fmt.Errorf("%w: %q", ErrInvalidCoalesce, s)
}

// Rules is the coalescing policy of the brush being resolved.
type Rules struct {
	Coalesce Coalesce
	// Groups is consulted by CoalesceGroups and CoalesceOwnAndGroups.
	Groups map[int]bool
	// CoalesceWithRotated lets neighbours painted at a different rotation
	// still count as connected.
	CoalesceWithRotated bool
	// CoalesceWithBorder treats the edge of the grid as a connected neighbour.
	CoalesceWithBorder bool
}

// Occupant describes the tile painted in a grid cell.
type Occupant interface {
	Identity() string
	Group() int
	Rotation() int
}

// Grid is the query surface the resolver reads neighbours from.
type Grid interface {
	RowCount() int
	ColumnCount() int
	TryGetOccupant(row, col int) (Occupant, bool)
}

// neighbourOffsets lists (row, col) deltas in bit position order.
var neighbourOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// DetermineOrientation computes the orientation mask of the cell at
// (row, col) for a tile with the given identity painted at rotation
// (clockwise quarter turns). The result is expressed in the tile's
// unrotated frame.
func DetermineOrientation(g Grid, row, col int, identity string, rules Rules, rotation int) Mask {
	if rules.Coalesce == CoalesceNone {
		return None
	}

	var mask Mask
	for i, off := range neighbourOffsets {
		occ, ok := g.TryGetOccupant(row+off[0], col+off[1])
		if !ok || occ == nil {
			continue
		}
		if !rules.coalesces(identity, occ) {
			continue
		}
		if !rules.CoalesceWithRotated && occ.Rotation() != rotation {
			continue
		}
		mask |= Bit(i)
	}

	if rules.CoalesceWithBorder {
		mask = coalesceBorder(mask, row, col, g.RowCount(), g.ColumnCount())
	}

	return RotateAntiClockwise(mask, rotation)
}

func (r Rules) coalesces(identity string, occ Occupant) bool {
	switch r.Coalesce {
	case CoalesceOwn:
		return occ.Identity() == identity
	case CoalesceOther:
		return occ.Identity() != identity
	case CoalesceAny:
		return true
	case CoalesceGroups:
		return r.Groups[occ.Group()]
	case CoalesceOwnAndGroups:
		return occ.Identity() == identity || r.Groups[occ.Group()]
	}
	return false
}

// coalesceBorder marks the grid edge as connected. A diagonal outside the
// grid is set once both cardinals beside it are connected, which covers
// convex grid corners as well as real neighbours running along an edge.
func coalesceBorder(mask Mask, row, col, rows, cols int) Mask {
	top := row == 0
	bottom := row == rows-1
	left := col == 0
	right := col == cols-1

	if top {
		mask |= Top
	}
	if bottom {
		mask |= Bottom
	}
	if left {
		mask |= Left
	}
	if right {
		mask |= Right
	}

	if (top || left) && mask.Has(Top|Left) {
		mask |= TopLeft
	}
	if (top || right) && mask.Has(Top|Right) {
		mask |= TopRight
	}
	if (bottom || left) && mask.Has(Bottom|Left) {
		mask |= BottomLeft
	}
	if (bottom || right) && mask.Has(Bottom|Right) {
		mask |= BottomRight
	}
	return mask
}
