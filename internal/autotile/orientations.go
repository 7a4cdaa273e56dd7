package autotile

import (
	"fmt"

	"tilesystem/internal/orient"
)

// JoinedOrientationCount and JoinlessOrientationCount are the number of
// atlas tiles produced with and without inner joins.
const (
	JoinedOrientationCount   = 47
	JoinlessOrientationCount = 16
)

// joinedOrientations lists the mask of each joined table row in order.
var joinedOrientations = [JoinedOrientationCount]orient.Mask{
	0x00, 0x02, 0x08, 0x0B, 0x10, 0x16, 0x18, 0x1F,
	0x40, 0x42, 0x68, 0x6B, 0xD0, 0xD6, 0xF8, 0x5A,
	0x0A, 0x12, 0x1A, 0x1B, 0x1E, 0x48, 0x4A, 0x4B,
	0x50, 0x52, 0x56, 0x58, 0x5B, 0x5E, 0x5F, 0x6A,
	0x78, 0x7A, 0x7B, 0x7E, 0x7F, 0xD2, 0xD8, 0xDA,
	0xDB, 0xDE, 0xDF, 0xFA, 0xFB, 0xFE, 0xFF,
}

// cornerRow is the joins-less row replaced by the corner composite.
const cornerRow = JoinlessOrientationCount - 1

type orientationMap struct {
	rows   [][16]FragmentRef
	masks  []orient.Mask
	index  map[orient.Mask]int
	ground *[16]FragmentRef
}

var (
	basicJoinedMap      = newOrientationMap(basicJoined, joinedOrientations[:], nil)
	extendedJoinedMap   = newOrientationMap(extendedJoined, joinedOrientations[:], &extendedGround)
	basicJoinlessMap    = newOrientationMap(deriveJoinless(basicJoined, basicCorner, 8), joinlessOrientations(), nil)
	extendedJoinlessMap = newOrientationMap(deriveJoinless(extendedJoined, extendedCorner, 12), joinlessOrientations(), nil)
)

func newOrientationMap(rows [][16]FragmentRef, masks []orient.Mask, ground *[16]FragmentRef) *orientationMap {
	if len(rows) != len(masks) {
		panic(fmt.Sprintf("autotile: %d table rows for %d orientations", len(rows), len(masks)))
	}
	index := make(map[orient.Mask]int, len(masks))
	for i, m := range masks {
		index[m] = i
	}
	return &orientationMap{rows: rows, masks: masks, index: index, ground: ground}
}

// deriveJoinless keeps the first 16 rows of a joined table, swaps in the
// corner composite and re-bases fragment indices onto artwork without the
// inner-join row.
func deriveJoinless(joined [][16]FragmentRef, corner [16]FragmentRef, offset uint8) [][16]FragmentRef {
	rows := make([][16]FragmentRef, JoinlessOrientationCount)
	copy(rows, joined[:JoinlessOrientationCount])
	rows[cornerRow] = corner
	for i := range rows {
		for j := range rows[i] {
			rows[i][j] = rows[i][j].offset(offset)
		}
	}
	return rows
}

func joinlessOrientations() []orient.Mask {
	masks := make([]orient.Mask, JoinlessOrientationCount)
	copy(masks, joinedOrientations[:JoinlessOrientationCount])
	masks[cornerRow] = orient.All
	return masks
}

func lookupOrientationMap(layout Layout, innerJoins bool) (*orientationMap, error) {
	switch {
	case layout == Basic && innerJoins:
		return basicJoinedMap, nil
	case layout == Basic:
		return basicJoinlessMap, nil
	case layout == Extended && innerJoins:
		return extendedJoinedMap, nil
	case layout == Extended:
		return extendedJoinlessMap, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnsupportedLayout, int(layout))
}

// OrientationCount returns the number of atlas tiles generated with or
// without inner joins.
func OrientationCount(innerJoins bool) int {
	if innerJoins {
		return JoinedOrientationCount
	}
	return JoinlessOrientationCount
}

// Orientations returns the mask of each atlas tile in generation order.
func Orientations(innerJoins bool) []orient.Mask {
	if innerJoins {
		out := make([]orient.Mask, JoinedOrientationCount)
		copy(out, joinedOrientations[:])
		return out
	}
	return joinlessOrientations()
}

// Canonicalize reduces a resolved mask to one of the canonical
// orientations. Diagonals only matter when both adjacent cardinals are
// connected; without inner joins such diagonals are treated as connected.
func Canonicalize(m orient.Mask, innerJoins bool) orient.Mask {
	type corner struct{ diag, a, b orient.Mask }
	corners := [...]corner{
		{orient.TopLeft, orient.Top, orient.Left},
		{orient.TopRight, orient.Top, orient.Right},
		{orient.BottomLeft, orient.Bottom, orient.Left},
		{orient.BottomRight, orient.Bottom, orient.Right},
	}
	for _, c := range corners {
		switch {
		case !m.Has(c.a | c.b):
			m &^= c.diag
		case !innerJoins:
			m |= c.diag
		}
	}
	return m
}

// AtlasIndex returns the atlas tile index for a resolved orientation mask.
func AtlasIndex(m orient.Mask, innerJoins bool) int {
	c := Canonicalize(m, innerJoins)
	var idx map[orient.Mask]int
	if innerJoins {
		idx = basicJoinedMap.index
	} else {
		idx = basicJoinlessMap.index
	}
	return idx[c]
}
