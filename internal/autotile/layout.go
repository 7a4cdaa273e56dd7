// Package autotile expands compact autotile artwork into a complete tileset
// atlas with one tile per canonical orientation.
//
// Autotile artwork is a grid of half-tile fragments. The Basic layout is two
// tiles wide, the Extended layout three. With inner joins enabled an extra
// tile row at the top of the artwork supplies the concave corner fragments
// (and, for Extended, a seamless ground tile).
package autotile

import (
	"errors"
	"fmt"
	"strings"
)

// Layout identifies the arrangement of fragments in the source artwork.
type Layout int

const (
	// Basic artwork is 2 tiles wide: 2×2 tiles of outline plus an optional
	// inner-join row.
	Basic Layout = iota
	// Extended artwork is 3 tiles wide: 3×3 tiles of outline plus an
	// optional row holding inner joins and the ground tile.
	Extended
)

var (
	// ErrUnsupportedLayout is returned for layout values outside the enum.
	ErrUnsupportedLayout = errors.New("unsupported autotile layout")
	// ErrOddTileSize is returned when a tile dimension is not even.
	ErrOddTileSize = errors.New("tile width and height must be even")
	// ErrInvalidTileSize is returned for zero or negative tile dimensions.
	ErrInvalidTileSize = errors.New("tile width and height must be positive")
	// ErrNilSource is returned when no source artwork is supplied.
	ErrNilSource = errors.New("autotile source artwork is nil")
)

func (l Layout) String() string {
	switch l {
	case Basic:
		return "basic"
	case Extended:
		return "extended"
	}
	return fmt.Sprintf("Layout(%d)", int(l))
}

// ParseLayout converts "basic" or "extended" (any case) to a Layout.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "basic":
		return Basic, nil
	case "extended":
		return Extended, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedLayout, s)
}

// FragmentsPerRow returns the number of half-tile fragments in one row of
// the source artwork.
func (l Layout) FragmentsPerRow() (int, error) {
	switch l {
	case Basic:
		return 4, nil
	case Extended:
		return 6, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrUnsupportedLayout, int(l))
}

// FragmentRows returns the number of fragment rows the source artwork must
// provide.
func (l Layout) FragmentRows(innerJoins bool) (int, error) {
	var rows int
	switch l {
	case Basic:
		rows = 4
	case Extended:
		rows = 6
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedLayout, int(l))
	}
	if innerJoins {
		rows += 2
	}
	return rows, nil
}

// SourceSize returns the pixel dimensions of artwork for the given tile size.
func (l Layout) SourceSize(tileWidth, tileHeight int, innerJoins bool) (int, int, error) {
	perRow, err := l.FragmentsPerRow()
	if err != nil {
		return 0, 0, err
	}
	rows, err := l.FragmentRows(innerJoins)
	if err != nil {
		return 0, 0, err
	}
	return perRow * tileWidth / 2, rows * tileHeight / 2, nil
}
