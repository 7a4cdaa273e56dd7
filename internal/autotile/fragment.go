package autotile

import "fmt"

// StretchKind names a pixel-stretch operator used to synthesise a sub-tile
// that has no concrete source fragment.
type StretchKind uint8

// Stretch operators. Cell coordinates are image space (y grows downward).
const (
	// StretchUp (XA) repeats the row directly below the cell upward.
	StretchUp StretchKind = iota + 1
	// StretchDown (XB) repeats the row directly above the cell downward.
	StretchDown
	// StretchLeft (XC) repeats the column directly right of the cell leftward.
	StretchLeft
	// StretchRight (XD) repeats the column directly left of the cell rightward.
	StretchRight
	// CornerTopLeft (XE) floods the cell with the pixel diagonally below-right.
	CornerTopLeft
	// CornerTopRight (XF) floods the cell with the pixel diagonally below-left.
	CornerTopRight
	// CornerBottomLeft (XG) floods the cell with the pixel diagonally above-right.
	CornerBottomLeft
	// CornerBottomRight (XH) floods the cell with the pixel diagonally above-left.
	CornerBottomRight
	// TaperTopLeft (X1) blends StretchUp and StretchLeft along a diagonal.
	TaperTopLeft
	// TaperTopRight (X2) blends StretchUp and StretchRight.
	TaperTopRight
	// TaperBottomLeft (X3) blends StretchDown and StretchLeft.
	TaperBottomLeft
	// TaperBottomRight (X4) blends StretchDown and StretchRight.
	TaperBottomRight
)

var stretchNames = [...]string{
	StretchUp:         "XA",
	StretchDown:       "XB",
	StretchLeft:       "XC",
	StretchRight:      "XD",
	CornerTopLeft:     "XE",
	CornerTopRight:    "XF",
	CornerBottomLeft:  "XG",
	CornerBottomRight: "XH",
	TaperTopLeft:      "X1",
	TaperTopRight:     "X2",
	TaperBottomLeft:   "X3",
	TaperBottomRight:  "X4",
}

func (k StretchKind) String() string {
	if int(k) < len(stretchNames) && stretchNames[k] != "" {
		return stretchNames[k]
	}
	return fmt.Sprintf("StretchKind(%d)", uint8(k))
}

// FragmentRef is one entry of an orientation map: either a concrete source
// fragment index or a stretch operator.
type FragmentRef struct {
	index   uint8
	stretch StretchKind
}

// Concrete references source fragment i.
func Concrete(i uint8) FragmentRef {
	return FragmentRef{index: i}
}

// Stretch references a stretch operator.
func Stretch(k StretchKind) FragmentRef {
	return FragmentRef{stretch: k}
}

// IsStretch reports whether the reference is a stretch operator.
func (r FragmentRef) IsStretch() bool {
	return r.stretch != 0
}

// Index returns the concrete fragment index and true, or 0 and false for a
// stretch reference.
func (r FragmentRef) Index() (uint8, bool) {
	if r.stretch != 0 {
		return 0, false
	}
	return r.index, true
}

// Kind returns the stretch operator, or 0 for a concrete reference.
func (r FragmentRef) Kind() StretchKind {
	return r.stretch
}

// offset returns a concrete reference shifted down by n fragments.
// Stretch references are returned unchanged.
func (r FragmentRef) offset(n uint8) FragmentRef {
	if r.stretch != 0 {
		return r
	}
	return FragmentRef{index: r.index - n}
}

func (r FragmentRef) String() string {
	if r.stretch != 0 {
		return r.stretch.String()
	}
	return fmt.Sprintf("%d", r.index)
}
