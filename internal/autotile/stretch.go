package autotile

import "tilesystem/internal/pixel"

// applyStretch fills the w×h cell at image-space (ox, oy) of dst by
// replicating pixels adjacent to the cell. Source pixels must already be
// populated.
func applyStretch(dst pixel.TopDown, kind StretchKind, ox, oy, w, h int) {
	switch kind {
	case StretchUp:
		for x := 0; x < w; x++ {
			c := dst.At(ox+x, oy+h)
			for y := 0; y < h; y++ {
				dst.Set(ox+x, oy+y, c)
			}
		}
	case StretchDown:
		for x := 0; x < w; x++ {
			c := dst.At(ox+x, oy-1)
			for y := 0; y < h; y++ {
				dst.Set(ox+x, oy+y, c)
			}
		}
	case StretchLeft:
		for y := 0; y < h; y++ {
			c := dst.At(ox+w, oy+y)
			for x := 0; x < w; x++ {
				dst.Set(ox+x, oy+y, c)
			}
		}
	case StretchRight:
		for y := 0; y < h; y++ {
			c := dst.At(ox-1, oy+y)
			for x := 0; x < w; x++ {
				dst.Set(ox+x, oy+y, c)
			}
		}
	case CornerTopLeft:
		dst.FillRect(ox, oy, w, h, dst.At(ox+w, oy+h))
	case CornerTopRight:
		dst.FillRect(ox, oy, w, h, dst.At(ox-1, oy+h))
	case CornerBottomLeft:
		dst.FillRect(ox, oy, w, h, dst.At(ox+w, oy-1))
	case CornerBottomRight:
		dst.FillRect(ox, oy, w, h, dst.At(ox-1, oy-1))
	case TaperTopLeft, TaperTopRight, TaperBottomLeft, TaperBottomRight:
		applyTaper(dst, kind, ox, oy, w, h)
	}
}

// applyTaper blends a vertical and a horizontal stretch across a corner
// cell. For the row dy pixels away from the inner corner, the run of
// w - dy*w/h pixels nearest the inner corner column repeats the adjacent
// row (vertical source); the remaining pixels repeat the adjacent column
// (horizontal source).
func applyTaper(dst pixel.TopDown, kind StretchKind, ox, oy, w, h int) {
	top := kind == TaperTopLeft || kind == TaperTopRight
	left := kind == TaperTopLeft || kind == TaperBottomLeft

	// Row and column just outside the cell on the inner-corner side.
	srcRow, srcCol := oy-1, ox-1
	if top {
		srcRow = oy + h
	}
	if left {
		srcCol = ox + w
	}

	for ly := 0; ly < h; ly++ {
		dy := ly
		if top {
			dy = h - 1 - ly
		}
		run := TaperRun(dy, w, h)
		for lx := 0; lx < w; lx++ {
			dx := lx
			if left {
				dx = w - 1 - lx
			}
			var c pixel.Color
			if dx < run {
				c = dst.At(ox+lx, srcRow)
			} else {
				c = dst.At(srcCol, oy+ly)
			}
			dst.Set(ox+lx, oy+ly, c)
		}
	}
}

// TaperRun returns how many pixels of the row dy pixels away from the
// inner corner come from the vertical stretch source.
func TaperRun(dy, w, h int) int {
	return w - dy*w/h
}
