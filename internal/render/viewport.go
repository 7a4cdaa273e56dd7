package render

// Viewport is the window of an image shown when it is larger than the
// terminal. Coordinates are image pixels.
type Viewport struct {
	CamX, CamY   int // top-left image coordinate
	ViewW, ViewH int // viewport size in pixels
}

// NewViewport calculates the camera position centered on (focusX, focusY),
// clamped to the image edges.
func NewViewport(focusX, focusY, viewW, viewH, imgW, imgH int) Viewport {
	camX := focusX - viewW/2
	camY := focusY - viewH/2

	// Clamp to image edges
	if camX+viewW > imgW {
		camX = imgW - viewW
	}
	if camY+viewH > imgH {
		camY = imgH - viewH
	}
	if camX < 0 {
		camX = 0
	}
	if camY < 0 {
		camY = 0
	}

	return Viewport{
		CamX:  camX,
		CamY:  camY,
		ViewW: min(viewW, imgW),
		ViewH: min(viewH, imgH),
	}
}

// Contains reports whether the image pixel (x, y) is inside the viewport.
func (v Viewport) Contains(x, y int) bool {
	return x >= v.CamX && x < v.CamX+v.ViewW && y >= v.CamY && y < v.CamY+v.ViewH
}
