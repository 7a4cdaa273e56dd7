package render

import (
	"image"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"

	"tilesystem/internal/pixel"
)

// Fit scales img down or up to the largest size that fits maxW × maxH
// without changing its aspect ratio. Scaling is nearest-neighbour so
// pixel art stays crisp.
func Fit(img *pixel.Buffer, maxW, maxH int) *pixel.Buffer {
	w, h := img.Width(), img.Height()
	if w == 0 || h == 0 || maxW <= 0 || maxH <= 0 {
		return pixel.NewBuffer(0, 0)
	}
	scale := min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	dw := max(1, int(float64(w)*scale))
	dh := max(1, int(float64(h)*scale))
	return Scale(img, dw, dh)
}

// Scale resizes img to exactly w × h using nearest-neighbour sampling.
func Scale(img *pixel.Buffer, w, h int) *pixel.Buffer {
	if img.Width() == w && img.Height() == h {
		return img
	}
	src := img.ToImage()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return pixel.FromImage(dst, pixel.LoadOptions{})
}

// Crop copies the viewport region of img into a new buffer.
func Crop(img *pixel.Buffer, vp Viewport) *pixel.Buffer {
	out := pixel.NewBuffer(vp.ViewW, vp.ViewH)
	out.TopDown().CopyRect(0, 0, img.TopDown(), vp.CamX, vp.CamY, vp.ViewW, vp.ViewH)
	return out
}

// RotateClockwise returns img turned clockwise by steps quarter turns.
func RotateClockwise(img *pixel.Buffer, steps int) *pixel.Buffer {
	var out *image.NRGBA
	switch ((steps % 4) + 4) % 4 {
	case 0:
		return img.Clone()
	case 1:
		out = imaging.Rotate270(img.ToImage())
	case 2:
		out = imaging.Rotate180(img.ToImage())
	case 3:
		out = imaging.Rotate90(img.ToImage())
	}
	return pixel.FromImage(out, pixel.LoadOptions{})
}
