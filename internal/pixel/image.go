package pixel

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/disintegration/imaging"
)

// LoadOptions controls how decoded images are converted to buffers.
type LoadOptions struct {
	// ColorKey, when set, is treated as fully transparent.
	ColorKey *Color
	// AlphaThreshold snaps pixels with alpha below it to transparent.
	AlphaThreshold uint8
}

// Magenta is the conventional sprite color key (#FF00FF).
var Magenta = RGB(0xFF, 0x00, 0xFF)

// FromImage converts an image to a bottom-origin buffer.
func FromImage(img image.Image, opts LoadOptions) *Buffer {
	nrgba := imaging.Clone(img)
	w, h := nrgba.Bounds().Dx(), nrgba.Bounds().Dy()
	buf := NewBuffer(w, h)
	view := buf.TopDown()

	for y := 0; y < h; y++ {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+w*4]
		for x := 0; x < w; x++ {
			c := Color{R: row[x*4], G: row[x*4+1], B: row[x*4+2], A: row[x*4+3]}
			if c.A < opts.AlphaThreshold {
				c = Transparent
			}
			if opts.ColorKey != nil && c.A != 0 &&
				c.R == opts.ColorKey.R && c.G == opts.ColorKey.G && c.B == opts.ColorKey.B {
				c = Transparent
			}
			view.Set(x, y, c)
		}
	}
	return buf
}

// ToImage converts the buffer to a top-down *image.NRGBA.
func (b *Buffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	view := b.TopDown()
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := view.At(x, y)
			i := y*img.Stride + x*4
			img.Pix[i+0] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = c.A
		}
	}
	return img
}

// LoadPNG reads a PNG file into a buffer.
func LoadPNG(path string, opts LoadOptions) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return FromImage(img, opts), nil
}

// SavePNG writes the buffer to a PNG file.
func (b *Buffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := png.Encode(f, b.ToImage()); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
