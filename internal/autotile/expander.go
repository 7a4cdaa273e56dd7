package autotile

import (
	"context"
	"fmt"

	"tilesystem/internal/orient"
	"tilesystem/internal/pixel"
	"tilesystem/internal/tileset"
)

// minAtlasSize is the starting edge length of the atlas search.
const minAtlasSize = 64

// progressInterval is how many orientations pass between progress reports.
const progressInterval = 10

// Options configures an Expander.
type Options struct {
	TileWidth  int
	TileHeight int
	// InnerJoins selects the 47-orientation tables; the artwork must then
	// carry the extra inner-join row.
	InnerJoins bool
	// BorderSize pads every atlas tile on each side. Clamped to
	// [0, min(TileWidth, TileHeight)/2].
	BorderSize int
	// ClampEdges keeps stretched border pixels even when a ground tile
	// is available to sample instead.
	ClampEdges bool
}

// Expander turns autotile artwork into an atlas. It owns a scratch buffer
// reused between Generate calls and is not safe for concurrent use.
type Expander struct {
	layout  Layout
	src     pixel.TopDown
	opts    Options
	halfW   int
	halfH   int
	perRow  int
	table   *orientationMap
	scratch *pixel.Buffer
}

// New validates the artwork parameters and prepares an Expander.
func New(layout Layout, src *pixel.Buffer, opts Options) (*Expander, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if opts.TileWidth <= 0 || opts.TileHeight <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidTileSize, opts.TileWidth, opts.TileHeight)
	}
	if opts.TileWidth%2 != 0 || opts.TileHeight%2 != 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrOddTileSize, opts.TileWidth, opts.TileHeight)
	}
	perRow, err := layout.FragmentsPerRow()
	if err != nil {
		return nil, err
	}
	table, err := lookupOrientationMap(layout, opts.InnerJoins)
	if err != nil {
		return nil, err
	}
	opts.BorderSize = clampBorder(opts.BorderSize, opts.TileWidth, opts.TileHeight)

	wantW, wantH, _ := layout.SourceSize(opts.TileWidth, opts.TileHeight, opts.InnerJoins)
	if src.Width() < wantW || src.Height() < wantH {
		Logger().Warn("autotile artwork smaller than fragment grid",
			"layout", layout.String(),
			"width", src.Width(), "height", src.Height(),
			"want_width", wantW, "want_height", wantH)
	}

	return &Expander{
		layout:  layout,
		src:     src.TopDown(),
		opts:    opts,
		halfW:   opts.TileWidth / 2,
		halfH:   opts.TileHeight / 2,
		perRow:  perRow,
		table:   table,
		scratch: pixel.NewBuffer(2*opts.TileWidth, 2*opts.TileHeight),
	}, nil
}

func clampBorder(border, tileWidth, tileHeight int) int {
	limit := min(tileWidth, tileHeight) / 2
	return max(0, min(border, limit))
}

// Layout returns the artwork layout.
func (e *Expander) Layout() Layout { return e.layout }

// Options returns the effective options, with the border size clamped.
func (e *Expander) Options() Options { return e.opts }

// OrientationCount returns the number of tiles Generate produces.
func (e *Expander) OrientationCount() int {
	return len(e.table.rows)
}

// Orientations returns the mask of each generated tile in atlas order.
func (e *Expander) Orientations() []orient.Mask {
	out := make([]orient.Mask, len(e.table.masks))
	copy(out, e.table.masks)
	return out
}

// AtlasIndex returns the atlas tile used for a resolved orientation mask.
func (e *Expander) AtlasIndex(m orient.Mask) int {
	return AtlasIndex(m, e.opts.InnerJoins)
}

// OuterSize returns the size of one atlas tile including its border.
func (e *Expander) OuterSize() (int, int) {
	b := e.opts.BorderSize
	return e.opts.TileWidth + 2*b, e.opts.TileHeight + 2*b
}

// CalculateMetrics returns the atlas dimensions and the number of pixels
// no tile occupies.
func (e *Expander) CalculateMetrics() (width, height, unused int) {
	ow, oh := e.OuterSize()
	count := e.OrientationCount()

	width, height = minAtlasSize, minAtlasSize
	for (width/ow)*(height/oh) < count {
		width *= 2
		height *= 2
	}

	cols := width / ow
	need := (count + cols - 1) / cols * oh
	for height/2 >= minAtlasSize && height/2 >= need {
		height /= 2
	}

	unused = width*height - count*ow*oh
	return width, height, unused
}

// Metrics returns packing metrics for the atlas Generate produces.
func (e *Expander) Metrics() tileset.Metrics {
	w, h, _ := e.CalculateMetrics()
	return tileset.NewMetrics(w, h, e.opts.TileWidth, e.opts.TileHeight, e.opts.BorderSize, e.OrientationCount())
}

// Generate renders every orientation into a new atlas. progress, if not
// nil, is called every ten orientations and once at the end. ctx is
// checked before each orientation.
func (e *Expander) Generate(ctx context.Context, progress func(done, total int)) (*pixel.Buffer, error) {
	width, height, unused := e.CalculateMetrics()
	ow, oh := e.OuterSize()
	total := e.OrientationCount()

	log := Logger()
	log.Debug("expanding autotile",
		"layout", e.layout.String(),
		"inner_joins", e.opts.InnerJoins,
		"orientations", total,
		"atlas_width", width, "atlas_height", height,
		"unused", unused)

	atlas := pixel.NewBuffer(width, height)
	dst := atlas.TopDown()
	scratch := e.scratch.TopDown()

	x, y := 0, 0
	for i, row := range e.table.rows {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("generate orientation %d: %w", i, err)
		}

		e.compose(&row)

		if x+ow > width {
			x = 0
			y += oh
		}
		dst.CopyRect(x, y, scratch, e.halfW-e.opts.BorderSize, e.halfH-e.opts.BorderSize, ow, oh)
		x += ow

		done := i + 1
		if progress != nil && (done%progressInterval == 0 || done == total) {
			progress(done, total)
		}
		log.Debug("orientation expanded", "index", i, "mask", e.table.masks[i].String())
	}
	return atlas, nil
}

// compose fills the scratch buffer with the 4×4 cell grid of one row.
func (e *Expander) compose(row *[16]FragmentRef) {
	e.scratch.Fill(pixel.Transparent)
	scratch := e.scratch.TopDown()

	for cell, ref := range row {
		if idx, ok := ref.Index(); ok {
			e.copyFragment(scratch, cell, idx)
		}
	}

	if e.opts.BorderSize > 0 {
		for _, corners := range [...]bool{false, true} {
			for cell, ref := range row {
				if !ref.IsStretch() || isCornerCell(cell) != corners {
					continue
				}
				ox, oy := e.cellOrigin(cell)
				applyStretch(scratch, ref.Kind(), ox, oy, e.halfW, e.halfH)
			}
		}
	}

	if !e.opts.ClampEdges && e.table.ground != nil {
		for cell, ref := range row {
			if !ref.IsStretch() {
				continue
			}
			idx, ok := e.table.ground[cell].Index()
			if !ok {
				continue
			}
			sx, sy := e.fragmentOrigin(idx)
			if e.src.IsRegionTransparent(sx, sy, e.halfW, e.halfH) {
				continue
			}
			e.copyFragment(scratch, cell, idx)
		}
	}
}

func (e *Expander) copyFragment(dst pixel.TopDown, cell int, idx uint8) {
	ox, oy := e.cellOrigin(cell)
	sx, sy := e.fragmentOrigin(idx)
	dst.CopyRect(ox, oy, e.src, sx, sy, e.halfW, e.halfH)
}

// cellOrigin returns the image-space origin of a scratch cell.
func (e *Expander) cellOrigin(cell int) (int, int) {
	return cell % 4 * e.halfW, cell / 4 * e.halfH
}

// fragmentOrigin returns the image-space origin of a source fragment.
func (e *Expander) fragmentOrigin(idx uint8) (int, int) {
	i := int(idx)
	return i % e.perRow * e.halfW, i / e.perRow * e.halfH
}

func isCornerCell(cell int) bool {
	c, r := cell%4, cell/4
	return (c == 0 || c == 3) && (r == 0 || r == 3)
}

// Atlas is a generated atlas together with the data needed to look tiles
// up in it.
type Atlas struct {
	Image        *pixel.Buffer
	Metrics      tileset.Metrics
	Layout       Layout
	InnerJoins   bool
	Orientations []orient.Mask
}

// Build generates the atlas and its metrics.
func (e *Expander) Build(ctx context.Context, progress func(done, total int)) (*Atlas, error) {
	img, err := e.Generate(ctx, progress)
	if err != nil {
		return nil, err
	}
	return &Atlas{
		Image:        img,
		Metrics:      e.Metrics(),
		Layout:       e.layout,
		InnerJoins:   e.opts.InnerJoins,
		Orientations: e.Orientations(),
	}, nil
}

// TileIndex returns the atlas tile for a resolved orientation mask.
func (a *Atlas) TileIndex(m orient.Mask) int {
	return AtlasIndex(m, a.InnerJoins)
}

// Tile copies the inner pixels of tile i into a new buffer.
func (a *Atlas) Tile(i int) *pixel.Buffer {
	r := a.Metrics.TileRect(i)
	out := pixel.NewBuffer(r.Dx(), r.Dy())
	out.TopDown().CopyRect(0, 0, a.Image.TopDown(), r.Min.X, r.Min.Y, r.Dx(), r.Dy())
	return out
}
