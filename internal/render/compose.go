package render

import (
	"tilesystem/internal/autotile"
	"tilesystem/internal/maps"
	"tilesystem/internal/orient"
	"tilesystem/internal/pixel"
)

// ComposeMap draws a painted map at tileW × tileH pixels per cell. Cells
// whose brush names an atlas in atlases use the tile for the cell's
// resolved orientation, rotated to the painted rotation; other cells are
// filled with the brush colour. Empty cells stay transparent.
func ComposeMap(m *maps.Map, atlases map[string]*autotile.Atlas, tileW, tileH int) *pixel.Buffer {
	out := pixel.NewBuffer(m.Width*tileW, m.Height*tileH)
	dst := out.TopDown()

	// Scaled and rotated tiles are reused across cells.
	type key struct {
		atlas    string
		index    int
		rotation int
	}
	cache := make(map[key]*pixel.Buffer)

	for row := 0; row < m.Height; row++ {
		for col := 0; col < m.Width; col++ {
			mask, b, ok := m.Orientation(row, col)
			if !ok {
				continue
			}
			x, y := col*tileW, row*tileH

			atlas := atlases[b.Atlas]
			if atlas == nil {
				dst.FillRect(x, y, tileW, tileH, AnsiColor(b.Fg))
				continue
			}

			k := key{atlas: b.Atlas, index: atlas.TileIndex(mask), rotation: m.Rotations[row][col]}
			tile, hit := cache[k]
			if !hit {
				tile = Scale(atlas.Tile(k.index), tileW, tileH)
				if k.rotation != 0 {
					tile = RotateClockwise(tile, k.rotation)
					tile = Scale(tile, tileW, tileH)
				}
				cache[k] = tile
			}
			dst.CopyRect(x, y, tile.TopDown(), 0, 0, tileW, tileH)
		}
	}
	return out
}

// Variant is one rotation of an authored tile.
type Variant struct {
	Mask  orient.Mask
	Steps int // clockwise quarter turns applied to the authored tile
	Image *pixel.Buffer
}

// RotatedVariants returns the distinct rotations of a tile authored for
// mask. Symmetric masks yield fewer than four variants.
func RotatedVariants(tile *pixel.Buffer, mask orient.Mask) []Variant {
	seen := make(map[orient.Mask]bool, 4)
	var out []Variant
	for steps := 0; steps < 4; steps++ {
		m := orient.RotateClockwise(mask, steps)
		if seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, Variant{Mask: m, Steps: steps, Image: RotateClockwise(tile, steps)})
	}
	return out
}
