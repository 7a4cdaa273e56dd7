// Package tileset describes how tiles are packed into an expanded atlas.
package tileset

import "image"

// Metrics is derived from the atlas size, tile size, border and tile
// count. Build it with NewMetrics; fields are not meant to be edited
// individually.
type Metrics struct {
	AtlasWidth  int
	AtlasHeight int
	TileWidth   int
	TileHeight  int
	BorderSize  int
	OuterWidth  int
	OuterHeight int
	Columns     int
	Rows        int
	Count       int

	// DeltaU and DeltaV are the size of one outer tile in texture space.
	DeltaU float64
	DeltaV float64
	// BorderU and BorderV are the size of the border in texture space.
	BorderU float64
	BorderV float64
}

// NewMetrics computes packing metrics for count tiles of tileWidth ×
// tileHeight padded by border on every side.
func NewMetrics(atlasWidth, atlasHeight, tileWidth, tileHeight, border, count int) Metrics {
	m := Metrics{
		AtlasWidth:  atlasWidth,
		AtlasHeight: atlasHeight,
		TileWidth:   tileWidth,
		TileHeight:  tileHeight,
		BorderSize:  border,
		OuterWidth:  tileWidth + 2*border,
		OuterHeight: tileHeight + 2*border,
		Count:       count,
	}
	if m.OuterWidth > 0 {
		m.Columns = atlasWidth / m.OuterWidth
	}
	if m.Columns > 0 {
		m.Rows = (count + m.Columns - 1) / m.Columns
	}
	if atlasWidth > 0 && atlasHeight > 0 {
		m.DeltaU = float64(m.OuterWidth) / float64(atlasWidth)
		m.DeltaV = float64(m.OuterHeight) / float64(atlasHeight)
		m.BorderU = float64(border) / float64(atlasWidth)
		m.BorderV = float64(border) / float64(atlasHeight)
	}
	return m
}

// Cell returns the column and row of tile i.
func (m Metrics) Cell(i int) (col, row int) {
	if m.Columns == 0 {
		return 0, 0
	}
	return i % m.Columns, i / m.Columns
}

// OuterRect returns the image-space rectangle of tile i including its
// border. Row 0 is the top of the atlas.
func (m Metrics) OuterRect(i int) image.Rectangle {
	col, row := m.Cell(i)
	x, y := col*m.OuterWidth, row*m.OuterHeight
	return image.Rect(x, y, x+m.OuterWidth, y+m.OuterHeight)
}

// TileRect returns the image-space rectangle of tile i without its border.
func (m Metrics) TileRect(i int) image.Rectangle {
	return m.OuterRect(i).Inset(m.BorderSize)
}

// UV returns the texture coordinates of tile i without its border, with
// v = 0 at the bottom of the atlas.
func (m Metrics) UV(i int) (u0, v0, u1, v1 float64) {
	col, row := m.Cell(i)
	u0 = float64(col)*m.DeltaU + m.BorderU
	u1 = float64(col+1)*m.DeltaU - m.BorderU
	v1 = 1 - float64(row)*m.DeltaV - m.BorderV
	v0 = 1 - float64(row+1)*m.DeltaV + m.BorderV
	return u0, v0, u1, v1
}
