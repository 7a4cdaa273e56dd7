package render

import (
	"fmt"
	"strconv"
	"strings"

	"tilesystem/internal/pixel"
)

const (
	ESC   = "\x1b"
	CSI   = ESC + "["
	Reset = CSI + "0m"

	// UpperHalf draws the top pixel in the foreground colour and the
	// bottom pixel in the background colour of one terminal cell.
	UpperHalf = '▀'
)

// MoveTo positions the cursor at row, col (1-based).
func MoveTo(row, col int) string {
	return fmt.Sprintf("%s%d;%dH", CSI, row, col)
}

// ClearScreen clears the entire screen.
func ClearScreen() string {
	return CSI + "2J"
}

// HideCursor hides the terminal cursor.
func HideCursor() string {
	return CSI + "?25l"
}

// ShowCursor shows the terminal cursor.
func ShowCursor() string {
	return CSI + "?25h"
}

// EnableAltScreen switches to the alternate screen buffer.
func EnableAltScreen() string {
	return CSI + "?1049h"
}

// DisableAltScreen switches back from the alternate screen buffer.
func DisableAltScreen() string {
	return CSI + "?1049l"
}

// WriteCellSGR writes a single cell's full SGR + character to the builder.
// Uses combined SGR to avoid state leakage between cells.
func WriteCellSGR(sb *strings.Builder, c Cell) {
	if c.Bold {
		sb.WriteString("\x1b[0;1;38;2;")
	} else {
		sb.WriteString("\x1b[0;38;2;")
	}
	sb.WriteString(strconv.Itoa(int(c.FgR)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.FgG)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.FgB)))
	sb.WriteString(";48;2;")
	sb.WriteString(strconv.Itoa(int(c.BgR)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.BgG)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.BgB)))
	sb.WriteByte('m')
	sb.WriteRune(c.Ch)
}

// ansiPalette holds the RGB value of each basic ANSI foreground code.
var ansiPalette = map[int]pixel.Color{
	30: pixel.RGB(0, 0, 0),
	31: pixel.RGB(170, 0, 0),
	32: pixel.RGB(0, 170, 0),
	33: pixel.RGB(170, 170, 0),
	34: pixel.RGB(0, 0, 170),
	35: pixel.RGB(170, 0, 170),
	36: pixel.RGB(0, 170, 170),
	37: pixel.RGB(170, 170, 170),
	90: pixel.RGB(85, 85, 85),
	91: pixel.RGB(255, 85, 85),
	92: pixel.RGB(85, 255, 85),
	93: pixel.RGB(255, 255, 85),
	94: pixel.RGB(85, 85, 255),
	95: pixel.RGB(255, 85, 255),
	96: pixel.RGB(85, 255, 255),
	97: pixel.RGB(255, 255, 255),
}

// AnsiColor converts a basic ANSI color code to an opaque colour.
// Unknown codes map to light gray.
func AnsiColor(code int) pixel.Color {
	if c, ok := ansiPalette[code]; ok {
		return c
	}
	return ansiPalette[37]
}
