// Package orient classifies a tile's 8-neighbourhood into an orientation
// mask and provides rotation and symmetry operations over masks.
//
// Neighbour positions are numbered row-major from the top-left neighbour:
//
//	0 1 2
//	3 . 4
//	5 6 7
//
// Position i is stored in bit 1<<(7-i), so the top-left neighbour is the
// most significant bit and is listed first in a mask name.
package orient

import (
	"errors"
	"fmt"
)

// Mask is an 8-bit orientation mask.
type Mask uint8

// Neighbour bits.
const (
	TopLeft     Mask = 0x80
	Top         Mask = 0x40
	TopRight    Mask = 0x20
	Left        Mask = 0x10
	Right       Mask = 0x08
	BottomLeft  Mask = 0x04
	Bottom      Mask = 0x02
	BottomRight Mask = 0x01

	// None has no connected neighbours.
	None Mask = 0x00
	// All has every neighbour connected.
	All Mask = 0xFF
)

// strong and weak hold the cardinal and diagonal neighbour bits.
const (
	strongBits = Top | Left | Right | Bottom
	weakBits   = TopLeft | TopRight | BottomLeft | BottomRight
)

// ErrInvalidMaskName is returned when a mask name is not exactly eight
// '0'/'1' characters.
var ErrInvalidMaskName = errors.New("invalid orientation mask name")

// Bit returns the mask bit for neighbour position i (0..7).
func Bit(i int) Mask {
	return Mask(1) << (7 - uint(i))
}

// Has reports whether every bit of b is set in m.
func (m Mask) Has(b Mask) bool {
	return m&b == b
}

// String returns the mask name.
func (m Mask) String() string {
	return NameFromMask(m)
}

// NameFromMask renders each neighbour as '0' or '1', position 0 first.
func NameFromMask(m Mask) string {
	var name [8]byte
	for i := 0; i < 8; i++ {
		if m&Bit(i) != 0 {
			name[i] = '1'
		} else {
			name[i] = '0'
		}
	}
	return string(name[:])
}

// MaskFromName parses a name produced by NameFromMask.
func MaskFromName(name string) (Mask, error) {
	if len(name) != 8 {
		return 0, fmt.Errorf("%w: %q has %d characters, want 8", ErrInvalidMaskName, name, len(name))
	}
	var m Mask
	for i := 0; i < 8; i++ {
		switch name[i] {
		case '1':
			m |= Bit(i)
		case '0':
		default:
			return 0, fmt.Errorf("%w: %q has %q at position %d", ErrInvalidMaskName, name, name[i], i)
		}
	}
	return m, nil
}

// rotate90 maps each neighbour one step clockwise:
// 0→2, 1→4, 2→7, 4→6, 7→5, 6→3, 5→0, 3→1.
func rotate90(m Mask) Mask {
	return (m&TopLeft)>>2 |
		(m&Top)>>3 |
		(m&TopRight)>>5 |
		(m&Left)<<2 |
		(m&Right)>>2 |
		(m&BottomLeft)<<5 |
		(m&Bottom)<<3 |
		(m&BottomRight)<<2
}

// rotate180 swaps opposite neighbours, which reverses the bit order.
func rotate180(m Mask) Mask {
	return (m&TopLeft)>>7 |
		(m&Top)>>5 |
		(m&TopRight)>>3 |
		(m&Left)>>1 |
		(m&Right)<<1 |
		(m&BottomLeft)<<3 |
		(m&Bottom)<<5 |
		(m&BottomRight)<<7
}

// rotate270 maps each neighbour three steps clockwise.
func rotate270(m Mask) Mask {
	return (m&TopLeft)>>5 |
		(m&Top)>>2 |
		(m&TopRight)<<2 |
		(m&Left)>>3 |
		(m&Right)<<3 |
		(m&BottomLeft)>>2 |
		(m&Bottom)<<2 |
		(m&BottomRight)<<5
}

// RotateClockwise rotates the mask by steps × 90°. Steps outside 0..3
// leave the mask unchanged.
func RotateClockwise(m Mask, steps int) Mask {
	switch steps {
	case 1:
		return rotate90(m)
	case 2:
		return rotate180(m)
	case 3:
		return rotate270(m)
	}
	return m
}

// RotateAntiClockwise rotates the mask by steps × -90°. Steps outside 0..3
// leave the mask unchanged.
func RotateAntiClockwise(m Mask, steps int) Mask {
	switch steps {
	case 1:
		return rotate270(m)
	case 2:
		return rotate180(m)
	case 3:
		return rotate90(m)
	}
	return m
}

// HasRotationalSymmetry reports whether b, or one of its clockwise
// rotations, equals a.
func HasRotationalSymmetry(a, b Mask) bool {
	return a == b ||
		a == rotate90(b) ||
		a == rotate180(b) ||
		a == rotate270(b)
}

// FirstMaskWithRotationalSymmetry returns the canonical representative of
// the mask's rotation group: the numerically largest of its rotations.
func FirstMaskWithRotationalSymmetry(m Mask) Mask {
	best := m
	for _, r := range [...]Mask{rotate90(m), rotate180(m), rotate270(m)} {
		if r >= best {
			best = r
		}
	}
	return best
}

// GetMasksWithRotationalSymmetry returns the canonical mask followed by its
// distinct clockwise rotations.
func GetMasksWithRotationalSymmetry(m Mask) []Mask {
	first := FirstMaskWithRotationalSymmetry(m)
	masks := []Mask{first}
	for steps := 1; steps <= 3; steps++ {
		r := RotateClockwise(first, steps)
		dup := false
		for _, seen := range masks {
			if seen == r {
				dup = true
				break
			}
		}
		if !dup {
			masks = append(masks, r)
		}
	}
	return masks
}

// CountStrongConnections counts cardinal neighbours on which a and b agree.
func CountStrongConnections(a, b Mask) int {
	return countAgreement(a, b, strongBits)
}

// CountWeakConnections counts diagonal neighbours on which a and b agree.
func CountWeakConnections(a, b Mask) int {
	return countAgreement(a, b, weakBits)
}

func countAgreement(a, b, bits Mask) int {
	same := ^(a ^ b) & bits
	n := 0
	for same != 0 {
		same &= same - 1
		n++
	}
	return n
}
