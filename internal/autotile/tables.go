package autotile

// An orientation map row holds 16 references laid out as a 4×4 grid of
// half-tile cells, row by row from the top. The middle 2×2 cells are the
// tile itself; the outer ring supplies the pixels a border is cut from.
//
// Joined tables list 47 canonical orientations. The first 16 rows are the
// patterns that need no inner joins (row 15 is replaced by the corner
// composite when joins are disabled); the trailing comment names each row's
// orientation mask.

var (
	xa = Stretch(StretchUp)
	xb = Stretch(StretchDown)
	xc = Stretch(StretchLeft)
	xd = Stretch(StretchRight)
	xe = Stretch(CornerTopLeft)
	xf = Stretch(CornerTopRight)
	xg = Stretch(CornerBottomLeft)
	xh = Stretch(CornerBottomRight)
	x1 = Stretch(TaperTopLeft)
	x2 = Stretch(TaperTopRight)
	x3 = Stretch(TaperBottomLeft)
	x4 = Stretch(TaperBottomRight)
)

func f(i uint8) FragmentRef { return Concrete(i) }

// basicJoined is the orientation map for Basic artwork with inner joins.
//
//	row 0: inner corners | (unused)
//	rows 1-2: 2×2 outline (corners, edges, centre)
var basicJoined = [][16]FragmentRef{
	{xe, xa, xa, xf, xc, f(8), f(11), xd, xc, f(20), f(23), xd, xg, xb, xb, xh},                                      // 00000000
	{xe, xa, xa, xf, xc, f(8), f(11), xd, xc, f(12), f(15), xd, xb, f(16), f(19), xb},                                // 00000010
	{xe, xa, xa, xd, xc, f(8), f(9), f(10), xc, f(20), f(21), f(22), xg, xb, xb, xd},                                 // 00001000
	{xe, xa, xa, xd, xc, f(8), f(9), f(10), xc, f(12), f(13), f(14), xb, f(16), f(17), f(18)},                        // 00001011
	{xc, xa, xa, xf, f(9), f(10), f(11), xd, f(21), f(22), f(23), xd, xc, xb, xb, xh},                                // 00010000
	{xc, xa, xa, xf, f(9), f(10), f(11), xd, f(13), f(14), f(15), xd, f(17), f(18), f(19), xb},                       // 00010110
	{xc, xa, xa, xd, f(9), f(10), f(9), f(10), f(21), f(22), f(21), f(22), xc, xb, xb, xd},                           // 00011000
	{xc, xa, xa, xd, f(9), f(10), f(9), f(10), f(13), f(14), f(13), f(14), f(17), f(18), f(17), f(18)},               // 00011111
	{xa, f(12), f(15), xa, xc, f(16), f(19), xd, xc, f(20), f(23), xd, xg, xb, xb, xh},                               // 01000000
	{xa, f(12), f(15), xa, xc, f(16), f(19), xd, xc, f(12), f(15), xd, xb, f(16), f(19), xb},                         // 01000010
	{xa, f(12), f(13), f(14), xc, f(16), f(17), f(18), xc, f(20), f(21), f(22), xg, xb, xb, xd},                      // 01101000
	{xa, f(12), f(13), f(14), xc, f(16), f(17), f(18), xc, f(12), f(13), f(14), xb, f(16), f(17), f(18)},             // 01101011
	{f(13), f(14), f(15), xa, f(17), f(18), f(19), xd, f(21), f(22), f(23), xd, xc, xb, xb, xh},                      // 11010000
	{f(13), f(14), f(15), xa, f(17), f(18), f(19), xd, f(13), f(14), f(15), xd, f(17), f(18), f(19), xb},             // 11010110
	{f(13), f(14), f(13), f(14), f(17), f(18), f(17), f(18), f(21), f(22), f(21), f(22), xc, xb, xb, xd},             // 11111000
	{x1, f(12), f(15), x2, f(9), f(0), f(1), f(10), f(21), f(4), f(5), f(22), x3, f(16), f(19), x4},                  // 01011010
	{xe, xa, xa, xd, xc, f(8), f(9), f(10), xc, f(12), f(5), f(22), xb, f(16), f(19), x4},                            // 00001010
	{xc, xa, xa, xf, f(9), f(10), f(11), xd, f(21), f(4), f(15), xd, x3, f(16), f(19), xb},                           // 00010010
	{xc, xa, xa, xd, f(9), f(10), f(9), f(10), f(21), f(4), f(5), f(22), x3, f(16), f(19), x4},                       // 00011010
	{xc, xa, xa, xd, f(9), f(10), f(9), f(10), f(21), f(4), f(13), f(14), x3, f(16), f(17), f(18)},                   // 00011011
	{xc, xa, xa, xd, f(9), f(10), f(9), f(10), f(13), f(14), f(5), f(22), f(17), f(18), f(19), x4},                   // 00011110
	{xa, f(12), f(15), x2, xc, f(16), f(1), f(10), xc, f(20), f(21), f(22), xg, xb, xb, xd},                          // 01001000
	{xa, f(12), f(15), x2, xc, f(16), f(1), f(10), xc, f(12), f(5), f(22), xb, f(16), f(19), x4},                     // 01001010
	{xa, f(12), f(15), x2, xc, f(16), f(1), f(10), xc, f(12), f(13), f(14), xb, f(16), f(17), f(18)},                 // 01001011
	{x1, f(12), f(15), xa, f(9), f(0), f(19), xd, f(21), f(22), f(23), xd, xc, xb, xb, xh},                           // 01010000
	{x1, f(12), f(15), xa, f(9), f(0), f(19), xd, f(21), f(4), f(15), xd, x3, f(16), f(19), xb},                      // 01010010
	{x1, f(12), f(15), xa, f(9), f(0), f(19), xd, f(13), f(14), f(15), xd, f(17), f(18), f(19), xb},                  // 01010110
	{x1, f(12), f(15), x2, f(9), f(0), f(1), f(10), f(21), f(22), f(21), f(22), xc, xb, xb, xd},                      // 01011000
	{x1, f(12), f(15), x2, f(9), f(0), f(1), f(10), f(21), f(4), f(13), f(14), x3, f(16), f(17), f(18)},              // 01011011
	{x1, f(12), f(15), x2, f(9), f(0), f(1), f(10), f(13), f(14), f(5), f(22), f(17), f(18), f(19), x4},              // 01011110
	{x1, f(12), f(15), x2, f(9), f(0), f(1), f(10), f(13), f(14), f(13), f(14), f(17), f(18), f(17), f(18)},          // 01011111
	{xa, f(12), f(13), f(14), xc, f(16), f(17), f(18), xc, f(12), f(5), f(22), xb, f(16), f(19), x4},                 // 01101010
	{x1, f(12), f(13), f(14), f(9), f(0), f(17), f(18), f(21), f(22), f(21), f(22), xc, xb, xb, xd},                  // 01111000
	{x1, f(12), f(13), f(14), f(9), f(0), f(17), f(18), f(21), f(4), f(5), f(22), x3, f(16), f(19), x4},              // 01111010
	{x1, f(12), f(13), f(14), f(9), f(0), f(17), f(18), f(21), f(4), f(13), f(14), x3, f(16), f(17), f(18)},          // 01111011
	{x1, f(12), f(13), f(14), f(9), f(0), f(17), f(18), f(13), f(14), f(5), f(22), f(17), f(18), f(19), x4},          // 01111110
	{x1, f(12), f(13), f(14), f(9), f(0), f(17), f(18), f(13), f(14), f(13), f(14), f(17), f(18), f(17), f(18)},      // 01111111
	{f(13), f(14), f(15), xa, f(17), f(18), f(19), xd, f(21), f(4), f(15), xd, x3, f(16), f(19), xb},                 // 11010010
	{f(13), f(14), f(15), x2, f(17), f(18), f(1), f(10), f(21), f(22), f(21), f(22), xc, xb, xb, xd},                 // 11011000
	{f(13), f(14), f(15), x2, f(17), f(18), f(1), f(10), f(21), f(4), f(5), f(22), x3, f(16), f(19), x4},             // 11011010
	{f(13), f(14), f(15), x2, f(17), f(18), f(1), f(10), f(21), f(4), f(13), f(14), x3, f(16), f(17), f(18)},         // 11011011
	{f(13), f(14), f(15), x2, f(17), f(18), f(1), f(10), f(13), f(14), f(5), f(22), f(17), f(18), f(19), x4},         // 11011110
	{f(13), f(14), f(15), x2, f(17), f(18), f(1), f(10), f(13), f(14), f(13), f(14), f(17), f(18), f(17), f(18)},     // 11011111
	{f(13), f(14), f(13), f(14), f(17), f(18), f(17), f(18), f(21), f(4), f(5), f(22), x3, f(16), f(19), x4},         // 11111010
	{f(13), f(14), f(13), f(14), f(17), f(18), f(17), f(18), f(21), f(4), f(13), f(14), x3, f(16), f(17), f(18)},     // 11111011
	{f(13), f(14), f(13), f(14), f(17), f(18), f(17), f(18), f(13), f(14), f(5), f(22), f(17), f(18), f(19), x4},     // 11111110
	{f(13), f(14), f(13), f(14), f(17), f(18), f(17), f(18), f(13), f(14), f(13), f(14), f(17), f(18), f(17), f(18)}, // 11111111
}

// basicCorner replaces row 15 of the joins-less table: every cell is centre.
var basicCorner = [16]FragmentRef{
	f(13), f(14), f(13), f(14),
	f(17), f(18), f(17), f(18),
	f(13), f(14), f(13), f(14),
	f(17), f(18), f(17), f(18),
}

// extendedJoined is the orientation map for Extended artwork with inner joins.
//
//	row 0: inner corners | ground | (unused)
//	rows 1-3: 3×3 outline (corners, edges, centre)
var extendedJoined = [][16]FragmentRef{
	{xe, xa, xa, xf, xc, f(12), f(17), xd, xc, f(42), f(47), xd, xg, xb, xb, xh},                                     // 00000000
	{xe, xa, xa, xf, xc, f(12), f(17), xd, xc, f(30), f(35), xd, xb, f(24), f(29), xb},                               // 00000010
	{xe, xa, xa, xd, xc, f(12), f(15), f(14), xc, f(42), f(45), f(44), xg, xb, xb, xd},                               // 00001000
	{xe, xa, xa, xd, xc, f(12), f(15), f(14), xc, f(30), f(33), f(32), xb, f(24), f(27), f(26)},                      // 00001011
	{xc, xa, xa, xf, f(15), f(14), f(17), xd, f(45), f(44), f(47), xd, xc, xb, xb, xh},                               // 00010000
	{xc, xa, xa, xf, f(15), f(14), f(17), xd, f(33), f(32), f(35), xd, f(27), f(26), f(29), xb},                      // 00010110
	{xc, xa, xa, xd, f(15), f(14), f(15), f(14), f(45), f(44), f(45), f(44), xc, xb, xb, xd},                         // 00011000
	{xc, xa, xa, xd, f(15), f(14), f(15), f(14), f(33), f(32), f(33), f(32), f(27), f(26), f(27), f(26)},             // 00011111
	{xa, f(30), f(35), xa, xc, f(24), f(29), xd, xc, f(42), f(47), xd, xg, xb, xb, xh},                               // 01000000
	{xa, f(30), f(35), xa, xc, f(24), f(29), xd, xc, f(30), f(35), xd, xb, f(24), f(29), xb},                         // 01000010
	{xa, f(30), f(33), f(32), xc, f(24), f(27), f(26), xc, f(42), f(45), f(44), xg, xb, xb, xd},                      // 01101000
	{xa, f(30), f(33), f(32), xc, f(24), f(27), f(26), xc, f(30), f(33), f(32), xb, f(24), f(27), f(26)},             // 01101011
	{f(33), f(32), f(35), xa, f(27), f(26), f(29), xd, f(45), f(44), f(47), xd, xc, xb, xb, xh},                      // 11010000
	{f(33), f(32), f(35), xa, f(27), f(26), f(29), xd, f(33), f(32), f(35), xd, f(27), f(26), f(29), xb},             // 11010110
	{f(33), f(32), f(33), f(32), f(27), f(26), f(27), f(26), f(45), f(44), f(45), f(44), xc, xb, xb, xd},             // 11111000
	{x1, f(30), f(35), x2, f(15), f(0), f(1), f(14), f(45), f(6), f(7), f(44), x3, f(24), f(29), x4},                 // 01011010
	{xe, xa, xa, xd, xc, f(12), f(15), f(14), xc, f(30), f(7), f(44), xb, f(24), f(29), x4},                          // 00001010
	{xc, xa, xa, xf, f(15), f(14), f(17), xd, f(45), f(6), f(35), xd, x3, f(24), f(29), xb},                          // 00010010
	{xc, xa, xa, xd, f(15), f(14), f(15), f(14), f(45), f(6), f(7), f(44), x3, f(24), f(29), x4},                     // 00011010
	{xc, xa, xa, xd, f(15), f(14), f(15), f(14), f(45), f(6), f(33), f(32), x3, f(24), f(27), f(26)},                 // 00011011
	{xc, xa, xa, xd, f(15), f(14), f(15), f(14), f(33), f(32), f(7), f(44), f(27), f(26), f(29), x4},                 // 00011110
	{xa, f(30), f(35), x2, xc, f(24), f(1), f(14), xc, f(42), f(45), f(44), xg, xb, xb, xd},                          // 01001000
	{xa, f(30), f(35), x2, xc, f(24), f(1), f(14), xc, f(30), f(7), f(44), xb, f(24), f(29), x4},                     // 01001010
	{xa, f(30), f(35), x2, xc, f(24), f(1), f(14), xc, f(30), f(33), f(32), xb, f(24), f(27), f(26)},                 // 01001011
	{x1, f(30), f(35), xa, f(15), f(0), f(29), xd, f(45), f(44), f(47), xd, xc, xb, xb, xh},                          // 01010000
	{x1, f(30), f(35), xa, f(15), f(0), f(29), xd, f(45), f(6), f(35), xd, x3, f(24), f(29), xb},                     // 01010010
	{x1, f(30), f(35), xa, f(15), f(0), f(29), xd, f(33), f(32), f(35), xd, f(27), f(26), f(29), xb},                 // 01010110
	{x1, f(30), f(35), x2, f(15), f(0), f(1), f(14), f(45), f(44), f(45), f(44), xc, xb, xb, xd},                     // 01011000
	{x1, f(30), f(35), x2, f(15), f(0), f(1), f(14), f(45), f(6), f(33), f(32), x3, f(24), f(27), f(26)},             // 01011011
	{x1, f(30), f(35), x2, f(15), f(0), f(1), f(14), f(33), f(32), f(7), f(44), f(27), f(26), f(29), x4},             // 01011110
	{x1, f(30), f(35), x2, f(15), f(0), f(1), f(14), f(33), f(32), f(33), f(32), f(27), f(26), f(27), f(26)},         // 01011111
	{xa, f(30), f(33), f(32), xc, f(24), f(27), f(26), xc, f(30), f(7), f(44), xb, f(24), f(29), x4},                 // 01101010
	{x1, f(30), f(33), f(32), f(15), f(0), f(27), f(26), f(45), f(44), f(45), f(44), xc, xb, xb, xd},                 // 01111000
	{x1, f(30), f(33), f(32), f(15), f(0), f(27), f(26), f(45), f(6), f(7), f(44), x3, f(24), f(29), x4},             // 01111010
	{x1, f(30), f(33), f(32), f(15), f(0), f(27), f(26), f(45), f(6), f(33), f(32), x3, f(24), f(27), f(26)},         // 01111011
	{x1, f(30), f(33), f(32), f(15), f(0), f(27), f(26), f(33), f(32), f(7), f(44), f(27), f(26), f(29), x4},         // 01111110
	{x1, f(30), f(33), f(32), f(15), f(0), f(27), f(26), f(33), f(32), f(33), f(32), f(27), f(26), f(27), f(26)},     // 01111111
	{f(33), f(32), f(35), xa, f(27), f(26), f(29), xd, f(45), f(6), f(35), xd, x3, f(24), f(29), xb},                 // 11010010
	{f(33), f(32), f(35), x2, f(27), f(26), f(1), f(14), f(45), f(44), f(45), f(44), xc, xb, xb, xd},                 // 11011000
	{f(33), f(32), f(35), x2, f(27), f(26), f(1), f(14), f(45), f(6), f(7), f(44), x3, f(24), f(29), x4},             // 11011010
	{f(33), f(32), f(35), x2, f(27), f(26), f(1), f(14), f(45), f(6), f(33), f(32), x3, f(24), f(27), f(26)},         // 11011011
	{f(33), f(32), f(35), x2, f(27), f(26), f(1), f(14), f(33), f(32), f(7), f(44), f(27), f(26), f(29), x4},         // 11011110
	{f(33), f(32), f(35), x2, f(27), f(26), f(1), f(14), f(33), f(32), f(33), f(32), f(27), f(26), f(27), f(26)},     // 11011111
	{f(33), f(32), f(33), f(32), f(27), f(26), f(27), f(26), f(45), f(6), f(7), f(44), x3, f(24), f(29), x4},         // 11111010
	{f(33), f(32), f(33), f(32), f(27), f(26), f(27), f(26), f(45), f(6), f(33), f(32), x3, f(24), f(27), f(26)},     // 11111011
	{f(33), f(32), f(33), f(32), f(27), f(26), f(27), f(26), f(33), f(32), f(7), f(44), f(27), f(26), f(29), x4},     // 11111110
	{f(33), f(32), f(33), f(32), f(27), f(26), f(27), f(26), f(33), f(32), f(33), f(32), f(27), f(26), f(27), f(26)}, // 11111111
}

// extendedCorner replaces row 15 of the joins-less table: every cell is centre.
var extendedCorner = [16]FragmentRef{
	f(33), f(32), f(33), f(32),
	f(27), f(26), f(27), f(26),
	f(33), f(32), f(33), f(32),
	f(27), f(26), f(27), f(26),
}

// extendedGround tiles the ground fragments seamlessly across the 4×4 grid.
var extendedGround = [16]FragmentRef{
	f(9), f(8), f(9), f(8),
	f(3), f(2), f(3), f(2),
	f(9), f(8), f(9), f(8),
	f(3), f(2), f(3), f(2),
}
