package acf

// diagonalOffsets1 and diagonalOffsets2 are the two anti-diagonal zig-zag
// traversal tables used by the block-decode primitives. They are not
// symmetric reflections of a regular zig-zag and must be reproduced
// verbatim from the source.
var diagonalOffsets1 = [64]int{
	0, 1, 320, 640, 321, 2, 3, 322, 641, 960, 1280, 961, 642, 323, 4, 5, 324, 643, 962, 1281, 1600, 1920, 1601, 1282, 963, 644, 325, 6, 7,
	326, 645, 964, 1283, 1602, 1921, 2240, 2241, 1922, 1603, 1284, 965, 646, 327, 647, 966, 1285, 1604, 1923, 2242, 2243, 1924, 1605, 1286,
	967, 1287, 1606, 1925, 2244, 2245, 1926, 1607, 1927, 2246, 2247,
}

var diagonalOffsets2 = [64]int{
	7, 6, 327, 647, 326, 5, 4, 325, 646, 967, 1287, 966, 645, 324, 3, 2, 323, 644, 965, 1286, 1607, 1927, 1606, 1285, 964, 643, 322, 1, 0,
	321, 642, 963, 1284, 1605, 1926, 2247, 2246, 1925, 1604, 1283, 962, 641, 320, 640, 961, 1282, 1603, 1924, 2245, 2244, 1923, 1602, 1281,
	960, 1280, 1601, 1922, 2243, 2242, 1921, 1600, 1920, 2241, 2240,
}

// splitTileOffsets locates the top-left corner of each of the four 4x4
// quadrants of an 8x8 tile within a 320-wide frame buffer.
var splitTileOffsets = [4]int{0, 4, 320 * 4, 320*4 + 4}
