package acf

import "testing"

func TestDiagonalOffsetsCoverEveryTilePixelOnce(t *testing.T) {
	for name, table := range map[string][64]int{
		"diagonalOffsets1": diagonalOffsets1,
		"diagonalOffsets2": diagonalOffsets2,
	} {
		seen := make(map[int]bool, 64)
		for i, offset := range table {
			if offset < 0 || offset >= 8*320 {
				t.Fatalf("%s[%d] = %d is outside an 8-row, 320-wide window", name, i, offset)
			}
			if seen[offset] {
				t.Fatalf("%s[%d] = %d duplicates an earlier entry", name, i, offset)
			}
			seen[offset] = true
		}
	}
}

func TestSplitTileOffsetsLocateFourQuadrants(t *testing.T) {
	want := [4]int{0, 4, 1280, 1284}
	if splitTileOffsets != want {
		t.Fatalf("splitTileOffsets = %v, want %v", splitTileOffsets, want)
	}
}
