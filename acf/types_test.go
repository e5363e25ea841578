package acf

import "testing"

func TestFormatTileCount(t *testing.T) {
	f := Format{Width: 320, Height: 240}
	if got := f.TileCount(); got != 1200 {
		t.Fatalf("TileCount() = %d, want 1200", got)
	}
}

func TestFormatSupportedCompressor(t *testing.T) {
	if !(Format{Compressor: 0}).supported() {
		t.Fatalf("compressor 0 should be supported")
	}
	if (Format{Compressor: 1}).supported() {
		t.Fatalf("compressor 1 (XCF variant) should not be supported")
	}
}
