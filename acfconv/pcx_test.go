package acfconv

import (
	"bytes"
	"testing"

	"github.com/adeline-acf/acf-video-tool/acf"
)

func TestEncodePCXRowLiteralByteWhenRunIsOne(t *testing.T) {
	row := []byte{1, 2, 3, 4}
	got := encodePCXRow(row)
	want := []byte{1, 2, 3, 4}
	if !bytes.Equal(got, want) {
		t.Fatalf("encodePCXRow(%v) = %v, want %v", row, got, want)
	}
}

func TestEncodePCXRowCountsRepeatedRuns(t *testing.T) {
	row := []byte{9, 9, 9, 9, 9}
	got := encodePCXRow(row)
	want := []byte{0xC0 | 5, 9}
	if !bytes.Equal(got, want) {
		t.Fatalf("encodePCXRow(%v) = %v, want %v", row, got, want)
	}
}

func TestEncodePCXRowAlwaysPrefixesATopTwoBitsByte(t *testing.T) {
	// A single byte whose top two bits are both set must still be prefixed
	// with a count of 1, since 0xC1 alone would be misread as a run-length
	// byte by a decoder.
	row := []byte{0xC1}
	got := encodePCXRow(row)
	want := []byte{0xC0 | 1, 0xC1}
	if !bytes.Equal(got, want) {
		t.Fatalf("encodePCXRow(%v) = %v, want %v", row, got, want)
	}
}

func TestEncodePCXRowSplitsRunsLongerThan63(t *testing.T) {
	row := make([]byte, 70)
	for i := range row {
		row[i] = 5
	}
	got := encodePCXRow(row)
	want := []byte{0xC0 | 63, 5, 0xC0 | 7, 5}
	if !bytes.Equal(got, want) {
		t.Fatalf("encodePCXRow(70-byte run) = %v, want %v", got, want)
	}
}

func TestWritePCXHeaderAndPalette(t *testing.T) {
	img := acf.ImageBuffer{Width: 8, Height: 1, Pixels: []byte{1, 1, 1, 1, 2, 2, 2, 2}}
	frame := &acf.DecodedFrame{Image: &img, Palette: make([]byte, 768)}
	frame.Palette[0] = 0xAB

	var buf bytes.Buffer
	if err := WritePCX(&buf, frame); err != nil {
		t.Fatalf("WritePCX: %v", err)
	}

	out := buf.Bytes()
	if len(out) < 128 {
		t.Fatalf("output shorter than the 128-byte PCX header: %d bytes", len(out))
	}
	if out[0] != 10 || out[1] != 5 || out[2] != 1 || out[3] != 8 {
		t.Fatalf("header manufacturer/version/encoding/bpp = %v, want [10 5 1 8]", out[:4])
	}

	marker := out[len(out)-769]
	if marker != 0x0C {
		t.Fatalf("byte before the trailing 768-byte palette = %#x, want 0x0C", marker)
	}
	if out[len(out)-768] != 0xAB {
		t.Fatalf("first palette byte = %#x, want 0xAB", out[len(out)-768])
	}
}
