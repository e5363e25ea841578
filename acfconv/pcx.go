// Package acfconv holds the external sink collaborators the core decoder
// hands frames, camera records, and audio payloads to: image (PCX-style),
// camera text, and audio (WAV/Opus) output.
package acfconv

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/adeline-acf/acf-video-tool/acf"
)

// pcxHeader is the 128-byte header preceding a PCX-style raster: a fixed
// byte layout written with encoding/binary, the same technique the
// now-retired AVI header writer used for its own fixed-layout struct.
type pcxHeader struct {
	Manufacturer byte
	Version      byte
	Encoding     byte
	BitsPerPixel byte
	Xmin, Ymin   int16
	Xmax, Ymax   int16
	Xres, Yres   int16
	Palette48    [48]byte
	Reserved     byte
	Planes       byte
	BytesPerLine int16
	PaletteType  int16
	Filler       [58]byte
}

// WritePCX writes frame as a 128-byte header, per-row RLE-encoded pixel
// data, a 0x0C marker, and the 768-byte palette.
func WritePCX(w io.Writer, frame *acf.DecodedFrame) error {
	img := frame.Image
	header := pcxHeader{
		Manufacturer: 10,
		Version:      5,
		Encoding:     1,
		BitsPerPixel: 8,
		Xmax:         int16(img.Width - 1),
		Ymax:         int16(img.Height - 1),
		Xres:         int16(img.Width),
		Yres:         int16(img.Height),
		Planes:       1,
		BytesPerLine: int16(img.Width),
	}
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return fmt.Errorf("acfconv: writing PCX header: %w", err)
	}

	for y := 0; y < img.Height; y++ {
		encoded := encodePCXRow(img.RawRow(y))
		if _, err := w.Write(encoded); err != nil {
			return fmt.Errorf("acfconv: writing PCX row %d: %w", y, err)
		}
	}

	if _, err := w.Write([]byte{0x0C}); err != nil {
		return fmt.Errorf("acfconv: writing PCX palette marker: %w", err)
	}
	if _, err := w.Write(frame.Palette); err != nil {
		return fmt.Errorf("acfconv: writing PCX palette: %w", err)
	}
	return nil
}

// encodePCXRow runs the same run-length scheme as the reference PCX
// writer: a run is emitted as a single literal byte when its length is 1
// and the byte's top two bits aren't both set; otherwise it is prefixed
// with a count byte (0xC0 | count). The scan runs one byte past the row
// end, forcing the final run to always flush.
func encodePCXRow(row []byte) []byte {
	out := make([]byte, 0, len(row)+len(row)/32+2)
	oldCh := row[0]
	number := 1
	for i := 1; i <= len(row); i++ {
		var ch byte
		if i == len(row) {
			ch = oldCh - 1
		} else {
			ch = row[i]
		}

		if ch == oldCh && number < 63 {
			number++
			continue
		}

		if number != 1 || (oldCh&0xC0) == 0xC0 {
			out = append(out, byte(number)|0xC0)
		}
		out = append(out, oldCh)
		oldCh = ch
		number = 1
	}
	return out
}
