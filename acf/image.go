package acf

// ImageBuffer is a width*height 8-bit indexed pixel grid, row-major with
// no per-row padding, matching the source's flat uint8_t buffer.
type ImageBuffer struct {
	Width  int
	Height int
	Pixels []byte
}

// NewImageBuffer allocates a zero-filled width*height buffer. Zero-filling
// the *previous* buffer before the first key frame is undefined by the
// format but mandated by this implementation for determinism.
func NewImageBuffer(width, height int) *ImageBuffer {
	return &ImageBuffer{
		Width:  width,
		Height: height,
		Pixels: make([]byte, width*height),
	}
}

// Clear zero-fills the buffer in place, used when a Format chunk changes
// dimensions and both buffers must be reallocated and zero-filled.
func (b *ImageBuffer) Clear() {
	for i := range b.Pixels {
		b.Pixels[i] = 0
	}
}

// blockCopy8x8 copies an 8x8 block from src (at srcOffset) into dst (at
// dstOffset), 8 contiguous bytes per row for 8 rows -- a row-major memcpy
// equivalent to the source's BlockCopy8x8. A motion vector can legally
// reference a source block that runs past the edge of the buffer (the
// source tolerates this by reading adjacent heap memory); here any row
// that would read out of bounds is zero-filled instead, which keeps the
// result deterministic without an unsafe read.
func blockCopy8x8(dst []byte, dstOffset int, src []byte, srcOffset, stride int) {
	blockCopyN(dst, dstOffset, src, srcOffset, stride, 8)
}

// blockCopy4x4 is blockCopy8x8's 4-wide, 4-tall counterpart.
func blockCopy4x4(dst []byte, dstOffset int, src []byte, srcOffset, stride int) {
	blockCopyN(dst, dstOffset, src, srcOffset, stride, 4)
}

func blockCopyN(dst []byte, dstOffset int, src []byte, srcOffset, stride, n int) {
	for y := 0; y < n; y++ {
		so := srcOffset + y*stride
		do := dstOffset + y*stride
		if so < 0 || so+n > len(src) {
			for x := 0; x < n; x++ {
				dst[do+x] = 0
			}
			continue
		}
		copy(dst[do:do+n], src[so:so+n])
	}
}

// RawRow returns a mutable view of one row, for callers (the PCX sink)
// that want raw-row access for block emission.
func (b *ImageBuffer) RawRow(y int) []byte {
	return b.Pixels[y*b.Width : y*b.Width+b.Width]
}
