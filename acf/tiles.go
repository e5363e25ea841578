package acf

// tileDecoder holds the mutable state threaded through one tile's worth of
// opcode dispatch: the two data stream cursors, the current/previous
// buffers, and the tile's top-left offset in each.
type tileDecoder struct {
	aligned   *cursor
	unaligned *cursor

	width int

	current  []byte
	previous []byte

	// currentTile/previousTile are the top-left offsets of this tile
	// within current/previous.
	currentTile  int
	previousTile int
}

func (d *tileDecoder) setPixel(x, y int, color byte) {
	d.current[d.currentTile+x+y*d.width] = color
}

// signExtend4 treats the low 4 bits of v as a signed integer in [-8, 7],
// the nibble sign-extension the source performs via shift-left-28 /
// arithmetic-shift-right-28.
func signExtend4(v byte) int {
	return int(int8(v<<4)) >> 4
}

// --- Update overlays (applied after a base primitive) ---

// update4 reads one 3-byte packed value from the unaligned stream encoding
// four (x,y) patch locations (3 bits each), then one color byte per patch
// from the aligned stream.
func (d *tileDecoder) update4() {
	value := d.unaligned.u32(3)
	for i := 0; i < 4; i++ {
		x := int(value & 7)
		y := int((value >> 3) & 7)
		d.setPixel(x, y, d.aligned.u8())
		value >>= 6
	}
}

func (d *tileDecoder) update8() {
	d.update4()
	d.update4()
}

func (d *tileDecoder) update16() {
	for y := 0; y < 8; y++ {
		mask := d.aligned.u8()
		for x := 0; x < 8; x++ {
			if mask&1 != 0 {
				d.setPixel(x, y, d.unaligned.u8())
			}
			mask >>= 1
		}
	}
}

// --- Motion compensation ---

func (d *tileDecoder) zeroMotion() {
	blockCopy8x8(d.current, d.currentTile, d.previous, d.previousTile, d.width)
}

func (d *tileDecoder) shortMotion8() {
	value := d.unaligned.u8()
	dx := signExtend4(value)
	dy := signExtend4(value >> 4)
	src := d.previousTile + (4 + d.width*4) + dx + dy*d.width
	blockCopy8x8(d.current, d.currentTile, d.previous, src, d.width)
}

func (d *tileDecoder) shortMotion4() {
	base := d.previousTile + 2 + d.width*2
	quad := [4]int{0, 4, d.width * 4, d.width*4 + 4}
	for _, q := range quad {
		value := d.aligned.u8()
		dx := signExtend4(value)
		dy := signExtend4(value >> 4)
		blockCopy4x4(d.current, d.currentTile+q, d.previous, base+q+dx+dy*d.width, d.width)
	}
}

func (d *tileDecoder) motion8() {
	src := int(d.unaligned.u16())
	blockCopy8x8(d.current, d.currentTile, d.previous, src, d.width)
}

func (d *tileDecoder) motion4() {
	quad := [4]int{0, 4, d.width * 4, d.width*4 + 4}
	for _, q := range quad {
		src := int(d.aligned.u16())
		blockCopy4x4(d.current, d.currentTile+q, d.previous, src, d.width)
	}
}

func (d *tileDecoder) roMotion8() {
	off := int(d.unaligned.s16())
	src := d.previousTile + off + 4 + d.width*4
	blockCopy8x8(d.current, d.currentTile, d.previous, src, d.width)
}

func (d *tileDecoder) roMotion4() {
	base := d.previousTile + 2 + d.width*2
	quad := [4]int{0, 4, d.width * 4, d.width*4 + 4}
	for _, q := range quad {
		off := int(d.aligned.s16())
		blockCopy4x4(d.current, d.currentTile+q, d.previous, base+q+off, d.width)
	}
}

func (d *tileDecoder) rcMotion8() {
	off := int(d.unaligned.xyOffset(d.width))
	src := d.previousTile + off + 4 + d.width*4
	blockCopy8x8(d.current, d.currentTile, d.previous, src, d.width)
}

func (d *tileDecoder) rcMotion4() {
	base := d.previousTile + 2 + d.width*2
	quad := [4]int{0, 4, d.width * 4, d.width*4 + 4}
	for _, q := range quad {
		off := int(d.aligned.xyOffset(d.width))
		blockCopy4x4(d.current, d.currentTile+q, d.previous, base+q+off, d.width)
	}
}

// --- Flat fills ---

func (d *tileDecoder) singleColorFill() {
	color := d.unaligned.u8()
	for y := 0; y < 8; y++ {
		row := d.currentTile + y*d.width
		for x := 0; x < 8; x++ {
			d.current[row+x] = color
		}
	}
}

func (d *tileDecoder) fourColorFill() {
	topLeft := d.aligned.u8()
	topRight := d.aligned.u8()
	bottomLeft := d.aligned.u8()
	bottomRight := d.aligned.u8()

	for y := 0; y < 4; y++ {
		row := d.currentTile + y*d.width
		for x := 0; x < 4; x++ {
			d.current[row+x] = topLeft
			d.current[row+x+4] = topRight
		}
		row2 := d.currentTile + (y+4)*d.width
		for x := 0; x < 4; x++ {
			d.current[row2+x] = bottomLeft
			d.current[row2+x+4] = bottomRight
		}
	}
}

// --- Raw tile ---

func (d *tileDecoder) rawTile() {
	for y := 0; y < 8; y++ {
		copy(d.current[d.currentTile+y*d.width:d.currentTile+y*d.width+8], d.aligned.bytes(8))
		d.aligned.skip(8)
	}
}
