package acf

// oneBitTile reads 8 mask bytes from the aligned stream and 2 colors from
// the unaligned stream; each mask bit selects color[0] or color[1],
// traversed row-major LSB-first.
func (d *tileDecoder) oneBitTile() {
	for y := 0; y < 8; y++ {
		a := d.aligned.u8()
		for x := 0; x < 8; x++ {
			d.setPixel(x, y, d.unaligned.bytes(2)[a&1])
			a >>= 1
		}
	}
	d.unaligned.skip(2)
}

// twoBitTile reads 4 colors then, per row, a u16 holding 2 bits per pixel
// (LSB-first), all from the aligned stream.
func (d *tileDecoder) twoBitTile() {
	colors := d.aligned.bytes(4)
	d.aligned.skip(4)
	for y := 0; y < 8; y++ {
		a := uint32(d.aligned.u16())
		for x := 0; x < 8; x++ {
			d.setPixel(x, y, colors[a&3])
			a >>= 2
		}
	}
}

// threeBitTile reads 8 rows of 24-bit packed indices (3 bits/pixel) from
// the aligned stream, then 8 colors from the unaligned stream.
func (d *tileDecoder) threeBitTile() {
	for y := 0; y < 8; y++ {
		a := d.aligned.u32(3)
		for x := 0; x < 8; x++ {
			d.setPixel(x, y, d.unaligned.bytes(8)[a&7])
			a >>= 3
		}
	}
	d.unaligned.skip(8)
}

// fourBitTile reads 8 rows of 32-bit packed indices (4 bits/pixel) from
// the aligned stream, then 16 colors from the unaligned stream.
func (d *tileDecoder) fourBitTile() {
	for y := 0; y < 8; y++ {
		a := d.aligned.u32(4)
		for x := 0; x < 8; x++ {
			d.setPixel(x, y, d.unaligned.bytes(16)[a&15])
			a >>= 4
		}
	}
	d.unaligned.skip(16)
}

// oneBitSplitTile decodes each 4x4 quadrant independently: one u16 mask
// followed by 2 colors, both from the aligned stream.
func (d *tileDecoder) oneBitSplitTile() {
	for _, offset := range splitTileOffsets {
		a := uint32(d.aligned.u16())
		colors := d.aligned.bytes(2)
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				d.current[d.currentTile+offset+x+y*d.width] = colors[a&1]
				a >>= 1
			}
		}
		d.aligned.skip(2)
	}
}

// twoBitSplitTile decodes each quadrant from a u32 index packet + 4
// colors, all from the aligned stream.
func (d *tileDecoder) twoBitSplitTile() {
	for _, offset := range splitTileOffsets {
		a := d.aligned.u32(4)
		colors := d.aligned.bytes(4)
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				d.current[d.currentTile+offset+x+y*d.width] = colors[a&3]
				a >>= 2
			}
		}
		d.aligned.skip(4)
	}
}

// threeBitSplitTile decodes each quadrant from 8 unaligned colors and two
// 24-bit packed index rows (one 24-bit aligned read covers two rows).
func (d *tileDecoder) threeBitSplitTile() {
	for _, offset := range splitTileOffsets {
		var a uint32
		colors := d.unaligned.bytes(8)
		for y := 0; y < 4; y++ {
			if y&1 == 0 {
				a = d.aligned.u32(3)
			}
			for x := 0; x < 4; x++ {
				d.current[d.currentTile+offset+x+y*d.width] = colors[a&7]
				a >>= 3
			}
		}
		d.unaligned.skip(8)
	}
}
