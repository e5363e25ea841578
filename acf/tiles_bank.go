package acf

// cross decodes a split tile where each quadrant's 16 pixels are chosen
// from a 4-color aligned palette by an irregular, hard-coded bit lookup
// (not a regular N-bits-per-pixel scan); the lookup table is reproduced
// verbatim from the source.
func (d *tileDecoder) cross() {
	value := d.aligned.u32(4)
	for _, offset := range splitTileOffsets {
		colors := d.aligned.bytes(4)
		dest := d.currentTile + offset

		d.current[dest+0] = colors[value&1]
		d.current[dest+1] = colors[0]
		d.current[dest+2] = colors[0]
		d.current[dest+3] = colors[((value&2)>>1)*3]

		d.current[dest+320] = colors[1]
		d.current[dest+321] = colors[(value&4)>>2]
		d.current[dest+322] = colors[((value&8)>>3)*3]
		d.current[dest+323] = colors[3]

		d.current[dest+640] = colors[1]
		d.current[dest+641] = colors[1+((value&16)>>4)]
		d.current[dest+642] = colors[2+((value&32)>>5)]
		d.current[dest+643] = colors[3]

		d.current[dest+960] = colors[1+((value&64)>>6)]
		d.current[dest+961] = colors[2]
		d.current[dest+962] = colors[2]
		d.current[dest+963] = colors[2+((value&128)>>7)]

		d.aligned.skip(4)
		value >>= 8
	}
}

// prime decodes a tile with a single background color plus per-pixel
// overrides: an 8-byte aligned mask selects, for each set bit, the next
// unaligned byte instead of the background.
func (d *tileDecoder) prime() {
	primeColor := d.unaligned.u8()
	for y := 0; y < 8; y++ {
		a := d.aligned.u8()
		for x := 0; x < 8; x++ {
			if a&1 != 0 {
				d.setPixel(x, y, d.unaligned.u8())
			} else {
				d.setPixel(x, y, primeColor)
			}
			a >>= 1
		}
	}
}

// oneBankTile reads a single bank byte from the unaligned stream (its low
// nibble, left-shifted 4, is the bank offset) and 32 nibble-packed aligned
// bytes, two pixels per byte, low nibble first.
func (d *tileDecoder) oneBankTile() {
	bank := d.unaligned.u8() << 4
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if x&1 == 1 {
				d.setPixel(x, y, bank+(d.aligned.u8()>>4))
			} else {
				d.setPixel(x, y, bank+(d.aligned.bytes(1)[0]&15))
			}
		}
	}
}

// twoBanksTile reads two bank offsets packed into one unaligned byte, then
// 8 rows of 5-bits-per-pixel indices from a sliding 5-byte-per-row window
// over the aligned stream: each row peeks two overlapping 32-bit words so
// consecutive rows' bit windows share unconsumed high bits.
func (d *tileDecoder) twoBanksTile() {
	b := d.unaligned.u8()
	bank := [2]byte{(b & 0x0f) << 4, b & 0xf0}
	for y := 0; y < 8; y++ {
		part1 := d.aligned.peekU32(0)
		part2 := d.aligned.peekU32(4)
		d.aligned.skip(5)
		for x := 0; x < 8; x++ {
			d.setPixel(x, y, bank[(part1&16)>>4]+byte(part1&15))
			part1 >>= 5
			part1 |= part2 << 27
			part2 >>= 5
		}
	}
}

// blockDecodeHorizontal paints row by row: one aligned mask byte per row,
// one unaligned color per set bit, holding the last color across unset
// bits.
func (d *tileDecoder) blockDecodeHorizontal() {
	var lastColor byte
	for y := 0; y < 8; y++ {
		a := d.aligned.u8()
		for x := 0; x < 8; x++ {
			if a&1 != 0 {
				lastColor = d.unaligned.u8()
			}
			a >>= 1
			d.setPixel(x, y, lastColor)
		}
	}
}

// blockDecodeVertical is blockDecodeHorizontal transposed: one mask byte
// per column.
func (d *tileDecoder) blockDecodeVertical() {
	var lastColor byte
	for x := 0; x < 8; x++ {
		a := d.aligned.u8()
		for y := 0; y < 8; y++ {
			if a&1 != 0 {
				lastColor = d.unaligned.u8()
			}
			a >>= 1
			d.setPixel(x, y, lastColor)
		}
	}
}

// blockDecode2 is blockDecodeHorizontal's mask/color scan but written out
// along diagonalOffsets1 instead of row-major (x,y).
func (d *tileDecoder) blockDecode2() {
	var lastColor byte
	i := 0
	for y := 0; y < 8; y++ {
		a := d.aligned.u8()
		for x := 0; x < 8; x++ {
			if a&1 != 0 {
				lastColor = d.unaligned.u8()
			}
			a >>= 1
			d.current[d.currentTile+diagonalOffsets1[i]] = lastColor
			i++
		}
	}
}

// blockDecode3 is blockDecode2 with diagonalOffsets2.
func (d *tileDecoder) blockDecode3() {
	var lastColor byte
	i := 0
	for y := 0; y < 8; y++ {
		a := d.aligned.u8()
		for x := 0; x < 8; x++ {
			if a&1 != 0 {
				lastColor = d.unaligned.u8()
			}
			a >>= 1
			d.current[d.currentTile+diagonalOffsets2[i]] = lastColor
			i++
		}
	}
}

// blockBank1DecodeHorizontal is blockDecodeHorizontal with nibble-packed
// colors instead of whole bytes: a bank byte is peeked (not yet consumed)
// from the unaligned stream, its low nibble left-shifted 4 forms the bank
// offset, and its own high nibble supplies the first selected color before
// the cursor advances. Subsequent selections alternate low/high nibbles of
// following bytes. If the tile ends mid-byte (flag left set), the
// partially consumed byte is still skipped.
func (d *tileDecoder) blockBank1DecodeHorizontal() {
	var lastColor byte
	bank := d.unaligned.bytes(1)[0] << 4
	flag := true
	for y := 0; y < 8; y++ {
		a := d.aligned.u8()
		for x := 0; x < 8; x++ {
			if a&1 != 0 {
				if flag {
					lastColor = d.unaligned.u8() >> 4
					flag = false
				} else {
					lastColor = d.unaligned.bytes(1)[0] & 15
					flag = true
				}
			}
			a >>= 1
			d.setPixel(x, y, bank+lastColor)
		}
	}
	if flag {
		d.unaligned.skip(1)
	}
}

// blockBank1DecodeVertical is blockBank1DecodeHorizontal transposed.
func (d *tileDecoder) blockBank1DecodeVertical() {
	var lastColor byte
	bank := d.unaligned.bytes(1)[0] << 4
	flag := true
	for x := 0; x < 8; x++ {
		a := d.aligned.u8()
		for y := 0; y < 8; y++ {
			if a&1 != 0 {
				if flag {
					lastColor = d.unaligned.u8() >> 4
					flag = false
				} else {
					lastColor = d.unaligned.bytes(1)[0] & 15
					flag = true
				}
			}
			a >>= 1
			d.setPixel(x, y, bank+lastColor)
		}
	}
	if flag {
		d.unaligned.skip(1)
	}
}

// blockBank1Decode2 is blockBank1DecodeHorizontal written out along
// diagonalOffsets1.
func (d *tileDecoder) blockBank1Decode2() {
	var lastColor byte
	bank := d.unaligned.bytes(1)[0] << 4
	flag := true
	i := 0
	for y := 0; y < 8; y++ {
		a := d.aligned.u8()
		for x := 0; x < 8; x++ {
			if a&1 != 0 {
				if flag {
					lastColor = d.unaligned.u8() >> 4
					flag = false
				} else {
					lastColor = d.unaligned.bytes(1)[0] & 15
					flag = true
				}
			}
			a >>= 1
			d.current[d.currentTile+diagonalOffsets1[i]] = bank + lastColor
			i++
		}
	}
	if flag {
		d.unaligned.skip(1)
	}
}

// blockBank1Decode3 is blockBank1Decode2 with diagonalOffsets2.
func (d *tileDecoder) blockBank1Decode3() {
	var lastColor byte
	bank := d.unaligned.bytes(1)[0] << 4
	flag := true
	i := 0
	for y := 0; y < 8; y++ {
		a := d.aligned.u8()
		for x := 0; x < 8; x++ {
			if a&1 != 0 {
				if flag {
					lastColor = d.unaligned.u8() >> 4
					flag = false
				} else {
					lastColor = d.unaligned.bytes(1)[0] & 15
					flag = true
				}
			}
			a >>= 1
			d.current[d.currentTile+diagonalOffsets2[i]] = bank + lastColor
			i++
		}
	}
	if flag {
		d.unaligned.skip(1)
	}
}
