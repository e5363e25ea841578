package acf

import (
	"encoding/binary"
	"fmt"
)

// FrameDecoder holds the double-buffered frame state and decodes one
// video chunk payload at a time against the currently installed Format.
//
// The two buffers are two fixed, independently allocated slices with a
// boolean selector rather than a pointer pair: swapping never aliases,
// it only flips which slice is addressed as "current".
type FrameDecoder struct {
	width, height int
	bufA, bufB    *ImageBuffer
	currentIsA    bool
}

// NewFrameDecoder allocates both buffers, zero-filled, for width x height.
func NewFrameDecoder(width, height int) *FrameDecoder {
	return &FrameDecoder{
		width:      width,
		height:     height,
		bufA:       NewImageBuffer(width, height),
		bufB:       NewImageBuffer(width, height),
		currentIsA: true,
	}
}

func (f *FrameDecoder) current() []byte {
	if f.currentIsA {
		return f.bufA.Pixels
	}
	return f.bufB.Pixels
}

func (f *FrameDecoder) previous() []byte {
	if f.currentIsA {
		return f.bufB.Pixels
	}
	return f.bufA.Pixels
}

func (f *FrameDecoder) swap() {
	f.currentIsA = !f.currentIsA
}

// Reset zero-fills both buffers in place, without reallocating, for a
// Format chunk that repeats the same dimensions.
func (f *FrameDecoder) Reset() {
	f.bufA.Clear()
	f.bufB.Clear()
	f.currentIsA = true
}

// SameDimensions reports whether f was built for the given width/height.
func (f *FrameDecoder) SameDimensions(width, height int) bool {
	return f.width == width && f.height == height
}

// DecodedFrame is the emitted result of one KeyFrame/DltFrame chunk: the
// pixel raster (width*height, indexed) plus the palette active at the
// time of emission.
type DecodedFrame struct {
	Image   *ImageBuffer
	Palette []byte
}

// Width and Height proxy the underlying image buffer's dimensions.
func (f *DecodedFrame) Width() int  { return f.Image.Width }
func (f *DecodedFrame) Height() int { return f.Image.Height }

// DecodeFrame decodes one KeyFrame/DltFrame payload, dispatching 64
// opcodes per (width/8)*(height/8) tiles in raster order, and returns the
// just-completed frame (read from *current* before the buffer swap)
// alongside a DecodeStatus flagging any tolerance breach or unsupported
// compressor.
//
// data must hold at least size bytes -- the chunk's declared payload --
// plus a few bytes of trailing slack (see Parser.safePayload): a cursor
// is allowed to overrun the declared size by a small tolerance without
// that overrun being an out-of-bounds slice read.
func (f *FrameDecoder) DecodeFrame(data []byte, size int, format Format, palette *PaletteStore) (*DecodedFrame, DecodeStatus, error) {
	status := Clean
	if !format.supported() {
		status = DecodeStatus{Degraded: true, Reason: "unsupported compressor variant"}
	}

	if size < 4 {
		return nil, status, fmt.Errorf("acf: frame payload too short for color_offset header: %w", ErrTruncatedChunk)
	}
	colorOffset := int(binary.LittleEndian.Uint32(data[0:4]))

	opcodeBytes := (f.height / 8) * 30
	alignedStart := 4 + opcodeBytes
	if alignedStart > len(data) || colorOffset > len(data) {
		return nil, status, fmt.Errorf("acf: frame payload shorter than opcode array: %w", ErrStreamOverrun)
	}

	opcodes := data[4 : 4+opcodeBytes]
	aligned := newCursor(data, alignedStart)
	unaligned := newCursor(data, colorOffset)

	tileCols := f.width / 8
	tileRows := f.height / 8

	d := &tileDecoder{
		aligned:   aligned,
		unaligned: unaligned,
		width:     f.width,
		current:   f.current(),
		previous:  f.previous(),
	}

	opcodeOffset := 0
	var codes int32 = -1
	tilesDecoded := 0

	for y := 0; y < tileRows; y++ {
		for x := 0; x < tileCols; x++ {
			if codes == -1 {
				codes = readOpcodeWord(opcodes, opcodeOffset)
				opcodeOffset += 3
			}

			dispatch(d, int(codes&63))
			tilesDecoded++

			d.currentTile += 8
			d.previousTile += 8
			codes >>= 6
		}
		d.currentTile += f.width * 7
		d.previousTile += f.width * 7
	}

	// A cursor landing up to 3 bytes past the declared payload size is
	// tolerated as clean (real captures rarely consume every last padding
	// byte); only an overrun beyond that is flagged. data is guaranteed to
	// extend past size by at least that much (see Parser.safePayload), so
	// this comparison never reflects a read that ran off the real buffer.
	const overrunTolerance = 3
	if (aligned.offset-size > overrunTolerance || unaligned.offset-size > overrunTolerance) && !status.Degraded {
		status = DecodeStatus{Degraded: true, Reason: "stream cursor overran the frame payload beyond tolerance"}
	}

	if tilesDecoded != tileRows*tileCols {
		return nil, status, fmt.Errorf("acf: decoded %d tiles, want %d", tilesDecoded, tileRows*tileCols)
	}

	emitted := &ImageBuffer{
		Width:  f.width,
		Height: f.height,
		Pixels: append([]byte(nil), f.current()...),
	}
	frame := &DecodedFrame{
		Image:   emitted,
		Palette: palette.Bytes(),
	}

	f.swap()

	return frame, status, nil
}

// readOpcodeWord reads the 3-byte little-endian opcode refill at offset
// and forces its top byte to 0xFF, the sentinel that makes "register
// exhausted" (codes == -1) distinguishable from any real opcode word.
func readOpcodeWord(opcodes []byte, offset int) int32 {
	var b [3]byte
	copy(b[:], opcodes[offset:])
	word := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | 0xff000000
	return int32(word)
}

// dispatch is the 64-opcode table from §4.5, reproduced verbatim.
func dispatch(d *tileDecoder, opcode int) {
	switch opcode {
	case 0:
		d.rawTile()

	case 1:
		d.zeroMotion()
	case 2:
		d.zeroMotion()
		d.update4()
	case 3:
		d.zeroMotion()
		d.update8()
	case 4:
		d.zeroMotion()
		d.update16()

	case 5:
		d.shortMotion8()
	case 6:
		d.shortMotion8()
		d.update4()
	case 7:
		d.shortMotion8()
		d.update8()
	case 8:
		d.shortMotion8()
		d.update16()

	case 9:
		d.motion8()
	case 10:
		d.motion8()
		d.update4()
	case 11:
		d.motion8()
		d.update8()
	case 12:
		d.motion8()
		d.update16()

	case 13:
		d.shortMotion4()
	case 14:
		d.shortMotion4()
		d.update4()
	case 15:
		d.shortMotion4()
		d.update8()
	case 16:
		d.shortMotion4()
		d.update16()

	case 17:
		d.motion4()
	case 18:
		d.motion4()
		d.update4()
	case 19:
		d.motion4()
		d.update8()
	case 20:
		d.motion4()
		d.update16()

	case 21:
		d.singleColorFill()
	case 22:
		d.singleColorFill()
		d.update4()
	case 23:
		d.singleColorFill()
		d.update8()
	case 24:
		d.singleColorFill()
		d.update16()

	case 25:
		d.fourColorFill()
	case 26:
		d.fourColorFill()
		d.update4()
	case 27:
		d.fourColorFill()
		d.update8()
	case 28:
		d.fourColorFill()
		d.update16()

	case 29:
		d.oneBitTile()
	case 30:
		d.twoBitTile()
	case 31:
		d.threeBitTile()
	case 32:
		d.fourBitTile()

	case 33:
		d.oneBitSplitTile()
	case 34:
		d.twoBitSplitTile()
	case 35:
		d.threeBitSplitTile()

	case 36:
		d.cross()
	case 37:
		d.prime()

	case 38:
		d.oneBankTile()
	case 39:
		d.twoBanksTile()

	case 40:
		d.blockDecodeHorizontal()
	case 41:
		d.blockDecodeVertical()
	case 42:
		d.blockDecode2()
	case 43:
		d.blockDecode3()

	case 44:
		d.blockBank1DecodeHorizontal()
	case 45:
		d.blockBank1DecodeVertical()
	case 46:
		d.blockBank1Decode2()
	case 47:
		d.blockBank1Decode3()

	case 48:
		d.roMotion8()
	case 49:
		d.roMotion8()
		d.update4()
	case 50:
		d.roMotion8()
		d.update8()
	case 51:
		d.roMotion8()
		d.update16()

	case 52:
		d.rcMotion8()
	case 53:
		d.rcMotion8()
		d.update4()
	case 54:
		d.rcMotion8()
		d.update8()
	case 55:
		d.rcMotion8()
		d.update16()

	case 56:
		d.roMotion4()
	case 57:
		d.roMotion4()
		d.update4()
	case 58:
		d.roMotion4()
		d.update8()
	case 59:
		d.roMotion4()
		d.update16()

	case 60:
		d.rcMotion4()
	case 61:
		d.rcMotion4()
		d.update4()
	case 62:
		d.rcMotion4()
		d.update8()
	case 63:
		d.rcMotion4()
		d.update16()
	}
}
