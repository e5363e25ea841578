package acf

import (
	"encoding/binary"
	"fmt"
)

const chunkHeaderSize = 12

// overrunGuard is how many bytes of slack Parser.safePayload guarantees
// past a frame chunk's declared size, covering the frame decoder's 3-byte
// overrun tolerance plus the widest single read (a 4-byte u32) that could
// straddle the boundary.
const overrunGuard = 8

// Sink receives the side effects of walking a container: decoded video
// frames, camera records (keyed by the frame index active when the
// Camera chunk arrived), and the raw payloads of the audio-bearing chunk
// tags (SoundBuf/SoundFrm/SoundEnd/SAL_*), which this package treats as
// out-of-core data for an external collaborator to interpret.
type Sink interface {
	EmitFrame(frame *DecodedFrame, status DecodeStatus)
	EmitCamera(frameIndex int, camera Camera)
	EmitAudio(tag string, payload []byte)
}

// Parser walks a container byte buffer, maintaining the Format/Palette/
// FrameDecoder state that KeyFrame and DltFrame chunks need.
type Parser struct {
	data []byte

	format  Format
	palette *PaletteStore
	frameLn FrameLenRecord

	decoder *FrameDecoder

	frameIndex int
}

// NewParser wraps a full container byte buffer.
func NewParser(data []byte) *Parser {
	return &Parser{
		data:    data,
		palette: NewPaletteStore(),
	}
}

// Format returns the most recently installed Format record.
func (p *Parser) Format() Format {
	return p.format
}

// FrameCount returns the number of frames decoded so far.
func (p *Parser) FrameCount() int {
	return p.frameIndex
}

// Run walks every chunk until an End tag or end of input, dispatching to
// sink. It returns the number of frames decoded and the first error
// encountered, if any; StreamOverrun on an individual frame does not
// abort the walk (it is surfaced via DecodeStatus instead), but a
// TruncatedChunk header does.
func (p *Parser) Run(sink Sink) (int, error) {
	offset := 0
	for offset+chunkHeaderSize <= len(p.data) {
		tag := chunkTag(p.data[offset : offset+8])
		size := int(binary.LittleEndian.Uint32(p.data[offset+8 : offset+12]))
		payloadStart := offset + chunkHeaderSize
		payloadEnd := payloadStart + size

		logger.Debugf("chunk %q (%d bytes) at offset %d", string(tag), size, offset)

		if payloadEnd > len(p.data) {
			return p.frameIndex, fmt.Errorf("acf: chunk %q claims %d bytes, only %d remain: %w", string(tag), size, len(p.data)-payloadStart, ErrTruncatedChunk)
		}
		payload := p.data[payloadStart:payloadEnd]

		switch tag {
		case tagEnd:
			return p.frameIndex, nil

		case tagFormat:
			if err := p.installFormat(payload); err != nil {
				return p.frameIndex, err
			}

		case tagPalette:
			if err := p.palette.Replace(payload); err != nil {
				return p.frameIndex, fmt.Errorf("acf: %q chunk: %w", string(tag), err)
			}

		case tagFrameLen:
			p.frameLn = parseFrameLen(payload)

		case tagKeyFrame, tagDltFrame:
			if p.decoder == nil {
				return p.frameIndex, fmt.Errorf("acf: %q chunk before any Format chunk", string(tag))
			}
			frame, status, err := p.decoder.DecodeFrame(p.safePayload(payloadStart, size), size, p.format, p.palette)
			if err != nil {
				return p.frameIndex, fmt.Errorf("acf: decoding frame %d: %w", p.frameIndex, err)
			}
			p.frameIndex++
			if sink != nil {
				sink.EmitFrame(frame, status)
			}

		case tagCamera:
			camera := parseCamera(payload)
			if sink != nil {
				sink.EmitCamera(p.frameIndex, camera)
			}

		case tagNulChunk, tagRecouvre:
			// padding / unused; nothing to do.

		case tagSoundBuf, tagSoundFrm, tagSoundEnd, tagSalStrt, tagSalPart, tagSalEnd, tagSalComp:
			if sink != nil {
				sink.EmitAudio(string(tag), payload)
			}

		default:
			logger.Debugf("unknown chunk tag %q, skipping", string(tag))
		}

		offset = payloadEnd
	}

	return p.frameIndex, nil
}

// safePayload returns a slice starting at start covering at least size +
// overrunGuard bytes, so the frame decoder's cursors can overrun the
// declared chunk size within tolerance and still land on a real (if
// logically unrelated) byte instead of panicking on an out-of-bounds
// index. When start+size+overrunGuard runs past the input, the missing
// tail is zero-padded.
func (p *Parser) safePayload(start, size int) []byte {
	end := start + size + overrunGuard
	if end <= len(p.data) {
		return p.data[start:end]
	}
	buf := make([]byte, size+overrunGuard)
	copy(buf, p.data[start:])
	return buf
}

func (p *Parser) installFormat(payload []byte) error {
	const formatSize = 44
	if len(payload) < formatSize {
		return fmt.Errorf("acf: Format chunk is %d bytes, want at least %d", len(payload), formatSize)
	}
	u32 := func(n int) uint32 { return binary.LittleEndian.Uint32(payload[n : n+4]) }

	p.format = Format{
		Width:           int(u32(4)),
		Height:          int(u32(8)),
		MaxFrameSize:    u32(12),
		KeyFramePeriod:  u32(20),
		PlayRate:        u32(24),
		AudioSampleRate: u32(28),
		AudioType:       u32(32),
		AudioFlags:      u32(36),
		Compressor:      u32(40),
	}
	if p.decoder != nil && p.decoder.SameDimensions(p.format.Width, p.format.Height) {
		p.decoder.Reset()
	} else {
		p.decoder = NewFrameDecoder(p.format.Width, p.format.Height)
	}
	return nil
}

func parseFrameLen(payload []byte) FrameLenRecord {
	if len(payload) < 4 {
		return FrameLenRecord{}
	}
	rec := FrameLenRecord{
		BiggestFrameSize: binary.LittleEndian.Uint32(payload[0:4]),
	}
	counts := make([]uint32, 0, len(payload)-4)
	for _, b := range payload[4:] {
		counts = append(counts, uint32(b))
	}
	rec.SectorCounts = counts
	return rec
}

// parseCamera reads the eight signed 32-bit fields of a Camera chunk. The
// on-disk field order is x, z, y (not x, y, z) for both position and
// target; Camera's exported fields use the conventional x, y, z naming,
// so the y/z reads are swapped here to match.
func parseCamera(payload []byte) Camera {
	if len(payload) < 32 {
		return Camera{}
	}
	s32 := func(n int) int32 { return int32(binary.LittleEndian.Uint32(payload[n : n+4])) }
	return Camera{
		PositionX:   s32(0),
		PositionZ:   s32(4),
		PositionY:   s32(8),
		TargetX:     s32(12),
		TargetZ:     s32(16),
		TargetY:     s32(20),
		Roll:        s32(24),
		FocalLength: s32(28),
	}
}
