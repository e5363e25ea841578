package acf

import (
	"strconv"

	"github.com/hashicorp/go-version"
)

// chunkTag is the 8-byte ASCII tag that opens every chunk header.
type chunkTag string

const (
	tagKeyFrame chunkTag = "KeyFrame"
	tagDltFrame chunkTag = "DltFrame"
	tagFrameLen chunkTag = "FrameLen"
	tagFormat   chunkTag = "Format  "
	tagPalette  chunkTag = "Palette "
	tagSoundBuf chunkTag = "SoundBuf"
	tagSoundFrm chunkTag = "SoundFrm"
	tagSoundEnd chunkTag = "SoundEnd"
	tagSalStrt  chunkTag = "SAL_STRT"
	tagSalPart  chunkTag = "SAL_PART"
	tagSalEnd   chunkTag = "SAL_END "
	tagSalComp  chunkTag = "SAL_COMP"
	tagRecouvre chunkTag = "Recouvre"
	tagCamera   chunkTag = "Camera  "
	tagNulChunk chunkTag = "NulChunk"
	tagEnd      chunkTag = "End     "
)

// supportedCompressors constrains the Format record's compressor field to
// the primary codec this package implements. Compressor 0 satisfies it;
// compressor 1 (the XCF variant) does not, and is surfaced as a degraded
// decode rather than silently mis-decoded.
var supportedCompressors = mustConstraints("= 0")

func mustConstraints(raw string) version.Constraints {
	c, err := version.NewConstraint(raw)
	if err != nil {
		panic(err)
	}
	return c
}

// Format describes the video stream as declared by a Format chunk.
type Format struct {
	Width           int
	Height          int
	MaxFrameSize    uint32
	KeyFramePeriod  uint32
	PlayRate        uint32
	AudioSampleRate uint32
	AudioType       uint32
	AudioFlags      uint32
	Compressor      uint32
}

// TileCount returns (width/8) * (height/8), the invariant tile count per
// frame for this format.
func (f Format) TileCount() int {
	return (f.Width / 8) * (f.Height / 8)
}

// supported reports whether f.Compressor satisfies supportedCompressors.
func (f Format) supported() bool {
	v, err := version.NewVersion(strconv.Itoa(int(f.Compressor)))
	if err != nil {
		return false
	}
	return supportedCompressors.Check(v)
}

// FrameLenRecord is consumed informationally; it is never required to
// correctly decode a frame.
type FrameLenRecord struct {
	BiggestFrameSize uint32
	SectorCounts     []uint32
}

// Camera is one Camera chunk's payload: eight signed 32-bit fields.
type Camera struct {
	PositionX, PositionY, PositionZ int32
	TargetX, TargetY, TargetZ       int32
	Roll                            int32
	FocalLength                     int32
}

// DecodeStatus reports whether a frame decoded cleanly, per the
// tolerances and the compressor-variant gate.
type DecodeStatus struct {
	Degraded bool
	Reason   string
}

// Clean is the zero-value DecodeStatus: no degradation observed.
var Clean = DecodeStatus{}
