package acfconv

import (
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hraban/opus"
	"github.com/sirupsen/logrus"
)

var logger = logrus.New()

// SetLogLevel sets the log level for this package.
func SetLogLevel(level logrus.Level) {
	logger.SetLevel(level)
}

// AudioBuilder accumulates SoundBuf/SoundFrm chunk payloads into a mono
// 8-bit PCM buffer, the same `audio.IntBuffer` assembly MakePCM performed
// over NVR audio-channel chunks, adapted to this container's raw
// single-stream audio blobs.
type AudioBuilder struct {
	sampleRate int
	data       []int
}

// NewAudioBuilder returns a builder for the given sample rate (normally
// Format.AudioSampleRate).
func NewAudioBuilder(sampleRate int) *AudioBuilder {
	return &AudioBuilder{sampleRate: sampleRate}
}

// AddPCM appends one SoundBuf/SoundFrm payload's raw 8-bit samples.
func (b *AudioBuilder) AddPCM(payload []byte) {
	for _, sample := range payload {
		b.data = append(b.data, int(sample))
	}
}

// SampleRate returns the rate the builder was constructed with, for
// collaborators (like the SAL_COMP Opus probe) that need it without
// reaching into the eventual IntBuffer.
func (b *AudioBuilder) SampleRate() int {
	return b.sampleRate
}

// IntBuffer returns the accumulated samples as a mono, 8-bit
// `audio.IntBuffer`, ready for `wav.NewEncoder`.
func (b *AudioBuilder) IntBuffer() *audio.IntBuffer {
	return &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  b.sampleRate,
		},
		SourceBitDepth: 8,
		Data:           b.data,
	}
}

// WriteWAV encodes buf as a WAV file.
func WriteWAV(w io.WriteSeeker, buf *audio.IntBuffer) error {
	encoder := wav.NewEncoder(w, buf.Format.SampleRate, buf.SourceBitDepth, buf.Format.NumChannels, 1)
	if err := encoder.Write(buf); err != nil {
		return fmt.Errorf("acfconv: encoding wav: %w", err)
	}
	return encoder.Close()
}

// ProbeOpusPayload attempts to decode a SAL_COMP chunk's payload as a
// single Opus frame. This predates Opus by a decade; it exists purely as
// a best-effort diagnostic for anyone poking at whether a given capture's
// SAL_COMP blobs happen to carry something Opus can parse, not as a claim
// that this container uses Opus. Any failure is logged and swallowed.
func ProbeOpusPayload(payload []byte, sampleRate, channels int) bool {
	decoder, err := opus.NewDecoder(sampleRate, channels)
	if err != nil {
		logger.Debugf("SAL_COMP opus probe: could not create decoder: %v", err)
		return false
	}
	pcm := make([]int16, sampleRate/10*channels)
	n, err := decoder.Decode(payload, pcm)
	if err != nil {
		logger.Debugf("SAL_COMP opus probe: decode failed: %v", err)
		return false
	}
	logger.Debugf("SAL_COMP opus probe: decoded %d samples (no correctness claim)", n)
	return true
}
