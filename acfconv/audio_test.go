package acfconv

import "testing"

func TestAudioBuilderIntBufferReflectsAddedPCM(t *testing.T) {
	b := NewAudioBuilder(22050)
	b.AddPCM([]byte{10, 20, 30})
	b.AddPCM([]byte{40})

	buf := b.IntBuffer()
	if buf.Format.NumChannels != 1 {
		t.Fatalf("NumChannels = %d, want 1", buf.Format.NumChannels)
	}
	if buf.Format.SampleRate != 22050 {
		t.Fatalf("SampleRate = %d, want 22050", buf.Format.SampleRate)
	}
	if buf.SourceBitDepth != 8 {
		t.Fatalf("SourceBitDepth = %d, want 8", buf.SourceBitDepth)
	}
	want := []int{10, 20, 30, 40}
	if len(buf.Data) != len(want) {
		t.Fatalf("Data = %v, want %v", buf.Data, want)
	}
	for i, v := range want {
		if buf.Data[i] != v {
			t.Fatalf("Data[%d] = %d, want %d", i, buf.Data[i], v)
		}
	}
}

func TestProbeOpusPayloadDegradesGracefullyOnGarbage(t *testing.T) {
	// This format predates Opus: any payload is just arbitrary legacy
	// compressed audio, so the probe must report false rather than panic
	// or error out of the caller's control flow.
	garbage := []byte{0x00, 0x01, 0x02, 0x03, 0x04}
	if ProbeOpusPayload(garbage, 22050, 1) {
		t.Fatalf("expected the probe to fail gracefully on non-Opus legacy audio")
	}
}
