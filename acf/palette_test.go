package acf_test

import (
	"testing"

	"github.com/adeline-acf/acf-video-tool/acf"
	"github.com/stretchr/testify/require"
)

func TestPaletteStoreRejectsWrongSizedPayload(t *testing.T) {
	p := acf.NewPaletteStore()
	err := p.Replace(make([]byte, 100))
	require.ErrorIs(t, err, acf.ErrBadPalette)
}

func TestPaletteStoreRoundTripsBytesIdentically(t *testing.T) {
	p := acf.NewPaletteStore()
	payload := make([]byte, 768)
	for i := range payload {
		payload[i] = byte(i)
	}
	require.NoError(t, p.Replace(payload))
	require.Equal(t, payload, p.Bytes())
}

func TestPaletteStoreDecodesColorsInRGBTriplets(t *testing.T) {
	p := acf.NewPaletteStore()
	payload := make([]byte, 768)
	payload[0], payload[1], payload[2] = 10, 20, 30
	payload[3], payload[4], payload[5] = 40, 50, 60
	require.NoError(t, p.Replace(payload))

	colors := p.Colors()
	require.Equal(t, acf.RGB{R: 10, G: 20, B: 30}, colors[0])
	require.Equal(t, acf.RGB{R: 40, G: 50, B: 60}, colors[1])
}

func TestNewPaletteStoreStartsAllZero(t *testing.T) {
	p := acf.NewPaletteStore()
	require.Equal(t, make([]byte, 768), p.Bytes())
}
