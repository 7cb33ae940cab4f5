package speech

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePCM16(t *testing.T) {
	data := []byte{0x01, 0x00, 0xFF, 0xFF, 0x00, 0x80}
	assert.Equal(t, []int16{1, -1, -32768}, DecodePCM16(data))
}

func TestDecodePCM16DropsTrailingOddByte(t *testing.T) {
	data := []byte{0x01, 0x00, 0xAB}
	assert.Equal(t, []int16{1}, DecodePCM16(data))
	assert.Empty(t, DecodePCM16([]byte{0x42}))
	assert.Empty(t, DecodePCM16(nil))
}

func TestEncodeWAVHeader(t *testing.T) {
	samples := []int16{1, -1, 100}
	wav := EncodeWAV(samples, SampleRate)

	require.Len(t, wav, 44+len(samples)*2)
	assert.Equal(t, "RIFF", string(wav[0:4]))
	assert.Equal(t, "WAVE", string(wav[8:12]))
	assert.Equal(t, "fmt ", string(wav[12:16]))
	assert.Equal(t, "data", string(wav[36:40]))

	assert.EqualValues(t, 1, binary.LittleEndian.Uint16(wav[20:22]), "PCM format")
	assert.EqualValues(t, 1, binary.LittleEndian.Uint16(wav[22:24]), "mono")
	assert.EqualValues(t, SampleRate, binary.LittleEndian.Uint32(wav[24:28]))
	assert.EqualValues(t, SampleRate*2, binary.LittleEndian.Uint32(wav[28:32]), "byte rate")
	assert.EqualValues(t, 16, binary.LittleEndian.Uint16(wav[34:36]), "bits per sample")
	assert.EqualValues(t, len(samples)*2, binary.LittleEndian.Uint32(wav[40:44]))
	assert.EqualValues(t, 36+len(samples)*2, binary.LittleEndian.Uint32(wav[4:8]))

	// Sample payload round-trips.
	assert.Equal(t, samples, DecodePCM16(wav[44:]))
}
