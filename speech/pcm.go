package speech

import "encoding/binary"

// SampleRate of the raw PCM returned by the TTS service: 16-bit
// little-endian mono at 24 kHz.
const SampleRate = 24000

// DecodePCM16 converts raw little-endian 16-bit PCM bytes into
// samples. A trailing odd byte is dropped.
func DecodePCM16(data []byte) []int16 {
	n := len(data) / 2
	samples := make([]int16, n)
	for i := 0; i < n; i++ {
		samples[i] = int16(binary.LittleEndian.Uint16(data[2*i:]))
	}
	return samples
}

// EncodeWAV frames mono 16-bit samples into a canonical WAV container
// so browsers can play the synthesized audio directly.
func EncodeWAV(samples []int16, sampleRate int) []byte {
	dataSize := len(samples) * 2
	buf := make([]byte, 44+dataSize)

	copy(buf[0:4], "RIFF")
	binary.LittleEndian.PutUint32(buf[4:8], uint32(36+dataSize))
	copy(buf[8:12], "WAVE")

	copy(buf[12:16], "fmt ")
	binary.LittleEndian.PutUint32(buf[16:20], 16)                    // PCM chunk size
	binary.LittleEndian.PutUint16(buf[20:22], 1)                     // PCM format
	binary.LittleEndian.PutUint16(buf[22:24], 1)                     // mono
	binary.LittleEndian.PutUint32(buf[24:28], uint32(sampleRate))    // sample rate
	binary.LittleEndian.PutUint32(buf[28:32], uint32(sampleRate*2))  // byte rate
	binary.LittleEndian.PutUint16(buf[32:34], 2)                     // block align
	binary.LittleEndian.PutUint16(buf[34:36], 16)                    // bits per sample

	copy(buf[36:40], "data")
	binary.LittleEndian.PutUint32(buf[40:44], uint32(dataSize))
	for i, sample := range samples {
		binary.LittleEndian.PutUint16(buf[44+2*i:], uint16(sample))
	}
	return buf
}
