package audio

import (
	"encoding/base64"
	"errors"
	"math"
)

const wavHeaderSize = 44

// EncodeWAV encodes stereo samples in [-1, 1] as a 16-bit PCM WAV file.
func EncodeWAV(samples [][2]float64, sampleRate int) ([]byte, error) {
	if sampleRate <= 0 {
		return nil, errors.New("encode wav: sample rate must be positive")
	}

	dataSize := len(samples) * 4
	data := make([]byte, wavHeaderSize+dataSize)
	writeStereoWavHeader(data, dataSize, sampleRate)

	for i, s := range samples {
		l := toInt16(s[0])
		r := toInt16(s[1])
		writeUint16LE(data, wavHeaderSize+i*4, uint16(l))
		writeUint16LE(data, wavHeaderSize+i*4+2, uint16(r))
	}
	return data, nil
}

// WAVDataURL encodes samples as a base64 WAV data URL for the browser.
func WAVDataURL(samples [][2]float64, sampleRate int) (string, error) {
	data, err := EncodeWAV(samples, sampleRate)
	if err != nil {
		return "", err
	}
	return "data:audio/wav;base64," + base64.StdEncoding.EncodeToString(data), nil
}

func toInt16(v float64) int16 {
	if math.IsNaN(v) {
		return 0
	}
	v = math.Max(-1, math.Min(1, v))
	return int16(math.Round(v * 32767))
}

// writeStereoWavHeader writes a 16-bit stereo WAV header to the buffer.
func writeStereoWavHeader(data []byte, dataSize, sampleRate int) {
	// RIFF header
	copy(data[0:4], "RIFF")
	writeUint32LE(data, 4, uint32(dataSize+36))
	copy(data[8:12], "WAVE")

	// fmt sub-chunk
	copy(data[12:16], "fmt ")
	writeUint32LE(data, 16, 16)                   // Sub-chunk size
	writeUint16LE(data, 20, 1)                    // Audio format (PCM)
	writeUint16LE(data, 22, 2)                    // Channels (stereo)
	writeUint32LE(data, 24, uint32(sampleRate))   // Sample rate
	writeUint32LE(data, 28, uint32(sampleRate*4)) // Byte rate
	writeUint16LE(data, 32, 4)                    // Block align
	writeUint16LE(data, 34, 16)                   // Bits per sample

	// data sub-chunk
	copy(data[36:40], "data")
	writeUint32LE(data, 40, uint32(dataSize))
}

func writeUint16LE(data []byte, offset int, value uint16) {
	data[offset] = byte(value)
	data[offset+1] = byte(value >> 8)
}

func writeUint32LE(data []byte, offset int, value uint32) {
	data[offset] = byte(value)
	data[offset+1] = byte(value >> 8)
	data[offset+2] = byte(value >> 16)
	data[offset+3] = byte(value >> 24)
}
