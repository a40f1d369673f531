// SPDX-License-Identifier: EPL-2.0

// Package chmaptest builds synthetic container fixtures for tests.
package chmaptest

import (
	"bytes"
	"encoding/binary"
)

// pcmGUID is the KSDATAFORMAT_SUBTYPE_PCM sub-format identifier used
// by WAVE_FORMAT_EXTENSIBLE headers.
var pcmGUID = [16]byte{
	0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10, 0x00,
	0x80, 0x00, 0x00, 0xAA, 0x00, 0x38, 0x9B, 0x71,
}

// WAVHeader returns a canonical PCM 16-bit WAV stream with the given
// channel count and an empty data chunk.
func WAVHeader(channels, sampleRate int) []byte {
	return buildWAV(channels, sampleRate, 0, false)
}

// ExtensibleWAVHeader returns a WAVE_FORMAT_EXTENSIBLE stream carrying
// the given dwChannelMask and an empty data chunk.
func ExtensibleWAVHeader(channels, sampleRate int, mask uint32) []byte {
	return buildWAV(channels, sampleRate, mask, true)
}

func buildWAV(channels, sampleRate int, mask uint32, extensible bool) []byte {
	fmtSize := 16
	if extensible {
		fmtSize = 40
	}

	buf := new(bytes.Buffer)
	buf.WriteString("RIFF")
	// 4 ("WAVE") + fmt chunk + empty data chunk
	binary.Write(buf, binary.LittleEndian, uint32(4+8+fmtSize+8))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(fmtSize))
	audioFormat := uint16(1)
	if extensible {
		audioFormat = 0xFFFE
	}
	binary.Write(buf, binary.LittleEndian, audioFormat)
	binary.Write(buf, binary.LittleEndian, uint16(channels))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate*channels*2)) // byte rate
	binary.Write(buf, binary.LittleEndian, uint16(channels*2))            // block align
	binary.Write(buf, binary.LittleEndian, uint16(16))                    // bits per sample
	if extensible {
		binary.Write(buf, binary.LittleEndian, uint16(22)) // cbSize
		binary.Write(buf, binary.LittleEndian, uint16(16)) // valid bits
		binary.Write(buf, binary.LittleEndian, mask)
		buf.Write(pcmGUID[:])
	}

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, uint32(0))

	return buf.Bytes()
}
