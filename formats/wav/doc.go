// SPDX-License-Identifier: EPL-2.0

// Package wav probes WAV streams for their channel arrangement.
//
// The prober reads only headers: the RIFF preamble and the fmt chunk.
// It never touches sample data.
//
// # Channel Masks
//
// WAVE_FORMAT_EXTENSIBLE files declare speaker placement explicitly in
// dwChannelMask. The mask bit order matches the canonical speaker
// catalog, so each set bit converts straight into a raw channel id:
//
//	prober := wav.Prober{}
//	file, _ := os.Open("surround.wav")
//	cm, err := prober.Probe(file)
//
// Plain PCM files only declare a channel count; those receive the
// conventional order for that count (stereo for 2, 5.1 for 6, and so
// on). A mask that contradicts the declared count is ignored the same
// way.
//
// # Errors
//
// Probe returns sentinel errors for streams that are not WAV, carry no
// fmt chunk, declare zero channels, or declare a count with no known
// conventional layout. I/O errors are wrapped and returned as-is.
package wav
