// SPDX-License-Identifier: EPL-2.0

// Package vorbis probes Ogg Vorbis streams for their channel
// arrangement.
//
// This package uses github.com/jfreymuth/oggvorbis to read the stream
// headers. Vorbis does not carry explicit speaker placement; the
// Vorbis I specification fixes the channel order per channel count
// instead, and the prober reports that order:
//
//	1 channel:  FC
//	2 channels: FL FR
//	3 channels: FL FC FR
//	4 channels: FL FR BL BR
//	5 channels: FL FC FR BL BR
//	6 channels: FL FC FR BL BR LFE
//	7 channels: FL FC FR SL SR BC LFE
//	8 channels: FL FC FR SL SR BL BR LFE
//
// # Usage
//
//	prober := vorbis.Prober{}
//	file, _ := os.Open("audio.ogg")
//	cm, err := prober.Probe(file)
//
// Counts above eight are application defined in Vorbis; those return
// ErrUnsupportedChannelCount.
package vorbis
