// SPDX-License-Identifier: EPL-2.0

// Package aiff probes AIFF streams for their channel arrangement.
//
// This package uses github.com/go-audio/aiff to read the COMM chunk.
// AIFF declares only a channel count, so the prober reports the
// conventional speaker order for that count (stereo for 2, 5.1 for 6,
// and so on):
//
//	prober := aiff.Prober{}
//	file, _ := os.Open("audio.aiff")
//	cm, err := prober.Probe(file)
//
// go-audio needs an io.ReadSeeker; plain readers are buffered into
// memory first.
//
// # Errors
//
// Probe returns ErrNotAiffFile for unrecognized streams, ErrNoChannels
// for a zero channel count, and ErrUnsupportedChannelCount when no
// conventional layout exists for the declared count.
package aiff
