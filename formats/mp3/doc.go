// SPDX-License-Identifier: EPL-2.0

// Package mp3 probes MP3 streams for their channel arrangement.
//
// This package uses github.com/hajimehoshi/go-mp3 to validate the
// stream. go-mp3 decodes every stream to 2-channel output, so a valid
// MP3 always probes as stereo (FL, FR):
//
//	prober := mp3.Prober{}
//	file, _ := os.Open("audio.mp3")
//	cm, err := prober.Probe(file)
//
// Streams go-mp3 rejects return its error, wrapped.
package mp3
