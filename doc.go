// SPDX-License-Identifier: EPL-2.0

// Package chmix computes and stores mappings between multichannel
// speaker layouts: for every output speaker, which input speakers feed
// it.
//
// The engine decides which sources contribute to which destination; it
// performs no sample mixing itself. A renderer consumes the computed
// manipulation to know which input channels to sum per output channel.
//
// # Packages
//
//   - speaker: the canonical speaker catalog and named layout registry
//   - mix: manipulations, the layout-pair matrix and its default
//     derivation, serialization, stream resolution
//   - formats/{wav,mp3,vorbis,aiff}: probers reporting a stream's
//     channel arrangement from its headers
//
// # Quick Start
//
// The simplest entry point probes a file and derives the default
// mapping to an output layout:
//
//	reg := mix.NewRegistry()
//	reg.Register("wav", wav.Prober{})
//
//	file, _ := os.Open("surround.wav")
//	man, _ := chmix.DefaultManipulation(reg, "wav", file, "stereo")
//
//	for _, dst := range speaker.Stereo.Speakers() {
//	    fmt.Println(dst.Abbr(), "<-", man.Sources(dst))
//	}
//
// # Default Matrix
//
// For full control, build the whole default matrix once and index it
// by layout pair:
//
//	m := mix.Default()
//	man := m.At(speaker.Surround51, speaker.Stereo)
//
// Entries are mutable in place, so a host can expose them for user
// editing and persist the matrix with m.String(), restoring it later
// with mix.ParseLayoutMap.
//
// # Derivation Rules
//
// When a source position is missing from the destination, an ordered
// per-speaker fallback chain decides where it lands: back speakers
// prefer back center, then their side neighbor, then the front of
// their half; the center splits across the front pair; everything
// collapses to front center for mono output. See the mix package
// documentation for the full rules.
package chmix
