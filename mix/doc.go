// SPDX-License-Identifier: EPL-2.0

// Package mix computes and stores channel manipulations: for every
// destination speaker, which source speakers feed it.
//
// This package is the engine core:
//   - Manipulation for one layout pair's per-destination source lists
//   - LayoutMap for the full (source, destination) matrix
//   - Default for the topologically derived default matrix
//   - Prober/Registry for resolving real streams into layout keys
//
// The engine only decides which sources feed which destination. It
// never touches samples; actual summation belongs to a renderer.
//
// # Default Derivation
//
// Default builds a manipulation for every ordered pair of named
// layouts. Per source speaker, in order:
//
//  1. Pass-through: a position present in the destination maps to
//     itself.
//  2. Mono collapse: everything maps to FrontCenter when the
//     destination is mono.
//  3. Fallback chain: an ordered per-speaker rule list, evaluated top
//     to bottom. BackLeft prefers BackCenter, then SideLeft, then
//     FrontLeft; FrontCenter splits to FrontLeft+FrontRight unless the
//     destination has both center-of pairs; and so on.
//
// Every chain terminates at FrontLeft and/or FrontRight, which every
// named layout except mono contains, so derivation never leaves a
// source speaker silently dropped.
//
// # Editing
//
//	m := mix.Default()
//	man := m.At(speaker.Surround51, speaker.Stereo)
//	man.Set(speaker.FrontLeft, []speaker.ID{speaker.FrontLeft, speaker.LowFrequency})
//
// At creates an empty entry when the pair is absent; a missing pair
// simply means "no mix".
//
// # Serialization
//
// Manipulations serialize as comma-separated groups:
//
//	FC!FL/FR,LFE!FC
//
// "!" separates the destination from its source list, "/" separates
// sources. The whole matrix serializes as "#"-joined records:
//
//	stereo:mono:FC!FL/FR#5.1:stereo:FL!FL,FR!FR,...
//
// Parsing is lenient on both levels: malformed groups or records are
// dropped and the remainder loads, so partially corrupt saved state
// degrades instead of losing everything.
//
// # Stream Resolution
//
// Resolve accepts the raw ordered channel maps a container header
// reports and ORs them into layout keys. An unrecognized raw speaker
// id degrades to FrontLeft with a log note rather than failing; see
// DESIGN notes before tightening that.
//
// # Concurrency
//
// Manipulation and LayoutMap are plain in-memory values with no
// internal locking; callers sharing one across goroutines must
// serialize access themselves. The prober Registry is safe for
// concurrent registration and lookup.
package mix
