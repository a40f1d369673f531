// SPDX-License-Identifier: EPL-2.0

// Package speaker defines the canonical speaker catalog and the named
// channel-layout registry.
//
// This package contains the pure lookup tables the mixing engine is
// built on:
//   - ID for single speaker positions
//   - Layout for bitmask combinations of speakers
//   - ChannelMap for raw ordered channel lists read from containers
//
// # Speaker Catalog
//
// Eleven canonical positions are known, from FrontLeft to SideRight.
// Every position has a short name ("FL") and a long name ("Front
// Left"):
//
//	speaker.FrontLeft.Abbr()        // "FL"
//	speaker.FrontLeft.Description() // "Front Left"
//	speaker.FromAbbr("LFE")         // speaker.LowFrequency
//
// Lookups never fail: FromAbbr returns speaker.None for unknown names.
//
// # Scalar and Set Types
//
// ID is a scalar enumeration; Layout is a set. Every ID owns a
// distinct power-of-two bit, reached through an explicit conversion:
//
//	layout := speaker.FrontLeft.Mask() | speaker.FrontRight.Mask()
//	layout == speaker.Stereo // true
//
// Keeping the two types apart avoids confusing "one speaker" with
// "a set of speakers" at call sites.
//
// # Layout Registry
//
// Standard layouts carry mpv-style names:
//
//	speaker.LayoutByName("5.1")      // speaker.Surround51
//	speaker.Surround51.Name()        // "5.1"
//	speaker.Surround51.Speakers()    // [FL FR FC LFE BL BR]
//
// Speakers always decomposes in catalog order, not in the order a
// container happens to interleave channels. LayoutByName returns
// speaker.Default for unknown names.
//
// # Channel Maps
//
// A ChannelMap is what a container header reports: an ordered list of
// raw speaker identifiers. Raw identifiers coincide with catalog
// indices, so WAV channel-mask bit positions convert directly. When a
// stream declares only a channel count, DefaultChannelMap supplies the
// conventional order:
//
//	speaker.DefaultChannelMap(6) // FL FR FC LFE BL BR
package speaker
