// SPDX-License-Identifier: EPL-2.0

package speaker

import "math/bits"

// Layout is a bitmask union of speaker Mask bits describing a standard
// channel configuration.
type Layout uint16

// Default is the sentinel empty layout. It is excluded from default
// matrix derivation and reported on failed name lookups.
const Default Layout = 0

func join(ids ...ID) Layout {
	var layout Layout
	for _, id := range ids {
		layout |= id.Mask()
	}
	return layout
}

// Standard layouts, mpv naming. 5.1 uses back speakers and 5.1(side)
// uses side speakers, matching mpv rather than FFmpeg.
var (
	Mono           = join(FrontCenter)
	Stereo         = join(FrontLeft, FrontRight)
	Stereo21       = join(FrontLeft, FrontRight, LowFrequency)
	Surround30     = join(FrontLeft, FrontRight, FrontCenter)
	Surround30Back = join(FrontLeft, FrontRight, BackCenter)
	Surround31     = join(FrontLeft, FrontRight, FrontCenter, LowFrequency)
	Quad           = join(FrontLeft, FrontRight, BackLeft, BackRight)
	QuadSide       = join(FrontLeft, FrontRight, SideLeft, SideRight)
	Surround40     = join(FrontLeft, FrontRight, FrontCenter, BackCenter)
	Surround41     = join(FrontLeft, FrontRight, FrontCenter, LowFrequency, BackCenter)
	Surround50     = join(FrontLeft, FrontRight, FrontCenter, BackLeft, BackRight)
	Surround50Side = join(FrontLeft, FrontRight, FrontCenter, SideLeft, SideRight)
	Surround51     = Surround50 | join(LowFrequency)
	Surround51Side = Surround50Side | join(LowFrequency)
	Surround60     = join(FrontLeft, FrontRight, FrontCenter, BackCenter, SideLeft, SideRight)
	Surround61     = Surround60 | join(LowFrequency)
	Surround70     = join(FrontLeft, FrontRight, FrontCenter, BackLeft, BackRight, SideLeft, SideRight)
	Surround71     = Surround70 | join(LowFrequency)
	Surround71Wide = Surround51 | join(FrontLeftCenter, FrontRightCenter)
)

type layoutEntry struct {
	name   string
	layout Layout
}

// registry holds every named layout in a stable presentation order.
var registry = []layoutEntry{
	{"mono", Mono},
	{"stereo", Stereo},
	{"2.1", Stereo21},
	{"3.0", Surround30},
	{"3.0(back)", Surround30Back},
	{"3.1", Surround31},
	{"quad", Quad},
	{"quad(side)", QuadSide},
	{"4.0", Surround40},
	{"4.1", Surround41},
	{"5.0", Surround50},
	{"5.0(side)", Surround50Side},
	{"5.1", Surround51},
	{"5.1(side)", Surround51Side},
	{"6.0", Surround60},
	{"6.1", Surround61},
	{"7.0", Surround70},
	{"7.1", Surround71},
	{"7.1(wide)", Surround71Wide},
}

// Names returns every registered layout name in registry order.
func Names() []string {
	out := make([]string, len(registry))
	for i, e := range registry {
		out[i] = e.name
	}
	return out
}

// Layouts returns every registered layout in registry order.
func Layouts() []Layout {
	out := make([]Layout, len(registry))
	for i, e := range registry {
		out[i] = e.layout
	}
	return out
}

// LayoutByName resolves a registered layout name. Returns Default when
// the name is unknown; it never fails.
func LayoutByName(name string) Layout {
	for _, e := range registry {
		if e.name == name {
			return e.layout
		}
	}
	return Default
}

// Name returns the registered name of l, empty when l is not a
// registered layout.
func (l Layout) Name() string {
	for _, e := range registry {
		if e.layout == l {
			return e.name
		}
	}
	return ""
}

// Contains reports whether l includes the speaker id.
func (l Layout) Contains(id ID) bool { return l&id.Mask() != 0 }

// ContainsAll reports whether l includes every bit of other.
func (l Layout) ContainsAll(other Layout) bool { return l&other == other }

// Count returns the number of speakers in l.
func (l Layout) Count() int { return bits.OnesCount16(uint16(l)) }

// Speakers decomposes l into speaker ids in canonical catalog order.
func (l Layout) Speakers() []ID {
	var out []ID
	for i := 0; i < NumSpeakers; i++ {
		if id := ID(i); l.Contains(id) {
			out = append(out, id)
		}
	}
	return out
}
