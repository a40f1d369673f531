// SPDX-License-Identifier: EPL-2.0

package speaker

// ID identifies one canonical speaker position. The catalog order is
// fixed; it matches the conventional WAV/FFmpeg channel-mask bit order.
type ID uint8

const (
	FrontLeft ID = iota
	FrontRight
	FrontCenter
	LowFrequency
	BackLeft
	BackRight
	FrontLeftCenter
	FrontRightCenter
	BackCenter
	SideLeft
	SideRight
)

// NumSpeakers is the size of the canonical catalog.
const NumSpeakers = int(SideRight) + 1

// None marks a failed catalog lookup.
const None ID = 0xFF

type speakerName struct {
	abbr string
	desc string
}

var names = [NumSpeakers]speakerName{
	{"FL", "Front Left"},
	{"FR", "Front Right"},
	{"FC", "Front Center"},
	{"LFE", "Low Frequency Effects"},
	{"BL", "Back Left"},
	{"BR", "Back Right"},
	{"FLC", "Front Left-of-Center"},
	{"FRC", "Front Right-of-Center"},
	{"BC", "Back Center"},
	{"SL", "Side Left"},
	{"SR", "Side Right"},
}

// Valid reports whether id belongs to the canonical catalog.
func (id ID) Valid() bool { return int(id) < NumSpeakers }

// Abbr returns the short display name ("FL"), empty for invalid ids.
func (id ID) Abbr() string {
	if !id.Valid() {
		return ""
	}
	return names[id].abbr
}

// Description returns the long display name ("Front Left"), empty for
// invalid ids.
func (id ID) Description() string {
	if !id.Valid() {
		return ""
	}
	return names[id].desc
}

// Mask returns the layout bit owned by id. Every speaker holds a
// distinct power-of-two bit so layouts compose as unions.
func (id ID) Mask() Layout {
	if !id.Valid() {
		return Default
	}
	return Layout(1) << id
}

// FromAbbr resolves a short display name back to its id. Returns None
// when the name is unknown; it never fails.
func FromAbbr(abbr string) ID {
	for i := range names {
		if names[i].abbr == abbr {
			return ID(i)
		}
	}
	return None
}
