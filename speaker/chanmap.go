// SPDX-License-Identifier: EPL-2.0

package speaker

// ChannelMap is a low-level ordered channel list carrying raw
// container-level speaker identifiers, as read from a stream header.
// Raw identifiers coincide with catalog indices; values outside the
// catalog may appear when a container declares exotic positions.
type ChannelMap []uint8

// NewChannelMap builds a channel map from canonical speaker ids.
func NewChannelMap(ids ...ID) ChannelMap {
	cm := make(ChannelMap, len(ids))
	for i, id := range ids {
		cm[i] = uint8(id)
	}
	return cm
}

// FromRaw converts a raw container-level identifier into a catalog id.
// The second result is false when the identifier lies outside the
// catalog; callers decide the degrade policy.
func FromRaw(raw uint8) (ID, bool) {
	if int(raw) < NumSpeakers {
		return ID(raw), true
	}
	return None, false
}

// defaultMaps lists the conventional layout assumed for a channel
// count when the container carries no explicit placement info.
var defaultMaps = map[int]Layout{
	1: Mono,
	2: Stereo,
	3: Surround30,
	4: Quad,
	5: Surround50,
	6: Surround51,
	7: Surround61,
	8: Surround71,
}

// DefaultChannelMap returns the conventional speaker order for a
// stream of n channels, nil when no convention exists for n.
func DefaultChannelMap(n int) ChannelMap {
	layout, ok := defaultMaps[n]
	if !ok {
		return nil
	}
	return NewChannelMap(layout.Speakers()...)
}
