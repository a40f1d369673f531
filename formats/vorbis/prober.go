// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/chmix/speaker"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	Channels() int
}

// channelOrders lists the Vorbis I specification channel order per
// channel count. Above eight channels the order is application
// defined.
var channelOrders = map[int]speaker.ChannelMap{
	1: speaker.NewChannelMap(speaker.FrontCenter),
	2: speaker.NewChannelMap(speaker.FrontLeft, speaker.FrontRight),
	3: speaker.NewChannelMap(speaker.FrontLeft, speaker.FrontCenter, speaker.FrontRight),
	4: speaker.NewChannelMap(speaker.FrontLeft, speaker.FrontRight,
		speaker.BackLeft, speaker.BackRight),
	5: speaker.NewChannelMap(speaker.FrontLeft, speaker.FrontCenter, speaker.FrontRight,
		speaker.BackLeft, speaker.BackRight),
	6: speaker.NewChannelMap(speaker.FrontLeft, speaker.FrontCenter, speaker.FrontRight,
		speaker.BackLeft, speaker.BackRight, speaker.LowFrequency),
	7: speaker.NewChannelMap(speaker.FrontLeft, speaker.FrontCenter, speaker.FrontRight,
		speaker.SideLeft, speaker.SideRight, speaker.BackCenter, speaker.LowFrequency),
	8: speaker.NewChannelMap(speaker.FrontLeft, speaker.FrontCenter, speaker.FrontRight,
		speaker.SideLeft, speaker.SideRight, speaker.BackLeft, speaker.BackRight,
		speaker.LowFrequency),
}

// Prober reports the channel map of an Ogg Vorbis stream using the
// Vorbis I channel-order conventions.
type Prober struct{}

func (Prober) Probe(r io.Reader) (speaker.ChannelMap, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return channelMapOf(dec)
}

func channelMapOf(dec oggReader) (speaker.ChannelMap, error) {
	order, ok := channelOrders[dec.Channels()]
	if !ok {
		return nil, ErrUnsupportedChannelCount
	}
	return append(speaker.ChannelMap(nil), order...), nil
}
