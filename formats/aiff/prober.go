// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/chmix/speaker"
)

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
}

// Prober reports the channel map of an AIFF stream. AIFF carries no
// speaker placement, only a count, so the conventional order for the
// count is reported.
type Prober struct{}

func (Prober) Probe(r io.Reader) (speaker.ChannelMap, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	return channelMapOf(dec)
}

func channelMapOf(dec aiffReader) (speaker.ChannelMap, error) {
	format := dec.Format()
	if format == nil || format.NumChannels == 0 {
		return nil, ErrNoChannels
	}
	cm := speaker.DefaultChannelMap(format.NumChannels)
	if cm == nil {
		return nil, ErrUnsupportedChannelCount
	}
	return cm, nil
}
