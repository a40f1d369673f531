// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/chmix/speaker"
)

// Prober reports the channel map of an MP3 stream.
//
// go-mp3 always decodes to 2-channel output, so any stream it accepts
// probes as stereo.
type Prober struct{}

func (Prober) Probe(r io.Reader) (speaker.ChannelMap, error) {
	if _, err := gomp3.NewDecoder(r); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return speaker.DefaultChannelMap(2), nil
}
