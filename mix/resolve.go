// SPDX-License-Identifier: EPL-2.0

package mix

import (
	"log"

	"github.com/ik5/chmix/speaker"
)

// Resolve converts two low-level channel maps into layout keys and
// returns the pair's manipulation, creating an empty one when absent.
func (m *LayoutMap) Resolve(src, dst speaker.ChannelMap) *Manipulation {
	return m.At(layoutOf(src), layoutOf(dst))
}

// layoutOf ORs the canonical bit of every raw channel into a layout.
// An unknown raw identifier is substituted with FrontLeft and noted in
// the log; the stream keeps playing on a best-effort mapping instead
// of failing the host.
func layoutOf(cm speaker.ChannelMap) speaker.Layout {
	layout := speaker.Default
	for _, raw := range cm {
		id, ok := speaker.FromRaw(raw)
		if !ok {
			log.Printf("chmix: unknown raw speaker id %d, assuming front-left", raw)
			id = speaker.FrontLeft
		}
		layout |= id.Mask()
	}
	return layout
}
