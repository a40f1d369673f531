// SPDX-License-Identifier: EPL-2.0

package mix

import (
	"io"
	"sync"

	"github.com/ik5/chmix/speaker"
)

// Prober reports the channel arrangement of an encoded audio stream by
// reading its headers.
type Prober interface {
	Probe(r io.Reader) (speaker.ChannelMap, error)
}

// Registry for probers by format key (e.g., "wav", "mp3", "ogg").
type Registry struct {
	probers map[string]Prober

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		probers: make(map[string]Prober),
		mtx:     &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, p Prober) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.probers[format] = p
}

func (r *Registry) Get(format string) (Prober, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	p, ok := r.probers[format]
	return p, ok
}
