// SPDX-License-Identifier: EPL-2.0

package mix

import (
	"strings"

	"github.com/ik5/chmix/speaker"
)

type layoutPair struct {
	src speaker.Layout
	dst speaker.Layout
}

// LayoutMap holds one Manipulation per ordered (source, destination)
// layout pair. It owns its entries; callers mutate them in place
// through At. Create with NewLayoutMap, Default or ParseLayoutMap.
type LayoutMap struct {
	entries map[layoutPair]*Manipulation
}

// NewLayoutMap returns an empty map. Missing pairs behave as "no mix".
func NewLayoutMap() *LayoutMap {
	return &LayoutMap{entries: make(map[layoutPair]*Manipulation)}
}

// At returns the manipulation for the pair, creating an empty entry
// when absent. It never fails; the returned pointer stays owned by the
// map.
func (m *LayoutMap) At(src, dst speaker.Layout) *Manipulation {
	key := layoutPair{src: src, dst: dst}
	man, ok := m.entries[key]
	if !ok {
		man = &Manipulation{}
		m.entries[key] = man
	}
	return man
}

// Default builds the full matrix of topologically derived
// manipulations for every ordered pair of named layouts. Every speaker
// of every source layout contributes somewhere: present positions pass
// through, everything else walks its fallback chain, so no destination
// speaker is left silent when any plausible source exists.
func Default() *LayoutMap {
	m := NewLayoutMap()
	layouts := speaker.Layouts()
	for _, src := range layouts {
		srcSpeakers := src.Speakers()
		for _, dst := range layouts {
			man := m.At(src, dst)
			for _, sp := range srcSpeakers {
				for _, target := range defaultTargets(sp, dst) {
					man.add(target, sp)
				}
			}
		}
	}
	return m
}

// String serializes the whole matrix as SRC:DST:MANIP#SRC2:DST2:...
// Pairs iterate in layout-registry order so output is deterministic.
// Pairs keyed by unregistered layouts have no name and are skipped.
func (m *LayoutMap) String() string {
	var records []string
	layouts := speaker.Layouts()
	for _, src := range layouts {
		for _, dst := range layouts {
			man, ok := m.entries[layoutPair{src: src, dst: dst}]
			if !ok {
				continue
			}
			records = append(records, src.Name()+":"+dst.Name()+":"+man.String())
		}
	}
	return strings.Join(records, "#")
}

// ParseLayoutMap parses the form produced by String. Records without
// exactly three fields around ":" and records naming unknown layouts
// are dropped; the rest of the text still loads.
func ParseLayoutMap(text string) *LayoutMap {
	m := NewLayoutMap()
	for _, record := range strings.Split(text, "#") {
		parts := splitNonEmpty(record, ":")
		if len(parts) != 3 {
			continue
		}
		src := speaker.LayoutByName(parts[0])
		dst := speaker.LayoutByName(parts[1])
		if src == speaker.Default || dst == speaker.Default {
			continue
		}
		*m.At(src, dst) = ParseManipulation(parts[2])
	}
	return m
}
