// SPDX-License-Identifier: EPL-2.0

package mix

import (
	"strings"

	"github.com/ik5/chmix/speaker"
)

// Manipulation maps each destination speaker to the ordered list of
// source speakers feeding it. The zero value is an empty mapping with
// no contributions anywhere.
type Manipulation struct {
	mix [speaker.NumSpeakers][]speaker.ID
}

// Set replaces the source list for dst. Destinations outside the
// canonical catalog are ignored; they could never render anyway.
func (m *Manipulation) Set(dst speaker.ID, sources []speaker.ID) {
	if !dst.Valid() {
		return
	}
	m.mix[dst] = append([]speaker.ID(nil), sources...)
}

// Sources returns the source speakers feeding dst, empty when unset.
// The returned slice is owned by m.
func (m *Manipulation) Sources(dst speaker.ID) []speaker.ID {
	if !dst.Valid() {
		return nil
	}
	return m.mix[dst]
}

// add appends one contribution, preserving insertion order.
func (m *Manipulation) add(dst, src speaker.ID) {
	if !dst.Valid() {
		return
	}
	m.mix[dst] = append(m.mix[dst], src)
}

// Equal reports whether m and other hold identical source lists for
// every destination.
func (m *Manipulation) Equal(other *Manipulation) bool {
	for i := range m.mix {
		a, b := m.mix[i], other.mix[i]
		if len(a) != len(b) {
			return false
		}
		for j := range a {
			if a[j] != b[j] {
				return false
			}
		}
	}
	return true
}

// String serializes the mapping as DEST!SRC1/SRC2,DEST2!SRC1,...
// Destinations appear in ascending catalog order; empty destinations
// are omitted.
func (m *Manipulation) String() string {
	var groups []string
	for i := 0; i < speaker.NumSpeakers; i++ {
		sources := m.mix[i]
		if len(sources) == 0 {
			continue
		}
		abbrs := make([]string, len(sources))
		for j, src := range sources {
			abbrs[j] = src.Abbr()
		}
		groups = append(groups, speaker.ID(i).Abbr()+"!"+strings.Join(abbrs, "/"))
	}
	return strings.Join(groups, ",")
}

// ParseManipulation parses the form produced by String. Parsing is
// deliberately lenient so a partially corrupt saved mapping still
// loads: groups without exactly two fields around "!", unknown
// destination names and groups with no valid source are skipped, and
// unknown source names are dropped individually.
func ParseManipulation(text string) Manipulation {
	var m Manipulation
	for _, group := range strings.Split(text, ",") {
		parts := splitNonEmpty(group, "!")
		if len(parts) != 2 {
			continue
		}
		dst := speaker.FromAbbr(parts[0])
		if dst == speaker.None {
			continue
		}
		var sources []speaker.ID
		for _, abbr := range splitNonEmpty(parts[1], "/") {
			if src := speaker.FromAbbr(abbr); src != speaker.None {
				sources = append(sources, src)
			}
		}
		if len(sources) > 0 {
			m.Set(dst, sources)
		}
	}
	return m
}

// splitNonEmpty splits s on sep and drops empty fields, matching the
// serialization format's tolerance for stray separators.
func splitNonEmpty(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
