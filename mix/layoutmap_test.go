// SPDX-License-Identifier: EPL-2.0

package mix

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ik5/chmix/speaker"
)

func TestAt_CreatesEmptyEntry(t *testing.T) {
	t.Parallel()

	m := NewLayoutMap()
	man := m.At(speaker.Stereo, speaker.Surround51)

	var empty Manipulation
	if !man.Equal(&empty) {
		t.Errorf("At on empty map = %q, want empty manipulation", man.String())
	}

	// Repeated access returns the same entry.
	man.Set(speaker.FrontLeft, []speaker.ID{speaker.FrontLeft})
	if again := m.At(speaker.Stereo, speaker.Surround51); again != man {
		t.Error("At returned a different entry for the same pair")
	}
}

// Coverage: for every pair of named layouts, the default matrix gives
// every destination speaker with a plausible source at least one
// contribution, and never drops a source speaker entirely.
func TestDefault_Coverage(t *testing.T) {
	t.Parallel()

	m := Default()
	layouts := speaker.Layouts()
	for _, src := range layouts {
		for _, dst := range layouts {
			man := m.At(src, dst)

			contributed := make(map[speaker.ID]bool)
			for _, d := range dst.Speakers() {
				for _, s := range man.Sources(d) {
					contributed[s] = true
				}
			}
			for _, s := range src.Speakers() {
				if !contributed[s] {
					t.Errorf("%s->%s: source %s contributes nowhere",
						src.Name(), dst.Name(), s.Abbr())
				}
			}

			// A destination position the source also has is never
			// silent; pass-through guarantees at least itself.
			for _, d := range dst.Speakers() {
				if src.Contains(d) && len(man.Sources(d)) == 0 {
					t.Errorf("%s->%s: destination %s is silent",
						src.Name(), dst.Name(), d.Abbr())
				}
			}
		}
	}
}

// Pass-through identity: mapping a layout onto itself routes every
// speaker to itself and nothing else.
func TestDefault_PassThroughIdentity(t *testing.T) {
	t.Parallel()

	m := Default()
	for _, layout := range speaker.Layouts() {
		man := m.At(layout, layout)
		for _, id := range layout.Speakers() {
			want := []speaker.ID{id}
			if diff := cmp.Diff(want, man.Sources(id)); diff != "" {
				t.Errorf("%s: Sources(%s) mismatch (-want +got):\n%s",
					layout.Name(), id.Abbr(), diff)
			}
		}
	}
}

// Mono collapse: every source speaker of every layout feeds
// FrontCenter when the destination is mono.
func TestDefault_MonoCollapse(t *testing.T) {
	t.Parallel()

	m := Default()
	for _, src := range speaker.Layouts() {
		man := m.At(src, speaker.Mono)
		if diff := cmp.Diff(src.Speakers(), man.Sources(speaker.FrontCenter)); diff != "" {
			t.Errorf("%s->mono: Sources(FC) mismatch (-want +got):\n%s", src.Name(), diff)
		}
		for i := 0; i < speaker.NumSpeakers; i++ {
			if id := speaker.ID(i); id != speaker.FrontCenter && len(man.Sources(id)) != 0 {
				t.Errorf("%s->mono: unexpected contribution on %s", src.Name(), id.Abbr())
			}
		}
	}
}

func TestLayoutMapString_Format(t *testing.T) {
	t.Parallel()

	m := NewLayoutMap()
	*m.At(speaker.Stereo, speaker.Mono) = ParseManipulation("FC!FL/FR")

	if got := m.String(); got != "stereo:mono:FC!FL/FR" {
		t.Errorf("String() = %q, want %q", got, "stereo:mono:FC!FL/FR")
	}
}

func TestString_Deterministic(t *testing.T) {
	t.Parallel()

	m := Default()
	first := m.String()
	for n := 0; n < 5; n++ {
		if got := m.String(); got != first {
			t.Fatal("String() output is not deterministic")
		}
	}

	if !strings.Contains(first, "#") {
		t.Error("matrix serialization has no record separator")
	}
}

func TestParseLayoutMap_DropsMalformedRecords(t *testing.T) {
	t.Parallel()

	text := "stereo:mono:FC!FL/FR#garbage#nosuch:mono:FC!FL#stereo:nosuch:FC!FL#a:b:c:d#mono:stereo:FL!FC,FR!FC"
	m := ParseLayoutMap(text)

	want := ParseManipulation("FC!FL/FR")
	if got := m.At(speaker.Stereo, speaker.Mono); !got.Equal(&want) {
		t.Errorf("stereo->mono = %q, want %q", got.String(), want.String())
	}

	want = ParseManipulation("FL!FC,FR!FC")
	if got := m.At(speaker.Mono, speaker.Stereo); !got.Equal(&want) {
		t.Errorf("mono->stereo = %q, want %q", got.String(), want.String())
	}

	// Nothing else survived.
	if got := m.String(); strings.Count(got, "#") != 1 {
		t.Errorf("unexpected extra records in %q", got)
	}
}

// Round-trip (matrix): serializing and reparsing the default matrix
// reproduces every pair's entry.
func TestMatrixRoundTrip(t *testing.T) {
	t.Parallel()

	m := Default()
	parsed := ParseLayoutMap(m.String())

	layouts := speaker.Layouts()
	for _, src := range layouts {
		for _, dst := range layouts {
			want := m.At(src, dst)
			got := parsed.At(src, dst)
			if !got.Equal(want) {
				t.Errorf("%s->%s: round trip mismatch: %q vs %q",
					src.Name(), dst.Name(), want.String(), got.String())
			}
		}
	}

	if parsed.String() != m.String() {
		t.Error("reserialized matrix differs from original")
	}
}

func TestResolve_KnownChannelMaps(t *testing.T) {
	t.Parallel()

	m := Default()
	man := m.Resolve(
		speaker.NewChannelMap(speaker.FrontLeft, speaker.FrontRight),
		speaker.NewChannelMap(speaker.FrontCenter),
	)

	if man != m.At(speaker.Stereo, speaker.Mono) {
		t.Error("Resolve did not land on the stereo->mono entry")
	}
}

// Interleaving order does not matter; only membership does.
func TestResolve_OrderIndependent(t *testing.T) {
	t.Parallel()

	m := Default()
	a := m.Resolve(
		speaker.NewChannelMap(speaker.FrontLeft, speaker.FrontCenter, speaker.FrontRight),
		speaker.NewChannelMap(speaker.FrontCenter),
	)
	b := m.Resolve(
		speaker.NewChannelMap(speaker.FrontLeft, speaker.FrontRight, speaker.FrontCenter),
		speaker.NewChannelMap(speaker.FrontCenter),
	)

	if a != b {
		t.Error("Resolve depends on channel interleaving order")
	}
	if a != m.At(speaker.Surround30, speaker.Mono) {
		t.Error("Resolve did not land on the 3.0->mono entry")
	}
}

// Unknown raw identifiers degrade to FrontLeft instead of failing.
func TestResolve_UnknownRawDegrades(t *testing.T) {
	t.Parallel()

	m := NewLayoutMap()
	man := m.Resolve(speaker.ChannelMap{42}, speaker.NewChannelMap(speaker.FrontCenter))

	if man != m.At(speaker.FrontLeft.Mask(), speaker.Mono) {
		t.Error("unknown raw id did not degrade to a front-left layout")
	}
}
