// SPDX-License-Identifier: EPL-2.0

package mix

import "github.com/ik5/chmix/speaker"

// fallbackRule routes a source speaker to fixed targets when the
// destination layout contains every speaker of the require mask.
type fallbackRule struct {
	require speaker.Layout
	targets []speaker.ID
}

// fallback is the ordered rule list for one source speaker, evaluated
// top to bottom. final applies when no rule matches; every chain
// terminates at FrontLeft and/or FrontRight, which are members of
// every named layout except mono.
type fallback struct {
	rules []fallbackRule
	final []speaker.ID
}

// fallbacks describes where a source speaker goes when the destination
// layout lacks its position. FrontLeft and FrontRight have no entry:
// they are either passed through or collapsed to mono before the
// chains are consulted.
var fallbacks = map[speaker.ID]fallback{
	speaker.LowFrequency: {
		rules: []fallbackRule{
			{require: speaker.FrontCenter.Mask(), targets: []speaker.ID{speaker.FrontCenter}},
			{require: speaker.FrontLeftCenter.Mask(), targets: []speaker.ID{speaker.FrontLeftCenter}},
		},
		final: []speaker.ID{speaker.FrontLeft},
	},
	speaker.FrontCenter: {
		rules: []fallbackRule{
			{
				require: speaker.FrontLeftCenter.Mask() | speaker.FrontRightCenter.Mask(),
				targets: []speaker.ID{speaker.FrontLeftCenter, speaker.FrontRightCenter},
			},
		},
		final: []speaker.ID{speaker.FrontLeft, speaker.FrontRight},
	},
	speaker.BackLeft: {
		rules: []fallbackRule{
			{require: speaker.BackCenter.Mask(), targets: []speaker.ID{speaker.BackCenter}},
			{require: speaker.SideLeft.Mask(), targets: []speaker.ID{speaker.SideLeft}},
		},
		final: []speaker.ID{speaker.FrontLeft},
	},
	speaker.BackRight: {
		rules: []fallbackRule{
			{require: speaker.BackCenter.Mask(), targets: []speaker.ID{speaker.BackCenter}},
			{require: speaker.SideRight.Mask(), targets: []speaker.ID{speaker.SideRight}},
		},
		final: []speaker.ID{speaker.FrontRight},
	},
	speaker.FrontLeftCenter: {
		final: []speaker.ID{speaker.FrontLeft},
	},
	speaker.FrontRightCenter: {
		final: []speaker.ID{speaker.FrontRight},
	},
	speaker.SideLeft: {
		rules: []fallbackRule{
			{require: speaker.BackLeft.Mask(), targets: []speaker.ID{speaker.BackLeft}},
		},
		final: []speaker.ID{speaker.FrontLeft},
	},
	speaker.SideRight: {
		rules: []fallbackRule{
			{require: speaker.BackRight.Mask(), targets: []speaker.ID{speaker.BackRight}},
		},
		final: []speaker.ID{speaker.FrontRight},
	},
	speaker.BackCenter: {
		rules: []fallbackRule{
			{
				require: speaker.BackLeft.Mask() | speaker.BackRight.Mask(),
				targets: []speaker.ID{speaker.BackLeft, speaker.BackRight},
			},
			{
				require: speaker.SideLeft.Mask() | speaker.SideRight.Mask(),
				targets: []speaker.ID{speaker.SideLeft, speaker.SideRight},
			},
		},
		final: []speaker.ID{speaker.FrontLeft, speaker.FrontRight},
	},
}

// defaultTargets returns the destination speakers that receive src
// when mixing into dst: pass-through when the position exists, mono
// collapse to FrontCenter, then the source's fallback chain.
func defaultTargets(src speaker.ID, dst speaker.Layout) []speaker.ID {
	if dst.Contains(src) {
		return []speaker.ID{src}
	}
	if dst == speaker.Mono {
		return []speaker.ID{speaker.FrontCenter}
	}
	fb, ok := fallbacks[src]
	if !ok {
		// Only FrontLeft/FrontRight lack a chain and they cannot get
		// here: every named layout but mono contains both.
		return nil
	}
	for _, rule := range fb.rules {
		if dst.ContainsAll(rule.require) {
			return rule.targets
		}
	}
	return fb.final
}
