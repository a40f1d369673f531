// SPDX-License-Identifier: EPL-2.0

package speaker

import "testing"

func TestAbbr_RoundTrip(t *testing.T) {
	t.Parallel()

	for i := 0; i < NumSpeakers; i++ {
		id := ID(i)
		abbr := id.Abbr()
		if abbr == "" {
			t.Fatalf("ID(%d).Abbr() is empty", i)
		}
		if got := FromAbbr(abbr); got != id {
			t.Errorf("FromAbbr(%q) = %v, want %v", abbr, got, id)
		}
	}
}

func TestFromAbbr_Unknown(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "XX", "fl", "FRONT LEFT"} {
		if got := FromAbbr(name); got != None {
			t.Errorf("FromAbbr(%q) = %v, want None", name, got)
		}
	}
}

func TestDescription(t *testing.T) {
	t.Parallel()

	if got := FrontLeft.Description(); got != "Front Left" {
		t.Errorf("FrontLeft.Description() = %q, want %q", got, "Front Left")
	}

	if got := LowFrequency.Description(); got != "Low Frequency Effects" {
		t.Errorf("LowFrequency.Description() = %q, want %q", got, "Low Frequency Effects")
	}
}

func TestMask_DistinctPowerOfTwoBits(t *testing.T) {
	t.Parallel()

	seen := Default
	for i := 0; i < NumSpeakers; i++ {
		mask := ID(i).Mask()
		if mask == Default {
			t.Fatalf("ID(%d).Mask() is empty", i)
		}
		if mask&(mask-1) != 0 {
			t.Errorf("ID(%d).Mask() = %b, not a power of two", i, mask)
		}
		if seen&mask != 0 {
			t.Errorf("ID(%d).Mask() = %b overlaps another speaker", i, mask)
		}
		seen |= mask
	}
}

func TestInvalidID(t *testing.T) {
	t.Parallel()

	if None.Valid() {
		t.Error("None.Valid() = true, want false")
	}
	if got := None.Abbr(); got != "" {
		t.Errorf("None.Abbr() = %q, want empty", got)
	}
	if got := None.Description(); got != "" {
		t.Errorf("None.Description() = %q, want empty", got)
	}
	if got := None.Mask(); got != Default {
		t.Errorf("None.Mask() = %b, want Default", got)
	}
}
