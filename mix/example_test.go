// SPDX-License-Identifier: EPL-2.0

package mix_test

import (
	"fmt"

	"github.com/ik5/chmix/mix"
	"github.com/ik5/chmix/speaker"
)

// ExampleDefault demonstrates deriving the default downmix from 5.1 to
// stereo.
func ExampleDefault() {
	m := mix.Default()
	man := m.At(speaker.Surround51, speaker.Stereo)

	for _, dst := range speaker.Stereo.Speakers() {
		sources := man.Sources(dst)
		abbrs := make([]string, len(sources))
		for i, src := range sources {
			abbrs[i] = src.Abbr()
		}
		fmt.Printf("%s <- %v\n", dst.Abbr(), abbrs)
	}
	// Output:
	// FL <- [FL FC LFE BL]
	// FR <- [FR FC BR]
}

// ExampleParseManipulation demonstrates the compact text form.
func ExampleParseManipulation() {
	man := mix.ParseManipulation("FC!FL/FR,LFE!FC")
	fmt.Println(man.String())

	// A corrupt group is skipped, the rest still loads.
	man = mix.ParseManipulation("FL!XX,FC!FL")
	fmt.Println(man.String())
	// Output:
	// FC!FL/FR,LFE!FC
	// FC!FL
}

// ExampleLayoutMap_String demonstrates whole-matrix persistence.
func ExampleLayoutMap_String() {
	m := mix.NewLayoutMap()
	*m.At(speaker.Stereo, speaker.Mono) = mix.ParseManipulation("FC!FL/FR")
	*m.At(speaker.Mono, speaker.Stereo) = mix.ParseManipulation("FL!FC,FR!FC")

	text := m.String()
	fmt.Println(text)

	restored := mix.ParseLayoutMap(text)
	fmt.Println(restored.At(speaker.Stereo, speaker.Mono).String())
	// Output:
	// mono:stereo:FL!FC,FR!FC#stereo:mono:FC!FL/FR
	// FC!FL/FR
}
