package chmix

import (
	"fmt"
	"io"

	"github.com/ik5/chmix/mix"
	"github.com/ik5/chmix/speaker"
)

// DefaultManipulation is a high-level convenience function that probes an
// encoded stream and returns the topologically derived default manipulation
// from the stream's channel layout to a named output layout.
//
// The function:
//   1. Looks up the prober registered for format
//   2. Probes the stream headers for their raw channel map
//   3. Builds the default matrix and resolves the pair
//
// Parameters:
//   - reg: registry holding the probers for the formats the caller supports
//   - format: format key the stream was registered under (e.g., "wav")
//   - r: the encoded stream; only headers are read
//   - outLayout: registered layout name of the output device (e.g., "5.1")
//
// Returns the pair's manipulation, owned by an internally built default
// matrix. Callers that need to persist user edits should build their own
// matrix with mix.Default and keep it.
//
// Note: This is a convenience function for common use cases. For more
// control, probe the stream yourself and use mix.LayoutMap directly.
//
// Example:
//
//	reg := mix.NewRegistry()
//	reg.Register("wav", wav.Prober{})
//	man, err := chmix.DefaultManipulation(reg, "wav", file, "stereo")
//	if err != nil {
//	    panic(err)
//	}
//	// man now lists which input channels feed each output speaker
func DefaultManipulation(reg *mix.Registry, format string, r io.Reader, outLayout string) (*mix.Manipulation, error) {
	prober, ok := reg.Get(format)
	if !ok {
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	cm, err := prober.Probe(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	out := speaker.LayoutByName(outLayout)
	if out == speaker.Default {
		return nil, fmt.Errorf("unknown layout: %s", outLayout)
	}

	m := mix.Default()
	return m.Resolve(cm, speaker.NewChannelMap(out.Speakers()...)), nil
}
