package wav

import "errors"

var (
	ErrNotWavFile              = errors.New("not a WAV file")
	ErrNoFormatChunk           = errors.New("no fmt chunk found")
	ErrShortFormatChunk        = errors.New("fmt chunk too short")
	ErrNoChannels              = errors.New("stream declares zero channels")
	ErrUnsupportedChannelCount = errors.New("no default layout for channel count")
)
