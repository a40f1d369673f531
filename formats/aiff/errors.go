package aiff

import "errors"

var (
	ErrNotAiffFile             = errors.New("not an AIFF file")
	ErrNoChannels              = errors.New("stream declares zero channels")
	ErrUnsupportedChannelCount = errors.New("no default layout for channel count")
)
