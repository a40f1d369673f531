package vorbis

import "errors"

var (
	ErrUnsupportedChannelCount = errors.New("no channel order for channel count")
)
