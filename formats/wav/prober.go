// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/chmix/speaker"
)

const formatExtensible = 0xFFFE

// Prober reads WAV headers and reports the stream's channel map.
//
// WAVE_FORMAT_EXTENSIBLE streams carry a dwChannelMask whose bit order
// matches the canonical speaker catalog, so the mask converts
// directly. Plain PCM streams only declare a count and get the
// conventional order for it.
type Prober struct{}

func (Prober) Probe(r io.Reader) (speaker.ChannelMap, error) {
	header := make([]byte, 12)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if string(header[0:4]) != "RIFF" || string(header[8:12]) != "WAVE" {
		return nil, ErrNotWavFile
	}

	// Walk chunks until "fmt "; anything before it (LIST, JUNK) is
	// skipped.
	var chunk [8]byte
	for {
		if _, err := io.ReadFull(r, chunk[:]); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil, ErrNoFormatChunk
			}
			return nil, fmt.Errorf("%w", err)
		}
		size := binary.LittleEndian.Uint32(chunk[4:8])
		if string(chunk[0:4]) == "fmt " {
			return parseFormatChunk(r, size)
		}
		// Chunks are word aligned
		skip := int64(size)
		if size%2 == 1 {
			skip++
		}
		if _, err := io.CopyN(io.Discard, r, skip); err != nil {
			return nil, ErrNoFormatChunk
		}
	}
}

func parseFormatChunk(r io.Reader, size uint32) (speaker.ChannelMap, error) {
	if size < 16 {
		return nil, ErrShortFormatChunk
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	audioFormat := binary.LittleEndian.Uint16(buf[0:2])
	channels := int(binary.LittleEndian.Uint16(buf[2:4]))
	if channels == 0 {
		return nil, ErrNoChannels
	}

	if audioFormat == formatExtensible && size >= 24 {
		mask := binary.LittleEndian.Uint32(buf[20:24])
		if cm := channelMapFromMask(mask, channels); cm != nil {
			return cm, nil
		}
	}

	cm := speaker.DefaultChannelMap(channels)
	if cm == nil {
		return nil, ErrUnsupportedChannelCount
	}
	return cm, nil
}

// channelMapFromMask expands a dwChannelMask into raw channel ids; the
// bit index is the raw id. A mask that disagrees with the declared
// channel count is ignored in favor of the count-based default order.
func channelMapFromMask(mask uint32, channels int) speaker.ChannelMap {
	var cm speaker.ChannelMap
	for bit := 0; bit < 32; bit++ {
		if mask&(1<<bit) != 0 {
			cm = append(cm, uint8(bit))
		}
	}
	if len(cm) != channels {
		return nil
	}
	return cm
}
