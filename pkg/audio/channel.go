package audio

import (
	"fmt"
	"strings"
)

// Channel selects one side of an interleaved stereo frame.
type Channel int

const (
	Left Channel = iota
	Right
)

// offset is the byte position of the channel's low byte inside a frame.
func (c Channel) offset() int {
	return int(c) * SampleBytes
}

func (c Channel) valid() bool {
	return c == Left || c == Right
}

func (c Channel) String() string {
	switch c {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Channel(%d)", int(c))
	}
}

// ParseChannel accepts "left"/"l" and "right"/"r", case-insensitively.
func ParseChannel(s string) (Channel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	}
	return 0, fmt.Errorf("unknown channel %q (want left or right)", s)
}
