// Package audio splits interleaved 16-bit little-endian stereo PCM into
// per-channel sample buffers and interleaves them back.
package audio

import "fmt"

// Format constants for the only layout the codec handles.
const (
	PCMEncoding = "pcm"

	BitDepth    = 16
	Channels    = 2 // interleaved stereo
	SampleBytes = BitDepth / 8
	FrameBytes  = SampleBytes * Channels // L lo, L hi, R lo, R hi

	// DefaultChunkSize is the read size used by the extractor, 1024 frames.
	// It only affects how often the underlying reader is called.
	DefaultChunkSize = 1024 * FrameBytes

	// DefaultSampleRate is assumed for headerless streams when the caller
	// does not say otherwise. It is carried through to written files only.
	DefaultSampleRate = 44_100 // Hz
)

// Format describes an audio stream as reported by whoever opened it.
type Format struct {
	Encoding   string
	SampleRate int
	Channels   int
	BitDepth   int
	BigEndian  bool
}

// StereoPCM16 returns the descriptor of a signed 16-bit little-endian
// stereo stream at the given rate.
func StereoPCM16(sampleRate int) Format {
	return Format{
		Encoding:   PCMEncoding,
		SampleRate: sampleRate,
		Channels:   Channels,
		BitDepth:   BitDepth,
	}
}

// Validate reports whether f is the 16-bit stereo little-endian PCM layout
// the codec operates on.
func (f Format) Validate() error {
	return f.ValidateChannels(Channels)
}

// ValidateChannels is Validate for 16-bit little-endian PCM with n
// channels. Channel files written by a split are checked with n == 1.
func (f Format) ValidateChannels(n int) error {
	switch {
	case f.Encoding != PCMEncoding:
		return &UnsupportedFormatError{Format: f, Reason: "encoding " + quoteOrEmpty(f.Encoding) + " is not pcm"}
	case f.BitDepth != BitDepth:
		return &UnsupportedFormatError{Format: f, Reason: "bit depth must be 16"}
	case f.Channels != n:
		return &UnsupportedFormatError{Format: f, Reason: fmt.Sprintf("channel count must be %d", n)}
	case f.BigEndian:
		return &UnsupportedFormatError{Format: f, Reason: "big-endian samples are not supported"}
	}
	return nil
}

func quoteOrEmpty(s string) string {
	if s == "" {
		return `""`
	}
	return s
}
