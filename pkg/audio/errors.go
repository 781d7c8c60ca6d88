package audio

import (
	"errors"
	"fmt"
)

var (
	// ErrResourceNotFound means the audio resource does not exist or cannot
	// be opened.
	ErrResourceNotFound = errors.New("audio resource not found")

	// ErrUnsupportedFormat means the resource exists but is not 16-bit
	// little-endian stereo PCM.
	ErrUnsupportedFormat = errors.New("unsupported audio format")

	// ErrLengthMismatch is returned by Mix when the channel buffers differ in
	// length. It signals a caller bug and is never retried.
	ErrLengthMismatch = errors.New("channel length mismatch")

	// ErrInvalidChunkSize is returned for chunk sizes that are not a positive
	// multiple of FrameBytes.
	ErrInvalidChunkSize = errors.New("chunk size must be a positive multiple of 4")
)

// ResourceError wraps an open failure for a named resource.
type ResourceError struct {
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Path, ErrResourceNotFound, e.Err)
}

func (e *ResourceError) Is(target error) bool { return target == ErrResourceNotFound }

func (e *ResourceError) Unwrap() error { return e.Err }

// UnsupportedFormatError carries the rejected format and why.
type UnsupportedFormatError struct {
	Format Format
	Reason string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%v: %s (encoding=%s rate=%d channels=%d bits=%d)",
		ErrUnsupportedFormat, e.Reason, e.Format.Encoding, e.Format.SampleRate, e.Format.Channels, e.Format.BitDepth)
}

func (e *UnsupportedFormatError) Unwrap() error { return ErrUnsupportedFormat }

// LengthMismatchError records the two buffer lengths handed to Mix.
type LengthMismatchError struct {
	Left, Right int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("%v: left has %d samples, right has %d", ErrLengthMismatch, e.Left, e.Right)
}

func (e *LengthMismatchError) Unwrap() error { return ErrLengthMismatch }
