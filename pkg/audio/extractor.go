package audio

import (
	"fmt"
	"io"
)

// Extractor deinterleaves 16-bit little-endian stereo PCM. It holds no
// state besides its chunk size and is safe for concurrent use.
type Extractor struct {
	chunkSize int
}

// NewExtractor returns an extractor reading chunkSize bytes at a time.
// chunkSize must be a positive multiple of FrameBytes.
func NewExtractor(chunkSize int) (*Extractor, error) {
	if !validChunkSize(chunkSize) {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidChunkSize, chunkSize)
	}
	return &Extractor{chunkSize: chunkSize}, nil
}

// ChunkSize returns the read size in bytes.
func (e *Extractor) ChunkSize() int {
	return e.chunkSize
}

var defaultExtractor = &Extractor{chunkSize: DefaultChunkSize}

// ExtractChannel reads r to exhaustion and returns the samples of ch.
func ExtractChannel(r io.Reader, ch Channel) ([]int16, error) {
	return defaultExtractor.Extract(r, ch)
}

// Split reads r to exhaustion and returns both channels.
func Split(r io.Reader) (left, right []int16, err error) {
	return defaultExtractor.Split(r)
}

// Extract reads r, which must already be known to hold 16-bit stereo
// little-endian PCM, and returns the samples of ch in time order. An empty
// stream yields an empty, non-nil slice.
func (e *Extractor) Extract(r io.Reader, ch Channel) ([]int16, error) {
	if !ch.valid() {
		return nil, fmt.Errorf("extract: invalid channel %v", ch)
	}

	out := make([]int16, 0, e.chunkSize/FrameBytes)
	cr := NewChunkReader(r, e.chunkSize)
	for cr.Next() {
		out = appendChannel(out, cr.Chunk(), ch.offset())
	}
	if err := cr.Err(); err != nil {
		return nil, fmt.Errorf("extract %s channel: %w", ch, err)
	}
	return out, nil
}

// Split is Extract for both channels in a single pass over r.
func (e *Extractor) Split(r io.Reader) (left, right []int16, err error) {
	left = make([]int16, 0, e.chunkSize/FrameBytes)
	right = make([]int16, 0, e.chunkSize/FrameBytes)

	cr := NewChunkReader(r, e.chunkSize)
	for cr.Next() {
		chunk := cr.Chunk()
		left = appendChannel(left, chunk, Left.offset())
		right = appendChannel(right, chunk, Right.offset())
	}
	if err := cr.Err(); err != nil {
		return nil, nil, fmt.Errorf("split channels: %w", err)
	}
	return left, right, nil
}

// appendChannel walks a frame-aligned chunk two bytes at a time and keeps
// the samples whose frame offset matches want (0 for left, 2 for right).
func appendChannel(dst []int16, chunk []byte, want int) []int16 {
	for off := 0; off+1 < len(chunk); off += SampleBytes {
		if off%FrameBytes != want {
			continue
		}
		dst = append(dst, DecodeSample(chunk[off], chunk[off+1]))
	}
	return dst
}
