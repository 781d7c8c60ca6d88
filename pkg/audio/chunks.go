package audio

import (
	"errors"
	"io"
)

// ChunkReader hands out fixed-size, frame-aligned chunks of a finite byte
// source until it is exhausted. It is consumed once; after Next returns
// false it keeps returning false.
//
// Usage mirrors bufio.Scanner:
//
//	cr := NewChunkReader(r, DefaultChunkSize)
//	for cr.Next() {
//	    process(cr.Chunk())
//	}
//	if err := cr.Err(); err != nil { ... }
type ChunkReader struct {
	r     io.Reader
	buf   []byte
	chunk []byte
	err   error
	done  bool
}

// NewChunkReader panics if size is not a positive multiple of FrameBytes;
// use Extractor for a checked constructor.
func NewChunkReader(r io.Reader, size int) *ChunkReader {
	if !validChunkSize(size) {
		panic(ErrInvalidChunkSize)
	}
	return &ChunkReader{r: r, buf: make([]byte, size)}
}

func validChunkSize(size int) bool {
	return size > 0 && size%FrameBytes == 0
}

// Next reads the next chunk. A short read at end of stream is trimmed to
// whole frames; a trailing partial frame is dropped.
func (cr *ChunkReader) Next() bool {
	if cr.done {
		return false
	}

	n, err := io.ReadFull(cr.r, cr.buf)
	switch {
	case err == nil:
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		cr.done = true
	default:
		cr.done = true
		cr.err = err
		cr.chunk = nil
		return false
	}

	n -= n % FrameBytes
	if n == 0 {
		cr.chunk = nil
		cr.done = true
		return false
	}
	cr.chunk = cr.buf[:n]
	return true
}

// Chunk returns the bytes read by the last successful Next. The slice is
// reused by the following call.
func (cr *ChunkReader) Chunk() []byte {
	return cr.chunk
}

// Err returns the first non-EOF read error.
func (cr *ChunkReader) Err() error {
	return cr.err
}
