package audio

import "io"

// Mix interleaves two equal-length channel buffers into 16-bit
// little-endian stereo bytes. Lengths are checked before anything is
// allocated; on mismatch the returned slice is nil.
func Mix(left, right []int16) ([]byte, error) {
	if len(left) != len(right) {
		return nil, &LengthMismatchError{Left: len(left), Right: len(right)}
	}

	out := make([]byte, len(left)*FrameBytes)
	interleave(out, left, right)
	return out, nil
}

// MixTo is Mix writing into dst. It returns the number of bytes written.
func MixTo(dst []byte, left, right []int16) (int, error) {
	if len(left) != len(right) {
		return 0, &LengthMismatchError{Left: len(left), Right: len(right)}
	}
	n := len(left) * FrameBytes
	if len(dst) < n {
		return 0, io.ErrShortBuffer
	}

	interleave(dst[:n], left, right)
	return n, nil
}

func interleave(out []byte, left, right []int16) {
	for k := range left {
		o := k * FrameBytes
		out[o], out[o+1] = EncodeSample(left[k])
		out[o+2], out[o+3] = EncodeSample(right[k])
	}
}
