package audio

import (
	"bytes"
	"encoding/binary"
)

// DecodeSample rebuilds a signed sample from its little-endian byte pair.
func DecodeSample(lo, hi byte) int16 {
	return int16(uint16(hi)<<8 | uint16(lo&0xFF))
}

// EncodeSample splits s into its little-endian byte pair, truncating each
// half to 8 bits.
func EncodeSample(s int16) (lo, hi byte) {
	return byte(s & 0xFF), byte((s >> 8) & 0xFF)
}

// PCMInt16ToLE converts mono int16 samples to raw little-endian bytes.
func PCMInt16ToLE(samples []int16) []byte {
	var buf bytes.Buffer
	buf.Grow(len(samples) * SampleBytes)
	_ = binary.Write(&buf, binary.LittleEndian, samples)
	return buf.Bytes()
}

// LEToPCMInt16 converts raw little-endian bytes back to int16 samples.
// A trailing odd byte is ignored.
func LEToPCMInt16(b []byte) []int16 {
	out := make([]int16, len(b)/SampleBytes)
	_ = binary.Read(bytes.NewReader(b[:len(out)*SampleBytes]), binary.LittleEndian, &out)
	return out
}
