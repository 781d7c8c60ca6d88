package audio_test

import (
	"bytes"
	"encoding/binary"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// wavBytes builds a canonical 44-byte-header WAV file around data. Any
// trailing chunks are appended verbatim after the data chunk.
func wavBytes(channels, bits int, data []byte, trailing ...[]byte) []byte {
	const rate = 8000
	blockAlign := channels * bits / 8

	extra := 0
	for _, t := range trailing {
		extra += len(t)
	}

	var b bytes.Buffer
	le := binary.LittleEndian
	b.WriteString("RIFF")
	_ = binary.Write(&b, le, uint32(4+8+16+8+len(data)+extra))
	b.WriteString("WAVE")

	b.WriteString("fmt ")
	_ = binary.Write(&b, le, uint32(16))
	_ = binary.Write(&b, le, uint16(1))
	_ = binary.Write(&b, le, uint16(channels))
	_ = binary.Write(&b, le, uint32(rate))
	_ = binary.Write(&b, le, uint32(rate*blockAlign))
	_ = binary.Write(&b, le, uint16(blockAlign))
	_ = binary.Write(&b, le, uint16(bits))

	b.WriteString("data")
	_ = binary.Write(&b, le, uint32(len(data)))
	b.Write(data)

	for _, t := range trailing {
		b.Write(t)
	}
	return b.Bytes()
}

func writeFile(t testing.TB, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

// randomStereo returns frames*4 bytes of deterministic noise.
func randomStereo(seed int64, frames int) []byte {
	r := rand.New(rand.NewSource(seed))
	buf := make([]byte, frames*4)
	_, _ = r.Read(buf)
	return buf
}

// Byte offsets into the header written by wavBytes.
const (
	wavFormatTagOffset = 20
	wavDataSizeOffset  = 40
)

// patchUint16 and patchUint32 overwrite a little-endian header field.
func patchUint16(b []byte, off int, v uint16) []byte {
	binary.LittleEndian.PutUint16(b[off:], v)
	return b
}

func patchUint32(b []byte, off int, v uint32) []byte {
	binary.LittleEndian.PutUint32(b[off:], v)
	return b
}
