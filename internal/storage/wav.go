// Package storage reads and writes the files the codec consumes and
// produces. WAV containers are written with go-audio/wav and read back
// through audio.OpenMonoWAV.
package storage

import (
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/Raikerian/go-stereo-codec/pkg/audio"
)

const wavFormatPCM = 1

// WriteMonoWAV writes samples as a 16-bit single-channel WAV file.
func WriteMonoWAV(path string, samples []int16, sampleRate int) error {
	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}
	return writeWAV(path, data, 1, sampleRate)
}

// WriteStereoWAV wraps raw interleaved 16-bit little-endian stereo bytes,
// as produced by audio.Mix, in a WAV container.
func WriteStereoWAV(path string, raw []byte, sampleRate int) error {
	if len(raw)%audio.FrameBytes != 0 {
		return fmt.Errorf("stereo buffer of %d bytes is not frame aligned", len(raw))
	}
	samples := audio.LEToPCMInt16(raw)
	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}
	return writeWAV(path, data, audio.Channels, sampleRate)
}

func writeWAV(path string, data []int, channels, sampleRate int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	enc := wav.NewEncoder(f, sampleRate, audio.BitDepth, channels, wavFormatPCM)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: audio.BitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize %s: %w", path, err)
	}
	return nil
}

// WriteRaw writes headerless bytes to path.
func WriteRaw(path string, raw []byte) error {
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// ReadMonoWAV reads a 16-bit single-channel WAV file and returns its samples
// and sample rate. Open failures wrap audio.ErrResourceNotFound; any other
// layout wraps audio.ErrUnsupportedFormat. A zero-byte file yields no
// samples and a zero rate.
func ReadMonoWAV(path string) ([]int16, int, error) {
	src, err := audio.OpenMonoWAV(path)
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = src.Close() }()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read samples from %s: %w", path, err)
	}
	if len(data)%audio.SampleBytes != 0 {
		return nil, 0, &audio.UnsupportedFormatError{
			Format: src.Format(),
			Reason: fmt.Sprintf("data chunk of %d bytes splits a sample", len(data)),
		}
	}
	return audio.LEToPCMInt16(data), src.Format().SampleRate, nil
}
