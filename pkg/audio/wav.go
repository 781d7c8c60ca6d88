package audio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/wav"
)

// WAVE fmt chunk format tags accepted for integer PCM.
const (
	wavFormatPCM        = 1
	wavFormatExtensible = 0xFFFE
)

// wavSizeUnknown is the data chunk size left by writers that stream a WAV
// file without seeking back to fill in its length.
const wavSizeUnknown = 0xFFFFFFFF

// Source is an opened WAV resource positioned at the start of its sample
// data. Read never returns bytes from chunks that follow the data chunk.
type Source struct {
	file   *os.File
	format Format
	data   io.Reader
}

// OpenWAV opens path and checks that it holds 16-bit little-endian stereo
// PCM. Open failures wrap ErrResourceNotFound; anything that parses but does
// not match wraps ErrUnsupportedFormat. A zero-byte file opens as an empty
// source with a zero sample rate.
func OpenWAV(path string) (*Source, error) {
	return openWAV(path, Channels)
}

// OpenMonoWAV is OpenWAV for 16-bit single-channel files.
func OpenMonoWAV(path string) (*Source, error) {
	return openWAV(path, 1)
}

func openWAV(path string, channels int) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ResourceError{Path: path, Err: err}
	}

	src, err := newWAVSource(f, channels)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return src, nil
}

func newWAVSource(f *os.File, channels int) (*Source, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, &ResourceError{Path: f.Name(), Err: err}
	}
	if info.IsDir() {
		return nil, &ResourceError{Path: f.Name(), Err: errors.New("is a directory")}
	}
	if info.Size() == 0 {
		format := Format{Encoding: PCMEncoding, Channels: channels, BitDepth: BitDepth}
		return &Source{file: f, format: format, data: eofReader{}}, nil
	}

	d := wav.NewDecoder(f)
	d.ReadInfo()
	if err := d.Err(); err != nil || d.NumChans == 0 {
		return nil, &UnsupportedFormatError{Reason: "not a RIFF/WAVE file"}
	}

	format := Format{
		Encoding:   wavEncoding(d.WavAudioFormat),
		SampleRate: int(d.SampleRate),
		Channels:   int(d.NumChans),
		BitDepth:   int(d.BitDepth),
	}
	if err := format.ValidateChannels(channels); err != nil {
		return nil, err
	}

	if err := d.FwdToPCM(); err != nil {
		return nil, &UnsupportedFormatError{Format: format, Reason: fmt.Sprintf("no data chunk: %v", err)}
	}

	data, err := pcmData(f, info.Size(), format)
	if err != nil {
		return nil, err
	}
	return &Source{file: f, format: format, data: data}, nil
}

// pcmData returns a reader over the data chunk whose header was the last
// thing read from f. The declared size is checked against the bytes left in
// the file: an unknown size runs to the end of the file, and a size past the
// end means the file was cut short.
func pcmData(f *os.File, fileSize int64, format Format) (io.Reader, error) {
	pos, err := f.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("failed to locate data chunk in %s: %w", f.Name(), err)
	}

	var size [4]byte
	if _, err := f.ReadAt(size[:], pos-int64(len(size))); err != nil {
		return nil, fmt.Errorf("failed to read data chunk size in %s: %w", f.Name(), err)
	}

	declared := int64(binary.LittleEndian.Uint32(size[:]))
	remaining := fileSize - pos
	switch {
	case declared == wavSizeUnknown:
		declared = remaining
	case declared > remaining:
		return nil, &UnsupportedFormatError{
			Format: format,
			Reason: fmt.Sprintf("data chunk declares %d bytes but only %d remain", declared, remaining),
		}
	}
	return io.LimitReader(f, declared), nil
}

func wavEncoding(tag uint16) string {
	switch tag {
	case wavFormatPCM, wavFormatExtensible:
		return PCMEncoding
	default:
		return fmt.Sprintf("wav-0x%04x", tag)
	}
}

// Format returns the format read from the fmt chunk.
func (s *Source) Format() Format {
	return s.format
}

func (s *Source) Read(p []byte) (int, error) {
	return s.data.Read(p)
}

// Close releases the underlying file.
func (s *Source) Close() error {
	return s.file.Close()
}

type eofReader struct{}

func (eofReader) Read([]byte) (int, error) { return 0, io.EOF }

// ExtractFile opens the WAV file at path and returns the samples of ch.
func ExtractFile(path string, ch Channel) ([]int16, error) {
	return defaultExtractor.ExtractFile(path, ch)
}

// SplitFile opens the WAV file at path and returns both channels.
func SplitFile(path string) (left, right []int16, err error) {
	return defaultExtractor.SplitFile(path)
}

// ExtractFile is Extract over a WAV file. The file is closed before
// returning on every path.
func (e *Extractor) ExtractFile(path string, ch Channel) ([]int16, error) {
	src, err := OpenWAV(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = src.Close() }()

	return e.Extract(src, ch)
}

// SplitFile is Split over a WAV file.
func (e *Extractor) SplitFile(path string) (left, right []int16, err error) {
	src, err := OpenWAV(path)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = src.Close() }()

	return e.Split(src)
}
