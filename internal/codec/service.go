// Package codec runs split and join jobs over files, wiring the audio core to
// storage, configuration and logging.
package codec

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Raikerian/go-stereo-codec/internal/config"
	"github.com/Raikerian/go-stereo-codec/internal/storage"
	"github.com/Raikerian/go-stereo-codec/pkg/audio"
)

// Service splits stereo files into mono channel files and joins them back.
// It keeps no per-call state and may be shared.
type Service struct {
	logger     *zap.Logger
	extractor  *audio.Extractor
	sampleRate int
}

// SplitResult describes a finished split.
type SplitResult struct {
	Frames     int
	SampleRate int
}

// JoinResult describes a finished join.
type JoinResult struct {
	Frames     int
	Bytes      int
	SampleRate int
}

// NewService creates a Service from configuration.
func NewService(cfg *config.Config, logger *zap.Logger) (*Service, error) {
	extractor, err := audio.NewExtractor(cfg.Codec.ChunkSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create extractor: %w", err)
	}
	return &Service{
		logger:     logger.Named("codec"),
		extractor:  extractor,
		sampleRate: cfg.Output.SampleRate,
	}, nil
}

// Split reads the stereo file at in and writes its left and right channels
// to leftOut and rightOut. Inputs ending in .pcm or .raw are read as
// headerless 16-bit stereo; anything else must be a WAV file. Outputs follow
// the same extension rule.
func (s *Service) Split(ctx context.Context, in, leftOut, rightOut string) (*SplitResult, error) {
	logger := s.logger.With(zap.String("input", in))

	left, right, rate, err := s.readStereo(in)
	if err != nil {
		logger.Error("split failed", zap.Stringer("kind", ErrorKind(err)), zap.Error(err))
		return nil, err
	}
	logger.Debug("channels extracted",
		zap.Int("frames", len(left)),
		zap.Int("sample_rate", rate),
		zap.Int("chunk_size", s.extractor.ChunkSize()))

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.writeMono(leftOut, left, rate); err != nil {
		logger.Error("failed to write left channel", zap.String("output", leftOut), zap.Error(err))
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		s.discard(logger, leftOut)
		return nil, err
	}
	if err := s.writeMono(rightOut, right, rate); err != nil {
		logger.Error("failed to write right channel", zap.String("output", rightOut), zap.Error(err))
		s.discard(logger, leftOut)
		return nil, err
	}

	logger.Info("split complete",
		zap.String("left", leftOut),
		zap.String("right", rightOut),
		zap.Int("frames", len(left)))

	return &SplitResult{Frames: len(left), SampleRate: rate}, nil
}

// Join interleaves the mono files leftIn and rightIn into out. Both inputs
// must hold the same number of samples.
func (s *Service) Join(ctx context.Context, leftIn, rightIn, out string) (*JoinResult, error) {
	logger := s.logger.With(zap.String("left", leftIn), zap.String("right", rightIn))

	left, leftRate, err := s.readMono(leftIn)
	if err != nil {
		logger.Error("join failed", zap.Stringer("kind", ErrorKind(err)), zap.Error(err))
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	right, rightRate, err := s.readMono(rightIn)
	if err != nil {
		logger.Error("join failed", zap.Stringer("kind", ErrorKind(err)), zap.Error(err))
		return nil, err
	}

	rate, err := s.pickRate(leftRate, rightRate)
	if err != nil {
		logger.Error("join failed", zap.Error(err))
		return nil, err
	}

	raw, err := audio.Mix(left, right)
	if err != nil {
		logger.Error("join failed", zap.Stringer("kind", ErrorKind(err)), zap.Error(err))
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if isRaw(out) {
		err = storage.WriteRaw(out, raw)
	} else {
		err = storage.WriteStereoWAV(out, raw, rate)
	}
	if err != nil {
		logger.Error("failed to write output", zap.String("output", out), zap.Error(err))
		return nil, err
	}

	logger.Info("join complete", zap.String("output", out), zap.Int("frames", len(left)), zap.Int("bytes", len(raw)))

	return &JoinResult{Frames: len(left), Bytes: len(raw), SampleRate: rate}, nil
}

func (s *Service) readStereo(path string) (left, right []int16, rate int, err error) {
	if isRaw(path) {
		f, err := openRaw(path)
		if err != nil {
			return nil, nil, 0, err
		}
		defer func() { _ = f.Close() }()

		left, right, err = s.extractor.Split(f)
		return left, right, s.sampleRate, err
	}

	src, err := audio.OpenWAV(path)
	if err != nil {
		return nil, nil, 0, err
	}
	defer func() { _ = src.Close() }()

	rate = src.Format().SampleRate
	if rate == 0 {
		rate = s.sampleRate
	}
	left, right, err = s.extractor.Split(src)
	return left, right, rate, err
}

func (s *Service) readMono(path string) ([]int16, int, error) {
	if !isRaw(path) {
		return storage.ReadMonoWAV(path)
	}
	f, err := openRaw(path)
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(data)%audio.SampleBytes != 0 {
		return nil, 0, &audio.UnsupportedFormatError{
			Format: audio.Format{Encoding: audio.PCMEncoding, Channels: 1, BitDepth: audio.BitDepth},
			Reason: fmt.Sprintf("%s has an odd byte count", path),
		}
	}
	return audio.LEToPCMInt16(data), 0, nil
}

// openRaw opens a headerless input. A directory is reported the same way
// audio.OpenWAV reports one.
func openRaw(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &audio.ResourceError{Path: path, Err: err}
	}
	info, err := f.Stat()
	if err == nil && info.IsDir() {
		err = errors.New("is a directory")
	}
	if err != nil {
		_ = f.Close()
		return nil, &audio.ResourceError{Path: path, Err: err}
	}
	return f, nil
}

// discard removes an output written before a later step failed.
func (s *Service) discard(logger *zap.Logger, path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logger.Warn("failed to remove partial output", zap.String("output", path), zap.Error(err))
	}
}

func (s *Service) writeMono(path string, samples []int16, rate int) error {
	if isRaw(path) {
		return storage.WriteRaw(path, audio.PCMInt16ToLE(samples))
	}
	return storage.WriteMonoWAV(path, samples, rate)
}

// pickRate returns the common sample rate of two inputs, where 0 means the
// input carried no rate.
func (s *Service) pickRate(a, b int) (int, error) {
	switch {
	case a != 0 && b != 0 && a != b:
		return 0, fmt.Errorf("sample rates differ: left %d Hz, right %d Hz", a, b)
	case a != 0:
		return a, nil
	case b != 0:
		return b, nil
	default:
		return s.sampleRate, nil
	}
}

func isRaw(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pcm", ".raw":
		return true
	}
	return false
}

// Kind is the failure class of an error, used in logs and for exit codes.
type Kind string

// Failure classes reported by ErrorKind.
const (
	KindNone             Kind = ""
	KindResourceNotFound Kind = "resource_not_found"
	KindUnsupported      Kind = "unsupported_format"
	KindLengthMismatch   Kind = "length_mismatch"
	KindCanceled         Kind = "canceled"
	KindIO               Kind = "io"
)

func (k Kind) String() string { return string(k) }

// ErrorKind classifies err.
func ErrorKind(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, audio.ErrResourceNotFound):
		return KindResourceNotFound
	case errors.Is(err, audio.ErrUnsupportedFormat):
		return KindUnsupported
	case errors.Is(err, audio.ErrLengthMismatch):
		return KindLengthMismatch
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCanceled
	default:
		return KindIO
	}
}
