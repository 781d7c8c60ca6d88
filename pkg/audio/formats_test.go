package audio_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Raikerian/go-stereo-codec/pkg/audio"
)

func TestFormatValidate(t *testing.T) {
	valid := audio.StereoPCM16(48_000)

	tests := []struct {
		name    string
		mutate  func(f *audio.Format)
		wantErr string
	}{
		{"valid", func(*audio.Format) {}, ""},
		{"mono", func(f *audio.Format) { f.Channels = 1 }, "channel count must be 2"},
		{"8-bit", func(f *audio.Format) { f.BitDepth = 8 }, "bit depth must be 16"},
		{"24-bit", func(f *audio.Format) { f.BitDepth = 24 }, "bit depth must be 16"},
		{"big-endian", func(f *audio.Format) { f.BigEndian = true }, "big-endian"},
		{"opus", func(f *audio.Format) { f.Encoding = "opus" }, "encoding opus is not pcm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := valid
			tt.mutate(&f)

			err := f.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, audio.ErrUnsupportedFormat)
			assert.Contains(t, err.Error(), tt.wantErr)

			var ufe *audio.UnsupportedFormatError
			require.True(t, errors.As(err, &ufe))
			assert.Equal(t, f, ufe.Format)
		})
	}
}

func TestParseChannel(t *testing.T) {
	tests := []struct {
		in      string
		want    audio.Channel
		wantErr bool
	}{
		{"left", audio.Left, false},
		{"L", audio.Left, false},
		{" Right ", audio.Right, false},
		{"r", audio.Right, false},
		{"center", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := audio.ParseChannel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChannelString(t *testing.T) {
	assert.Equal(t, "left", audio.Left.String())
	assert.Equal(t, "right", audio.Right.String())
	assert.Equal(t, "Channel(5)", audio.Channel(5).String())
}

func TestFormatValidateChannels(t *testing.T) {
	mono := audio.Format{Encoding: audio.PCMEncoding, SampleRate: 8000, Channels: 1, BitDepth: 16}

	assert.NoError(t, mono.ValidateChannels(1))
	assert.ErrorIs(t, mono.ValidateChannels(2), audio.ErrUnsupportedFormat)
	assert.ErrorIs(t, audio.StereoPCM16(8000).ValidateChannels(1), audio.ErrUnsupportedFormat)
}
