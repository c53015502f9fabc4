package utf8converter

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "missing source",
			err:  &InvalidInputError{Path: "not_exist.txt", Err: ErrSourceNotFound},
			want: "source file's path is incorrect, given file does not exist: not_exist.txt",
		},
		{
			name: "bad target extension",
			err:  &InvalidInputError{Path: "out.html", Err: ErrTargetExtension},
			want: "target file's extension is not allowed, try with .txt: out.html",
		},
		{
			name: "unknown encoding",
			err:  &ConversionError{Path: "noise.txt", Err: ErrEncodingUnknown},
			want: "unable to detect an encoding type for noise.txt",
		},
		{
			name: "decode failure",
			err:  &ConversionError{Path: "a.txt", Codec: "windows-1256", Err: ErrDecodeFailed},
			want: "unable to decode file: a.txt using codec windows-1256",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorKinds(t *testing.T) {
	invalid := fmt.Errorf("setup: %w", &InvalidInputError{Path: "x.html", Err: ErrSourceExtension})
	conversion := fmt.Errorf("run: %w", &ConversionError{Path: "x.txt", Codec: "UTF-8", Err: fmt.Errorf("%w: bad byte", ErrDecodeFailed)})

	assert.True(t, IsInvalidInput(invalid))
	assert.False(t, IsConversionError(invalid))
	assert.True(t, errors.Is(invalid, ErrInvalidInput))
	assert.True(t, errors.Is(invalid, ErrSourceExtension))
	assert.False(t, errors.Is(invalid, ErrConversion))

	assert.True(t, IsConversionError(conversion))
	assert.False(t, IsInvalidInput(conversion))
	assert.True(t, errors.Is(conversion, ErrConversion))
	assert.True(t, errors.Is(conversion, ErrDecodeFailed))
	assert.False(t, errors.Is(conversion, ErrEncodingUnknown))
}
