package clock

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrequency(t *testing.T) {
	tests := []struct {
		line    string
		want    int
		wantErr bool
	}{
		{line: "48", want: 48},
		{line: "  24  ", want: 24},
		{line: "\t12\r", want: 12},
		{line: "0", want: 0},
		{line: "+36", want: 36},
		{line: "", wantErr: true},
		{line: "   ", wantErr: true},
		{line: "abc", wantErr: true},
		{line: "0x30", wantErr: true},
		{line: "48 MHz", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseFrequency(tt.line)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrMalformedInput, "line %q", tt.line)
			continue
		}
		require.NoError(t, err, "line %q", tt.line)
		assert.Equal(t, tt.want, got, "line %q", tt.line)
	}
}

func TestReadFrequencyOnlyUsesFirstLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "up5k_pll_freq")
	require.NoError(t, os.WriteFile(path, []byte("30\nnot a number\n"), 0o644))

	mhz, err := ReadFrequency(path)
	require.NoError(t, err)
	assert.Equal(t, 30, mhz)
}

func TestReadFrequencyCRLF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "up5k_pll_freq")
	require.NoError(t, os.WriteFile(path, []byte("42\r\n"), 0o644))

	mhz, err := ReadFrequency(path)
	require.NoError(t, err)
	assert.Equal(t, 42, mhz)
}

func TestReadFrequencyErrorsNamePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing_pll_freq")

	_, err := ReadFrequency(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrResourceNotFound))
	assert.Contains(t, err.Error(), path)
}

func TestReadFrequencyOverlongLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "up5k_pll_freq")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("9", 70*1024)), 0o644))

	_, err := ReadFrequency(path)
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestFrequencyPath(t *testing.T) {
	assert.Equal(t, filepath.Join("src", "up5k_pll_freq"), FrequencyPath("", "up5k"))
	assert.Equal(t, filepath.Join("build", "src", "hx8k_pll_freq"), FrequencyPath("build", "hx8k"))
}
