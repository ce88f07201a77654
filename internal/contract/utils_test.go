package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBoolString(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
		wantErr  bool
	}{
		{"yes", true, false},
		{"YES", true, false},
		{"true", true, false},
		{"1", true, false},
		{"no", false, false},
		{"False", false, false},
		{"0", false, false},
		{"", false, true},
		{"auto", false, true},
		{"on", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBoolString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseColorString(t *testing.T) {
	original := stdoutIsTerminal
	t.Cleanup(func() { stdoutIsTerminal = original })

	stdoutIsTerminal = func() bool { return true }
	got, err := ParseColorString("auto")
	require.NoError(t, err)
	assert.True(t, got)

	stdoutIsTerminal = func() bool { return false }
	got, err = ParseColorString("AUTO")
	require.NoError(t, err)
	assert.False(t, got)

	got, err = ParseColorString("yes")
	require.NoError(t, err)
	assert.True(t, got)

	_, err = ParseColorString("sometimes")
	assert.Error(t, err)
}

func TestSelectOutputFile(t *testing.T) {
	file, err := SelectOutputFile("")
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, file)

	path := filepath.Join(t.TempDir(), "out.txt")
	file, err = SelectOutputFile(path)
	require.NoError(t, err)
	require.NoError(t, file.Close())
	assert.FileExists(t, path)

	_, err = SelectOutputFile(filepath.Join(t.TempDir(), "missing", "out.txt"))
	assert.Error(t, err)
}
