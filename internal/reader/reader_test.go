package reader

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("Hello\nworld\n"), 0o644))

	text, err := ReadFile(path, "utf8")
	require.NoError(t, err)
	assert.Equal(t, "Hello\nworld\n", text)
}

func TestReadFileNotFound(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.txt"), "utf8")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReadFileNotAFile(t *testing.T) {
	_, err := ReadFile(t.TempDir(), "utf8")
	assert.ErrorIs(t, err, ErrNotAFile)
}

func TestReadFilePermissionDenied(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("file mode permissions are not enforced")
	}

	path := filepath.Join(t.TempDir(), "secret.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o000))

	_, err := ReadFile(path, "utf8")
	assert.ErrorIs(t, err, ErrPermission)
}

func TestConvertToUTF8(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		encoding string
		expected string
	}{
		{"UTF8", []byte("café"), "utf8", "café"},
		{"DefaultIsUTF8", []byte("abc"), "", "abc"},
		{"UTF8BOM", append([]byte{0xEF, 0xBB, 0xBF}, []byte("abc")...), "utf8", "abc"},
		{"Latin1", []byte{'c', 'a', 'f', 0xE9}, "iso-8859-1", "café"},
		{"CP437", []byte{'c', 'a', 'f', 0x82}, "cp437", "café"},
		{"CP850", []byte{0x90, 't', 'e'}, "cp850", "Éte"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertToUTF8(tt.input, tt.encoding)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(got))
		})
	}
}

func TestConvertToUTF8Errors(t *testing.T) {
	_, err := ConvertToUTF8([]byte("abc"), "ebcdic")
	assert.ErrorIs(t, err, ErrUnsupportedEncoding)

	_, err = ConvertToUTF8([]byte{0xff, 0xfe, 'a'}, "utf8")
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestReadFrom(t *testing.T) {
	text, err := ReadFrom(strings.NewReader("piped text"), "utf8")
	require.NoError(t, err)
	assert.Equal(t, "piped text", text)
}
