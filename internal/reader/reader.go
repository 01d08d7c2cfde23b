// Package reader loads raw text for analysis from files or streams and
// converts it to UTF-8.
package reader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var (
	ErrNotFound            = errors.New("path does not exist")
	ErrNotAFile            = errors.New("path is not a file")
	ErrPermission          = errors.New("permission denied")
	ErrUnsupportedEncoding = errors.New("unsupported encoding")
	ErrInvalidUTF8         = errors.New("invalid UTF-8 content")
)

// Encodings lists the accepted source encodings.
var Encodings = []string{"utf8", "cp437", "cp850", "iso-8859-1"}

// UTF-8 BOM (Byte Order Mark) sequence
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func stripUTF8BOM(data []byte) []byte {
	if len(data) >= 3 && bytes.Equal(data[:3], utf8BOM) {
		return data[3:]
	}
	return data
}

func decoderFor(sourceEncoding string) (*encoding.Decoder, error) {
	switch sourceEncoding {
	case "cp437":
		return charmap.CodePage437.NewDecoder(), nil
	case "cp850":
		return charmap.CodePage850.NewDecoder(), nil
	case "iso-8859-1":
		return charmap.ISO8859_1.NewDecoder(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEncoding, sourceEncoding)
	}
}

// ConvertToUTF8 converts byte data from a source encoding to UTF-8.
// The UTF-8 BOM is stripped if present. UTF-8 input must be valid.
func ConvertToUTF8(data []byte, sourceEncoding string) ([]byte, error) {
	if sourceEncoding == "" || sourceEncoding == "utf8" {
		data = stripUTF8BOM(data)
		if !utf8.Valid(data) {
			return nil, ErrInvalidUTF8
		}
		return data, nil
	}

	decoder, err := decoderFor(sourceEncoding)
	if err != nil {
		return nil, err
	}

	utf8Data, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return nil, fmt.Errorf("encoding conversion error: %w", err)
	}

	return stripUTF8BOM(utf8Data), nil
}

// ReadFrom reads r fully and returns its content as UTF-8 text.
func ReadFrom(r io.Reader, sourceEncoding string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read error: %w", err)
	}

	text, err := ConvertToUTF8(data, sourceEncoding)
	if err != nil {
		return "", err
	}

	return string(text), nil
}

// ReadFile checks that path is a readable regular file and returns its
// content as UTF-8 text. Failures are reported with ErrNotFound, ErrNotAFile
// or ErrPermission when they match one of these kinds.
func ReadFile(path, sourceEncoding string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", classify(path, err)
	}

	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s", ErrNotAFile, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", classify(path, err)
	}
	defer f.Close()

	return ReadFrom(f, sourceEncoding)
}

func classify(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s", ErrPermission, path)
	default:
		return fmt.Errorf("cannot access %s: %w", path, err)
	}
}
