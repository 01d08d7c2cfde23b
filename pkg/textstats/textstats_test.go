package textstats

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeProperties(t *testing.T) {
	assert.Equal(t, 0, CountLines(""))
	assert.Equal(t, 1, CountLines("Hello"))
	assert.Equal(t, 3, CountLines("a\nb\nc"))
	assert.Equal(t, 2, CountLines("a\nb\n"))

	assert.Equal(t, 4, CountWords("Hello, world! Hello everyone."))
	assert.Equal(t, []string{"can't", "can't"}, NormalizeWords("can't can't"))

	word, ok := MostCommonWord("b a b a")
	require.True(t, ok)
	assert.Equal(t, "b", word)

	_, ok = MostCommonWord("")
	assert.False(t, ok)
}

func TestReadAnalyzeExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fruits.txt")
	require.NoError(t, os.WriteFile(path, []byte("apple banana\napple orange\nbanana apple\n"), 0o644))

	text, err := ReadFile(path, "utf8")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, "text", Report{Stats: Analyze(text)}))
	assert.Equal(t, "Lines: 3\nWords: 6\nMost common word: apple\n", buf.String())
}

func TestExportUnknownFormat(t *testing.T) {
	err := Export(&bytes.Buffer{}, "yaml", Report{})
	assert.Error(t, err)
}

func TestReadFileErrorKinds(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope"), "utf8")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = ReadFile(t.TempDir(), "utf8")
	assert.ErrorIs(t, err, ErrNotAFile)
}

func TestFrequencyTable(t *testing.T) {
	table := BuildFrequencyTable(NormalizeWords("Hi, hi. HI!"))
	assert.Equal(t, 3, table.TotalCount())
	assert.Equal(t, []WordCount{{Word: "hi", Count: 3}}, table.Entries())
}
