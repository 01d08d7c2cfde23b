package frequency

import (
	"iter"
	"slices"

	"github.com/badele/textstats/internal/types"
)

// Table counts words while remembering the order in which each distinct
// word was first added. That order decides ties in MostCommon.
type Table struct {
	entries []types.WordCount
	index   map[string]int
	total   int
}

var _ types.Counter = (*Table)(nil)

func NewTable() *Table {
	return &Table{
		entries: make([]types.WordCount, 0),
		index:   make(map[string]int),
	}
}

// Build creates a table from words, consumed in order.
func Build(words iter.Seq[string]) *Table {
	t := NewTable()
	for word := range words {
		t.Add(word)
	}
	return t
}

func FromSlice(words []string) *Table {
	return Build(slices.Values(words))
}

// Add increments the count of word, appending it when first seen.
func (t *Table) Add(word string) {
	t.total++

	if i, ok := t.index[word]; ok {
		t.entries[i].Count++
		return
	}

	t.index[word] = len(t.entries)
	t.entries = append(t.entries, types.WordCount{Word: word, Count: 1})
}

func (t *Table) Count(word string) int {
	if i, ok := t.index[word]; ok {
		return t.entries[i].Count
	}
	return 0
}

// Len returns the number of distinct words.
func (t *Table) Len() int {
	return len(t.entries)
}

// TotalCount returns the sum of all counts.
func (t *Table) TotalCount() int {
	return t.total
}

// MostCommon returns the word with the highest count. When several words
// share it, the one inserted first wins. It reports false on an empty table.
func (t *Table) MostCommon() (string, bool) {
	if len(t.entries) == 0 {
		return "", false
	}

	best := 0
	for i := 1; i < len(t.entries); i++ {
		// strictly greater keeps the earliest entry on ties
		if t.entries[i].Count > t.entries[best].Count {
			best = i
		}
	}

	return t.entries[best].Word, true
}

// Entries returns a copy of the entries in insertion order.
func (t *Table) Entries() []types.WordCount {
	return slices.Clone(t.entries)
}
