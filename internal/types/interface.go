package types

import "iter"

// WordSource yields normalized words in document order.
type WordSource interface {
	Words(text string) iter.Seq[string]
}

// Counter accumulates normalized words
type Counter interface {
	Add(word string)
	TotalCount() int
	MostCommon() (string, bool)
}
