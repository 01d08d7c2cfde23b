package types

/////////////////////////////////////////////////////////////////////////////
// WORD COUNT
/////////////////////////////////////////////////////////////////////////////

type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

/////////////////////////////////////////////////////////////////////////////
// STATISTICS
/////////////////////////////////////////////////////////////////////////////

// Statistics is the result of one analysis. An empty MostCommonWord means
// the text produced no word at all.
type Statistics struct {
	LineCount      int    `json:"lines"`
	WordCount      int    `json:"words"`
	DistinctWords  int    `json:"distinct_words"`
	MostCommonWord string `json:"most_common_word,omitempty"`
}

// MostCommon returns the most common word and whether there is one.
func (s Statistics) MostCommon() (string, bool) {
	return s.MostCommonWord, s.MostCommonWord != ""
}

/////////////////////////////////////////////////////////////////////////////
// SELECTION
/////////////////////////////////////////////////////////////////////////////

// Selection chooses which statistics are displayed.
type Selection struct {
	Lines  bool
	Words  bool
	Common bool
}

// Resolve returns the selection to display: nothing selected means everything.
func (s Selection) Resolve() Selection {
	if !s.Lines && !s.Words && !s.Common {
		return Selection{Lines: true, Words: true, Common: true}
	}
	return s
}

/////////////////////////////////////////////////////////////////////////////
// REPORT
/////////////////////////////////////////////////////////////////////////////

// Report is what exporters render: statistics of one input and the
// selection to display.
type Report struct {
	Source    string
	Stats     Statistics
	Selection Selection
}
