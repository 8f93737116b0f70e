// Package entities contains domain entities used across the application.
package entities

// WordEntry represents a single vocabulary word from a daily word list.
// Entries are immutable once loaded. Ids are unique within one date file but
// may recur across files; merged working sets keep every occurrence.
type WordEntry struct {
	ID          string   `json:"id"`          // unique word identifier
	CorrectWord string   `json:"correctWord"` // the word itself
	Meaning     string   `json:"meaning"`     // definition shown on the card back
	Synonyms    []string `json:"synonyms"`    // ordered list of synonyms
}
