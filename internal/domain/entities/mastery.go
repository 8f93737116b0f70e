package entities

// MasteryRecord tracks how often a word was answered wrong and the current
// run of consecutive correct answers. A record exists only for words that
// have been missed at least once; three correct answers in a row retire it.
type MasteryRecord struct {
	Count         int `json:"count"`         // total wrong attempts, never decreases
	CorrectStreak int `json:"correctStreak"` // consecutive correct answers since the last wrong one
}
