package entities

// Question is a single multiple-choice quiz question derived from a word
// entry. Options always contain the correct answer exactly once; their count
// ranges from 1 (no distractors available) up to 4.
type Question struct {
	WordID        string
	Text          string
	CorrectAnswer string
	Options       []string
	Word          WordEntry // source entry, kept for starring and the results view
}

// CorrectIndex returns the position of the correct answer within Options.
func (q Question) CorrectIndex() int {
	for i, opt := range q.Options {
		if opt == q.CorrectAnswer {
			return i
		}
	}
	return -1
}
