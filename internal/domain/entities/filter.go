package entities

import "time"

// TimeFilter selects which daily word lists to load.
type TimeFilter string

const (
	TimeToday        TimeFilter = "today"
	TimeYesterday    TimeFilter = "yesterday"
	TimeThisWeek     TimeFilter = "this-week"
	TimeLastWeek     TimeFilter = "last-week"
	TimeLastMonth    TimeFilter = "last-month"
	TimeCustom       TimeFilter = "custom"
	TimeSpecificDays TimeFilter = "specific-days"
)

// WordFilter narrows or reorders the merged working set.
type WordFilter string

const (
	WordAll     WordFilter = "all"
	WordWrong   WordFilter = "wrong"
	WordStarred WordFilter = "starred"
	WordRandom  WordFilter = "random"
)

// QuizType selects the direction of quiz questions.
type QuizType string

const (
	QuizWordMeaning QuizType = "word-meaning" // show the word, ask for its meaning
	QuizMeaningWord QuizType = "meaning-word" // show the meaning, ask for the word
)

// FilterState holds the active filter selection for a chat. It lives in
// memory only; a fresh chat starts from the defaults.
type FilterState struct {
	TimeFilter  TimeFilter
	WordFilter  WordFilter
	QuizType    QuizType
	CustomStart time.Time // zero when unset; used only with TimeCustom
	CustomEnd   time.Time // zero when unset; used only with TimeCustom
}

// DefaultFilterState returns the selection a chat starts with.
func DefaultFilterState() FilterState {
	return FilterState{
		TimeFilter: TimeToday,
		WordFilter: WordAll,
		QuizType:   QuizWordMeaning,
	}
}
