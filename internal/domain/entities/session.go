package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// SessionMode distinguishes flashcard review from quiz sessions.
type SessionMode string

const (
	ModeFlashcards SessionMode = "flashcards"
	ModeQuiz       SessionMode = "quiz"
)

// SessionStatus tracks the quiz state machine: a session is active from
// creation until the last question is answered or the user navigates past it.
type SessionStatus string

const (
	StatusActive    SessionStatus = "active"
	StatusCompleted SessionStatus = "completed"
)

var (
	ErrNoSelection     = errors.New("no option selected")
	ErrAlreadyAnswered = errors.New("question already answered")
	ErrInvalidOption   = errors.New("selected option out of range")
	ErrNotQuiz         = errors.New("not a quiz session")
)

// unanswered marks a question with no recorded answer.
const unanswered = -1

// StudySession holds the in-memory state of one flashcard or quiz run for a
// chat. Words is the filtered working set; for quizzes, Questions and Answers
// run in parallel (Answers[i] is the selected option index, or -1).
type StudySession struct {
	ID          string
	ChatID      int64
	Mode        SessionMode
	QuizType    QuizType
	Words       []WordEntry
	Questions   []Question
	Answers     []int
	Selected    int // pending option selection for the current question, -1 when none
	Index       int
	Flipped     bool // flashcard face; false shows the word
	Status      SessionStatus
	StartedAt   time.Time
	CompletedAt *time.Time
}

// NewFlashcardSession starts a flashcard run over the given working set.
func NewFlashcardSession(chatID int64, words []WordEntry) *StudySession {
	return &StudySession{
		ID:        uuid.New().String(),
		ChatID:    chatID,
		Mode:      ModeFlashcards,
		Words:     words,
		Selected:  unanswered,
		Status:    StatusActive,
		StartedAt: time.Now(),
	}
}

// NewQuizSession starts a quiz run over pre-generated questions.
func NewQuizSession(chatID int64, quizType QuizType, words []WordEntry, questions []Question) *StudySession {
	answers := make([]int, len(questions))
	for i := range answers {
		answers[i] = unanswered
	}

	return &StudySession{
		ID:        uuid.New().String(),
		ChatID:    chatID,
		Mode:      ModeQuiz,
		QuizType:  quizType,
		Words:     words,
		Questions: questions,
		Answers:   answers,
		Selected:  unanswered,
		Status:    StatusActive,
		StartedAt: time.Now(),
	}
}

// IsActive reports whether the session still accepts answers or navigation.
func (s *StudySession) IsActive() bool {
	return s.Status == StatusActive
}

// Complete marks the session finished and stamps the completion time.
func (s *StudySession) Complete() {
	if s.Status == StatusCompleted {
		return
	}
	s.Status = StatusCompleted
	now := time.Now()
	s.CompletedAt = &now
}

// CurrentWord returns the word under the cursor, or false when the working
// set is empty.
func (s *StudySession) CurrentWord() (WordEntry, bool) {
	if s.Mode == ModeQuiz {
		q, ok := s.CurrentQuestion()
		if !ok {
			return WordEntry{}, false
		}
		return q.Word, true
	}

	if s.Index < 0 || s.Index >= len(s.Words) {
		return WordEntry{}, false
	}
	return s.Words[s.Index], true
}

// CurrentQuestion returns the question under the cursor for quiz sessions.
func (s *StudySession) CurrentQuestion() (Question, bool) {
	if s.Mode != ModeQuiz || s.Index < 0 || s.Index >= len(s.Questions) {
		return Question{}, false
	}
	return s.Questions[s.Index], true
}

// CurrentAnswered reports whether the question under the cursor has a
// recorded answer.
func (s *StudySession) CurrentAnswered() bool {
	if s.Mode != ModeQuiz || s.Index < 0 || s.Index >= len(s.Answers) {
		return false
	}
	return s.Answers[s.Index] != unanswered
}

// CurrentAnswerIndex returns the recorded option index for the question under
// the cursor, or -1 when unanswered.
func (s *StudySession) CurrentAnswerIndex() int {
	if s.Mode != ModeQuiz || s.Index < 0 || s.Index >= len(s.Answers) {
		return unanswered
	}
	return s.Answers[s.Index]
}

// Prev moves the cursor back one card or question. Reports whether the cursor
// moved.
func (s *StudySession) Prev() bool {
	if s.Index <= 0 {
		return false
	}
	s.Index--
	s.Flipped = false
	s.Selected = unanswered
	return true
}

// Next advances the cursor. For quizzes, advancing past the last question
// completes the session; the cursor itself stays on the last question so the
// results view can still reference it. Reports whether anything changed.
func (s *StudySession) Next() bool {
	last := len(s.Words) - 1
	if s.Mode == ModeQuiz {
		last = len(s.Questions) - 1
	}

	if s.Index < last {
		s.Index++
		s.Flipped = false
		s.Selected = unanswered
		return true
	}

	if s.Mode == ModeQuiz && s.IsActive() {
		s.Complete()
		return true
	}
	return false
}

// Flip turns the current flashcard over.
func (s *StudySession) Flip() {
	s.Flipped = !s.Flipped
}

// Select records a pending option choice for the current question. It is a
// no-op once the question has been answered.
func (s *StudySession) Select(option int) error {
	q, ok := s.CurrentQuestion()
	if !ok {
		return ErrNotQuiz
	}
	if s.CurrentAnswered() {
		return ErrAlreadyAnswered
	}
	if option < 0 || option >= len(q.Options) {
		return ErrInvalidOption
	}
	s.Selected = option
	return nil
}

// Submit commits the pending selection as the answer to the current question
// and reports whether it was correct. Submitting without a selection is
// rejected with ErrNoSelection and changes nothing. Answering the last
// question completes the session.
func (s *StudySession) Submit() (bool, error) {
	q, ok := s.CurrentQuestion()
	if !ok {
		return false, ErrNotQuiz
	}
	if s.CurrentAnswered() {
		return false, ErrAlreadyAnswered
	}
	if s.Selected == unanswered {
		return false, ErrNoSelection
	}

	s.Answers[s.Index] = s.Selected
	correct := q.Options[s.Selected] == q.CorrectAnswer
	s.Selected = unanswered

	if s.Index == len(s.Questions)-1 {
		s.Complete()
	}
	return correct, nil
}

// Score counts correctly answered questions.
func (s *StudySession) Score() int {
	score := 0
	for i, q := range s.Questions {
		if s.Answers[i] == unanswered {
			continue
		}
		if q.Options[s.Answers[i]] == q.CorrectAnswer {
			score++
		}
	}
	return score
}

// Mistake pairs a question with the wrong answer the user gave.
type Mistake struct {
	Question      string
	GivenAnswer   string
	CorrectAnswer string
	Word          WordEntry
}

// Mistakes lists the questions answered incorrectly, in question order.
// Unanswered questions are skipped.
func (s *StudySession) Mistakes() []Mistake {
	var mistakes []Mistake
	for i, q := range s.Questions {
		if s.Answers[i] == unanswered {
			continue
		}
		given := q.Options[s.Answers[i]]
		if given == q.CorrectAnswer {
			continue
		}
		mistakes = append(mistakes, Mistake{
			Question:      q.Text,
			GivenAnswer:   given,
			CorrectAnswer: q.CorrectAnswer,
			Word:          q.Word,
		})
	}
	return mistakes
}

// RetryWords filters the session's working set down to the entries whose
// questions were answered incorrectly, preserving working-set order. Entries
// sharing a wrong id are all retained, consistent with the undeduplicated
// merge.
func (s *StudySession) RetryWords() []WordEntry {
	wrong := make(map[string]bool)
	for _, m := range s.Mistakes() {
		wrong[m.Word.ID] = true
	}

	var words []WordEntry
	for _, w := range s.Words {
		if wrong[w.ID] {
			words = append(words, w)
		}
	}
	return words
}
