package telegram

import (
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionFlashcard = "fc"
	actionQuiz      = "qz"
	actionFilter    = "flt"
)

// Flashcard sub-actions.
const (
	flashcardPrev = "prev"
	flashcardNext = "next"
	flashcardFlip = "flip"
	flashcardStar = "star"
)

// Quiz sub-actions.
const (
	quizType    = "type"
	quizOption  = "opt"
	quizSubmit  = "submit"
	quizPrev    = "prev"
	quizNext    = "next"
	quizStar    = "star"
	quizResults = "results"
	quizRetry   = "retry"
	quizNew     = "new"
)

// Filter sub-actions.
const (
	filterTime = "tf"
	filterWord = "wf"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	if len(parts) == 0 {
		return callbackData{Raw: data}
	}

	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

func buildFlashcardCallback(subAction string) string {
	return callbackData{Action: actionFlashcard, Params: []string{subAction}}.encode()
}

func buildQuizCallback(subAction string, value ...string) string {
	params := []string{subAction}
	params = append(params, value...)
	return callbackData{Action: actionQuiz, Params: params}.encode()
}

func buildQuizOptionCallback(index int) string {
	return buildQuizCallback(quizOption, strconv.Itoa(index))
}

func buildFilterCallback(kind, value string) string {
	return callbackData{Action: actionFilter, Params: []string{kind, value}}.encode()
}
