package telegram

import (
	"context"
	"errors"
	"strconv"

	"github.com/dailyvocab/vocab-study-bot/internal/domain/entities"
	"github.com/dailyvocab/vocab-study-bot/internal/service"
)

// handleQuizCommand asks for the quiz direction; the quiz itself starts from
// the type callback.
func (h *Handler) handleQuizCommand(chatID int64) {
	msg := newHTMLMessage(chatID, msgChooseQuizType)
	msg.ReplyMarkup = buildQuizTypeKeyboard()
	h.send(msg)
}

// handleQuizCallback routes quiz button presses and returns the toast to
// show, if any.
func (h *Handler) handleQuizCallback(ctx context.Context, chatID int64, messageID int, cd callbackData) string {
	if len(cd.Params) == 0 {
		return ""
	}

	if cd.Params[0] == quizType && len(cd.Params) >= 2 {
		h.startQuiz(ctx, chatID, messageID, entities.QuizType(cd.Params[1]))
		return ""
	}

	session := h.sessions.Get(chatID)
	if session == nil || session.Mode != entities.ModeQuiz {
		h.send(newHTMLMessage(chatID, msgNoSession))
		return ""
	}

	switch cd.Params[0] {
	case quizOption:
		if len(cd.Params) < 2 {
			return ""
		}
		option, err := strconv.Atoi(cd.Params[1])
		if err != nil {
			return ""
		}
		if err := session.Select(option); err != nil {
			if errors.Is(err, entities.ErrAlreadyAnswered) {
				return msgAlreadyAnswered
			}
			return ""
		}
		h.renderQuestion(chatID, messageID, session)

	case quizSubmit:
		correct, err := session.Submit()
		if err != nil {
			switch {
			case errors.Is(err, entities.ErrNoSelection):
				return msgSelectAnswer
			case errors.Is(err, entities.ErrAlreadyAnswered):
				return msgAlreadyAnswered
			}
			return ""
		}

		if q, ok := session.CurrentQuestion(); ok {
			if correct {
				h.progress.RecordCorrect(ctx, q.WordID)
			} else {
				h.progress.RecordWrong(ctx, q.WordID)
			}
		}
		h.renderQuestion(chatID, messageID, session)

	case quizPrev:
		if !session.Prev() {
			return ""
		}
		h.renderQuestion(chatID, messageID, session)

	case quizNext:
		if !session.CurrentAnswered() {
			return msgAnswerFirst
		}
		if !session.Next() {
			return ""
		}
		h.renderQuestion(chatID, messageID, session)

	case quizResults:
		session.Complete()
		h.renderResults(chatID, messageID, session)

	case quizRetry:
		words := session.RetryWords()
		if len(words) == 0 {
			h.send(newHTMLMessage(chatID, msgNoWords))
			return ""
		}
		questions := service.GenerateQuestions(words, session.QuizType)
		retry := entities.NewQuizSession(chatID, session.QuizType, words, questions)
		h.sessions.Store(chatID, retry)
		h.renderQuestion(chatID, messageID, retry)

	case quizNew:
		h.sessions.Delete(chatID)
		edit := newHTMLEdit(chatID, messageID, msgChooseQuizType)
		kb := buildQuizTypeKeyboard()
		edit.ReplyMarkup = &kb
		h.send(edit)

	case quizStar:
		word, ok := session.CurrentWord()
		if !ok {
			return ""
		}
		toast := msgUnstarred
		if h.progress.ToggleStar(ctx, word.ID) {
			toast = msgStarred
		}
		h.renderQuestion(chatID, messageID, session)
		return toast
	}

	return ""
}

// startQuiz stores the chosen quiz direction, builds questions over the
// current working set, and replaces the type prompt with the first question.
func (h *Handler) startQuiz(ctx context.Context, chatID int64, messageID int, quizType entities.QuizType) {
	state := h.filters.Get(chatID)
	state.QuizType = quizType
	h.filters.Set(chatID, state)

	words := h.loadWorkingSet(ctx, chatID)
	if len(words) == 0 {
		h.send(newHTMLEdit(chatID, messageID, msgNoWords))
		return
	}

	questions := service.GenerateQuestions(words, quizType)
	session := entities.NewQuizSession(chatID, quizType, words, questions)
	h.sessions.Store(chatID, session)

	h.renderQuestion(chatID, messageID, session)
}

func (h *Handler) renderQuestion(chatID int64, messageID int, session *entities.StudySession) {
	edit := newHTMLEdit(chatID, messageID, formatQuestion(session, h.starredCurrent(session)))
	kb := buildQuestionKeyboard(session)
	edit.ReplyMarkup = &kb
	h.send(edit)
}

func (h *Handler) renderResults(chatID int64, messageID int, session *entities.StudySession) {
	edit := newHTMLEdit(chatID, messageID, formatResults(session))
	kb := buildResultsKeyboard(len(session.Mistakes()) > 0)
	edit.ReplyMarkup = &kb
	h.send(edit)
}
