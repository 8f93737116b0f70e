package telegram

import (
	"context"

	"github.com/dailyvocab/vocab-study-bot/internal/domain/entities"
)

// handleFlashcardsCommand loads the working set for the chat's filters and
// starts a flashcard session on it.
func (h *Handler) handleFlashcardsCommand(ctx context.Context, chatID int64) {
	words := h.loadWorkingSet(ctx, chatID)
	if len(words) == 0 {
		h.send(newHTMLMessage(chatID, msgNoWords))
		return
	}

	session := entities.NewFlashcardSession(chatID, words)
	h.sessions.Store(chatID, session)

	msg := newHTMLMessage(chatID, formatFlashcard(session, h.starredCurrent(session)))
	msg.ReplyMarkup = buildFlashcardKeyboard()
	h.send(msg)
}

// handleFlashcardCallback routes prev/next/flip/star presses on a card and
// returns the toast to show, if any.
func (h *Handler) handleFlashcardCallback(ctx context.Context, chatID int64, messageID int, cd callbackData) string {
	session := h.sessions.Get(chatID)
	if session == nil || session.Mode != entities.ModeFlashcards {
		h.send(newHTMLMessage(chatID, msgNoSession))
		return ""
	}
	if len(cd.Params) == 0 {
		return ""
	}

	toast := ""
	switch cd.Params[0] {
	case flashcardPrev:
		if !session.Prev() {
			return ""
		}

	case flashcardNext:
		if !session.Next() {
			return ""
		}

	case flashcardFlip:
		session.Flip()

	case flashcardStar:
		word, ok := session.CurrentWord()
		if !ok {
			return ""
		}
		if h.progress.ToggleStar(ctx, word.ID) {
			toast = msgStarred
		} else {
			toast = msgUnstarred
		}

	default:
		return ""
	}

	h.renderFlashcard(chatID, messageID, session)
	return toast
}

func (h *Handler) renderFlashcard(chatID int64, messageID int, session *entities.StudySession) {
	edit := newHTMLEdit(chatID, messageID, formatFlashcard(session, h.starredCurrent(session)))
	kb := buildFlashcardKeyboard()
	edit.ReplyMarkup = &kb
	h.send(edit)
}

// starredCurrent reports whether the word under the cursor is starred.
func (h *Handler) starredCurrent(session *entities.StudySession) bool {
	word, ok := session.CurrentWord()
	if !ok {
		return false
	}
	return h.progress.IsStarred(word.ID)
}
