// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dailyvocab/vocab-study-bot/internal/domain/entities"
	"github.com/dailyvocab/vocab-study-bot/internal/service"
)

const (
	msgWelcome = "<b>Daily Vocab Bot</b> helps you review your daily word lists.\n\n" +
		"📇 /flashcards — flip through the selected words\n" +
		"🧠 /quiz — take a multiple-choice quiz\n" +
		"🔍 /filters — choose which days and words to study\n" +
		"📊 /progress — words you keep getting wrong\n" +
		"❓ /help — how everything works"
	msgHelp = "Pick a time range and word filter with /filters, then start " +
		"/flashcards or /quiz.\n\nWrong answers are tracked per word; answer a " +
		"word correctly three times in a row and it drops off the wrong list. " +
		"Star words from any card or question to build your own review set."
	msgNoWords = "No words found for the selected filters. " +
		"Try a different time range or word filter."
	msgNoSession       = "No active session. Start one with /flashcards or /quiz."
	msgSelectAnswer    = "Select an answer first"
	msgAnswerFirst     = "Answer this question first"
	msgAlreadyAnswered = "This question is already answered"
	msgUnknownCommand  = "Unknown command. Available commands:\n\n/flashcards — review words\n/quiz — take a quiz\n/filters — change filters\n/progress — your progress"
	msgChooseQuizType  = "What kind of quiz?"
	msgSendCustomRange = "Send the date range as DD.MM.YY DD.MM.YY (start end)."
	msgBadCustomRange  = "Could not parse that range. Use DD.MM.YY DD.MM.YY, e.g. 01.03.24 05.03.24."
	msgStarred         = "⭐ Starred"
	msgUnstarred       = "☆ Unstarred"
	msgPerfectScore    = "Perfect score! No mistakes."
	msgNoWrongTracked  = "No words are tracked as wrong right now. 🎉"
)

// formatFilters renders the chat's current filter selection.
func formatFilters(state entities.FilterState) string {
	var sb strings.Builder
	sb.WriteString("<b>🔍 Filters</b>\n\n")
	sb.WriteString(fmt.Sprintf("📅 Time: <b>%s</b>\n", state.TimeFilter))
	if state.TimeFilter == entities.TimeCustom && !state.CustomStart.IsZero() && !state.CustomEnd.IsZero() {
		sb.WriteString(fmt.Sprintf("    %s — %s\n",
			state.CustomStart.Format("02.01.06"),
			state.CustomEnd.Format("02.01.06"),
		))
	}
	sb.WriteString(fmt.Sprintf("🔤 Words: <b>%s</b>\n", state.WordFilter))
	sb.WriteString(fmt.Sprintf("🧠 Quiz type: <b>%s</b>", state.QuizType))
	return sb.String()
}

// formatFlashcard renders one side of the current card.
func formatFlashcard(s *entities.StudySession, starred bool) string {
	word, ok := s.CurrentWord()
	if !ok {
		return msgNoWords
	}

	star := ""
	if starred {
		star = " ⭐"
	}
	counter := fmt.Sprintf("%d/%d", s.Index+1, len(s.Words))

	if !s.Flipped {
		return fmt.Sprintf("📇 <i>%s</i>\n\n<b>%s</b>%s", counter, word.CorrectWord, star)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📇 <i>%s</i>\n\n<b>%s</b>%s\n\n%s", counter, word.CorrectWord, star, word.Meaning))
	if len(word.Synonyms) > 0 {
		sb.WriteString(fmt.Sprintf("\n\n<i>Synonyms:</i> %s", strings.Join(word.Synonyms, ", ")))
	}
	return sb.String()
}

// formatQuestion renders the current quiz question, with feedback once it has
// been answered.
func formatQuestion(s *entities.StudySession, starred bool) string {
	q, ok := s.CurrentQuestion()
	if !ok {
		return msgNoWords
	}

	star := ""
	if starred {
		star = " ⭐"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🧠 <i>%d/%d</i>%s\n\n%s\n\n", s.Index+1, len(s.Questions), star, q.Text))

	answer := s.CurrentAnswerIndex()
	for i, opt := range q.Options {
		marker := " "
		switch {
		case answer >= 0 && opt == q.CorrectAnswer:
			marker = "✅"
		case answer == i:
			marker = "❌"
		case s.Selected == i:
			marker = "🔘"
		}
		sb.WriteString(fmt.Sprintf("%s %d. %s\n", marker, i+1, opt))
	}

	if answer >= 0 {
		if q.Options[answer] == q.CorrectAnswer {
			sb.WriteString("\n<b>Correct!</b>")
		} else {
			sb.WriteString(fmt.Sprintf("\n<b>Incorrect.</b> The answer is: %s", q.CorrectAnswer))
		}
	}

	return sb.String()
}

// formatResults renders the end-of-quiz summary with the mistakes list.
func formatResults(s *entities.StudySession) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<b>🏁 Quiz complete</b>\n\nScore: <b>%d/%d</b>\n\n", s.Score(), len(s.Questions)))

	mistakes := s.Mistakes()
	if len(mistakes) == 0 {
		sb.WriteString(msgPerfectScore)
		return sb.String()
	}

	sb.WriteString("<b>Mistakes:</b>\n")
	for _, m := range mistakes {
		sb.WriteString(fmt.Sprintf(
			"\n%s\nYour answer: %s\nCorrect answer: <b>%s</b>\n",
			m.Question, m.GivenAnswer, m.CorrectAnswer,
		))
	}
	return sb.String()
}

// formatProgress renders the wrong/starred summary for /progress.
func formatProgress(tracked, starred int, hardest []service.WordDifficulty, names map[string]string) string {
	var sb strings.Builder
	sb.WriteString("<b>📊 Progress</b>\n\n")
	sb.WriteString(fmt.Sprintf("❌ Words tracked as wrong: <b>%d</b>\n", tracked))
	sb.WriteString(fmt.Sprintf("⭐ Starred words: <b>%d</b>\n", starred))

	if len(hardest) == 0 {
		sb.WriteString("\n" + msgNoWrongTracked)
		return sb.String()
	}

	sb.WriteString("\n<b>Hardest words:</b>\n")
	for _, w := range hardest {
		label := w.WordID
		if name, ok := names[w.WordID]; ok {
			label = name
		}
		sb.WriteString(fmt.Sprintf("• %s — %d wrong\n", label, w.WrongCount))
	}
	return sb.String()
}

// formatDigest renders the daily reminder text.
func formatDigest(todayWords, trackedWrong, starred int) string {
	if todayWords == 0 {
		return fmt.Sprintf(
			"📚 No word list for today yet.\n❌ %d words still tracked as wrong, ⭐ %d starred — a good day to review them.",
			trackedWrong, starred,
		)
	}
	return fmt.Sprintf(
		"📚 Today's list has <b>%d</b> words.\n❌ %d tracked as wrong, ⭐ %d starred.\n\nStart with /flashcards or /quiz.",
		todayWords, trackedWrong, starred,
	)
}

func newHTMLMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	return msg
}

func newHTMLEdit(chatID int64, messageID int, text string) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	return edit
}
