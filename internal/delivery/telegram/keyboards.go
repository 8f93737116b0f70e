package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dailyvocab/vocab-study-bot/internal/domain/entities"
)

func buildFlashcardKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️", buildFlashcardCallback(flashcardPrev)),
			tgbotapi.NewInlineKeyboardButtonData("🔄 Flip", buildFlashcardCallback(flashcardFlip)),
			tgbotapi.NewInlineKeyboardButtonData("➡️", buildFlashcardCallback(flashcardNext)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⭐ Star", buildFlashcardCallback(flashcardStar)),
		),
	)
}

// buildQuestionKeyboard shows option buttons plus submit while the question
// is open, and navigation once it is answered.
func buildQuestionKeyboard(s *entities.StudySession) tgbotapi.InlineKeyboardMarkup {
	q, _ := s.CurrentQuestion()

	var rows [][]tgbotapi.InlineKeyboardButton

	if !s.CurrentAnswered() {
		var optRow []tgbotapi.InlineKeyboardButton
		for i := range q.Options {
			optRow = append(optRow, tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("%d", i+1),
				buildQuizOptionCallback(i),
			))
		}
		rows = append(rows, optRow)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Submit", buildQuizCallback(quizSubmit)),
		))
	} else {
		navRow := []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("⬅️", buildQuizCallback(quizPrev)),
		}
		if s.Index < len(s.Questions)-1 {
			navRow = append(navRow, tgbotapi.NewInlineKeyboardButtonData("➡️", buildQuizCallback(quizNext)))
		} else {
			navRow = append(navRow, tgbotapi.NewInlineKeyboardButtonData("🏁 Results", buildQuizCallback(quizResults)))
		}
		rows = append(rows, navRow)
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⭐ Star", buildQuizCallback(quizStar)),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildResultsKeyboard omits the retry button on a perfect score.
func buildResultsKeyboard(hasMistakes bool) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	if hasMistakes {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔁 Retry wrong words", buildQuizCallback(quizRetry)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🆕 New quiz", buildQuizCallback(quizNew)),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func buildQuizTypeKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Word → Meaning", buildQuizCallback(quizType, string(entities.QuizWordMeaning))),
			tgbotapi.NewInlineKeyboardButtonData("Meaning → Word", buildQuizCallback(quizType, string(entities.QuizMeaningWord))),
		),
	)
}

func buildFiltersKeyboard(state entities.FilterState) tgbotapi.InlineKeyboardMarkup {
	timeFilters := [][]entities.TimeFilter{
		{entities.TimeToday, entities.TimeYesterday, entities.TimeThisWeek},
		{entities.TimeLastWeek, entities.TimeLastMonth},
		{entities.TimeCustom, entities.TimeSpecificDays},
	}
	wordFilters := []entities.WordFilter{
		entities.WordAll, entities.WordWrong, entities.WordStarred, entities.WordRandom,
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, group := range timeFilters {
		var row []tgbotapi.InlineKeyboardButton
		for _, tf := range group {
			label := string(tf)
			if tf == state.TimeFilter {
				label = "✅ " + label
			}
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, buildFilterCallback(filterTime, string(tf))))
		}
		rows = append(rows, row)
	}

	var wordRow []tgbotapi.InlineKeyboardButton
	for _, wf := range wordFilters {
		label := string(wf)
		if wf == state.WordFilter {
			label = "✅ " + label
		}
		wordRow = append(wordRow, tgbotapi.NewInlineKeyboardButtonData(label, buildFilterCallback(filterWord, string(wf))))
	}
	rows = append(rows, wordRow)

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
