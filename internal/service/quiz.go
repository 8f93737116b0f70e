package service

import (
	"fmt"
	"math/rand"

	"github.com/dailyvocab/vocab-study-bot/internal/domain/entities"
)

// maxOptions is the option count a question aims for, correct answer
// included. Questions legitimately end up with fewer when the pool is small
// or full of duplicate texts; the minimum is 1 (the correct answer alone).
const maxOptions = 4

// GenerateQuestions builds one multiple-choice question per word in the
// working set, then shuffles the question order. For word-meaning quizzes the
// prompt shows the word and the options are meanings; meaning-word is the
// reverse.
func GenerateQuestions(words []entities.WordEntry, quizType entities.QuizType) []entities.Question {
	questions := make([]entities.Question, 0, len(words))

	for _, word := range words {
		var q entities.Question
		if quizType == entities.QuizMeaningWord {
			q = entities.Question{
				WordID:        word.ID,
				Text:          fmt.Sprintf("Which word means: %q?", word.Meaning),
				CorrectAnswer: word.CorrectWord,
				Options:       generateOptions(word, words, func(w entities.WordEntry) string { return w.CorrectWord }),
				Word:          word,
			}
		} else {
			q = entities.Question{
				WordID:        word.ID,
				Text:          fmt.Sprintf("What is the meaning of %q?", word.CorrectWord),
				CorrectAnswer: word.Meaning,
				Options:       generateOptions(word, words, func(w entities.WordEntry) string { return w.Meaning }),
				Word:          word,
			}
		}
		questions = append(questions, q)
	}

	rand.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})

	return questions
}

// generateOptions builds the option set for one question: the correct answer
// plus distractors drawn from the other entries. Candidates are shuffled and
// popped until the set reaches maxOptions or the pool runs out; a candidate
// whose text is already present is skipped, so duplicate-value entries
// collapse to one option. The final order is shuffled independently.
func generateOptions(current entities.WordEntry, all []entities.WordEntry, value func(entities.WordEntry) string) []string {
	options := []string{value(current)}

	pool := make([]entities.WordEntry, 0, len(all))
	for _, w := range all {
		if w.ID != current.ID {
			pool = append(pool, w)
		}
	}

	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	for len(options) < maxOptions && len(pool) > 0 {
		candidate := pool[len(pool)-1]
		pool = pool[:len(pool)-1]

		text := value(candidate)
		if !contains(options, text) {
			options = append(options, text)
		}
	}

	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return options
}

func contains(s []string, v string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
