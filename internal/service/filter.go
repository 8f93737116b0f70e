// Package service implements the study logic: progress tracking, working-set
// filtering, quiz generation, and the daily reminder digest.
package service

import (
	"math/rand"
	"sort"

	"github.com/dailyvocab/vocab-study-bot/internal/domain/entities"
)

// ProgressReader is the read side of the progress store used when filtering.
type ProgressReader interface {
	WrongCount(wordID string) int
	IsStarred(wordID string) bool
}

// ApplyWordFilter applies the selected secondary filter to the merged working
// set and returns the result. It is applied once per load, after merging and
// before the first display:
//   - all: unchanged order
//   - wrong: most-missed words first
//   - starred: starred words only, relative order preserved
//   - random: uniform shuffle
func ApplyWordFilter(words []entities.WordEntry, filter entities.WordFilter, progress ProgressReader) []entities.WordEntry {
	switch filter {
	case entities.WordWrong:
		sort.Slice(words, func(i, j int) bool {
			return progress.WrongCount(words[i].ID) > progress.WrongCount(words[j].ID)
		})
		return words

	case entities.WordStarred:
		starred := words[:0]
		for _, w := range words {
			if progress.IsStarred(w.ID) {
				starred = append(starred, w)
			}
		}
		return starred

	case entities.WordRandom:
		rand.Shuffle(len(words), func(i, j int) {
			words[i], words[j] = words[j], words[i]
		})
		return words

	default:
		return words
	}
}

func sortByWrongCountDesc(words []WordDifficulty) {
	sort.Slice(words, func(i, j int) bool {
		return words[i].WrongCount > words[j].WrongCount
	})
}
