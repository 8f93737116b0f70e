// Package wordlist loads per-date vocabulary word lists and merges them into
// a single working set.
package wordlist

import (
	"context"
	"errors"

	"github.com/dailyvocab/vocab-study-bot/internal/domain/entities"
)

// ErrNotFound means no word list exists for a date key. Days with no recorded
// words are normal, not an error condition.
var ErrNotFound = errors.New("word list not found")

// Source fetches the word list stored under a DDMMYY date key.
type Source interface {
	Fetch(ctx context.Context, dateKey string) ([]entities.WordEntry, error)
}
