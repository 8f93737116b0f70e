package wordlist

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/dailyvocab/vocab-study-bot/internal/domain/entities"
)

// Loader merges per-date word lists into one working set.
type Loader struct {
	source Source
	logger *zap.Logger
}

// NewLoader creates a loader over the given source.
func NewLoader(source Source, logger *zap.Logger) *Loader {
	return &Loader{
		source: source,
		logger: logger,
	}
}

// Load fetches each date key in order and concatenates the results. Dates are
// fetched one at a time, in sequence. A date with no list is skipped
// silently; any other fetch error is logged and skipped as well, so a partial
// outage degrades to a smaller working set. Entries are never deduplicated: a
// word recorded on two days appears twice. When nothing loads the result is
// an empty set, not an error.
func (l *Loader) Load(ctx context.Context, dateKeys []string) []entities.WordEntry {
	var words []entities.WordEntry

	for _, key := range dateKeys {
		entries, err := l.source.Fetch(ctx, key)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				l.logger.Debug("no word list for date", zap.String("date_key", key))
			} else {
				l.logger.Warn("failed to load word list",
					zap.String("date_key", key),
					zap.Error(err),
				)
			}
			continue
		}
		words = append(words, entries...)
	}

	l.logger.Info("word lists loaded",
		zap.Int("dates", len(dateKeys)),
		zap.Int("words", len(words)),
	)

	return words
}
