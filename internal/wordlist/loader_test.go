package wordlist

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dailyvocab/vocab-study-bot/internal/domain/entities"
)

// fakeSource serves canned lists per date key and records fetch order.
type fakeSource struct {
	lists   map[string][]entities.WordEntry
	errs    map[string]error
	fetched []string
}

func (f *fakeSource) Fetch(_ context.Context, dateKey string) ([]entities.WordEntry, error) {
	f.fetched = append(f.fetched, dateKey)
	if err, ok := f.errs[dateKey]; ok {
		return nil, err
	}
	list, ok := f.lists[dateKey]
	if !ok {
		return nil, ErrNotFound
	}
	return list, nil
}

func word(id, w, m string) entities.WordEntry {
	return entities.WordEntry{ID: id, CorrectWord: w, Meaning: m}
}

func TestLoaderMergesInDateKeyOrder(t *testing.T) {
	src := &fakeSource{lists: map[string][]entities.WordEntry{
		"010324": {word("a", "Ebb", "recede"), word("b", "Flux", "flow")},
		"020324": {word("c", "Wane", "decline")},
	}}
	loader := NewLoader(src, zap.NewNop())

	got := loader.Load(context.Background(), []string{"010324", "020324"})

	require.Len(t, got, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{got[0].ID, got[1].ID, got[2].ID})
	assert.Equal(t, []string{"010324", "020324"}, src.fetched)
}

func TestLoaderKeepsDuplicateIDsAcrossDates(t *testing.T) {
	src := &fakeSource{lists: map[string][]entities.WordEntry{
		"010324": {word("a", "Ebb", "recede")},
		"020324": {word("a", "Ebb", "recede")},
	}}
	loader := NewLoader(src, zap.NewNop())

	got := loader.Load(context.Background(), []string{"010324", "020324"})

	assert.Len(t, got, 2, "overlapping ids are not deduplicated")
}

func TestLoaderSkipsMissingAndFailingDates(t *testing.T) {
	src := &fakeSource{
		lists: map[string][]entities.WordEntry{
			"030324": {word("x", "Arid", "dry")},
		},
		errs: map[string]error{
			"020324": errors.New("connection reset"),
		},
	}
	loader := NewLoader(src, zap.NewNop())

	got := loader.Load(context.Background(), []string{"010324", "020324", "030324"})

	require.Len(t, got, 1, "absent and failing dates do not abort the rest")
	assert.Equal(t, "x", got[0].ID)
	assert.Equal(t, []string{"010324", "020324", "030324"}, src.fetched)
}

func TestLoaderAllDatesEmpty(t *testing.T) {
	loader := NewLoader(&fakeSource{}, zap.NewNop())

	got := loader.Load(context.Background(), []string{"010324", "020324"})

	assert.Empty(t, got, "no data for any date yields an empty set, not an error")
}
